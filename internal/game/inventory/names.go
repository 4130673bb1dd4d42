package inventory

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeName trims surrounding whitespace and case-folds name so that
// lookups ignore capitalization.
func NormalizeName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// NameMatches reports whether a and b name the same item.
//
// Postcondition: Returns true iff the trimmed, case-folded forms are equal.
func NameMatches(a, b string) bool {
	return NormalizeName(a) == NormalizeName(b)
}

// findByName returns the first item in items whose name matches name.
func findByName(items []*Item, name string) (*Item, bool) {
	want := NormalizeName(name)
	for _, it := range items {
		if NormalizeName(it.Name) == want {
			return it, true
		}
	}
	return nil, false
}

// indexOf returns the index of item in items by identity, or -1.
func indexOf(items []*Item, item *Item) int {
	for i, it := range items {
		if it == item {
			return i
		}
	}
	return -1
}
