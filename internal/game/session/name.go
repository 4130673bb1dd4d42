package session

import "strings"

// DefaultPlayerName is used when a player enters no name.
const DefaultPlayerName = "Student"

// MaxNameLen bounds player names substituted into NPC dialogue, in runes.
const MaxNameLen = 24

// CleanName normalizes a typed player name: inner whitespace collapses to
// single spaces and the result is cut to MaxNameLen runes.
//
// Postcondition: Returns a non-empty name; blank input yields DefaultPlayerName.
func CleanName(raw string) string {
	name := strings.Join(strings.Fields(raw), " ")
	if r := []rune(name); len(r) > MaxNameLen {
		name = strings.TrimSpace(string(r[:MaxNameLen]))
	}
	if name == "" {
		return DefaultPlayerName
	}
	return name
}
