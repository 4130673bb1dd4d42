// Package inventory provides collectible items and the containers that hold them.
package inventory

import (
	"errors"
	"fmt"
)

// Item is a collectible object guarded by a secret code.
//
// Identity fields are fixed at load time; the only mutable state is the
// one-way dropped flag.
type Item struct {
	// Name uniquely identifies the item within a game.
	Name string
	// StartPosition is the location ID where the item is first placed.
	StartPosition int
	// TargetPosition is the location ID the item must be delivered to.
	TargetPosition int
	// TargetPoints is awarded once when an essential item is delivered home.
	TargetPoints int
	// IsEssential marks items required for the win condition.
	IsEssential bool

	code    string
	dropped bool
}

// NewItem creates an Item that has never been dropped.
//
// Precondition: name and code must be non-empty; points >= 0.
// Postcondition: Returns an Item with WasDropped() == false.
func NewItem(name string, start, target, points int, code string, essential bool) *Item {
	return &Item{
		Name:           name,
		StartPosition:  start,
		TargetPosition: target,
		TargetPoints:   points,
		IsEssential:    essential,
		code:           code,
	}
}

// Validate checks the item invariants.
//
// Postcondition: Returns nil iff all fields are valid; otherwise every violation is reported.
func (it *Item) Validate() error {
	var errs []error
	if it.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if it.code == "" {
		errs = append(errs, errors.New("code must not be empty"))
	}
	if it.TargetPoints < 0 {
		errs = append(errs, fmt.Errorf("target points must be >= 0, got %d", it.TargetPoints))
	}
	if it.StartPosition < 1 {
		errs = append(errs, fmt.Errorf("start position must be >= 1, got %d", it.StartPosition))
	}
	if it.TargetPosition < 1 {
		errs = append(errs, fmt.Errorf("target position must be >= 1, got %d", it.TargetPosition))
	}
	if len(errs) > 0 {
		return fmt.Errorf("item %q: %w", it.Name, errors.Join(errs...))
	}
	return nil
}

// Drop marks the item as dropped. Calling it again has no further effect.
//
// Postcondition: WasDropped() returns true.
func (it *Item) Drop() {
	it.dropped = true
}

// WasDropped reports whether the item has ever been dropped.
func (it *Item) WasDropped() bool {
	return it.dropped
}

// VerifyCode reports whether candidate exactly matches the secret code.
// An empty candidate is compared like any other string.
func (it *Item) VerifyCode(candidate string) bool {
	return it.code == candidate
}

// String returns the item name.
func (it *Item) String() string {
	return it.Name
}
