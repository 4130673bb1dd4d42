package inventory

import (
	"fmt"
	"sort"
)

// Registry holds every loaded item indexed by start position and by name.
type Registry struct {
	byStart map[int]*Item
	byName  map[string]*Item
}

// NewRegistry returns an empty Registry.
//
// Postcondition: all internal maps are initialised.
func NewRegistry() *Registry {
	return &Registry{
		byStart: make(map[int]*Item),
		byName:  make(map[string]*Item),
	}
}

// Register adds it to the registry.
//
// Precondition: it must not be nil.
// Postcondition: Item(it.StartPosition) returns (it, true); returns an error
// if the start position or the normalized name is already registered.
func (r *Registry) Register(it *Item) error {
	if existing, exists := r.byStart[it.StartPosition]; exists {
		return fmt.Errorf("inventory: Registry.Register: start position %d already holds %q", it.StartPosition, existing.Name)
	}
	key := NormalizeName(it.Name)
	if _, exists := r.byName[key]; exists {
		return fmt.Errorf("inventory: Registry.Register: item name %q already registered", it.Name)
	}
	r.byStart[it.StartPosition] = it
	r.byName[key] = it
	return nil
}

// Item returns the item that starts at the given location ID.
//
// Postcondition: ok is true iff an item starts there.
func (r *Registry) Item(start int) (*Item, bool) {
	it, ok := r.byStart[start]
	return it, ok
}

// ByName returns the item with a matching name.
func (r *Registry) ByName(name string) (*Item, bool) {
	it, ok := r.byName[NormalizeName(name)]
	return it, ok
}

// All returns every registered item ordered by start position.
//
// Postcondition: len(result) == Len().
func (r *Registry) All() []*Item {
	out := make([]*Item, 0, len(r.byStart))
	for _, it := range r.byStart {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartPosition < out[j].StartPosition })
	return out
}

// Len returns the number of registered items.
func (r *Registry) Len() int {
	return len(r.byStart)
}
