package inventory

import "errors"

// ErrItemNotFound is returned when removing an item that is not on the floor.
var ErrItemNotFound = errors.New("item not found")

// Floor is the unbounded, ordered set of items lying in one location.
// The zero value is an empty floor ready for use.
type Floor struct {
	items []*Item
}

// Drop places item on the floor.
//
// Precondition: item is non-nil.
// Postcondition: item is appended to the floor items.
func (f *Floor) Drop(item *Item) {
	f.items = append(f.items, item)
}

// Pickup removes item from the floor.
//
// Postcondition: on success the item is no longer on the floor; returns
// ErrItemNotFound and leaves the floor unchanged otherwise.
func (f *Floor) Pickup(item *Item) error {
	i := indexOf(f.items, item)
	if i < 0 {
		return ErrItemNotFound
	}
	f.items = append(f.items[:i], f.items[i+1:]...)
	return nil
}

// FindByName returns the floor item whose name matches name.
//
// Postcondition: Returns (item, true) if found, or (nil, false) otherwise.
func (f *Floor) FindByName(name string) (*Item, bool) {
	return findByName(f.items, name)
}

// Items returns a snapshot copy of all items on the floor.
//
// Postcondition: returned slice is a copy and never nil.
func (f *Floor) Items() []*Item {
	out := make([]*Item, len(f.items))
	copy(out, f.items)
	return out
}

// Len returns the number of items on the floor.
func (f *Floor) Len() int {
	return len(f.items)
}
