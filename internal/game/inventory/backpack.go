package inventory

import (
	"errors"
	"fmt"
)

// DefaultCapacity is the number of items a player can carry.
const DefaultCapacity = 2

var (
	// ErrBackpackFull is returned when adding to a backpack at capacity.
	ErrBackpackFull = errors.New("not enough space in inventory")
	// ErrItemNotHeld is returned when removing an item the backpack does not hold.
	ErrItemNotHeld = errors.New("item not found in inventory")
)

// Backpack is an ordered, slot-limited item container carried by the player.
type Backpack struct {
	MaxSlots int
	items    []*Item
}

// NewBackpack creates an empty Backpack.
//
// Precondition: maxSlots > 0.
// Postcondition: returned Backpack has zero items and the specified limit.
func NewBackpack(maxSlots int) *Backpack {
	return &Backpack{MaxSlots: maxSlots}
}

// Add appends item to the backpack.
// It is atomic: if the slot limit would be exceeded, no state is modified.
//
// Precondition: item is non-nil and not already held.
// Postcondition: on success UsedSlots() grows by one; on error the backpack is unchanged.
func (b *Backpack) Add(item *Item) error {
	if item == nil {
		return fmt.Errorf("backpack: nil item")
	}
	if b.Full() {
		return fmt.Errorf("backpack: adding %q: %w", item.Name, ErrBackpackFull)
	}
	if indexOf(b.items, item) >= 0 {
		return fmt.Errorf("backpack: %q already held", item.Name)
	}
	b.items = append(b.items, item)
	return nil
}

// Remove takes item out of the backpack, preserving the order of the rest.
//
// Precondition: item is held.
// Postcondition: on success item is no longer held; on error the backpack is unchanged.
func (b *Backpack) Remove(item *Item) error {
	i := indexOf(b.items, item)
	if i < 0 {
		return ErrItemNotHeld
	}
	b.items = append(b.items[:i], b.items[i+1:]...)
	return nil
}

// Contains reports whether this exact item instance is held.
func (b *Backpack) Contains(item *Item) bool {
	return item != nil && indexOf(b.items, item) >= 0
}

// FindByName returns the held item whose name matches name.
//
// Postcondition: Returns (item, true) if found, or (nil, false) otherwise.
func (b *Backpack) FindByName(name string) (*Item, bool) {
	return findByName(b.items, name)
}

// Items returns a snapshot copy of the held items in pickup order.
//
// Postcondition: returned slice is a copy; mutations do not affect the backpack.
func (b *Backpack) Items() []*Item {
	out := make([]*Item, len(b.items))
	copy(out, b.items)
	return out
}

// UsedSlots returns the number of occupied slots.
//
// Postcondition: result >= 0 and <= MaxSlots.
func (b *Backpack) UsedSlots() int {
	return len(b.items)
}

// Full reports whether every slot is occupied.
func (b *Backpack) Full() bool {
	return len(b.items) >= b.MaxSlots
}
