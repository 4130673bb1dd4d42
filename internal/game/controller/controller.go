// Package controller implements the game rules that span the world and the
// player: collecting and dropping items, talking to NPCs and the win
// condition.
package controller

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/campus-adventure/internal/game/inventory"
	"github.com/cory-johannsen/campus-adventure/internal/game/player"
	"github.com/cory-johannsen/campus-adventure/internal/game/world"
)

var (
	// ErrItemNotFound is returned when the named item is not at the location.
	ErrItemNotFound = errors.New("item not found")
	// ErrWrongCode is returned when the supplied collection code does not match.
	ErrWrongCode = errors.New("incorrect code")
	// ErrInventoryFull is returned when the player cannot carry another item.
	ErrInventoryFull = errors.New("not enough space in inventory")
	// ErrItemNotHeld is returned when dropping an item the player does not carry.
	ErrItemNotHeld = errors.New("item not found in inventory")
	// ErrNotLooked is returned by Speak before the player has looked around.
	ErrNotLooked = errors.New("location not examined")
	// ErrNoNPC is returned by Speak where nobody is present.
	ErrNoNPC = errors.New("no one here to talk to")
)

// DefaultHomeID is the location essential items are delivered to.
const DefaultHomeID = 1

// Coordinate is a grid position.
type Coordinate struct {
	X int
	Y int
}

// DefaultGoal is the coordinate the player must reach to win.
var DefaultGoal = Coordinate{X: 4, Y: 3}

// Options configures a Controller.
type Options struct {
	// HomeID is the location essential items must be dropped at.
	HomeID int
	// Goal is the coordinate that ends the game once every essential item is
	// home. Nil selects DefaultGoal.
	Goal *Coordinate
}

// DropReceipt records one dropped item and the points it earned.
type DropReceipt struct {
	Item    *inventory.Item
	Awarded int
}

// SpeakResult describes a conversation attempt.
type SpeakResult struct {
	// Spoken is false when the NPC has already delivered its line.
	Spoken bool
	// Line is the NPC's dialogue with the player name substituted.
	Line string
	// Points is the score granted for the conversation.
	Points int
}

// Controller applies game rules to one world and one player.
type Controller struct {
	world     *world.World
	player    *player.Player
	essential []*inventory.Item
	home      int
	goal      Coordinate
}

// New creates a Controller.
//
// Precondition: w and p must be non-nil; opts.HomeID must name a location in w.
// Postcondition: EssentialItems() holds every item of w flagged essential.
func New(w *world.World, p *player.Player, opts Options) (*Controller, error) {
	if w == nil || p == nil {
		return nil, fmt.Errorf("controller: world and player are required")
	}
	if opts.HomeID == 0 {
		opts.HomeID = DefaultHomeID
	}
	if _, ok := w.LocationByID(opts.HomeID); !ok {
		return nil, fmt.Errorf("controller: home location %d not found", opts.HomeID)
	}
	goal := DefaultGoal
	if opts.Goal != nil {
		goal = *opts.Goal
	}
	if _, ok := w.LocationAt(goal.X, goal.Y); !ok {
		return nil, fmt.Errorf("controller: goal (%d, %d) is not a location", goal.X, goal.Y)
	}
	c := &Controller{world: w, player: p, home: opts.HomeID, goal: goal}
	for _, it := range w.Items() {
		if it.IsEssential {
			c.essential = append(c.essential, it)
		}
	}
	return c, nil
}

// EssentialItems returns the items required to win.
func (c *Controller) EssentialItems() []*inventory.Item {
	return append([]*inventory.Item(nil), c.essential...)
}

// Home returns the delivery location ID.
func (c *Controller) Home() int { return c.home }

// Goal returns the winning coordinate.
func (c *Controller) Goal() Coordinate { return c.goal }

// CollectItem moves the named item from loc into the player's inventory.
// When codeRequired is true, code must match the item's secret code.
//
// Postcondition: On error neither the location nor the inventory changes.
func (c *Controller) CollectItem(name string, loc *world.Location, code string, codeRequired bool) (*inventory.Item, error) {
	it, ok := loc.FindItemByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrItemNotFound, name)
	}
	if codeRequired && !it.VerifyCode(code) {
		return nil, fmt.Errorf("%w for %q", ErrWrongCode, it.Name)
	}
	if c.player.InventoryFull() {
		return nil, fmt.Errorf("collecting %q: %w", it.Name, ErrInventoryFull)
	}
	if err := loc.RemoveItem(it); err != nil {
		return nil, err
	}
	if err := c.player.AddItem(it); err != nil {
		loc.AddItem(it)
		if errors.Is(err, inventory.ErrBackpackFull) {
			return nil, fmt.Errorf("collecting %q: %w", it.Name, ErrInventoryFull)
		}
		return nil, err
	}
	return it, nil
}

// DropItem moves item from the player's inventory to loc. An essential item
// dropped at home for the first time earns its target points.
//
// Postcondition: Returns the points awarded; item.WasDropped() is true on success.
func (c *Controller) DropItem(item *inventory.Item, loc *world.Location) (int, error) {
	if item == nil || !c.player.HasItem(item) {
		return 0, ErrItemNotHeld
	}
	if err := c.player.RemoveItem(item); err != nil {
		return 0, fmt.Errorf("dropping %q: %w", item.Name, ErrItemNotHeld)
	}
	loc.AddItem(item)
	awarded := 0
	if loc.ID == c.home && item.IsEssential && !item.WasDropped() && item.TargetPoints > 0 {
		if err := c.player.AddScore(item.TargetPoints); err == nil {
			awarded = item.TargetPoints
		}
	}
	item.Drop()
	return awarded, nil
}

// DropItemName drops the carried item whose name matches.
func (c *Controller) DropItemName(name string, loc *world.Location) (*inventory.Item, int, error) {
	it, ok := c.player.FindItemByName(name)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrItemNotHeld, name)
	}
	awarded, err := c.DropItem(it, loc)
	return it, awarded, err
}

// DropAll drops every carried item at loc in pickup order.
//
// Postcondition: The inventory is empty.
func (c *Controller) DropAll(loc *world.Location) []DropReceipt {
	held := c.player.Inventory()
	receipts := make([]DropReceipt, 0, len(held))
	for _, it := range held {
		awarded, err := c.DropItem(it, loc)
		if err != nil {
			continue
		}
		receipts = append(receipts, DropReceipt{Item: it, Awarded: awarded})
	}
	return receipts
}

// Speak talks to the NPC at loc. Points are granted once, with the line.
//
// Postcondition: Returns ErrNotLooked before the location was examined and
// ErrNoNPC where nobody is present. A repeated conversation returns
// Spoken == false and no error.
func (c *Controller) Speak(loc *world.Location) (SpeakResult, error) {
	if !loc.Looked() {
		return SpeakResult{}, ErrNotLooked
	}
	if !loc.HasNPC() {
		return SpeakResult{}, ErrNoNPC
	}
	line, ok := loc.TalkToNPC(c.player.Name())
	if !ok {
		return SpeakResult{}, nil
	}
	res := SpeakResult{Spoken: true, Line: line}
	if pts := loc.NPCScore(); pts > 0 {
		if err := c.player.AddScore(pts); err == nil {
			res.Points = pts
		}
	}
	return res, nil
}

// AllEssentialsDropped reports whether every essential item lies at the
// home location. Items are matched by name.
func (c *Controller) AllEssentialsDropped() bool {
	home, ok := c.world.LocationByID(c.home)
	if !ok {
		return false
	}
	for _, it := range c.essential {
		if _, found := home.FindItemByName(it.Name); !found {
			return false
		}
	}
	return true
}

// CheckForWin reports whether the player stands on the goal with every
// essential item delivered. A win finalizes the player's score.
func (c *Controller) CheckForWin() bool {
	x, y := c.player.Position()
	if x != c.goal.X || y != c.goal.Y || !c.AllEssentialsDropped() {
		return false
	}
	c.player.CalculateFinalScore()
	return true
}
