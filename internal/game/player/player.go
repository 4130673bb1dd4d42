// Package player defines the player: position on the map, move budget,
// score and carried items.
package player

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/campus-adventure/internal/game/inventory"
	"github.com/cory-johannsen/campus-adventure/internal/game/world"
)

// DefaultMaxMoves is the move budget of a new game.
const DefaultMaxMoves = 50

var (
	// ErrInvalidDirection is returned by Move for a token that is not a compass direction.
	ErrInvalidDirection = errors.New("invalid direction")
	// ErrOutOfMoves is returned by Move when no moves remain.
	ErrOutOfMoves = errors.New("no moves left")
	// ErrNonPositiveScore is returned by AddScore for amounts <= 0.
	ErrNonPositiveScore = errors.New("score amount must be positive")
)

// MoveOutcome reports what a valid move attempt did.
type MoveOutcome int

const (
	// Moved means the player now stands on the destination cell.
	Moved MoveOutcome = iota
	// Blocked means the destination was invalid; the move was still spent.
	Blocked
)

// String returns a lower-case name for the outcome.
func (o MoveOutcome) String() string {
	if o == Moved {
		return "moved"
	}
	return "blocked"
}

// Player is the single actor of a game.
type Player struct {
	name      string
	x, y      int
	grid      [][]int
	backpack  *inventory.Backpack
	score     int
	maxMoves  int
	remaining int
	quit      bool
	finalized bool
}

// New creates a player at (x, y) with a full move budget and an empty
// inventory.
//
// Precondition: grid is non-empty; maxMoves > 0; capacity > 0.
// Postcondition: Returns an error if (x, y) is not a valid location cell.
func New(x, y int, grid [][]int, maxMoves int, name string, capacity int) (*Player, error) {
	if maxMoves <= 0 {
		return nil, fmt.Errorf("player: max moves must be > 0, got %d", maxMoves)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("player: inventory capacity must be > 0, got %d", capacity)
	}
	p := &Player{
		name:      name,
		x:         x,
		y:         y,
		grid:      grid,
		backpack:  inventory.NewBackpack(capacity),
		maxMoves:  maxMoves,
		remaining: maxMoves,
	}
	if !p.IsLocationValid(x, y) {
		return nil, fmt.Errorf("player: start position (%d, %d) is not a location", x, y)
	}
	return p, nil
}

// Name returns the player's display name.
func (p *Player) Name() string { return p.name }

// Position returns the player's grid coordinate.
func (p *Player) Position() (x, y int) { return p.x, p.y }

// Score returns the current score.
func (p *Player) Score() int { return p.score }

// MaxMoves returns the move budget.
func (p *Player) MaxMoves() int { return p.maxMoves }

// MovesRemaining returns the number of moves left.
func (p *Player) MovesRemaining() int { return p.remaining }

// IsLocationValid reports whether (x, y) lies on the grid and holds a location.
func (p *Player) IsLocationValid(x, y int) bool {
	if y < 0 || y >= len(p.grid) || x < 0 || x >= len(p.grid[y]) {
		return false
	}
	return p.grid[y][x] != world.NoLocation
}

// Move spends one move walking in direction. The move is spent before the
// destination is checked, so walking into a wall still costs a move.
//
// Postcondition: ErrInvalidDirection and ErrOutOfMoves leave the player
// unchanged. Otherwise MovesRemaining() drops by one and the position changes
// only when the outcome is Moved.
func (p *Player) Move(direction string) (MoveOutcome, error) {
	d, ok := world.ParseDirection(direction)
	if !ok {
		return Blocked, fmt.Errorf("%w: %q", ErrInvalidDirection, direction)
	}
	if p.remaining <= 0 {
		return Blocked, ErrOutOfMoves
	}
	p.remaining--
	dx, dy := d.Delta()
	nx, ny := p.x+dx, p.y+dy
	if !p.IsLocationValid(nx, ny) {
		return Blocked, nil
	}
	p.x, p.y = nx, ny
	return Moved, nil
}

// AddScore increases the score by amount.
//
// Postcondition: Returns ErrNonPositiveScore and leaves the score unchanged if amount <= 0.
func (p *Player) AddScore(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %d", ErrNonPositiveScore, amount)
	}
	p.score += amount
	return nil
}

// CalculateFinalScore adds the moves spent to the score. Only the first call
// changes the score.
//
// Postcondition: Returns the final score.
func (p *Player) CalculateFinalScore() int {
	if !p.finalized {
		p.finalized = true
		p.score += p.maxMoves - p.remaining
	}
	return p.score
}

// CheckGameOver reports whether the move budget is exhausted.
func (p *Player) CheckGameOver() bool {
	return p.remaining <= 0
}

// Quit marks the player as having left the game.
func (p *Player) Quit() { p.quit = true }

// HasQuit reports whether Quit was called.
func (p *Player) HasQuit() bool { return p.quit }

// AddItem puts item into the inventory.
//
// Postcondition: Returns an error wrapping inventory.ErrBackpackFull when full.
func (p *Player) AddItem(item *inventory.Item) error {
	return p.backpack.Add(item)
}

// RemoveItem takes item out of the inventory.
//
// Postcondition: Returns inventory.ErrItemNotHeld if the item is not carried.
func (p *Player) RemoveItem(item *inventory.Item) error {
	return p.backpack.Remove(item)
}

// FindItemByName returns the carried item matching name, ignoring case and
// surrounding whitespace.
func (p *Player) FindItemByName(name string) (*inventory.Item, bool) {
	return p.backpack.FindByName(name)
}

// HasItem reports whether this exact item is carried.
func (p *Player) HasItem(item *inventory.Item) bool {
	return p.backpack.Contains(item)
}

// Inventory returns the carried items in pickup order.
func (p *Player) Inventory() []*inventory.Item {
	return p.backpack.Items()
}

// InventoryFull reports whether no more items can be carried.
func (p *Player) InventoryFull() bool {
	return p.backpack.Full()
}

// Capacity returns the number of items the player can carry.
func (p *Player) Capacity() int {
	return p.backpack.MaxSlots
}
