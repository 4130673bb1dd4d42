package world

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/cory-johannsen/campus-adventure/internal/game/inventory"
)

// Sources holds the four content streams a World is built from.
type Sources struct {
	Map       io.Reader
	Locations io.Reader
	Items     io.Reader
	NPCs      io.Reader
}

// Options controls world construction.
type Options struct {
	// Actions is the command vocabulary offered at each location.
	Actions []string
	// RestrictedIDs lists locations locked until the key item is carried.
	RestrictedIDs []int
	// KeyItem is the start location ID of the item unlocking restricted locations.
	KeyItem int
	// EssentialItems lists start location IDs of the items required to win.
	// When empty every loaded item is essential.
	EssentialItems []int
}

// World is the immutable shape of a game: the location grid, the locations
// and the items. Per-location state (visited, items present, NPC spoken)
// changes during play; the set of locations and items does not.
type World struct {
	grid       [][]int
	locations  map[int]*Location
	items      *inventory.Registry
	restricted map[int]bool
}

// New builds a World from content sources.
//
// Precondition: every reader in src must be non-nil.
// Postcondition: Returns a validated World with every item placed at its
// start location, or a non-nil error.
func New(src Sources, opts Options) (*World, error) {
	if src.Map == nil || src.Locations == nil || src.Items == nil || src.NPCs == nil {
		return nil, fmt.Errorf("world: all content sources are required")
	}
	grid, err := LoadMap(src.Map)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	items, err := LoadItems(src.Items)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	if len(opts.EssentialItems) > 0 {
		essential := make(map[int]bool, len(opts.EssentialItems))
		for _, id := range opts.EssentialItems {
			if _, ok := items[id]; !ok {
				return nil, fmt.Errorf("world: essential item at location %d not found", id)
			}
			essential[id] = true
		}
		for id, it := range items {
			it.IsEssential = essential[id]
		}
	}
	locations, err := LoadLocations(src.Locations, grid, items, LocationOptions{
		Actions:       opts.Actions,
		RestrictedIDs: opts.RestrictedIDs,
		KeyItem:       opts.KeyItem,
	})
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	npcs, err := LoadNPCs(src.NPCs)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}

	reg := inventory.NewRegistry()
	for _, it := range items {
		if err := reg.Register(it); err != nil {
			return nil, fmt.Errorf("world: %w", err)
		}
	}
	w := &World{
		grid:       grid,
		locations:  locations,
		items:      reg,
		restricted: make(map[int]bool, len(opts.RestrictedIDs)),
	}
	for _, id := range opts.RestrictedIDs {
		w.restricted[id] = true
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}

	var errs []error
	for id, line := range npcs {
		loc, ok := locations[id]
		if !ok {
			errs = append(errs, fmt.Errorf("npc references unknown location %d", id))
			continue
		}
		loc.SetNPCDialogue(line)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("world: %w", errors.Join(errs...))
	}
	w.addLocationItems()
	return w, nil
}

// Validate checks the structural invariants of the world.
//
// Postcondition: Returns nil iff the grid is non-empty and rectangular, every
// grid ID resolves to a location, every restricted ID resolves, and every
// item start and target resolve. Every violation is reported.
func (w *World) Validate() error {
	var errs []error
	if len(w.grid) == 0 || len(w.grid[0]) == 0 {
		errs = append(errs, errors.New("map must not be empty"))
	}
	for y, row := range w.grid {
		if len(w.grid) > 0 && len(row) != len(w.grid[0]) {
			errs = append(errs, fmt.Errorf("map row %d has %d columns, want %d", y, len(row), len(w.grid[0])))
		}
		for x, id := range row {
			if id == NoLocation {
				continue
			}
			if _, ok := w.locations[id]; !ok {
				errs = append(errs, fmt.Errorf("map cell (%d, %d) references unknown location %d", x, y, id))
			}
		}
	}
	for id := range w.restricted {
		if _, ok := w.locations[id]; !ok {
			errs = append(errs, fmt.Errorf("restricted location %d not found", id))
		}
	}
	for _, it := range w.items.All() {
		if _, ok := w.locations[it.StartPosition]; !ok {
			errs = append(errs, fmt.Errorf("item %q starts at unknown location %d", it.Name, it.StartPosition))
		}
		if _, ok := w.locations[it.TargetPosition]; !ok {
			errs = append(errs, fmt.Errorf("item %q targets unknown location %d", it.Name, it.TargetPosition))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("world: validation failed: %w", errors.Join(errs...))
	}
	return nil
}

// addLocationItems places every item at its start location.
//
// Precondition: Validate has succeeded.
func (w *World) addLocationItems() {
	for _, it := range w.items.All() {
		w.locations[it.StartPosition].AddItem(it)
	}
}

// LocationAt returns the location at grid coordinate (x, y).
//
// Postcondition: Returns (nil, false) for out-of-range coordinates or empty cells.
func (w *World) LocationAt(x, y int) (*Location, bool) {
	if y < 0 || y >= len(w.grid) || x < 0 || x >= len(w.grid[y]) {
		return nil, false
	}
	id := w.grid[y][x]
	if id == NoLocation {
		return nil, false
	}
	loc, ok := w.locations[id]
	return loc, ok
}

// LocationByID returns the location with the given ID.
func (w *World) LocationByID(id int) (*Location, bool) {
	loc, ok := w.locations[id]
	return loc, ok
}

// ExistsInMap reports whether loc is one of this world's locations.
// Comparison is by identity.
func (w *World) ExistsInMap(loc *Location) bool {
	if loc == nil {
		return false
	}
	return w.locations[loc.ID] == loc
}

// PositionOf returns the grid coordinate of location id.
//
// Postcondition: ok is false if id does not appear on the grid.
func (w *World) PositionOf(id int) (x, y int, ok bool) {
	for gy, row := range w.grid {
		for gx, cell := range row {
			if cell == id {
				return gx, gy, true
			}
		}
	}
	return 0, 0, false
}

// LocationIDs returns every location ID in ascending order.
func (w *World) LocationIDs() []int {
	ids := make([]int, 0, len(w.locations))
	for id := range w.locations {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Items returns every item in the world ordered by start location.
func (w *World) Items() []*inventory.Item {
	return w.items.All()
}

// ItemAt returns the item that starts at location id.
func (w *World) ItemAt(id int) (*inventory.Item, bool) {
	return w.items.Item(id)
}

// IsRestricted reports whether location id was configured as restricted.
func (w *World) IsRestricted(id int) bool {
	return w.restricted[id]
}

// Grid returns a deep copy of the location grid.
func (w *World) Grid() [][]int {
	out := make([][]int, len(w.grid))
	for i, row := range w.grid {
		out[i] = append([]int(nil), row...)
	}
	return out
}

// Width returns the number of grid columns.
func (w *World) Width() int {
	if len(w.grid) == 0 {
		return 0
	}
	return len(w.grid[0])
}

// Height returns the number of grid rows.
func (w *World) Height() int {
	return len(w.grid)
}

// ReachableFrom returns the IDs of every location a player standing at
// (x, y) can walk to, including the starting one, in ascending order. Locks
// are ignored because a locked location can still be entered.
//
// Postcondition: Returns nil if (x, y) is not a location.
func (w *World) ReachableFrom(x, y int) []int {
	if _, ok := w.LocationAt(x, y); !ok {
		return nil
	}
	type cell struct{ x, y int }
	seen := map[cell]bool{{x, y}: true}
	queue := []cell{{x, y}}
	var ids []int
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		ids = append(ids, w.grid[c.y][c.x])
		for _, d := range StandardDirections {
			dx, dy := d.Delta()
			n := cell{c.x + dx, c.y + dy}
			if seen[n] {
				continue
			}
			if _, ok := w.LocationAt(n.x, n.y); !ok {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	sort.Ints(ids)
	return ids
}
