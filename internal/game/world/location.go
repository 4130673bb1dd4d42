package world

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/campus-adventure/internal/game/inventory"
)

// AccessHolder is the view of a player that a location needs when access is
// re-evaluated.
type AccessHolder interface {
	// HasItem reports whether the player carries this exact item.
	HasItem(item *inventory.Item) bool
	// AddScore grants amount points.
	AddScore(amount int) error
}

// LockSpec restricts a location until the player carries RequiredItem.
type LockSpec struct {
	// RequiredItem must be in the player's inventory to unlock the location.
	RequiredItem *inventory.Item
	// Blocked lists the actions withheld while locked.
	Blocked []string
}

// Location is a node of the world map.
//
// A Location with a non-nil lock specification is a restricted location: its
// locked state is recomputed from the player's inventory on every
// UpdateAccess call.
type Location struct {
	// ID is the unique map identifier of the location.
	ID int
	// MapWidth and MapHeight are the dimensions of the containing map.
	MapWidth  int
	MapHeight int
	// Score is awarded the first time the player is admitted here.
	Score int

	short     string
	long      string
	visited   bool
	looked    bool
	floor     inventory.Floor
	actions   []string
	npc       NPCLine
	npcSpoken bool
	lock      *LockSpec
	locked    bool
}

// NewLocation creates an unrestricted, unvisited location.
//
// Precondition: id >= 1; short and long must be non-empty; score >= 0.
// Postcondition: Returns a Location offering the given actions.
func NewLocation(id, mapWidth, mapHeight, score int, short, long string, actions []string) *Location {
	l := &Location{
		ID:        id,
		MapWidth:  mapWidth,
		MapHeight: mapHeight,
		Score:     score,
		short:     short,
		long:      long,
	}
	l.UpdateAvailableActions(actions)
	return l
}

// NewRestrictedLocation creates a location that starts locked until the
// player carries lock.RequiredItem.
//
// Precondition: lock.RequiredItem must be non-nil.
// Postcondition: Locked() is true until the first UpdateAccess admits the player.
func NewRestrictedLocation(id, mapWidth, mapHeight, score int, short, long string, actions []string, lock LockSpec) *Location {
	if len(lock.Blocked) == 0 {
		lock.Blocked = DefaultBlockedActions
	}
	l := &Location{
		ID:        id,
		MapWidth:  mapWidth,
		MapHeight: mapHeight,
		Score:     score,
		short:     short,
		long:      long,
		lock:      &lock,
		locked:    true,
	}
	l.UpdateAvailableActions(actions)
	return l
}

// Restricted reports whether the location carries a lock specification.
func (l *Location) Restricted() bool {
	return l.lock != nil
}

// Locked reports whether the location currently denies access.
func (l *Location) Locked() bool {
	return l.lock != nil && l.locked
}

// RequiredItem returns the item that unlocks the location, or nil.
func (l *Location) RequiredItem() *inventory.Item {
	if l.lock == nil {
		return nil
	}
	return l.lock.RequiredItem
}

// Visited reports whether the long description has been shown.
func (l *Location) Visited() bool { return l.visited }

// Looked reports whether the player has looked around here.
func (l *Location) Looked() bool { return l.looked }

// NPCSpoken reports whether the NPC has delivered its line.
func (l *Location) NPCSpoken() bool { return l.npcSpoken }

// LookAround marks the location as examined and returns its long description.
//
// Postcondition: Looked() is true.
func (l *Location) LookAround() string {
	l.looked = true
	return l.long
}

// Description returns the long description on the first admitted visit and
// the short description afterwards. A locked location returns an
// access-denied message and is not marked visited.
//
// Postcondition: unless locked, Visited() is true.
func (l *Location) Description() string {
	if l.Locked() {
		return fmt.Sprintf("Access Denied: This location needs a %s to enter.", l.lock.RequiredItem.Name)
	}
	if l.visited {
		return l.short
	}
	l.visited = true
	return l.long
}

// UpdateAccess re-evaluates the lock against p's inventory and, when the
// player is admitted to a location not yet visited, awards its score.
// It must run before Description in the same turn because Description
// flips the visited flag it reads.
//
// Postcondition: Returns the points awarded (0 when none).
func (l *Location) UpdateAccess(p AccessHolder) int {
	if l.lock != nil {
		l.locked = !p.HasItem(l.lock.RequiredItem)
		if l.locked {
			return 0
		}
	}
	if l.visited || l.Score <= 0 {
		return 0
	}
	if err := p.AddScore(l.Score); err != nil {
		return 0
	}
	return l.Score
}

// LookForItems returns the items lying here. An empty slice means there is
// nothing to find.
//
// Postcondition: Returns a non-nil copy.
func (l *Location) LookForItems() []*inventory.Item {
	return l.floor.Items()
}

// AddItem places item at this location.
func (l *Location) AddItem(item *inventory.Item) {
	l.floor.Drop(item)
}

// RemoveItem takes item away from this location.
//
// Postcondition: Returns inventory.ErrItemNotFound if the item is not here.
func (l *Location) RemoveItem(item *inventory.Item) error {
	if err := l.floor.Pickup(item); err != nil {
		return fmt.Errorf("location %d: removing %q: %w", l.ID, item.Name, err)
	}
	return nil
}

// FindItemByName returns the item here whose name matches, ignoring case and
// surrounding whitespace.
//
// Postcondition: Returns (item, true) if found, or (nil, false) otherwise.
func (l *Location) FindItemByName(name string) (*inventory.Item, bool) {
	return l.floor.FindByName(name)
}

// SetNPCDialogue sets the line spoken by the NPC here. An empty text means
// no NPC is present.
func (l *Location) SetNPCDialogue(line NPCLine) {
	l.npc = line
}

// HasNPC reports whether an NPC is present.
func (l *Location) HasNPC() bool {
	return l.npc.Text != ""
}

// TalkToNPC returns the NPC's line with the player's name substituted the
// first time it is called. Later calls return ("", false).
//
// Postcondition: NPCSpoken() is true if an NPC is present.
func (l *Location) TalkToNPC(playerName string) (string, bool) {
	if !l.HasNPC() || l.npcSpoken {
		return "", false
	}
	l.npcSpoken = true
	return strings.ReplaceAll(l.npc.Text, NamePlaceholder, playerName), true
}

// NPCScore returns the points encoded with the NPC's line, or 0 when no NPC
// is present. The caller grants them.
func (l *Location) NPCScore() int {
	if !l.HasNPC() {
		return 0
	}
	return l.npc.Points
}

// UpdateAvailableActions replaces the command vocabulary of this location.
// For a restricted location the blocked actions are held back and only
// offered while unlocked.
func (l *Location) UpdateAvailableActions(actions []string) {
	l.actions = make([]string, 0, len(actions))
	for _, a := range actions {
		if l.lock != nil && contains(l.lock.Blocked, a) {
			continue
		}
		l.actions = append(l.actions, a)
	}
}

// AvailableActions returns the actions currently offered here.
//
// Postcondition: Returns a copy; a locked location never includes a blocked action.
func (l *Location) AvailableActions() []string {
	out := make([]string, len(l.actions), len(l.actions)+3)
	copy(out, l.actions)
	if l.lock != nil && !l.locked {
		out = append(out, l.lock.Blocked...)
	}
	return out
}

// Allows reports whether action is currently offered here.
func (l *Location) Allows(action string) bool {
	return contains(l.AvailableActions(), action)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
