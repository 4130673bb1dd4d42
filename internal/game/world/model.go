// Package world provides the game world model: the location grid, locations,
// their access rules, and the loaders that build them from content files.
package world

import "strings"

// Direction represents a compass direction on the map grid.
type Direction string

// Compass directions. North decreases y; east increases x.
const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// StandardDirections contains every direction a player may move in.
var StandardDirections = []Direction{North, South, East, West}

// ParseDirection resolves a direction token case-insensitively.
//
// Postcondition: Returns (dir, true) for north/south/east/west, or ("", false).
func ParseDirection(token string) (Direction, bool) {
	d := Direction(strings.ToLower(strings.TrimSpace(token)))
	if d.IsStandard() {
		return d, true
	}
	return "", false
}

// IsStandard reports whether d is one of the four compass directions.
func (d Direction) IsStandard() bool {
	for _, sd := range StandardDirections {
		if d == sd {
			return true
		}
	}
	return false
}

// Delta returns the grid offset for one step in direction d.
//
// Precondition: d should be a standard direction; otherwise (0, 0) is returned.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// NoLocation marks a grid cell that holds no location.
const NoLocation = -1

// Action names a command a player may issue at a location.
const (
	ActionGo        = "go"
	ActionLook      = "look"
	ActionSpeak     = "speak"
	ActionCollect   = "collect"
	ActionInventory = "inventory"
	ActionScore     = "score"
	ActionDrop      = "drop"
	ActionQuit      = "quit"
)

// DefaultActions is the command vocabulary offered at every location.
var DefaultActions = []string{
	ActionGo, ActionLook, ActionSpeak, ActionCollect,
	ActionInventory, ActionScore, ActionDrop, ActionQuit,
}

// DefaultBlockedActions are withheld at a restricted location while it is locked.
var DefaultBlockedActions = []string{ActionLook, ActionSpeak, ActionCollect}

// NPCLine is the one-shot dialogue of the character found at a location.
type NPCLine struct {
	// Points is awarded to the player when the line is spoken.
	Points int
	// Text is the spoken line; "{name}" is replaced with the player's name.
	Text string
}

// NamePlaceholder is substituted with the player's name when an NPC speaks.
const NamePlaceholder = "{name}"
