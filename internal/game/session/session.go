// Package session provides the per-game session object that owns the world,
// the player and the rule controller, and a registry of active sessions.
package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/campus-adventure/internal/game/controller"
	"github.com/cory-johannsen/campus-adventure/internal/game/player"
	"github.com/cory-johannsen/campus-adventure/internal/game/scenario"
	"github.com/cory-johannsen/campus-adventure/internal/game/world"
)

// Status is the lifecycle state of a game.
type Status int

const (
	// StatusPlaying means the game accepts commands.
	StatusPlaying Status = iota
	// StatusWon means the win condition was met.
	StatusWon
	// StatusLost means the move budget ran out.
	StatusLost
	// StatusQuit means the player left the game.
	StatusQuit
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	case StatusQuit:
		return "quit"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Session is one game in progress. It is not safe for concurrent use; a
// single driver issues one command at a time.
type Session struct {
	// ID uniquely identifies the session.
	ID string
	// Scenario is the manifest the session was built from.
	Scenario *scenario.Scenario
	// World is the session's own copy of the game world.
	World *world.World
	// Player is the session's player.
	Player *player.Player
	// Controller applies the game rules.
	Controller *controller.Controller

	status  Status
	pending string
}

// New assembles a session from already-built parts.
//
// Precondition: w, p and c must be non-nil and refer to each other.
// Postcondition: Status() is StatusPlaying and no collection is pending.
func New(id string, sc *scenario.Scenario, w *world.World, p *player.Player, c *controller.Controller) *Session {
	return &Session{
		ID:         id,
		Scenario:   sc,
		World:      w,
		Player:     p,
		Controller: c,
	}
}

// NewFromScenario builds a fresh world, player and controller from sc.
// A positive maxMoves overrides the scenario's move budget.
//
// Precondition: sc must be a validated scenario.
// Postcondition: Returns a playing session with a random ID, or a non-nil error.
func NewFromScenario(sc *scenario.Scenario, playerName string, maxMoves int) (*Session, error) {
	w, err := sc.BuildWorld()
	if err != nil {
		return nil, err
	}
	if maxMoves <= 0 {
		maxMoves = sc.MaxMoves
	}
	p, err := player.New(sc.Start.X, sc.Start.Y, w.Grid(), maxMoves, playerName, sc.InventoryCapacity)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	c, err := controller.New(w, p, sc.ControllerOptions())
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	return New(uuid.NewString(), sc, w, p, c), nil
}

// Location returns the location the player stands on.
func (s *Session) Location() (*world.Location, bool) {
	x, y := s.Player.Position()
	return s.World.LocationAt(x, y)
}

// Status returns the lifecycle state.
func (s *Session) Status() Status { return s.status }

// Finished reports whether the game has ended.
func (s *Session) Finished() bool { return s.status != StatusPlaying }

// End moves a playing session into a terminal status. Ending an already
// finished session has no effect.
//
// Precondition: status must not be StatusPlaying.
func (s *Session) End(status Status) {
	if s.status != StatusPlaying || status == StatusPlaying {
		return
	}
	s.status = status
	s.pending = ""
}

// AwaitCode records that the named item is waiting for its collection code.
func (s *Session) AwaitCode(itemName string) { s.pending = itemName }

// PendingCollection returns the item waiting for a code, if any.
func (s *Session) PendingCollection() (string, bool) {
	return s.pending, s.pending != ""
}

// ClearPending forgets any pending collection.
func (s *Session) ClearPending() { s.pending = "" }
