// Package gameserver provides the turn engine: it parses player input,
// applies it to a session through the game rules and returns the ordered
// events a frontend renders.
package gameserver

import (
	"fmt"

	"github.com/cory-johannsen/campus-adventure/internal/game/session"
)

// EventKind classifies an event for rendering.
type EventKind string

// Event kinds.
const (
	KindLocation  EventKind = "location"
	KindInfo      EventKind = "info"
	KindSuccess   EventKind = "success"
	KindError     EventKind = "error"
	KindNPC       EventKind = "npc"
	KindItems     EventKind = "items"
	KindInventory EventKind = "inventory"
	KindScore     EventKind = "score"
	KindStatus    EventKind = "status"
	KindPrompt    EventKind = "prompt"
	KindGameOver  EventKind = "game_over"
	KindVictory   EventKind = "victory"
)

// Event is one line of output.
type Event struct {
	Kind EventKind
	Text string
}

// Response is the outcome of one turn.
type Response struct {
	// Events are rendered in order.
	Events []Event
	// Status is the session status after the turn.
	Status session.Status
	// AwaitingCode is true when the next input line is a collection code.
	AwaitingCode bool
}

func (r *Response) add(kind EventKind, text string) {
	r.Events = append(r.Events, Event{Kind: kind, Text: text})
}

func (r *Response) addf(kind EventKind, format string, args ...any) {
	r.add(kind, fmt.Sprintf(format, args...))
}

// Texts returns the text of every event of the given kind, in order.
func (r *Response) Texts(kind EventKind) []string {
	var out []string
	for _, e := range r.Events {
		if e.Kind == kind {
			out = append(out, e.Text)
		}
	}
	return out
}

// Finished reports whether the game ended during this turn or before it.
func (r *Response) Finished() bool {
	return r.Status != session.StatusPlaying
}
