package gameserver

import (
	"errors"

	"github.com/cory-johannsen/campus-adventure/internal/game/controller"
	"github.com/cory-johannsen/campus-adventure/internal/game/session"
	"github.com/cory-johannsen/campus-adventure/internal/game/world"
)

// NPC messages.
const (
	MsgLookFirst    = "You might notice more if you look around first."
	MsgNoOneHere    = "There's no one here to talk to."
	MsgNothingToSay = "They wave at you, but have nothing more to say."
)

// NPCHandler handles conversations with the people found around campus.
type NPCHandler struct{}

// NewNPCHandler creates an NPCHandler.
func NewNPCHandler() *NPCHandler {
	return &NPCHandler{}
}

// Speak talks to whoever is at loc.
//
// Precondition: loc is the session's current location.
// Postcondition: The NPC's points are awarded with its first line only.
func (h *NPCHandler) Speak(sess *session.Session, loc *world.Location, resp *Response) {
	res, err := sess.Controller.Speak(loc)
	switch {
	case errors.Is(err, controller.ErrNotLooked):
		resp.add(KindInfo, MsgLookFirst)
		return
	case errors.Is(err, controller.ErrNoNPC):
		resp.add(KindInfo, MsgNoOneHere)
		return
	case err != nil:
		resp.addf(KindError, "Could not speak: %v", err)
		return
	}
	if !res.Spoken {
		resp.add(KindInfo, MsgNothingToSay)
		return
	}
	resp.add(KindNPC, res.Line)
	if res.Points > 0 {
		resp.addf(KindScore, "+%d points.", res.Points)
	}
}
