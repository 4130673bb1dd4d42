package gameserver

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/campus-adventure/internal/game/player"
	"github.com/cory-johannsen/campus-adventure/internal/game/session"
	"github.com/cory-johannsen/campus-adventure/internal/game/world"
)

// World messages.
const (
	MsgNoExit           = "Whoops! No exit here. Better turn back."
	MsgInvalidDirection = "Invalid Command: please choose (north, south, east, west)"
	MsgNoMovesLeft      = "You have no moves left."
	MsgNPCHint          = "You found someone you recognize. Maybe speak to them?"
	MsgNoItems          = "There seem to be no items in this location"
	MsgOneItem          = "There is an item here. Try collecting it."
	MsgSomeItems        = "There are some items here. Try collecting them."
	MsgFoundItems       = "Here are all the item(s) that you found: "
	MsgCollectHint      = "Type 'collect [item_name]' to collect the item."
)

// WorldHandler handles movement, looking around and the per-turn location
// prelude.
type WorldHandler struct{}

// NewWorldHandler creates a WorldHandler.
func NewWorldHandler() *WorldHandler {
	return &WorldHandler{}
}

// Move walks the player one step in dir. A move into a wall still spends the move.
//
// Postcondition: On success the next Prelude describes the new location.
func (h *WorldHandler) Move(sess *session.Session, dir string, resp *Response) {
	p := sess.Player
	before := clockFor(p)

	outcome, err := p.Move(dir)
	switch {
	case errors.Is(err, player.ErrInvalidDirection):
		resp.add(KindError, MsgInvalidDirection)
		return
	case errors.Is(err, player.ErrOutOfMoves):
		resp.add(KindError, MsgNoMovesLeft)
		return
	case err != nil:
		resp.addf(KindError, "Could not move: %v", err)
		return
	}
	if outcome == player.Blocked {
		resp.add(KindError, MsgNoExit)
	}

	if after := clockFor(p); after.Period() != before.Period() {
		resp.add(KindInfo, FlavorText(after.Period()))
	}
}

// Look examines loc: its long description, any NPC and the items lying there.
//
// Postcondition: loc.Looked() is true.
func (h *WorldHandler) Look(loc *world.Location, resp *Response) {
	resp.add(KindLocation, loc.LookAround())
	if loc.HasNPC() {
		resp.add(KindNPC, MsgNPCHint)
	}

	items := loc.LookForItems()
	if len(items) == 0 {
		resp.add(KindInfo, MsgNoItems)
		return
	}
	if len(items) == 1 {
		resp.add(KindInfo, MsgOneItem)
	} else {
		resp.add(KindInfo, MsgSomeItems)
	}
	resp.add(KindItems, MsgFoundItems)
	for i, it := range items {
		resp.addf(KindItems, "%d. %s", i+1, it.Name)
	}
	resp.add(KindInfo, MsgCollectHint)
}

// Prelude opens a turn: it updates access to the current location, describes
// it and reports the player's position, remaining moves and the time of day.
func (h *WorldHandler) Prelude(sess *session.Session, resp *Response) {
	p := sess.Player
	loc, ok := sess.Location()
	if ok {
		if pts := loc.UpdateAccess(p); pts > 0 {
			resp.addf(KindScore, "New place discovered! +%d points.", pts)
		}
		resp.add(KindLocation, loc.Description())
	}
	resp.add(KindStatus, StatusLine(p))
}

// StatusLine formats the player's position, move budget and clock.
func StatusLine(p *player.Player) string {
	x, y := p.Position()
	clock := clockFor(p)
	return fmt.Sprintf("Player position: (%d, %d)           Moves Left: (%d/%d)           Time: %s (%s)",
		x, y, p.MovesRemaining(), p.MaxMoves(), clock, clock.Period())
}

func clockFor(p *player.Player) ClockTime {
	return ClockForMoves(p.MaxMoves()-p.MovesRemaining(), p.MaxMoves())
}
