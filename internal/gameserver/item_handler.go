package gameserver

import (
	"errors"

	"github.com/cory-johannsen/campus-adventure/internal/game/controller"
	"github.com/cory-johannsen/campus-adventure/internal/game/session"
	"github.com/cory-johannsen/campus-adventure/internal/game/world"
)

// Item messages.
const (
	MsgCodePrompt     = "Enter the 4-digit code to collect this item: "
	MsgCollectWhat    = "Collect what? Type 'collect [item_name]' to collect the item."
	MsgItemNotFound   = "Item not found."
	MsgWrongCode      = "Incorrect code. Could not collect the item."
	MsgInventoryFull  = "Not enough space in inventory."
	MsgTakeItHome     = "Better take this back to your dorm room."
	MsgNotInInventory = "Item not found in inventory."
	MsgNothingToDrop  = "You have nothing to drop."
	MsgEmptyInventory = "You have no items in here. Try looking around and pick up what you find."
)

// ItemHandler handles collecting, dropping and listing items.
type ItemHandler struct{}

// NewItemHandler creates an ItemHandler.
func NewItemHandler() *ItemHandler {
	return &ItemHandler{}
}

// BeginCollect starts collecting the named item at loc. The item's code is
// read from the next input line.
//
// Postcondition: When the item is present the session awaits its code.
func (h *ItemHandler) BeginCollect(sess *session.Session, loc *world.Location, name string, resp *Response) {
	if name == "" {
		resp.add(KindError, MsgCollectWhat)
		return
	}
	it, ok := loc.FindItemByName(name)
	if !ok {
		resp.add(KindError, MsgItemNotFound)
		return
	}
	sess.AwaitCode(it.Name)
	resp.add(KindPrompt, MsgCodePrompt)
}

// CompleteCollect finishes a pending collection with code.
//
// Postcondition: On success the item moves from the current location to the
// player's inventory.
func (h *ItemHandler) CompleteCollect(sess *session.Session, name, code string, resp *Response) {
	loc, ok := sess.Location()
	if !ok {
		resp.add(KindError, MsgItemNotFound)
		return
	}
	it, err := sess.Controller.CollectItem(name, loc, code, true)
	switch {
	case errors.Is(err, controller.ErrWrongCode):
		resp.add(KindError, MsgWrongCode)
	case errors.Is(err, controller.ErrInventoryFull):
		resp.add(KindError, MsgInventoryFull)
	case errors.Is(err, controller.ErrItemNotFound):
		resp.add(KindError, MsgItemNotFound)
	case err != nil:
		resp.addf(KindError, "Could not collect the item: %v", err)
	default:
		resp.addf(KindSuccess, "Collected %s.", it.Name)
		if it.IsEssential {
			resp.add(KindInfo, MsgTakeItHome)
		}
	}
}

// Drop drops the named item at loc, or everything carried when name is empty.
//
// Postcondition: Points are reported for each essential item delivered home
// for the first time.
func (h *ItemHandler) Drop(sess *session.Session, loc *world.Location, name string, resp *Response) {
	if name == "" {
		receipts := sess.Controller.DropAll(loc)
		if len(receipts) == 0 {
			resp.add(KindInfo, MsgNothingToDrop)
			return
		}
		for _, r := range receipts {
			reportDrop(r, resp)
		}
		return
	}

	it, awarded, err := sess.Controller.DropItemName(name, loc)
	if err != nil {
		if errors.Is(err, controller.ErrItemNotHeld) {
			resp.add(KindError, MsgNotInInventory)
			return
		}
		resp.addf(KindError, "Could not drop the item: %v", err)
		return
	}
	reportDrop(controller.DropReceipt{Item: it, Awarded: awarded}, resp)
}

// Inventory lists the carried items, numbered from zero.
func (h *ItemHandler) Inventory(sess *session.Session, resp *Response) {
	items := sess.Player.Inventory()
	if len(items) == 0 {
		resp.add(KindInventory, MsgEmptyInventory)
		return
	}
	for i, it := range items {
		resp.addf(KindInventory, "Item %d: %s (worth %d points)", i, it.Name, it.TargetPoints)
	}
}

func reportDrop(r controller.DropReceipt, resp *Response) {
	resp.addf(KindSuccess, "Dropped %s.", r.Item.Name)
	if r.Awarded > 0 {
		resp.addf(KindScore, "%s is back where it belongs. +%d points.", r.Item.Name, r.Awarded)
	}
}
