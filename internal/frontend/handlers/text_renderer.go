package handlers

import (
	"github.com/muesli/reflow/wordwrap"

	"github.com/cory-johannsen/campus-adventure/internal/frontend/telnet"
	"github.com/cory-johannsen/campus-adventure/internal/gameserver"
)

// TextRenderer formats game events as Telnet text.
type TextRenderer struct {
	// Color enables ANSI styling.
	Color bool
	// Width is the wrap column for narrative text.
	Width int
}

var kindColors = map[gameserver.EventKind]string{
	gameserver.KindLocation:  telnet.White,
	gameserver.KindInfo:      telnet.Cyan,
	gameserver.KindSuccess:   telnet.Green,
	gameserver.KindError:     telnet.Red,
	gameserver.KindNPC:       telnet.BrightYellow,
	gameserver.KindItems:     telnet.Yellow,
	gameserver.KindInventory: telnet.Yellow,
	gameserver.KindScore:     telnet.Magenta,
	gameserver.KindStatus:    telnet.Dim,
	gameserver.KindPrompt:    telnet.BrightWhite,
	gameserver.KindGameOver:  telnet.Bold + telnet.Red,
	gameserver.KindVictory:   telnet.Bold + telnet.Green,
}

// Render formats a single event. Status lines keep their column layout and
// are never wrapped.
func (r TextRenderer) Render(ev gameserver.Event) string {
	text := ev.Text
	if ev.Kind != gameserver.KindStatus && r.Width > 0 {
		text = wordwrap.String(text, r.Width)
	}
	if !r.Color {
		return text
	}
	color, ok := kindColors[ev.Kind]
	if !ok {
		return text
	}
	return telnet.ColorizeLines(color, text)
}

// RenderAll formats every event of resp in order.
func (r TextRenderer) RenderAll(resp *gameserver.Response) []string {
	out := make([]string, 0, len(resp.Events))
	for _, ev := range resp.Events {
		out = append(out, r.Render(ev))
	}
	return out
}
