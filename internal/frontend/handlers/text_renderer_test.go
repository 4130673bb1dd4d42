package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/campus-adventure/internal/frontend/telnet"
	"github.com/cory-johannsen/campus-adventure/internal/gameserver"
)

func TestRender_Plain(t *testing.T) {
	r := TextRenderer{Width: 80}
	got := r.Render(gameserver.Event{Kind: gameserver.KindSuccess, Text: "Collected T-card."})
	assert.Equal(t, "Collected T-card.", got)
}

func TestRender_Colored(t *testing.T) {
	r := TextRenderer{Color: true, Width: 80}
	got := r.Render(gameserver.Event{Kind: gameserver.KindError, Text: gameserver.MsgNoExit})
	assert.Equal(t, telnet.Red+gameserver.MsgNoExit+telnet.Reset, got)
}

func TestRender_WrapsNarrative(t *testing.T) {
	r := TextRenderer{Width: 20}
	got := r.Render(gameserver.Event{
		Kind: gameserver.KindLocation,
		Text: "The campus cafe smells of burnt espresso.",
	})
	for _, line := range strings.Split(got, "\n") {
		assert.LessOrEqual(t, len(line), 20, "line %q", line)
	}
}

func TestRender_StatusNotWrapped(t *testing.T) {
	r := TextRenderer{Width: 20}
	status := "Player position: (0, 0)           Moves Left: (50/50)"
	assert.Equal(t, status, r.Render(gameserver.Event{Kind: gameserver.KindStatus, Text: status}))
}

func TestRenderAll(t *testing.T) {
	r := TextRenderer{Width: 80}
	resp := &gameserver.Response{Events: []gameserver.Event{
		{Kind: gameserver.KindInfo, Text: "a"},
		{Kind: gameserver.KindScore, Text: "b"},
	}}
	assert.Equal(t, []string{"a", "b"}, r.RenderAll(resp))
}

func TestPropertyColorRenderStripsToPlain(t *testing.T) {
	kinds := []gameserver.EventKind{
		gameserver.KindLocation, gameserver.KindInfo, gameserver.KindSuccess,
		gameserver.KindError, gameserver.KindNPC, gameserver.KindVictory,
	}
	rapid.Check(t, func(t *rapid.T) {
		ev := gameserver.Event{
			Kind: rapid.SampledFrom(kinds).Draw(t, "kind"),
			Text: rapid.StringMatching(`[a-z]{1,10}( [a-z]{1,10}){0,12}`).Draw(t, "text"),
		}
		plain := TextRenderer{Width: 30}.Render(ev)
		colored := TextRenderer{Color: true, Width: 30}.Render(ev)
		if telnet.StripANSI(colored) != plain {
			t.Fatalf("colored %q does not strip to %q", colored, plain)
		}
	})
}
