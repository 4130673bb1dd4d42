// Package handlers runs the game over a Telnet connection.
package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/campus-adventure/internal/frontend/telnet"
	"github.com/cory-johannsen/campus-adventure/internal/game/scenario"
	"github.com/cory-johannsen/campus-adventure/internal/game/session"
	"github.com/cory-johannsen/campus-adventure/internal/gameserver"
	"github.com/cory-johannsen/campus-adventure/internal/observability"
)

// GameHandler plays one independent game per Telnet connection.
type GameHandler struct {
	scenario *scenario.Scenario
	maxMoves int
	service  *gameserver.GameService
	sessions *session.Manager
	renderer TextRenderer
	logger   *zap.Logger
}

// NewGameHandler creates a GameHandler. A positive maxMoves overrides the
// scenario's move budget.
//
// Precondition: sc, svc, sessions and logger must be non-nil.
func NewGameHandler(sc *scenario.Scenario, maxMoves int, svc *gameserver.GameService, sessions *session.Manager, renderer TextRenderer, logger *zap.Logger) *GameHandler {
	return &GameHandler{
		scenario: sc,
		maxMoves: maxMoves,
		service:  svc,
		sessions: sessions,
		renderer: renderer,
		logger:   logger,
	}
}

// HandleSession asks for the player's name and runs a game until it ends,
// the client disconnects or ctx is cancelled.
//
// Postcondition: The session is unregistered on return.
func (h *GameHandler) HandleSession(ctx context.Context, conn *telnet.Conn) error {
	if err := conn.WriteLine(h.renderer.Render(gameserver.Event{
		Kind: gameserver.KindVictory,
		Text: fmt.Sprintf("Welcome to %s!", h.scenario.Name),
	})); err != nil {
		return err
	}
	if err := conn.WritePrompt("What is your name? "); err != nil {
		return err
	}
	name, err := conn.ReadLine()
	if err != nil {
		return fmt.Errorf("reading player name: %w", err)
	}

	sess, err := session.NewFromScenario(h.scenario, session.CleanName(name), h.maxMoves)
	if err != nil {
		_ = conn.WriteLine("The campus could not be loaded. Please try again later.")
		return fmt.Errorf("creating session: %w", err)
	}
	if err := h.sessions.Add(sess); err != nil {
		return err
	}
	defer func() { _ = h.sessions.Remove(sess.ID) }()

	observability.ForSession(h.logger, sess.ID, sess.Player.Name()).Info("player joined",
		zap.String("remote_addr", conn.RemoteAddr().String()),
		zap.Int("active", h.sessions.Count()),
	)

	resp := h.service.Begin(sess)
	for {
		if err := h.write(conn, resp); err != nil {
			return err
		}
		if resp.Finished() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			_ = conn.WriteLine("The server is shutting down. Goodbye!")
			return err
		}

		var line string
		if resp.AwaitingCode {
			line, err = conn.ReadSecret()
		} else {
			line, err = conn.ReadLine()
		}
		if err != nil {
			return err
		}
		resp = h.service.Handle(sess, line)
	}
}

// write sends resp to conn. A code prompt is the last event of its response
// and is written without a line break so the code is typed on the same line.
func (h *GameHandler) write(conn *telnet.Conn, resp *gameserver.Response) error {
	lines := h.renderer.RenderAll(resp)
	if resp.AwaitingCode && len(lines) > 0 {
		prompt := lines[len(lines)-1]
		if err := conn.WriteLines(lines[:len(lines)-1]); err != nil {
			return err
		}
		return conn.WritePrompt(prompt)
	}
	if err := conn.WriteLines(lines); err != nil {
		return err
	}
	if !resp.Finished() {
		return conn.WritePrompt("> ")
	}
	return nil
}
