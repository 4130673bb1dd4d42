package gameserver

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/campus-adventure/internal/game/command"
	"github.com/cory-johannsen/campus-adventure/internal/game/session"
	"github.com/cory-johannsen/campus-adventure/internal/observability"
)

// Fixed player-facing messages.
const (
	MsgNotAvailable   = "This action is not available in this location."
	MsgUnknownCommand = "Unknown command. Type 'menu' for a list of available commands."
	MsgPrompt         = "What to do? (type in 'menu' for a list of available commands and 'help [command]' to find how to use a command)"
	MsgGameFinished   = "The game is over."
	MsgOutOfMoves     = "Oh no... You ran out of moves! You could not make it to your test and failed. Game over!"
	MsgVictory        = "Congratulations! You've returned all items and reached the exam centre. You aced your test and went back feeling accomplished. You win!"
)

// GameService runs turns against sessions. It holds no per-session state and
// may serve any number of sessions, one turn per session at a time.
type GameService struct {
	commands *command.Registry
	worldH   *WorldHandler
	itemH    *ItemHandler
	npcH     *NPCHandler
	logger   *zap.Logger
}

// NewGameService creates a GameService.
//
// Precondition: cmdRegistry and logger must be non-nil.
// Postcondition: Returns a GameService ready to serve sessions.
func NewGameService(cmdRegistry *command.Registry, logger *zap.Logger) *GameService {
	return &GameService{
		commands: cmdRegistry,
		worldH:   NewWorldHandler(),
		itemH:    NewItemHandler(),
		npcH:     NewNPCHandler(),
		logger:   logger,
	}
}

// Begin introduces the scenario and describes the starting location.
//
// Postcondition: Returns the opening events of sess.
func (s *GameService) Begin(sess *session.Session) *Response {
	resp := &Response{}
	if sc := sess.Scenario; sc != nil {
		if sc.Plot != "" {
			resp.add(KindInfo, Banner("The Plot", sc.Plot))
		}
		if sc.Objectives != "" {
			resp.add(KindInfo, Banner("Objectives", sc.Objectives))
		}
	}
	s.sessionLogger(sess).Info("game started")
	s.worldH.Prelude(sess, resp)
	resp.add(KindPrompt, MsgPrompt)
	resp.Status = sess.Status()
	return resp
}

// Handle runs one turn for line. When a collection is pending, line is taken
// as the item's code.
//
// Postcondition: Returns the turn's events; Status reflects any game end.
func (s *GameService) Handle(sess *session.Session, line string) *Response {
	resp := &Response{}
	if sess.Finished() {
		resp.add(KindError, MsgGameFinished)
		resp.Status = sess.Status()
		return resp
	}

	input := line
	if name, ok := sess.PendingCollection(); ok {
		sess.ClearPending()
		s.itemH.CompleteCollect(sess, name, strings.TrimSpace(line), resp)
		input = "<code>"
	} else {
		s.dispatch(sess, line, resp)
	}

	s.afterCommand(sess, resp)

	x, y := sess.Player.Position()
	s.sessionLogger(sess).Debug("turn",
		zap.String("input", input),
		zap.Int("x", x),
		zap.Int("y", y),
		zap.Int("score", sess.Player.Score()),
		zap.Int("moves_left", sess.Player.MovesRemaining()),
		zap.Stringer("status", sess.Status()),
	)
	return resp
}

// dispatch routes a command line to the appropriate handler.
func (s *GameService) dispatch(sess *session.Session, line string, resp *Response) {
	parsed := command.Parse(line)
	if parsed.Empty() {
		resp.add(KindInfo, MsgPrompt)
		return
	}
	cmd, ok := s.commands.Resolve(parsed.Command)
	if !ok {
		resp.add(KindError, MsgUnknownCommand)
		return
	}
	loc, ok := sess.Location()
	if !ok {
		resp.addf(KindError, "You are nowhere. Position %v is not on the map.", fmtPosition(sess))
		return
	}
	if cmd.Action != "" && !loc.Allows(cmd.Action) {
		resp.add(KindError, MsgNotAvailable)
		return
	}

	switch cmd.Handler {
	case command.HandlerMove:
		dir := cmd.Name
		if !command.IsMovementCommand(cmd.Name) {
			dir = parsed.Target()
		}
		s.worldH.Move(sess, dir, resp)
	case command.HandlerLook:
		s.worldH.Look(loc, resp)
	case command.HandlerSpeak:
		s.npcH.Speak(sess, loc, resp)
	case command.HandlerCollect:
		s.itemH.BeginCollect(sess, loc, parsed.Target(), resp)
	case command.HandlerDrop:
		s.itemH.Drop(sess, loc, parsed.Target(), resp)
	case command.HandlerInventory:
		s.itemH.Inventory(sess, resp)
	case command.HandlerScore:
		resp.addf(KindScore, "Current Score: %d", sess.Player.Score())
	case command.HandlerQuit:
		s.handleQuit(sess, resp)
	case command.HandlerMenu:
		s.handleMenu(loc.AvailableActions(), resp)
	case command.HandlerHelp:
		s.handleHelp(parsed.Target(), resp)
	default:
		resp.add(KindError, MsgUnknownCommand)
	}
}

// afterCommand applies the end-of-turn checks and, while the game goes on,
// describes the location for the next turn.
func (s *GameService) afterCommand(sess *session.Session, resp *Response) {
	switch {
	case sess.Player.HasQuit():
		sess.End(session.StatusQuit)
	case sess.Player.CheckGameOver():
		resp.add(KindGameOver, MsgOutOfMoves)
		sess.End(session.StatusLost)
	case sess.Controller.CheckForWin():
		resp.add(KindVictory, MsgVictory)
		resp.addf(KindVictory, "Game Over. Your final score is %d", sess.Player.Score())
		sess.End(session.StatusWon)
	}

	if _, pending := sess.PendingCollection(); pending {
		resp.AwaitingCode = true
	} else if !sess.Finished() {
		s.worldH.Prelude(sess, resp)
		resp.add(KindPrompt, MsgPrompt)
	}
	if sess.Finished() {
		s.sessionLogger(sess).Info("game finished",
			zap.Stringer("status", sess.Status()),
			zap.Int("score", sess.Player.Score()),
		)
	}
	resp.Status = sess.Status()
}

func (s *GameService) sessionLogger(sess *session.Session) *zap.Logger {
	return observability.ForSession(s.logger, sess.ID, sess.Player.Name())
}

func (s *GameService) handleQuit(sess *session.Session, resp *Response) {
	sess.Player.Quit()
	resp.addf(KindStatus, "You head back to bed and skip the exam. Score: %d", sess.Player.Score())
}

func (s *GameService) handleMenu(actions []string, resp *Response) {
	resp.add(KindInfo, "[menu]")
	for _, a := range actions {
		resp.add(KindInfo, a)
	}
}

func (s *GameService) handleHelp(topic string, resp *Response) {
	if topic == "" {
		byCategory := s.commands.CommandsByCategory()
		for _, category := range command.CategoryOrder {
			cmds := byCategory[category]
			if len(cmds) == 0 {
				continue
			}
			resp.addf(KindInfo, "[%s]", category)
			for _, cmd := range cmds {
				resp.add(KindInfo, cmd.Help)
			}
		}
		return
	}
	text, ok := s.commands.Help(topic)
	if !ok {
		resp.add(KindError, "Error: this command does not exist!")
		return
	}
	resp.add(KindInfo, text)
}

// Banner formats a titled block of text the way the plot and objectives are shown.
func Banner(title, body string) string {
	return fmt.Sprintf("%s\n%s\n%s", title, strings.Repeat("=", len(title)), strings.TrimSpace(body))
}

func fmtPosition(sess *session.Session) string {
	x, y := sess.Player.Position()
	return fmt.Sprintf("(%d, %d)", x, y)
}
