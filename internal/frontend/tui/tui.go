// Package tui is the single-player terminal interface: a scrolling story log,
// a status panel and a command line.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/cory-johannsen/campus-adventure/internal/game/scenario"
	"github.com/cory-johannsen/campus-adventure/internal/game/session"
	"github.com/cory-johannsen/campus-adventure/internal/gameserver"
)

type sessionState int

const (
	stateName sessionState = iota
	statePlaying
	stateFinished
	stateError
)

const (
	namePlaceholder    = "Your name"
	commandPlaceholder = "What to do?"
	codePlaceholder    = "4-digit code"
	finishedHint       = "Press Enter to leave."
	logShare           = 0.7
)

// Model is the bubbletea model of one game.
type Model struct {
	state    sessionState
	scenario *scenario.Scenario
	maxMoves int
	service  *gameserver.GameService
	session  *session.Session

	textInput textinput.Model
	viewport  viewport.Model
	gameLog   string
	wrapWidth int
	width     int
	height    int
	err       error
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	kindStyles = map[gameserver.EventKind]lipgloss.Style{
		gameserver.KindLocation:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")),
		gameserver.KindInfo:      lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
		gameserver.KindSuccess:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		gameserver.KindError:     errorStyle,
		gameserver.KindNPC:       lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Italic(true),
		gameserver.KindItems:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		gameserver.KindInventory: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		gameserver.KindScore:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		gameserver.KindStatus:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		gameserver.KindPrompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		gameserver.KindGameOver:  errorStyle.Bold(true),
		gameserver.KindVictory:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	}
)

// NewModel creates a Model that asks for the player's name first. A positive
// maxMoves overrides the scenario's move budget.
//
// Precondition: sc and svc must be non-nil.
func NewModel(sc *scenario.Scenario, maxMoves int, svc *gameserver.GameService, wrapWidth int) Model {
	ti := textinput.New()
	ti.Placeholder = namePlaceholder
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	return Model{
		state:     stateName,
		scenario:  sc,
		maxMoves:  maxMoves,
		service:   svc,
		textInput: ti,
		viewport:  viewport.New(wrapWidth, 20),
		wrapWidth: wrapWidth,
	}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and terminal resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = int(float64(msg.Width) * logShare)
		m.viewport.Height = max(msg.Height-6, 3)
		m.wrapWidth = max(m.viewport.Width-2, 20)
		m.viewport.SetContent(m.gameLog)
	}

	if m.state == stateName || m.state == statePlaying {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	value := m.textInput.Value()
	switch m.state {
	case stateName:
		sess, err := session.NewFromScenario(m.scenario, session.CleanName(value), m.maxMoves)
		if err != nil {
			m.err = err
			m.state = stateError
			return m, nil
		}
		m.session = sess
		m.state = statePlaying
		m.textInput.Reset()
		m.apply(m.service.Begin(sess))
		return m, nil

	case statePlaying:
		if strings.TrimSpace(value) == "" && m.textInput.EchoMode == textinput.EchoNormal {
			return m, nil
		}
		m.textInput.Reset()
		if m.textInput.EchoMode == textinput.EchoPassword {
			m.appendLog(userStyle.Render("> " + strings.Repeat("*", len(value))))
		} else {
			m.appendLog(userStyle.Render("> " + value))
		}
		m.apply(m.service.Handle(m.session, value))
		return m, nil

	default:
		return m, tea.Quit
	}
}

// apply appends a turn's events to the log and switches input mode.
func (m *Model) apply(resp *gameserver.Response) {
	for _, ev := range resp.Events {
		m.appendLog(m.renderEvent(ev))
	}
	switch {
	case resp.Finished():
		m.state = stateFinished
		m.textInput.Blur()
		m.textInput.Placeholder = finishedHint
	case resp.AwaitingCode:
		m.textInput.EchoMode = textinput.EchoPassword
		m.textInput.Placeholder = codePlaceholder
	default:
		m.textInput.EchoMode = textinput.EchoNormal
		m.textInput.Placeholder = commandPlaceholder
	}
}

func (m *Model) renderEvent(ev gameserver.Event) string {
	text := ev.Text
	if ev.Kind != gameserver.KindStatus {
		text = wordwrap.String(text, m.wrapWidth)
	}
	if style, ok := kindStyles[ev.Kind]; ok {
		return style.Render(text)
	}
	return text
}

func (m *Model) appendLog(s string) {
	if m.gameLog != "" {
		m.gameLog += "\n"
	}
	m.gameLog += s
	m.viewport.SetContent(m.gameLog)
	m.viewport.GotoBottom()
}

// View draws the current screen.
func (m Model) View() string {
	var s string
	switch m.state {
	case stateName:
		s = fmt.Sprintf("%s\n\n%s\n\n%s",
			titleStyle.Render(m.scenario.Name),
			"What is your name?",
			m.textInput.View(),
		)
	case statePlaying, stateFinished:
		main := lipgloss.JoinHorizontal(lipgloss.Top, m.viewport.View(), m.renderPanel())
		help := helpStyle.Render("Type 'menu' for commands, 'help [command]' for usage. Esc quits.")
		if m.state == stateFinished {
			help = helpStyle.Render(finishedHint)
		}
		s = lipgloss.JoinVertical(lipgloss.Left, main, "\n"+m.textInput.View(), help)
	case stateError:
		s = errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\nPress Esc to quit."
	}
	return "\n" + s + "\n"
}

func (m Model) renderPanel() string {
	if m.session == nil {
		return ""
	}
	p := m.session.Player
	x, y := p.Position()
	clock := gameserver.ClockForMoves(p.MaxMoves()-p.MovesRemaining(), p.MaxMoves())

	var b strings.Builder
	b.WriteString(titleStyle.Render("STATUS") + "\n")
	if loc, ok := m.session.Location(); ok && !loc.Locked() && loc.Visited() {
		fmt.Fprintf(&b, "Location: %d\n", loc.ID)
	}
	fmt.Fprintf(&b, "Position: (%d, %d)\n", x, y)
	fmt.Fprintf(&b, "Moves: %d/%d\n", p.MovesRemaining(), p.MaxMoves())
	fmt.Fprintf(&b, "Time: %s\n", clock)
	fmt.Fprintf(&b, "Score: %d\n\n", p.Score())

	b.WriteString(titleStyle.Render("BACKPACK") + "\n")
	items := p.Inventory()
	if len(items) == 0 {
		b.WriteString("(empty)\n")
	}
	for _, it := range items {
		fmt.Fprintf(&b, "- %s\n", it.Name)
	}
	fmt.Fprintf(&b, "%d/%d slots\n", len(items), p.Capacity())

	width := max(m.width-m.viewport.Width-2, 20)
	return panelStyle.Width(width).Height(m.viewport.Height).Render(b.String())
}

// Finished reports whether the game has ended.
func (m Model) Finished() bool {
	return m.state == stateFinished
}

// Run plays one game in the terminal's alternate screen.
func Run(sc *scenario.Scenario, maxMoves int, svc *gameserver.GameService, wrapWidth int) error {
	p := tea.NewProgram(NewModel(sc, maxMoves, svc, wrapWidth), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
