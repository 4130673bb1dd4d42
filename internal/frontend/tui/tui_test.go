package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/campus-adventure/internal/game/command"
	"github.com/cory-johannsen/campus-adventure/internal/game/scenario"
	"github.com/cory-johannsen/campus-adventure/internal/gameserver"
)

const scenarioPath = "../../../content/campus/scenario.yaml"

func newTestModel(t *testing.T, maxMoves int) Model {
	t.Helper()
	sc, err := scenario.LoadFromFile(scenarioPath)
	require.NoError(t, err)
	svc := gameserver.NewGameService(command.DefaultRegistry(), zaptest.NewLogger(t))
	m := NewModel(sc, maxMoves, svc, 60)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model)
}

// enter types line and presses Enter.
func enter(t *testing.T, m Model, line string) (Model, tea.Cmd) {
	t.Helper()
	m.textInput.SetValue(line)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model), cmd
}

func TestNameStartsGame(t *testing.T) {
	m := newTestModel(t, 0)
	assert.Contains(t, m.View(), "What is your name?")

	m, _ = enter(t, m, "  Ada ")
	require.Equal(t, statePlaying, m.state)
	assert.Equal(t, "Ada", m.session.Player.Name())
	assert.Contains(t, m.gameLog, "You wake up")
	assert.Equal(t, commandPlaceholder, m.textInput.Placeholder)
	assert.Contains(t, m.View(), "BACKPACK")
}

func TestEmptyNameDefaults(t *testing.T) {
	m := newTestModel(t, 0)
	m, _ = enter(t, m, "")
	assert.Equal(t, "Student", m.session.Player.Name())
}

func TestNameIsNormalized(t *testing.T) {
	m := newTestModel(t, 0)
	m, _ = enter(t, m, "  Ada    Lovelace  ")
	assert.Equal(t, "Ada Lovelace", m.session.Player.Name())
}

func TestEmptyCommandIgnored(t *testing.T) {
	m := newTestModel(t, 0)
	m, _ = enter(t, m, "Ada")
	before := m.gameLog
	m, _ = enter(t, m, "   ")
	assert.Equal(t, before, m.gameLog)
}

func TestCollectMasksCode(t *testing.T) {
	m := newTestModel(t, 0)
	m, _ = enter(t, m, "Ada")
	m, _ = enter(t, m, "south")
	m, _ = enter(t, m, "look")
	m, _ = enter(t, m, "collect t-card")
	assert.Equal(t, textinput.EchoPassword, m.textInput.EchoMode)
	assert.Equal(t, codePlaceholder, m.textInput.Placeholder)

	m, _ = enter(t, m, "1244")
	assert.Equal(t, textinput.EchoNormal, m.textInput.EchoMode)
	assert.Contains(t, m.gameLog, "> ****")
	assert.NotContains(t, m.gameLog, "> 1244")
	assert.Contains(t, m.gameLog, "Collected T-card.")
	assert.Contains(t, m.renderPanel(), "- T-card")
}

func TestFinishedGameQuitsOnEnter(t *testing.T) {
	m := newTestModel(t, 1)
	m, _ = enter(t, m, "Ada")
	m, _ = enter(t, m, "north")
	require.True(t, m.Finished())
	assert.Contains(t, m.gameLog, "You ran out of moves")

	_, cmd := enter(t, m, "")
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestEscQuits(t *testing.T) {
	m := newTestModel(t, 0)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
