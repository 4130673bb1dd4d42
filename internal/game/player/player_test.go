package player_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/campus-adventure/internal/game/inventory"
	"github.com/cory-johannsen/campus-adventure/internal/game/player"
)

var campusGrid = [][]int{
	{1, 2, -1, -1, -1},
	{3, -1, 4, -1, -1},
	{5, 6, 7, 8, -1},
	{9, -1, -1, 10, 11},
	{12, 13, -1, -1, -1},
}

func newPlayer(t *testing.T, maxMoves int) *player.Player {
	t.Helper()
	p, err := player.New(0, 0, campusGrid, maxMoves, "Ada", inventory.DefaultCapacity)
	require.NoError(t, err)
	return p
}

func TestNew_RejectsInvalidStart(t *testing.T) {
	_, err := player.New(2, 0, campusGrid, 50, "Ada", 2)
	assert.Error(t, err)
	_, err = player.New(0, 0, campusGrid, 0, "Ada", 2)
	assert.Error(t, err)
	_, err = player.New(0, 0, campusGrid, 10, "Ada", 0)
	assert.Error(t, err)
}

func TestMove_Valid(t *testing.T) {
	p := newPlayer(t, 50)
	out, err := p.Move("South")
	require.NoError(t, err)
	assert.Equal(t, player.Moved, out)
	x, y := p.Position()
	assert.Equal(t, 0, x)
	assert.Equal(t, 1, y)
	assert.Equal(t, 49, p.MovesRemaining())
}

func TestMove_BlockedStillSpendsMove(t *testing.T) {
	p := newPlayer(t, 50)
	out, err := p.Move("north")
	require.NoError(t, err)
	assert.Equal(t, player.Blocked, out)
	x, y := p.Position()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
	assert.Equal(t, 49, p.MovesRemaining())
}

func TestMove_InvalidDirectionIsFree(t *testing.T) {
	p := newPlayer(t, 50)
	_, err := p.Move("up")
	assert.ErrorIs(t, err, player.ErrInvalidDirection)
	assert.Equal(t, 50, p.MovesRemaining())
}

func TestMove_OutOfMoves(t *testing.T) {
	p := newPlayer(t, 1)
	_, err := p.Move("east")
	require.NoError(t, err)
	assert.True(t, p.CheckGameOver())
	_, err = p.Move("west")
	assert.ErrorIs(t, err, player.ErrOutOfMoves)
	assert.Equal(t, 0, p.MovesRemaining())
	x, _ := p.Position()
	assert.Equal(t, 1, x)
}

func TestCheckGameOver_ExactlyAtZeroAndIdempotent(t *testing.T) {
	p := newPlayer(t, 2)
	assert.False(t, p.CheckGameOver())

	_, err := p.Move("east")
	require.NoError(t, err)
	require.Equal(t, 1, p.MovesRemaining())
	assert.False(t, p.CheckGameOver())

	_, err = p.Move("west")
	require.NoError(t, err)
	require.NoError(t, p.AddScore(3))
	require.Equal(t, 0, p.MovesRemaining())

	for i := 0; i < 2; i++ {
		assert.True(t, p.CheckGameOver())
		assert.Equal(t, 0, p.MovesRemaining())
		assert.Equal(t, 3, p.Score())
		x, y := p.Position()
		assert.Equal(t, 0, x)
		assert.Equal(t, 0, y)
	}
}

func TestAddScore(t *testing.T) {
	p := newPlayer(t, 50)
	require.NoError(t, p.AddScore(5))
	assert.ErrorIs(t, p.AddScore(0), player.ErrNonPositiveScore)
	assert.ErrorIs(t, p.AddScore(-3), player.ErrNonPositiveScore)
	assert.Equal(t, 5, p.Score())
}

func TestCalculateFinalScore_Once(t *testing.T) {
	p := newPlayer(t, 50)
	require.NoError(t, p.AddScore(10))
	for i := 0; i < 4; i++ {
		_, err := p.Move("north")
		require.NoError(t, err)
	}
	assert.Equal(t, 14, p.CalculateFinalScore())
	assert.Equal(t, 14, p.CalculateFinalScore())
	assert.Equal(t, 14, p.Score())
}

func TestInventory(t *testing.T) {
	p := newPlayer(t, 50)
	a := inventory.NewItem("T-card", 3, 1, 5, "1244", true)
	b := inventory.NewItem("Cheat Sheet", 8, 1, 5, "3124", true)
	c := inventory.NewItem("Lucky Pen", 13, 1, 5, "1568", true)
	require.NoError(t, p.AddItem(a))
	require.NoError(t, p.AddItem(b))
	assert.True(t, p.InventoryFull())
	assert.ErrorIs(t, p.AddItem(c), inventory.ErrBackpackFull)
	assert.True(t, p.HasItem(a))
	assert.False(t, p.HasItem(c))

	got, ok := p.FindItemByName("cheat sheet")
	require.True(t, ok)
	assert.Same(t, b, got)

	require.NoError(t, p.RemoveItem(a))
	assert.ErrorIs(t, p.RemoveItem(a), inventory.ErrItemNotHeld)
	assert.Equal(t, []*inventory.Item{b}, p.Inventory())
}

func TestQuit(t *testing.T) {
	p := newPlayer(t, 50)
	assert.False(t, p.HasQuit())
	p.Quit()
	assert.True(t, p.HasQuit())
}

func TestPropertyMovesKeepPlayerOnMap(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		max := rapid.IntRange(1, 60).Draw(rt, "max")
		p, err := player.New(0, 0, campusGrid, max, "Ada", 2)
		if err != nil {
			rt.Fatal(err)
		}
		dirs := rapid.SliceOf(rapid.SampledFrom([]string{"north", "south", "east", "west", "NORTH", "jump"})).Draw(rt, "dirs")
		for _, d := range dirs {
			before := p.MovesRemaining()
			_, _ = p.Move(d)
			x, y := p.Position()
			if !p.IsLocationValid(x, y) {
				rt.Fatalf("player left the map at (%d, %d)", x, y)
			}
			if p.MovesRemaining() < 0 || p.MovesRemaining() > before {
				rt.Fatalf("moves went from %d to %d", before, p.MovesRemaining())
			}
		}
		final := p.CalculateFinalScore()
		if final != max-p.MovesRemaining() {
			rt.Fatalf("final score %d, want %d", final, max-p.MovesRemaining())
		}
	})
}
