package world_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/campus-adventure/internal/game/world"
)

const testMap = `1 2 -1
3 4 5
`

const testItems = `3 1 5 T-card 1244
5 1 7 Cheat Sheet 3124
`

const testLocations = `LOCATION 1
0
You are in your dorm room.
It is messy.

Dorm room.
END

LOCATION 2
4
A quiet library.

Library.
END

LOCATION 3
2
The campus coffee shop smells of espresso.

Coffee shop.
END

LOCATION 4
3
A busy hallway.

Hallway.
END

LOCATION 5
1
The lecture hall is empty.

Lecture hall.
END
`

const testNPCs = `LOCATION 4
5 Hey {name}, good luck on the exam!
END
`

func testSources() world.Sources {
	return world.Sources{
		Map:       strings.NewReader(testMap),
		Locations: strings.NewReader(testLocations),
		Items:     strings.NewReader(testItems),
		NPCs:      strings.NewReader(testNPCs),
	}
}

func testOptions() world.Options {
	return world.Options{
		Actions:       world.DefaultActions,
		RestrictedIDs: []int{2},
		KeyItem:       3,
	}
}

func newTestWorld(t *testing.T) *world.World {
	t.Helper()
	w, err := world.New(testSources(), testOptions())
	require.NoError(t, err)
	return w
}

func TestNew_BuildsWorld(t *testing.T) {
	w := newTestWorld(t)
	assert.Equal(t, 3, w.Width())
	assert.Equal(t, 2, w.Height())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, w.LocationIDs())
	assert.Len(t, w.Items(), 2)
	assert.True(t, w.IsRestricted(2))
	assert.False(t, w.IsRestricted(1))
}

func TestNew_PlacesItemsAtStart(t *testing.T) {
	w := newTestWorld(t)
	loc, ok := w.LocationByID(3)
	require.True(t, ok)
	items := loc.LookForItems()
	require.Len(t, items, 1)
	assert.Equal(t, "T-card", items[0].Name)

	loc5, _ := w.LocationByID(5)
	found, ok := loc5.FindItemByName("  cheat SHEET ")
	require.True(t, ok)
	assert.Equal(t, 7, found.TargetPoints)
}

func TestNew_AllItemsEssentialByDefault(t *testing.T) {
	w := newTestWorld(t)
	for _, it := range w.Items() {
		assert.True(t, it.IsEssential, it.Name)
	}
}

func TestNew_EssentialOverride(t *testing.T) {
	opts := testOptions()
	opts.EssentialItems = []int{5}
	w, err := world.New(testSources(), opts)
	require.NoError(t, err)
	tcard, _ := w.ItemAt(3)
	sheet, _ := w.ItemAt(5)
	assert.False(t, tcard.IsEssential)
	assert.True(t, sheet.IsEssential)
}

func TestNew_EssentialOverrideUnknownItem(t *testing.T) {
	opts := testOptions()
	opts.EssentialItems = []int{4}
	_, err := world.New(testSources(), opts)
	assert.Error(t, err)
}

func TestNew_AppliesNPCDialogue(t *testing.T) {
	w := newTestWorld(t)
	loc, _ := w.LocationByID(4)
	assert.True(t, loc.HasNPC())
	assert.Equal(t, 5, loc.NPCScore())
	other, _ := w.LocationByID(1)
	assert.False(t, other.HasNPC())
}

func TestNew_RestrictedLocationUsesKeyItem(t *testing.T) {
	w := newTestWorld(t)
	loc, _ := w.LocationByID(2)
	require.True(t, loc.Restricted())
	key, _ := w.ItemAt(3)
	assert.Same(t, key, loc.RequiredItem())
	assert.Equal(t, "Access Denied: This location needs a T-card to enter.", loc.Description())
}

func TestNew_RejectsUnknownGridLocation(t *testing.T) {
	src := testSources()
	src.Map = strings.NewReader("1 2 9\n3 4 5\n")
	_, err := world.New(src, testOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown location 9")
}

func TestNew_RejectsItemWithUnknownTarget(t *testing.T) {
	src := testSources()
	src.Items = strings.NewReader("3 42 5 T-card 1244\n")
	_, err := world.New(src, testOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "targets unknown location 42")
}

func TestNew_RejectsNPCAtUnknownLocation(t *testing.T) {
	src := testSources()
	src.NPCs = strings.NewReader("LOCATION 12\n1 Who am I?\nEND\n")
	_, err := world.New(src, testOptions())
	assert.Error(t, err)
}

func TestNew_RejectsMissingKeyItem(t *testing.T) {
	opts := testOptions()
	opts.KeyItem = 4
	_, err := world.New(testSources(), opts)
	assert.Error(t, err)
}

func TestNew_RequiresAllSources(t *testing.T) {
	src := testSources()
	src.NPCs = nil
	_, err := world.New(src, testOptions())
	assert.Error(t, err)
}

func TestLocationAt(t *testing.T) {
	w := newTestWorld(t)
	loc, ok := w.LocationAt(1, 1)
	require.True(t, ok)
	assert.Equal(t, 4, loc.ID)

	_, ok = w.LocationAt(2, 0)
	assert.False(t, ok, "empty cell")
	_, ok = w.LocationAt(-1, 0)
	assert.False(t, ok)
	_, ok = w.LocationAt(0, 2)
	assert.False(t, ok)
}

func TestPositionOf(t *testing.T) {
	w := newTestWorld(t)
	x, y, ok := w.PositionOf(5)
	require.True(t, ok)
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)
	_, _, ok = w.PositionOf(99)
	assert.False(t, ok)
}

func TestExistsInMap_Identity(t *testing.T) {
	w := newTestWorld(t)
	loc, _ := w.LocationByID(1)
	assert.True(t, w.ExistsInMap(loc))
	impostor := world.NewLocation(1, 3, 2, 0, "Dorm room.", "You are in your dorm room.", nil)
	assert.False(t, w.ExistsInMap(impostor))
	assert.False(t, w.ExistsInMap(nil))
}

func TestGrid_ReturnsCopy(t *testing.T) {
	w := newTestWorld(t)
	g := w.Grid()
	g[0][0] = 99
	_, ok := w.LocationAt(0, 0)
	assert.True(t, ok)
}

func TestPropertyLocationAtMatchesGrid(t *testing.T) {
	w := newTestWorld(t)
	grid := w.Grid()
	rapid.Check(t, func(rt *rapid.T) {
		x := rapid.IntRange(-3, 6).Draw(rt, "x")
		y := rapid.IntRange(-3, 6).Draw(rt, "y")
		loc, ok := w.LocationAt(x, y)
		inBounds := y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y])
		if !inBounds || grid[y][x] == world.NoLocation {
			if ok || loc != nil {
				rt.Fatalf("LocationAt(%d, %d) returned a location outside the map", x, y)
			}
			return
		}
		if !ok || loc.ID != grid[y][x] {
			rt.Fatalf("LocationAt(%d, %d) = %v, want id %d", x, y, loc, grid[y][x])
		}
	})
}

func TestReachableFrom(t *testing.T) {
	w := newTestWorld(t)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, w.ReachableFrom(0, 0))
	assert.Nil(t, w.ReachableFrom(2, 0), "empty cell")
	assert.Nil(t, w.ReachableFrom(9, 9), "off the map")
}
