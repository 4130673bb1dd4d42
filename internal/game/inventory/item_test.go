package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/campus-adventure/internal/game/inventory"
)

func TestItem_DropIsOneWay(t *testing.T) {
	it := inventory.NewItem("T-card", 3, 1, 5, "1244", true)
	assert.False(t, it.WasDropped())

	it.Drop()
	assert.True(t, it.WasDropped())

	it.Drop()
	assert.True(t, it.WasDropped(), "second drop must leave the flag set")
}

func TestItem_VerifyCode(t *testing.T) {
	it := inventory.NewItem("Lucky Pen", 13, 1, 5, "1568", true)
	assert.False(t, it.VerifyCode("1234"))
	assert.True(t, it.VerifyCode("1568"))
	assert.False(t, it.VerifyCode(""), "empty candidate is a legal, failing comparison")
	assert.False(t, it.VerifyCode(" 1568"))
}

func TestItem_Validate(t *testing.T) {
	require.NoError(t, inventory.NewItem("Cheat Sheet", 8, 1, 5, "3124", true).Validate())

	err := inventory.NewItem("", 0, 1, -1, "", true).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name must not be empty")
	assert.Contains(t, err.Error(), "code must not be empty")
	assert.Contains(t, err.Error(), "target points")
	assert.Contains(t, err.Error(), "start position")
}

func TestNameMatches(t *testing.T) {
	assert.True(t, inventory.NameMatches("T-card", "  t-CARD "))
	assert.True(t, inventory.NameMatches("Cheat Sheet", "cheat sheet"))
	assert.False(t, inventory.NameMatches("Cheat Sheet", "cheat"))
}

func TestPropertyDroppedNeverReverts(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		it := inventory.NewItem("thing", 1, 1, 0, "c", false)
		dropped := false
		steps := rapid.IntRange(1, 20).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			if rapid.Bool().Draw(t, "drop") {
				it.Drop()
				dropped = true
			}
			if dropped && !it.WasDropped() {
				t.Fatalf("dropped flag reverted after step %d", i)
			}
		}
		if it.WasDropped() != dropped {
			t.Fatalf("WasDropped=%v, want %v", it.WasDropped(), dropped)
		}
	})
}
