package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestParse_Empty(t *testing.T) {
	result := Parse("   ")
	assert.True(t, result.Empty())
	assert.Nil(t, result.Args)
}

func TestParse_SingleWord(t *testing.T) {
	result := Parse("look")
	assert.Equal(t, "look", result.Command)
	assert.Nil(t, result.Args)
	assert.Equal(t, "", result.RawArgs)
}

func TestParse_Lowercase(t *testing.T) {
	result := Parse("NORTH")
	assert.Equal(t, "north", result.Command)
}

func TestParse_MultiWordItem(t *testing.T) {
	result := Parse("collect  Lucky   Pen ")
	assert.Equal(t, "collect", result.Command)
	assert.Equal(t, []string{"Lucky", "Pen"}, result.Args)
	assert.Equal(t, "Lucky   Pen", result.RawArgs)
	assert.Equal(t, "Lucky Pen", result.Target())
}

func TestParse_GoDirection(t *testing.T) {
	result := Parse("Go South")
	assert.Equal(t, "go", result.Command)
	assert.Equal(t, "South", result.Target())
}

func TestPropertyParseAlwaysLowercasesCommand(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		word := rapid.StringMatching(`[A-Za-z]{1,20}`).Draw(t, "word")
		result := Parse(word)
		if result.Command != strings.ToLower(word) {
			t.Fatalf("Parse(%q).Command = %q", word, result.Command)
		}
	})
}

func TestPropertyParseTargetRoundTripsWords(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		words := rapid.SliceOfN(rapid.StringMatching(`[a-zA-Z0-9-]{1,8}`), 1, 4).Draw(t, "words")
		result := Parse("drop " + strings.Join(words, "  "))
		if result.Target() != strings.Join(words, " ") {
			t.Fatalf("Target() = %q, want %q", result.Target(), strings.Join(words, " "))
		}
	})
}
