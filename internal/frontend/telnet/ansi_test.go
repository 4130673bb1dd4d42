package telnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestColorize(t *testing.T) {
	assert.Equal(t, "\033[31mAccess Denied\033[0m", Colorize(Red, "Access Denied"))
	assert.Equal(t, "", Colorize(Red, ""))
}

func TestColorizeLines(t *testing.T) {
	got := ColorizeLines(Green, "one\ntwo")
	assert.Equal(t, "\033[32mone\033[0m\n\033[32mtwo\033[0m", got)
}

func TestStripANSI(t *testing.T) {
	input := "\033[31mred\033[0m normal \033[1m\033[32mbold green\033[0m"
	assert.Equal(t, "red normal bold green", StripANSI(input))
	assert.Equal(t, "plain text", StripANSI("plain text"))
	assert.Equal(t, "", StripANSI(""))
}

func TestStripANSI_Unterminated(t *testing.T) {
	assert.Equal(t, "a\033[31", StripANSI("a\033[31"))
}

func TestPropertyStripANSIInversesColorize(t *testing.T) {
	colors := []string{Red, Green, Blue, Yellow, Cyan, Magenta, White, Bold, Dim, BrightYellow}
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-zA-Z0-9 \n]{0,50}`).Draw(t, "text")
		color := rapid.SampledFrom(colors).Draw(t, "color")
		if got := StripANSI(ColorizeLines(color, text)); got != text {
			t.Fatalf("StripANSI(ColorizeLines(%q)) = %q", text, got)
		}
	})
}

func TestPropertyStripANSIOutputShorterOrEqual(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.String().Draw(t, "text")
		if got := StripANSI(text); len(got) > len(text) {
			t.Fatalf("output %q longer than input %q", got, text)
		}
	})
}
