// Package telnet serves the game over Telnet: a TCP acceptor, line-oriented
// connections and ANSI styling for rendered output.
package telnet

import "strings"

// ANSI SGR sequences used by the renderer.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"

	BrightYellow = "\033[93m"
	BrightCyan   = "\033[96m"
	BrightWhite  = "\033[97m"
)

// Colorize wraps text in color and a reset. Empty text stays empty.
//
// Postcondition: StripANSI(Colorize(c, text)) == text.
func Colorize(color, text string) string {
	if text == "" {
		return ""
	}
	return color + text + Reset
}

// ColorizeLines colors each line separately so a client that wraps or
// scrolls mid-block never bleeds color into the next line.
func ColorizeLines(color, text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = Colorize(color, l)
	}
	return strings.Join(lines, "\n")
}

// StripANSI removes every ESC [ ... m sequence from s.
func StripANSI(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			if end := strings.IndexByte(s[i+2:], 'm'); end >= 0 {
				i += end + 2
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
