package telnet

import (
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func pipeConn(t testing.TB) (*Conn, net.Conn) {
	t.Helper()
	server, client := net.Pipe()
	t.Cleanup(func() {
		_ = server.Close()
		_ = client.Close()
	})
	return NewConn(server, 2*time.Second, 2*time.Second), client
}

func send(client net.Conn, data []byte) {
	go func() { _, _ = client.Write(data) }()
}

func readN(t testing.TB, client net.Conn, n int) []byte {
	t.Helper()
	buf := make([]byte, n)
	_ = client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, err := io.ReadFull(client, buf)
	require.NoError(t, err)
	return buf
}

func TestReadLine_CRLF(t *testing.T) {
	c, client := pipeConn(t)
	send(client, []byte("go north\r\n"))

	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "go north", line)
}

func TestReadLine_BareLF(t *testing.T) {
	c, client := pipeConn(t)
	send(client, []byte("look\n"))

	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "look", line)
}

func TestReadLine_StripsTelnetCommands(t *testing.T) {
	c, client := pipeConn(t)
	send(client, []byte{
		IAC, DO, OptSuppressGoAhead,
		's', IAC, NOP, 'c',
		IAC, SB, 24, 0, 'x', 't', IAC, SE,
		'o', 'r', 'e', '\r', '\n',
	})

	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "score", line)
}

func TestReadLine_Backspace(t *testing.T) {
	c, client := pipeConn(t)
	send(client, []byte("dropp\b t-card\x7f\x7f\x7f\x7f\x7f\x7fT-card\r\n"))

	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "drop T-card", line)
}

func TestReadLine_EOFReturnsPartial(t *testing.T) {
	c, client := pipeConn(t)
	go func() {
		_, _ = client.Write([]byte("inv"))
		_ = client.Close()
	}()

	line, err := c.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "inv", line)
}

func TestWriteLine_TranslatesNewlines(t *testing.T) {
	c, client := pipeConn(t)
	go func() { _ = c.WriteLine("The Plot\n========") }()

	want := "The Plot\r\n========\r\n"
	assert.Equal(t, want, string(readN(t, client, len(want))))
}

func TestWritePrompt(t *testing.T) {
	c, client := pipeConn(t)
	go func() { _ = c.WritePrompt("> ") }()
	assert.Equal(t, "> ", string(readN(t, client, 2)))
}

func TestReadSecret_TogglesEcho(t *testing.T) {
	c, client := pipeConn(t)

	got := make(chan []byte, 1)
	go func() {
		off := make([]byte, 3)
		_, _ = io.ReadFull(client, off)
		_, _ = client.Write([]byte(" 1244 \r\n"))
		rest := make([]byte, 5)
		_, _ = io.ReadFull(client, rest)
		got <- append(off, rest...)
	}()

	code, err := c.ReadSecret()
	require.NoError(t, err)
	assert.Equal(t, "1244", code)

	select {
	case b := <-got:
		assert.Equal(t, []byte{IAC, WILL, OptEcho, IAC, WONT, OptEcho, '\r', '\n'}, b)
	case <-time.After(2 * time.Second):
		t.Fatal("client did not receive echo control")
	}
}

func TestPropertyToCRLFHasNoBareLF(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(`[a-z \n\r]{0,40}`).Draw(t, "s")
		out := toCRLF(s)
		for i := 0; i < len(out); i++ {
			if out[i] == '\n' && (i == 0 || out[i-1] != '\r') {
				t.Fatalf("bare LF in %q", out)
			}
		}
		if strings.Count(out, "\n") != strings.Count(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
			t.Fatalf("line count changed: %q -> %q", s, out)
		}
	})
}
