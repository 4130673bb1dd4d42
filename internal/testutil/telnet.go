// Package testutil holds helpers shared by network tests.
package testutil

import (
	"fmt"
	"net"
	"strings"
	"testing"
	"time"
)

// DefaultTimeout bounds every client read and write.
const DefaultTimeout = 3 * time.Second

// TelnetClient is a scripted player for Telnet integration tests.
type TelnetClient struct {
	conn net.Conn
	t    testing.TB
	// seen accumulates output not yet consumed by ReadUntil.
	seen strings.Builder
}

// NewTelnetClient dials addr and closes the connection when the test ends.
//
// Postcondition: Returns a connected client or fails the test.
func NewTelnetClient(t testing.TB, addr string) *TelnetClient {
	t.Helper()
	conn, err := net.DialTimeout("tcp", addr, DefaultTimeout)
	if err != nil {
		t.Fatalf("connecting to %s: %v", addr, err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return &TelnetClient{conn: conn, t: t}
}

// ReadUntil reads until substr appears and returns everything up to and
// including it. Output after the match is kept for the next call.
//
// Precondition: substr must be non-empty.
func (c *TelnetClient) ReadUntil(substr string) string {
	c.t.Helper()
	_ = c.conn.SetReadDeadline(time.Now().Add(DefaultTimeout))

	tmp := make([]byte, 1024)
	for {
		if buf := c.seen.String(); strings.Contains(buf, substr) {
			end := strings.Index(buf, substr) + len(substr)
			c.seen.Reset()
			c.seen.WriteString(buf[end:])
			return buf[:end]
		}
		n, err := c.conn.Read(tmp)
		if n > 0 {
			c.seen.Write(tmp[:n])
			continue
		}
		if err != nil {
			c.t.Fatalf("reading until %q: got %q, error: %v", substr, c.seen.String(), err)
		}
	}
}

// ReadAll reads until the server closes the connection.
func (c *TelnetClient) ReadAll() string {
	c.t.Helper()
	_ = c.conn.SetReadDeadline(time.Now().Add(DefaultTimeout))
	tmp := make([]byte, 1024)
	for {
		n, err := c.conn.Read(tmp)
		c.seen.Write(tmp[:n])
		if err != nil {
			out := c.seen.String()
			c.seen.Reset()
			return out
		}
	}
}

// Send writes text followed by CRLF.
func (c *TelnetClient) Send(text string) {
	c.t.Helper()
	_ = c.conn.SetWriteDeadline(time.Now().Add(DefaultTimeout))
	if _, err := fmt.Fprintf(c.conn, "%s\r\n", text); err != nil {
		c.t.Fatalf("sending %q: %v", text, err)
	}
}

// Close closes the connection.
func (c *TelnetClient) Close() {
	_ = c.conn.Close()
}
