package session

import (
	"fmt"
	"sort"
	"sync"
)

// Manager tracks all active sessions.
// All methods are safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates an empty session Manager.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

// Add registers sess.
//
// Precondition: sess must be non-nil with a non-empty ID.
// Postcondition: Returns an error if the ID is already registered.
func (m *Manager) Add(sess *Session) error {
	if sess == nil || sess.ID == "" {
		return fmt.Errorf("session must have an ID")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[sess.ID]; exists {
		return fmt.Errorf("session %q already registered", sess.ID)
	}
	m.sessions[sess.ID] = sess
	return nil
}

// Remove unregisters the session with the given ID.
//
// Postcondition: Returns an error if not found.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[id]; !exists {
		return fmt.Errorf("session %q not found", id)
	}
	delete(m.sessions, id)
	return nil
}

// Get returns the session for the given ID.
//
// Postcondition: Returns (session, true) if found, or (nil, false) otherwise.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	return sess, ok
}

// PlayerNames returns the player names of all sessions, sorted.
//
// Postcondition: Returns a slice of names (may be empty).
func (m *Manager) PlayerNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.sessions))
	for _, sess := range m.sessions {
		if sess.Player != nil {
			names = append(names, sess.Player.Name())
		}
	}
	sort.Strings(names)
	return names
}

// Count returns the number of active sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
