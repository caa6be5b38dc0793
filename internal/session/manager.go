package session

import (
	"errors"
	"sync"
)

// ErrNoSession is returned when an admin has not bootstrapped a console
// session yet.
var ErrNoSession = errors.New("session: not bootstrapped")

// Manager holds the live console sessions, one per admin id. Sessions are
// created at bootstrap and dropped at logout; re-bootstrapping replaces
// the previous session (fresh fixtures, disclosure map, router).
type Manager struct {
	mu       sync.RWMutex
	sessions map[int]*Session
}

// NewManager returns an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[int]*Session)}
}

// Put registers (or replaces) the session for an admin.
func (m *Manager) Put(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.AdminID] = s
}

// Get returns the admin's live session.
func (m *Manager) Get(adminID int) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[adminID]
	if !ok {
		return nil, ErrNoSession
	}
	return s, nil
}

// Drop removes the admin's session, if any.
func (m *Manager) Drop(adminID int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, adminID)
}
