package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/rithwika/career-advisor/internal/app"
)

// SessionStore holds one App per authenticated session. State is
// memory-resident; a server restart drops every session.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*app.App
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]*app.App),
	}
}

// Create registers a new App and returns its session ID.
func (s *SessionStore) Create(a *app.App) uuid.UUID {
	id := uuid.New()
	s.mu.Lock()
	s.sessions[id] = a
	s.mu.Unlock()
	return id
}

// Get returns the App for a session ID, comma-ok.
func (s *SessionStore) Get(id uuid.UUID) (*app.App, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.sessions[id]
	return a, ok
}

// Delete removes a session.
func (s *SessionStore) Delete(id uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
