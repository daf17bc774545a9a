package http

import (
	"sync"

	"github.com/google/uuid"
)

// SessionStore maps opaque session tokens to user ids.
// Tokens are random UUIDs issued at login; sessions live until logout or
// process restart. In-memory on purpose: losing sessions on restart only
// forces a re-login.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]uint64
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]uint64),
	}
}

// Issue creates a session for the user and returns its token.
func (s *SessionStore) Issue(userID uint64) string {
	token := uuid.NewString()

	s.mu.Lock()
	s.sessions[token] = userID
	s.mu.Unlock()

	return token
}

// Resolve returns the user id behind a token.
func (s *SessionStore) Resolve(token string) (uint64, bool) {
	s.mu.RLock()
	userID, ok := s.sessions[token]
	s.mu.RUnlock()
	return userID, ok
}

// Revoke ends the session behind a token. Unknown tokens are ignored.
func (s *SessionStore) Revoke(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
