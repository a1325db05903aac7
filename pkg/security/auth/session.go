package auth

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session represents a logged-in user session. Sessions are held in
// memory and mirrored to a single JSON file so they survive a process
// restart without forcing re-authentication.
type Session struct {
	ID           string    `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Token        string    `json:"token"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	LastActivity time.Time `json:"last_activity"`
	ExpiresAt    time.Time `json:"expires_at"`
	IsValid      bool      `json:"is_valid"`
}

// SessionStore manages active sessions
type SessionStore struct {
	sessions map[string]*Session // token -> session
	path     string              // persistence file, empty disables persistence
	mu       sync.RWMutex
}

// NewSessionStore creates a store backed by the given file. The file is
// loaded eagerly; a missing or corrupt file starts an empty store.
func NewSessionStore(path string) *SessionStore {
	ss := &SessionStore{
		sessions: make(map[string]*Session),
		path:     path,
	}
	ss.load()
	return ss
}

// CreateSession creates a new session
func (ss *SessionStore) CreateSession(userID uuid.UUID, email, name, role, token string, expiryDuration time.Duration) *Session {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	session := &Session{
		ID:           uuid.New().String(),
		UserID:       userID,
		Token:        token,
		Email:        email,
		Name:         name,
		Role:         role,
		LastActivity: time.Now(),
		ExpiresAt:    time.Now().Add(expiryDuration),
		IsValid:      true,
	}

	ss.sessions[token] = session
	ss.persistLocked()
	return session
}

// GetSession retrieves a session by token
func (ss *SessionStore) GetSession(token string) (*Session, bool) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	session, exists := ss.sessions[token]
	if !exists || !session.IsValid || time.Now().After(session.ExpiresAt) {
		return nil, false
	}
	return session, true
}

// UpdateSessionActivity refreshes the last-activity timestamp.
func (ss *SessionStore) UpdateSessionActivity(token string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if session, exists := ss.sessions[token]; exists {
		session.LastActivity = time.Now()
	}
}

// InvalidateSession removes a session (logout).
func (ss *SessionStore) InvalidateSession(token string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if session, exists := ss.sessions[token]; exists {
		session.IsValid = false
	}
	delete(ss.sessions, token)
	ss.persistLocked()
}

// CleanExpired drops expired sessions and persists the result.
func (ss *SessionStore) CleanExpired() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	now := time.Now()
	removed := 0
	for token, session := range ss.sessions {
		if now.After(session.ExpiresAt) || !session.IsValid {
			delete(ss.sessions, token)
			removed++
		}
	}
	if removed > 0 {
		ss.persistLocked()
	}
	return removed
}

func (ss *SessionStore) load() {
	if ss.path == "" {
		return
	}
	data, err := os.ReadFile(ss.path)
	if err != nil {
		return
	}
	var sessions map[string]*Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		return
	}
	now := time.Now()
	for token, session := range sessions {
		if session.IsValid && now.Before(session.ExpiresAt) {
			ss.sessions[token] = session
		}
	}
}

// persistLocked writes the session map; callers must hold the lock.
func (ss *SessionStore) persistLocked() {
	if ss.path == "" {
		return
	}
	data, err := json.MarshalIndent(ss.sessions, "", "  ")
	if err != nil {
		return
	}
	// Best effort: losing the mirror only costs a re-login after restart.
	_ = os.WriteFile(ss.path, data, 0o600)
}
