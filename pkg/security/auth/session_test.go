package auth

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStorePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	userID := uuid.New()

	store := NewSessionStore(path)
	session := store.CreateSession(userID, "ana@voli.org", "Ana", "user", "token-1", time.Hour)
	require.True(t, session.IsValid)

	// A fresh store over the same file rehydrates the session.
	reloaded := NewSessionStore(path)
	got, ok := reloaded.GetSession("token-1")
	require.True(t, ok)
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, "ana@voli.org", got.Email)
}

func TestSessionStoreExpiry(t *testing.T) {
	store := NewSessionStore("")
	store.CreateSession(uuid.New(), "b@voli.org", "B", "user", "token-2", -time.Minute)

	_, ok := store.GetSession("token-2")
	assert.False(t, ok, "expired session must not resolve")

	removed := store.CleanExpired()
	assert.Equal(t, 1, removed)
}

func TestInvalidateSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	store := NewSessionStore(path)
	store.CreateSession(uuid.New(), "c@voli.org", "C", "user", "token-3", time.Hour)

	store.InvalidateSession("token-3")
	_, ok := store.GetSession("token-3")
	assert.False(t, ok)

	// Logout survives a restart too.
	reloaded := NewSessionStore(path)
	_, ok = reloaded.GetSession("token-3")
	assert.False(t, ok)
}
