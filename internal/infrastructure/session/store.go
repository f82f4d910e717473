// Package session provides the server-side session store: a mapping from an
// opaque client-held token to string key/value session data.
package session

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/todoboard/core/internal/domain/entities"
	"github.com/todoboard/core/internal/ports"
)

// Well-known session keys.
const (
	KeyLogin      = "login"
	KeyIsAdmin    = "is_admin"
	KeyUserID     = "user_id"
	KeyName       = "name"
	KeyEmail      = "email"
	KeyLoginTime  = "login_time"
	KeyLastActive = "last_active"
)

// TimeFormat is the wire format for timestamps stored in a session.
const TimeFormat = time.RFC3339Nano

// MemoryStore is an in-process implementation of ports.SessionStore. It is
// safe for concurrent use across requests; interleaved writes to the same
// session are last-writer-wins.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string]string
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]map[string]string),
	}
}

// Get returns the value for key in the session identified by token.
func (s *MemoryStore) Get(token, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values, ok := s.sessions[token]
	if !ok {
		return "", false
	}
	v, ok := values[key]
	return v, ok
}

// Set writes key=value into the session, creating it if needed.
func (s *MemoryStore) Set(token, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, ok := s.sessions[token]
	if !ok {
		values = make(map[string]string)
		s.sessions[token] = values
	}
	values[key] = value
}

// Clear removes every key of the session.
func (s *MemoryStore) Clear(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
}

// NewToken mints an opaque session token.
func NewToken() string {
	return uuid.NewString()
}

// WriteSeed copies a SessionSeed verbatim into the session identified by
// token.
func WriteSeed(store ports.SessionStore, token string, seed *entities.SessionSeed) {
	store.Set(token, KeyLogin, seed.Login)
	store.Set(token, KeyIsAdmin, strconv.FormatBool(seed.IsAdmin))
	store.Set(token, KeyUserID, strconv.FormatInt(seed.UserID, 10))
	store.Set(token, KeyName, seed.Name)
	store.Set(token, KeyEmail, seed.Email)
	store.Set(token, KeyLoginTime, seed.LoginTime.Format(TimeFormat))
	store.Set(token, KeyLastActive, seed.LastActive.Format(TimeFormat))
}
