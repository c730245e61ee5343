// Package store abstracts subscriber-profile and session persistence
// behind a constructor-injected interface. Production deployments back
// it with a database; tests and the bundled daemon use the in-memory
// implementation.
package store

import (
	"fmt"
	"sync"
)

// Profile is a subscriber record consulted during credit-control.
type Profile struct {
	SubscriberID string
	Balance      uint64
	Blocked      bool
}

// Session tracks one active Diameter session.
type Session struct {
	SessionID     string
	SubscriberID  string
	OriginHost    string
	RequestNumber uint32
	UsedUnits     uint64
}

// ErrNotFound indicates a missing profile or session
type ErrNotFound struct {
	Kind string
	Key  string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

// Store is the persistence surface the application layer depends on.
type Store interface {
	GetProfile(subscriberID string) (*Profile, error)
	SaveProfile(p *Profile) error
	GetSession(sessionID string) (*Session, error)
	SaveSession(s *Session) error
	DeleteSession(sessionID string) error
}

// MemoryStore is a mutex-guarded map implementation of Store.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]Profile
	sessions map[string]Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]Profile),
		sessions: make(map[string]Session),
	}
}

// GetProfile returns a copy of the profile for subscriberID.
func (m *MemoryStore) GetProfile(subscriberID string) (*Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.profiles[subscriberID]
	if !ok {
		return nil, ErrNotFound{Kind: "profile", Key: subscriberID}
	}
	return &p, nil
}

// SaveProfile stores a copy of p keyed by its subscriber id.
func (m *MemoryStore) SaveProfile(p *Profile) error {
	if p.SubscriberID == "" {
		return fmt.Errorf("profile has empty subscriber id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.SubscriberID] = *p
	return nil
}

// GetSession returns a copy of the session for sessionID.
func (m *MemoryStore) GetSession(sessionID string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound{Kind: "session", Key: sessionID}
	}
	return &s, nil
}

// SaveSession stores a copy of s keyed by its session id.
func (m *MemoryStore) SaveSession(s *Session) error {
	if s.SessionID == "" {
		return fmt.Errorf("session has empty session id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.SessionID] = *s
	return nil
}

// DeleteSession removes a session; deleting an absent session is a
// no-op.
func (m *MemoryStore) DeleteSession(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}
