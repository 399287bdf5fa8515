// Package session holds the caller-side login state used by the client.
package session

import (
	"sync"

	"github.com/getmockd/fakeapi/pkg/records"
)

// Session is an authenticated user and the token issued to them.
type Session struct {
	Token string             `json:"token"`
	User  records.PublicUser `json:"user"`
}

// Provider exposes the current session and a way to end it.
type Provider interface {
	// Current returns the active session, or nil.
	Current() *Session
	Logout()
}

// Store is an in-memory Provider.
type Store struct {
	mu       sync.RWMutex
	current  *Session
	onLogout []func(Session)
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Current returns a copy of the active session, or nil.
func (s *Store) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

// Login replaces the active session.
func (s *Store) Login(sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &sess
}

// Logout clears the active session and runs the OnLogout hooks. It is a
// no-op without a session.
func (s *Store) Logout() {
	s.mu.Lock()
	prev := s.current
	s.current = nil
	hooks := append([]func(Session){}, s.onLogout...)
	s.mu.Unlock()

	if prev == nil {
		return
	}
	for _, fn := range hooks {
		fn(*prev)
	}
}

// OnLogout registers fn to run after a session ends.
func (s *Store) OnLogout(fn func(Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = append(s.onLogout, fn)
}
