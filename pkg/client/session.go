package client

import "sync"

// Session holds the bearer token for the lifetime of one client, the way a
// browser tab holds it in session storage. Listeners registered with
// Subscribe are notified on every login and logout so dependent components
// (navigation, guards) can react without polling.
type Session struct {
	mu        sync.RWMutex
	token     string
	listeners []func(authenticated bool)
}

// NewSession returns an empty, unauthenticated session.
func NewSession() *Session {
	return &Session{}
}

// Token returns the current bearer token, or "" when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a token is currently held.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// SetToken stores a token and notifies listeners of the auth change.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	listeners := append([]func(bool){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(token != "")
	}
}

// Clear drops the token and notifies listeners.
func (s *Session) Clear() {
	s.SetToken("")
}

// Subscribe registers fn to run whenever the session's auth state changes.
// fn receives true on login and false on logout.
func (s *Session) Subscribe(fn func(authenticated bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
