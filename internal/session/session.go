// Package session holds the per-device application state: the currently
// authenticated user and the cloud connectivity indicator. It is an explicit
// container injected into the components that need it, with logout as the
// reset boundary — never ambient globals.
package session

import (
	"sync"

	"pureflow/internal/domain/entity"
)

// Session is safe for concurrent use.
type Session struct {
	mu          sync.RWMutex
	user        *entity.User
	cloudSynced bool
}

// New returns an empty, logged-out session.
func New() *Session {
	return &Session{}
}

// Login makes u the active user on this device.
func (s *Session) Login(u entity.User) {
	u.IsLoggedIn = true

	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
}

// Logout clears the active user. Connectivity state survives logout: the
// cloud does not go away because a person signed out.
func (s *Session) Logout() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

// Current returns a copy of the active user.
func (s *Session) Current() (entity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return entity.User{}, false
	}

	return *s.user, true
}

// Refresh replaces the active user when its stored document changed, keyed by
// identity. A different identity is ignored.
func (s *Session) Refresh(u entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user != nil && s.user.Identity() == u.Identity() {
		u.IsLoggedIn = true
		s.user = &u
	}
}

// SetCloudSynced flips the connectivity indicator.
func (s *Session) SetCloudSynced(ok bool) {
	s.mu.Lock()
	s.cloudSynced = ok
	s.mu.Unlock()
}

// CloudSynced reports whether the last remote interaction succeeded.
func (s *Session) CloudSynced() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cloudSynced
}
