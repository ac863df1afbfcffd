// Package session holds the signed-in user's state for the lifetime of
// the client process. It replaces ambient browser session storage with
// an injected store that has an explicit lifecycle: created at start,
// cleared on sign-out.
package session

import (
	"sync"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
)

// CurrentUser is the snapshot of who is signed in.
type CurrentUser struct {
	AccountID shared.ID
	PersonID  shared.ID
	Email     string
	UserType  string
}

// Store keeps the current user and bearer token. All access is
// mutex-guarded; the zero value via NewStore is signed out.
type Store struct {
	mu    sync.RWMutex
	user  *CurrentUser
	token string
}

// NewStore returns an empty, signed-out store.
func NewStore() *Store {
	return &Store{}
}

// SignIn records the user and the bearer token the backend issued.
func (s *Store) SignIn(user CurrentUser, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	s.token = token
}

// Clear signs the user out.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
}

// Current returns the signed-in user, or false when signed out.
func (s *Store) Current() (CurrentUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return CurrentUser{}, false
	}
	return *s.user, true
}

// Token returns the bearer token, empty when signed out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
