// Package session holds the client-side authentication state: who is logged
// in, their bearer token, and the transient UI flags of the login surfaces.
// The store is a constructor-injected value, never a package global, so every
// test can run against an isolated instance.
package session

import (
	"log"
	"sync"
	"time"
)

// SessionUser is the normalized client-side identity, built from either a raw
// user or a raw admin record.
type SessionUser struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	Address     string    `json:"address,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SettingsTab enumerates the settings modal tabs.
type SettingsTab string

// Settings modal tabs.
const (
	TabNiyam         SettingsTab = "niyam"
	TabAccount       SettingsTab = "account"
	TabSettings      SettingsTab = "settings"
	TabNotifications SettingsTab = "notifications"
)

// Session is the observable state handed to subscribers.
type Session struct {
	User              *SessionUser
	Token             string
	SettingsModalOpen bool
	ActiveSettingsTab SettingsTab
	LogoutConfirmOpen bool
}

// Store is the single source of truth for the current session. Token and user
// are set together by the auth flows; the persisted subset across restarts is
// exactly {token, user}.
type Store struct {
	mu          sync.RWMutex
	session     Session
	generation  uint64
	storage     Storage
	subscribers []func(Session)
}

// NewStore builds a store hydrated from storage. UI flags always reset to
// their defaults regardless of what storage held.
func NewStore(storage Storage) (*Store, error) {
	s := &Store{
		storage: storage,
		session: Session{ActiveSettingsTab: TabAccount},
	}

	snap, err := storage.Load()
	if err != nil {
		return nil, err
	}
	s.session.Token = snap.Token
	s.session.User = snap.User
	return s, nil
}

// Current returns a copy of the session state.
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Token implements gateway.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token
}

// Subscribe registers fn to run after every mutation. The callback receives a
// copy of the new state.
func (s *Store) Subscribe(fn func(Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// SetUser replaces the current user wholesale.
func (s *Store) SetUser(user *SessionUser) {
	s.mutate(func(sess *Session) {
		sess.User = user
	}, true)
}

// SetToken replaces the bearer token.
func (s *Store) SetToken(token string) {
	s.mutate(func(sess *Session) {
		sess.Token = token
	}, true)
}

// Logout clears user, token, and the logout confirmation flag. It does not
// call the remote logout endpoint; the auth flow does that first and clears
// local state regardless of the network outcome.
func (s *Store) Logout() {
	s.mutate(func(sess *Session) {
		sess.User = nil
		sess.Token = ""
		sess.LogoutConfirmOpen = false
	}, true)
}

// OpenSettingsModal opens the settings modal on the given tab.
func (s *Store) OpenSettingsModal(tab SettingsTab) {
	if tab == "" {
		tab = TabAccount
	}
	s.mutate(func(sess *Session) {
		sess.SettingsModalOpen = true
		sess.ActiveSettingsTab = tab
	}, false)
}

// CloseSettingsModal closes the settings modal.
func (s *Store) CloseSettingsModal() {
	s.mutate(func(sess *Session) {
		sess.SettingsModalOpen = false
	}, false)
}

// SetActiveSettingsTab switches the active tab.
func (s *Store) SetActiveSettingsTab(tab SettingsTab) {
	s.mutate(func(sess *Session) {
		sess.ActiveSettingsTab = tab
	}, false)
}

// OpenLogoutConfirm shows the logout confirmation dialog.
func (s *Store) OpenLogoutConfirm() {
	s.mutate(func(sess *Session) {
		sess.LogoutConfirmOpen = true
	}, false)
}

// CloseLogoutConfirm hides the logout confirmation dialog.
func (s *Store) CloseLogoutConfirm() {
	s.mutate(func(sess *Session) {
		sess.LogoutConfirmOpen = false
	}, false)
}

// mutate applies fn under the lock, persists the durable subset when the
// session identity changed, and notifies subscribers outside the lock.
func (s *Store) mutate(fn func(*Session), identity bool) {
	s.mu.Lock()
	fn(&s.session)
	if identity {
		s.generation++
		if err := s.storage.Save(Snapshot{Token: s.session.Token, User: s.session.User}); err != nil {
			log.Printf("session: persist snapshot: %v", err)
		}
	}
	snapshot := s.session
	subscribers := make([]func(Session), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(snapshot)
	}
}

// beginGeneration records the current identity generation. A flow captures it
// before a network call and applies the result only if stillCurrent later;
// a slow stale response must not overwrite a newer session.
func (s *Store) beginGeneration() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

func (s *Store) stillCurrent(gen uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation == gen
}
