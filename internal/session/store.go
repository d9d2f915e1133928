// Package session manages the single current user session: startup restore,
// login, registration, logout, and profile updates. Persistence is best
// effort: the in-memory session is authoritative and storage failures are
// logged, never surfaced.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/avoronin/cityride/internal/gateway"
	"github.com/avoronin/cityride/internal/kvstore"
	"github.com/avoronin/cityride/internal/logging"
	"github.com/avoronin/cityride/internal/models"
)

// storageKey is where the serialized session lives in the key-value store.
const storageKey = "user"

// State is the session store's lifecycle state.
type State string

const (
	// StateAuthenticating covers the initial restore and in-flight
	// login/register calls.
	StateAuthenticating State = "authenticating"
	StateAnonymous      State = "anonymous"
	StateAuthenticated  State = "authenticated"
)

// Store owns the current session. One instance per process; pass it by
// handle to whatever needs it instead of reaching for a global.
//
// Overlapping calls are not queued or rejected: the last completed write
// wins. Callers are expected to disable controls while a call is in flight.
type Store struct {
	gw  gateway.Gateway
	kv  kvstore.Repository
	log logging.Logger

	mu    sync.Mutex
	user  *models.UserSession
	token string
	state State
}

// NewStore constructs a session store. The store starts in
// StateAuthenticating; call Load to restore any persisted session.
func NewStore(gw gateway.Gateway, kv kvstore.Repository, log logging.Logger) *Store {
	return &Store{gw: gw, kv: kv, log: log, state: StateAuthenticating}
}

// Load restores the persisted session, if any. Absent, malformed, or
// unreadable values all resolve to anonymous; nothing is surfaced.
func (s *Store) Load(ctx context.Context) {
	raw, err := s.kv.Get(ctx, storageKey)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.log.Warn(ctx, "error loading session, starting anonymous", "error", err)
		s.state = StateAnonymous
		return
	}
	if raw == nil {
		s.state = StateAnonymous
		return
	}

	var user models.UserSession
	if err := json.Unmarshal(raw, &user); err != nil || user.ID == "" {
		s.log.Warn(ctx, "stored session is malformed, starting anonymous", "error", err)
		s.state = StateAnonymous
		return
	}

	s.user = &user
	s.state = StateAuthenticated
}

// Login exchanges credentials for a session via the gateway. Empty email or
// password fails validation: false is returned and nothing changes. A
// gateway failure also returns false. Storage failures during persistence
// are swallowed; login still reports success.
func (s *Store) Login(ctx context.Context, email, password string) bool {
	if email == "" || password == "" {
		return false
	}

	s.setState(StateAuthenticating)

	user, token, err := s.gw.Authenticate(ctx, email, password)
	if err != nil {
		s.log.Warn(ctx, "login failed", "error", err)
		s.restoreState()
		return false
	}

	s.install(user, token)
	s.persistBestEffort(ctx, user)
	return true
}

// Register creates a brand-new account via the gateway. It never rejects
// well-formed data; storage failures are swallowed as for Login.
func (s *Store) Register(ctx context.Context, data models.RegisterData) bool {
	s.setState(StateAuthenticating)

	user, token, err := s.gw.CreateAccount(ctx, data)
	if err != nil {
		s.log.Warn(ctx, "registration failed", "error", err)
		s.restoreState()
		return false
	}

	s.install(user, token)
	s.persistBestEffort(ctx, user)
	return true
}

// Logout clears the in-memory session and removes the persisted record.
// The in-memory state is cleared even when storage fails. Idempotent.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.state = StateAnonymous
	s.mu.Unlock()

	if err := s.kv.Delete(ctx, storageKey); err != nil {
		s.log.Warn(ctx, "error removing persisted session", "error", err)
	}
}

// ProfilePatch carries partial profile updates. Zero-valued fields are left
// unchanged; TotalTrips and FavoriteRoutes use nil to mean "no change".
type ProfilePatch struct {
	Name           string
	Email          string
	Phone          string
	Avatar         string
	TotalTrips     *int
	FavoriteRoutes []string
}

// UpdateProfile merges the patch into the current session and re-persists
// it. No-op when no session is active.
func (s *Store) UpdateProfile(ctx context.Context, patch ProfilePatch) {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return
	}

	if patch.Name != "" {
		s.user.Name = patch.Name
	}
	if patch.Email != "" {
		s.user.Email = patch.Email
	}
	if patch.Phone != "" {
		s.user.Phone = patch.Phone
	}
	if patch.Avatar != "" {
		s.user.Avatar = patch.Avatar
	}
	if patch.TotalTrips != nil {
		s.user.TotalTrips = *patch.TotalTrips
	}
	if patch.FavoriteRoutes != nil {
		s.user.FavoriteRoutes = append([]string(nil), patch.FavoriteRoutes...)
	}
	updated := s.user.Clone()
	s.mu.Unlock()

	s.persistBestEffort(ctx, updated)
}

// Current returns a copy of the active session, or nil when anonymous.
func (s *Store) Current() *models.UserSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Clone()
}

// State reports the store's lifecycle state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Token returns the access token issued with the current session. Advisory
// only; it is never persisted.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Store) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// restoreState resolves an in-flight marker back to whatever the session
// says: authenticated if one is installed, anonymous otherwise.
func (s *Store) restoreState() {
	s.mu.Lock()
	if s.user != nil {
		s.state = StateAuthenticated
	} else {
		s.state = StateAnonymous
	}
	s.mu.Unlock()
}

func (s *Store) install(user *models.UserSession, token string) {
	s.mu.Lock()
	s.user = user
	s.token = token
	s.state = StateAuthenticated
	s.mu.Unlock()
}

// persistBestEffort writes the session to storage. Best-effort persistence:
// a failure is logged and swallowed so the caller's operation still
// succeeds; the in-memory session stays authoritative.
func (s *Store) persistBestEffort(ctx context.Context, user *models.UserSession) {
	raw, err := json.Marshal(user)
	if err != nil {
		s.log.Warn(ctx, "error serializing session", "error", err)
		return
	}
	if err := s.kv.Set(ctx, storageKey, raw); err != nil {
		s.log.Warn(ctx, "error persisting session", "error", err)
	}
}
