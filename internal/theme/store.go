// Package theme owns the user's theme preference and the derived color
// palette. The stored mode is one of light/dark/system; the boolean that
// actually drives palette selection is derived from the mode plus the host
// platform's color-scheme signal.
package theme

import (
	"context"
	"sync"

	"github.com/avoronin/cityride/internal/kvstore"
	"github.com/avoronin/cityride/internal/logging"
)

// storageKey is where the mode literal lives in the key-value store.
const storageKey = "themeMode"

// Mode is the user's theme choice.
type Mode string

const (
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
	ModeSystem Mode = "system"
)

// Scheme is the host platform's current color scheme.
type Scheme string

const (
	SchemeLight Scheme = "light"
	SchemeDark  Scheme = "dark"
)

// SchemeFunc reports the host scheme at call time. The store never polls;
// the signal is sampled whenever IsDark is evaluated.
type SchemeFunc func() Scheme

// Store owns the theme preference. The in-memory mode is authoritative;
// persistence is best effort.
type Store struct {
	kv     kvstore.Repository
	log    logging.Logger
	scheme SchemeFunc

	mu   sync.Mutex
	mode Mode
}

// NewStore constructs a theme store defaulting to ModeSystem. A nil scheme
// function is treated as an always-light host.
func NewStore(kv kvstore.Repository, log logging.Logger, scheme SchemeFunc) *Store {
	if scheme == nil {
		scheme = func() Scheme { return SchemeLight }
	}
	return &Store{kv: kv, log: log, scheme: scheme, mode: ModeSystem}
}

// Load restores the persisted mode. Absent, unrecognized, or unreadable
// values leave the default ModeSystem in place; nothing is surfaced.
func (s *Store) Load(ctx context.Context) {
	raw, err := s.kv.Get(ctx, storageKey)
	if err != nil {
		s.log.Warn(ctx, "error loading theme mode", "error", err)
		return
	}

	switch Mode(raw) {
	case ModeLight, ModeDark, ModeSystem:
		s.mu.Lock()
		s.mode = Mode(raw)
		s.mu.Unlock()
	}
}

// Mode returns the current in-memory mode.
func (s *Store) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetMode updates the mode in memory first, then persists best-effort.
// A storage failure is logged and swallowed; the in-memory mode stays
// authoritative.
func (s *Store) SetMode(ctx context.Context, mode Mode) {
	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()

	if err := s.kv.Set(ctx, storageKey, []byte(mode)); err != nil {
		s.log.Warn(ctx, "error persisting theme mode", "error", err)
	}
}

// IsDark reports the effective dark mode: dark always, light never,
// system follows the host signal.
func (s *Store) IsDark() bool {
	mode := s.Mode()
	return mode == ModeDark || (mode == ModeSystem && s.scheme() == SchemeDark)
}

// Palette returns the light or dark palette wholesale per IsDark.
// Roles are never mixed across palettes.
func (s *Store) Palette() Palette {
	if s.IsDark() {
		return Dark
	}
	return Light
}
