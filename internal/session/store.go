package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rshade/ecopayback/internal/payback"
)

// DefaultTTL is used when a store is created with a non-positive TTL.
const DefaultTTL = 30 * time.Minute

// Common session errors.
var (
	ErrNotFound  = errors.New("session not found")
	ErrExpired   = errors.New("session expired")
	ErrInvalidID = errors.New("invalid session id")
)

// Store is an in-memory, TTL-bounded set of sessions.
// It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*Entry

	ttl    time.Duration
	now    func() time.Time
	logger zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the time source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger used for session lifecycle events.
// Each new session's result state logs through it too.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// NewStore creates an empty store whose sessions expire after ttl of
// inactivity.
func NewStore(ttl time.Duration, opts ...Option) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &Store{
		entries: make(map[string]*Entry),
		ttl:     ttl,
		now:     time.Now,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TTL returns the inactivity timeout.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Len returns the number of sessions held, expired ones included until the
// next cleanup.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Create starts a new session with a fresh, empty result state.
func (s *Store) Create() *Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createLocked()
}

func (s *Store) createLocked() *Entry {
	id := uuid.NewString()
	state := payback.NewResultState().WithLogger(s.logger.With().Str("session_id", id).Logger())
	entry := newEntry(id, state, s.now(), s.ttl)
	s.entries[id] = entry

	s.logger.Debug().
		Str("session_id", id).
		Time("expires_at", entry.expiresAt).
		Msg("session created")
	return entry
}

// Get returns the session with the given id and refreshes its expiry.
// An expired session is removed and reported as ErrExpired.
func (s *Store) Get(id string) (*Entry, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}

	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	now := s.now()
	if entry.IsExpired(now) {
		s.mu.Lock()
		if current, still := s.entries[id]; still && current == entry {
			delete(s.entries, id)
		}
		s.mu.Unlock()
		s.logger.Debug().Str("session_id", id).Msg("session expired")
		return nil, ErrExpired
	}

	entry.Touch(now)
	return entry, nil
}

// GetOrCreate returns the live session for id, or a new session when id is
// empty, malformed, unknown or expired. The boolean reports whether a new
// session was created.
func (s *Store) GetOrCreate(id string) (*Entry, bool) {
	if id != "" {
		if entry, err := s.Get(id); err == nil {
			return entry, false
		}
	}
	return s.Create(), true
}

// Delete removes a session. It reports whether the session existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; !ok {
		return false
	}
	delete(s.entries, id)
	s.logger.Debug().Str("session_id", id).Msg("session deleted")
	return true
}

// CleanupExpired removes every expired session and returns how many were
// removed.
func (s *Store) CleanupExpired() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, entry := range s.entries {
		if entry.IsExpired(now) {
			delete(s.entries, id)
			removed++
		}
	}

	if removed > 0 {
		s.logger.Debug().Int("removed", removed).Int("remaining", len(s.entries)).Msg("expired sessions removed")
	}
	return removed
}

// RunJanitor calls CleanupExpired every interval until ctx is done.
func (s *Store) RunJanitor(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = s.ttl / 2
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.CleanupExpired()
		}
	}
}
