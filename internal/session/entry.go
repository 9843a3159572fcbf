package session

import (
	"sync"
	"time"

	"github.com/rshade/ecopayback/internal/payback"
)

// Entry is a single session and the result state it owns.
type Entry struct {
	// ID is the session identifier sent to the browser.
	ID string

	// CreatedAt is when the session was first seen.
	CreatedAt time.Time

	mu        sync.Mutex
	expiresAt time.Time
	ttl       time.Duration
	state     *payback.ResultState
}

func newEntry(id string, state *payback.ResultState, now time.Time, ttl time.Duration) *Entry {
	return &Entry{
		ID:        id,
		CreatedAt: now,
		expiresAt: now.Add(ttl),
		ttl:       ttl,
		state:     state,
	}
}

// ExpiresAt returns the current expiry time.
func (e *Entry) ExpiresAt() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.expiresAt
}

// IsExpired reports whether the entry had expired at now.
func (e *Entry) IsExpired(now time.Time) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return now.After(e.expiresAt)
}

// Touch extends the expiry to now plus the entry's TTL.
func (e *Entry) Touch(now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.expiresAt = now.Add(e.ttl)
}

// Do runs fn with exclusive access to the session's result state.
func (e *Entry) Do(fn func(state *payback.ResultState) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.state)
}
