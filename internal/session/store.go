// Package session provides keyed in-memory storage for live mini-game state.
// Each game kind owns an independent Store, so key namespaces never collide.
package session

import (
	"sync"
	"time"
)

type entry[T any] struct {
	value     T
	createdAt time.Time
}

// Store holds live sessions keyed by owner or game ID. Sessions are retained
// until explicitly deleted; an optional TTL enables eviction of abandoned
// sessions, and is off by default to match the historical behavior of
// keeping them for the life of the process.
type Store[T any] struct {
	mu      sync.Mutex
	entries map[string]entry[T]
	ttl     time.Duration
	stop    chan struct{}
}

// Option configures a Store.
type Option func(*options)

type options struct {
	ttl time.Duration
}

// WithTTL enables eviction of sessions older than d. The zero duration
// leaves eviction disabled.
func WithTTL(d time.Duration) Option {
	return func(o *options) { o.ttl = d }
}

// NewStore creates an empty session store.
func NewStore[T any](opts ...Option) *Store[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store[T]{
		entries: make(map[string]entry[T]),
		ttl:     o.ttl,
		stop:    make(chan struct{}),
	}
	if s.ttl > 0 {
		go s.janitor()
	}
	return s
}

// Put stores a session, overwriting any existing session for the key.
func (s *Store[T]) Put(key string, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry[T]{value: value, createdAt: time.Now()}
}

// Get returns the session for key, if present.
func (s *Store[T]) Get(key string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	return e.value, ok
}

// Delete removes the session for key. Deleting a missing key is a no-op.
func (s *Store[T]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Len returns the number of live sessions.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Close stops the eviction janitor, if running.
func (s *Store[T]) Close() {
	if s.ttl > 0 {
		close(s.stop)
	}
}

func (s *Store[T]) janitor() {
	ticker := time.NewTicker(s.ttl / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.evictExpired()
		case <-s.stop:
			return
		}
	}
}

func (s *Store[T]) evictExpired() {
	cutoff := time.Now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, e := range s.entries {
		if e.createdAt.Before(cutoff) {
			delete(s.entries, k)
		}
	}
}
