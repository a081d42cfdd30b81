// Package cache provides a process-local key/value store with per-entry absolute and
// sliding expiration.
//
// An entry is visible while both of its deadlines lie in the future:
//   - the absolute deadline, fixed at Set time (insertion + absolute expiration)
//   - the sliding deadline, last successful Get + sliding expiration (optional)
//
// A successful Get moves the sliding deadline forward but never the absolute one, so the
// absolute expiration is always the outer bound of an entry's lifetime.
package cache

import (
	"sync"
	"time"
)

// DefaultExpiration is the absolute expiration applied when Set is called without one.
const DefaultExpiration = 10 * time.Minute

// Clock provides an abstraction for time operations to enable testing.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// SystemClock is a Clock implementation that uses the system time.
type SystemClock struct{}

// Now returns the current system time.
func (c *SystemClock) Now() time.Time {
	return time.Now()
}

// Config holds configuration for Store.
type Config struct {
	// Name labels the store's metrics.
	// Default: "default"
	Name string

	// DefaultExpiration is the absolute expiration used when an entry is set without one.
	// Default: 10 minutes
	DefaultExpiration time.Duration

	// Clock provides time operations for testing.
	// Default: SystemClock
	Clock Clock
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Name:              "default",
		DefaultExpiration: DefaultExpiration,
		Clock:             &SystemClock{},
	}
}

// entry is a single cached value with its expiration bookkeeping.
type entry struct {
	value      any
	deadline   time.Time     // absolute deadline
	sliding    time.Duration // zero => no sliding window
	lastAccess time.Time
}

func (e *entry) expired(now time.Time) bool {
	if !now.Before(e.deadline) {
		return true
	}
	if e.sliding > 0 && !now.Before(e.lastAccess.Add(e.sliding)) {
		return true
	}
	return false
}

// Store is a concurrency-safe in-memory cache.
//
// Expired entries are removed lazily on access and in bulk by DeleteExpired.
// The zero value is not usable; create stores with NewStore.
type Store struct {
	mu                sync.RWMutex
	entries           map[string]*entry
	defaultExpiration time.Duration
	clock             Clock
	metrics           *storeMetrics
}

// NewStore creates a new Store with the given configuration.
func NewStore(config Config) *Store {
	if config.Name == "" {
		config.Name = "default"
	}
	if config.DefaultExpiration <= 0 {
		config.DefaultExpiration = DefaultExpiration
	}
	if config.Clock == nil {
		config.Clock = &SystemClock{}
	}

	return &Store{
		entries:           make(map[string]*entry),
		defaultExpiration: config.DefaultExpiration,
		clock:             config.Clock,
		metrics:           newStoreMetrics(config.Name),
	}
}

// EntryOption customizes a single Set call.
type EntryOption func(*entryOptions)

type entryOptions struct {
	absolute time.Duration
	sliding  time.Duration
}

// WithAbsoluteExpiration sets the lifetime of the entry relative to the Set call.
// Non-positive values fall back to the store's default expiration.
func WithAbsoluteExpiration(d time.Duration) EntryOption {
	return func(o *entryOptions) {
		o.absolute = d
	}
}

// WithSlidingExpiration makes the entry expire when it is not read for d.
// Non-positive values disable the sliding window.
func WithSlidingExpiration(d time.Duration) EntryOption {
	return func(o *entryOptions) {
		o.sliding = d
	}
}

// Exists reports whether an unexpired entry for key is present.
// It does not count as an access and never extends the sliding window.
func (s *Store) Exists(key string) bool {
	now := s.clock.Now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	return ok && !e.expired(now)
}

// Get returns the value stored for key and true, or nil and false when no unexpired entry
// exists. A stored nil or zero value is still reported as found.
func (s *Store) Get(key string) (any, bool) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		s.metrics.miss()
		return nil, false
	}
	if e.expired(now) {
		delete(s.entries, key)
		s.metrics.evicted(reasonExpired)
		s.metrics.setEntries(len(s.entries))
		s.metrics.miss()
		return nil, false
	}

	e.lastAccess = now
	s.metrics.hit()
	return e.value, true
}

// Set stores value under key, replacing any existing entry and resetting its clocks.
func (s *Store) Set(key string, value any, opts ...EntryOption) {
	o := entryOptions{absolute: s.defaultExpiration}
	for _, opt := range opts {
		opt(&o)
	}
	if o.absolute <= 0 {
		o.absolute = s.defaultExpiration
	}
	if o.sliding < 0 {
		o.sliding = 0
	}

	now := s.clock.Now()
	e := &entry{
		value:      value,
		deadline:   now.Add(o.absolute),
		sliding:    o.sliding,
		lastAccess: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = e
	s.metrics.setEntries(len(s.entries))
}

// Remove deletes the entry for key. Removing a missing key is a no-op.
func (s *Store) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; !ok {
		return
	}
	delete(s.entries, key)
	s.metrics.evicted(reasonRemoved)
	s.metrics.setEntries(len(s.entries))
}

// DeleteExpired removes every expired entry and returns how many were removed.
func (s *Store) DeleteExpired() int {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, e := range s.entries {
		if e.expired(now) {
			delete(s.entries, key)
			removed++
		}
	}
	if removed > 0 {
		s.metrics.evictedN(reasonExpired, removed)
		s.metrics.setEntries(len(s.entries))
	}
	return removed
}

// Len returns the number of entries held, including expired entries not yet swept.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// GetAs returns the value stored for key asserted to T.
// A value of a different type is reported as not found.
func GetAs[T any](s *Store, key string) (T, bool) {
	var zero T
	v, ok := s.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
