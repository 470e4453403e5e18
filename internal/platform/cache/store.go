package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	value    any
	storedAt time.Time
	ttl      time.Duration
}

// validAt reports whether the entry is still fresh. A non-positive ttl never expires.
func (e entry) validAt(now time.Time) bool {
	if e.ttl <= 0 {
		return true
	}
	return now.Sub(e.storedAt) < e.ttl
}

// Stats is a point-in-time view of cache effectiveness.
type Stats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// Store is an in-memory key/value cache with per-entry TTL.
// Concurrent GetOrLoad calls for the same key share one loader invocation.
type Store struct {
	mu         sync.RWMutex
	entries    map[string]entry
	defaultTTL time.Duration
	flight     singleflight.Group
	now        func() time.Time

	hits   atomic.Uint64
	misses atomic.Uint64
}

func NewStore(defaultTTL time.Duration) *Store {
	return &Store{
		entries:    make(map[string]entry),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

// WithClock replaces the time source. Intended for tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	if now != nil {
		s.now = now
	}
	return s
}

// Get returns the payload stored under key only if it has not expired.
func (s *Store) Get(_ context.Context, key string) (any, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok || !e.validAt(s.now()) {
		s.misses.Add(1)
		return nil, false
	}

	s.hits.Add(1)
	return e.value, true
}

// Set stores value with the current timestamp, overwriting any prior entry.
// A non-positive ttl falls back to the store default.
func (s *Store) Set(_ context.Context, key string, value any, ttl time.Duration) {
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	s.mu.Lock()
	s.entries[key] = entry{
		value:    value,
		storedAt: s.now(),
		ttl:      ttl,
	}
	s.mu.Unlock()
}

func (s *Store) Delete(_ context.Context, key string) {
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}

	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Purge drops entries that are already expired.
func (s *Store) Purge(_ context.Context) int {
	now := s.now()
	removed := 0

	s.mu.Lock()
	for key, e := range s.entries {
		if !e.validAt(now) {
			delete(s.entries, key)
			removed++
		}
	}
	s.mu.Unlock()

	return removed
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	size := len(s.entries)
	s.mu.RUnlock()

	return Stats{
		Hits:    s.hits.Load(),
		Misses:  s.misses.Load(),
		Entries: size,
	}
}

// GetOrLoad returns the cached value for key, or runs loader and caches its result.
// The boolean is true when the value came from the cache. Loader errors are not cached.
// The loader runs on a context detached from ctx cancellation: a load shared by
// several callers finishes even if the caller that started it goes away.
func (s *Store) GetOrLoad(ctx context.Context, key string, ttl time.Duration, loader func(context.Context) (any, error)) (any, bool, error) {
	if loader == nil {
		return nil, false, fmt.Errorf("loader is required")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		value, err := loader(context.WithoutCancel(ctx))
		return value, false, err
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, true, nil
	}

	type flightResult struct {
		value     any
		fromCache bool
	}

	loadCtx := context.WithoutCancel(ctx)
	out, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := s.Get(loadCtx, key); ok {
			return flightResult{value: cached, fromCache: true}, nil
		}

		loaded, loadErr := loader(loadCtx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.Set(loadCtx, key, loaded, ttl)
		return flightResult{value: loaded}, nil
	})
	if err != nil {
		return nil, false, err
	}

	res := out.(flightResult)
	return res.value, res.fromCache, nil
}
