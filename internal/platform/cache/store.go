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

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Store is a TTL map whose loads are collapsed per key. A zero ttl never expires entries.
type Store[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	ttl     time.Duration
	now     func() time.Time
	flight  singleflight.Group

	hits   atomic.Int64
	misses atomic.Int64
}

type Stats struct {
	Entries int
	Hits    int64
	Misses  int64
}

func NewStore[V any](ttl time.Duration) *Store[V] {
	return &Store[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *Store[V]) Get(_ context.Context, key string) (V, bool) {
	var zero V
	if key == "" {
		return zero, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return zero, false
	}
	if s.expired(e) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return zero, false
	}

	return e.value, true
}

func (s *Store[V]) Set(_ context.Context, key string, value V) {
	if key == "" {
		return
	}

	expiresAt := time.Time{}
	if s.ttl > 0 {
		expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[key] = entry[V]{value: value, expiresAt: expiresAt}
	s.mu.Unlock()
}

// DeletePrefix drops every key that starts with prefix.
func (s *Store[V]) DeletePrefix(_ context.Context, prefix string) {
	if prefix == "" {
		return
	}

	s.mu.Lock()
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
	s.mu.Unlock()
}

// Prune removes expired entries and returns how many were dropped.
func (s *Store[V]) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := 0
	for key, e := range s.entries {
		if s.expired(e) {
			delete(s.entries, key)
			dropped++
		}
	}
	return dropped
}

func (s *Store[V]) Stats() Stats {
	s.mu.RLock()
	size := len(s.entries)
	s.mu.RUnlock()
	return Stats{Entries: size, Hits: s.hits.Load(), Misses: s.misses.Load()}
}

// GetOrLoad returns the cached value or runs loader once for all concurrent callers of key.
// Loader errors are returned and never cached.
func (s *Store[V]) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (V, error)) (V, error) {
	var zero V
	if loader == nil {
		return zero, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		s.hits.Add(1)
		return value, nil
	}
	s.misses.Add(1)

	value, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.Set(ctx, key, loaded)
		return loaded, nil
	})
	if err != nil {
		return zero, err
	}

	return value.(V), nil
}

func (s *Store[V]) expired(e entry[V]) bool {
	return s.ttl > 0 && !e.expiresAt.After(s.now())
}
