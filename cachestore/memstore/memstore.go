// Package memstore provides the in-memory cachestore.Store implementation:
// a mutex-guarded map, used as the default when no durable store is
// configured.
package memstore

import (
	"context"
	"sync"

	"github.com/flowdag/flowdag/cachestore"
)

// Store is an in-memory, process-local cachestore.Store keyed by graph id.
// It satisfies the Store contract but does not survive process restarts;
// callers wanting warm starts across restarts use sqlitestore or
// redisstore instead.
type Store struct {
	mu   sync.Mutex
	data map[string]map[string]cachestore.Entry
}

// New returns an empty Store.
func New() *Store {
	return &Store{data: make(map[string]map[string]cachestore.Entry)}
}

// Load implements cachestore.Store.
func (s *Store) Load(_ context.Context, graphID string) (map[string]cachestore.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, ok := s.data[graphID]
	if !ok {
		return nil, nil
	}
	out := make(map[string]cachestore.Entry, len(entries))
	for k, v := range entries {
		out[k] = v
	}
	return out, nil
}

// Save implements cachestore.Store.
func (s *Store) Save(_ context.Context, graphID, key string, entry cachestore.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, ok := s.data[graphID]
	if !ok {
		entries = make(map[string]cachestore.Entry)
		s.data[graphID] = entries
	}
	entries[key] = entry
	return nil
}

// Close implements cachestore.Store. There is nothing to release.
func (s *Store) Close() error {
	return nil
}
