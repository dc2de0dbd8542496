// Package redisstore implements cachestore.Store on a Redis hash per graph
// id, following the key-namespacing convention of the checkpoint saver this
// module learned its persistence idioms from.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/flowdag/flowdag/cachestore"
)

const hashKeyPrefix = "flowcache:"

func hashKey(graphID string) string {
	return hashKeyPrefix + graphID
}

// Store is a Redis-backed cachestore.Store: one hash per graph id, field
// names are cache keys, values are JSON-encoded cachestore.Entry records.
type Store struct {
	client redis.UniversalClient
}

// New wraps an already-constructed Redis client.
func New(client redis.UniversalClient) (*Store, error) {
	if client == nil {
		return nil, errors.New("client is nil")
	}
	return &Store{client: client}, nil
}

// Load implements cachestore.Store.
func (s *Store) Load(ctx context.Context, graphID string) (map[string]cachestore.Entry, error) {
	raw, err := s.client.HGetAll(ctx, hashKey(graphID)).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall %s: %w", hashKey(graphID), err)
	}
	entries := make(map[string]cachestore.Entry, len(raw))
	for field, payload := range raw {
		var entry cachestore.Entry
		if err := json.Unmarshal([]byte(payload), &entry); err != nil {
			return nil, fmt.Errorf("unmarshal cache entry %s: %w", field, err)
		}
		entries[field] = entry
	}
	return entries, nil
}

// Save implements cachestore.Store.
func (s *Store) Save(ctx context.Context, graphID, key string, entry cachestore.Entry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}
	if err := s.client.HSet(ctx, hashKey(graphID), key, payload).Err(); err != nil {
		return fmt.Errorf("hset %s: %w", hashKey(graphID), err)
	}
	return nil
}

// Close implements cachestore.Store.
func (s *Store) Close() error {
	return s.client.Close()
}
