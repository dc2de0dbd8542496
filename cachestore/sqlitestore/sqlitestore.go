// Package sqlitestore implements cachestore.Store on top of a single SQLite
// table, following the schema-on-construct convention of the checkpoint
// savers this module learned its persistence idioms from.
package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/flowdag/flowdag/cachestore"
)

const (
	createTable = "CREATE TABLE IF NOT EXISTS flow_cache (" +
		"graph_id TEXT NOT NULL, " +
		"cache_key TEXT NOT NULL, " +
		"run_id TEXT NOT NULL, " +
		"value_json BLOB NOT NULL, " +
		"ts INTEGER NOT NULL, " +
		"PRIMARY KEY (graph_id, cache_key)" +
		")"

	insertEntry = "INSERT OR REPLACE INTO flow_cache " +
		"(graph_id, cache_key, run_id, value_json, ts) VALUES (?, ?, ?, ?, ?)"

	selectByGraph = "SELECT cache_key, run_id, value_json, ts FROM flow_cache WHERE graph_id = ?"
)

// Store is a SQLite-backed cachestore.Store. It expects an already-opened
// *sql.DB using the sqlite3 driver and creates its table on construction.
type Store struct {
	db *sql.DB
}

// New creates a Store using db, creating the backing table if needed.
func New(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, errors.New("db is nil")
	}
	if _, err := db.Exec(createTable); err != nil {
		return nil, fmt.Errorf("create flow_cache table: %w", err)
	}
	return &Store{db: db}, nil
}

// Load implements cachestore.Store.
func (s *Store) Load(ctx context.Context, graphID string) (map[string]cachestore.Entry, error) {
	rows, err := s.db.QueryContext(ctx, selectByGraph, graphID)
	if err != nil {
		return nil, fmt.Errorf("select flow_cache: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]cachestore.Entry)
	for rows.Next() {
		var key, runID string
		var valueJSON []byte
		var ts int64
		if err := rows.Scan(&key, &runID, &valueJSON, &ts); err != nil {
			return nil, fmt.Errorf("scan flow_cache row: %w", err)
		}
		var value any
		if err := json.Unmarshal(valueJSON, &value); err != nil {
			return nil, fmt.Errorf("unmarshal cached value: %w", err)
		}
		entries[key] = cachestore.Entry{Value: value, RunID: runID, Timestamp: ts}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate flow_cache rows: %w", err)
	}
	return entries, nil
}

// Save implements cachestore.Store.
func (s *Store) Save(ctx context.Context, graphID, key string, entry cachestore.Entry) error {
	valueJSON, err := json.Marshal(entry.Value)
	if err != nil {
		return fmt.Errorf("marshal cached value: %w", err)
	}
	_, err = s.db.ExecContext(ctx, insertEntry, graphID, key, entry.RunID, valueJSON, entry.Timestamp)
	if err != nil {
		return fmt.Errorf("insert flow_cache row: %w", err)
	}
	return nil
}

// Close implements cachestore.Store.
func (s *Store) Close() error {
	return s.db.Close()
}
