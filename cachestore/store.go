// Package cachestore defines a pluggable, durable backing store for the
// evaluator's result cache. A Store lets a fresh evaluator warm-start from a
// prior run's cached node outputs instead of recomputing them; it never
// changes the in-process cache's write-once semantics. The in-process cache
// is the evaluator's own map; the memstore subpackage is only the Store that
// receives its mirrored writes when no other Store is configured.
package cachestore

import "context"

// Entry is one persisted cache record: the value produced on a node's
// bare-id or "<node-id>:<port>" key, alongside the run that produced it and
// when.
type Entry struct {
	Value     any    `json:"value"`
	RunID     string `json:"run_id"`
	Timestamp int64  `json:"timestamp"`
}

// Store is the durable backing store contract. graphID identifies a
// program; computing it (e.g. hashing the program text, or a user-chosen
// name) is the caller's concern, analogous to file-loading and CLI parsing.
type Store interface {
	// Load returns every persisted entry for graphID, keyed the same way
	// the in-process cache keys them (bare node-id, or "<node-id>:<port>").
	Load(ctx context.Context, graphID string) (map[string]Entry, error)

	// Save persists a single entry under key for graphID.
	Save(ctx context.Context, graphID string, key string, entry Entry) error

	// Close releases any resources held by the store (database handles,
	// network connections). Stores with nothing to release may no-op.
	Close() error
}
