// Package runid generates per-run correlation identifiers. The evaluator
// records one in every persisted cache entry so overlapping or historical
// runs against a shared store can be told apart; log lines do not carry it.
// It has no effect on evaluation semantics.
package runid

import "github.com/google/uuid"

// New returns a freshly generated run id.
func New() string {
	return uuid.New().String()
}
