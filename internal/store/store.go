// internal/store/store.go
//
// Local key-value persistence surface for daily sessions and player stats.
// Single-writer, last-write-wins; only one game manager is ever active per
// database, so no cross-process coordination is needed.

package store

import "context"

// KV is the persistence interface the game manager writes through.
// Implementations may be backed by memory (tests, endless-only deployments)
// or bbolt (durable, the default).
type KV interface {
	// Get returns the stored value for key. ok is false when absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
