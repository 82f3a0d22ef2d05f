// Package kv contains the persistent key-value repositories backing the
// client's session and preferences: SQLite, Redis and in-memory.
package kv

import (
	"context"
)

// Repository is an asynchronous string-keyed store.
//
// Get reports a missing key as ("", false, nil); errors are reserved for
// backend failures.
type Repository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}

// Batcher is implemented by repositories that can write or delete several
// keys as one unit: either every key changes or none does.
type Batcher interface {
	SetMany(ctx context.Context, values map[string]string) error
	RemoveMany(ctx context.Context, keys ...string) error
}
