package kvstore

import (
	"context"
	"io"
	"time"
)

// Store defines the key-value operations the OTP engine and rate limiter
// depend on. Values are opaque strings; callers serialize their records
// before storing.
type Store interface {
	io.Closer

	// Get returns the value for key. An absent or expired key yields an
	// error wrapping goerror.ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key. A positive ttl makes the entry
	// unreachable via Get after the ttl elapses, even without further
	// writes. A non-positive ttl persists until Delete.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Incrementer is an optional extension for backends that support atomic
// counting. The OTP engine does not use it: its read-modify-write sequences
// are accepted as non-atomic. It is offered for callers that need strict
// counting under contention.
type Incrementer interface {
	// Incr atomically increments the integer stored at key and returns the
	// new value. The ttl is applied when the increment creates the key.
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}
