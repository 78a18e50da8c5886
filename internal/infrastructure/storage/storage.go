// internal/infrastructure/storage/storage.go
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

// ErrUnavailable wraps backend failures. Callers treat it as a recoverable
// warning: in-memory state stays authoritative and the next write retries.
var ErrUnavailable = errors.New("storage: backend unavailable")

// Store is the durable key-value storage the session stores mirror into.
// Each store is the exclusive reader and writer of its own key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
