package chainstore

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when the backing store cannot serve requests.
// Callers surface it and abort the current operation; there is no retry loop.
var ErrUnavailable = errors.New("chain store unavailable")

// Store is the contract of the external key/value collaborator the registry
// writes through. In production this is the on-chain data contract; locally
// it is redis or an in-memory map.
//
// Semantics:
//   - GetData returns empty bytes (not an error) for an absent key.
//   - SetData overwrites unconditionally; authorization for the writing
//     account is the store's concern, not the caller's.
//   - All payloads written by this service are UTF-8 JSON text.
type Store interface {
	// IsAvailable reports whether the store can currently serve requests.
	IsAvailable(ctx context.Context) (bool, error)

	// GetData reads the value under key. Empty slice means absent.
	GetData(ctx context.Context, key string) ([]byte, error)

	// SetData writes value under key, overwriting any previous value.
	SetData(ctx context.Context, key string, value []byte) error
}
