package ports

import "context"

// KeyValueStore is the persistence collaborator the core writes through.
// Values are opaque JSON documents; the core owns their shape.
//
// Get returns (nil, nil) when the key has never been set. Set must be
// atomic per key: a failed Set leaves the previous value in place.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
