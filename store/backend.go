package store

import "context"

// Backend is the persistence surface collections are serialized to. Keys are
// "<prefix>_<collection>". Get returns (nil, nil) when the key has never been
// written. Implementations must support whole-value read and write; nothing
// finer grained is required.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
