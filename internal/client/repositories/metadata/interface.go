// Package metadata is a small key-value store over the client's local
// sqlite database. It backs the preference store (display language) and the
// fallback tier of the device-identity chain.
package metadata

import "context"

type Repository interface {
	// Get returns the stored value or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
