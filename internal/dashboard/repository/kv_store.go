// Package repository persists dashboard state in a key/value store.
package repository

import "context"

// KVStore is an opaque key/value store for JSON encoded values.
// Get reports ok=false when the key is absent.
type KVStore interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
