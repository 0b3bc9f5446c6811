// Package storage persists the budget state through an opaque key-value
// store. The gateway serializes domain collections to JSON strings; the
// store implementations decide where the strings live.
package storage

import "context"

// KVStore is the opaque persistence medium: string keys mapped to string
// values. Get reports ok=false when the key has never been written.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
