// Package kv abstracts the prefix-scanned key-value store every service
// persists into. Keys follow a flat convention such as
// "finance:<farmerId>:<recordId>" to simulate per-owner collections.
package kv

import "context"

// Store is the persistence contract shared by all backends.
//
// Put is an upsert with last-write-wins semantics on duplicate keys.
// ScanPrefix returns every stored value whose key starts with prefix, in
// unspecified order and without pagination; callers sort and truncate
// themselves. There are no transactional guarantees across calls.
type Store interface {
	Put(ctx context.Context, key string, value []byte) error
	ScanPrefix(ctx context.Context, prefix string) ([][]byte, error)
	Delete(ctx context.Context, key string) error
	Close(ctx context.Context) error
}

// PrefixKeyScanner is implemented by backends that can also report the keys
// of a prefix scan. The retention pruner needs keys to delete stale entries.
type PrefixKeyScanner interface {
	ScanPrefixKeys(ctx context.Context, prefix string) ([]string, error)
}
