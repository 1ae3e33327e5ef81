// Package storage provides the machine-local key-value store the
// persistence layer writes through: a SQLite-backed implementation for real
// use and an in-memory implementation for tests and for running without
// durable storage.
package storage

import "context"

// KV is a string key-value store holding serialized application state.
//
// Get returns common.ErrorNotFound when the key is absent. Set may fail
// (disk full, quota, closed database); callers are expected to translate
// that into their own persistence error.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
