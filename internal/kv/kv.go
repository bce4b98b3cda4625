// Package kv is the persistent key/value layer under the SkillVerse store.
//
// Keys are namespaced strings, values are opaque bytes (JSON documents in
// practice). Get returns (nil, nil) for an absent key; Delete of an absent
// key is not an error.
//
// Backends live in sub-packages (sqlkv for SQLite and PostgreSQL, browser for
// js/wasm localStorage); Memory in this package serves tests and throwaway
// sessions.
package kv

import "context"

// Repository is the basic key/value surface.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// Store is a Repository that owns its resources and can run a group of
// operations atomically. Backends without transactions run fn directly.
type Store interface {
	Repository
	Atomic(ctx context.Context, fn func(ctx context.Context, r Repository) error) error
	Close() error
}
