// Package kvstore implements the asynchronous key-value storage collaborator
// the stores persist through. The core keeps exactly two keys: "user"
// (the serialized session) and "themeMode" (the theme literal).
//
// Backends: SQLite (the on-device default), Postgres, Redis, and an in-memory
// map. All backends share one contract: absent keys are not an error.
package kvstore

import "context"

// Repository is the storage collaborator contract.
//
// Get returns (nil, nil) when the key is absent; callers must treat a nil
// value as "no stored state" and fall back to their defaults.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
