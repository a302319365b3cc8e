package store

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("store: not found")

// Store is the root data access interface of the console's local persistent
// storage. Concrete drivers (sqlite) implement this.
type Store interface {
	LocalStorage() LocalStorage

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// LocalStorage is a string key/value store that outlives the process, the
// same contract a browser gives its pages.
type LocalStorage interface {
	// GetItem returns the value under key, or ErrNotFound.
	GetItem(ctx context.Context, key string) (string, error)

	// SetItem inserts or replaces the value under key.
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes key. Removing a missing key is not an error.
	RemoveItem(ctx context.Context, key string) error
}
