// Package kv provides the key-value substrate LiftLog persists into. A
// Store offers per-key get/put/delete only, with no listing, no range
// scans, and no multi-key transactions, so every higher-level structure
// (name indices, session-pointer lists) is maintained as an explicit
// document by the workout package.
package kv

import (
	"context"
	"fmt"
)

// Store is the persistence contract consumed by the workout service.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the value at key. ok is false when the key is absent;
	// absence is not an error.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Put stores value at key, overwriting any existing value.
	Put(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// Close releases any underlying resources.
	Close() error
}

// Driver names accepted by Open.
const (
	DriverMemory   = "memory"   // in-process only (tests, ephemeral runs)
	DriverSQLite   = "sqlite"   // embedded database file
	DriverPostgres = "postgres" // PostgreSQL server
)

// Open selects and opens a store backend. An empty driver defaults to
// sqlite. The postgres driver expects its schema to exist already; run
// RunMigrations first.
func Open(ctx context.Context, driver, path, dsn string) (Store, error) {
	switch driver {
	case "", DriverSQLite:
		return OpenSQLite(path)
	case DriverMemory:
		return NewMemory(), nil
	case DriverPostgres:
		return OpenPostgres(ctx, dsn)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
