// Package sqlite provides the public API for the SQLite dataset store.
// It exposes the factory functions while keeping implementation details
// internal.
package sqlite

import (
	"log/slog"

	"github.com/mesh-intelligence/genetable/internal/sqlite"
	"github.com/mesh-intelligence/genetable/pkg/types"
)

// NewStore creates a new SQLite store instance. The store is not attached;
// call Attach with a Config to initialize.
//
// Example:
//
//	store := sqlite.NewStore()
//	err := store.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".genetable-db",
//	})
//	defer store.Detach()
func NewStore() types.Store {
	return sqlite.NewStore()
}

// NewStoreWithLogger creates a new SQLite store that logs lifecycle and
// persistence events to the given structured logger.
func NewStoreWithLogger(logger *slog.Logger) types.Store {
	return sqlite.NewStoreWithLogger(logger)
}
