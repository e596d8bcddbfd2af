// Package sqlite implements the SQLite storage backend for genetable.
// SQLite serves as the query engine while JSONL files in the data
// directory remain the source of truth: they are loaded on Attach and
// rewritten atomically after mutations.
package sqlite

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/genetable/pkg/types"
)

// Compile-time interface check: Store must implement types.Store.
var _ types.Store = (*Store)(nil)

// databaseFile is the SQLite database filename inside DataDir.
const databaseFile = "genetable.db"

// Store implements types.Store using SQLite as the query engine and JSONL
// files as the source of truth.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	logger   *slog.Logger

	// on_close sync strategy state: JSONL writes queued until Detach.
	syncStrategy  string
	pendingMu     sync.Mutex
	pendingWrites []pendingWrite
}

// pendingWrite is a deferred JSONL persist operation, used by the on_close
// sync strategy.
type pendingWrite struct {
	table   string       // SQLite table whose JSONL file is stale
	persist func() error // executes the JSONL write
}

// NewStore creates a new SQLite store. The store is not attached; call
// Attach with a Config to initialize. Logging is disabled by default.
func NewStore() *Store {
	return NewStoreWithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// NewStoreWithLogger creates a new SQLite store that logs lifecycle and
// persistence events to the given structured logger.
func NewStoreWithLogger(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{logger: logger}
}

// Attach initializes the store with the given configuration. Creates
// DataDir if needed, initializes the SQLite schema, and loads the JSONL
// files into SQLite. Returns ErrAlreadyAttached if already attached.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	config.DataDir = dataDir

	// The database file is rebuilt from JSONL on every attach.
	dbPath := filepath.Join(dataDir, databaseFile)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("initializing schema: %w", err)
	}

	if err := initJSONLFiles(dataDir); err != nil {
		db.Close()
		return err
	}

	if err := loadAllJSONL(db, dataDir); err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}

	s.db = db
	s.config = config
	s.syncStrategy = config.EffectiveSyncStrategy()
	s.pendingWrites = nil
	s.attached = true

	s.logger.Info("store attached",
		slog.String("data_dir", dataDir),
		slog.String("sync_strategy", s.syncStrategy))

	return nil
}

// Detach releases all resources held by the store. For the on_close sync
// strategy, flushes pending JSONL writes before closing. Idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}

	if err := s.flushPendingWrites(); err != nil {
		return fmt.Errorf("flush pending writes: %w", err)
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}

	s.attached = false
	s.logger.Info("store detached")
	return nil
}

// persistOrQueue executes the JSONL write immediately, or queues it when
// the on_close strategy is active. The caller must hold s.mu.
func (s *Store) persistOrQueue(table string, persist func() error) error {
	if s.syncStrategy == types.SyncOnClose {
		s.pendingMu.Lock()
		s.pendingWrites = append(s.pendingWrites, pendingWrite{table: table, persist: persist})
		s.pendingMu.Unlock()
		return nil
	}
	return persist()
}

// flushPendingWrites executes all queued JSONL writes. The caller must
// hold s.mu.
func (s *Store) flushPendingWrites() error {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()

	for _, pw := range s.pendingWrites {
		if err := pw.persist(); err != nil {
			return fmt.Errorf("flush %s: %w", pw.table, err)
		}
	}
	s.pendingWrites = nil
	return nil
}

// generateUUID generates a new UUID v7 for dataset IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fall back to UUID v4 if v7 generation fails.
		return uuid.New().String()
	}
	return id.String()
}
