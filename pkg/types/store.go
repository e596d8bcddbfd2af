package types

import "errors"

// Store defines backend-agnostic persistent access to datasets.
// Callers attach to a backend, operate on datasets by ID, and detach when
// done.
type Store interface {
	// Attach connects the Store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, dataset operations return ErrStoreDetached.
	Detach() error

	// Save creates or updates a dataset. When DatasetID is empty a new
	// UUID v7 is generated. Returns the actual ID used.
	Save(ds *Dataset) (string, error)

	// Get retrieves the dataset with the given ID.
	// Returns ErrNotFound if no dataset exists with that ID.
	Get(id string) (*Dataset, error)

	// List returns all stored datasets ordered by creation time.
	List() ([]*Dataset, error)

	// Delete removes the dataset with the given ID along with its labels
	// and annotations. Returns ErrNotFound if no dataset exists with that
	// ID.
	Delete(id string) error
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Dataset operation errors.
var (
	ErrNotFound    = errors.New("dataset not found")
	ErrInvalidID   = errors.New("invalid dataset ID")
	ErrInvalidData = errors.New("invalid dataset data")
	ErrInvalidName = errors.New("invalid name")
)
