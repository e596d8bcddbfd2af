// Dataset persistence: hydration between SQLite rows and *types.Dataset,
// and JSONL write-back after mutations.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mesh-intelligence/genetable/pkg/types"
)

// axes is the persistence order for the two entity axes.
var axes = [2]types.Axis{types.AxisRow, types.AxisColumn}

// Save creates or updates a dataset along with its axis labels and
// annotation columns. When DatasetID is empty a UUID v7 is generated.
// Returns the actual ID used.
func (s *Store) Save(ds *types.Dataset) (string, error) {
	if ds == nil {
		return "", types.ErrInvalidData
	}
	if ds.Name == "" {
		return "", types.ErrInvalidName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return "", types.ErrStoreDetached
	}

	now := time.Now().UTC()
	if ds.DatasetID == "" {
		ds.DatasetID = generateUUID()
		ds.CreatedAt = now
	}
	ds.UpdatedAt = now

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Replace the dataset wholesale: header row, labels, annotations.
	for _, table := range []string{"annotations", "axis_labels", "datasets"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE dataset_id = ?", ds.DatasetID); err != nil {
			return "", fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	_, err = tx.Exec(
		"INSERT INTO datasets (dataset_id, name, row_extent, column_extent, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		ds.DatasetID, ds.Name,
		ds.AxisExtent(types.AxisRow), ds.AxisExtent(types.AxisColumn),
		ds.CreatedAt.Format(time.RFC3339), ds.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("persisting dataset: %w", err)
	}

	for _, axis := range axes {
		if err := insertAxis(tx, ds, axis); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing dataset: %w", err)
	}

	if err := s.persistAllJSONL(); err != nil {
		return "", err
	}

	s.logger.Debug("dataset saved", slog.String("dataset_id", ds.DatasetID))
	return ds.DatasetID, nil
}

// insertAxis writes one axis's labels and annotation columns.
func insertAxis(tx *sql.Tx, ds *types.Dataset, axis types.Axis) error {
	if labels, ok := ds.AxisLabels(axis); ok {
		for pos, label := range labels {
			_, err := tx.Exec(
				"INSERT INTO axis_labels (dataset_id, axis, position, label) VALUES (?, ?, ?, ?)",
				ds.DatasetID, string(axis), pos, label,
			)
			if err != nil {
				return fmt.Errorf("persisting %s labels: %w", axis, err)
			}
		}
	}

	for ordinal, name := range ds.AnnotationColumns(axis) {
		values, _ := ds.AnnotationColumn(axis, name)
		for pos, value := range values {
			_, err := tx.Exec(
				"INSERT INTO annotations (dataset_id, axis, column_name, ordinal, position, value) VALUES (?, ?, ?, ?, ?, ?)",
				ds.DatasetID, string(axis), name, ordinal, pos, value,
			)
			if err != nil {
				return fmt.Errorf("persisting %s annotation %q: %w", axis, name, err)
			}
		}
	}
	return nil
}

// Get retrieves a dataset by ID, hydrating its labels and annotations.
// Returns ErrInvalidID for an empty id and ErrNotFound when absent.
func (s *Store) Get(id string) (*types.Dataset, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	return s.getDataset(id)
}

// getDataset hydrates one dataset. The caller must hold s.mu.
func (s *Store) getDataset(id string) (*types.Dataset, error) {
	row := s.db.QueryRow(
		"SELECT dataset_id, name, row_extent, column_extent, created_at, updated_at FROM datasets WHERE dataset_id = ?",
		id,
	)

	var (
		name                 string
		rowExtent, colExtent int
		createdAt, updatedAt string
	)
	err := row.Scan(&id, &name, &rowExtent, &colExtent, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting dataset %s: %w", id, err)
	}

	ds := types.NewDataset(name, rowExtent, colExtent)
	ds.DatasetID = id

	for _, axis := range axes {
		if err := s.hydrateAxis(ds, axis); err != nil {
			return nil, fmt.Errorf("hydrating %s axis of %s: %w", axis, id, err)
		}
	}

	// Timestamps last: axis installation touches UpdatedAt.
	ds.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	ds.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return ds, nil
}

// hydrateAxis loads one axis's labels and annotation columns from SQLite.
func (s *Store) hydrateAxis(ds *types.Dataset, axis types.Axis) error {
	rows, err := s.db.Query(
		"SELECT label FROM axis_labels WHERE dataset_id = ? AND axis = ? ORDER BY position",
		ds.DatasetID, string(axis),
	)
	if err != nil {
		return fmt.Errorf("querying labels: %w", err)
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return fmt.Errorf("scanning label: %w", err)
		}
		labels = append(labels, label)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating labels: %w", err)
	}
	if labels != nil {
		if err := ds.SetAxisLabels(axis, labels); err != nil {
			return err
		}
	}

	annRows, err := s.db.Query(
		"SELECT column_name, value FROM annotations WHERE dataset_id = ? AND axis = ? ORDER BY ordinal, position",
		ds.DatasetID, string(axis),
	)
	if err != nil {
		return fmt.Errorf("querying annotations: %w", err)
	}
	defer annRows.Close()

	var (
		current string
		values  []string
	)
	flush := func() error {
		if current == "" {
			return nil
		}
		return ds.SetAnnotationColumn(axis, current, values)
	}
	for annRows.Next() {
		var name, value string
		if err := annRows.Scan(&name, &value); err != nil {
			return fmt.Errorf("scanning annotation: %w", err)
		}
		if name != current {
			if err := flush(); err != nil {
				return err
			}
			current = name
			values = nil
		}
		values = append(values, value)
	}
	if err := annRows.Err(); err != nil {
		return fmt.Errorf("iterating annotations: %w", err)
	}
	return flush()
}

// List returns all datasets ordered by creation time.
func (s *Store) List() ([]*types.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := s.db.Query("SELECT dataset_id FROM datasets ORDER BY created_at, dataset_id")
	if err != nil {
		return nil, fmt.Errorf("listing datasets: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning dataset id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating datasets: %w", err)
	}

	datasets := make([]*types.Dataset, 0, len(ids))
	for _, id := range ids {
		ds, err := s.getDataset(id)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, ds)
	}
	return datasets, nil
}

// Delete removes a dataset and its labels and annotations.
// Returns ErrInvalidID for an empty id and ErrNotFound when absent.
func (s *Store) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM datasets WHERE dataset_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting dataset: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}

	for _, table := range []string{"axis_labels", "annotations"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE dataset_id = ?", id); err != nil {
			return fmt.Errorf("deleting %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}

	if err := s.persistAllJSONL(); err != nil {
		return err
	}

	s.logger.Debug("dataset deleted", slog.String("dataset_id", id))
	return nil
}

// persistAllJSONL writes every table's JSONL file, immediately or queued
// depending on the sync strategy. The caller must hold s.mu.
func (s *Store) persistAllJSONL() error {
	for _, mapping := range jsonlTableMapping {
		mapping := mapping
		err := s.persistOrQueue(mapping.table, func() error {
			return persistTableJSONL(s.db, s.config.DataDir, mapping.table, mapping.file)
		})
		if err != nil {
			return fmt.Errorf("persisting %s: %w", mapping.file, err)
		}
	}
	return nil
}
