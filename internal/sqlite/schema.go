package sqlite

// Schema DDL for all tables. One row per dataset, one row per axis label
// position, one row per annotation cell; the annotation ordinal preserves
// column creation order across reloads.
const schemaSQL = `
CREATE TABLE datasets (
    dataset_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    row_extent INTEGER NOT NULL,
    column_extent INTEGER NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE TABLE axis_labels (
    dataset_id TEXT NOT NULL,
    axis TEXT NOT NULL,
    position INTEGER NOT NULL,
    label TEXT NOT NULL,
    PRIMARY KEY (dataset_id, axis, position),
    FOREIGN KEY (dataset_id) REFERENCES datasets(dataset_id)
);

CREATE TABLE annotations (
    dataset_id TEXT NOT NULL,
    axis TEXT NOT NULL,
    column_name TEXT NOT NULL,
    ordinal INTEGER NOT NULL,
    position INTEGER NOT NULL,
    value TEXT NOT NULL,
    PRIMARY KEY (dataset_id, axis, column_name, position),
    FOREIGN KEY (dataset_id) REFERENCES datasets(dataset_id)
);
`
