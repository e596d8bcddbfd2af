package types

import "time"

// Compile-time interface check: Dataset must implement Annotated.
var _ Annotated = (*Dataset)(nil)

// Dataset is a table-like entity: a matrix-shaped object whose row and
// column axes each carry an optional identifier sequence and an annotation
// table. The identifier sequence may be absent until installed; annotation
// columns are always full axis length.
type Dataset struct {
	DatasetID string    // UUID v7, generated on first save.
	Name      string    // Human-readable name (required, non-empty).
	CreatedAt time.Time // Timestamp of creation.
	UpdatedAt time.Time // Timestamp of last modification.

	rows axisTable
	cols axisTable
}

// axisTable holds the per-axis label state of a dataset.
type axisTable struct {
	extent  int
	labels  []string            // nil when no identifiers are installed
	columns map[string][]string // annotation columns keyed by name
	order   []string            // column names in creation order
}

// NewDataset creates a dataset with the given axis extents and no
// identifier sequences or annotation columns.
func NewDataset(name string, rowExtent, colExtent int) *Dataset {
	return &Dataset{
		Name: name,
		rows: axisTable{extent: rowExtent},
		cols: axisTable{extent: colExtent},
	}
}

// axisTableFor returns the axis table for the given axis, or nil for an
// unrecognized axis.
func (d *Dataset) axisTableFor(axis Axis) *axisTable {
	switch axis {
	case AxisRow:
		return &d.rows
	case AxisColumn:
		return &d.cols
	default:
		return nil
	}
}

// AxisExtent returns the fixed length of the axis.
func (d *Dataset) AxisExtent(axis Axis) int {
	t := d.axisTableFor(axis)
	if t == nil {
		return 0
	}
	return t.extent
}

// AxisLabels returns a copy of the live identifier sequence for the axis,
// and whether one is installed.
func (d *Dataset) AxisLabels(axis Axis) ([]string, bool) {
	t := d.axisTableFor(axis)
	if t == nil || t.labels == nil {
		return nil, false
	}
	return copyStrings(t.labels), true
}

// SetAxisLabels installs the identifier sequence for the axis. The sequence
// length must equal the axis extent.
func (d *Dataset) SetAxisLabels(axis Axis, labels []string) error {
	t := d.axisTableFor(axis)
	if t == nil {
		return ErrInvalidAxis
	}
	if len(labels) != t.extent {
		return ErrLengthMismatch
	}
	t.labels = copyStrings(labels)
	d.UpdatedAt = time.Now()
	return nil
}

// AnnotationColumn returns a copy of the named annotation column for the
// axis, and whether it exists.
func (d *Dataset) AnnotationColumn(axis Axis, name string) ([]string, bool) {
	t := d.axisTableFor(axis)
	if t == nil {
		return nil, false
	}
	col, ok := t.columns[name]
	if !ok {
		return nil, false
	}
	return copyStrings(col), true
}

// SetAnnotationColumn creates or replaces the named annotation column.
// The values length must equal the axis extent.
func (d *Dataset) SetAnnotationColumn(axis Axis, name string, values []string) error {
	t := d.axisTableFor(axis)
	if t == nil {
		return ErrInvalidAxis
	}
	if len(values) != t.extent {
		return ErrLengthMismatch
	}
	if t.columns == nil {
		t.columns = make(map[string][]string)
	}
	if _, exists := t.columns[name]; !exists {
		t.order = append(t.order, name)
	}
	t.columns[name] = copyStrings(values)
	d.UpdatedAt = time.Now()
	return nil
}

// AnnotationColumns returns the annotation column names for the axis in
// creation order.
func (d *Dataset) AnnotationColumns(axis Axis) []string {
	t := d.axisTableFor(axis)
	if t == nil {
		return nil
	}
	return copyStrings(t.order)
}

// copyStrings returns a copy of the given slice, or nil for a nil input.
func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	cp := make([]string, len(s))
	copy(cp, s)
	return cp
}
