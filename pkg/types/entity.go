package types

import "errors"

// Entity is the narrow label contract shared by all tabular entities.
// It exposes read/write access to each axis's identifier sequence.
// Implementations are not safe for concurrent mutation; callers must
// serialize writers externally.
type Entity interface {
	// AxisLabels returns the live identifier sequence for the axis, and
	// whether one is set. Axis values outside the recognized set report
	// absent.
	AxisLabels(axis Axis) ([]string, bool)

	// SetAxisLabels replaces the live identifier sequence for the axis.
	// Returns ErrInvalidAxis for an unrecognized axis and ErrLengthMismatch
	// when the sequence length differs from the axis extent.
	SetAxisLabels(axis Axis, labels []string) error

	// AxisExtent returns the fixed length of the axis. Unrecognized axes
	// report zero.
	AxisExtent(axis Axis) int
}

// Annotated is implemented by entities that carry a per-axis annotation
// table: named metadata columns aligned with the axis, distinct from the
// identifier sequence itself. A type assertion to Annotated is the
// capability check separating table-like entities from bare matrices.
type Annotated interface {
	Entity

	// AnnotationColumn returns the named annotation column for the axis,
	// and whether it exists.
	AnnotationColumn(axis Axis, name string) ([]string, bool)

	// SetAnnotationColumn creates or replaces the named annotation column.
	// Returns ErrInvalidAxis for an unrecognized axis and ErrLengthMismatch
	// when the values length differs from the axis extent.
	SetAnnotationColumn(axis Axis, name string, values []string) error

	// AnnotationColumns returns the annotation column names for the axis
	// in creation order.
	AnnotationColumns(axis Axis) []string
}

// Label operation errors.
var (
	ErrUnknownAnnotationColumn = errors.New("annotation column not found")
	ErrMissingIdentifiers      = errors.New("axis has no identifier labels")
	ErrLengthMismatch          = errors.New("label sequence length does not match axis extent")
	ErrTypeMismatch            = errors.New("type mismatch")
	ErrNotTableLike            = errors.New("entity does not carry annotation tables")
)
