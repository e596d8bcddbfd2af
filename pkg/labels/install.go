package labels

import (
	"github.com/mesh-intelligence/genetable/pkg/types"
)

// SetLabels installs labels as the live identifier sequence of the given
// axis. The sequence length must equal the axis extent; otherwise the call
// fails with ErrLengthMismatch and the entity is unchanged. When dedup is
// true the freshly installed sequence is immediately deduplicated in place
// (live-sequence form, no annotation column is written).
func SetLabels(e types.Entity, axis types.Axis, newLabels []string, dedup bool) error {
	if err := axis.Validate(); err != nil {
		return err
	}
	if len(newLabels) != e.AxisExtent(axis) {
		return types.ErrLengthMismatch
	}
	if err := e.SetAxisLabels(axis, newLabels); err != nil {
		return err
	}
	if dedup {
		return DeduplicateInPlace(e, axis, false)
	}
	return nil
}

// SetLabelsFromColumn installs the values of an annotation column as the
// live identifier sequence of the given axis. Only annotation-table-bearing
// entities support this; a bare entity fails with ErrTypeMismatch because
// it can only take an explicit label sequence. A missing column fails with
// ErrUnknownAnnotationColumn.
func SetLabelsFromColumn(e types.Entity, axis types.Axis, column string, dedup bool) error {
	if err := axis.Validate(); err != nil {
		return err
	}
	ann, ok := e.(types.Annotated)
	if !ok {
		return types.ErrTypeMismatch
	}
	col, ok := ann.AnnotationColumn(axis, column)
	if !ok {
		return types.ErrUnknownAnnotationColumn
	}
	return SetLabels(e, axis, col, dedup)
}
