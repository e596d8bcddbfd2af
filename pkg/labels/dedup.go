package labels

import (
	"fmt"

	"github.com/mesh-intelligence/genetable/pkg/types"
)

// Annotation column names written by the annotation form of
// DeduplicateInPlace.
const (
	RowUniqueColumn    = "rownames.uniq"
	ColumnUniqueColumn = "colnames.uniq"
)

// Deduplicate returns a collision-free copy of labels. Every occurrence of
// a value that appears more than once is rewritten as "value-k", where k is
// the 1-based rank of that occurrence in original order; the first
// occurrence is suffixed too, it is not left bare. Values that occur once
// pass through unchanged.
//
// A value that coincidentally equals an already-suffixed name is not
// re-checked: Deduplicate(["a", "a", "a-1"]) yields ["a-1", "a-2", "a-1"].
func Deduplicate(labels []string) []string {
	counts := make(map[string]int, len(labels))
	for _, l := range labels {
		counts[l]++
	}

	out := make([]string, len(labels))
	rank := make(map[string]int)
	for i, l := range labels {
		if counts[l] > 1 {
			rank[l]++
			out[i] = fmt.Sprintf("%s-%d", l, rank[l])
		} else {
			out[i] = l
		}
	}
	return out
}

// DeduplicateValues coerces an untyped value sequence to labels and
// deduplicates it. Returns ErrTypeMismatch if any element is not a string.
// Untyped sequences arise from decoded JSON input.
func DeduplicateValues(values []any) ([]string, error) {
	labels, err := CoerceLabels(values)
	if err != nil {
		return nil, err
	}
	return Deduplicate(labels), nil
}

// CoerceLabels converts an untyped value sequence to a label sequence.
// Returns ErrTypeMismatch if any element is not a string.
func CoerceLabels(values []any) ([]string, error) {
	labels := make([]string, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("element %d is %T, not string: %w", i, v, types.ErrTypeMismatch)
		}
		labels[i] = s
	}
	return labels, nil
}

// DeduplicateInPlace deduplicates the live identifier sequence of the given
// axis. When asAnnotation is true and the entity carries annotation tables,
// the deduplicated sequence is written to a new annotation column
// (rownames.uniq for the row axis, colnames.uniq for the column axis) and
// the live identifiers are left untouched. Otherwise the live identifier
// sequence is replaced.
//
// Returns ErrMissingIdentifiers when the axis has no identifier sequence.
func DeduplicateInPlace(e types.Entity, axis types.Axis, asAnnotation bool) error {
	if err := axis.Validate(); err != nil {
		return err
	}
	current, ok := e.AxisLabels(axis)
	if !ok {
		return types.ErrMissingIdentifiers
	}
	unique := Deduplicate(current)

	if asAnnotation {
		if ann, isAnnotated := e.(types.Annotated); isAnnotated {
			name := RowUniqueColumn
			if axis == types.AxisColumn {
				name = ColumnUniqueColumn
			}
			return ann.SetAnnotationColumn(axis, name, unique)
		}
	}
	return e.SetAxisLabels(axis, unique)
}
