package types

// Compile-time interface check: Matrix must implement Entity but is
// deliberately not Annotated.
var _ Entity = (*Matrix)(nil)

// Matrix is a bare entity: row and column identifier sequences with no
// annotation tables. Its axis extents are fixed by the sequences given at
// construction; labels can only be replaced with sequences of the same
// length.
type Matrix struct {
	rowLabels []string
	colLabels []string
}

// NewMatrix creates a bare matrix entity from its row and column
// identifier sequences.
func NewMatrix(rowLabels, colLabels []string) *Matrix {
	return &Matrix{
		rowLabels: copyStrings(rowLabels),
		colLabels: copyStrings(colLabels),
	}
}

// AxisExtent returns the fixed length of the axis.
func (m *Matrix) AxisExtent(axis Axis) int {
	switch axis {
	case AxisRow:
		return len(m.rowLabels)
	case AxisColumn:
		return len(m.colLabels)
	default:
		return 0
	}
}

// AxisLabels returns a copy of the identifier sequence for the axis.
// A matrix always has identifiers; the second return is false only for an
// unrecognized axis.
func (m *Matrix) AxisLabels(axis Axis) ([]string, bool) {
	switch axis {
	case AxisRow:
		return copyStrings(m.rowLabels), true
	case AxisColumn:
		return copyStrings(m.colLabels), true
	default:
		return nil, false
	}
}

// SetAxisLabels replaces the identifier sequence for the axis. The new
// sequence length must equal the current axis extent.
func (m *Matrix) SetAxisLabels(axis Axis, labels []string) error {
	switch axis {
	case AxisRow:
		if len(labels) != len(m.rowLabels) {
			return ErrLengthMismatch
		}
		m.rowLabels = copyStrings(labels)
		return nil
	case AxisColumn:
		if len(labels) != len(m.colLabels) {
			return ErrLengthMismatch
		}
		m.colLabels = copyStrings(labels)
		return nil
	default:
		return ErrInvalidAxis
	}
}
