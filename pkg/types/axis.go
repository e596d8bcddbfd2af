package types

import "errors"

// Axis identifies one of the two independent dimensions of an entity.
// Each axis carries its own label sequence and annotation table.
type Axis string

// Recognized axis values.
const (
	AxisRow    Axis = "row"
	AxisColumn Axis = "column"
)

// ErrInvalidAxis is returned when an axis value is not recognized.
var ErrInvalidAxis = errors.New("invalid axis")

// validAxes is the set of recognized axis values.
var validAxes = map[Axis]bool{
	AxisRow:    true,
	AxisColumn: true,
}

// Validate checks that the axis is one of the recognized values.
// Returns ErrInvalidAxis otherwise.
func (a Axis) Validate() error {
	if !validAxes[a] {
		return ErrInvalidAxis
	}
	return nil
}

// ParseAxis converts a user-supplied axis name to an Axis. It accepts the
// canonical names plus the short forms "rows", "col", and "cols".
// Returns ErrInvalidAxis for anything else.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "row", "rows":
		return AxisRow, nil
	case "column", "col", "cols":
		return AxisColumn, nil
	default:
		return "", ErrInvalidAxis
	}
}
