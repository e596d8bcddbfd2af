package labels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/genetable/pkg/types"
)

func TestDeduplicate(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "already unique passes through",
			input: []string{"g1", "g2", "g3"},
			want:  []string{"g1", "g2", "g3"},
		},
		{
			name:  "first occurrence is suffixed too",
			input: []string{"a", "a", "b"},
			want:  []string{"a-1", "a-2", "b"},
		},
		{
			name:  "interleaved duplicates keep occurrence order",
			input: []string{"a", "b", "a", "b", "c"},
			want:  []string{"a-1", "b-1", "a-2", "b-2", "c"},
		},
		{
			name:  "empty input",
			input: []string{},
			want:  []string{},
		},
		{
			name:  "suffixed name collision is not re-checked",
			input: []string{"a", "a", "a-1"},
			want:  []string{"a-1", "a-2", "a-1"},
		},
		{
			name:  "triple duplicate",
			input: []string{"x", "x", "x"},
			want:  []string{"x-1", "x-2", "x-3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := append([]string(nil), tt.input...)
			got := Deduplicate(input)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, len(tt.input), "length must be preserved")
			assert.Equal(t, tt.input, input, "argument must not be mutated")
		})
	}
}

func TestDeduplicateValues(t *testing.T) {
	got, err := DeduplicateValues([]any{"a", "a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a-1", "a-2", "b"}, got)

	_, err = DeduplicateValues([]any{"a", 42, "b"})
	assert.ErrorIs(t, err, types.ErrTypeMismatch)
}

func TestDeduplicateInPlaceLive(t *testing.T) {
	m := types.NewMatrix([]string{"g1", "g1", "g2"}, []string{"c1"})

	err := DeduplicateInPlace(m, types.AxisRow, false)
	require.NoError(t, err)

	rows, _ := m.AxisLabels(types.AxisRow)
	assert.Equal(t, []string{"g1-1", "g1-2", "g2"}, rows)
}

func TestDeduplicateInPlaceAnnotation(t *testing.T) {
	d := types.NewDataset("pbmc", 3, 2)
	require.NoError(t, d.SetAxisLabels(types.AxisRow, []string{"g1", "g1", "g2"}))

	err := DeduplicateInPlace(d, types.AxisRow, true)
	require.NoError(t, err)

	// Live identifiers are untouched; the unique names land in a column.
	rows, _ := d.AxisLabels(types.AxisRow)
	assert.Equal(t, []string{"g1", "g1", "g2"}, rows)

	col, ok := d.AnnotationColumn(types.AxisRow, RowUniqueColumn)
	require.True(t, ok)
	assert.Equal(t, []string{"g1-1", "g1-2", "g2"}, col)
}

func TestDeduplicateInPlaceAnnotationColumnAxis(t *testing.T) {
	d := types.NewDataset("pbmc", 1, 2)
	require.NoError(t, d.SetAxisLabels(types.AxisColumn, []string{"c1", "c1"}))

	err := DeduplicateInPlace(d, types.AxisColumn, true)
	require.NoError(t, err)

	col, ok := d.AnnotationColumn(types.AxisColumn, ColumnUniqueColumn)
	require.True(t, ok)
	assert.Equal(t, []string{"c1-1", "c1-2"}, col)
}

func TestDeduplicateInPlaceAnnotationOnBareEntity(t *testing.T) {
	// A bare matrix has no annotation table, so the annotation form falls
	// back to replacing the live sequence.
	m := types.NewMatrix([]string{"g1", "g1"}, []string{"c1"})

	err := DeduplicateInPlace(m, types.AxisRow, true)
	require.NoError(t, err)

	rows, _ := m.AxisLabels(types.AxisRow)
	assert.Equal(t, []string{"g1-1", "g1-2"}, rows)
}

func TestDeduplicateInPlaceErrors(t *testing.T) {
	d := types.NewDataset("pbmc", 3, 2)

	err := DeduplicateInPlace(d, types.AxisRow, false)
	assert.ErrorIs(t, err, types.ErrMissingIdentifiers)

	err = DeduplicateInPlace(d, types.Axis("bogus"), false)
	assert.ErrorIs(t, err, types.ErrInvalidAxis)
}
