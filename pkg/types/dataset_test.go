package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetAxisLabels(t *testing.T) {
	d := NewDataset("pbmc", 3, 2)

	_, ok := d.AxisLabels(AxisRow)
	assert.False(t, ok, "labels should be absent before installation")

	err := d.SetAxisLabels(AxisRow, []string{"g1", "g2", "g3"})
	require.NoError(t, err)

	labels, ok := d.AxisLabels(AxisRow)
	require.True(t, ok)
	assert.Equal(t, []string{"g1", "g2", "g3"}, labels)

	// Column axis is independent of the row axis.
	_, ok = d.AxisLabels(AxisColumn)
	assert.False(t, ok)
}

func TestDatasetSetAxisLabelsErrors(t *testing.T) {
	d := NewDataset("pbmc", 3, 2)

	err := d.SetAxisLabels(AxisRow, []string{"g1"})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	err = d.SetAxisLabels(Axis("diagonal"), []string{"g1", "g2", "g3"})
	assert.ErrorIs(t, err, ErrInvalidAxis)
}

func TestDatasetAxisLabelsCopied(t *testing.T) {
	d := NewDataset("pbmc", 2, 2)
	src := []string{"g1", "g2"}
	require.NoError(t, d.SetAxisLabels(AxisRow, src))

	src[0] = "mutated"
	labels, _ := d.AxisLabels(AxisRow)
	assert.Equal(t, "g1", labels[0], "stored labels must not alias caller slice")

	labels[1] = "mutated"
	again, _ := d.AxisLabels(AxisRow)
	assert.Equal(t, "g2", again[1], "returned labels must not alias stored slice")
}

func TestDatasetAnnotationColumns(t *testing.T) {
	d := NewDataset("pbmc", 3, 2)

	_, ok := d.AnnotationColumn(AxisRow, "symbol")
	assert.False(t, ok)

	err := d.SetAnnotationColumn(AxisRow, "symbol", []string{"CD4", "CD8A", "MS4A1"})
	require.NoError(t, err)
	err = d.SetAnnotationColumn(AxisRow, "biotype", []string{"coding", "coding", "coding"})
	require.NoError(t, err)

	col, ok := d.AnnotationColumn(AxisRow, "symbol")
	require.True(t, ok)
	assert.Equal(t, []string{"CD4", "CD8A", "MS4A1"}, col)

	assert.Equal(t, []string{"symbol", "biotype"}, d.AnnotationColumns(AxisRow),
		"column names keep creation order")

	// Replacing an existing column does not duplicate its name.
	err = d.SetAnnotationColumn(AxisRow, "symbol", []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"symbol", "biotype"}, d.AnnotationColumns(AxisRow))
}

func TestDatasetSetAnnotationColumnErrors(t *testing.T) {
	d := NewDataset("pbmc", 3, 2)

	err := d.SetAnnotationColumn(AxisRow, "symbol", []string{"CD4"})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	err = d.SetAnnotationColumn(Axis("bogus"), "symbol", []string{"a", "b", "c"})
	assert.ErrorIs(t, err, ErrInvalidAxis)
}

func TestDatasetAxisExtent(t *testing.T) {
	d := NewDataset("pbmc", 5, 7)
	assert.Equal(t, 5, d.AxisExtent(AxisRow))
	assert.Equal(t, 7, d.AxisExtent(AxisColumn))
	assert.Equal(t, 0, d.AxisExtent(Axis("bogus")))
}
