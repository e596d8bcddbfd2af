package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/genetable/pkg/labels"
	"github.com/mesh-intelligence/genetable/pkg/types"
)

// datasetFile is the JSON description accepted by "genetable import".
// Label and annotation values are decoded untyped so that non-string
// elements are rejected explicitly instead of being silently stringified.
type datasetFile struct {
	Name              string           `json:"name"`
	RowExtent         int              `json:"row_extent"`
	ColumnExtent      int              `json:"column_extent"`
	RowLabels         []any            `json:"row_labels"`
	ColumnLabels      []any            `json:"column_labels"`
	RowAnnotations    map[string][]any `json:"row_annotations"`
	ColumnAnnotations map[string][]any `json:"column_annotations"`
}

func newImportCmd() *cobra.Command {
	var dedup bool

	cmd := &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import a dataset description into the store",
		Long: `Import reads a JSON dataset description and saves it as a new dataset.

The file holds axis extents, optional identifier labels per axis, and
optional annotation columns per axis:

  {
    "name": "pbmc3k",
    "row_extent": 3,
    "column_extent": 2,
    "row_labels": ["ENSG1", "ENSG2", "ENSG3"],
    "row_annotations": {"symbol": ["CD4", "CD8A", "MS4A1"]}
  }`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], dedup)
		},
	}
	cmd.Flags().BoolVar(&dedup, "dedup", false, "deduplicate identifier labels on import")
	return cmd
}

func runImport(cmd *cobra.Command, path string, dedup bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read dataset file: %w", err)
	}

	var df datasetFile
	if err := json.Unmarshal(data, &df); err != nil {
		return fmt.Errorf("parse dataset file: %w", err)
	}
	if df.Name == "" {
		return fmt.Errorf("dataset file must set a name")
	}

	ds, err := buildDataset(&df, dedup)
	if err != nil {
		return err
	}

	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	id, err := store.Save(ds)
	if err != nil {
		return fmt.Errorf("save dataset: %w", err)
	}

	if flags.jsonMode {
		return printJSON(cmd, map[string]string{"dataset_id": id})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported dataset %s (%s)\n", ds.Name, id)
	return nil
}

// buildDataset converts a parsed dataset file into a Dataset, coercing the
// untyped label values and optionally deduplicating identifiers.
func buildDataset(df *datasetFile, dedup bool) (*types.Dataset, error) {
	rowExtent := df.RowExtent
	if rowExtent == 0 {
		rowExtent = len(df.RowLabels)
	}
	colExtent := df.ColumnExtent
	if colExtent == 0 {
		colExtent = len(df.ColumnLabels)
	}

	ds := types.NewDataset(df.Name, rowExtent, colExtent)

	type axisInput struct {
		axis        types.Axis
		labels      []any
		annotations map[string][]any
	}
	for _, in := range []axisInput{
		{types.AxisRow, df.RowLabels, df.RowAnnotations},
		{types.AxisColumn, df.ColumnLabels, df.ColumnAnnotations},
	} {
		if in.labels != nil {
			seq, err := labels.CoerceLabels(in.labels)
			if err != nil {
				return nil, fmt.Errorf("%s labels: %w", in.axis, err)
			}
			if dedup {
				seq = labels.Deduplicate(seq)
			}
			if err := ds.SetAxisLabels(in.axis, seq); err != nil {
				return nil, fmt.Errorf("%s labels: %w", in.axis, err)
			}
		}
		// Sort names so column order is stable across imports.
		names := make([]string, 0, len(in.annotations))
		for name := range in.annotations {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			col, err := labels.CoerceLabels(in.annotations[name])
			if err != nil {
				return nil, fmt.Errorf("%s annotation %q: %w", in.axis, name, err)
			}
			if err := ds.SetAnnotationColumn(in.axis, name, col); err != nil {
				return nil, fmt.Errorf("%s annotation %q: %w", in.axis, name, err)
			}
		}
	}
	return ds, nil
}
