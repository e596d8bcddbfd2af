package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/genetable/pkg/labels"
	"github.com/mesh-intelligence/genetable/pkg/types"
)

func newSetLabelsCmd() *cobra.Command {
	var (
		axisFlag string
		column   string
		fromFile string
		dedup    bool
	)

	cmd := &cobra.Command{
		Use:   "set-labels <dataset-id>",
		Short: "Install a new identifier sequence on an axis",
		Long: `Set-labels replaces the live identifier sequence of the chosen axis.
The new sequence comes from --column (an annotation column of the same
axis) or from --from (a JSON file holding an array of strings). The
sequence length must equal the axis extent. Deduplication of the
installed sequence is on by default; disable it with --dedup=false.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (column == "") == (fromFile == "") {
				return fmt.Errorf("exactly one of --column and --from is required")
			}
			return runSetLabels(cmd, args[0], axisFlag, column, fromFile, dedup)
		},
	}

	cmd.Flags().StringVar(&axisFlag, "axis", "row", "axis to relabel (row or column)")
	cmd.Flags().StringVar(&column, "column", "", "annotation column to take the new labels from")
	cmd.Flags().StringVar(&fromFile, "from", "", "JSON file with an array of label strings")
	cmd.Flags().BoolVar(&dedup, "dedup", true, "deduplicate the installed sequence")
	return cmd
}

func runSetLabels(cmd *cobra.Command, id, axisFlag, column, fromFile string, dedup bool) error {
	axis, err := axisFromFlag(axisFlag)
	if err != nil {
		return err
	}

	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	ds, err := store.Get(id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("dataset %q not found", id)
		}
		return fmt.Errorf("get dataset: %w", err)
	}

	if column != "" {
		err = labels.SetLabelsFromColumn(ds, axis, column, dedup)
	} else {
		var newLabels []string
		newLabels, err = readLabelsFile(fromFile)
		if err == nil {
			err = labels.SetLabels(ds, axis, newLabels, dedup)
		}
	}
	if err != nil {
		switch {
		case errors.Is(err, types.ErrLengthMismatch):
			return fmt.Errorf("label count does not match the %s extent of dataset %q", axis, id)
		case errors.Is(err, types.ErrUnknownAnnotationColumn):
			return fmt.Errorf("dataset %q has no %s annotation column %q", id, axis, column)
		default:
			return fmt.Errorf("set labels: %w", err)
		}
	}

	if _, err := store.Save(ds); err != nil {
		return fmt.Errorf("save dataset: %w", err)
	}

	if flags.jsonMode {
		return printJSON(cmd, map[string]string{"dataset_id": ds.DatasetID, "axis": string(axis)})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Installed %s labels on dataset %s\n", axis, ds.DatasetID)
	return nil
}

// readLabelsFile decodes a JSON array of strings. Untyped decoding keeps
// non-string elements visible as a type mismatch instead of a decode
// failure.
func readLabelsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read labels file: %w", err)
	}
	var values []any
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse labels file: %w", err)
	}
	return labels.CoerceLabels(values)
}
