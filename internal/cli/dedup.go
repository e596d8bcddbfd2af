package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/genetable/pkg/labels"
	"github.com/mesh-intelligence/genetable/pkg/types"
)

func newDedupCmd() *cobra.Command {
	var (
		axisFlag string
		annotate bool
	)

	cmd := &cobra.Command{
		Use:   "dedup <dataset-id>",
		Short: "Deduplicate the identifier labels of an axis",
		Long: `Dedup rewrites colliding labels on the chosen axis as "value-k",
numbering occurrences in original order. By default the live identifier
sequence is replaced; with --annotate the deduplicated sequence is
written to a new annotation column instead and the live identifiers are
left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDedup(cmd, args[0], axisFlag, annotate)
		},
	}

	cmd.Flags().StringVar(&axisFlag, "axis", "row", "axis to deduplicate (row or column)")
	cmd.Flags().BoolVar(&annotate, "annotate", false, "write result to an annotation column instead of the live labels")
	return cmd
}

func runDedup(cmd *cobra.Command, id, axisFlag string, annotate bool) error {
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

	if err := labels.DeduplicateInPlace(ds, axis, annotate); err != nil {
		return fmt.Errorf("deduplicate: %w", err)
	}
	if _, err := store.Save(ds); err != nil {
		return fmt.Errorf("save dataset: %w", err)
	}

	if flags.jsonMode {
		return printJSON(cmd, map[string]string{"dataset_id": ds.DatasetID, "axis": string(axis)})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deduplicated %s labels of dataset %s\n", axis, ds.DatasetID)
	return nil
}
