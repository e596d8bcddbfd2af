package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/genetable/pkg/types"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored datasets",
		RunE:  runList,
	}
}

// datasetSummary is the per-dataset line item for list output.
type datasetSummary struct {
	DatasetID    string `json:"dataset_id"`
	Name         string `json:"name"`
	RowExtent    int    `json:"row_extent"`
	ColumnExtent int    `json:"column_extent"`
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	datasets, err := store.List()
	if err != nil {
		return fmt.Errorf("list datasets: %w", err)
	}

	summaries := make([]datasetSummary, 0, len(datasets))
	for _, ds := range datasets {
		summaries = append(summaries, datasetSummary{
			DatasetID:    ds.DatasetID,
			Name:         ds.Name,
			RowExtent:    ds.AxisExtent(types.AxisRow),
			ColumnExtent: ds.AxisExtent(types.AxisColumn),
		})
	}

	if flags.jsonMode {
		return printJSON(cmd, summaries)
	}
	for _, s := range summaries {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  (%d x %d)\n", s.DatasetID, s.Name, s.RowExtent, s.ColumnExtent)
	}
	return nil
}
