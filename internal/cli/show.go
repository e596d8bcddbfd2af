package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/genetable/pkg/types"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <dataset-id>",
		Short: "Show a dataset's labels and annotation columns",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

// axisView is the per-axis section of show output.
type axisView struct {
	Extent      int                 `json:"extent"`
	Labels      []string            `json:"labels,omitempty"`
	Annotations map[string][]string `json:"annotations,omitempty"`
}

// datasetView is the full show output.
type datasetView struct {
	DatasetID string   `json:"dataset_id"`
	Name      string   `json:"name"`
	Rows      axisView `json:"rows"`
	Columns   axisView `json:"columns"`
}

func runShow(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	ds, err := store.Get(args[0])
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("dataset %q not found", args[0])
		}
		return fmt.Errorf("get dataset: %w", err)
	}

	view := datasetView{
		DatasetID: ds.DatasetID,
		Name:      ds.Name,
		Rows:      axisViewOf(ds, types.AxisRow),
		Columns:   axisViewOf(ds, types.AxisColumn),
	}
	return printJSON(cmd, view)
}

// axisViewOf collects one axis's labels and annotation columns.
func axisViewOf(ds *types.Dataset, axis types.Axis) axisView {
	view := axisView{Extent: ds.AxisExtent(axis)}
	if labels, ok := ds.AxisLabels(axis); ok {
		view.Labels = labels
	}
	names := ds.AnnotationColumns(axis)
	if len(names) > 0 {
		view.Annotations = make(map[string][]string, len(names))
		for _, name := range names {
			col, _ := ds.AnnotationColumn(axis, name)
			view.Annotations[name] = col
		}
	}
	return view
}
