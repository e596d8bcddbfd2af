package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/genetable/pkg/labels"
	"github.com/mesh-intelligence/genetable/pkg/types"
)

func newResolveCmd() *cobra.Command {
	var (
		axisFlag string
		byColumn string
		partial  bool
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "resolve <dataset-id> <identifier>...",
		Short: "Resolve identifiers to positional indices",
		Long: `Resolve maps the given identifiers to 0-based positions on a dataset
axis. By default identifiers are compared exactly against the live labels
and each takes its first match; --by searches an annotation column
instead, --partial switches to substring matching, and --all collects
every match per identifier.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args[0], args[1:], axisFlag, byColumn, partial, all)
		},
	}

	cmd.Flags().StringVar(&axisFlag, "axis", "row", "axis to resolve against (row or column)")
	cmd.Flags().StringVar(&byColumn, "by", "", "annotation column to search instead of the live labels")
	cmd.Flags().BoolVar(&partial, "partial", false, "substring matching instead of exact equality")
	cmd.Flags().BoolVar(&all, "all", false, "collect every match per identifier")
	return cmd
}

// resolveOutput is the JSON form of a resolution result.
type resolveOutput struct {
	Indices          []int    `json:"indices"`
	NotFound         []string `json:"not_found,omitempty"`
	DuplicateTargets []string `json:"duplicate_targets,omitempty"`
}

func runResolve(cmd *cobra.Command, id string, query []string, axisFlag, byColumn string, partial, all bool) error {
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

	res, err := labels.Resolve(ds, query, axis, labels.ResolveOptions{
		ByColumn: byColumn,
		Partial:  partial,
		All:      all,
	})
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}

	// Diagnostics are advisory: print them to stderr, return the result.
	for _, d := range res.Diagnostics {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s", d.Severity, d.Message)
		if len(d.Items) > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), ": %v", d.Items)
		}
		fmt.Fprintln(cmd.ErrOrStderr())
	}

	if flags.jsonMode {
		return printJSON(cmd, resolveOutput{
			Indices:          res.Indices,
			NotFound:         res.NotFound,
			DuplicateTargets: res.DuplicateTargets,
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "indices: %v\n", res.Indices)
	return nil
}
