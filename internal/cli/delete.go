package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/genetable/pkg/types"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <dataset-id>",
		Short: "Delete a dataset from the store",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}
}

func runDelete(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	if err := store.Delete(args[0]); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("dataset %q not found", args[0])
		}
		return fmt.Errorf("delete dataset: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted dataset %s\n", args[0])
	return nil
}
