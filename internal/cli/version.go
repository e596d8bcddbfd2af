package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the genetable release version.
const Version = "0.1.0"

const modulePath = "github.com/mesh-intelligence/genetable"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the genetable version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "genetable v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
