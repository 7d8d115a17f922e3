package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newUpdateCommand is a thin stub: self-update is explicitly out of scope
// (spec.md's Non-goals), so this only reports the current version and
// points at the project's releases. It performs no network access.
func newUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Report the current version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "autocorrect %s\nSelf-update isn't supported; see the project's releases page for the latest version.\n", Version)

			return nil
		},
	}
}
