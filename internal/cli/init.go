package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const defaultConfigTemplate = `ignore:
  - "vendor/**"
  - "*.min.js"
rules:
  spacing: true
  fullwidth: true
  halfwidth: true
  dash_spacing: true
debug_logging: false
`

func newInitCommand() *cobra.Command {
	var (
		local bool
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default .autocorrectrc",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if !local {
				home, err := os.UserHomeDir()
				if err != nil {
					return err
				}

				dir = home
			}

			path := filepath.Join(dir, ".autocorrectrc")

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0o644); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)

			return nil
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "write to the current directory instead of $HOME")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}
