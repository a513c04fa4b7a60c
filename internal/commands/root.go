package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerbook-dev/ledgerbook/internal/buildinfo"
)

// NewRootCommand creates the CLI. The root command itself runs the whole
// pipeline; there are no subcommands.
func NewRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:     "ledgerbook <input_path.xlsx> [<output_path>]",
		Short:   "Consolidate multi-sheet bank ledgers into accounting vouchers",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		// Messages and exit codes are part of the external contract, so
		// errors are printed by main rather than by cobra.
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "config.json", "column mapping and policy file")

	return cmd
}
