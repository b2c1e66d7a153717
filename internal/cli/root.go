package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// NewRootCmd builds the rendermon command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "rendermon",
		Short:   "Per-component render performance sampler",
		Version: version,
		Long: `Rendermon samples render performance for individual UI components:
frame rate and dropped frames, script/render/paint phase timings, DOM size
and heap usage, reported through a pluggable sink.

The CLI drives a synthetic component so configurations can be tried out
and checks configuration files before they ship.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			// If no subcommand is provided, print help
			cmd.Help()
		},
	}

	root.PersistentFlags().String("log-level", "warn", "Diagnostic log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("no-color", false, "Disable colored output")

	root.AddCommand(newSimulateCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newSchemaCmd())

	return root
}

// Execute runs the root command with the process arguments.
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
