package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/rendermon/internal/render/config"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for monitor configuration files",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.JSONSchema)
		},
	}
}
