package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/rendermon/internal/render/config"
)

// errInvalidConfig is returned when validate finds problems. The details are
// already printed, so the message is short.
var errInvalidConfig = errors.New("configuration is invalid")

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a monitor configuration file",
		Long: `Check a YAML or JSON monitor configuration against the embedded JSON
Schema and the stricter semantic rules.

The monitor itself never rejects a configuration: malformed values fall back
to defaults. Validate surfaces those mistakes before they go unnoticed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			return runValidate(cmd.OutOrStdout(), args[0], s.NoColor)
		},
	}
}

// runValidate checks path and prints one line per check.
func runValidate(out io.Writer, path string, noColor bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	failed := false

	if err := config.CheckSchema(data, path); err != nil {
		fmt.Fprintf(out, "%s schema: %v\n", errorIcon(noColor), err)
		failed = true
	} else {
		fmt.Fprintf(out, "%s schema\n", successIcon(noColor))
	}

	cfg, err := config.ParseConfig(data, path)
	if err != nil {
		fmt.Fprintf(out, "%s parse: %v\n", errorIcon(noColor), err)
		return errInvalidConfig
	}

	var verrs *config.ValidationErrors
	switch err := cfg.Validate(); {
	case errors.As(err, &verrs):
		for _, e := range verrs.Errors {
			fmt.Fprintf(out, "%s %s: %s\n", errorIcon(noColor), e.Field, e.Message)
		}
		failed = true
	case err != nil:
		fmt.Fprintf(out, "%s %v\n", errorIcon(noColor), err)
		failed = true
	default:
		fmt.Fprintf(out, "%s rules\n", successIcon(noColor))
	}

	for _, w := range cfg.Warnings() {
		fmt.Fprintf(out, "%s %s\n", warningIcon(noColor), w)
	}

	if failed {
		return errInvalidConfig
	}
	return nil
}
