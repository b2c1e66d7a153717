package cli

import (
	"github.com/fatih/color"
)

// successIcon returns a checkmark symbol with appropriate color
func successIcon(noColor bool) string {
	if noColor {
		return "✓"
	}
	return color.New(color.FgGreen).Sprint("✓")
}

// errorIcon returns an X symbol with appropriate color
func errorIcon(noColor bool) string {
	if noColor {
		return "✗"
	}
	return color.New(color.FgRed).Sprint("✗")
}

// warningIcon returns a warning symbol with appropriate color
func warningIcon(noColor bool) string {
	if noColor {
		return "⚠"
	}
	return color.New(color.FgYellow).Sprint("⚠")
}
