package report

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ConsoleSink writes one line per flush to a diagnostic stream:
//
//	[rendermon] counter  fps=60.00 fps  script=0.42ms  render=16.00ms  nodes=12
//
// Colors are used only when the writer is a terminal that supports them.
type ConsoleSink struct {
	mu     sync.Mutex
	writer io.Writer

	labelColor *color.Color
	keyColor   *color.Color
	valueColor *color.Color
}

// ConsoleSinkConfig configures a ConsoleSink.
type ConsoleSinkConfig struct {
	// Writer receives output. Defaults to os.Stderr.
	Writer io.Writer

	// NoColor disables colors even on a terminal.
	NoColor bool

	// ForceColors enables colors even when Writer is not a terminal.
	ForceColors bool
}

// NewConsoleSink creates a console sink.
func NewConsoleSink(cfg ConsoleSinkConfig) *ConsoleSink {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}

	useColors := cfg.ForceColors || (!cfg.NoColor && isTerminal(cfg.Writer) && supportsColors())

	s := &ConsoleSink{
		writer:     cfg.Writer,
		labelColor: color.New(color.FgMagenta, color.Bold),
		keyColor:   color.New(color.FgCyan),
		valueColor: color.New(color.FgWhite, color.Bold),
	}
	for _, c := range []*color.Color{s.labelColor, s.keyColor, s.valueColor} {
		if useColors {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// Emit implements Sink.
func (s *ConsoleSink) Emit(label string, values Formatted) {
	var sb strings.Builder
	sb.WriteString(s.labelColor.Sprint(label))
	for _, key := range values.Keys() {
		sb.WriteString("  ")
		sb.WriteString(s.keyColor.Sprint(key))
		sb.WriteString("=")
		sb.WriteString(s.valueColor.Sprint(fmt.Sprint(values[key])))
	}
	sb.WriteString("\n")

	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.writer, sb.String())
}

// isTerminal checks if the writer is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// supportsColors checks the environment for color preferences.
func supportsColors() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if runtime.GOOS == "windows" {
		return true
	}

	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}
