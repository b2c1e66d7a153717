package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wesleyorama2/rendermon/internal/logger"
	"github.com/wesleyorama2/rendermon/internal/render/config"
	"github.com/wesleyorama2/rendermon/internal/render/dom"
	"github.com/wesleyorama2/rendermon/internal/render/frame"
	"github.com/wesleyorama2/rendermon/internal/render/heap"
	"github.com/wesleyorama2/rendermon/internal/render/monitor"
	"github.com/wesleyorama2/rendermon/internal/render/report"
)

// Output formats accepted by --format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatLog     = "log"
)

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Monitor a synthetic component",
		Long: `Render a synthetic component on a real frame loop and report its metrics.

The component re-renders every --update-interval. Each render rebuilds a list
of about --nodes elements and spends --work of synchronous time, which shows
up as script time. Frames are delivered every --refresh.

  rendermon simulate --config monitor.yaml --duration 5s
  rendermon simulate --nodes 500 --work 8ms --format json

Every flag can also be set through the environment, for example
RENDERMON_WORK=4ms.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			stats, err := runSimulate(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), s)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "%s %d renders, %d measured, %d reported, %d frames\n",
				successIcon(s.NoColor), stats.Renders, stats.Extractions, stats.Reports, stats.Frames)
			return nil
		},
	}

	cmd.Flags().StringP("config", "c", "", "Monitor configuration file (YAML or JSON)")
	cmd.Flags().String("id", "Demo", "Component instance identifier")
	cmd.Flags().Int("nodes", 100, "Approximate number of elements the component renders")
	cmd.Flags().Duration("work", 2*time.Millisecond, "Synchronous work per render")
	cmd.Flags().Duration("update-interval", 100*time.Millisecond, "Time between re-renders")
	cmd.Flags().Duration("duration", 3*time.Second, "How long to run")
	cmd.Flags().Duration("refresh", frame.DefaultRefreshInterval, "Frame interval")
	cmd.Flags().StringP("format", "f", FormatConsole, "Report format (console, json, log)")

	return cmd
}

// component is the synthetic UI component driven by simulate.
type component struct {
	root    *dom.Node
	nodes   int
	work    time.Duration
	renders int
}

func newComponent(id string, nodes int, work time.Duration) *component {
	return &component{
		root:  dom.NewNode("ul").Mark(id),
		nodes: nodes,
		work:  work,
	}
}

// render rebuilds the list with a slightly varying size and burns work.
func (c *component) render() {
	c.renders++
	c.root.Children = nil
	dom.Fill(c.root, "li", c.nodes+c.renders%3)

	if c.work > 0 {
		deadline := time.Now().Add(c.work)
		for time.Now().Before(deadline) {
		}
	}
}

// runSimulate renders the synthetic component until s.Duration elapses or
// ctx is cancelled, then tears the monitor down and returns its counters.
func runSimulate(ctx context.Context, out, errOut io.Writer, s *settings) (monitor.Stats, error) {
	log, err := logger.New(s.LogLevel, errOut)
	if err != nil {
		return monitor.Stats{}, fmt.Errorf("invalid --log-level %q: %w", s.LogLevel, err)
	}
	defer logger.Flush(log)

	sink, err := newSink(s.Format, out, s.NoColor)
	if err != nil {
		return monitor.Stats{}, err
	}

	var cfg *config.Config
	if s.Config != "" {
		cfg, err = config.LoadConfig(s.Config)
		if err != nil {
			return monitor.Stats{}, err
		}
		for _, w := range cfg.Warnings() {
			log.Warn(w, zap.String("config", s.Config))
		}
	}

	if s.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Duration)
		defer cancel()
	}

	comp := newComponent(s.ID, s.Nodes, s.Work)
	loop := frame.NewLoop(64)
	sched := frame.NewTickerScheduler(loop, s.Refresh)
	mon := monitor.New(s.ID, monitor.Options{
		Scheduler:   sched,
		Document:    dom.NewTree(dom.NewNode("body", comp.root)),
		Heap:        heap.Runtime{},
		DefaultSink: sink,
		Logger:      log,
	})

	log.Info("simulation started",
		zap.String("id", s.ID),
		zap.Duration("refresh", sched.Interval()),
		zap.Duration("update_interval", s.UpdateInterval),
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		sched.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		driveUpdates(ctx, loop, s.UpdateInterval, func() { mon.Render(cfg, comp.render) })
	}()

	// The first render happens on mount.
	if err := loop.Post(func() { mon.Render(cfg, comp.render) }); err != nil {
		return monitor.Stats{}, err
	}

	_ = loop.Run(ctx)
	wg.Wait()

	mon.Teardown()
	stats := mon.Stats()

	log.Info("simulation finished",
		zap.Uint64("renders", stats.Renders),
		zap.Uint64("reports", stats.Reports),
	)
	return stats, nil
}

// driveUpdates posts render to loop every interval until ctx ends or the
// loop stops.
func driveUpdates(ctx context.Context, loop *frame.Loop, interval time.Duration, render func()) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-loop.Done():
			return
		case <-ticker.C:
			if err := loop.Post(render); err != nil {
				return
			}
		}
	}
}

// newSink creates the default sink for format. The log format writes
// info-level JSON entries to out regardless of --log-level.
func newSink(format string, out io.Writer, noColor bool) (report.Sink, error) {
	switch format {
	case FormatConsole, "":
		return report.NewConsoleSink(report.ConsoleSinkConfig{Writer: out, NoColor: noColor}), nil
	case FormatJSON:
		return report.NewJSONSink(out), nil
	case FormatLog:
		log, err := logger.New("info", out)
		if err != nil {
			return nil, err
		}
		return report.NewZapSink(log), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want %s, %s or %s)", format, FormatConsole, FormatJSON, FormatLog)
	}
}
