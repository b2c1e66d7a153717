package rendermon

import (
	"io"
	"time"

	"github.com/wesleyorama2/rendermon/internal/render/config"
	"github.com/wesleyorama2/rendermon/internal/render/dom"
	"github.com/wesleyorama2/rendermon/internal/render/frame"
	"github.com/wesleyorama2/rendermon/internal/render/heap"
	"github.com/wesleyorama2/rendermon/internal/render/monitor"
	"github.com/wesleyorama2/rendermon/internal/render/report"
)

// Monitor types.
type (
	Monitor = monitor.Monitor
	Options = monitor.Options
	Stats   = monitor.Stats
)

// Configuration types.
type (
	Config         = config.Config
	ResolvedConfig = config.ResolvedConfig
	Mode           = config.Mode
	LoggingOptions = config.LoggingOptions

	FramesFamily  = config.FramesFamily
	MemoryFamily  = config.MemoryFamily
	DOMFamily     = config.DOMFamily
	TimingFamily  = config.TimingFamily
	FramesOptions = config.FramesOptions
	MemoryOptions = config.MemoryOptions
	DOMOptions    = config.DOMOptions
	TimingOptions = config.TimingOptions
)

// Family modes.
const (
	Default  = config.Default
	Disabled = config.Disabled
	Enabled  = config.Enabled
	Partial  = config.Partial
)

// Reporting types.
type (
	Sink      = report.Sink
	SinkFunc  = report.SinkFunc
	Formatted = report.Formatted
)

// Environment types.
type (
	Scheduler = frame.Scheduler
	Clock     = frame.Clock
	Loop      = frame.Loop
	Document  = dom.Document
	Element   = dom.Element
	HeapProbe = heap.Probe
)

// MarkerAttr is the attribute that identifies a monitored element.
const MarkerAttr = dom.MarkerAttr

// New creates a monitor for the component instance id.
func New(id string, opts Options) *Monitor {
	return monitor.New(id, opts)
}

// LoadConfig loads a configuration from a YAML or JSON file.
func LoadConfig(path string) (*Config, error) {
	return config.LoadConfig(path)
}

// ParseConfig parses a YAML or JSON configuration; path selects the format.
func ParseConfig(data []byte, path string) (*Config, error) {
	return config.ParseConfig(data, path)
}

// Bool returns a pointer to v, for option switches.
func Bool(v bool) *bool { return config.Bool(v) }

// Int returns a pointer to v.
func Int(v int) *int { return config.Int(v) }

// String returns a pointer to v, for LoggingOptions.Prefix.
func String(v string) *string { return config.String(v) }

// NewLoop creates a frame loop. See frame.Loop.
func NewLoop(buffer int) *Loop {
	return frame.NewLoop(buffer)
}

// NewTickerScheduler creates a scheduler delivering frames on loop every
// interval; zero means 60Hz.
func NewTickerScheduler(loop *Loop, interval time.Duration) *frame.TickerScheduler {
	return frame.NewTickerScheduler(loop, interval)
}

// NewManualClock creates a clock that moves only when advanced, for tests.
func NewManualClock(start time.Duration) *frame.ManualClock {
	return frame.NewManualClock(start)
}

// NewManualScheduler creates a scheduler that delivers a frame, advancing
// clock by interval, each time Step is called. It is meant for tests.
func NewManualScheduler(clock *frame.ManualClock, interval time.Duration) *frame.ManualScheduler {
	return frame.NewManualScheduler(clock, interval)
}

// NewRuntimeHeapProbe returns a probe reading the Go runtime heap.
func NewRuntimeHeapProbe() HeapProbe {
	return heap.Runtime{}
}

// NewConsoleSink creates a sink printing one line per report to w.
func NewConsoleSink(w io.Writer, noColor bool) Sink {
	return report.NewConsoleSink(report.ConsoleSinkConfig{Writer: w, NoColor: noColor})
}

// NewJSONSink creates a sink writing one JSON object per report to w.
func NewJSONSink(w io.Writer) Sink {
	return report.NewJSONSink(w)
}
