// Package monitor attaches a performance sampler to one rendered component.
//
// A Monitor owns all per-instance state: frame statistics, the render
// counter, the current cycle's phase timings and the report buffer. It is
// driven by two callers on the same goroutine: the host, which calls
// BeginCycle and Commit around every render (or Render for both), and the
// frame scheduler, which delivers animation frames.
//
// # Cycle
//
// Every cycle increments the render counter. One cycle in every SampleRate
// is measured:
//
//	BeginCycle  -> start
//	(render work)
//	Commit      -> script, request frame
//	frame 1     -> render, request frame
//	frame 2     -> paint, extract, buffer, maybe report
//
// The two frame requests form a chain held by the Monitor. Starting a new
// measured cycle or tearing down cancels an unfinished chain, and a cancelled
// chain's callbacks do nothing even if they are delivered.
//
// # Thread Safety
//
// Monitor is not safe for concurrent use. All methods and all scheduler
// callbacks must run on one goroutine, for example a frame.Loop.
package monitor

import (
	"os"

	"go.uber.org/zap"

	"github.com/wesleyorama2/rendermon/internal/render/config"
	"github.com/wesleyorama2/rendermon/internal/render/dom"
	"github.com/wesleyorama2/rendermon/internal/render/extract"
	"github.com/wesleyorama2/rendermon/internal/render/frame"
	"github.com/wesleyorama2/rendermon/internal/render/heap"
	"github.com/wesleyorama2/rendermon/internal/render/metrics"
	"github.com/wesleyorama2/rendermon/internal/render/report"
)

// Options wires a Monitor to its environment.
type Options struct {
	// Scheduler delivers animation frames. With a nil scheduler no frame is
	// ever delivered, so measurements never complete.
	Scheduler frame.Scheduler

	// Clock timestamps frames and phases (default: a new MonotonicClock)
	Clock frame.Clock

	// Document locates the monitored element. Nil disables DOM metrics.
	Document dom.Document

	// Heap reports heap usage. Nil disables heap metrics.
	Heap heap.Probe

	// DefaultSink receives reports when the configuration does not set
	// its own sink (default: a ConsoleSink on os.Stderr)
	DefaultSink report.Sink

	// Logger receives diagnostics (default: no-op)
	Logger *zap.Logger
}

// Stats counts what a Monitor has done so far.
type Stats struct {
	// Renders is the render counter: every BeginCycle.
	Renders uint64

	// Sampled is the number of cycles that passed the stride check and
	// started a measurement.
	Sampled uint64

	// Cancelled is the number of measurement chains cancelled before paint.
	Cancelled uint64

	// Extractions is the number of completed measurements.
	Extractions uint64

	// Reports is the number of flushes that invoked the sink.
	Reports uint64

	// Buffered is the number of records waiting for the next flush.
	Buffered int

	// Frames is the number of animation frames the sampler observed.
	Frames uint64
}

// Monitor samples render performance for one component instance.
type Monitor struct {
	id string

	sched    frame.Scheduler
	clock    frame.Clock
	document dom.Document
	heap     heap.Probe
	log      *zap.Logger

	resolver *config.Resolver
	reporter *report.Reporter
	cfg      *config.ResolvedConfig

	stats   *metrics.FrameStats
	timings metrics.PhaseTimings
	buffer  metrics.Buffer
	renders uint64

	// pending is set between BeginCycle and Commit of a measured cycle.
	pending bool

	sampler *sampler
	chain   *chain

	counts Stats
	closed bool
}

// New creates a monitor for the instance id. The monitored element is the
// one whose dom.MarkerAttr equals id.
func New(id string, opts Options) *Monitor {
	if opts.Scheduler == nil {
		opts.Scheduler = frame.NewManualScheduler(nil, 0)
	}
	if opts.Clock == nil {
		opts.Clock = frame.NewMonotonicClock()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.DefaultSink == nil {
		opts.DefaultSink = report.NewConsoleSink(report.ConsoleSinkConfig{Writer: os.Stderr})
	}

	log := opts.Logger.With(zap.String("id", id))

	m := &Monitor{
		id:       id,
		sched:    opts.Scheduler,
		clock:    opts.Clock,
		document: opts.Document,
		heap:     opts.Heap,
		log:      log,
		resolver: config.NewResolver(opts.DefaultSink),
		reporter: report.NewReporter(log),
		stats:    metrics.NewFrameStats(),
	}
	m.sampler = newSampler(m.sched, m.clock, m.stats)
	return m
}

// ID returns the instance identifier.
func (m *Monitor) ID() string {
	return m.id
}

// Render runs one full cycle: BeginCycle, work, Commit.
func (m *Monitor) Render(cfg *config.Config, work func()) {
	m.BeginCycle(cfg)
	if work != nil {
		work()
	}
	m.Commit()
}

// BeginCycle marks the start of a render. cfg is re-resolved only when the
// pointer differs from the previous call; nil means defaults.
func (m *Monitor) BeginCycle(cfg *config.Config) {
	if m.closed {
		return
	}

	prev := m.cfg
	m.cfg = m.resolver.Resolve(cfg)
	if m.cfg != prev {
		m.buffer.Fit(m.cfg.BufferSize)
	}
	m.renders++
	m.counts.Renders = m.renders
	m.pending = false

	if m.renders%uint64(m.cfg.SampleRate) != 0 {
		return
	}

	// A sampled cycle supersedes the previous measurement even when the
	// new configuration measures nothing.
	m.cancelChain()
	if !m.cfg.Measures() {
		return
	}

	m.timings = metrics.PhaseTimings{Start: m.clock.Now()}
	m.pending = true
	m.counts.Sampled++
}

// Commit marks the end of the render's synchronous work. It brings the frame
// sampler in line with the configuration and, for a measured cycle, captures
// the script phase and schedules the render and paint phases.
func (m *Monitor) Commit() {
	if m.closed || m.cfg == nil {
		return
	}

	m.syncSampler()

	if !m.pending {
		return
	}
	m.pending = false

	m.timings.Script = m.clock.Now()
	m.chain = m.startChain(m.cfg)
}

// Teardown stops the frame sampler and cancels any in-flight measurement.
// Buffered records are discarded. The monitor ignores all calls afterwards.
func (m *Monitor) Teardown() {
	if m.closed {
		return
	}
	m.closed = true
	m.pending = false

	m.sampler.stop()
	m.cancelChain()
	m.buffer.Clear()

	m.log.Debug("monitor torn down",
		zap.Uint64("renders", m.renders),
		zap.Uint64("reports", m.counts.Reports),
	)
}

// Closed reports whether Teardown has been called.
func (m *Monitor) Closed() bool {
	return m.closed
}

// Config returns the configuration resolved at the last BeginCycle, or nil.
func (m *Monitor) Config() *config.ResolvedConfig {
	return m.cfg
}

// Timings returns the phase timings of the most recent measured cycle.
func (m *Monitor) Timings() metrics.PhaseTimings {
	return m.timings
}

// Stats returns a snapshot of the monitor's counters.
func (m *Monitor) Stats() Stats {
	s := m.counts
	s.Buffered = m.buffer.Len()
	s.Frames = m.stats.Count
	return s
}

// syncSampler starts the frame sampler when the frames family is enabled and
// stops it when it is not.
func (m *Monitor) syncSampler() {
	if m.cfg.Frames != nil {
		if m.sampler.start() {
			m.log.Debug("frame sampler started")
		}
		return
	}
	if m.sampler.stop() {
		m.log.Debug("frame sampler stopped")
	}
}

// measure runs the extractors for a completed cycle and applies the
// buffering policy.
func (m *Monitor) measure(cfg *config.ResolvedConfig) {
	rec := extract.Merge(
		extract.Frames(m.stats, cfg.Frames, cfg.Timing, m.timings),
		extract.DOM(m.element(cfg), cfg.DOM),
		extract.Memory(cfg.Memory, m.heap),
	)
	m.counts.Extractions++

	flushed, ok := m.buffer.Push(rec, cfg.BufferSize)
	if !ok {
		return
	}
	if m.reporter.Report(m.id, flushed, cfg.ReportOptions()) {
		m.counts.Reports++
	}
}

// element locates the monitored element. Lookup failures, including a
// panicking document, leave the element absent.
func (m *Monitor) element(cfg *config.ResolvedConfig) (el dom.Element) {
	if cfg.DOM == nil || m.document == nil {
		return nil
	}

	defer func() {
		if p := recover(); p != nil {
			m.log.Debug("element lookup panicked", zap.Any("panic", p))
			el = nil
		}
	}()
	return m.document.QueryMarker(m.id)
}
