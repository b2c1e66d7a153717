package config

import (
	"github.com/wesleyorama2/rendermon/internal/render/report"
)

// Family defaults.
var (
	DefaultFrames = FramesConfig{FPS: true, Drops: false, P95: false}
	DefaultMemory = MemoryConfig{Heap: true}
	DefaultDOM    = DOMConfig{Count: true}
	DefaultTiming = TimingConfig{Script: true, Render: true, Paint: true}
)

// DefaultLogging returns the logging defaults with sink as the reporting
// destination.
func DefaultLogging(sink report.Sink) LoggingConfig {
	return LoggingConfig{
		Enabled:  true,
		Decimals: report.DefaultDecimals,
		Sink:     sink,
	}
}

// Resolve expands cfg against the defaults. A nil cfg resolves to the
// defaults. sink is used when cfg does not supply its own.
//
// Resolve never fails: non-positive rates and negative decimals fall back to
// their defaults.
func Resolve(cfg *Config, sink report.Sink) *ResolvedConfig {
	if cfg == nil {
		cfg = &Config{}
	}

	resolved := &ResolvedConfig{
		Frames:     cfg.Frames.Resolve(DefaultFrames),
		Memory:     cfg.Memory.Resolve(DefaultMemory),
		DOM:        cfg.DOM.Resolve(DefaultDOM),
		Timing:     cfg.Timing.Resolve(DefaultTiming),
		Logging:    resolveLogging(cfg.Logging, sink),
		SampleRate: 1,
		BufferSize: 1,
	}

	if cfg.SampleRate > 0 {
		resolved.SampleRate = cfg.SampleRate
	}
	if cfg.BufferSize > 0 {
		resolved.BufferSize = cfg.BufferSize
	}

	return resolved
}

// resolveLogging applies each set logging field over the defaults.
func resolveLogging(opts *LoggingOptions, sink report.Sink) LoggingConfig {
	logging := DefaultLogging(sink)
	if opts == nil {
		return logging
	}

	overlay(&logging.Enabled, opts.Enabled)
	overlay(&logging.Prefix, opts.Prefix)
	if opts.Decimals != nil && *opts.Decimals >= 0 {
		logging.Decimals = *opts.Decimals
	}
	if opts.OnMetrics != nil {
		logging.Sink = opts.OnMetrics
	}
	return logging
}

// Resolver caches the resolution of the last configuration it saw.
//
// A new resolution happens only when the *Config pointer changes, so callers
// that pass the same configuration on every render get the same
// *ResolvedConfig back. Mutating a Config after passing it in is not detected.
type Resolver struct {
	sink report.Sink

	last     *Config
	resolved *ResolvedConfig
}

// NewResolver creates a resolver whose default sink is sink.
func NewResolver(sink report.Sink) *Resolver {
	return &Resolver{sink: sink}
}

// Resolve returns the resolved form of cfg, reusing the previous result when
// cfg is the same pointer as last time.
func (r *Resolver) Resolve(cfg *Config) *ResolvedConfig {
	if r.resolved != nil && cfg == r.last {
		return r.resolved
	}

	r.last = cfg
	r.resolved = Resolve(cfg, r.sink)
	return r.resolved
}

// Current returns the last resolution, or nil before the first call.
func (r *Resolver) Current() *ResolvedConfig {
	return r.resolved
}
