// Package config provides configuration types, resolution, parsing and
// validation for the render monitor.
package config

import (
	"github.com/wesleyorama2/rendermon/internal/render/report"
)

// Config is the user-supplied monitor configuration.
//
// Each metric family accepts false, true, or a partial object of switches.
// Unset fields fall back to defaults when the config is resolved.
//
// Example YAML:
//
//	frames:
//	  drops: true
//	memory: true
//	dom: false
//	timing:
//	  script: false
//	logging:
//	  decimals: 1
//	sampleRate: 5
//	bufferSize: 3
type Config struct {
	// Frames controls frame-rate sampling
	Frames FramesFamily `json:"frames" yaml:"frames"`

	// Memory controls heap-size reporting
	Memory MemoryFamily `json:"memory" yaml:"memory"`

	// DOM controls element counting under the monitored root
	DOM DOMFamily `json:"dom" yaml:"dom"`

	// Timing controls the script/render/paint phase timings
	Timing TimingFamily `json:"timing" yaml:"timing"`

	// Logging controls how flushed records are reported
	Logging *LoggingOptions `json:"logging,omitempty" yaml:"logging,omitempty"`

	// SampleRate measures one cycle out of every SampleRate (default: 1)
	SampleRate int `json:"sampleRate,omitempty" yaml:"sampleRate,omitempty"`

	// BufferSize is the number of sampled cycles between reports (default: 1)
	BufferSize int `json:"bufferSize,omitempty" yaml:"bufferSize,omitempty"`
}

// FramesOptions are the frame-family switches. Nil fields keep defaults.
type FramesOptions struct {
	FPS   *bool `json:"fps,omitempty" yaml:"fps,omitempty"`
	Drops *bool `json:"drops,omitempty" yaml:"drops,omitempty"`
	P95   *bool `json:"p95,omitempty" yaml:"p95,omitempty"`
}

// MemoryOptions are the memory-family switches.
type MemoryOptions struct {
	Heap *bool `json:"heap,omitempty" yaml:"heap,omitempty"`
}

// DOMOptions are the dom-family switches.
type DOMOptions struct {
	Count *bool `json:"count,omitempty" yaml:"count,omitempty"`
}

// TimingOptions are the timing-family switches.
type TimingOptions struct {
	Script *bool `json:"script,omitempty" yaml:"script,omitempty"`
	Render *bool `json:"render,omitempty" yaml:"render,omitempty"`
	Paint  *bool `json:"paint,omitempty" yaml:"paint,omitempty"`
}

// LoggingOptions override the logging defaults field by field.
type LoggingOptions struct {
	Enabled  *bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Decimals *int    `json:"decimals,omitempty" yaml:"decimals,omitempty"`
	Prefix   *string `json:"prefix,omitempty" yaml:"prefix,omitempty"`

	// OnMetrics replaces the default sink. It cannot be set from a file.
	OnMetrics report.Sink `json:"-" yaml:"-"`
}

// Family aliases bind each family's options to its resolved switches.
type (
	FramesFamily = Family[FramesOptions, FramesConfig]
	MemoryFamily = Family[MemoryOptions, MemoryConfig]
	DOMFamily    = Family[DOMOptions, DOMConfig]
	TimingFamily = Family[TimingOptions, TimingConfig]
)

// FramesConfig is the resolved frame-family switches.
type FramesConfig struct {
	FPS   bool
	Drops bool
	P95   bool
}

// MemoryConfig is the resolved memory-family switches.
type MemoryConfig struct {
	Heap bool
}

// DOMConfig is the resolved dom-family switches.
type DOMConfig struct {
	Count bool
}

// TimingConfig is the resolved timing-family switches.
type TimingConfig struct {
	Script bool
	Render bool
	Paint  bool
}

// LoggingConfig is the resolved logging configuration.
type LoggingConfig struct {
	Enabled  bool
	Decimals int

	// Prefix is carried for sinks that want it; the reporter does not use it.
	Prefix string

	Sink report.Sink
}

// ResolvedConfig is a fully expanded configuration. A nil family pointer
// means the family is disabled. ResolvedConfig is never mutated after
// resolution.
type ResolvedConfig struct {
	Frames *FramesConfig
	Memory *MemoryConfig
	DOM    *DOMConfig
	Timing *TimingConfig

	Logging LoggingConfig

	SampleRate int
	BufferSize int
}

// Measures reports whether any metric family is enabled.
func (c *ResolvedConfig) Measures() bool {
	return c.Frames != nil || c.Memory != nil || c.DOM != nil || c.Timing != nil
}

// ReportOptions returns the reporter options for this configuration.
func (c *ResolvedConfig) ReportOptions() report.Options {
	return report.Options{
		Enabled:  c.Logging.Enabled,
		Decimals: c.Logging.Decimals,
		Sink:     c.Logging.Sink,
	}
}

// Bool returns a pointer to v, for building partial options.
func Bool(v bool) *bool {
	return &v
}

// Int returns a pointer to v.
func Int(v int) *int {
	return &v
}

// String returns a pointer to v.
func String(v string) *string {
	return &v
}
