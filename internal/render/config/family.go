package config

import (
	"encoding/json"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Mode is the shape a family was configured with.
type Mode int

const (
	// Default means the family key was absent or malformed.
	Default Mode = iota
	// Disabled means the family was set to false.
	Disabled
	// Enabled means the family was set to true.
	Enabled
	// Partial means the family was set to an object of switches.
	Partial
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Disabled:
		return "disabled"
	case Enabled:
		return "enabled"
	case Partial:
		return "partial"
	default:
		return "default"
	}
}

// Overlay is implemented by family options: it applies the set switches on
// top of the family defaults.
type Overlay[R any] interface {
	Over(base R) R
}

// Family is one metric family's configuration: false, true, or a partial
// object of switches.
//
//	cfg.Frames = config.FramesFamily{Mode: config.Disabled}
//	cfg.Timing = config.TimingFamily{Mode: config.Partial, Options: config.TimingOptions{Script: config.Bool(false)}}
type Family[P Overlay[R], R any] struct {
	Mode    Mode
	Options P
}

// Resolve expands the family against its defaults. It returns nil when the
// family is disabled.
func (f Family[P, R]) Resolve(defaults R) *R {
	switch f.Mode {
	case Disabled:
		return nil
	case Partial:
		r := f.Options.Over(defaults)
		return &r
	default:
		r := defaults
		return &r
	}
}

// UnmarshalYAML accepts a boolean or a mapping. Anything else, including a
// mapping that fails to decode, leaves the family at Default.
func (f *Family[P, R]) UnmarshalYAML(node *yaml.Node) error {
	*f = Family[P, R]{}

	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag != "!!bool" {
			return nil
		}
		var on bool
		if err := node.Decode(&on); err != nil {
			return nil
		}
		f.Mode = modeFor(on)
	case yaml.MappingNode:
		var opts P
		if err := node.Decode(&opts); err != nil {
			return nil
		}
		f.Mode = Partial
		f.Options = opts
	}
	return nil
}

// UnmarshalJSON accepts true, false or an object. Anything else, including an
// object that fails to decode, leaves the family at Default.
func (f *Family[P, R]) UnmarshalJSON(data []byte) error {
	*f = Family[P, R]{}

	value := gjson.ParseBytes(data)
	switch {
	case value.Type == gjson.True || value.Type == gjson.False:
		f.Mode = modeFor(value.Bool())
	case value.IsObject():
		var opts P
		if err := json.Unmarshal([]byte(value.Raw), &opts); err != nil {
			return nil
		}
		f.Mode = Partial
		f.Options = opts
	}
	return nil
}

func modeFor(on bool) Mode {
	if on {
		return Enabled
	}
	return Disabled
}

// Over implements Overlay.
func (o FramesOptions) Over(base FramesConfig) FramesConfig {
	overlay(&base.FPS, o.FPS)
	overlay(&base.Drops, o.Drops)
	overlay(&base.P95, o.P95)
	return base
}

// Over implements Overlay.
func (o MemoryOptions) Over(base MemoryConfig) MemoryConfig {
	overlay(&base.Heap, o.Heap)
	return base
}

// Over implements Overlay.
func (o DOMOptions) Over(base DOMConfig) DOMConfig {
	overlay(&base.Count, o.Count)
	return base
}

// Over implements Overlay.
func (o TimingOptions) Over(base TimingConfig) TimingConfig {
	overlay(&base.Script, o.Script)
	overlay(&base.Render, o.Render)
	overlay(&base.Paint, o.Paint)
	return base
}

func overlay[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
