// Package report formats metric records for display and hands them to a sink.
package report

import (
	"math"
	"strconv"

	"github.com/wesleyorama2/rendermon/internal/render/metrics"
)

// DefaultDecimals is the precision used when none is configured.
const DefaultDecimals = 2

// LabelPrefix starts every label passed to a sink.
const LabelPrefix = "[rendermon]"

// Formatted is a display-ready metrics mapping.
//
// Values are either strings with units ("58.20 fps", "1.25ms", "12.50MB") or
// integers (dropped frames, node count). Only measured metrics have keys.
type Formatted map[string]any

// field describes how one metric is displayed.
type field struct {
	metric  metrics.Metric
	key     string
	unit    string
	integer bool
}

// layout lists metrics in display order.
var layout = []field{
	{metric: metrics.FPS, key: "fps", unit: " fps"},
	{metric: metrics.DroppedFrames, key: "dropped", integer: true},
	{metric: metrics.FrameTimeP95, key: "p95", unit: "ms"},
	{metric: metrics.ScriptTime, key: "script", unit: "ms"},
	{metric: metrics.RenderTime, key: "render", unit: "ms"},
	{metric: metrics.PaintTime, key: "paint", unit: "ms"},
	{metric: metrics.TotalTime, key: "total", unit: "ms"},
	{metric: metrics.NodeCount, key: "nodes", integer: true},
	{metric: metrics.HeapSize, key: "heap", unit: "MB"},
}

// Keys returns the keys of f in display order.
func (f Formatted) Keys() []string {
	keys := make([]string, 0, len(f))
	for _, fl := range layout {
		if _, ok := f[fl.key]; ok {
			keys = append(keys, fl.key)
		}
	}
	return keys
}

// Format converts a record into its display mapping using decimals digits
// after the decimal point. Negative decimals use DefaultDecimals.
func Format(rec metrics.Record, decimals int) Formatted {
	if decimals < 0 {
		decimals = DefaultDecimals
	}

	out := make(Formatted, len(rec))
	for _, fl := range layout {
		v, ok := rec[fl.metric]
		if !ok {
			continue
		}
		if fl.integer {
			out[fl.key] = int(math.Round(v))
			continue
		}
		out[fl.key] = strconv.FormatFloat(v, 'f', decimals, 64) + fl.unit
	}
	return out
}

// Label builds the sink label for an instance.
func Label(id string) string {
	return LabelPrefix + " " + id
}
