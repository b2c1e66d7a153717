// Package extract turns sampled state into partial metric records.
//
// Each extractor is a pure function of its inputs and the resolved switches
// of one metric family. A nil family disables the extractor, which then
// returns an empty record. The partial records never share keys, so Merge
// is a plain union.
package extract

import (
	"github.com/wesleyorama2/rendermon/internal/render/config"
	"github.com/wesleyorama2/rendermon/internal/render/dom"
	"github.com/wesleyorama2/rendermon/internal/render/heap"
	"github.com/wesleyorama2/rendermon/internal/render/metrics"
)

// bytesPerMB converts heap bytes to megabytes.
const bytesPerMB = 1024 * 1024

// p95 is the frame-time quantile reported by the p95 switch.
const p95 = 95

// Frames extracts frame-rate and phase-timing metrics.
//
// totalTimeMs is always present when timing is enabled, even if every
// individual phase switch is off.
func Frames(stats *metrics.FrameStats, frames *config.FramesConfig, timing *config.TimingConfig, t metrics.PhaseTimings) metrics.Record {
	rec := metrics.Record{}

	if frames != nil && stats != nil {
		if frames.FPS {
			rec[metrics.FPS] = stats.FPS()
		}
		if frames.Drops {
			rec[metrics.DroppedFrames] = float64(stats.Dropped)
		}
		if frames.P95 {
			if v, ok := stats.PercentileMs(p95); ok {
				rec[metrics.FrameTimeP95] = v
			}
		}
	}

	if timing != nil {
		if timing.Script {
			rec[metrics.ScriptTime] = metrics.Milliseconds(t.Script - t.Start)
		}
		if timing.Render {
			rec[metrics.RenderTime] = metrics.Milliseconds(t.Render - t.Script)
		}
		if timing.Paint {
			rec[metrics.PaintTime] = metrics.Milliseconds(t.Paint - t.Render)
		}
		rec[metrics.TotalTime] = metrics.Milliseconds(t.Paint - t.Start)
	}

	return rec
}

// DOM extracts the descendant count of the monitored element. A missing
// element yields an empty record.
func DOM(el dom.Element, cfg *config.DOMConfig) metrics.Record {
	rec := metrics.Record{}
	if cfg == nil || !cfg.Count || el == nil {
		return rec
	}

	rec[metrics.NodeCount] = float64(el.DescendantCount())
	return rec
}

// Memory extracts the heap size in megabytes. A missing probe, a probe error
// or a probe panic all yield an empty record.
func Memory(cfg *config.MemoryConfig, probe heap.Probe) metrics.Record {
	rec := metrics.Record{}
	if cfg == nil || !cfg.Heap || probe == nil {
		return rec
	}

	used, ok := readHeap(probe)
	if !ok {
		return rec
	}

	rec[metrics.HeapSize] = float64(used) / bytesPerMB
	return rec
}

// readHeap calls the probe, treating any failure as unavailable.
func readHeap(probe heap.Probe) (used uint64, ok bool) {
	defer func() {
		if recover() != nil {
			used, ok = 0, false
		}
	}()

	used, err := probe.HeapUsed()
	if err != nil {
		return 0, false
	}
	return used, true
}

// Merge unions partial records into a new record.
func Merge(parts ...metrics.Record) metrics.Record {
	size := 0
	for _, p := range parts {
		size += len(p)
	}

	out := make(metrics.Record, size)
	for _, p := range parts {
		for k, v := range p {
			out[k] = v
		}
	}
	return out
}
