package metrics

import (
	"time"
)

// Metric is the name of a single measured value in a Record.
type Metric string

// Metric names. A Record only ever contains keys for metrics whose switch
// was enabled and whose source was available.
const (
	FPS           Metric = "fps"
	DroppedFrames Metric = "droppedFrames"
	FrameTimeP95  Metric = "frameTimeP95Ms"
	ScriptTime    Metric = "scriptTimeMs"
	RenderTime    Metric = "renderTimeMs"
	PaintTime     Metric = "paintTimeMs"
	TotalTime     Metric = "totalTimeMs"
	NodeCount     Metric = "nodeCount"
	HeapSize      Metric = "heapSize"
)

// Record is a sparse mapping of metric name to value.
//
// Absence of a key means "not measured"; there are no zero placeholders.
type Record map[Metric]float64

// Has reports whether the metric was measured.
func (r Record) Has(m Metric) bool {
	_, ok := r[m]
	return ok
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// PhaseTimings holds the four timestamps of one sampled render cycle.
//
// Each value is an offset from the clock origin and stays zero until it is
// captured. Captures happen in order: Start, Script, Render, Paint.
type PhaseTimings struct {
	Start  time.Duration
	Script time.Duration
	Render time.Duration
	Paint  time.Duration
}

// Milliseconds converts a duration to fractional milliseconds.
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
