package metrics

import (
	"math"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

const (
	// WindowSize is the number of recent frame deltas kept for FPS smoothing.
	WindowSize = 60

	// DroppedFrameThresholdMs is the 60fps frame budget. A delta above it
	// counts as a dropped frame.
	DroppedFrameThresholdMs = 16.67

	// MaxFPS caps the reported frame rate.
	MaxFPS = 60.0

	// Histogram range for frame deltas, in microseconds: 1µs to 1 minute.
	histogramMin     = 1
	histogramMax     = 60_000_000
	histogramSigFigs = 3
)

// FrameStats is the per-instance frame sampler state.
//
// It is mutated only by Observe, which the frame sampler calls once per
// animation frame. FrameStats is not safe for concurrent use.
type FrameStats struct {
	// Count is the number of observed frames.
	Count uint64

	// Dropped is the number of deltas above DroppedFrameThresholdMs.
	Dropped uint64

	last    time.Duration
	hasLast bool

	// Oldest first, at most WindowSize entries.
	deltas []time.Duration

	// Lifetime distribution of frame deltas in microseconds
	hist *hdrhistogram.Histogram
}

// NewFrameStats creates empty frame statistics.
func NewFrameStats() *FrameStats {
	return &FrameStats{
		deltas: make([]time.Duration, 0, WindowSize+1),
		hist:   hdrhistogram.New(histogramMin, histogramMax, histogramSigFigs),
	}
}

// Observe records an animation-frame timestamp.
//
// When a previous timestamp exists the delta is appended to the rolling
// window, evicting the oldest entry beyond WindowSize, and counted as dropped
// when it exceeds the frame budget.
func (s *FrameStats) Observe(now time.Duration) {
	if s.hasLast {
		delta := now - s.last

		s.deltas = append(s.deltas, delta)
		if len(s.deltas) > WindowSize {
			copy(s.deltas, s.deltas[1:])
			s.deltas = s.deltas[:WindowSize]
		}

		if Milliseconds(delta) > DroppedFrameThresholdMs {
			s.Dropped++
		}

		s.recordHistogram(delta)
	}

	s.last = now
	s.hasLast = true
	s.Count++
}

// recordHistogram clamps the delta into the histogram range.
func (s *FrameStats) recordHistogram(delta time.Duration) {
	micros := delta.Microseconds()
	if micros < histogramMin {
		micros = histogramMin
	}
	if micros > histogramMax {
		micros = histogramMax
	}
	_ = s.hist.RecordValue(micros)
}

// Interrupt forgets the last timestamp so that the next Observe starts a new
// delta chain. Used when the sampler loop is stopped and later restarted.
func (s *FrameStats) Interrupt() {
	s.last = 0
	s.hasLast = false
}

// Deltas returns a copy of the rolling window, oldest first.
func (s *FrameStats) Deltas() []time.Duration {
	out := make([]time.Duration, len(s.deltas))
	copy(out, s.deltas)
	return out
}

// FPS derives the smoothed frame rate from the rolling window.
//
// An empty window reports 0. Otherwise the result is 1000 divided by the mean
// delta in milliseconds, clamped to [0, MaxFPS].
func (s *FrameStats) FPS() float64 {
	if len(s.deltas) == 0 {
		return 0
	}

	var total float64
	for _, d := range s.deltas {
		total += Milliseconds(d)
	}
	avg := total / float64(len(s.deltas))

	fps := math.Min(1000/avg, MaxFPS)
	if fps < 0 || math.IsNaN(fps) {
		return 0
	}
	return fps
}

// PercentileMs returns the frame delta at quantile q (0-100) in milliseconds
// over the lifetime of the stats. ok is false before the first delta.
func (s *FrameStats) PercentileMs(q float64) (float64, bool) {
	if s.hist.TotalCount() == 0 {
		return 0, false
	}
	micros := s.hist.ValueAtQuantile(q)
	return float64(micros) / 1000, true
}
