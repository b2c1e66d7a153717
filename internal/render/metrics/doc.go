// Package metrics holds the raw state sampled from a monitored component.
//
// It has no knowledge of configuration: FrameStats records animation-frame
// timestamps, PhaseTimings records the four timestamps of one render cycle,
// Record is the sparse metric map produced by extraction, and Buffer
// implements the flush threshold.
//
// # Frame statistics
//
// FrameStats keeps the last WindowSize frame deltas for smoothed FPS and a
// lifetime HDR histogram of deltas for frame-time percentiles:
//
//	stats := metrics.NewFrameStats()
//	stats.Observe(clock.Now()) // once per animation frame
//	fps := stats.FPS()
//	p95, ok := stats.PercentileMs(95)
package metrics
