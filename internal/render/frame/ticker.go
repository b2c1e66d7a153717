package frame

import (
	"context"
	"time"
)

// TickerScheduler delivers animation frames on a Loop at a fixed refresh
// interval.
type TickerScheduler struct {
	queue
	loop     *Loop
	interval time.Duration
}

// NewTickerScheduler creates a scheduler that runs frames on loop every
// interval. A non-positive interval falls back to DefaultRefreshInterval.
func NewTickerScheduler(loop *Loop, interval time.Duration) *TickerScheduler {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &TickerScheduler{loop: loop, interval: interval}
}

// RequestFrame implements Scheduler.
func (s *TickerScheduler) RequestFrame(cb func()) ID {
	return s.add(cb)
}

// CancelFrame implements Scheduler.
func (s *TickerScheduler) CancelFrame(id ID) {
	s.cancel(id)
}

// Pending returns the number of callbacks waiting for a frame.
func (s *TickerScheduler) Pending() int {
	return s.len()
}

// Interval returns the refresh interval.
func (s *TickerScheduler) Interval() time.Duration {
	return s.interval
}

// Run ticks until ctx is cancelled or the loop stops. Frames with no pending
// callbacks are not posted to the loop.
func (s *TickerScheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.loop.Done():
			return
		case <-ticker.C:
			if s.len() == 0 {
				continue
			}
			if err := s.loop.Post(func() { s.runFrame() }); err != nil {
				return
			}
		}
	}
}
