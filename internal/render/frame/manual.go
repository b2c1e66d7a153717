package frame

import (
	"time"
)

// ManualScheduler delivers frames only when Step is called.
//
// It counts every request and cancellation so tests can assert that nothing
// is scheduled after a monitor is torn down.
type ManualScheduler struct {
	queue
	clock    *ManualClock
	interval time.Duration

	// Requests is the total number of RequestFrame calls.
	Requests int

	// Cancels is the number of CancelFrame calls that removed a pending callback.
	Cancels int

	// Frames is the number of Step calls.
	Frames int
}

// NewManualScheduler creates a scheduler that advances clock by interval on
// every Step. clock may be nil.
func NewManualScheduler(clock *ManualClock, interval time.Duration) *ManualScheduler {
	return &ManualScheduler{clock: clock, interval: interval}
}

// RequestFrame implements Scheduler.
func (s *ManualScheduler) RequestFrame(cb func()) ID {
	s.Requests++
	return s.add(cb)
}

// CancelFrame implements Scheduler.
func (s *ManualScheduler) CancelFrame(id ID) {
	if s.cancel(id) {
		s.Cancels++
	}
}

// Step advances the clock by one interval and runs one frame. It returns the
// number of callbacks delivered.
func (s *ManualScheduler) Step() int {
	if s.clock != nil {
		s.clock.Advance(s.interval)
	}
	s.Frames++
	return s.runFrame()
}

// StepN runs n frames and returns the total number of callbacks delivered.
func (s *ManualScheduler) StepN(n int) int {
	ran := 0
	for i := 0; i < n; i++ {
		ran += s.Step()
	}
	return ran
}

// Pending returns the number of callbacks waiting for a frame.
func (s *ManualScheduler) Pending() int {
	return s.len()
}
