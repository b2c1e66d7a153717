package monitor

import (
	"github.com/wesleyorama2/rendermon/internal/render/frame"
	"github.com/wesleyorama2/rendermon/internal/render/metrics"
)

// sampler is the self-rescheduling frame loop feeding FrameStats. It runs
// independently of render cycles from start until stop.
type sampler struct {
	sched frame.Scheduler
	clock frame.Clock
	stats *metrics.FrameStats

	running bool
	next    frame.ID

	// gen changes on every start so ticks from an earlier run are ignored.
	gen uint64
}

func newSampler(sched frame.Scheduler, clock frame.Clock, stats *metrics.FrameStats) *sampler {
	return &sampler{sched: sched, clock: clock, stats: stats}
}

// start schedules the first tick. It returns false if already running.
func (s *sampler) start() bool {
	if s.running {
		return false
	}
	s.running = true
	s.gen++
	s.schedule()
	return true
}

// stop cancels the pending tick. It returns false if not running.
func (s *sampler) stop() bool {
	if !s.running {
		return false
	}
	s.running = false
	s.sched.CancelFrame(s.next)
	s.next = 0
	s.stats.Interrupt()
	return true
}

func (s *sampler) schedule() {
	gen := s.gen
	s.next = s.sched.RequestFrame(func() { s.tick(gen) })
}

// tick observes one frame and reschedules itself.
func (s *sampler) tick(gen uint64) {
	if !s.running || gen != s.gen {
		return
	}
	s.stats.Observe(s.clock.Now())
	s.schedule()
}
