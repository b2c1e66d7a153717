package monitor

import (
	"github.com/wesleyorama2/rendermon/internal/render/config"
	"github.com/wesleyorama2/rendermon/internal/render/frame"
)

// chain is the cancellable two-frame continuation of one measured cycle.
type chain struct {
	sched frame.Scheduler

	// Frame requests for the render and paint captures. Zero until issued.
	renderFrame frame.ID
	paintFrame  frame.ID

	cancelled bool
	done      bool
}

// cancel withdraws both frame requests. Callbacks that still arrive see
// cancelled and return without effect.
func (c *chain) cancel() {
	if c.cancelled || c.done {
		return
	}
	c.cancelled = true

	if c.renderFrame != 0 {
		c.sched.CancelFrame(c.renderFrame)
	}
	if c.paintFrame != 0 {
		c.sched.CancelFrame(c.paintFrame)
	}
}

// startChain schedules the render capture at the next frame and the paint
// capture at the frame after it. cfg is the configuration of the cycle that
// started the chain.
func (m *Monitor) startChain(cfg *config.ResolvedConfig) *chain {
	c := &chain{sched: m.sched}

	c.renderFrame = m.sched.RequestFrame(func() {
		if c.cancelled || m.closed {
			return
		}
		m.timings.Render = m.clock.Now()

		c.paintFrame = m.sched.RequestFrame(func() {
			if c.cancelled || m.closed {
				return
			}
			m.timings.Paint = m.clock.Now()
			c.done = true
			if m.chain == c {
				m.chain = nil
			}
			m.measure(cfg)
		})
	})

	return c
}

// cancelChain cancels the in-flight chain, if any.
func (m *Monitor) cancelChain() {
	if m.chain == nil {
		return
	}
	if !m.chain.done {
		m.chain.cancel()
		m.counts.Cancelled++
	}
	m.chain = nil
}
