package frame

import (
	"context"
	"errors"
)

// ErrLoopStopped is returned by Post once the loop has stopped running.
var ErrLoopStopped = errors.New("frame loop stopped")

// Loop runs posted tasks one at a time on the goroutine that calls Run.
type Loop struct {
	tasks chan func()
	done  chan struct{}
}

// NewLoop creates a loop whose task queue holds up to buffer tasks before
// Post blocks.
func NewLoop(buffer int) *Loop {
	if buffer < 0 {
		buffer = 0
	}
	return &Loop{
		tasks: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
}

// Post queues fn to run on the loop goroutine. It blocks while the queue is
// full and returns ErrLoopStopped if the loop is no longer running.
func (l *Loop) Post(fn func()) error {
	select {
	case <-l.done:
		return ErrLoopStopped
	default:
	}

	select {
	case l.tasks <- fn:
		return nil
	case <-l.done:
		return ErrLoopStopped
	}
}

// Run executes tasks until ctx is cancelled. It must be called at most once.
// Tasks still queued when ctx ends are dropped.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.tasks:
			fn()
		}
	}
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
