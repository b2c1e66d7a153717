package frame

import (
	"sync"
	"time"
)

// DefaultRefreshInterval is the frame interval of a 60Hz display.
const DefaultRefreshInterval = time.Second / 60

// ID identifies a requested frame callback. The zero ID is never issued.
type ID uint64

// Scheduler requests callbacks at the next animation frame.
type Scheduler interface {
	// RequestFrame schedules cb to run once at the next frame.
	RequestFrame(cb func()) ID

	// CancelFrame prevents a pending callback from running. Cancelling an
	// unknown or already delivered ID is a no-op.
	CancelFrame(id ID)
}

// queue holds pending frame callbacks in request order.
type queue struct {
	mu      sync.Mutex
	next    ID
	pending map[ID]func()
	order   []ID
}

func (q *queue) add(cb func()) ID {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.pending == nil {
		q.pending = make(map[ID]func())
	}
	q.next++
	q.pending[q.next] = cb
	q.order = append(q.order, q.next)
	return q.next
}

func (q *queue) cancel(id ID) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, ok := q.pending[id]; !ok {
		return false
	}
	delete(q.pending, id)
	return true
}

func (q *queue) take(id ID) (func(), bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	cb, ok := q.pending[id]
	if ok {
		delete(q.pending, id)
	}
	return cb, ok
}

func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// runFrame delivers every callback requested before the call, skipping those
// cancelled in the meantime, including by an earlier callback of the same
// frame. It returns the number of callbacks run.
func (q *queue) runFrame() int {
	q.mu.Lock()
	batch := q.order
	q.order = nil
	q.mu.Unlock()

	ran := 0
	for _, id := range batch {
		cb, ok := q.take(id)
		if !ok {
			continue
		}
		cb()
		ran++
	}
	return ran
}
