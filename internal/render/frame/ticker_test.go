package frame

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startLoop(t *testing.T, interval time.Duration) (*Loop, *TickerScheduler, context.CancelFunc) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	loop := NewLoop(16)
	sched := NewTickerScheduler(loop, interval)

	go sched.Run(ctx)
	go func() { _ = loop.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		<-loop.Done()
	})
	return loop, sched, cancel
}

func TestTickerScheduler_DeliversOnLoop(t *testing.T) {
	loop, sched, _ := startLoop(t, time.Millisecond)

	delivered := make(chan struct{})
	require.NoError(t, loop.Post(func() {
		sched.RequestFrame(func() { close(delivered) })
	}))

	select {
	case <-delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("frame callback was not delivered")
	}
	assert.Equal(t, 0, sched.Pending())
}

func TestTickerScheduler_ChainedFramesAreSeparate(t *testing.T) {
	loop, sched, _ := startLoop(t, time.Millisecond)

	var frames atomic.Int32
	done := make(chan struct{})
	require.NoError(t, loop.Post(func() {
		sched.RequestFrame(func() {
			frames.Add(1)
			sched.RequestFrame(func() {
				frames.Add(1)
				close(done)
			})
		})
	}))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("nested frame callback was not delivered")
	}
	assert.Equal(t, int32(2), frames.Load())
}

func TestTickerScheduler_Cancel(t *testing.T) {
	loop, sched, _ := startLoop(t, time.Millisecond)

	var ran atomic.Bool
	marker := make(chan struct{})
	require.NoError(t, loop.Post(func() {
		id := sched.RequestFrame(func() { ran.Store(true) })
		sched.CancelFrame(id)
		sched.RequestFrame(func() { close(marker) })
	}))

	select {
	case <-marker:
	case <-time.After(2 * time.Second):
		t.Fatal("frame was not delivered")
	}
	assert.False(t, ran.Load(), "cancelled callback ran")
}

func TestTickerScheduler_DefaultInterval(t *testing.T) {
	s := NewTickerScheduler(NewLoop(1), 0)
	assert.Equal(t, DefaultRefreshInterval, s.Interval())
}

func TestLoop_PostAfterStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	loop := NewLoop(1)
	cancel()

	err := loop.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, loop.Post(func() {}), ErrLoopStopped)
}
