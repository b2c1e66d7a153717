package metrics

import (
	"math"
	"testing"
	"time"
)

func observeEvery(s *FrameStats, start, step time.Duration, n int) time.Duration {
	now := start
	for i := 0; i < n; i++ {
		s.Observe(now)
		now += step
	}
	return now
}

func TestFrameStats_FirstObserveHasNoDelta(t *testing.T) {
	s := NewFrameStats()
	s.Observe(5 * time.Millisecond)

	if s.Count != 1 {
		t.Errorf("Count = %d, want 1", s.Count)
	}
	if got := len(s.Deltas()); got != 0 {
		t.Errorf("len(Deltas()) = %d, want 0", got)
	}
	if fps := s.FPS(); fps != 0 {
		t.Errorf("FPS() = %v, want 0 for empty window", fps)
	}
	if _, ok := s.PercentileMs(95); ok {
		t.Error("PercentileMs() ok = true before any delta")
	}
}

func TestFrameStats_ZeroTimestampIsAValidFirstFrame(t *testing.T) {
	s := NewFrameStats()
	s.Observe(0)
	s.Observe(10 * time.Millisecond)

	deltas := s.Deltas()
	if len(deltas) != 1 || deltas[0] != 10*time.Millisecond {
		t.Errorf("Deltas() = %v, want [10ms]", deltas)
	}
}

func TestFrameStats_WindowEvictsOldest(t *testing.T) {
	s := NewFrameStats()
	now := time.Duration(0)
	s.Observe(now)

	// 70 deltas of increasing length: 1ms, 2ms, ... 70ms
	for i := 1; i <= 70; i++ {
		now += time.Duration(i) * time.Millisecond
		s.Observe(now)
	}

	deltas := s.Deltas()
	if len(deltas) != WindowSize {
		t.Fatalf("len(Deltas()) = %d, want %d", len(deltas), WindowSize)
	}
	if deltas[0] != 11*time.Millisecond {
		t.Errorf("oldest delta = %v, want 11ms", deltas[0])
	}
	if deltas[len(deltas)-1] != 70*time.Millisecond {
		t.Errorf("newest delta = %v, want 70ms", deltas[len(deltas)-1])
	}
	if s.Count != 71 {
		t.Errorf("Count = %d, want 71", s.Count)
	}
}

func TestFrameStats_DroppedFrames(t *testing.T) {
	tests := []struct {
		name  string
		delta time.Duration
		want  uint64
	}{
		{name: "on budget", delta: 16 * time.Millisecond, want: 0},
		{name: "exactly threshold", delta: 16670 * time.Microsecond, want: 0},
		{name: "just over", delta: 16680 * time.Microsecond, want: 1},
		{name: "long frame", delta: 50 * time.Millisecond, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewFrameStats()
			s.Observe(time.Second)
			s.Observe(time.Second + tt.delta)
			if s.Dropped != tt.want {
				t.Errorf("Dropped = %d, want %d", s.Dropped, tt.want)
			}
		})
	}
}

func TestFrameStats_FPS(t *testing.T) {
	tests := []struct {
		name string
		step time.Duration
		want float64
	}{
		{name: "30fps", step: 100 * time.Millisecond / 3, want: 30},
		{name: "20fps", step: 50 * time.Millisecond, want: 20},
		{name: "120Hz capped", step: 8 * time.Millisecond, want: 60},
		{name: "zero delta capped", step: 0, want: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewFrameStats()
			observeEvery(s, time.Millisecond, tt.step, 10)
			if got := s.FPS(); math.Abs(got-tt.want) > 0.01 {
				t.Errorf("FPS() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFrameStats_FPSAlwaysInRange(t *testing.T) {
	jitter := []time.Duration{
		0, 1 * time.Microsecond, 3 * time.Millisecond, 17 * time.Millisecond,
		250 * time.Millisecond, 2 * time.Second, 40 * time.Microsecond,
	}

	s := NewFrameStats()
	now := time.Duration(0)
	for i := 0; i < 500; i++ {
		now += jitter[(i*7)%len(jitter)]
		s.Observe(now)

		fps := s.FPS()
		if fps < 0 || fps > MaxFPS {
			t.Fatalf("FPS() = %v after %d frames, want within [0, %v]", fps, i+1, MaxFPS)
		}
	}
}

func TestFrameStats_Interrupt(t *testing.T) {
	s := NewFrameStats()
	s.Observe(10 * time.Millisecond)
	s.Interrupt()
	s.Observe(10 * time.Second)

	if got := len(s.Deltas()); got != 0 {
		t.Errorf("len(Deltas()) = %d after Interrupt, want 0", got)
	}
	if s.Dropped != 0 {
		t.Errorf("Dropped = %d, want 0 (gap across Interrupt must not count)", s.Dropped)
	}
	if s.Count != 2 {
		t.Errorf("Count = %d, want 2", s.Count)
	}
}

func TestFrameStats_PercentileMs(t *testing.T) {
	s := NewFrameStats()
	now := time.Duration(0)
	s.Observe(now)
	for i := 0; i < 95; i++ {
		now += 10 * time.Millisecond
		s.Observe(now)
	}
	for i := 0; i < 5; i++ {
		now += 100 * time.Millisecond
		s.Observe(now)
	}

	p50, ok := s.PercentileMs(50)
	if !ok {
		t.Fatal("PercentileMs(50) ok = false")
	}
	if p50 < 9.9 || p50 > 10.1 {
		t.Errorf("p50 = %v, want ~10ms", p50)
	}

	p99, _ := s.PercentileMs(99)
	if p99 < 99 || p99 > 101 {
		t.Errorf("p99 = %v, want ~100ms", p99)
	}
}
