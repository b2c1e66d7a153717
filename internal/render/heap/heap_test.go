package heap

import (
	"errors"
	"testing"
)

func TestRuntime_HeapUsed(t *testing.T) {
	used, err := Runtime{}.HeapUsed()
	if err != nil {
		t.Fatalf("HeapUsed() error = %v", err)
	}
	if used == 0 {
		t.Error("HeapUsed() = 0, want a non-zero heap for a running test binary")
	}
}

func TestUnavailable_HeapUsed(t *testing.T) {
	_, err := Unavailable{}.HeapUsed()
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("HeapUsed() error = %v, want ErrUnavailable", err)
	}
}

func TestProbeFunc(t *testing.T) {
	p := ProbeFunc(func() (uint64, error) { return 42, nil })
	got, err := p.HeapUsed()
	if err != nil || got != 42 {
		t.Errorf("HeapUsed() = (%d, %v), want (42, nil)", got, err)
	}
}
