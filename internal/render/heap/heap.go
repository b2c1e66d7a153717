// Package heap provides the heap-size probe used by the memory metric.
package heap

import (
	"errors"
	"runtime"
)

// ErrUnavailable is returned by probes that cannot report heap usage in the
// current environment.
var ErrUnavailable = errors.New("heap size unavailable")

// Probe reports the number of bytes currently in use on the heap.
type Probe interface {
	HeapUsed() (uint64, error)
}

// ProbeFunc adapts a function to the Probe interface.
type ProbeFunc func() (uint64, error)

// HeapUsed calls f.
func (f ProbeFunc) HeapUsed() (uint64, error) {
	return f()
}

// Runtime reads heap usage from the Go runtime.
//
// runtime.ReadMemStats stops the world briefly; callers sample it at most once
// per measured cycle.
type Runtime struct{}

// HeapUsed returns the bytes of allocated heap objects.
func (Runtime) HeapUsed() (uint64, error) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.HeapAlloc, nil
}

// Unavailable is a probe for environments without heap introspection.
type Unavailable struct{}

// HeapUsed always returns ErrUnavailable.
func (Unavailable) HeapUsed() (uint64, error) {
	return 0, ErrUnavailable
}
