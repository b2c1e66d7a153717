package report

import (
	"encoding/json"
	"io"
	"sync"

	"go.uber.org/zap"
)

// Sink receives one formatted metrics mapping per flush.
//
// Sinks are called on the monitor's goroutine and should return quickly.
// Return values and panics are ignored by the reporter.
type Sink interface {
	Emit(label string, values Formatted)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(label string, values Formatted)

// Emit calls f.
func (f SinkFunc) Emit(label string, values Formatted) {
	f(label, values)
}

// JSONSink writes one JSON object per flush:
//
//	{"label":"[rendermon] counter","metrics":{"fps":"60.00 fps","nodes":12}}
type JSONSink struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewJSONSink creates a sink writing newline-delimited JSON to w.
func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{enc: json.NewEncoder(w)}
}

type jsonLine struct {
	Label   string    `json:"label"`
	Metrics Formatted `json:"metrics"`
}

// Emit implements Sink. Encoding errors are dropped.
func (s *JSONSink) Emit(label string, values Formatted) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.enc.Encode(jsonLine{Label: label, Metrics: values})
}

// ZapSink logs each flush as a structured entry at info level.
type ZapSink struct {
	log *zap.Logger
}

// NewZapSink creates a sink logging to log.
func NewZapSink(log *zap.Logger) *ZapSink {
	return &ZapSink{log: log}
}

// Emit implements Sink.
func (s *ZapSink) Emit(label string, values Formatted) {
	fields := make([]zap.Field, 0, len(values))
	for _, key := range values.Keys() {
		switch v := values[key].(type) {
		case int:
			fields = append(fields, zap.Int(key, v))
		case string:
			fields = append(fields, zap.String(key, v))
		default:
			fields = append(fields, zap.Any(key, v))
		}
	}
	s.log.Info(label, fields...)
}
