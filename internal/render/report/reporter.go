package report

import (
	"go.uber.org/zap"

	"github.com/wesleyorama2/rendermon/internal/render/metrics"
)

// Options controls a single Report call.
type Options struct {
	Enabled  bool
	Decimals int
	Sink     Sink
}

// Reporter formats records and delivers them to a sink.
type Reporter struct {
	log *zap.Logger
}

// NewReporter creates a reporter. A nil logger discards diagnostics.
func NewReporter(log *zap.Logger) *Reporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reporter{log: log}
}

// Report formats rec and emits it for the instance id.
//
// Nothing happens when reporting is disabled or no sink is set. A panicking
// sink is recovered and logged. Report returns whether the sink was invoked.
func (r *Reporter) Report(id string, rec metrics.Record, opts Options) (emitted bool) {
	if !opts.Enabled || opts.Sink == nil {
		return false
	}

	values := Format(rec, opts.Decimals)

	defer func() {
		if p := recover(); p != nil {
			r.log.Debug("metrics sink panicked",
				zap.String("id", id),
				zap.Any("panic", p),
			)
		}
	}()

	emitted = true
	opts.Sink.Emit(Label(id), values)
	return emitted
}
