// Package logger builds the zap loggers used by the rendermon CLI.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a logger writing to w at the given level.
// Accepted levels (case-insensitive): "debug", "info", "warn", "error".
// A nil w writes to os.Stderr so diagnostics never mix with report output.
func New(level string, w io.Writer) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	if w == nil {
		w = os.Stderr
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zapLevel,
	)

	return zap.New(core, zap.AddCaller()), nil
}

// Flush writes any buffered entries. Call it from main before exiting.
func Flush(l *zap.Logger) {
	// Sync fails with "invalid argument" on terminals; nothing to do about it.
	_ = l.Sync()
}
