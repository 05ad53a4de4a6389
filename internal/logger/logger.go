// Package logger owns the process-wide zap logger shared by handlers, services and repositories.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ServiceName is attached to every entry as the "service" field.
const ServiceName = "hackhub"

// Log discards everything until Initialize runs, so packages and their tests
// can log without any setup.
var Log = zap.NewNop().Sugar()

// Initialize swaps Log for a JSON logger writing to stderr at the given level
// ("debug", "info", "warn", "error", ...).
func Initialize(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}

	built, err := newConfig(lvl).Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	Log = built.Sugar()
	return nil
}

// newConfig keeps every entry (no sampling) so each request and SQL statement
// shows up in the log stream.
func newConfig(lvl zapcore.Level) zap.Config {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Sampling = nil
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cfg.InitialFields = map[string]any{"service": ServiceName}
	return cfg
}

// Sync flushes buffered entries; call it before exit.
func Sync() {
	_ = Log.Sync()
}
