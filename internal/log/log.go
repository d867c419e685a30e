// Package log provides category-tagged key/value logging for the wizard.
// The TUI owns stdout, so logs go to a file; until Init is called every
// call is a no-op, which keeps tests and library use silent by default.
package log

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category tags a log line with the subsystem it came from.
type Category string

const (
	CatConfig Category = "config"
	CatStore  Category = "store"
	CatWizard Category = "wizard"
	CatUI     Category = "ui"
)

var logger = zap.NewNop().Sugar()

// Init opens the log file at path and routes subsequent calls to it.
// Every line carries a per-run session ID so interleaved runs against the
// same file stay distinguishable. Level is one of debug, info, warn, error.
func Init(path, level string) error {
	if path == "" {
		return fmt.Errorf("log path is empty")
	}

	lvl := zapcore.InfoLevel
	switch level {
	case "debug":
		lvl = zapcore.DebugLevel
	case "warn":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	logger = l.Sugar().With("session", uuid.NewString())
	return nil
}

// Close flushes any buffered log entries.
func Close() {
	_ = logger.Sync()
}

// Debug logs at debug level with the given category and key/value pairs.
func Debug(cat Category, msg string, kv ...any) {
	logger.Debugw(msg, append([]any{"category", string(cat)}, kv...)...)
}

// Info logs at info level.
func Info(cat Category, msg string, kv ...any) {
	logger.Infow(msg, append([]any{"category", string(cat)}, kv...)...)
}

// Warn logs at warn level.
func Warn(cat Category, msg string, kv ...any) {
	logger.Warnw(msg, append([]any{"category", string(cat)}, kv...)...)
}

// Error logs at error level.
func Error(cat Category, msg string, kv ...any) {
	logger.Errorw(msg, append([]any{"category", string(cat)}, kv...)...)
}
