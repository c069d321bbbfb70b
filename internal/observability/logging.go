// Package observability provides logging, metrics, and tracing.
package observability

import (
	"log/slog"
	"os"
)

var globalLogger *slog.Logger

func init() {
	globalLogger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Logger returns the application-wide structured logger.
func Logger() *slog.Logger {
	return globalLogger
}

// SetLogger replaces the application-wide logger; tests use this to silence
// or capture output.
func SetLogger(l *slog.Logger) {
	if l != nil {
		globalLogger = l
	}
}
