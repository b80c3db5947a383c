// Package observability holds the structured logging setup and the in-process
// counters for the resolve API.
package observability

import (
	"log/slog"
	"os"
)

const (
	// LogFieldRequestID is the field name for request ID.
	LogFieldRequestID = "request_id"
	// LogFieldStrategy is the field name for the winning resolve strategy.
	LogFieldStrategy = "strategy"
	// LogFieldLocale is the field name for the request locale.
	LogFieldLocale = "locale"
	// LogFieldDuration is the field name for duration in milliseconds.
	LogFieldDuration = "duration_ms"
	// LogFieldInputLen is the field name for raw input length. The input
	// itself is never logged.
	LogFieldInputLen = "input_length"
)

// SetupLogger installs the process-wide slog handler. Dev mode logs human
// readable text at debug level, prod logs JSON at info level.
func SetupLogger(mode string) *slog.Logger {
	var handler slog.Handler
	if mode == "prod" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
