// Package logging provides structured logging configuration.
package logging

import (
	"log/slog"
	"os"

	aerrors "github.com/edgard/autocorrect/internal/errors"
)

// Setup configures the global logger. debug raises the level to
// slog.LevelDebug (the --debug flag, surfacing the batch driver's per-file
// "processed" lines); otherwise the level is Info. json
// selects slog's JSON handler over its text handler, matching the teacher's
// logger.json toggle.
func Setup(debug, json bool) error {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler

	if json {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return nil
}

// Debug logs a message at debug level.
func Debug(msg string, args ...any) {
	slog.Debug(msg, args...)
}

// Info logs a message at info level.
func Info(msg string, args ...any) {
	slog.Info(msg, args...)
}

// Warn logs a message at warn level.
func Warn(msg string, args ...any) {
	slog.Warn(msg, args...)
}

// Error logs a message at error level.
func Error(msg string, args ...any) {
	slog.Error(msg, args...)
}

// LogResultError logs a per-file failure through the typed error code it
// carries, so ConfigError and ParseError/IOError are visibly distinguishable
// in the logs even though FormatResult.Err is just a string.
func LogResultError(path string, err error) {
	Error("file processing failed", "path", path, "code", aerrors.Code(err), "error", err)
}
