// Package logging provides structured logging configuration using log/slog.
//
// Pipeline runs are batch jobs: every log entry for a run carries the
// run identifier so concurrent or replayed batches can be told apart in
// aggregated logs.
package logging

import (
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Setup configures the global slog logger based on level and format.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
//
// Use "json" format in production for machine parsing (ELK, CloudWatch, etc.)
// Use "text" format in development for human readability.
func Setup(level, format string) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ForRun returns a logger enriched with the batch run identifier.
// All stage logging for one run should go through the returned logger
// so entries correlate on run_id.
func ForRun(runID uuid.UUID) *slog.Logger {
	return slog.Default().With("run_id", runID.String())
}

// WithStage returns a logger carrying both the run identifier and the
// pipeline stage name.
func WithStage(log *slog.Logger, stage string) *slog.Logger {
	return log.With("stage", stage)
}
