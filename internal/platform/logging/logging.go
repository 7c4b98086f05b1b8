// Package logging builds the service's slog loggers and carries them through
// request contexts. Every handler masks credentials with masq before output.
//
// Services log failures with the operation name and the full error chain:
//
//	logger.ErrorContext(ctx, "failed to generate plan",
//	    slog.String("operation", "GeneratePlan"),
//	    slog.Any("error", err),
//	)
//
// Loggers taken from a request context already carry request_id and
// correlation_id.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

type loggerKey struct{}

// New creates a logger writing to w. Unknown level names fall back to info.
// Format "text" selects the text handler and anything else logs JSON. Debug
// loggers also record the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl, AddSource: lvl <= slog.LevelDebug, ReplaceAttr: newRedactAttr()}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx for FromContext.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// ParseLevel converts a level name to slog.Level. Matching is
// case-insensitive and "warning" is accepted as an alias of "warn". Unlike
// New, which falls back to info, an unknown name is an error so that command
// line flags can reject typos.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", level)
	}
}
