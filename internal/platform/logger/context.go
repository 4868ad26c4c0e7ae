package logger

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type contextKey string

const (
	loggerKey contextKey = "logger"
	runIDKey  contextKey = "runID"
)

// WithLogger stores logger in ctx. It panics if logger is nil.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		panic("logger: nil logger")
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOrDefault(ctx, slog.Default())
}

// FromContextOrDefault returns the logger stored in ctx, or fallback when
// ctx is nil or carries no logger.
func FromContextOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if ctx == nil {
		return fallback
	}
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return fallback
}

// WithRunID generates a run id for one CLI invocation, stores it in ctx and
// tags the context logger (or base, if ctx carries none) with it.
func WithRunID(ctx context.Context, base *slog.Logger) context.Context {
	if base == nil {
		base = slog.Default()
	}
	runID := uuid.NewString()
	ctx = context.WithValue(ctx, runIDKey, runID)
	return WithLogger(ctx, FromContextOrDefault(ctx, base).With(slog.String("run_id", runID)))
}

// RunID returns the run id stored in ctx, or "" if there is none.
func RunID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	runID, _ := ctx.Value(runIDKey).(string)
	return runID
}
