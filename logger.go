package aligndist

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with aligndist-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogCompute logs a pairwise distance computation.
func (l *Logger) LogCompute(ctx context.Context, metric string, rows, cols int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "compute dist failed",
			"metric", metric,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "compute dist completed",
			"metric", metric,
			"rows", rows,
			"cols", cols,
		)
	}
}

// LogAlignment logs a shortest path reduction.
func (l *Logger) LogAlignment(ctx context.Context, shape []int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "shortest dist failed",
			"shape", shape,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "shortest dist completed",
			"shape", shape,
		)
	}
}

// LogLocalDist logs a local distance aggregation.
func (l *Logger) LogLocalDist(ctx context.Context, mode string, pairs int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "local dist failed",
			"mode", mode,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "local dist completed",
			"mode", mode,
			"pairs", pairs,
		)
	}
}

// LogMatrixOp logs a chunked matrix evaluation.
func (l *Logger) LogMatrixOp(ctx context.Context, split string, parts int, shape []int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "low memory matrix op failed",
			"split", split,
			"parts", parts,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "low memory matrix op completed",
			"split", split,
			"parts", parts,
			"shape", shape,
		)
	}
}
