package sievego

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with sievego-specific context.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithBlock adds a block index field to the logger.
func (l *Logger) WithBlock(block uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("block", block),
	}
}

// LogRun logs the outcome of a full sieve run.
func (l *Logger) LogRun(ctx context.Context, n, numBlocks uint64, primes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "sieve run failed",
			"n", n,
			"blocks", numBlocks,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "sieve run completed",
			"n", n,
			"blocks", numBlocks,
			"primes", primes,
		)
	}
}

// LogBlock logs the completion of one block pipeline.
func (l *Logger) LogBlock(ctx context.Context, block, lo, hi uint64, primes int) {
	l.DebugContext(ctx, "block sieved",
		"block", block,
		"lo", lo,
		"hi", hi,
		"primes", primes,
	)
}

// LogSnapshot logs a snapshot encode/decode operation.
func (l *Logger) LogSnapshot(ctx context.Context, bytes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "snapshot written",
			"bytes", bytes,
		)
	}
}
