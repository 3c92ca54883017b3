package bitfilter

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with filter-specific helpers and field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all output. This is the default.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithWords adds a words field to the logger.
func (l *Logger) WithWords(words int) *Logger {
	return &Logger{
		Logger: l.Logger.With("words", words),
	}
}

// WithLayout adds a layout field to the logger.
func (l *Logger) WithLayout(layout Layout) *Logger {
	return &Logger{
		Logger: l.Logger.With("layout", layout.String()),
	}
}

// LogCreate logs filter construction.
func (l *Logger) LogCreate(ctx context.Context, addressableBits uint64, hasher string, concurrent bool) {
	l.DebugContext(ctx, "filter created",
		"addressable_bits", addressableBits,
		"hasher", hasher,
		"concurrent", concurrent,
	)
}

// LogSizing logs a word count derived from an expected element count.
func (l *Logger) LogSizing(ctx context.Context, expected int, fpRate float64, words int) {
	l.DebugContext(ctx, "filter sized from estimate",
		"expected", expected,
		"fp_rate", fpRate,
		"words", words,
	)
}

// LogBatchInsert logs completion of a bulk insert.
func (l *Logger) LogBatchInsert(ctx context.Context, count, workers int, elapsed time.Duration, err error) {
	if err != nil {
		l.WarnContext(ctx, "batch insert aborted",
			"count", count,
			"workers", workers,
			"elapsed", elapsed,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "batch insert completed",
			"count", count,
			"workers", workers,
			"elapsed", elapsed,
		)
	}
}
