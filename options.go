package bitfilter

import (
	"log/slog"
	"runtime"
)

type options struct {
	hasher           Hasher
	layout           Layout
	concurrent       bool
	workers          int
	logger           *Logger
	metricsCollector MetricsCollector
}

func defaultOptions() options {
	return options{
		hasher:           FNV1a{},
		layout:           LayoutByte,
		workers:          runtime.GOMAXPROCS(0),
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures filter construction.
type Option func(*options)

// WithHasher configures the digest function.
//
// If nil is passed, FNV1a is used.
func WithHasher(h Hasher) Option {
	return func(o *options) {
		if h == nil {
			h = FNV1a{}
		}
		o.hasher = h
	}
}

// WithLayout configures how digests map onto words. Default LayoutByte.
//
// Filters with different layouts place the same element at different bits;
// never compare word contents across layouts.
func WithLayout(l Layout) Option {
	return func(o *options) {
		o.layout = l
	}
}

// WithConcurrent backs the filter with atomic words so Insert and
// ContainsMaybe may be called from many goroutines without external locking.
func WithConcurrent() Option {
	return func(o *options) {
		o.concurrent = true
	}
}

// WithWorkers sets the goroutine count InsertAll uses on a concurrent filter.
// Values < 1 mean GOMAXPROCS. Ignored for non-concurrent filters.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := bitfilter.NewJSONLogger(slog.LevelDebug)
//	f, _ := bitfilter.NewString(1024, bitfilter.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
//	metrics := &bitfilter.BasicMetricsCollector{}
//	f, _ := bitfilter.NewString(1024, bitfilter.WithMetricsCollector(metrics))
//	// ... use f ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
