package bitfilter

import (
	"log/slog"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()

	assert.Equal(t, FNV1a{}, o.hasher)
	assert.Equal(t, LayoutByte, o.layout)
	assert.False(t, o.concurrent)
	assert.Equal(t, runtime.GOMAXPROCS(0), o.workers)
	assert.NotNil(t, o.logger)
	assert.Equal(t, NoopMetricsCollector{}, o.metricsCollector)
}

func TestOptions(t *testing.T) {
	o := defaultOptions()
	mc := &BasicMetricsCollector{}

	for _, opt := range []Option{
		WithHasher(Murmur3{Seed: 1}),
		WithLayout(LayoutWord),
		WithConcurrent(),
		WithWorkers(3),
		WithMetricsCollector(mc),
		WithLogLevel(slog.LevelDebug),
	} {
		opt(&o)
	}

	assert.Equal(t, Murmur3{Seed: 1}, o.hasher)
	assert.Equal(t, LayoutWord, o.layout)
	assert.True(t, o.concurrent)
	assert.Equal(t, 3, o.workers)
	assert.Same(t, mc, o.metricsCollector)
	assert.NotNil(t, o.logger)

	WithWorkers(0)(&o)
	assert.Equal(t, runtime.GOMAXPROCS(0), o.workers)

	WithLogger(nil)(&o)
	assert.NotNil(t, o.logger)
}
