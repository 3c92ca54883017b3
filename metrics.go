package bitfilter

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting filter metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Record methods are called on the hot path; implementations must be cheap
// and safe for concurrent use.
type MetricsCollector interface {
	// RecordInsert is called after each Insert.
	RecordInsert()

	// RecordQuery is called after each ContainsMaybe with its result.
	RecordQuery(maybe bool)

	// RecordBatchInsert is called after each InsertAll.
	// count is the number of elements inserted before returning.
	RecordBatchInsert(count int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert()                               {}
func (NoopMetricsCollector) RecordQuery(bool)                            {}
func (NoopMetricsCollector) RecordBatchInsert(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	InsertCount       atomic.Int64
	QueryCount        atomic.Int64
	QueryMaybe        atomic.Int64
	BatchInsertCount  atomic.Int64
	BatchInsertItems  atomic.Int64
	BatchInsertErrors atomic.Int64
	BatchTotalNanos   atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert() {
	b.InsertCount.Add(1)
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(maybe bool) {
	b.QueryCount.Add(1)
	if maybe {
		b.QueryMaybe.Add(1)
	}
}

// RecordBatchInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchInsert(count int, duration time.Duration, err error) {
	b.BatchInsertCount.Add(1)
	b.BatchInsertItems.Add(int64(count))
	b.BatchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BatchInsertErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:       b.InsertCount.Load(),
		QueryCount:        b.QueryCount.Load(),
		QueryMaybe:        b.QueryMaybe.Load(),
		QueryDefiniteNo:   b.QueryCount.Load() - b.QueryMaybe.Load(),
		BatchInsertCount:  b.BatchInsertCount.Load(),
		BatchInsertItems:  b.BatchInsertItems.Load(),
		BatchInsertErrors: b.BatchInsertErrors.Load(),
		BatchAvgNanos:     b.getAvgBatchNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgBatchNanos() int64 {
	count := b.BatchInsertCount.Load()
	if count == 0 {
		return 0
	}
	return b.BatchTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount       int64
	QueryCount        int64
	QueryMaybe        int64
	QueryDefiniteNo   int64
	BatchInsertCount  int64
	BatchInsertItems  int64
	BatchInsertErrors int64
	BatchAvgNanos     int64
}
