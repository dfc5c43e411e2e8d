package pramcost

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/pramcost/model"
)

// MetricsCollector defines an interface for collecting evaluation metrics.
// See package metric for a Prometheus implementation.
type MetricsCollector interface {
	// RecordEvaluate is called after each evaluation.
	// report is nil if err is non-nil.
	RecordEvaluate(n, p int, report *model.Report, duration time.Duration, err error)

	// RecordConsistencyViolation is called when the models disagree on the
	// target index.
	RecordConsistencyViolation(n, p int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordEvaluate(int, int, *model.Report, time.Duration, error) {}
func (NoopMetricsCollector) RecordConsistencyViolation(int, int)                          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	EvaluateCount       atomic.Int64
	EvaluateErrors      atomic.Int64
	EvaluateTotalNanos  atomic.Int64
	ConsistencyFailures atomic.Int64
	NotFoundCount       atomic.Int64
}

// RecordEvaluate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEvaluate(_, _ int, report *model.Report, duration time.Duration, err error) {
	b.EvaluateCount.Add(1)
	b.EvaluateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.EvaluateErrors.Add(1)
		return
	}
	if report.Get(model.Sequential).Index == model.NotFound {
		b.NotFoundCount.Add(1)
	}
}

// RecordConsistencyViolation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordConsistencyViolation(int, int) {
	b.ConsistencyFailures.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	count := b.EvaluateCount.Load()
	var avg int64
	if count > 0 {
		avg = b.EvaluateTotalNanos.Load() / count
	}
	return BasicMetricsStats{
		EvaluateCount:       count,
		EvaluateErrors:      b.EvaluateErrors.Load(),
		EvaluateAvgNanos:    avg,
		ConsistencyFailures: b.ConsistencyFailures.Load(),
		NotFoundCount:       b.NotFoundCount.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	EvaluateCount       int64
	EvaluateErrors      int64
	EvaluateAvgNanos    int64
	ConsistencyFailures int64
	NotFoundCount       int64
}
