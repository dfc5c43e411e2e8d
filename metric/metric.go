// Package metric exports evaluation metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	collector, err := metric.NewPrometheusCollector(reg)
//	ev := pramcost.New[rune](pramcost.WithMetricsCollector(collector))
package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/pramcost"
	"github.com/hupe1980/pramcost/model"
)

var _ pramcost.MetricsCollector = (*PrometheusCollector)(nil)

// PrometheusCollector implements pramcost.MetricsCollector.
type PrometheusCollector struct {
	evaluations *prometheus.CounterVec
	latency     prometheus.Histogram
	violations  prometheus.Counter
	steps       *prometheus.GaugeVec
	speedup     *prometheus.GaugeVec
}

// NewPrometheusCollector creates the metrics and registers them with reg.
// A nil reg selects prometheus.DefaultRegisterer.
func NewPrometheusCollector(reg prometheus.Registerer) (*PrometheusCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &PrometheusCollector{
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pramcost_evaluations_total",
			Help: "Evaluations by outcome",
		}, []string{"status"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pramcost_evaluation_duration_seconds",
			Help:    "Wall-clock time of one evaluation",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		violations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pramcost_consistency_violations_total",
			Help: "Evaluations whose models disagreed on the target index",
		}),
		steps: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pramcost_last_steps",
			Help: "Step count of the most recent successful evaluation",
		}, []string{"model"}),
		speedup: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pramcost_last_speedup",
			Help: "Speedup over sequential of the most recent successful evaluation",
		}, []string{"model"}),
	}

	for _, col := range []prometheus.Collector{c.evaluations, c.latency, c.violations, c.steps, c.speedup} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordEvaluate implements pramcost.MetricsCollector.
func (c *PrometheusCollector) RecordEvaluate(_, _ int, report *model.Report, duration time.Duration, err error) {
	c.latency.Observe(duration.Seconds())
	if err != nil {
		c.evaluations.WithLabelValues("error").Inc()
		return
	}
	c.evaluations.WithLabelValues("ok").Inc()

	for _, e := range report.Entries() {
		c.steps.WithLabelValues(e.Model.String()).Set(float64(e.Steps))
		c.speedup.WithLabelValues(e.Model.String()).Set(e.Speedup)
	}
}

// RecordConsistencyViolation implements pramcost.MetricsCollector.
func (c *PrometheusCollector) RecordConsistencyViolation(int, int) {
	c.violations.Inc()
}
