package pramcost

import (
	"log/slog"

	"github.com/hupe1980/pramcost/search"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	conflictRule     search.ConflictRule
	parallelModels   bool
}

// Option configures an Evaluator.
type Option func(*options)

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
//	metrics := &pramcost.BasicMetricsCollector{}
//	ev := pramcost.New[rune](pramcost.WithMetricsCollector(metrics))
//	// ... evaluate ...
//	fmt.Println(metrics.GetStats().EvaluateCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
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

// WithConflictRule sets the CRCW write-conflict rule. Only search.Priority
// is supported; any other rule makes Evaluate fail with
// ErrUnsupportedConflictRule.
func WithConflictRule(rule search.ConflictRule) Option {
	return func(o *options) {
		o.conflictRule = rule
	}
}

// WithParallelModels runs the four models concurrently inside Evaluate.
// Results are identical either way.
func WithParallelModels(enabled bool) Option {
	return func(o *options) {
		o.parallelModels = enabled
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		conflictRule:     search.Priority,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
