// Package pramcost compares the step cost of searching an array of distinct
// symbols on a sequential machine and on three PRAM variants.
//
// Nothing runs in parallel. Each model reports the true index of the target
// and charges the number of synchronous steps its concurrency class needs:
//
//	Sequential  position of the match + 1, or n on a miss
//	EREW        ceil(n/p) + ceil(log2 p)
//	CREW        ceil(n/p) + ceil(log2 p)
//	CRCW        ceil(n/p)             (priority write rule)
//
// # Quick Start
//
//	ctx := context.Background()
//	report, err := pramcost.EvaluateString(ctx, "ABCDEFGH", 'D', 8)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.Get(model.CRCW).Speedup) // 4
//
// # Evaluator
//
// For repeated evaluations build an Evaluator once:
//
//	metrics := &pramcost.BasicMetricsCollector{}
//	ev := pramcost.New[rune](
//	    pramcost.WithLogger(pramcost.NewTextLogger(slog.LevelDebug)),
//	    pramcost.WithMetricsCollector(metrics),
//	)
//	report, err := ev.Evaluate(ctx, seq, target, p)
//
// # Errors
//
//   - ErrInvalidProcessorCount: p < 1
//   - ErrUnsupportedConflictRule: a CRCW rule other than priority
//   - *ErrConsistencyViolation: the models disagree on a found index
//
// # Related Packages
//
//   - cost: the step formulas
//   - search: the four model functions
//   - symbols: distinct-symbol input generation
//   - sweep: evaluation over an (n, p) grid
//   - report: text summary, chart and archive of reports
//   - metric: Prometheus metrics collector
package pramcost
