// Package sweep evaluates the search models over a grid of problem sizes and
// processor counts.
//
// Grid points run concurrently, bounded by a resource.Controller. A point
// that fails, including with a consistency violation, is tallied in the
// Result instead of stopping the sweep.
//
//	cfg, err := sweep.LoadConfig("sweep.yaml")
//	res, err := sweep.Run(ctx, cfg, logger)
//	fmt.Println(res.Violations, res.Failed)
//
// A config file looks like:
//
//	sizes: [8, 64, 256]
//	processors: [1, 2, 4, 8, 16]
//	target_present: true
//	seed: 42
//	workers: 4
//	progress_interval: 2s
package sweep
