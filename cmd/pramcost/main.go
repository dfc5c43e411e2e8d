// Command pramcost prints the step counts and speedups of searching n
// distinct symbols on a sequential machine and on EREW, CREW and CRCW PRAMs.
//
// Usage:
//
//	pramcost [-n 256] [-p n] [-seed 1] [-absent] [-rule priority]
//	pramcost -sweep sweep.yaml
//
// With -archive DIR the reports are also stored in DIR, compressed with
// -compression. With -metrics-addr the process keeps serving Prometheus
// metrics until interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hupe1980/pramcost"
	"github.com/hupe1980/pramcost/blobstore"
	"github.com/hupe1980/pramcost/codec"
	"github.com/hupe1980/pramcost/metric"
	"github.com/hupe1980/pramcost/report"
	"github.com/hupe1980/pramcost/search"
	"github.com/hupe1980/pramcost/sweep"
	"github.com/hupe1980/pramcost/symbols"
)

func main() {
	log.SetPrefix("pramcost: ")
	log.SetFlags(0)

	var (
		flagN           = flag.Int("n", 256, "number of distinct symbols")
		flagP           = flag.Int("p", 0, "processor count (default: n)")
		flagSeed        = flag.Int64("seed", 1, "input generation seed")
		flagAbsent      = flag.Bool("absent", false, "search for a symbol that does not occur")
		flagRule        = flag.String("rule", "priority", "CRCW write-conflict `rule`")
		flagWidth       = flag.Int("width", report.DefaultChartWidth, "chart bar width")
		flagSweep       = flag.String("sweep", "", "run the sweep described by YAML `file`")
		flagArchive     = flag.String("archive", "", "store reports under `dir`")
		flagCompression = flag.String("compression", "zstd", "archive compression: none, lz4 or zstd")
		flagLogLevel    = flag.String("log-level", "info", "log `level`")
		flagLogJSON     = flag.Bool("log-json", false, "log as JSON")
		flagMetricsAddr = flag.String("metrics-addr", "", "serve Prometheus metrics on `addr`")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*flagLogLevel)); err != nil {
		log.Fatal(err)
	}
	logger := pramcost.NewTextLogger(level)
	if *flagLogJSON {
		logger = pramcost.NewJSONLogger(level)
	}

	rule, err := search.ParseConflictRule(*flagRule)
	if err != nil {
		log.Fatal(err)
	}
	comp, err := codec.ParseCompression(*flagCompression)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []pramcost.Option{
		pramcost.WithLogger(logger),
		pramcost.WithConflictRule(rule),
	}
	if *flagMetricsAddr != "" {
		reg := prometheus.NewRegistry()
		collector, err := metric.NewPrometheusCollector(reg)
		if err != nil {
			log.Fatal(err)
		}
		opts = append(opts, pramcost.WithMetricsCollector(collector))
		go serveMetrics(*flagMetricsAddr, reg, logger)
	}

	var archive *report.Archive
	if *flagArchive != "" {
		archive = report.NewArchive(blobstore.NewLocalStore(*flagArchive), report.WithCompression(comp))
	}

	if *flagSweep != "" {
		err = runSweep(ctx, *flagSweep, logger, archive, opts)
	} else {
		p := *flagP
		if p == 0 {
			p = *flagN
		}
		err = runSingle(ctx, *flagN, p, *flagSeed, !*flagAbsent, *flagWidth, archive, opts)
	}
	if err != nil {
		stop()
		log.Fatal(err)
	}

	if *flagMetricsAddr != "" {
		logger.Info("serving metrics until interrupted", "addr", *flagMetricsAddr)
		<-ctx.Done()
	}
}

func runSingle(ctx context.Context, n, p int, seed int64, present bool, width int, archive *report.Archive, opts []pramcost.Option) error {
	trial, err := pramcost.Speedups(ctx, symbols.NewSeededGenerator(seed), n, p, present, opts...)
	if err != nil {
		return err
	}

	fmt.Printf("target=%q\n", trial.Target)
	if err := report.WriteSummary(os.Stdout, trial.Report); err != nil {
		return err
	}
	fmt.Println()
	if err := report.WriteChart(os.Stdout, trial.Report, width); err != nil {
		return err
	}

	if archive != nil {
		name, err := archive.Save(ctx, trial.Report)
		if err != nil {
			return err
		}
		fmt.Printf("\narchived %s\n", name)
	}
	return nil
}

func runSweep(ctx context.Context, path string, logger *pramcost.Logger, archive *report.Archive, opts []pramcost.Option) error {
	cfg, err := sweep.LoadConfig(path)
	if err != nil {
		return err
	}

	res, err := sweep.Run(ctx, cfg, logger, opts...)
	if err != nil {
		return err
	}
	if err := report.WriteSweep(os.Stdout, res); err != nil {
		return err
	}

	if archive != nil {
		name := fmt.Sprintf("sweeps/%s.pram", time.Now().UTC().Format("20060102T150405Z"))
		if err := archive.SaveAll(ctx, name, res.Reports()); err != nil {
			return err
		}
		fmt.Printf("archived %s\n", name)
	}

	if res.Violations > 0 {
		return fmt.Errorf("%d consistency violations", res.Violations)
	}
	return nil
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *pramcost.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("metrics server failed", "error", err)
	}
}
