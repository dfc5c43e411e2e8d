package pramcost

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/hupe1980/pramcost/model"
)

// Logger wraps slog.Logger with pramcost-specific field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithN adds a problem size field to the logger.
func (l *Logger) WithN(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("n", n),
	}
}

// WithProcessors adds a processor count field to the logger.
func (l *Logger) WithProcessors(p int) *Logger {
	return &Logger{
		Logger: l.Logger.With("p", p),
	}
}

// WithModel adds a model field to the logger.
func (l *Logger) WithModel(name model.Name) *Logger {
	return &Logger{
		Logger: l.Logger.With("model", name.String()),
	}
}

// LogEvaluate logs the outcome of one evaluation. Successful evaluations
// also log one debug line per PRAM model.
func (l *Logger) LogEvaluate(ctx context.Context, n, p int, report *model.Report, err error) {
	log := l.WithN(n).WithProcessors(p)
	if err != nil {
		log.ErrorContext(ctx, "evaluate failed", "error", err)
		return
	}

	if !log.Enabled(ctx, slog.LevelDebug) {
		return
	}

	seq := report.Get(model.Sequential)
	log.DebugContext(ctx, "evaluate completed",
		"index", seq.Index,
		"seq_steps", seq.Steps,
	)
	for _, e := range report.Entries() {
		if !e.Model.IsPRAM() {
			continue
		}
		log.WithModel(e.Model).DebugContext(ctx, "model result",
			"steps", e.Steps,
			"speedup", e.Speedup,
		)
	}
}

// LogSweep logs the summary of a parameter sweep.
func (l *Logger) LogSweep(ctx context.Context, points, violations, failed int) {
	if violations > 0 || failed > 0 {
		l.WarnContext(ctx, "sweep completed with failures",
			"points", points,
			"violations", violations,
			"failed", failed,
		)
	} else {
		l.InfoContext(ctx, "sweep completed",
			"points", points,
		)
	}
}
