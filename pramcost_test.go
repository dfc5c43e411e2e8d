package pramcost

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pramcost/cost"
	"github.com/hupe1980/pramcost/model"
	"github.com/hupe1980/pramcost/search"
	"github.com/hupe1980/pramcost/symbols"
)

func TestEvaluate(t *testing.T) {
	ctx := context.Background()

	t.Run("EightProcessors", func(t *testing.T) {
		report, err := EvaluateString(ctx, "ABCDEFGH", 'D', 8)
		require.NoError(t, err)

		assert.Equal(t, 8, report.N)
		assert.Equal(t, 8, report.P)
		assert.Equal(t, model.Entry{Model: model.Sequential, Index: 3, Speedup: 1.0, Steps: 4}, report.Get(model.Sequential))
		assert.Equal(t, model.Entry{Model: model.EREW, Index: 3, Speedup: 1.0, Steps: 4}, report.Get(model.EREW))
		assert.Equal(t, model.Entry{Model: model.CREW, Index: 3, Speedup: 1.0, Steps: 4}, report.Get(model.CREW))
		assert.Equal(t, model.Entry{Model: model.CRCW, Index: 3, Speedup: 4.0, Steps: 1}, report.Get(model.CRCW))
	})

	t.Run("SingleProcessor", func(t *testing.T) {
		report, err := EvaluateString(ctx, "ABCDEFGH", 'D', 1)
		require.NoError(t, err)

		for _, name := range []model.Name{model.EREW, model.CREW, model.CRCW} {
			e := report.Get(name)
			assert.Equal(t, 3, e.Index)
			assert.Equal(t, 8, e.Steps)
			assert.Equal(t, 0.5, e.Speedup)
		}
	})

	t.Run("AbsentTarget", func(t *testing.T) {
		report, err := EvaluateString(ctx, "ABCDE", 'Z', 4)
		require.NoError(t, err)

		for _, e := range report.Entries() {
			assert.Equal(t, model.NotFound, e.Index, e.Model.String())
		}
		assert.Equal(t, 5, report.Get(model.Sequential).Steps)
		assert.Equal(t, 4, report.Get(model.EREW).Steps)
		assert.Equal(t, 1.25, report.Get(model.EREW).Speedup)
		assert.Equal(t, 1.25, report.Get(model.CREW).Speedup)
		assert.Equal(t, 2, report.Get(model.CRCW).Steps)
		assert.Equal(t, 2.5, report.Get(model.CRCW).Speedup)
	})

	t.Run("EmptySequence", func(t *testing.T) {
		report, err := EvaluateString(ctx, "", 'A', 4)
		require.NoError(t, err)

		assert.Equal(t, 1.0, report.Get(model.Sequential).Speedup)
		assert.Equal(t, 0, report.Get(model.CRCW).Steps)
		assert.True(t, math.IsInf(report.Get(model.CRCW).Speedup, 1))
		assert.Equal(t, 2, report.Get(model.EREW).Steps)
		assert.Equal(t, 0.0, report.Get(model.EREW).Speedup)
	})

	t.Run("Generic", func(t *testing.T) {
		ev := New[int]()
		report, err := ev.Evaluate(ctx, []int{10, 20, 30, 40}, 40, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, report.Get(model.CRCW).Index)
		assert.Equal(t, 2, report.Get(model.CRCW).Steps)
		assert.Equal(t, 3, report.Get(model.EREW).Steps)
	})
}

func TestEvaluateSequentialSpeedupIsOne(t *testing.T) {
	ctx := context.Background()
	gen := symbols.NewSeededGenerator(7)
	ev := New[rune]()

	for n := 1; n <= 80; n += 7 {
		seq, err := gen.Unique(n)
		require.NoError(t, err)
		for p := 1; p <= 90; p += 11 {
			for _, present := range []bool{true, false} {
				target, err := gen.Target(seq, present)
				require.NoError(t, err)

				report, err := ev.Evaluate(ctx, seq, target, p)
				require.NoError(t, err)
				assert.Equal(t, 1.0, report.Get(model.Sequential).Speedup)
				assert.Equal(t, report.Get(model.EREW).Steps, report.Get(model.CREW).Steps)
			}
		}
	}
}

func TestEvaluateParallelModelsMatchesSerial(t *testing.T) {
	ctx := context.Background()
	seq := []rune("abcdefghijklmnopqrstuvwxyz")

	serial := New[rune]()
	parallel := New[rune](WithParallelModels(true))

	for p := 1; p <= 30; p++ {
		for _, target := range []rune{'a', 'm', 'z', '#'} {
			want, err := serial.Evaluate(ctx, seq, target, p)
			require.NoError(t, err)
			got, err := parallel.Evaluate(ctx, seq, target, p)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}
}

func TestEvaluateErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("InvalidProcessorCount", func(t *testing.T) {
		for _, parallel := range []bool{false, true} {
			ev := New[rune](WithParallelModels(parallel))
			report, err := ev.Evaluate(ctx, []rune("ABC"), 'A', 0)
			require.ErrorIs(t, err, ErrInvalidProcessorCount)

			var pe *cost.ErrInvalidProcessorCount
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, 0, pe.P)
			assert.Equal(t, model.Report{}, report)
		}
	})

	t.Run("UnsupportedConflictRule", func(t *testing.T) {
		ev := New[rune](WithConflictRule(search.Arbitrary))
		_, err := ev.Evaluate(ctx, []rune("ABC"), 'A', 2)
		require.ErrorIs(t, err, ErrUnsupportedConflictRule)

		var ue *search.ErrUnsupportedConflictRule
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, search.Arbitrary, ue.Rule)
	})
}

func TestCheckConsistency(t *testing.T) {
	agree := [model.NumModels]model.Result{{Index: 2, Steps: 3}, {Index: 2, Steps: 3}, {Index: 2, Steps: 3}, {Index: 2, Steps: 1}}
	require.NoError(t, checkConsistency(agree))

	missing := [model.NumModels]model.Result{{Index: -1, Steps: 5}, {Index: 4, Steps: 3}, {Index: -1, Steps: 3}, {Index: -1, Steps: 2}}
	require.NoError(t, checkConsistency(missing))

	disagree := [model.NumModels]model.Result{{Index: 2, Steps: 3}, {Index: 2, Steps: 3}, {Index: 5, Steps: 3}, {Index: 2, Steps: 1}}
	err := checkConsistency(disagree)
	require.Error(t, err)
	assert.True(t, IsConsistencyViolation(err))

	var v *ErrConsistencyViolation
	require.True(t, errors.As(err, &v))
	assert.Equal(t, [model.NumModels]int{2, 2, 5, 2}, v.Indices)
	assert.Contains(t, err.Error(), "crew=5")
}

func TestEvaluateMetricsAndLogging(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	metrics := &BasicMetricsCollector{}

	ev := New[rune](WithLogger(logger), WithMetricsCollector(metrics))

	_, err := ev.Evaluate(ctx, []rune("ABCDEFGH"), 'D', 8)
	require.NoError(t, err)
	_, err = ev.Evaluate(ctx, []rune("ABCDEFGH"), 'Z', 8)
	require.NoError(t, err)
	_, err = ev.Evaluate(ctx, []rune("ABCDEFGH"), 'D', -2)
	require.Error(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(3), stats.EvaluateCount)
	assert.Equal(t, int64(1), stats.EvaluateErrors)
	assert.Equal(t, int64(1), stats.NotFoundCount)
	assert.Equal(t, int64(0), stats.ConsistencyFailures)

	out := buf.String()
	assert.Contains(t, out, `"msg":"evaluate completed","n":8,"p":8,"index":3,"seq_steps":4`)
	assert.Contains(t, out, `"msg":"model result","n":8,"p":8,"model":"CRCW","steps":1,"speedup":4`)
	assert.Contains(t, out, `"msg":"model result","n":8,"p":8,"model":"EREW","steps":4,"speedup":1`)
	assert.Contains(t, out, `"msg":"evaluate failed","n":8,"p":-2,"error":`)
}

func TestLoggerFieldHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, nil))

	logger.WithN(16).WithProcessors(4).WithModel(model.CREW).Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello","n":16,"p":4,"model":"CREW"`)

	buf.Reset()
	logger.LogEvaluate(context.Background(), 16, 4, nil, ErrInvalidProcessorCount)
	assert.Contains(t, buf.String(), `"n":16,"p":4`)
	assert.NotContains(t, buf.String(), "model result")
}

func TestNilOptions(t *testing.T) {
	ev := New[rune](nil, WithLogger(nil), WithMetricsCollector(nil))
	_, err := ev.Evaluate(context.Background(), []rune("AB"), 'B', 2)
	require.NoError(t, err)
}

func TestSpeedups(t *testing.T) {
	ctx := context.Background()

	trial, err := Speedups(ctx, symbols.NewSeededGenerator(42), 256, 256, true)
	require.NoError(t, err)
	require.Len(t, trial.Sequence, 256)
	require.NoError(t, symbols.Validate(trial.Sequence))

	k := trial.Report.Get(model.Sequential).Index
	require.GreaterOrEqual(t, k, 0)
	assert.Equal(t, trial.Target, trial.Sequence[k])
	assert.Equal(t, 9, trial.Report.Get(model.EREW).Steps)
	assert.Equal(t, 1, trial.Report.Get(model.CRCW).Steps)

	trial, err = Speedups(ctx, symbols.NewSeededGenerator(42), 16, 4, false)
	require.NoError(t, err)
	assert.Equal(t, symbols.AbsentSymbol, trial.Target)
	assert.Equal(t, model.NotFound, trial.Report.Get(model.CRCW).Index)

	_, err = Speedups(ctx, symbols.NewSeededGenerator(42), 0, 4, true)
	require.Error(t, err)

	_, err = Speedups(ctx, symbols.NewSeededGenerator(42), 8, 0, true)
	require.ErrorIs(t, err, ErrInvalidProcessorCount)
}
