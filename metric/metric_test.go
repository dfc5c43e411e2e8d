package metric

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pramcost"
)

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewPrometheusCollector(reg)
	require.NoError(t, err)

	ev := pramcost.New[rune](pramcost.WithMetricsCollector(collector))
	ctx := context.Background()

	_, err = ev.Evaluate(ctx, []rune("ABCDEFGH"), 'D', 8)
	require.NoError(t, err)
	_, err = ev.Evaluate(ctx, []rune("ABCDEFGH"), 'D', 0)
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.evaluations.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.evaluations.WithLabelValues("error")))
	assert.Equal(t, 4.0, testutil.ToFloat64(collector.steps.WithLabelValues("EREW")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.steps.WithLabelValues("CRCW")))
	assert.Equal(t, 4.0, testutil.ToFloat64(collector.speedup.WithLabelValues("CRCW")))
	assert.Equal(t, 0.0, testutil.ToFloat64(collector.violations))

	collector.RecordConsistencyViolation(8, 8)
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.violations))

	count, err := testutil.GatherAndCount(reg, "pramcost_evaluation_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPrometheusCollectorDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusCollector(reg)
	require.NoError(t, err)

	_, err = NewPrometheusCollector(reg)
	require.Error(t, err)
}
