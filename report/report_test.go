package report

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pramcost"
	"github.com/hupe1980/pramcost/blobstore"
	"github.com/hupe1980/pramcost/codec"
	"github.com/hupe1980/pramcost/model"
	"github.com/hupe1980/pramcost/sweep"
)

func scenario(t *testing.T) model.Report {
	t.Helper()
	r, err := pramcost.EvaluateString(context.Background(), "ABCDEFGH", 'D', 8)
	require.NoError(t, err)
	return r
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, scenario(t)))

	assert.Equal(t, ""+
		"Sequential -> index=3, steps=4, speedup=1.00\n"+
		"EREW       -> index=3, steps=4, speedup=1.00\n"+
		"CREW       -> index=3, steps=4, speedup=1.00\n"+
		"CRCW       -> index=3, steps=1, speedup=4.00\n",
		buf.String())
}

func TestWriteChart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteChart(&buf, scenario(t), 8))

	assert.Equal(t, ""+
		"PRAM Search Speedup (n=8, p=8)\n"+
		"Speedup vs Sequential (T_seq / T_model)\n"+
		"EREW |##       1.0\n"+
		"CREW |##       1.0\n"+
		"CRCW |######## 4.0\n",
		buf.String())
}

func TestWriteChartInfinite(t *testing.T) {
	r := model.Report{N: 0, P: 4}
	r.Results[model.EREW] = model.Entry{Model: model.EREW, Speedup: 0}
	r.Results[model.CREW] = model.Entry{Model: model.CREW, Speedup: 0}
	r.Results[model.CRCW] = model.Entry{Model: model.CRCW, Speedup: math.Inf(1)}

	var buf bytes.Buffer
	require.NoError(t, WriteChart(&buf, r, 0))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "CRCW |"+strings.Repeat("#", DefaultChartWidth)+" +Inf", lines[4])
	assert.Equal(t, "EREW |"+strings.Repeat(" ", DefaultChartWidth)+" 0.0", lines[2])
}

func TestWriteSweep(t *testing.T) {
	cfg := sweep.DefaultConfig()
	cfg.Sizes = []int{8}
	cfg.Processors = []int{1, 8}

	res, err := sweep.Run(context.Background(), cfg, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSweep(&buf, res))

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "S(crcw)")
	assert.Equal(t, "points=2 violations=0 failed=0", lines[3])
}

func TestWriteSweepWithError(t *testing.T) {
	res := &sweep.Result{
		Points: []sweep.Point{{N: 8, P: 2, Err: pramcost.ErrUnsupportedConflictRule}},
		Failed: 1,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSweep(&buf, res))
	assert.Contains(t, buf.String(), "error: unsupported CRCW conflict rule")
	assert.Contains(t, buf.String(), "failed=1")
}

func TestArchive(t *testing.T) {
	ctx := context.Background()
	r := scenario(t)

	for _, comp := range []codec.Compression{codec.CompressionNone, codec.CompressionLZ4, codec.CompressionZSTD} {
		t.Run(comp.String(), func(t *testing.T) {
			archive := NewArchive(blobstore.NewMemoryStore(), WithCodec(codec.JSON{}), WithCompression(comp))

			name, err := archive.Save(ctx, r)
			require.NoError(t, err)
			assert.Equal(t, "reports/n8-p8.pram", name)

			got, err := archive.Load(ctx, name)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, r, got[0])

			names, err := archive.List(ctx, "reports/")
			require.NoError(t, err)
			assert.Equal(t, []string{name}, names)
		})
	}
}

func TestArchiveLocal(t *testing.T) {
	ctx := context.Background()
	archive := NewArchive(blobstore.NewLocalStore(t.TempDir()))

	cfg := sweep.DefaultConfig()
	cfg.Sizes = []int{16, 64}
	cfg.Processors = []int{1, 2, 4, 8}
	res, err := sweep.Run(ctx, cfg, nil)
	require.NoError(t, err)

	require.NoError(t, archive.SaveAll(ctx, "sweeps/grid.pram", res.Reports()))

	got, err := archive.Load(ctx, "sweeps/grid.pram")
	require.NoError(t, err)
	assert.Equal(t, res.Reports(), got)

	_, err = archive.Load(ctx, "sweeps/missing.pram")
	require.ErrorIs(t, err, blobstore.ErrNotFound)
}
