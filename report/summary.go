package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/hupe1980/pramcost/model"
	"github.com/hupe1980/pramcost/sweep"
)

// WriteSummary prints one line per model:
//
//	Sequential -> index=3, steps=4, speedup=1.00
func WriteSummary(w io.Writer, r model.Report) error {
	for _, e := range r.Entries() {
		if _, err := fmt.Fprintf(w, "%-10s -> index=%d, steps=%d, speedup=%.2f\n",
			e.Model, e.Index, e.Steps, e.Speedup); err != nil {
			return err
		}
	}
	return nil
}

// DefaultChartWidth is the bar length of the largest speedup.
const DefaultChartWidth = 40

// WriteChart draws a horizontal bar chart of the three PRAM speedups. The
// largest finite speedup spans width characters; an infinite speedup is drawn
// at full width.
func WriteChart(w io.Writer, r model.Report, width int) error {
	if width <= 0 {
		width = DefaultChartWidth
	}

	pram := []model.Name{model.EREW, model.CREW, model.CRCW}

	maxSpeedup := 0.0
	for _, name := range pram {
		if s := r.Get(name).Speedup; !math.IsInf(s, 1) && s > maxSpeedup {
			maxSpeedup = s
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "PRAM Search Speedup (n=%d, p=%d)\n", r.N, r.P)
	b.WriteString("Speedup vs Sequential (T_seq / T_model)\n")
	for _, name := range pram {
		s := r.Get(name).Speedup
		bar := width
		if !math.IsInf(s, 1) {
			bar = 0
			if maxSpeedup > 0 {
				bar = int(math.Round(s / maxSpeedup * float64(width)))
			}
		}
		fmt.Fprintf(&b, "%-4s |%s%s %.1f\n", name, strings.Repeat("#", bar), strings.Repeat(" ", width-bar), s)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSweep prints a sweep as an aligned table, one row per grid point.
func WriteSweep(w io.Writer, res *sweep.Result) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "n\tp\tindex\tseq\terew\tcrew\tcrcw\tS(erew)\tS(crcw)\t")
	for _, pt := range res.Points {
		if pt.Err != nil {
			fmt.Fprintf(tw, "%d\t%d\terror: %v\t\t\t\t\t\t\t\n", pt.N, pt.P, pt.Err)
			continue
		}
		r := pt.Report
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%d\t%.2f\t%.2f\t\n",
			pt.N, pt.P,
			r.Get(model.Sequential).Index,
			r.Get(model.Sequential).Steps,
			r.Get(model.EREW).Steps,
			r.Get(model.CREW).Steps,
			r.Get(model.CRCW).Steps,
			r.Get(model.EREW).Speedup,
			r.Get(model.CRCW).Speedup,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "points=%d violations=%d failed=%d\n", len(res.Points), res.Violations, res.Failed)
	return err
}
