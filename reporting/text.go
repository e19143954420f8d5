// Package reporting renders finished benchmark reports for humans: a
// plain-text table and an optional PNG chart of iteration durations.
package reporting

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/andressommerhoff/benchreport/bench"
)

const rule = "----------------------------------------------------------------------------"

// firstSamples caps how many raw loop durations the header shows.
const firstSamples = 10

// Text writes a multi-line human-readable report: iteration count, run
// totals with overhead percentage, the first raw loop durations and the
// full stats table in milliseconds.
func Text(w io.Writer, rep *bench.Report) error {
	var b strings.Builder

	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Report %s\n", rep.Name)
	fmt.Fprintf(&b, "n:%d total:%.3fms loops:%.3fms overhead:%.3fms (%.1f%%)\n",
		rep.Iterations,
		ms(rep.TotalTime),
		ms(rep.TotalIterTime),
		ms(rep.Overhead),
		rep.OverheadPercent(),
	)

	samples := rep.LoopSamples
	if len(samples) > firstSamples {
		samples = samples[:firstSamples]
	}
	fmt.Fprintf(&b, "first %d loop measures: %v\n", firstSamples, samples)

	b.WriteString("STATS IN MS\n")
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CLASS\tSECTION\tTOTAL\tN\tAVG\tMIN")
	for _, row := range rep.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%.3f\t%d\t%s\t%s\n",
			row.Class, row.Section, row.TotalMs, row.Count,
			formatOptional(row.AvgMs), formatOptional(row.MinMs))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	b.WriteString(rule + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func formatOptional(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.3f", *v)
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
