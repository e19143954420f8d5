package logging

import (
	"log"

	"github.com/andressommerhoff/benchreport/bench"
)

// stdoutLogger logs the output to standard output.
type stdoutLogger struct{}

func NewStdoutLogger() *stdoutLogger {
	return &stdoutLogger{}
}

func (*stdoutLogger) LogIterationTime(string, float64) {
	// Do not log non-aggregated iteration times to stdout.
	return
}

func (*stdoutLogger) LogAggregateIterationTimes(run string, p50 float64, p75 float64, p95 float64) {
	log.Printf("[%s] p50: %.6f, p75: %.6f, p95: %.6f\n", run, p50, p75, p95)
}

func (*stdoutLogger) LogReportRow(run string, row bench.Row) {
	avg, min := -1.0, -1.0
	if row.AvgMs != nil {
		avg = *row.AvgMs
	}
	if row.MinMs != nil {
		min = *row.MinMs
	}
	log.Printf("[%s] %s/%s: total: %.3fms, n: %d, avg: %.3fms, min: %.3fms\n",
		run, row.Class, row.Section, row.TotalMs, row.Count, avg, min)
}

func (*stdoutLogger) LogRunTotals(run string, totalMs, iterMs, overheadMs, pct float64) {
	log.Printf("[%s] total: %.3fms, loops: %.3fms, overhead: %.3fms (%.1f%%)\n",
		run, totalMs, iterMs, overheadMs, pct)
}
