package logging

import "github.com/andressommerhoff/benchreport/bench"

type Logger interface {
	LogIterationTime(run string, t float64)                            // Takes in an iteration duration in seconds.
	LogAggregateIterationTimes(run string, p50, p75, p95 float64)      // Takes in percentiles in seconds.
	LogReportRow(run string, row bench.Row)                            // Takes in one stats row of a finished report.
	LogRunTotals(run string, totalMs, iterMs, overheadMs, pct float64) // Takes in the run totals in milliseconds.
}

// noopLogger does not perform any logging.
type noopLogger struct{}

func NewNoopLogger() *noopLogger {
	return &noopLogger{}
}

func (*noopLogger) LogIterationTime(string, float64) {
	return
}

func (*noopLogger) LogAggregateIterationTimes(string, float64, float64, float64) {
	return
}

func (*noopLogger) LogReportRow(string, bench.Row) {
	return
}

func (*noopLogger) LogRunTotals(string, float64, float64, float64, float64) {
	return
}
