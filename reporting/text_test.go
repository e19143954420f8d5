package reporting

import (
	"strings"
	"testing"
	"time"

	"github.com/andressommerhoff/benchreport/bench"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestText_RendersHeaderAndRows(t *testing.T) {
	rep := &bench.Report{
		Name:          "demo",
		Iterations:    3,
		LoopSamples:   []time.Duration{15 * time.Millisecond, 15 * time.Millisecond},
		TotalTime:     45 * time.Millisecond,
		TotalIterTime: 30 * time.Millisecond,
		Overhead:      15 * time.Millisecond,
		Rows: []bench.Row{
			{Class: "inline", Section: "setup", TotalMs: 15, Count: 3, AvgMs: floatPtr(5), MinMs: floatPtr(5)},
			{Class: bench.ClassLoop, Section: bench.RowTotal, TotalMs: 30, Count: 2, AvgMs: floatPtr(15), MinMs: floatPtr(15)},
		},
	}

	var out strings.Builder
	require.NoError(t, Text(&out, rep))
	text := out.String()

	assert.Contains(t, text, "Report demo")
	assert.Contains(t, text, "n:3 total:45.000ms loops:30.000ms overhead:15.000ms (33.3%)")
	assert.Contains(t, text, "first 10 loop measures:")
	assert.Contains(t, text, "STATS IN MS")
	assert.Contains(t, text, "inline")
	assert.Contains(t, text, "setup")
	assert.Contains(t, text, "TOTAL")
}

func TestText_RendersDashForAbsentStats(t *testing.T) {
	rep := &bench.Report{
		Name: "empty",
		Rows: []bench.Row{
			{Class: bench.ClassLoop, Section: bench.RowTotal, TotalMs: 0, Count: 0},
		},
	}

	var out strings.Builder
	require.NoError(t, Text(&out, rep))

	assert.Contains(t, out.String(), "-", "empty summaries render avg and min as a dash")
}

func TestText_CapsRawSamples(t *testing.T) {
	samples := make([]time.Duration, 25)
	for i := range samples {
		samples[i] = time.Millisecond
	}
	rep := &bench.Report{Name: "long", LoopSamples: samples}

	var out strings.Builder
	require.NoError(t, Text(&out, rep))

	line := ""
	for _, l := range strings.Split(out.String(), "\n") {
		if strings.HasPrefix(l, "first 10 loop measures:") {
			line = l
		}
	}
	require.NotEmpty(t, line)
	assert.Equal(t, 10, strings.Count(line, "1ms"))
}
