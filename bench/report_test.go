package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReport_EndToEnd(t *testing.T) {
	clk := newSimulatedClock()
	r := NewRun("e2e", &RunOptions{Clock: clk, DisableGC: boolPtr(false)})

	loop := r.Begin(3)
	for loop.Next() {
		require.NoError(t, r.Scope(ScopeOptions{Class: Inline}, func() error {
			clk.advance(5 * time.Millisecond)
			return nil
		}))
		require.NoError(t, r.Scope(ScopeOptions{Class: Separate}, func() error {
			clk.advance(10 * time.Millisecond)
			return nil
		}))
	}

	rep := r.BuildReport()
	assert.Equal(t, "e2e", rep.Name)
	assert.Equal(t, 3, rep.Iterations)

	// Each iteration advances the clock 15ms, so the two recorded loop
	// samples are 15ms each and the whole loop spans 45ms.
	assert.Equal(t, 45*time.Millisecond, rep.TotalTime)
	assert.Equal(t, 30*time.Millisecond, rep.TotalIterTime)
	assert.Equal(t, 15*time.Millisecond, rep.Overhead)

	require.Len(t, rep.Rows, 6)

	wantRows := []struct {
		class   string
		section string
		totalMs float64
		count   int
		avgMs   float64
		minMs   float64
	}{
		{class: "inline", section: "setup", totalMs: 15, count: 3, avgMs: 5, minMs: 5},
		{class: "inline", section: RowSubtotal, totalMs: 15, count: 3, avgMs: 5, minMs: 5},
		{class: "separate", section: "core", totalMs: 30, count: 3, avgMs: 10, minMs: 10},
		{class: "separate", section: RowSubtotal, totalMs: 30, count: 3, avgMs: 10, minMs: 10},
		{class: ClassCombined, section: RowTotal, totalMs: 45, count: 3, avgMs: 15, minMs: 15},
		{class: ClassLoop, section: RowTotal, totalMs: 30, count: 2, avgMs: 15, minMs: 15},
	}
	for i, want := range wantRows {
		row := rep.Rows[i]
		assert.Equal(t, want.class, row.Class, "row %d class", i)
		assert.Equal(t, want.section, row.Section, "row %d section", i)
		assert.InDelta(t, want.totalMs, row.TotalMs, 1e-9, "row %d total", i)
		assert.Equal(t, want.count, row.Count, "row %d count", i)
		require.NotNil(t, row.AvgMs, "row %d avg", i)
		assert.InDelta(t, want.avgMs, *row.AvgMs, 1e-9, "row %d avg", i)
		require.NotNil(t, row.MinMs, "row %d min", i)
		assert.InDelta(t, want.minMs, *row.MinMs, 1e-9, "row %d min", i)
	}
}

func TestBuildReport_WithoutPartsHasOnlyLoopRow(t *testing.T) {
	r := NewRun("bare", &RunOptions{Clock: newSteppingClock(time.Millisecond)})

	loop := r.Begin(3)
	for loop.Next() {
	}

	rep := r.BuildReport()
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, ClassLoop, rep.Rows[0].Class)
	assert.Equal(t, RowTotal, rep.Rows[0].Section)
	assert.Equal(t, 2, rep.Rows[0].Count)
}

func TestBuildReport_IsRecomputedFromCurrentSamples(t *testing.T) {
	r, clk := newManualRun()

	require.NoError(t, r.Part("a", func() error {
		clk.advance(10 * time.Millisecond)
		return nil
	}))
	first := r.BuildReport()

	require.NoError(t, r.Part("a", func() error {
		clk.advance(10 * time.Millisecond)
		return nil
	}))
	second := r.BuildReport()

	assert.InDelta(t, 10, first.Rows[0].TotalMs, 1e-9)
	assert.InDelta(t, 20, second.Rows[0].TotalMs, 1e-9)
}

func TestReport_OverheadPercent(t *testing.T) {
	rep := &Report{TotalTime: 0, Overhead: 0}
	assert.Equal(t, 0.0, rep.OverheadPercent())

	rep = &Report{TotalTime: 100 * time.Millisecond, Overhead: 25 * time.Millisecond}
	assert.InDelta(t, 25.0, rep.OverheadPercent(), 1e-9)
}
