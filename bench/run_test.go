package bench

import (
	"testing"
	"time"

	"github.com/andressommerhoff/benchreport/monitoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop_YieldsExactlyNIterations(t *testing.T) {
	tests := []struct {
		name   string
		repeat int
	}{
		{name: "Zero iterations", repeat: 0},
		{name: "One iteration", repeat: 1},
		{name: "Five iterations", repeat: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRun("run", &RunOptions{Clock: newSteppingClock(time.Millisecond)})

			var yielded []int
			loop := r.Begin(tt.repeat)
			for loop.Next() {
				yielded = append(yielded, loop.Iteration())
			}

			require.Len(t, yielded, tt.repeat)
			for i, v := range yielded {
				assert.Equal(t, i+1, v)
			}
			assert.False(t, loop.Next(), "a terminated loop must stay terminated")
		})
	}
}

func TestLoop_RecordsMaxNMinusOneSamples(t *testing.T) {
	tests := []struct {
		name        string
		repeat      int
		wantSamples int
	}{
		{name: "N=0 records nothing", repeat: 0, wantSamples: 0},
		{name: "N=1 records nothing", repeat: 1, wantSamples: 0},
		{name: "N=5 records four samples", repeat: 5, wantSamples: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRun("run", &RunOptions{Clock: newSteppingClock(time.Millisecond)})

			loop := r.Begin(tt.repeat)
			for loop.Next() {
			}

			assert.Len(t, r.LoopSamples(), tt.wantSamples)
		})
	}
}

func TestLoop_RunTotalsAndOverhead(t *testing.T) {
	step := time.Millisecond
	r := NewRun("run", &RunOptions{Clock: newSteppingClock(step)})

	loop := r.Begin(2)
	for loop.Next() {
	}

	// Clock readings: one in Begin, two in the first Next and one in each
	// of the two remaining Next calls, each advancing the clock one step.
	assert.Equal(t, 4*step, r.TotalTime)
	assert.Equal(t, 1*step, r.TotalIterTime)
	assert.Equal(t, r.TotalTime-r.TotalIterTime, r.Overhead)
	assert.True(t, r.TotalTime >= r.TotalIterTime)
}

func TestLoop_ZeroRepeatTerminatesImmediately(t *testing.T) {
	r := NewRun("run", &RunOptions{Clock: newSteppingClock(time.Millisecond)})

	loop := r.Begin(0)
	assert.False(t, loop.Next())
	assert.Empty(t, r.LoopSamples())
	assert.Equal(t, 0, r.Iterations())
	assert.Equal(t, r.TotalTime-r.TotalIterTime, r.Overhead)
}

func TestBegin_OverridesRepeatAndResetsState(t *testing.T) {
	r := NewRun("run", &RunOptions{
		Repeat: intPtr(3),
		Clock:  newSteppingClock(time.Millisecond),
	})

	loop := r.Begin()
	for loop.Next() {
	}
	assert.Equal(t, 3, r.Iterations())
	assert.Len(t, r.LoopSamples(), 2)

	// A fresh Begin with an override must clear the previous samples.
	loop = r.Begin(5)
	for loop.Next() {
	}
	assert.Equal(t, 5, r.Iterations())
	assert.Len(t, r.LoopSamples(), 4)
}

func TestRun_CollectorReceivesIterationDurations(t *testing.T) {
	collector := monitoring.NewArrayCollector()
	r := NewRun("run", &RunOptions{
		Clock:     newSteppingClock(time.Millisecond),
		Collector: collector,
	})

	loop := r.Begin(5)
	for loop.Next() {
	}

	assert.Equal(t, 4, collector.Len())
}
