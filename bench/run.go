// Package bench times repeated executions of a unit of work, optionally
// broken into named parts, and aggregates per-part and overall duration
// statistics. A Run is driven by exactly one goroutine at a time; there
// is no internal locking.
package bench

import (
	"sort"
	"time"

	"github.com/andressommerhoff/benchreport/clock"
	"github.com/andressommerhoff/benchreport/monitoring"
)

// Class assigns a part to one of two disjoint reporting classes. A part
// name keeps the class of its first use for the lifetime of the Run.
type Class int

const (
	// Inline parts are folded into the main loop's measured time.
	Inline Class = iota
	// Separate parts are reported independently of the main loop, e.g.
	// one-time setup cost.
	Separate
)

func (c Class) String() string {
	if c == Separate {
		return "separate"
	}
	return "inline"
}

type RunOptions struct {
	// Repeat is the default iteration count used when Begin is called
	// without an override. Defaults to 1.
	Repeat *int
	// Clock is the timer source. Defaults to clock.RealtimeClock.
	Clock clock.Clock
	// DisableGC states whether garbage collection is suppressed inside
	// measured scopes unless a scope overrides it. Defaults to true.
	DisableGC *bool
	// Collector, when set, receives every per-iteration overall duration
	// as it is recorded.
	Collector monitoring.Collector
}

// Run is one benchmarking session. All state is reset whenever a new
// loop of iterations begins.
type Run struct {
	Name string

	clock            clock.Clock
	defaultRepeat    int
	defaultDisableGC bool
	collector        monitoring.Collector

	// samples holds accumulated part durations keyed by iteration index
	// then part name. classes maps each part name to the reporting class
	// fixed by its first use.
	samples map[int]map[string]time.Duration
	classes map[string]Class

	// loopSamples holds the overall duration of each completed iteration
	// after the first boundary.
	loopSamples []time.Duration

	currentIteration int
	startLoop        time.Time
	lastLoop         time.Time

	// Run totals, computed when the loop finishes. Overhead is the
	// loop-driving time not attributable to any measured iteration body.
	TotalTime     time.Duration
	TotalIterTime time.Duration
	Overhead      time.Duration
}

func NewRun(name string, options *RunOptions) *Run {
	r := &Run{
		Name:             name,
		clock:            clock.NewRealtimeClock(),
		defaultRepeat:    1,
		defaultDisableGC: true,
	}
	if options != nil {
		if options.Repeat != nil {
			r.defaultRepeat = *options.Repeat
		}
		if options.Clock != nil {
			r.clock = options.Clock
		}
		if options.DisableGC != nil {
			r.defaultDisableGC = *options.DisableGC
		}
		r.collector = options.Collector
	}
	r.Reset()
	return r
}

// Reset returns the Run to a fresh empty state: sample stores, class
// registry, iteration counter, timing marks and totals are all cleared.
func (r *Run) Reset() {
	r.samples = map[int]map[string]time.Duration{}
	r.classes = map[string]Class{}
	r.loopSamples = nil
	r.currentIteration = 0
	r.startLoop = time.Time{}
	r.lastLoop = time.Time{}
	r.TotalTime = 0
	r.TotalIterTime = 0
	r.Overhead = 0
	if r.collector != nil {
		r.collector.Reset()
	}
}

// Begin resets the Run, optionally overriding the configured repeat
// count, records the loop-start timestamp and returns the iteration
// sequence. A repeat count of 0 yields an immediately-terminating loop.
func (r *Run) Begin(repeat ...int) *Loop {
	if len(repeat) > 0 {
		r.defaultRepeat = repeat[0]
	}
	r.Reset()
	r.startLoop = r.clock.Now()
	return &Loop{run: r}
}

// Iterations returns the current iteration counter: the number of
// completed Next calls of the active loop, or the final iteration count
// after a loop has been driven to completion.
func (r *Run) Iterations() int {
	return r.currentIteration
}

// LoopSamples returns a copy of the recorded per-iteration overall
// durations, in recording order.
func (r *Run) LoopSamples() []time.Duration {
	out := make([]time.Duration, len(r.loopSamples))
	copy(out, r.loopSamples)
	return out
}

// Parts returns the recorded part names of the given class, sorted.
func (r *Run) Parts(class Class) []string {
	var names []string
	for name, c := range r.classes {
		if c == class {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (r *Run) sortedIterations() []int {
	indices := make([]int, 0, len(r.samples))
	for i := range r.samples {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}

// Loop is the iteration sequence returned by Begin. It is an explicit
// state machine: the first Next call marks the loop boundary start, and
// every Next call records the elapsed time since the previous boundary
// before deciding whether another iteration follows.
//
//	loop := run.Begin(10)
//	for loop.Next() {
//		// measured body, optionally with run.Part(...) scopes
//	}
type Loop struct {
	run     *Run
	started bool
	done    bool
}

// Next advances the sequence. It returns true while iterations remain;
// the terminating call computes the run totals and returns false. The
// first boundary produces no duration sample since there is no previous
// boundary to measure from.
func (l *Loop) Next() bool {
	if l.done {
		return false
	}
	r := l.run
	if !l.started {
		l.started = true
		r.currentIteration = 0
		r.lastLoop = r.clock.Now()
	}

	now := r.clock.Now()
	delta := now.Sub(r.lastLoop)
	// The first boundary has no previous boundary to measure from, and
	// the terminating boundary's tail is driver overhead, so a completed
	// drive of N iterations records exactly max(N-1, 0) samples.
	if r.currentIteration > 0 && r.currentIteration < r.defaultRepeat {
		r.loopSamples = append(r.loopSamples, delta)
		if r.collector != nil {
			r.collector.Add(delta)
		}
	}
	r.lastLoop = now

	if r.currentIteration < r.defaultRepeat {
		r.currentIteration++
		return true
	}

	r.TotalTime = r.lastLoop.Sub(r.startLoop)
	var sum time.Duration
	for _, d := range r.loopSamples {
		sum += d
	}
	r.TotalIterTime = sum
	r.Overhead = r.TotalTime - r.TotalIterTime
	l.done = true
	return false
}

// Iteration returns the value yielded by the last successful Next call,
// counting from 1.
func (l *Loop) Iteration() int {
	return l.run.currentIteration
}
