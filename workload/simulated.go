package workload

import (
	"time"

	"github.com/andressommerhoff/benchreport/stats"
)

// simulated sleeps for a duration drawn from a truncated normal
// distribution, standing in for real work with realistic jitter.
type simulated struct {
	meanMs   float64
	stddevMs float64
	minMs    float64
	maxMs    float64

	nextMs float64
}

func NewSimulated(meanMs, stddevMs, minMs, maxMs float64) *simulated {
	return &simulated{
		meanMs:   meanMs,
		stddevMs: stddevMs,
		minMs:    minMs,
		maxMs:    maxMs,
	}
}

func (w *simulated) Name() string { return "simulated" }

func (w *simulated) Setup() error {
	w.nextMs = stats.SampleTruncatedNormalDistribution(w.minMs, w.maxMs, w.meanMs, w.stddevMs)
	return nil
}

func (w *simulated) Core() error {
	time.Sleep(time.Duration(w.nextMs * float64(time.Millisecond)))
	return nil
}
