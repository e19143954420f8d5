package monitoring

import "time"

// Aggregation summarises the iteration durations seen by a collector.
type Aggregation struct {
	P50 time.Duration // P50 is the 50th percentile iteration duration.
	P75 time.Duration // P75 is the 75th percentile iteration duration.
	P95 time.Duration // P95 is the 95th percentile iteration duration.
}

// Collector receives each per-iteration duration as it is recorded,
// allowing percentiles to be observed while a long run is in flight.
type Collector interface {
	All() []float64          // All gets all the durations collected, in seconds.
	Len() int                // Len gets the number of durations collected.
	Add(t time.Duration)     // Add sends a new iteration duration to the collector.
	Aggregate() *Aggregation // Aggregate calculates percentiles over the collected durations.
	Reset()                  // Reset resets the state of the collector for reuse.
}
