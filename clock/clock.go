package clock

import "time"

// Clock abstracts the benchmark timer so tests can control the exact
// readings. time.Time carries a monotonic reading on all supported
// platforms, so Sub between two readings is a monotonic nanosecond delta.
type Clock interface {
	Now() time.Time
}

type RealtimeClock struct{}

func NewRealtimeClock() RealtimeClock {
	return RealtimeClock{}
}

func (RealtimeClock) Now() time.Time { return time.Now() }
