package bench

import "time"

// simulatedClock provides us control over the exact time and duration to
// advance by.
type simulatedClock struct {
	t time.Time
}

func newSimulatedClock() *simulatedClock {
	return &simulatedClock{t: time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *simulatedClock) Now() time.Time { return c.t }

func (c *simulatedClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// steppingClock advances by a fixed step on every reading, so the cost
// of each timer access is deterministic.
type steppingClock struct {
	t    time.Time
	step time.Duration
}

func newSteppingClock(step time.Duration) *steppingClock {
	return &steppingClock{t: time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC), step: step}
}

func (c *steppingClock) Now() time.Time {
	now := c.t
	c.t = c.t.Add(c.step)
	return now
}

func intPtr(i int) *int    { return &i }
func boolPtr(b bool) *bool { return &b }
