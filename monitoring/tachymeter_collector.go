package monitoring

import (
	"time"

	"github.com/jamiealquiza/tachymeter"
)

// tachymeterCollector uses the jamiealquiza/tachymeter library to keep a
// sliding window of the most recent iteration durations. Use this for
// long-running benchmarks where only the recent behaviour matters.
type tachymeterCollector struct {
	tach *tachymeter.Tachymeter
	n    int
}

func NewTachymeterCollector(window int) *tachymeterCollector {
	return &tachymeterCollector{tach: tachymeter.New(&tachymeter.Config{
		Size: window,
	})}
}

func (c *tachymeterCollector) All() []float64 {
	// Tachymeter only exposes calculated metrics, not raw samples.
	return nil
}

func (c *tachymeterCollector) Len() int {
	return c.n
}

func (c *tachymeterCollector) Add(t time.Duration) {
	c.tach.AddTime(t)
	c.n++
}

func (c *tachymeterCollector) Aggregate() *Aggregation {
	calc := c.tach.Calc()
	return &Aggregation{
		P50: calc.Time.P50,
		P75: calc.Time.P75,
		P95: calc.Time.P95,
	}
}

func (c *tachymeterCollector) Reset() {
	c.tach.Reset()
	c.n = 0
}
