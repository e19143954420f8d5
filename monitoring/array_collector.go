package monitoring

import (
	"fmt"
	"sync"
	"time"

	"github.com/montanaflynn/stats"
)

// arrayCollector captures every iteration duration it is given. As storage
// and computation are both O(n), this is meant for runs of bounded length
// where the full sample set should survive until reporting.
type arrayCollector struct {
	durationsSeconds    []float64
	durationsSecondsMux *sync.Mutex
}

func NewArrayCollector() *arrayCollector {
	return &arrayCollector{
		durationsSeconds:    []float64{},
		durationsSecondsMux: &sync.Mutex{},
	}
}

func (c *arrayCollector) All() []float64 {
	c.durationsSecondsMux.Lock()
	defer c.durationsSecondsMux.Unlock()
	times := make([]float64, len(c.durationsSeconds))
	copy(times, c.durationsSeconds)
	return times
}

func (c *arrayCollector) Len() int {
	c.durationsSecondsMux.Lock()
	defer c.durationsSecondsMux.Unlock()
	return len(c.durationsSeconds)
}

func (c *arrayCollector) Add(t time.Duration) {
	c.durationsSecondsMux.Lock()
	c.durationsSeconds = append(c.durationsSeconds, float64(t)/float64(time.Second))
	c.durationsSecondsMux.Unlock()
}

func (c *arrayCollector) Aggregate() *Aggregation {
	// The stats package copies the input array, so the mutex must be held
	// while calculations are being made.
	c.durationsSecondsMux.Lock()
	defer c.durationsSecondsMux.Unlock()

	// The stats package requires input arrays to be non-empty.
	if len(c.durationsSeconds) == 0 {
		return &Aggregation{
			P50: 0,
			P75: 0,
			P95: 0,
		}
	}

	p50, err := stats.Median(c.durationsSeconds)
	if err != nil {
		panic(fmt.Errorf("unexpected err in arrayCollector.Aggregate() while calculating p50: %w", err))
	}
	p75, err := stats.Percentile(c.durationsSeconds, 75)
	if err != nil {
		panic(fmt.Errorf("unexpected err in arrayCollector.Aggregate() while calculating p75: %w", err))
	}
	p95, err := stats.Percentile(c.durationsSeconds, 95)
	if err != nil {
		panic(fmt.Errorf("unexpected err in arrayCollector.Aggregate() while calculating p95: %w", err))
	}

	return &Aggregation{
		P50: time.Duration(p50 * float64(time.Second)),
		P75: time.Duration(p75 * float64(time.Second)),
		P95: time.Duration(p95 * float64(time.Second)),
	}
}

func (c *arrayCollector) Reset() {
	c.durationsSecondsMux.Lock()
	c.durationsSeconds = []float64{}
	c.durationsSecondsMux.Unlock()
}
