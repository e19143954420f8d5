package bench

import (
	"fmt"
	"time"
)

// Iterator is a pull-based sequence of duration samples: it returns the
// next sample and true, or zero and false once exhausted. Sequences are
// lazy so stats never require materializing the sample set.
type Iterator func() (time.Duration, bool)

// SliceIterator adapts a slice of durations to an Iterator.
func SliceIterator(samples []time.Duration) Iterator {
	i := 0
	return func() (time.Duration, bool) {
		if i >= len(samples) {
			return 0, false
		}
		d := samples[i]
		i++
		return d, true
	}
}

// Summary aggregates a sequence of duration samples. Avg and Min are
// nil when the sequence was empty.
type Summary struct {
	Total time.Duration
	Count int
	Avg   *time.Duration
	Min   *time.Duration
}

// ComputeStats consumes the sequence in a single pass and returns its
// Summary. It is pure: no Run state is read or written.
func ComputeStats(next Iterator) Summary {
	var s Summary
	for {
		d, ok := next()
		if !ok {
			break
		}
		s.Total += d
		s.Count++
		if s.Min == nil || *s.Min > d {
			v := d
			s.Min = &v
		}
	}
	if s.Count > 0 {
		avg := s.Total / time.Duration(s.Count)
		s.Avg = &avg
	}
	return s
}

// PartSamples returns a lazy sequence of the named part's recorded
// durations across all iterations, in iteration order. Iterations
// without a sample for the part are skipped, not treated as zero.
func (r *Run) PartSamples(name string) (Iterator, error) {
	if _, ok := r.classes[name]; !ok {
		return nil, fmt.Errorf("part %q: %w", name, ErrUnknownPart)
	}
	indices := r.sortedIterations()
	i := 0
	return func() (time.Duration, bool) {
		for i < len(indices) {
			iteration := r.samples[indices[i]]
			i++
			if d, ok := iteration[name]; ok {
				return d, true
			}
		}
		return 0, false
	}, nil
}

// Section selects which reporting classes IterationTotals sums over.
type Section int

const (
	SectionInline Section = iota
	SectionSeparate
	SectionAll
)

// IterationTotals returns a lazy sequence with one value per iteration:
// the sum of that iteration's part durations across the selected
// classes. Iterations with no parts in the selection are skipped.
func (r *Run) IterationTotals(section Section) (Iterator, error) {
	switch section {
	case SectionInline, SectionSeparate, SectionAll:
	default:
		return nil, fmt.Errorf("section %d: %w", section, ErrInvalidSection)
	}
	included := func(c Class) bool {
		switch section {
		case SectionInline:
			return c == Inline
		case SectionSeparate:
			return c == Separate
		default:
			return true
		}
	}

	indices := r.sortedIterations()
	i := 0
	return func() (time.Duration, bool) {
		for i < len(indices) {
			iteration := r.samples[indices[i]]
			i++
			var total time.Duration
			found := false
			for name, d := range iteration {
				if included(r.classes[name]) {
					total += d
					found = true
				}
			}
			if found {
				return total, true
			}
		}
		return 0, false
	}, nil
}
