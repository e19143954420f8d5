package bench

import "time"

// Report row class and section labels that are not part names.
const (
	ClassCombined = "combined"
	ClassLoop     = "loop"
	RowSubtotal   = "SUBTOTAL"
	RowTotal      = "TOTAL"
)

// Row is one line of a report: a Summary tagged with its reporting
// class and section, with durations converted to milliseconds. AvgMs
// and MinMs are nil when no samples contributed.
type Row struct {
	Class   string
	Section string
	TotalMs float64
	Count   int
	AvgMs   *float64
	MinMs   *float64
}

// Report is the structured output of a completed run: per-part rows
// grouped by reporting class, a SUBTOTAL row per class, a combined
// TOTAL row across both classes, a loop TOTAL row over the recorded
// per-iteration overall durations, and the run totals.
type Report struct {
	Name       string
	Iterations int
	Rows       []Row

	// LoopSamples are the raw per-iteration overall durations, in
	// recording order, at nanosecond resolution.
	LoopSamples []time.Duration

	TotalTime     time.Duration
	TotalIterTime time.Duration
	Overhead      time.Duration
}

// OverheadPercent returns Overhead as a percentage of TotalTime, or 0
// if the loop never completed.
func (rep *Report) OverheadPercent() float64 {
	if rep.TotalTime == 0 {
		return 0
	}
	return float64(rep.Overhead) / float64(rep.TotalTime) * 100
}

// BuildReport assembles the report from the current samples. It is
// recomputed from scratch on every call; nothing is cached.
func (r *Run) BuildReport() *Report {
	rep := &Report{
		Name:          r.Name,
		Iterations:    r.currentIteration,
		LoopSamples:   r.LoopSamples(),
		TotalTime:     r.TotalTime,
		TotalIterTime: r.TotalIterTime,
		Overhead:      r.Overhead,
	}

	if len(r.classes) > 0 {
		for _, class := range []Class{Inline, Separate} {
			for _, name := range r.Parts(class) {
				samples, err := r.PartSamples(name)
				if err != nil {
					// Parts() only returns registered names.
					panic(err)
				}
				rep.Rows = append(rep.Rows, newRow(class.String(), name, ComputeStats(samples)))
			}
			section := SectionInline
			if class == Separate {
				section = SectionSeparate
			}
			totals, err := r.IterationTotals(section)
			if err != nil {
				panic(err)
			}
			rep.Rows = append(rep.Rows, newRow(class.String(), RowSubtotal, ComputeStats(totals)))
		}

		combined, err := r.IterationTotals(SectionAll)
		if err != nil {
			panic(err)
		}
		rep.Rows = append(rep.Rows, newRow(ClassCombined, RowTotal, ComputeStats(combined)))
	}

	rep.Rows = append(rep.Rows, newRow(ClassLoop, RowTotal, ComputeStats(SliceIterator(r.loopSamples))))
	return rep
}

func newRow(class, section string, s Summary) Row {
	row := Row{
		Class:   class,
		Section: section,
		TotalMs: toMilliseconds(s.Total),
		Count:   s.Count,
	}
	if s.Avg != nil {
		v := toMilliseconds(*s.Avg)
		row.AvgMs = &v
	}
	if s.Min != nil {
		v := toMilliseconds(*s.Min)
		row.MinMs = &v
	}
	return row
}

// Samples are stored at the timer's native nanosecond resolution;
// conversion to the millisecond reporting unit happens only here.
func toMilliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
