package reporting

import (
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotIterations saves a PNG line chart of the per-iteration overall
// durations, in milliseconds, to the given path.
func PlotIterations(samples []time.Duration, title, path string) error {
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = title
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Duration (ms)"

	points := make(plotter.XYs, len(samples))
	for i, d := range samples {
		points[i].X = float64(i + 1)
		points[i].Y = ms(d)
	}

	if err := plotutil.AddLinePoints(p, "Iteration duration", points); err != nil {
		return err
	}

	return p.Save(10*vg.Inch, 5*vg.Inch, path)
}
