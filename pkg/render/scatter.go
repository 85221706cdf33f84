package render

import (
	"github.com/m-mizutani/goerr/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"statplot/pkg/dataprep"
	"statplot/pkg/stats"
)

// PointRadius is the radius of a scatter point.
var PointRadius = vg.Points(5)

// Scatter plots every group as its own colored series with a legend entry.
// Both axes span the data extent widened by pad on each side.
func Scatter(groups []dataprep.PointGroup, o Options, pad float64) (*plot.Plot, error) {
	var xs, ys []float64
	for _, g := range groups {
		for _, pt := range g.Points {
			xs = append(xs, pt.X)
			ys = append(ys, pt.Y)
		}
	}
	xMin, xMax, err := stats.PaddedExtent(xs, pad)
	if err != nil {
		return nil, goerr.Wrap(err, "no points to plot")
	}
	yMin, yMax, err := stats.PaddedExtent(ys, pad)
	if err != nil {
		return nil, goerr.Wrap(err, "no points to plot")
	}

	p := newPlot(o)
	p.Legend.Top = true

	for i, g := range groups {
		pts := make(plotter.XYs, len(g.Points))
		for j, pt := range g.Points {
			pts[j].X = pt.X
			pts[j].Y = pt.Y
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to build scatter series", goerr.V("category", g.Category))
		}
		s.Color = plotutil.Color(i)
		s.Shape = draw.CircleGlyph{}
		s.Radius = PointRadius
		p.Add(s)
		p.Legend.Add(g.Category, s)
	}

	p.X.Min, p.X.Max = xMin, xMax
	p.Y.Min, p.Y.Max = yMin, yMax
	return p, nil
}
