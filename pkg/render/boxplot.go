package render

import (
	"image/color"

	"github.com/m-mizutani/goerr/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"statplot/pkg/stats"
)

// BandWidth is the share of one category slot covered by a box.
const BandWidth = 0.9

// Box draws one box-and-whisker glyph from a Summary. It implements
// plot.Plotter and plot.DataRanger.
type Box struct {
	stats.Summary

	// Location is the box center on the x axis, in data units.
	Location float64
	// Width is the box width in data units.
	Width float64

	FillColor    color.Color
	BoxStyle     draw.LineStyle
	WhiskerStyle draw.LineStyle
	MedianStyle  draw.LineStyle
}

// NewBox returns a white box with black strokes and a 2pt median line.
func NewBox(s stats.Summary, location float64) *Box {
	black := color.Black
	return &Box{
		Summary:      s,
		Location:     location,
		Width:        BandWidth,
		FillColor:    color.White,
		BoxStyle:     draw.LineStyle{Color: black, Width: vg.Points(1)},
		WhiskerStyle: draw.LineStyle{Color: black, Width: vg.Points(1)},
		MedianStyle:  draw.LineStyle{Color: black, Width: vg.Points(2)},
	}
}

// Plot implements the plot.Plotter interface. The whisker spans the fences
// and is drawn first so that the box covers its middle part.
func (b *Box) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	x := trX(b.Location)
	left := trX(b.Location - b.Width/2)
	right := trX(b.Location + b.Width/2)
	q1, q3 := trY(b.Q1), trY(b.Q3)
	median := trY(b.Median)

	whisker := []vg.Point{{X: x, Y: trY(b.LowerFence)}, {X: x, Y: trY(b.UpperFence)}}
	c.StrokeLines(b.WhiskerStyle, c.ClipLinesY(whisker)...)

	box := []vg.Point{{X: left, Y: q1}, {X: right, Y: q1}, {X: right, Y: q3}, {X: left, Y: q3}}
	if fill := c.ClipPolygonY(box); len(fill) > 0 {
		c.FillPolygon(b.FillColor, fill)
	}
	c.StrokeLines(b.BoxStyle, c.ClipLinesY(append(box, box[0]))...)

	medianLine := []vg.Point{{X: left, Y: median}, {X: right, Y: median}}
	c.StrokeLines(b.MedianStyle, c.ClipLinesY(medianLine)...)
}

// DataRange implements the plot.DataRanger interface.
func (b *Box) DataRange() (xmin, xmax, ymin, ymax float64) {
	return b.Location - 0.5, b.Location + 0.5, b.LowerFence, b.UpperFence
}

// BoxChart collects (category, Summary) pairs and lays them out as one box
// per category on a nominal x axis, in the order they were added.
type BoxChart struct {
	opts       Options
	categories []string
	boxes      []*Box

	yRange     bool
	yMin, yMax float64
}

func NewBoxChart(o Options) *BoxChart {
	return &BoxChart{opts: o}
}

// Add appends a box for category.
func (bc *BoxChart) Add(category string, s stats.Summary) {
	bc.boxes = append(bc.boxes, NewBox(s, float64(len(bc.boxes))))
	bc.categories = append(bc.categories, category)
}

// SetYRange fixes the y axis domain. Glyph parts outside of it are clipped.
func (bc *BoxChart) SetYRange(min, max float64) {
	bc.yRange = true
	bc.yMin, bc.yMax = min, max
}

// Len returns the number of boxes added so far.
func (bc *BoxChart) Len() int { return len(bc.boxes) }

// Plot builds the chart.
func (bc *BoxChart) Plot() (*plot.Plot, error) {
	if len(bc.boxes) == 0 {
		return nil, goerr.New("box chart has no categories")
	}
	if bc.yRange && bc.yMin >= bc.yMax {
		return nil, goerr.New("invalid y range",
			goerr.V("min", bc.yMin),
			goerr.V("max", bc.yMax))
	}

	p := newPlot(bc.opts)
	for _, b := range bc.boxes {
		p.Add(b)
	}
	p.NominalX(bc.categories...)
	p.X.Min, p.X.Max = -0.5, float64(len(bc.boxes))-0.5
	if bc.yRange {
		p.Y.Min, p.Y.Max = bc.yMin, bc.yMax
	}
	return p, nil
}
