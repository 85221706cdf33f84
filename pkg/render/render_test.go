package render_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"statplot/pkg/data"
	"statplot/pkg/dataprep"
	"statplot/pkg/render"
	"statplot/pkg/stats"
)

func samplePoints() []dataprep.PointGroup {
	return dataprep.GroupPoints([]data.Point{
		{Category: "setosa", X: 1.4, Y: 0.2},
		{Category: "setosa", X: 1.3, Y: 0.2},
		{Category: "versicolor", X: 4.7, Y: 1.4},
		{Category: "versicolor", X: 4.5, Y: 1.5},
		{Category: "virginica", X: 6.0, Y: 2.5},
	})
}

func TestScatter(t *testing.T) {
	o := render.DefaultOptions()
	o.XLabel = "Petal Length"
	o.YLabel = "Petal Width"

	t.Run("axes are padded around the data", func(t *testing.T) {
		p, err := render.Scatter(samplePoints(), o, 0.5)
		gt.NoError(t, err)
		gt.Equal(t, p.X.Min, 0.8)
		gt.Equal(t, p.X.Max, 6.5)
		gt.Equal(t, p.Y.Min, 0.2-0.5)
		gt.Equal(t, p.Y.Max, 3.0)
		gt.Equal(t, p.X.Label.Text, "Petal Length")
	})

	t.Run("renders png", func(t *testing.T) {
		p, err := render.Scatter(samplePoints(), o, 0.5)
		gt.NoError(t, err)

		var buf bytes.Buffer
		gt.NoError(t, render.Write(p, o, &buf, "png"))
		gt.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
	})

	t.Run("no points", func(t *testing.T) {
		_, err := render.Scatter(nil, o, 0.5)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, stats.ErrEmptyInput))
	})
}

func TestBoxChart(t *testing.T) {
	o := render.DefaultOptions()
	o.XLabel = "Species"
	o.YLabel = "Petal Length"

	t.Run("one box per added category", func(t *testing.T) {
		bc := render.NewBoxChart(o)
		bc.Add("setosa", stats.Summary{Q1: 1.4, Median: 1.5, Q3: 1.575, IQR: 0.175, LowerFence: 1.1375, UpperFence: 1.8375})
		bc.Add("versicolor", stats.Summary{Q1: 4, Median: 4.35, Q3: 4.6, IQR: 0.6, LowerFence: 3.1, UpperFence: 5.5})
		bc.SetYRange(0.5, 7.4)
		gt.Equal(t, bc.Len(), 2)

		p, err := bc.Plot()
		gt.NoError(t, err)
		gt.Equal(t, p.X.Min, -0.5)
		gt.Equal(t, p.X.Max, 1.5)
		gt.Equal(t, p.Y.Min, 0.5)
		gt.Equal(t, p.Y.Max, 7.4)

		var buf bytes.Buffer
		gt.NoError(t, render.Write(p, o, &buf, "svg"))
		gt.S(t, buf.String()).Contains("<svg")
	})

	t.Run("fences outside the y range are clipped", func(t *testing.T) {
		bc := render.NewBoxChart(o)
		bc.Add("wide", stats.Summary{Q1: 0, Median: 5, Q3: 10, IQR: 10, LowerFence: -15, UpperFence: 25})
		bc.SetYRange(-1, 11)

		p, err := bc.Plot()
		gt.NoError(t, err)
		var buf bytes.Buffer
		gt.NoError(t, render.Write(p, o, &buf, "png"))
		gt.True(t, buf.Len() > 0)
	})

	t.Run("empty chart", func(t *testing.T) {
		_, err := render.NewBoxChart(o).Plot()
		gt.Error(t, err)
	})

	t.Run("inverted y range", func(t *testing.T) {
		bc := render.NewBoxChart(o)
		bc.Add("a", stats.Summary{})
		bc.SetYRange(3, 1)
		_, err := bc.Plot()
		gt.Error(t, err)
	})
}

func TestBoxDataRange(t *testing.T) {
	b := render.NewBox(stats.Summary{Q1: 1, Median: 2, Q3: 3, IQR: 2, LowerFence: -2, UpperFence: 6}, 2)
	xmin, xmax, ymin, ymax := b.DataRange()
	gt.Equal(t, xmin, 1.5)
	gt.Equal(t, xmax, 2.5)
	gt.Equal(t, ymin, -2.0)
	gt.Equal(t, ymax, 6.0)
	gt.Equal(t, b.Width, render.BandWidth)
}

func TestSave(t *testing.T) {
	o := render.DefaultOptions()
	p, err := render.Scatter(samplePoints(), o, 0.5)
	gt.NoError(t, err)

	dir := t.TempDir()

	path := filepath.Join(dir, "scatter.png")
	gt.NoError(t, render.Save(p, o, path))
	st, err := os.Stat(path)
	gt.NoError(t, err)
	gt.True(t, st.Size() > 0)

	err = render.Save(p, o, filepath.Join(dir, "scatter.bmp"))
	gt.True(t, errors.Is(err, render.ErrUnsupportedFormat))

	o.Width = 0
	gt.Error(t, render.Save(p, o, filepath.Join(dir, "zero.png")))
}

func TestFormatOf(t *testing.T) {
	f, err := render.FormatOf("out/Box.SVG")
	gt.NoError(t, err)
	gt.Equal(t, f, "svg")

	_, err = render.FormatOf("noext")
	gt.True(t, errors.Is(err, render.ErrUnsupportedFormat))
}
