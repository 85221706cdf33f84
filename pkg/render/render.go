// Package render draws the scatter and box charts with gonum/plot. Every
// chart is built from an explicit Options value; nothing is shared between
// charts.
package render

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

var ErrUnsupportedFormat = goerr.New("unsupported image format")

// Options describes the size and labels of one chart.
type Options struct {
	Width  vg.Length
	Height vg.Length
	Title  string
	XLabel string
	YLabel string
}

// DefaultOptions returns a 600x400 chart with no labels.
func DefaultOptions() Options {
	return Options{Width: vg.Points(600), Height: vg.Points(400)}
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return goerr.New("chart size must be positive",
			goerr.V("width", o.Width),
			goerr.V("height", o.Height))
	}
	return nil
}

func newPlot(o Options) *plot.Plot {
	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel
	return p
}

var formats = map[string]struct{}{
	"png": {}, "jpg": {}, "jpeg": {}, "tif": {}, "tiff": {},
	"svg": {}, "pdf": {}, "eps": {},
}

// FormatOf returns the image format implied by the extension of path.
func FormatOf(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if _, ok := formats[ext]; !ok {
		return "", goerr.Wrap(ErrUnsupportedFormat, "cannot infer image format",
			goerr.V("path", path),
			goerr.V("extension", ext))
	}
	return ext, nil
}

// Save writes p to path in the format implied by its extension.
func Save(p *plot.Plot, o Options, path string) error {
	if _, err := FormatOf(path); err != nil {
		return err
	}
	if err := o.validate(); err != nil {
		return err
	}
	if err := p.Save(o.Width, o.Height, path); err != nil {
		return goerr.Wrap(err, "failed to save chart", goerr.V("path", path))
	}
	return nil
}

// Write renders p in the given format to w.
func Write(p *plot.Plot, o Options, w io.Writer, format string) error {
	if _, ok := formats[format]; !ok {
		return goerr.Wrap(ErrUnsupportedFormat, "cannot render chart", goerr.V("format", format))
	}
	if err := o.validate(); err != nil {
		return err
	}
	wt, err := p.WriterTo(o.Width, o.Height, format)
	if err != nil {
		return goerr.Wrap(err, "failed to render chart", goerr.V("format", format))
	}
	if _, err := wt.WriteTo(w); err != nil {
		return goerr.Wrap(err, "failed to write chart", goerr.V("format", format))
	}
	return nil
}
