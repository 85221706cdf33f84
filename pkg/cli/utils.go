package cli

import (
	"context"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
	"gonum.org/v1/plot/vg"

	chartcfg "statplot/pkg/config"
	"statplot/pkg/data"
	"statplot/pkg/dataprep"
	"statplot/pkg/pipeline"
	"statplot/pkg/render"
)

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}

// boxSchema names the columns read by the summary and the box plot.
func boxSchema(cfg *chartcfg.Config) pipeline.Schema {
	return pipeline.Schema{Category: cfg.Columns.Category, Value: cfg.Columns.Value}
}

// scatterSchema names the columns read by the scatter plot.
func scatterSchema(cfg *chartcfg.Config) pipeline.Schema {
	return pipeline.Schema{Category: cfg.Columns.Category, X: cfg.Columns.X, Y: cfg.Columns.Y}
}

func optionsOf(ch chartcfg.Chart) render.Options {
	o := render.DefaultOptions()
	if ch.Width > 0 && ch.Height > 0 {
		o.Width = vg.Points(ch.Width)
		o.Height = vg.Points(ch.Height)
	}
	o.Title = ch.Title
	o.XLabel = ch.XLabel
	o.YLabel = ch.YLabel
	return o
}

// loadTable reads the configured input and checks it against schema.
func loadTable(ctx context.Context, cfg *chartcfg.Config, schema pipeline.Schema) (*data.Table, error) {
	ctxlog.From(ctx).Info("loading dataset", "config", cfg)

	tbl, err := data.LoadFile(ctx, cfg.Input)
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(tbl.Header); err != nil {
		return nil, err
	}

	col, err := tbl.Column(schema.Category)
	if err != nil {
		return nil, err
	}
	labels := make([]string, len(tbl.Records))
	for i, rec := range tbl.Records {
		labels[i] = strings.TrimSpace(rec.Fields[col])
	}
	ctxlog.From(ctx).Info("loaded dataset",
		"records", len(tbl.Records),
		"categories", dataprep.Categories(labels),
	)
	return tbl, nil
}
