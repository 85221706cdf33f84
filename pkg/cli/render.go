package cli

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"statplot/pkg/cli/config"
	chartcfg "statplot/pkg/config"
	"statplot/pkg/data"
	"statplot/pkg/dataprep"
	"statplot/pkg/pipeline"
	"statplot/pkg/render"
	"statplot/pkg/stats"
)

func outputFlag(dst *string, usage string) cli.Flag {
	return &cli.StringFlag{
		Name:        "output",
		Aliases:     []string{"o"},
		Usage:       usage,
		Destination: dst,
	}
}

func cmdScatter(chartCfg *config.Chart) *cli.Command {
	var output string

	return &cli.Command{
		Name:  "scatter",
		Usage: "Draw a scatter plot of two numeric columns colored by category",
		Flags: []cli.Flag{outputFlag(&output, "Output image (overrides scatter.output)")},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := chartCfg.Configure()
			if err != nil {
				return err
			}
			if output != "" {
				cfg.Scatter.Output = output
			}

			tbl, err := loadTable(ctx, cfg, scatterSchema(cfg))
			if err != nil {
				return err
			}
			return drawScatter(ctx, tbl, cfg)
		},
	}
}

func cmdBoxplot(chartCfg *config.Chart) *cli.Command {
	var output string

	return &cli.Command{
		Name:  "boxplot",
		Usage: "Draw one box-and-whisker glyph per category",
		Flags: []cli.Flag{outputFlag(&output, "Output image (overrides box.output)")},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := chartCfg.Configure()
			if err != nil {
				return err
			}
			if output != "" {
				cfg.Box.Output = output
			}

			tbl, err := loadTable(ctx, cfg, boxSchema(cfg))
			if err != nil {
				return err
			}
			return drawBoxplot(ctx, tbl, cfg)
		},
	}
}

func cmdRender(chartCfg *config.Chart) *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "Draw both the scatter plot and the box plot",
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := chartCfg.Configure()
			if err != nil {
				return err
			}

			schema := pipeline.Schema{
				Category: cfg.Columns.Category,
				X:        cfg.Columns.X,
				Y:        cfg.Columns.Y,
				Value:    cfg.Columns.Value,
			}
			tbl, err := loadTable(ctx, cfg, schema)
			if err != nil {
				return err
			}

			if err := drawScatter(ctx, tbl, cfg); err != nil {
				return err
			}
			return drawBoxplot(ctx, tbl, cfg)
		},
	}
}

func drawScatter(ctx context.Context, tbl *data.Table, cfg *chartcfg.Config) error {
	pts, rejected, err := tbl.Points(cfg.Columns.Category, cfg.Columns.X, cfg.Columns.Y)
	if err != nil {
		return err
	}
	pipeline.LogRejections(ctx, rejected)

	opts := optionsOf(cfg.Scatter)
	p, err := render.Scatter(dataprep.GroupPoints(pts), opts, cfg.Padding)
	if err != nil {
		return err
	}
	if err := render.Save(p, opts, cfg.Scatter.Output); err != nil {
		return err
	}

	ctxlog.From(ctx).Info("saved scatter plot",
		"path", cfg.Scatter.Output,
		"points", len(pts),
		"rejected", len(rejected),
	)
	return nil
}

func drawBoxplot(ctx context.Context, tbl *data.Table, cfg *chartcfg.Config) error {
	obs, rejected, err := tbl.Observations(cfg.Columns.Category, cfg.Columns.Value)
	if err != nil {
		return err
	}
	pipeline.LogRejections(ctx, rejected)

	res, err := pipeline.NewPipeline(pipeline.WithWorkers(cfg.Workers)).Run(ctx, dataprep.GroupBy(obs))
	if err != nil {
		return err
	}
	if len(res.Summaries) == 0 {
		return goerr.New("no category could be summarized",
			goerr.V("failures", len(res.Failures)))
	}

	values := make([]float64, len(obs))
	for i, o := range obs {
		values[i] = o.Value
	}
	yMin, yMax, err := stats.PaddedExtent(values, cfg.Padding)
	if err != nil {
		return err
	}

	opts := optionsOf(cfg.Box)
	chart := render.NewBoxChart(opts)
	for _, s := range res.Summaries {
		chart.Add(s.Category, s.Summary)
	}
	if yMin < yMax {
		chart.SetYRange(yMin, yMax)
	}

	p, err := chart.Plot()
	if err != nil {
		return err
	}
	if err := render.Save(p, opts, cfg.Box.Output); err != nil {
		return err
	}

	ctxlog.From(ctx).Info("saved box plot",
		"path", cfg.Box.Output,
		"categories", chart.Len(),
		"skipped", len(res.Failures),
	)
	return nil
}
