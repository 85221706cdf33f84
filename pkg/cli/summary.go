package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"statplot/pkg/cli/config"
	"statplot/pkg/pipeline"
)

func cmdSummary(chartCfg *config.Chart) *cli.Command {
	var format string

	return &cli.Command{
		Name:  "summary",
		Usage: "Print quartiles, IQR and Tukey fences per category",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "Output format (text, json)",
				Value:       "text",
				Destination: &format,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if format != "text" && format != "json" {
				return goerr.New("invalid output format", goerr.V("format", format))
			}

			cfg, err := chartCfg.Configure()
			if err != nil {
				return err
			}
			schema := boxSchema(cfg)
			tbl, err := loadTable(ctx, cfg, schema)
			if err != nil {
				return err
			}

			res, err := pipeline.NewPipeline(pipeline.WithWorkers(cfg.Workers)).SummarizeTable(ctx, tbl, schema)
			if err != nil {
				return err
			}

			if format == "json" {
				return writeSummaryJSON(c.Root().Writer, res)
			}
			return writeSummaryText(c.Root().Writer, res)
		},
	}
}

func writeSummaryText(w io.Writer, res *pipeline.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "category\tn\tq1\tmedian\tq3\tiqr\tlower fence\tupper fence\tmean\toutliers\t")
	for _, s := range res.Summaries {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\t\n",
			s.Category,
			s.Count,
			formatFloat(s.Summary.Q1),
			formatFloat(s.Summary.Median),
			formatFloat(s.Summary.Q3),
			formatFloat(s.Summary.IQR),
			formatFloat(s.Summary.LowerFence),
			formatFloat(s.Summary.UpperFence),
			formatFloat(s.Mean),
			len(s.Outliers),
		)
	}
	if err := tw.Flush(); err != nil {
		return goerr.Wrap(err, "failed to write summary")
	}
	return nil
}

type failureJSON struct {
	Category string `json:"category"`
	Error    string `json:"error"`
}

type summaryJSON struct {
	Summaries []pipeline.CategorySummary `json:"summaries"`
	Failures  []failureJSON              `json:"failures"`
}

func writeSummaryJSON(w io.Writer, res *pipeline.Result) error {
	out := summaryJSON{
		Summaries: res.Summaries,
		Failures:  []failureJSON{},
	}
	if out.Summaries == nil {
		out.Summaries = []pipeline.CategorySummary{}
	}
	for _, f := range res.Failures {
		out.Failures = append(out.Failures, failureJSON{Category: f.Category, Error: f.Err.Error()})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return goerr.Wrap(err, "failed to encode summary")
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
