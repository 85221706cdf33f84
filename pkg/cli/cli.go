package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"statplot/pkg/cli/config"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout)
}

func run(ctx context.Context, args []string, w io.Writer) error {
	var (
		loggerCfg config.Logger
		chartCfg  config.Chart
	)

	app := &cli.Command{
		Name:    "statplot",
		Usage:   "Summarize a labeled numeric dataset and draw scatter and box plots",
		Version: "0.1.0",
		Writer:  w,
		Flags:   joinFlags(loggerCfg.Flags(), chartCfg.Flags()),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdSummary(&chartCfg),
			cmdScatter(&chartCfg),
			cmdBoxplot(&chartCfg),
			cmdRender(&chartCfg),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}
