package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	chartcfg "statplot/pkg/config"
)

// Chart holds the flags that locate and override the chart configuration
type Chart struct {
	Path    string
	Input   string
	Workers int
}

// Flags returns CLI flags for Chart configuration
func (c *Chart) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Chart configuration file (.yaml, .yml or .toml)",
			Category:    "Chart",
			Sources:     cli.EnvVars("STATPLOT_CONFIG"),
			Destination: &c.Path,
		},
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Input CSV file (overrides the configuration file)",
			Category:    "Chart",
			Sources:     cli.EnvVars("STATPLOT_INPUT"),
			Destination: &c.Input,
		},
		&cli.IntFlag{
			Name:        "workers",
			Usage:       "Number of categories summarized concurrently (0 = number of CPUs)",
			Category:    "Chart",
			Sources:     cli.EnvVars("STATPLOT_WORKERS"),
			Destination: &c.Workers,
		},
	}
}

// Configure loads the configuration file, or the defaults when no file is
// given, and applies the flag overrides.
func (c *Chart) Configure() (*chartcfg.Config, error) {
	var cfg *chartcfg.Config
	if c.Path != "" {
		loaded, err := chartcfg.Load(c.Path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		def := chartcfg.Default()
		cfg = &def
	}

	if c.Input != "" {
		cfg.Input = c.Input
	}
	if c.Workers != 0 {
		cfg.Workers = c.Workers
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogValue returns structured log value
func (c Chart) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("config", c.Path),
		slog.String("input", c.Input),
		slog.Int("workers", c.Workers),
	)
}
