package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedConfig = goerr.New("unsupported configuration file type")

// Columns names the dataset columns used by the charts.
type Columns struct {
	Category string `yaml:"category" toml:"category"`
	X        string `yaml:"x" toml:"x"`
	Y        string `yaml:"y" toml:"y"`
	Value    string `yaml:"value" toml:"value"`
}

// Chart holds the output path, size in points and labels of one chart.
type Chart struct {
	Output string  `yaml:"output" toml:"output"`
	Title  string  `yaml:"title" toml:"title"`
	XLabel string  `yaml:"x_label" toml:"x_label"`
	YLabel string  `yaml:"y_label" toml:"y_label"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// Config is the whole chart configuration.
type Config struct {
	Input   string  `yaml:"input" toml:"input"`
	Columns Columns `yaml:"columns" toml:"columns"`
	// Padding widens every axis domain beyond the data extent.
	Padding float64 `yaml:"padding" toml:"padding"`
	Workers int     `yaml:"workers" toml:"workers"`
	Scatter Chart   `yaml:"scatter" toml:"scatter"`
	Box     Chart   `yaml:"box" toml:"box"`
}

// Default returns the iris chart configuration.
func Default() Config {
	return Config{
		Input: "iris.csv",
		Columns: Columns{
			Category: "Species",
			X:        "PetalLength",
			Y:        "PetalWidth",
			Value:    "PetalLength",
		},
		Padding: 0.5,
		Scatter: Chart{
			Output: "scatterplot.png",
			XLabel: "Petal Length",
			YLabel: "Petal Width",
			Width:  600,
			Height: 400,
		},
		Box: Chart{
			Output: "boxplot.png",
			XLabel: "Species",
			YLabel: "Petal Length",
			Width:  600,
			Height: 400,
		},
	}
}

// Load decodes a YAML or TOML file on top of the defaults and validates the
// result.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, goerr.New("configuration file path is required")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "configuration file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read configuration file",
			goerr.V("path", path))
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, goerr.Wrap(err, "failed to parse YAML configuration",
				goerr.V("path", path))
		}
	case ".toml":
		if err := toml.Unmarshal(raw, &cfg); err != nil {
			return nil, goerr.Wrap(err, "failed to parse TOML configuration",
				goerr.V("path", path))
		}
	default:
		return nil, goerr.Wrap(ErrUnsupportedConfig, "cannot load configuration",
			goerr.V("path", path),
			goerr.V("extension", ext))
	}

	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid configuration",
			goerr.V("path", path))
	}
	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Columns.Category == "" {
		return goerr.New("category column is required")
	}
	if c.Columns.Value == "" && (c.Columns.X == "" || c.Columns.Y == "") {
		return goerr.New("either a value column or both x and y columns are required",
			goerr.V("columns", c.Columns))
	}
	if c.Padding < 0 {
		return goerr.New("padding must not be negative", goerr.V("padding", c.Padding))
	}
	if c.Workers < 0 {
		return goerr.New("workers must not be negative", goerr.V("workers", c.Workers))
	}
	for name, ch := range map[string]Chart{"scatter": c.Scatter, "box": c.Box} {
		if ch.Width <= 0 || ch.Height <= 0 {
			return goerr.New("chart size must be positive",
				goerr.V("chart", name),
				goerr.V("width", ch.Width),
				goerr.V("height", ch.Height))
		}
	}
	return nil
}

// LogValue returns structured log value
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("input", c.Input),
		slog.String("category", c.Columns.Category),
		slog.String("x", c.Columns.X),
		slog.String("y", c.Columns.Y),
		slog.String("value", c.Columns.Value),
		slog.Float64("padding", c.Padding),
		slog.Int("workers", c.Workers),
	)
}
