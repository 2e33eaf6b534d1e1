package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"LineGraph/internal/logging"
)

// Config holds all application configuration.
type Config struct {
	LogLevel string `yaml:"log_level"`
	Theme    string `yaml:"theme"`
	Window   struct {
		Title  string  `yaml:"title"`
		Width  float32 `yaml:"width"`
		Height float32 `yaml:"height"`
	} `yaml:"window"`
	Data struct {
		Points int           `yaml:"points"`
		Seed   int64         `yaml:"seed"`
		Start  string        `yaml:"start"`
		Step   time.Duration `yaml:"step"`
	} `yaml:"data"`
	Graph struct {
		Height          float32 `yaml:"height"`
		LineThickness   float32 `yaml:"line_thickness"`
		VerticalPadding float32 `yaml:"vertical_padding"`
		ValueFontSize   float32 `yaml:"value_font_size"`
	} `yaml:"graph"`
	Snapshot struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"snapshot"`
}

// startLayout is how data.start is written in YAML; it is interpreted in local time.
const startLayout = "2006-01-02 15:04"

// Load reads config from a YAML file, then applies environment variable overrides and defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if v := os.Getenv("LINEGRAPH_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LINEGRAPH_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("LINEGRAPH_POINTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("LINEGRAPH_POINTS: %w", err)
		}
		cfg.Data.Points = n
	}
	if v := os.Getenv("LINEGRAPH_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("LINEGRAPH_SEED: %w", err)
		}
		cfg.Data.Seed = seed
	}

	// Defaults
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Theme == "" {
		cfg.Theme = "light"
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = "Line Graph"
	}
	if cfg.Window.Width == 0 {
		cfg.Window.Width = 390
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = 600
	}
	if cfg.Data.Points == 0 {
		cfg.Data.Points = 20
	}
	if cfg.Data.Start == "" {
		cfg.Data.Start = "2022-01-01 00:00"
	}
	if cfg.Data.Step == 0 {
		cfg.Data.Step = time.Hour
	}
	if cfg.Graph.Height == 0 {
		cfg.Graph.Height = 220
	}
	if cfg.Graph.LineThickness == 0 {
		cfg.Graph.LineThickness = 6
	}
	if cfg.Graph.VerticalPadding == 0 {
		cfg.Graph.VerticalPadding = 40
	}
	if cfg.Graph.ValueFontSize == 0 {
		cfg.Graph.ValueFontSize = 32
	}
	if cfg.Snapshot.Width == 0 {
		cfg.Snapshot.Width = 390
	}
	if cfg.Snapshot.Height == 0 {
		cfg.Snapshot.Height = 260
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("log_level %q is not one of debug, info, warn, error", c.LogLevel)
	}
	if c.Theme != "light" && c.Theme != "dark" {
		return fmt.Errorf("theme %q must be light or dark", c.Theme)
	}
	if c.Data.Points < 1 {
		return fmt.Errorf("data.points must be at least 1")
	}
	if c.Data.Step <= 0 {
		return fmt.Errorf("data.step must be positive")
	}
	if _, err := c.StartTime(); err != nil {
		return err
	}
	if c.Graph.Height <= 0 || c.Graph.LineThickness <= 0 || c.Graph.VerticalPadding < 0 {
		return fmt.Errorf("graph dimensions must be positive")
	}
	if c.Graph.VerticalPadding*2 >= c.Graph.Height {
		return fmt.Errorf("graph.vertical_padding leaves no room to draw")
	}
	if c.Snapshot.Width <= 0 || c.Snapshot.Height <= 0 {
		return fmt.Errorf("snapshot dimensions must be positive")
	}
	return nil
}

// StartTime parses data.start in local time.
func (c *Config) StartTime() (time.Time, error) {
	t, err := time.ParseInLocation(startLayout, c.Data.Start, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("data.start: %w", err)
	}
	return t, nil
}
