// Package config loads the calculator settings from a TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"tical/engine"
)

// Config is the on-disk configuration. All fields have working defaults, so
// an absent file is not an error.
type Config struct {
	// AngleUnit is "deg" or "rad".
	AngleUnit string `toml:"angle_unit"`
	// Precision is the number of significant digits in displayed results.
	Precision int `toml:"precision"`
	// HistoryLimit caps the calculation history.
	HistoryLimit int `toml:"history_limit"`
	// PlotSamples is the number of points sampled per curve.
	PlotSamples int `toml:"plot_samples"`
	// WindowScale is the integer pixel scale of the desktop window.
	WindowScale int `toml:"window_scale"`
	// ListenAddr is the bind address of the web front end.
	ListenAddr string `toml:"listen_addr"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		AngleUnit:    "deg",
		Precision:    10,
		HistoryLimit: 100,
		PlotSamples:  400,
		WindowScale:  2,
		ListenAddr:   "127.0.0.1:8080",
	}
}

// Load reads path over the defaults. A missing file yields the defaults;
// a malformed file or unknown angle unit is an error. An empty path skips
// the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.AngleUnit {
	case "deg", "rad":
	default:
		return fmt.Errorf("angle_unit must be \"deg\" or \"rad\", got %q", c.AngleUnit)
	}
	if c.Precision < 1 || c.Precision > 17 {
		return fmt.Errorf("precision must be between 1 and 17, got %d", c.Precision)
	}
	if c.HistoryLimit < 1 {
		return fmt.Errorf("history_limit must be positive, got %d", c.HistoryLimit)
	}
	if c.PlotSamples < 2 {
		return fmt.Errorf("plot_samples must be at least 2, got %d", c.PlotSamples)
	}
	if c.WindowScale < 1 {
		return fmt.Errorf("window_scale must be positive, got %d", c.WindowScale)
	}
	return nil
}

// Unit maps the configured angle unit onto the engine's type.
func (c Config) Unit() engine.AngleUnit {
	if c.AngleUnit == "rad" {
		return engine.Radians
	}
	return engine.Degrees
}

// EngineOptions builds the evaluator options from the configuration.
func (c Config) EngineOptions() engine.Options {
	return engine.Options{
		Unit:         c.Unit(),
		Precision:    c.Precision,
		HistoryLimit: c.HistoryLimit,
	}
}
