package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fireflycons/lineprogress"
)

// Config defines configuration for the lineprogress command.
type Config struct {
	Label        string        `yaml:"label"`
	Steps        uint64        `yaml:"steps"`
	Delay        time.Duration `yaml:"delay"`
	Format       string        `yaml:"format"`
	StatusFormat string        `yaml:"status_format"`
	Width        int           `yaml:"width"` // 0 means measure the terminal
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Label:        "Working",
		Steps:        100,
		Delay:        50 * time.Millisecond,
		Format:       lineprogress.DefaultBarFormat,
		StatusFormat: lineprogress.DefaultStatusFormat,
	}
}

// yamlConfig is used for YAML unmarshaling with a string delay.
// Steps is a pointer so an explicit 0 can be told apart from a missing key.
type yamlConfig struct {
	Label        string  `yaml:"label"`
	Steps        *uint64 `yaml:"steps"`
	Delay        string  `yaml:"delay"`
	Format       string  `yaml:"format"`
	StatusFormat string  `yaml:"status_format"`
	Width        int     `yaml:"width"`
}

// LoadFromFile loads configuration from a YAML file. Keys that are missing keep their defaults.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}

	cfg := Default()

	if yc.Label != "" {
		cfg.Label = yc.Label
	}
	if yc.Steps != nil {
		cfg.Steps = *yc.Steps
	}
	if yc.Delay != "" {
		d, err := time.ParseDuration(yc.Delay)
		if err != nil {
			return Config{}, fmt.Errorf("parse delay: %w", err)
		}
		cfg.Delay = d
	}
	if yc.Format != "" {
		cfg.Format = yc.Format
	}
	if yc.StatusFormat != "" {
		cfg.StatusFormat = yc.StatusFormat
	}
	cfg.Width = yc.Width

	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if c.Delay < 0 {
		return errors.New("delay must not be negative")
	}
	if c.Width < 0 {
		return errors.New("width must not be negative")
	}
	if err := lineprogress.ValidateBarFormat(c.Format); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if err := lineprogress.ValidateStatusFormat(c.StatusFormat); err != nil {
		return fmt.Errorf("status_format: %w", err)
	}

	return nil
}

// WidthProvider returns a fixed provider when Width is set, nil to let the bar measure
// the terminal itself.
func (c Config) WidthProvider() lineprogress.WidthProvider {
	if c.Width > 0 {
		return lineprogress.FixedWidth(c.Width)
	}

	return nil
}
