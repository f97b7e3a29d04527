package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath     = "configs/aoc.yaml"
	DefaultLogLevel = "info"
	DefaultInputDir = "inputs"
)

// Load reads the config at path, or DefaultPath when path is empty. A
// missing file at the default location yields the defaults.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.InputDir == "" {
		cfg.InputDir = DefaultInputDir
	}
}

func (c *Config) Validate() error {
	seen := make(map[int]bool, len(c.Days))
	for _, d := range c.Days {
		if d.Day < 1 || d.Day > 25 {
			return fmt.Errorf("invalid day %d: must be between 1 and 25", d.Day)
		}
		if seen[d.Day] {
			return fmt.Errorf("duplicate day %d", d.Day)
		}
		if d.Input == "" {
			return fmt.Errorf("day %d: missing input", d.Day)
		}
		seen[d.Day] = true
	}
	return nil
}

// InputPath resolves the input file of day: its configured input (relative
// to InputDir unless absolute), or InputDir/dayNN.txt.
func (c *Config) InputPath(day int) string {
	for _, d := range c.Days {
		if d.Day != day {
			continue
		}
		if filepath.IsAbs(d.Input) {
			return d.Input
		}
		return filepath.Join(c.InputDir, d.Input)
	}

	return filepath.Join(c.InputDir, fmt.Sprintf("day%02d.txt", day))
}
