package config

// Config is the layout of configs/aoc.yaml.
type Config struct {
	LogLevel string      `yaml:"log_level"`
	InputDir string      `yaml:"input_dir"`
	Days     []DayConfig `yaml:"days"`
}

// DayConfig overrides the input file of a single day.
type DayConfig struct {
	Day   int    `yaml:"day"`
	Input string `yaml:"input"`
}
