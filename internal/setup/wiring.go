package setup

import (
	"fmt"
	"os"

	aoc2021day01 "github.com/keithbhunter/AdventOfCode-2021/aoc/2021/day01"
	aoc2021day02 "github.com/keithbhunter/AdventOfCode-2021/aoc/2021/day02"
	aoc2021day03 "github.com/keithbhunter/AdventOfCode-2021/aoc/2021/day03"
	aoc2021day04 "github.com/keithbhunter/AdventOfCode-2021/aoc/2021/day04"
	aoc2021day05 "github.com/keithbhunter/AdventOfCode-2021/aoc/2021/day05"
	"github.com/keithbhunter/AdventOfCode-2021/internal/config"
	"github.com/keithbhunter/AdventOfCode-2021/internal/input"
	"github.com/keithbhunter/AdventOfCode-2021/internal/puzzle"
	"github.com/keithbhunter/AdventOfCode-2021/internal/runner"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Config *config.Config
	Runner *runner.Runner
	Logger *zerolog.Logger
}

// LoadConfig reads the YAML config (path, else AOC_CONFIG_PATH, else the
// default location) and applies the LOG_LEVEL and AOC_INPUT_DIR overrides.
func LoadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = os.Getenv("AOC_CONFIG_PATH")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.InputDir = getEnv("AOC_INPUT_DIR", cfg.InputDir)

	return cfg, nil
}

// Solvers lists every implemented day.
func Solvers(logger *zerolog.Logger) map[int]puzzle.Solver {
	return map[int]puzzle.Solver{
		1: aoc2021day01.Solver{},
		2: aoc2021day02.Solver{},
		3: aoc2021day03.Solver{},
		4: aoc2021day04.NewSolver(logger),
		5: aoc2021day05.Solver{},
	}
}

func Wire(cfg *config.Config, logger *zerolog.Logger) *Dependencies {
	return &Dependencies{
		Config: cfg,
		Runner: runner.New(Solvers(logger), input.ReadString, logger),
		Logger: logger,
	}
}

// getEnv prefers the environment, then fallback.
func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		value = fallback
	}

	return value
}
