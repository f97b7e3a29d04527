package runner

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/keithbhunter/AdventOfCode-2021/internal/puzzle"
	"github.com/rs/zerolog"
)

// ReadFunc loads the raw puzzle input from path.
type ReadFunc func(path string) (string, error)

type Result struct {
	Day      int           `json:"day"`
	Input    string        `json:"input"`
	Part1    int           `json:"part1"`
	Part2    int           `json:"part2"`
	Duration time.Duration `json:"duration_ns"`
}

type Runner struct {
	solvers map[int]puzzle.Solver
	read    ReadFunc
	logger  *zerolog.Logger
}

func New(solvers map[int]puzzle.Solver, read ReadFunc, logger *zerolog.Logger) *Runner {
	return &Runner{
		solvers: solvers,
		read:    read,
		logger:  logger,
	}
}

// Days returns the registered days in ascending order.
func (r *Runner) Days() []int {
	days := make([]int, 0, len(r.solvers))
	for d := range r.solvers {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}

// Run reads the input at path and solves both parts of day. It stops at
// the first failure.
func (r *Runner) Run(ctx context.Context, day int, path string) (Result, error) {
	solver, ok := r.solvers[day]
	if !ok {
		return Result{}, &puzzle.Error{Op: "run", Kind: puzzle.ErrUnknownDay, Msg: fmt.Sprintf("day %d", day)}
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	startTime := time.Now()
	in, err := r.read(path)
	if err != nil {
		return Result{}, err
	}
	r.logger.Debug().Int("day", day).Str("file", path).Int("bytes", len(in)).Msg("Input loaded")

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	result := Result{Day: day, Input: path}

	partStart := time.Now()
	result.Part1, err = solver.Part1(&in)
	if err != nil {
		return Result{}, fmt.Errorf("day %02d part 1: %w", day, err)
	}
	r.logger.Debug().Int("day", day).Dur("duration", time.Since(partStart)).Msg("Part 1 solved")

	partStart = time.Now()
	result.Part2, err = solver.Part2(&in)
	if err != nil {
		return Result{}, fmt.Errorf("day %02d part 2: %w", day, err)
	}
	r.logger.Debug().Int("day", day).Dur("duration", time.Since(partStart)).Msg("Part 2 solved")

	result.Duration = time.Since(startTime)
	r.logger.Info().
		Int("day", day).
		Int("part1", result.Part1).
		Int("part2", result.Part2).
		Dur("duration", result.Duration).
		Msg("Day solved")

	return result, nil
}
