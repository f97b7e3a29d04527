// Package puzzle holds what every day shares: the Solver contract and the
// error taxonomy the solvers report with.
package puzzle

//go:generate mockgen -destination=../runner/mocks/mock_solver.go -package=mocks github.com/keithbhunter/AdventOfCode-2021/internal/puzzle Solver

// Solver computes both answers of one day from the raw puzzle input.
type Solver interface {
	Part1(input *string) (int, error)
	Part2(input *string) (int, error)
}
