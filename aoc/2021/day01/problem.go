package aoc2021day01

import (
	"github.com/keithbhunter/AdventOfCode-2021/internal/input"
	"github.com/keithbhunter/AdventOfCode-2021/utils"
)

type Solver struct{}

func (Solver) Part1(in *string) (int, error) {
	depths, err := input.Ints(*in)
	if err != nil {
		return 0, err
	}
	return CountIncreases(depths, 1), nil
}

func (Solver) Part2(in *string) (int, error) {
	depths, err := input.Ints(*in)
	if err != nil {
		return 0, err
	}
	return CountIncreases(depths, 3), nil
}

// CountIncreases counts how often the sum of a sliding window of the given
// width is larger than the sum of the window before it.
func CountIncreases(depths []int, window int) int {
	if window < 1 || len(depths) <= window {
		return 0
	}

	count := 0
	prevSum := utils.Sum(depths[:window])
	for i := window; i < len(depths); i++ {
		currentSum := prevSum + depths[i] - depths[i-window]
		if currentSum > prevSum {
			count += 1
		}
		prevSum = currentSum
	}

	return count
}
