package aoc2021day03

import (
	"fmt"
	"strconv"

	"github.com/keithbhunter/AdventOfCode-2021/internal/input"
	"github.com/keithbhunter/AdventOfCode-2021/internal/puzzle"
)

type Solver struct{}

func (Solver) Part1(in *string) (int, error) {
	gamma, epsilon, err := PowerConsumption(input.Lines(*in))
	if err != nil {
		return 0, err
	}
	return gamma * epsilon, nil
}

func (Solver) Part2(in *string) (int, error) {
	oxygen, co2, err := LifeSupport(input.Lines(*in))
	if err != nil {
		return 0, err
	}
	return oxygen * co2, nil
}

// PowerConsumption returns the gamma rate (most common bit per column) and
// the epsilon rate (its complement). A tied column counts as 0 in gamma.
func PowerConsumption(report []string) (gamma int, epsilon int, err error) {
	if err := validate(report); err != nil {
		return 0, 0, err
	}

	n := len(report[0])
	for i := range n {
		countOnes, countZeros := countBits(report, i)

		gamma <<= 1
		if countOnes > countZeros {
			gamma |= 1
		}
	}
	mask := 1<<n - 1
	epsilon = ^gamma & mask

	return gamma, epsilon, nil
}

// LifeSupport returns the oxygen generator and CO2 scrubber ratings.
func LifeSupport(report []string) (oxygen int, co2 int, err error) {
	if err := validate(report); err != nil {
		return 0, 0, err
	}

	oxygen, err = rating(report, func(ones, zeros int) byte {
		if ones >= zeros {
			return '1'
		}
		return '0'
	})
	if err != nil {
		return 0, 0, err
	}

	co2, err = rating(report, func(ones, zeros int) byte {
		if ones >= zeros {
			return '0'
		}
		return '1'
	})
	if err != nil {
		return 0, 0, err
	}

	return oxygen, co2, nil
}

// rating keeps the words whose bit matches keep(ones, zeros), column by
// column, until a single word is left.
func rating(report []string, keep func(ones, zeros int) byte) (int, error) {
	lines := report
	for i := 0; i < len(lines[0]) && len(lines) > 1; i++ {
		countOnes, countZeros := countBits(lines, i)
		lines = filterLines(lines, i, keep(countOnes, countZeros))
	}

	if len(lines) != 1 {
		return 0, puzzle.ParseErr("rating", 0, fmt.Sprintf("%d identical words left", len(lines)), nil)
	}

	r, err := strconv.ParseInt(lines[0], 2, 64)
	if err != nil {
		return 0, puzzle.ParseErr("rating", 0, strconv.Quote(lines[0]), err)
	}
	return int(r), nil
}

func countBits(lines []string, index int) (ones int, zeros int) {
	for _, line := range lines {
		if line[index] == '1' {
			ones += 1
		} else {
			zeros += 1
		}
	}
	return ones, zeros
}

func filterLines(lines []string, index int, value byte) []string {
	newLines := []string{}
	for _, line := range lines {
		if line[index] == value {
			newLines = append(newLines, line)
		}
	}
	return newLines
}

func validate(report []string) error {
	if len(report) == 0 || len(report[0]) == 0 {
		return puzzle.ParseErr("diagnostic report", 0, "empty report", nil)
	}

	width := len(report[0])
	if width > strconv.IntSize-1 {
		return puzzle.ParseErr("diagnostic report", 1, fmt.Sprintf("%d bits do not fit in an int", width), nil)
	}
	for i, line := range report {
		if len(line) != width {
			return puzzle.ParseErr("diagnostic report", i+1, fmt.Sprintf("expected %d bits, got %d", width, len(line)), nil)
		}
		for _, c := range line {
			if c != '0' && c != '1' {
				return puzzle.ParseErr("diagnostic report", i+1, "not a binary word "+strconv.Quote(line), nil)
			}
		}
	}
	return nil
}
