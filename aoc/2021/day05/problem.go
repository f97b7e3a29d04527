package aoc2021day05

import (
	"github.com/keithbhunter/AdventOfCode-2021/internal/input"
)

type Solver struct{}

func (Solver) Part1(in *string) (int, error) {
	return run(in, false)
}

func (Solver) Part2(in *string) (int, error) {
	return run(in, true)
}

func run(in *string, diagonals bool) (int, error) {
	lines, err := ParseLines(input.Lines(*in))
	if err != nil {
		return 0, err
	}

	return CountOverlaps(lines, diagonals), nil
}

// CountMaxOverlap tallies the points of every axis-aligned segment and
// returns the highest overlap count and how many points reach it.
func CountMaxOverlap(lines []Line) (maxCount int, pointsAtMax int) {
	for _, count := range tally(lines, false) {
		switch {
		case count > maxCount:
			maxCount, pointsAtMax = count, 1
		case count == maxCount:
			pointsAtMax++
		}
	}

	return maxCount, pointsAtMax
}

// CountOverlaps returns how many points are covered by at least two segments.
func CountOverlaps(lines []Line, diagonals bool) int {
	var ans int
	for _, count := range tally(lines, diagonals) {
		if count >= 2 {
			ans++
		}
	}
	return ans
}

func tally(lines []Line, diagonals bool) map[Point]int {
	counts := map[Point]int{}

	for _, l := range lines {
		var points []Point
		switch {
		case l.IsAxisAligned():
			points, _ = l.Points()
		case diagonals && l.IsDiagonal():
			points, _ = l.DiagonalPoints()
		default:
			continue
		}

		for _, p := range points {
			counts[p]++
		}
	}

	return counts
}
