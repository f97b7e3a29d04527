package aoc2021day04

import (
	"fmt"
	"strings"

	"github.com/keithbhunter/AdventOfCode-2021/internal/input"
	"github.com/keithbhunter/AdventOfCode-2021/internal/puzzle"
	"github.com/keithbhunter/AdventOfCode-2021/utils"
	"github.com/rs/zerolog"
)

type Solver struct {
	logger *zerolog.Logger
}

func NewSolver(logger *zerolog.Logger) *Solver {
	return &Solver{logger: logger}
}

func (s *Solver) Part1(in *string) (int, error) {
	nums, boards, err := ParseGame(*in)
	if err != nil {
		return 0, err
	}

	score, winner, draw, err := playFirstWin(nums, boards)
	if err != nil {
		return 0, err
	}
	s.logWinner("first", winner, draw, score)
	return score, nil
}

func (s *Solver) Part2(in *string) (int, error) {
	nums, boards, err := ParseGame(*in)
	if err != nil {
		return 0, err
	}

	score, winner, draw, err := playLastWin(nums, boards)
	if err != nil {
		return 0, err
	}
	s.logWinner("last", winner, draw, score)
	return score, nil
}

func (s *Solver) logWinner(which string, b *Board, draw int, score int) {
	if s.logger == nil {
		return
	}
	s.logger.Debug().
		Str("winner", which).
		Int("draw", draw).
		Int("score", score).
		Msgf("Winning board\n%s", b)
}

// PlayFirstWin scores the first board to get a bingo: the sum of its
// unmarked squares times the number that was just called.
func PlayFirstWin(nums []int, boards []*Board) (int, error) {
	score, _, _, err := playFirstWin(nums, boards)
	return score, err
}

func playFirstWin(nums []int, boards []*Board) (int, *Board, int, error) {
	for _, n := range nums {
		for _, b := range boards {
			b.Mark(n)
			if b.HasBingo() {
				return b.SumUnmarked() * n, b, n, nil
			}
		}
	}

	return 0, nil, 0, &puzzle.Error{Op: "play first win", Kind: puzzle.ErrExhaustedInput, Msg: "no board won"}
}

// PlayLastWin scores the last board left standing. Boards that won on an
// earlier draw are dropped before each draw is marked; the game ends once a
// single board remains and that board has a bingo.
func PlayLastWin(nums []int, boards []*Board) (int, error) {
	score, _, _, err := playLastWin(nums, boards)
	return score, err
}

func playLastWin(nums []int, boards []*Board) (int, *Board, int, error) {
	remaining := boards

	for _, n := range nums {
		remaining = dropWinners(remaining)

		for _, b := range remaining {
			b.Mark(n)
		}

		if len(remaining) == 1 && remaining[0].HasBingo() {
			return remaining[0].SumUnmarked() * n, remaining[0], n, nil
		}
	}

	return 0, nil, 0, &puzzle.Error{Op: "play last win", Kind: puzzle.ErrExhaustedInput, Msg: "no single last board won"}
}

func dropWinners(boards []*Board) []*Board {
	var left []*Board
	for _, b := range boards {
		if !b.HasBingo() {
			left = append(left, b)
		}
	}
	return left
}

// ParseGame reads the comma separated draws on the first line followed by
// blank-line separated blocks of Size x Size numbers.
func ParseGame(text string) ([]int, []*Board, error) {
	lines := input.Lines(text)

	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	if start == len(lines) {
		return nil, nil, puzzle.FormatErr("parse game", "missing draw line")
	}

	var nums []int
	for v := range strings.SplitSeq(lines[start], ",") {
		n, err := utils.ToInt(v)
		if err != nil {
			return nil, nil, puzzle.AtLine(err, start+1)
		}
		nums = append(nums, n)
	}

	var boards []*Board
	var rows [][]int
	blockStart := 0

	flush := func() error {
		if rows == nil {
			return nil
		}
		b, err := NewBoard(rows)
		if err != nil {
			return puzzle.AtLine(err, blockStart)
		}
		boards = append(boards, b)
		rows = nil
		return nil
	}

	for i := start + 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			if err := flush(); err != nil {
				return nil, nil, err
			}
			continue
		}

		if rows == nil {
			blockStart = i + 1
		}
		var row []int
		for f := range strings.FieldsSeq(line) {
			n, err := utils.ToInt(f)
			if err != nil {
				return nil, nil, puzzle.AtLine(err, i+1)
			}
			row = append(row, n)
		}
		rows = append(rows, row)
	}
	if err := flush(); err != nil {
		return nil, nil, err
	}

	if len(boards) == 0 {
		return nil, nil, puzzle.FormatErr("parse game", fmt.Sprintf("no boards after %d draws", len(nums)))
	}

	return nums, boards, nil
}
