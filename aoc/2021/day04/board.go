package aoc2021day04

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/keithbhunter/AdventOfCode-2021/internal/puzzle"
)

const Size = 5

type Square struct {
	Number int
	Marked bool
}

// Board is a Size x Size grid stored row-major.
type Board struct {
	squares [Size * Size]Square
}

func NewBoard(rows [][]int) (*Board, error) {
	if len(rows) != Size {
		return nil, puzzle.FormatErr("new board", fmt.Sprintf("expected %d rows, got %d", Size, len(rows)))
	}

	b := &Board{}
	for r, row := range rows {
		if len(row) != Size {
			return nil, puzzle.FormatErr("new board", fmt.Sprintf("row %d: expected %d numbers, got %d", r+1, Size, len(row)))
		}
		for c, v := range row {
			b.squares[r*Size+c] = Square{Number: v}
		}
	}

	return b, nil
}

func (b *Board) At(row, col int) Square {
	return b.squares[row*Size+col]
}

// Mark marks every square holding num.
func (b *Board) Mark(num int) {
	for i := range b.squares {
		if b.squares[i].Number == num {
			b.squares[i].Marked = true
		}
	}
}

// HasBingo reports a fully marked row or column. Diagonals don't count.
func (b *Board) HasBingo() bool {
	for i := 0; i < Size; i++ {
		isFullRow, isFullCol := true, true
		for j := 0; j < Size; j++ {
			if !b.At(i, j).Marked {
				isFullRow = false
			}
			if !b.At(j, i).Marked {
				isFullCol = false
			}
		}
		if isFullRow || isFullCol {
			return true
		}
	}

	return false
}

func (b *Board) SumUnmarked() int {
	var sum int
	for _, sq := range b.squares {
		if !sq.Marked {
			sum += sq.Number
		}
	}
	return sum
}

// String renders the board one row per line, marked squares as X.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sq := b.At(r, c)
			cell := strconv.Itoa(sq.Number)
			if sq.Marked {
				cell = "X"
			}
			fmt.Fprintf(&sb, "%2s", cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
