package utils

import (
	"strconv"

	"github.com/keithbhunter/AdventOfCode-2021/internal/puzzle"
	"golang.org/x/exp/constraints"
)

// ToInt parses s exactly; surrounding whitespace is an error.
func ToInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, puzzle.ParseErr("to int", 0, strconv.Quote(s), err)
	}

	return n, nil
}

func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1.
func Sign[T constraints.Signed](x T) T {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

func Sum[T constraints.Integer](nums []T) T {
	var total T
	for _, n := range nums {
		total += n
	}
	return total
}
