// Package input reads puzzle input files and splits them into lines.
package input

import (
	"fmt"
	"os"
	"strings"

	"github.com/keithbhunter/AdventOfCode-2021/internal/puzzle"
	"github.com/keithbhunter/AdventOfCode-2021/utils"
)

// ReadString loads a whole input file.
func ReadString(path string) (string, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	return string(bytes), nil
}

// Lines splits text on newlines, strips carriage returns and drops the
// single empty line a trailing newline leaves behind.
func Lines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// Ints parses one integer per line. Blank lines are not allowed.
func Ints(text string) ([]int, error) {
	lines := Lines(text)
	nums := make([]int, 0, len(lines))

	for i, line := range lines {
		n, err := utils.ToInt(line)
		if err != nil {
			return nil, puzzle.AtLine(err, i+1)
		}
		nums = append(nums, n)
	}

	return nums, nil
}
