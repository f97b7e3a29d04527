package aoc2021day02

import (
	"strconv"
	"strings"

	"github.com/keithbhunter/AdventOfCode-2021/internal/input"
	"github.com/keithbhunter/AdventOfCode-2021/internal/puzzle"
	"github.com/keithbhunter/AdventOfCode-2021/utils"
)

type Direction string

const (
	Forward Direction = "forward"
	Down    Direction = "down"
	Up      Direction = "up"
)

type Command struct {
	Direction Direction
	Value     int
}

type Solver struct{}

func (Solver) Part1(in *string) (int, error) {
	cmds, err := parseCommands(*in)
	if err != nil {
		return 0, err
	}
	return Position(cmds), nil
}

func (Solver) Part2(in *string) (int, error) {
	cmds, err := parseCommands(*in)
	if err != nil {
		return 0, err
	}
	return AimedPosition(cmds), nil
}

func ParseCommand(text string) (Command, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return Command{}, puzzle.ParseErr("parse command", 0, "unexpected command format "+strconv.Quote(text), nil)
	}

	dir := Direction(fields[0])
	switch dir {
	case Forward, Down, Up:
	default:
		return Command{}, puzzle.ParseErr("parse command", 0, "unexpected direction "+strconv.Quote(fields[0]), nil)
	}

	value, err := utils.ToInt(fields[1])
	if err != nil {
		return Command{}, err
	}

	return Command{Direction: dir, Value: value}, nil
}

func parseCommands(text string) ([]Command, error) {
	var cmds []Command
	for i, line := range input.Lines(text) {
		cmd, err := ParseCommand(line)
		if err != nil {
			return nil, puzzle.AtLine(err, i+1)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

// Position applies the commands literally and returns horizontal * depth.
func Position(cmds []Command) int {
	horizontal, depth := 0, 0
	for _, cmd := range cmds {
		switch cmd.Direction {
		case Forward:
			horizontal += cmd.Value
		case Down:
			depth += cmd.Value
		case Up:
			depth -= cmd.Value
		}
	}

	return horizontal * depth
}

// AimedPosition treats up/down as changes of aim; forward moves along it.
func AimedPosition(cmds []Command) int {
	horizontal, depth, aim := 0, 0, 0
	for _, cmd := range cmds {
		switch cmd.Direction {
		case Forward:
			horizontal += cmd.Value
			depth += aim * cmd.Value
		case Down:
			aim += cmd.Value
		case Up:
			aim -= cmd.Value
		}
	}

	return horizontal * depth
}
