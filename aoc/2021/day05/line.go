package aoc2021day05

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/keithbhunter/AdventOfCode-2021/internal/puzzle"
	"github.com/keithbhunter/AdventOfCode-2021/utils"
)

var lineRe = regexp.MustCompile(`^(\d+),(\d+) -> (\d+),(\d+)$`)

type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

type Line struct {
	Start Point
	End   Point
}

func (l Line) String() string {
	return fmt.Sprintf("%s -> %s", l.Start, l.End)
}

// ParseLine reads a segment written as "x1,y1 -> x2,y2".
func ParseLine(text string) (Line, error) {
	m := lineRe.FindStringSubmatch(text)
	if m == nil {
		return Line{}, puzzle.ParseErr("parse line", 0, "could not parse "+strconv.Quote(text), nil)
	}

	var coords [4]int
	for i := range coords {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Line{}, puzzle.ParseErr("parse line", 0, "bad coordinate "+strconv.Quote(m[i+1]), err)
		}
		coords[i] = n
	}

	return Line{
		Start: Point{X: coords[0], Y: coords[1]},
		End:   Point{X: coords[2], Y: coords[3]},
	}, nil
}

func ParseLines(lines []string) ([]Line, error) {
	segments := make([]Line, 0, len(lines))
	for i, text := range lines {
		l, err := ParseLine(text)
		if err != nil {
			return nil, puzzle.AtLine(err, i+1)
		}
		segments = append(segments, l)
	}
	return segments, nil
}

func (l Line) IsHorizontal() bool {
	return l.Start.Y == l.End.Y
}

func (l Line) IsVertical() bool {
	return l.Start.X == l.End.X
}

func (l Line) IsAxisAligned() bool {
	return l.IsHorizontal() || l.IsVertical()
}

// IsDiagonal reports a 45 degree segment. Axis-aligned segments are not diagonal.
func (l Line) IsDiagonal() bool {
	dx, dy := l.End.X-l.Start.X, l.End.Y-l.Start.Y
	return dx != 0 && utils.Abs(dx) == utils.Abs(dy)
}

// Points lists every integer point of an axis-aligned segment, start to end
// inclusive. A segment that is both horizontal and vertical is walked as
// horizontal, which yields its single point.
func (l Line) Points() ([]Point, error) {
	var step Point
	switch {
	case l.IsHorizontal():
		step = Point{X: utils.Sign(l.End.X - l.Start.X)}
	case l.IsVertical():
		step = Point{Y: utils.Sign(l.End.Y - l.Start.Y)}
	default:
		return nil, &puzzle.Error{Op: "points", Kind: puzzle.ErrUnsupportedGeometry, Msg: l.String()}
	}

	return l.walk(step), nil
}

// DiagonalPoints lists every point of a 45 degree segment, start to end inclusive.
func (l Line) DiagonalPoints() ([]Point, error) {
	if !l.IsDiagonal() {
		return nil, &puzzle.Error{Op: "diagonal points", Kind: puzzle.ErrUnsupportedGeometry, Msg: l.String()}
	}

	return l.walk(Point{X: utils.Sign(l.End.X - l.Start.X), Y: utils.Sign(l.End.Y - l.Start.Y)}), nil
}

func (l Line) walk(step Point) []Point {
	n := max(utils.Abs(l.End.X-l.Start.X), utils.Abs(l.End.Y-l.Start.Y))
	points := make([]Point, 0, n+1)

	p := l.Start
	points = append(points, p)
	for range n {
		p.X += step.X
		p.Y += step.Y
		points = append(points, p)
	}

	return points
}
