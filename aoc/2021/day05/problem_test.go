package aoc2021day05

import (
	_ "embed"
	"testing"

	"github.com/keithbhunter/AdventOfCode-2021/internal/input"
	"github.com/keithbhunter/AdventOfCode-2021/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/example.txt
var example string

func mustParse(t *testing.T, text string) Line {
	t.Helper()
	l, err := ParseLine(text)
	require.NoError(t, err)
	return l
}

func TestParseLine(t *testing.T) {
	assert.Equal(t, Line{Start: Point{0, 9}, End: Point{5, 9}}, mustParse(t, "0,9 -> 5,9"))
	assert.Equal(t, Line{Start: Point{63, 865}, End: Point{63, 407}}, mustParse(t, "63,865 -> 63,407"))
}

func TestParseLine_Malformed(t *testing.T) {
	for _, text := range []string{
		"",
		"0,9 -> 5",
		"0,9->5,9",
		"-1,9 -> 5,9",
		"a,9 -> 5,9",
		"0,9 -> 5,9 extra",
		"99999999999999999999,0 -> 1,0",
	} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseLine(text)
			require.ErrorIs(t, err, puzzle.ErrParse)
		})
	}
}

func TestParseLines_ReportsLine(t *testing.T) {
	_, err := ParseLines([]string{"0,9 -> 5,9", "junk"})
	require.ErrorIs(t, err, puzzle.ErrParse)

	var pe *puzzle.Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
}

func TestOrientation(t *testing.T) {
	tests := []struct {
		line       string
		horizontal bool
		vertical   bool
		diagonal   bool
	}{
		{line: "0,9 -> 5,9", horizontal: true},
		{line: "9,0 -> 9,5", vertical: true},
		{line: "1,1 -> 3,3", diagonal: true},
		{line: "9,7 -> 7,9", diagonal: true},
		{line: "1,2 -> 2,4"},
		{line: "4,4 -> 4,4", horizontal: true, vertical: true},
	}

	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			l := mustParse(t, tc.line)
			assert.Equal(t, tc.horizontal, l.IsHorizontal(), "horizontal")
			assert.Equal(t, tc.vertical, l.IsVertical(), "vertical")
			assert.Equal(t, tc.diagonal, l.IsDiagonal(), "diagonal")
		})
	}
}

func TestPoints(t *testing.T) {
	points, err := mustParse(t, "0,9 -> 5,9").Points()
	require.NoError(t, err)
	assert.Equal(t, []Point{{0, 9}, {1, 9}, {2, 9}, {3, 9}, {4, 9}, {5, 9}}, points)

	points, err = mustParse(t, "2,2 -> 2,1").Points()
	require.NoError(t, err)
	assert.Equal(t, []Point{{2, 2}, {2, 1}}, points)

	points, err = mustParse(t, "4,4 -> 4,4").Points()
	require.NoError(t, err)
	assert.Equal(t, []Point{{4, 4}}, points)
}

func TestPoints_LengthAndEndpoints(t *testing.T) {
	for _, text := range input.Lines(example) {
		l := mustParse(t, text)
		if !l.IsAxisAligned() {
			continue
		}
		points, err := l.Points()
		require.NoError(t, err)

		dx, dy := l.End.X-l.Start.X, l.End.Y-l.Start.Y
		want := max(dx, -dx, dy, -dy) + 1
		assert.Len(t, points, want, text)
		assert.Equal(t, l.Start, points[0], text)
		assert.Equal(t, l.End, points[len(points)-1], text)
	}
}

func TestPoints_Diagonal(t *testing.T) {
	_, err := mustParse(t, "1,1 -> 3,3").Points()
	require.ErrorIs(t, err, puzzle.ErrUnsupportedGeometry)

	points, err := mustParse(t, "9,7 -> 7,9").DiagonalPoints()
	require.NoError(t, err)
	assert.Equal(t, []Point{{9, 7}, {8, 8}, {7, 9}}, points)

	_, err = mustParse(t, "1,2 -> 2,4").DiagonalPoints()
	require.ErrorIs(t, err, puzzle.ErrUnsupportedGeometry)
}

func TestCountMaxOverlap(t *testing.T) {
	lines, err := ParseLines(input.Lines(example))
	require.NoError(t, err)

	maxCount, pointsAtMax := CountMaxOverlap(lines)
	assert.Equal(t, 2, maxCount)
	assert.Equal(t, 5, pointsAtMax)

	maxCount, pointsAtMax = CountMaxOverlap(nil)
	assert.Zero(t, maxCount)
	assert.Zero(t, pointsAtMax)
}

func TestCountMaxOverlap_CountsTies(t *testing.T) {
	lines := []Line{
		mustParse(t, "0,0 -> 2,0"),
		mustParse(t, "0,0 -> 0,2"),
		mustParse(t, "2,0 -> 2,2"),
		mustParse(t, "5,5 -> 9,9"),
	}

	maxCount, pointsAtMax := CountMaxOverlap(lines)
	assert.Equal(t, 2, maxCount)
	assert.Equal(t, 2, pointsAtMax)
}

func TestSolver(t *testing.T) {
	var s Solver

	got, err := s.Part1(&example)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	got, err = s.Part2(&example)
	require.NoError(t, err)
	assert.Equal(t, 12, got)

	bad := "0,9 -> 5,9\nnope\n"
	_, err = s.Part1(&bad)
	require.ErrorIs(t, err, puzzle.ErrParse)
}
