// Package vents solves Day 5 (Hydrothermal Venture): counting points where
// lines of hydrothermal vents overlap.
package vents

import (
	"context"
	"io"
	"regexp"
	"strconv"

	"github.com/cloudstek/aoc2021/puzzle"
	"github.com/cloudstek/aoc2021/puzzle/internal/mathx"
)

const Day = 5

// maxCells bounds the dense overlap grid.
const maxCells = 1 << 26

func init() {
	puzzle.Register(Day, "Hydrothermal Venture", New)
}

var lineRx = regexp.MustCompile(`^\s*(\d+),(\d+)\s*->\s*(\d+),(\d+)\s*$`)

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Line is a vent line between two inclusive end points. Only horizontal,
// vertical and 45° diagonal lines are valid.
type Line struct {
	Start, End Point
}

func (l Line) Horizontal() bool { return l.Start.Y == l.End.Y }
func (l Line) Vertical() bool   { return l.Start.X == l.End.X }
func (l Line) Diagonal() bool   { return !l.Horizontal() && !l.Vertical() }

// Points calls fn for every point on the line, start to end.
func (l Line) Points(fn func(Point)) {
	dx := mathx.Sign(l.End.X - l.Start.X)
	dy := mathx.Sign(l.End.Y - l.Start.Y)
	steps := max(mathx.Abs(l.End.X-l.Start.X), mathx.Abs(l.End.Y-l.Start.Y))
	for i := 0; i <= steps; i++ {
		fn(Point{X: l.Start.X + i*dx, Y: l.Start.Y + i*dy})
	}
}

func (l Line) within(bounds Point) bool {
	for _, p := range []Point{l.Start, l.End} {
		if p.X < 0 || p.Y < 0 || p.X > bounds.X || p.Y > bounds.Y {
			return false
		}
	}
	return true
}

// checkGrid rejects grids over maxCells cells. Each side is bounded first so
// the area cannot overflow.
func checkGrid(bounds Point) error {
	if bounds.X < 0 || bounds.Y < 0 {
		return puzzle.Invalidf(0, "negative grid bounds %v", bounds)
	}
	if bounds.X >= maxCells || bounds.Y >= maxCells || (bounds.X+1)*(bounds.Y+1) > maxCells {
		return puzzle.Invalidf(0, "grid up to %v has more than %d cells", bounds, maxCells)
	}
	return nil
}

// ParseLine parses "x1,y1 -> x2,y2".
func ParseLine(line int, text string) (Line, error) {
	m := lineRx.FindStringSubmatch(text)
	if m == nil {
		return Line{}, puzzle.Invalidf(line, "want \"x1,y1 -> x2,y2\", got %q", text)
	}
	var v [4]int
	for i := range v {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Line{}, puzzle.Invalidf(line, "coordinate out of range: %q", m[i+1])
		}
		v[i] = n
	}
	l := Line{Start: Point{v[0], v[1]}, End: Point{v[2], v[3]}}
	if l.Diagonal() && mathx.Abs(l.End.X-l.Start.X) != mathx.Abs(l.End.Y-l.Start.Y) {
		return Line{}, puzzle.Invalidf(line, "diagonal is not at 45 degrees: %q", text)
	}
	return l, nil
}

type Solver struct {
	lines  []Line
	bounds Point // largest X and Y over all end points
}

func New() puzzle.Puzzle {
	return &Solver{}
}

func (s *Solver) Parse(ctx context.Context, r io.Reader) error {
	raw, err := puzzle.ReadLines(ctx, r)
	if err != nil {
		return err
	}
	var lines []Line
	var bounds Point
	for _, nl := range puzzle.NonEmpty(raw) {
		l, err := ParseLine(nl.No, nl.Text)
		if err != nil {
			return err
		}
		bounds.X = max(bounds.X, l.Start.X, l.End.X)
		bounds.Y = max(bounds.Y, l.Start.Y, l.End.Y)
		lines = append(lines, l)
	}
	if len(lines) == 0 {
		return puzzle.Invalidf(0, "no vent lines")
	}
	if err := checkGrid(bounds); err != nil {
		return err
	}
	s.lines, s.bounds = lines, bounds
	return nil
}

func (s *Solver) Solve(ctx context.Context) (puzzle.Answers, error) {
	if s.lines == nil {
		return nil, puzzle.ErrNotParsed
	}
	a, err := CountOverlaps(ctx, s.lines, s.bounds, false)
	if err != nil {
		return nil, err
	}
	b, err := CountOverlaps(ctx, s.lines, s.bounds, true)
	if err != nil {
		return nil, err
	}
	return puzzle.Answers{int64(a), int64(b)}, nil
}

// CountOverlaps draws the lines on a grid covering [0, bounds] and returns
// the number of points covered by at least two lines. Diagonal lines are
// skipped unless diagonals is true.
func CountOverlaps(ctx context.Context, lines []Line, bounds Point, diagonals bool) (int, error) {
	if err := checkGrid(bounds); err != nil {
		return 0, err
	}
	for _, l := range lines {
		if !l.within(bounds) {
			return 0, puzzle.Invalidf(0, "line %v -> %v outside grid [0, %v]", l.Start, l.End, bounds)
		}
	}
	width := bounds.X + 1
	grid := make([]uint16, width*(bounds.Y+1))
	overlaps := 0
	for _, l := range lines {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if l.Diagonal() && !diagonals {
			continue
		}
		l.Points(func(p Point) {
			cell := &grid[p.Y*width+p.X]
			if *cell == 1 {
				overlaps++
			}
			if *cell < 2 {
				*cell++
			}
		})
	}
	return overlaps, nil
}
