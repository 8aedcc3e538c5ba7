// Package dive solves Day 2 (Dive!): following the submarine's planned course.
package dive

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloudstek/aoc2021/puzzle"
	"github.com/cloudstek/aoc2021/puzzle/internal/mathx"
)

const Day = 2

// maxUnits bounds a single command's units.
const maxUnits = 1 << 31

func init() {
	puzzle.Register(Day, "Dive!", New)
}

// Direction is a course command.
type Direction int

const (
	Forward Direction = iota
	Down
	Up
)

var directionNames = map[string]Direction{
	"forward": Forward,
	"down":    Down,
	"up":      Up,
}

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Down:
		return "down"
	case Up:
		return "up"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Command is one step of the course, e.g. "forward 5".
type Command struct {
	Dir   Direction
	Units int
}

// Position is the submarine's horizontal position and depth.
type Position struct {
	X, Depth int
}

type Solver struct {
	course []Command
}

func New() puzzle.Puzzle {
	return &Solver{}
}

func (s *Solver) Parse(ctx context.Context, r io.Reader) error {
	lines, err := puzzle.ReadLines(ctx, r)
	if err != nil {
		return err
	}
	var course []Command
	for _, l := range puzzle.NonEmpty(lines) {
		c, err := ParseCommand(l.No, l.Text)
		if err != nil {
			return err
		}
		course = append(course, c)
	}
	if len(course) == 0 {
		return puzzle.Invalidf(0, "empty course")
	}
	s.course = course
	return nil
}

// ParseCommand parses "<direction> <units>" with units >= 0.
func ParseCommand(line int, text string) (Command, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return Command{}, puzzle.Invalidf(line, "want \"<direction> <units>\", got %q", text)
	}
	dir, ok := directionNames[fields[0]]
	if !ok {
		return Command{}, puzzle.Invalidf(line, "unknown direction %q", fields[0])
	}
	units, err := puzzle.ParseInt(line, fields[1])
	if err != nil {
		return Command{}, err
	}
	if units < 0 || units > maxUnits {
		return Command{}, puzzle.Invalidf(line, "units %d outside [0, %d]", units, maxUnits)
	}
	return Command{Dir: dir, Units: units}, nil
}

func (s *Solver) Solve(ctx context.Context) (puzzle.Answers, error) {
	if s.course == nil {
		return nil, puzzle.ErrNotParsed
	}
	a, err := Navigate(ctx, s.course)
	if err != nil {
		return nil, err
	}
	b, err := NavigateWithAim(ctx, s.course)
	if err != nil {
		return nil, err
	}
	pa, err := a.product()
	if err != nil {
		return nil, err
	}
	pb, err := b.product()
	if err != nil {
		return nil, err
	}
	return puzzle.Answers{pa, pb}, nil
}

func (p Position) product() (int64, error) {
	v, ok := mathx.MulOK(int64(p.X), int64(p.Depth))
	if !ok {
		return 0, puzzle.Invalidf(0, "x=%d times depth=%d overflows", p.X, p.Depth)
	}
	return v, nil
}

// step adds delta to v, failing on overflow.
func step(v, delta int) (int, error) {
	sum, ok := mathx.AddOK(v, delta)
	if !ok {
		return 0, puzzle.Invalidf(0, "course position overflows")
	}
	return sum, nil
}

// Navigate follows the course with up/down changing depth directly.
func Navigate(ctx context.Context, course []Command) (Position, error) {
	var p Position
	for _, c := range course {
		if err := ctx.Err(); err != nil {
			return Position{}, err
		}
		var err error
		switch c.Dir {
		case Forward:
			p.X, err = step(p.X, c.Units)
		case Down:
			p.Depth, err = step(p.Depth, c.Units)
		case Up:
			p.Depth, err = step(p.Depth, -c.Units)
		}
		if err != nil {
			return Position{}, err
		}
	}
	return p, checkFinal(p)
}

// NavigateWithAim follows the course with up/down changing the aim and
// forward moving along it.
func NavigateWithAim(ctx context.Context, course []Command) (Position, error) {
	var p Position
	aim := 0
	for _, c := range course {
		if err := ctx.Err(); err != nil {
			return Position{}, err
		}
		var err error
		switch c.Dir {
		case Forward:
			p.X, err = step(p.X, c.Units)
			if err != nil {
				return Position{}, err
			}
			delta, ok := mathx.MulOK(aim, c.Units)
			if !ok {
				return Position{}, puzzle.Invalidf(0, "aim %d times %d overflows", aim, c.Units)
			}
			p.Depth, err = step(p.Depth, delta)
		case Down:
			aim, err = step(aim, c.Units)
		case Up:
			aim, err = step(aim, -c.Units)
		}
		if err != nil {
			return Position{}, err
		}
	}
	return p, checkFinal(p)
}

// A course that does not end ahead of and below the start is not a valid puzzle.
func checkFinal(p Position) error {
	if p.X <= 0 || p.Depth <= 0 {
		return puzzle.Invalidf(0, "course ends at x=%d depth=%d, both must be positive", p.X, p.Depth)
	}
	return nil
}
