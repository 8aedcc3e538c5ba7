// Package lanternfish solves Day 6 (Lanternfish): modelling an exponentially
// growing school of fish by counting fish per timer value.
package lanternfish

import (
	"context"
	"io"
	"math"

	"github.com/cloudstek/aoc2021/puzzle"
	"github.com/cloudstek/aoc2021/puzzle/internal/mathx"
)

const Day = 6

const (
	// ResetTimer is the timer a fish returns to after spawning.
	ResetTimer = 6
	// NewbornTimer is the timer of a freshly spawned fish.
	NewbornTimer = 8
)

func init() {
	puzzle.Register(Day, "Lanternfish", New)
}

// School counts fish by internal timer value.
type School [NewbornTimer + 1]int64

// Size returns the number of fish in the school.
func (s School) Size() int64 {
	return mathx.Sum(s[:]...)
}

// Step advances the school by one day.
func (s School) Step() School {
	var next School
	copy(next[:], s[1:])
	next[ResetTimer] += s[0]
	next[NewbornTimer] = s[0]
	return next
}

// ParseSchool parses a comma-separated list of timers.
func ParseSchool(line int, text string) (School, error) {
	timers, err := puzzle.ParseIntList(line, text, ",")
	if err != nil {
		return School{}, err
	}
	var s School
	for _, t := range timers {
		if t < 0 || t > NewbornTimer {
			return School{}, puzzle.Invalidf(line, "timer %d outside 0..%d", t, NewbornTimer)
		}
		s[t]++
	}
	return s, nil
}

// Simulate returns the school after days days. It fails if the population
// no longer fits in an int64.
func Simulate(ctx context.Context, s School, days int) (School, error) {
	for d := 0; d < days; d++ {
		if d%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return School{}, err
			}
		}
		if s[0] > math.MaxInt64-s.Size() {
			return School{}, puzzle.Invalidf(0, "population overflows after %d days", d)
		}
		s = s.Step()
	}
	return s, nil
}

type Solver struct {
	school School
	parsed bool
}

func New() puzzle.Puzzle {
	return &Solver{}
}

func (s *Solver) Parse(ctx context.Context, r io.Reader) error {
	lines, err := puzzle.ReadLines(ctx, r)
	if err != nil {
		return err
	}
	nonEmpty := puzzle.NonEmpty(lines)
	switch len(nonEmpty) {
	case 0:
		return puzzle.Invalidf(0, "no fish")
	case 1:
	default:
		return puzzle.Invalidf(nonEmpty[1].No, "expected a single line of timers")
	}
	school, err := ParseSchool(nonEmpty[0].No, nonEmpty[0].Text)
	if err != nil {
		return err
	}
	s.school, s.parsed = school, true
	return nil
}

func (s *Solver) Solve(ctx context.Context) (puzzle.Answers, error) {
	if !s.parsed {
		return nil, puzzle.ErrNotParsed
	}
	after80, err := Simulate(ctx, s.school, 80)
	if err != nil {
		return nil, err
	}
	after256, err := Simulate(ctx, after80, 256-80)
	if err != nil {
		return nil, err
	}
	return puzzle.Answers{after80.Size(), after256.Size()}, nil
}
