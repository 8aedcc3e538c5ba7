// Package crabs solves Day 7 (The Treachery of Whales): aligning crab
// submarines on one horizontal position at the least fuel cost.
package crabs

import (
	"context"
	"io"

	"github.com/cloudstek/aoc2021/puzzle"
	"github.com/cloudstek/aoc2021/puzzle/internal/mathx"
)

const Day = 7

// maxPosition bounds a crab's position. Increasing cost at this distance
// still fits in an int64.
const maxPosition = 1 << 31

func init() {
	puzzle.Register(Day, "The Treachery of Whales", New)
}

// Cost is the fuel needed to move a crab a given distance.
type Cost func(distance int64) int64

// Linear burns one unit of fuel per step.
func Linear(d int64) int64 { return d }

// Increasing burns one more unit than the previous step for each step.
func Increasing(d int64) int64 { return mathx.Triangle(d) }

// FuelTo returns the total fuel to move every crab to target. It fails if
// the total does not fit in an int64.
func FuelTo(positions []int64, target int64, cost Cost) (int64, error) {
	var total int64
	for _, p := range positions {
		var ok bool
		if total, ok = mathx.AddOK(total, cost(mathx.Abs(p-target))); !ok {
			return 0, puzzle.Invalidf(0, "fuel to reach %d overflows", target)
		}
	}
	return total, nil
}

// Align returns the cheapest target position and its fuel cost.
//
// For linear cost the median is optimal. For increasing cost the optimum lies
// within half a step of the mean, so only its floor and ceiling are tried.
func Align(ctx context.Context, positions []int64, cost Cost, linear bool) (target, fuel int64, err error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	if len(positions) == 0 {
		return 0, 0, puzzle.Invalidf(0, "no crab positions")
	}
	if linear {
		target = mathx.Median(positions)
		fuel, err = FuelTo(positions, target, cost)
		return target, fuel, err
	}
	var sum int64
	for _, p := range positions {
		var ok bool
		if sum, ok = mathx.AddOK(sum, p); !ok {
			return 0, 0, puzzle.Invalidf(0, "sum of positions overflows")
		}
	}
	lo := sum / int64(len(positions))
	target = lo
	if fuel, err = FuelTo(positions, lo, cost); err != nil {
		return 0, 0, err
	}
	f, err := FuelTo(positions, lo+1, cost)
	if err != nil {
		return 0, 0, err
	}
	if f < fuel {
		target, fuel = lo+1, f
	}
	return target, fuel, nil
}

type Solver struct {
	positions []int64
}

func New() puzzle.Puzzle {
	return &Solver{}
}

// Parse reads a single comma-separated line of positions in [0, maxPosition].
func (s *Solver) Parse(ctx context.Context, r io.Reader) error {
	lines, err := puzzle.ReadLines(ctx, r)
	if err != nil {
		return err
	}
	nonEmpty := puzzle.NonEmpty(lines)
	if len(nonEmpty) == 0 {
		return puzzle.Invalidf(0, "no crab positions")
	}
	if len(nonEmpty) > 1 {
		return puzzle.Invalidf(nonEmpty[1].No, "expected a single line of positions")
	}
	first := nonEmpty[0]
	values, err := puzzle.ParseIntList(first.No, first.Text, ",")
	if err != nil {
		return err
	}
	positions := make([]int64, len(values))
	for i, v := range values {
		if v < 0 || v > maxPosition {
			return puzzle.Invalidf(first.No, "position %d outside [0, %d]", v, maxPosition)
		}
		positions[i] = int64(v)
	}
	s.positions = positions
	return nil
}

func (s *Solver) Solve(ctx context.Context) (puzzle.Answers, error) {
	if s.positions == nil {
		return nil, puzzle.ErrNotParsed
	}
	_, a, err := Align(ctx, s.positions, Linear, true)
	if err != nil {
		return nil, err
	}
	_, b, err := Align(ctx, s.positions, Increasing, false)
	if err != nil {
		return nil, err
	}
	return puzzle.Answers{a, b}, nil
}
