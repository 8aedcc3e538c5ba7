// Package sonar solves Day 1 (Sonar Sweep): counting depth increases.
package sonar

import (
	"context"
	"io"

	"github.com/cloudstek/aoc2021/puzzle"
)

const Day = 1

func init() {
	puzzle.Register(Day, "Sonar Sweep", New)
}

type Solver struct {
	readings []int
}

func New() puzzle.Puzzle {
	return &Solver{}
}

// Parse reads one depth reading per line. Blank lines are skipped.
func (s *Solver) Parse(ctx context.Context, r io.Reader) error {
	lines, err := puzzle.ReadLines(ctx, r)
	if err != nil {
		return err
	}
	var readings []int
	for _, l := range puzzle.NonEmpty(lines) {
		v, err := puzzle.ParseInt(l.No, l.Text)
		if err != nil {
			return err
		}
		readings = append(readings, v)
	}
	if len(readings) == 0 {
		return puzzle.Invalidf(0, "no readings")
	}
	s.readings = readings
	return nil
}

func (s *Solver) Solve(ctx context.Context) (puzzle.Answers, error) {
	if s.readings == nil {
		return nil, puzzle.ErrNotParsed
	}
	a, err := CountIncreases(ctx, s.readings, 1)
	if err != nil {
		return nil, err
	}
	b, err := CountIncreases(ctx, s.readings, 3)
	if err != nil {
		return nil, err
	}
	return puzzle.Answers{int64(a), int64(b)}, nil
}

// CountIncreases counts how often the sum of a sliding window of the given
// size is larger than the sum of the window before it.
//
// Consecutive windows share all but one reading, so comparing the sums is the
// same as comparing readings[i+window] with readings[i].
func CountIncreases(ctx context.Context, readings []int, window int) (int, error) {
	if window < 1 {
		return 0, puzzle.Invalidf(0, "window must be positive, got %d", window)
	}
	if need := max(window, 2); len(readings) < need {
		return 0, puzzle.Invalidf(0, "need at least %d readings, got %d", need, len(readings))
	}

	count := 0
	for i := 0; i+window < len(readings); i++ {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		if readings[i+window] > readings[i] {
			count++
		}
	}
	return count, nil
}
