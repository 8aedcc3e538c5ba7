// Package diagnostic solves Day 3 (Binary Diagnostic): power consumption and
// life support ratings from a report of equal-width binary numbers.
package diagnostic

import (
	"context"
	"io"
	"strings"

	"github.com/cloudstek/aoc2021/puzzle"
)

const Day = 3

// maxWidth keeps every reading and every product of two ratings within int64.
const maxWidth = 31

func init() {
	puzzle.Register(Day, "Binary Diagnostic", New)
}

// Report is a diagnostic report. Bit width-1 of each value is the leftmost
// character of its input line.
type Report struct {
	Values []uint64
	Width  int
}

type Solver struct {
	report *Report
}

func New() puzzle.Puzzle {
	return &Solver{}
}

func (s *Solver) Parse(ctx context.Context, r io.Reader) error {
	lines, err := puzzle.ReadLines(ctx, r)
	if err != nil {
		return err
	}
	rep, err := ParseReport(puzzle.NonEmpty(lines))
	if err != nil {
		return err
	}
	s.report = rep
	return nil
}

// ParseReport parses lines of '0'/'1' characters, all of the same width.
func ParseReport(lines []puzzle.NumberedLine) (*Report, error) {
	if len(lines) == 0 {
		return nil, puzzle.Invalidf(0, "empty report")
	}
	rep := &Report{Width: len(strings.TrimSpace(lines[0].Text))}
	if rep.Width == 0 || rep.Width > maxWidth {
		return nil, puzzle.Invalidf(lines[0].No, "width must be in [1, %d], got %d", maxWidth, rep.Width)
	}
	for _, l := range lines {
		text := strings.TrimSpace(l.Text)
		if len(text) != rep.Width {
			return nil, puzzle.Invalidf(l.No, "width %d, want %d", len(text), rep.Width)
		}
		var v uint64
		for _, ch := range text {
			v <<= 1
			switch ch {
			case '1':
				v |= 1
			case '0':
			default:
				return nil, puzzle.Invalidf(l.No, "not a binary digit: %q", ch)
			}
		}
		rep.Values = append(rep.Values, v)
	}
	return rep, nil
}

func (s *Solver) Solve(ctx context.Context) (puzzle.Answers, error) {
	if s.report == nil {
		return nil, puzzle.ErrNotParsed
	}
	gamma, epsilon, err := s.report.PowerRates(ctx)
	if err != nil {
		return nil, err
	}
	oxygen, err := s.report.Rating(ctx, true)
	if err != nil {
		return nil, err
	}
	co2, err := s.report.Rating(ctx, false)
	if err != nil {
		return nil, err
	}
	return puzzle.Answers{int64(gamma * epsilon), int64(oxygen * co2)}, nil
}

// ones counts the values with bit set.
func ones(values []uint64, bit int) int {
	n := 0
	for _, v := range values {
		if v>>bit&1 == 1 {
			n++
		}
	}
	return n
}

// PowerRates returns the gamma rate (most common bit per position, 0 on a
// tie) and the epsilon rate (its complement within the report width).
func (r *Report) PowerRates(ctx context.Context) (gamma, epsilon uint64, err error) {
	for bit := r.Width - 1; bit >= 0; bit-- {
		if err := ctx.Err(); err != nil {
			return 0, 0, err
		}
		gamma <<= 1
		if n := ones(r.Values, bit); n > len(r.Values)-n {
			gamma |= 1
		}
	}
	mask := uint64(1)<<r.Width - 1
	return gamma, ^gamma & mask, nil
}

// Rating filters the report bit by bit, from the left, until one value is
// left. The oxygen generator rating keeps the most common bit (1 on a tie);
// the CO2 scrubber rating keeps the least common bit (0 on a tie).
//
// Duplicate readings may survive every bit; they are equal, so the first is
// returned.
func (r *Report) Rating(ctx context.Context, oxygen bool) (uint64, error) {
	if len(r.Values) == 0 {
		return 0, puzzle.Invalidf(0, "empty report")
	}
	candidates := append([]uint64(nil), r.Values...)
	for bit := r.Width - 1; bit >= 0 && len(candidates) > 1; bit-- {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		n := ones(candidates, bit)
		zeros := len(candidates) - n
		if n == 0 || zeros == 0 {
			// Every candidate agrees on this bit.
			continue
		}

		var keep uint64
		if oxygen && n >= zeros || !oxygen && n < zeros {
			keep = 1
		}

		kept := candidates[:0]
		for _, v := range candidates {
			if v>>bit&1 == keep {
				kept = append(kept, v)
			}
		}
		candidates = kept
	}
	return candidates[0], nil
}
