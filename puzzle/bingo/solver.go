package bingo

import (
	"context"
	"io"

	"github.com/cloudstek/aoc2021/puzzle"
)

// Day is the Advent of Code 2021 day this package solves.
const Day = 4

func init() {
	puzzle.Register(Day, "Giant Squid", New)
}

// Solver answers Day 4: the score of the first (part A) and last (part B)
// winning board.
type Solver struct {
	input   *Input
	workers int
}

// New returns an unparsed Day 4 solver marking boards on runtime.NumCPU() workers.
func New() puzzle.Puzzle {
	return &Solver{}
}

// NewWithWorkers returns a solver with a fixed marking worker count.
func NewWithWorkers(workers int) *Solver {
	return &Solver{workers: workers}
}

func (s *Solver) Parse(ctx context.Context, r io.Reader) error {
	in, err := ParseInput(ctx, r)
	if err != nil {
		return err
	}
	s.input = in
	return nil
}

func (s *Solver) Solve(ctx context.Context) (puzzle.Answers, error) {
	if s.input == nil {
		return nil, puzzle.ErrNotParsed
	}
	var opts []Option
	if s.workers > 0 {
		opts = append(opts, WithWorkers(s.workers))
	}
	sim := NewSimulator(s.input.Draws, s.input.Boards, opts...)

	first, err := sim.FirstWinner(ctx)
	if err != nil {
		return nil, err
	}
	last, err := sim.LastWinner(ctx)
	if err != nil {
		return nil, err
	}
	return puzzle.Answers{int64(first.Score), int64(last.Score)}, nil
}
