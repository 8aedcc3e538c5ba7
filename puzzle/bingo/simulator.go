package bingo

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ErrNoWinner is returned when the draws run out before the game is decided.
// With valid puzzle input this cannot happen.
var ErrNoWinner = errors.New("no winning board")

// Win records the moment a board first completes a row or column.
type Win struct {
	Board     int // index into the simulator's boards
	DrawIndex int // position in the draw sequence
	Draw      int // number that completed the board
	Score     int // SumUnmarked at the time of winning × Draw
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithWorkers bounds how many goroutines mark boards for a single draw.
// Values below 1 are treated as 1 (sequential marking).
func WithWorkers(n int) Option {
	return func(s *Simulator) {
		if n < 1 {
			n = 1
		}
		s.workers = n
	}
}

// Simulator plays draws against a set of boards.
//
// Every game starts from clones of the boards given to NewSimulator, so
// FirstWinner, LastWinner and Play can be called in any order and any number
// of times with the same result.
//
// Win order is deterministic: draws are processed in sequence, and boards
// completing on the same draw are ordered by ascending board index no matter
// which worker finished first.
type Simulator struct {
	draws   []int
	boards  []*Board
	workers int
}

// NewSimulator creates a simulator. By default marking uses runtime.NumCPU() workers.
func NewSimulator(draws []int, boards []*Board, opts ...Option) *Simulator {
	s := &Simulator{
		draws:   draws,
		boards:  boards,
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FirstWinner returns the first board to win. Ties on the same draw go to
// the lowest board index.
func (s *Simulator) FirstWinner(ctx context.Context) (Win, error) {
	wins, err := s.run(ctx, true)
	if err != nil {
		return Win{}, err
	}
	return wins[0], nil
}

// LastWinner returns the board that wins last once every board has won.
// Boards that already won are not marked any further, so the score reflects
// the board at the moment it won. When several boards complete on the final
// draw, the one with the highest index (the last in iteration order) is
// returned.
func (s *Simulator) LastWinner(ctx context.Context) (Win, error) {
	wins, err := s.run(ctx, false)
	if err != nil {
		return Win{}, err
	}
	return wins[len(wins)-1], nil
}

// Play runs the game until every board has won and returns all wins in
// order. If the draws run out first, the wins so far are returned together
// with an error wrapping ErrNoWinner.
func (s *Simulator) Play(ctx context.Context) ([]Win, error) {
	return s.run(ctx, false)
}

func (s *Simulator) run(ctx context.Context, stopAtFirst bool) ([]Win, error) {
	if len(s.boards) == 0 {
		return nil, fmt.Errorf("%w: no boards", ErrNoWinner)
	}

	boards := make([]*Board, len(s.boards))
	active := make([]int, len(s.boards))
	for i, b := range s.boards {
		boards[i] = b.Clone()
		active[i] = i
	}

	var wins []Win
	for di, draw := range s.draws {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		won, err := s.markRound(ctx, boards, active, draw)
		if err != nil {
			return nil, err
		}
		if len(won) == 0 {
			continue
		}

		for _, i := range won {
			w := Win{Board: i, DrawIndex: di, Draw: draw, Score: boards[i].SumUnmarked() * draw}
			logrus.Debugf("bingo: board %d wins on draw #%d (%d), score %d", w.Board, di, draw, w.Score)
			wins = append(wins, w)
		}
		if stopAtFirst {
			return wins, nil
		}

		active = without(active, won)
		if len(active) == 0 {
			logrus.Debugf("bingo: all %d boards won after %d of %d draws", len(boards), di+1, len(s.draws))
			return wins, nil
		}
	}

	if stopAtFirst {
		return nil, fmt.Errorf("%w: none of %d boards won after %d draws", ErrNoWinner, len(boards), len(s.draws))
	}
	return wins, fmt.Errorf("%w: %d of %d boards never won after %d draws",
		ErrNoWinner, len(active), len(boards), len(s.draws))
}

// markRound marks draw on every active board and returns the indices of the
// boards that have bingo afterwards, ascending.
//
// Active boards are split into contiguous chunks, one per worker. Each worker
// only touches its own boards and its own slots in hit, so there is no shared
// mutable state; the hit slots are read back in index order after all
// workers finish.
func (s *Simulator) markRound(ctx context.Context, boards []*Board, active []int, draw int) ([]int, error) {
	hit := make([]bool, len(active))
	markRange := func(ctx context.Context, lo, hi int) error {
		for k := lo; k < hi; k++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			b := boards[active[k]]
			b.Mark(draw)
			hit[k] = b.HasBingo()
		}
		return nil
	}

	workers := min(s.workers, len(active))
	if workers <= 1 {
		if err := markRange(ctx, 0, len(active)); err != nil {
			return nil, err
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		chunk := (len(active) + workers - 1) / workers
		for lo := 0; lo < len(active); lo += chunk {
			hi := min(lo+chunk, len(active))
			g.Go(func() error { return markRange(gctx, lo, hi) })
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	var won []int
	for k, h := range hit {
		if h {
			won = append(won, active[k])
		}
	}
	return won, nil
}

// without returns the elements of active not in remove. Both are ascending.
func without(active, remove []int) []int {
	out := active[:0]
	j := 0
	for _, v := range active {
		for j < len(remove) && remove[j] < v {
			j++
		}
		if j < len(remove) && remove[j] == v {
			continue
		}
		out = append(out, v)
	}
	return out
}
