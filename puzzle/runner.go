package puzzle

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// RunConfig controls a batch of puzzle runs.
type RunConfig struct {
	InputDir string         // directory holding dayNN.txt files
	Inputs   map[int]string // per-day input path overrides (optional)
	Workers  int            // max days solved concurrently (<= 0 means runtime.NumCPU())

	// Open opens an input path. Nil means os.Open.
	Open func(string) (io.ReadCloser, error)
}

// InputPath returns the input file for day: the override if present,
// otherwise <InputDir>/dayNN.txt.
func (c RunConfig) InputPath(day int) string {
	if p, ok := c.Inputs[day]; ok && p != "" {
		return p
	}
	return filepath.Join(c.InputDir, DefaultInputName(day))
}

// DefaultInputName is the file name a day's input is looked up under.
func DefaultInputName(day int) string {
	return fmt.Sprintf("day%02d.txt", day)
}

// Result is the outcome of one day.
type Result struct {
	Day     int
	Title   string
	Answers Answers
	Elapsed time.Duration // Solve only; parsing is excluded
	Err     error
}

// Run solves the given days concurrently and returns one Result per day in
// the order given. A failing day does not stop the others; its error is in
// Result.Err. Run itself only fails for days that are not registered.
func Run(ctx context.Context, days []int, cfg RunConfig) ([]Result, error) {
	entries := make([]Entry, len(days))
	for i, d := range days {
		e, ok := Lookup(d)
		if !ok {
			return nil, fmt.Errorf("day %d: no solver registered", d)
		}
		entries[i] = e
	}

	open := cfg.Open
	if open == nil {
		open = func(path string) (io.ReadCloser, error) { return os.Open(path) }
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(entries))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, e := range entries {
		g.Go(func() error {
			results[i] = runOne(ctx, e, cfg.InputPath(e.Day), open)
			return nil
		})
	}
	_ = g.Wait()
	return results, nil
}

func runOne(ctx context.Context, e Entry, path string, open func(string) (io.ReadCloser, error)) Result {
	res := Result{Day: e.Day, Title: e.Title}
	log := logrus.WithField("day", e.Day)

	f, err := open(path)
	if err != nil {
		res.Err = fmt.Errorf("opening input: %w", err)
		return res
	}
	defer func() { _ = f.Close() }()

	res.Answers, res.Elapsed, res.Err = Solve(ctx, e.New(), f)
	if res.Err != nil {
		log.Warnf("failed: %v", res.Err)
		return res
	}
	log.Debugf("solved in %v: %v", res.Elapsed, res.Answers)
	return res
}

// Solve parses r into p and solves it, timing the Solve step.
func Solve(ctx context.Context, p Puzzle, r io.Reader) (Answers, time.Duration, error) {
	if err := p.Parse(ctx, r); err != nil {
		return nil, 0, err
	}
	start := time.Now()
	answers, err := p.Solve(ctx)
	elapsed := time.Since(start)
	if err != nil {
		return nil, elapsed, err
	}
	return answers, elapsed, nil
}
