package bingo

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// RNG stream names. Each stream is seeded independently so that, for
// example, changing the board count never changes the draw sequence.
const (
	streamDraws  = "draws"
	streamBoards = "boards"
)

// GeneratorConfig parameterizes a random bingo input.
type GeneratorConfig struct {
	Seed      int64
	Boards    int // number of boards (must be > 0)
	Rows      int // rows per board (0 = DefaultRows)
	Cols      int // columns per board (0 = DefaultCols)
	MaxNumber int // numbers are drawn from [0, MaxNumber] (0 = 99)
	Draws     int // length of the draw sequence (0 = every number once)
}

// Generator produces deterministic random bingo inputs.
// Two generators with the same config produce identical inputs.
type Generator struct {
	cfg   GeneratorConfig
	draws *rand.Rand
	cards *rand.Rand
}

// NewGenerator validates cfg, fills in defaults and seeds the RNG streams.
func NewGenerator(cfg GeneratorConfig) (*Generator, error) {
	if cfg.Rows == 0 {
		cfg.Rows = DefaultRows
	}
	if cfg.Cols == 0 {
		cfg.Cols = DefaultCols
	}
	if cfg.MaxNumber == 0 {
		cfg.MaxNumber = 99
	}
	pool := cfg.MaxNumber + 1
	if cfg.Draws == 0 {
		cfg.Draws = pool
	}

	switch {
	case cfg.Boards <= 0:
		return nil, fmt.Errorf("boards must be positive, got %d", cfg.Boards)
	case cfg.Rows < 0 || cfg.Cols < 0:
		return nil, fmt.Errorf("board size must be positive, got %dx%d", cfg.Rows, cfg.Cols)
	case cfg.MaxNumber < 0:
		return nil, fmt.Errorf("max number must be non-negative, got %d", cfg.MaxNumber)
	case cfg.Rows*cfg.Cols > pool:
		return nil, fmt.Errorf("a %dx%d board needs %d distinct numbers, only %d available",
			cfg.Rows, cfg.Cols, cfg.Rows*cfg.Cols, pool)
	case cfg.Draws < 0 || cfg.Draws > pool:
		return nil, fmt.Errorf("draws must be in [1, %d], got %d", pool, cfg.Draws)
	}

	return &Generator{
		cfg:   cfg,
		draws: rand.New(rand.NewSource(streamSeed(cfg.Seed, streamDraws))),
		cards: rand.New(rand.NewSource(streamSeed(cfg.Seed, streamBoards))),
	}, nil
}

// Config returns the effective configuration, defaults applied.
func (g *Generator) Config() GeneratorConfig {
	return g.cfg
}

// Generate returns a fresh random input. Successive calls on the same
// generator continue the RNG streams and so return different inputs.
func (g *Generator) Generate() *Input {
	pool := g.cfg.MaxNumber + 1
	in := &Input{
		Draws:  g.draws.Perm(pool)[:g.cfg.Draws],
		Boards: make([]*Board, g.cfg.Boards),
	}
	cells := g.cfg.Rows * g.cfg.Cols
	for i := range in.Boards {
		nums := g.cards.Perm(pool)[:cells]
		in.Boards[i] = &Board{
			rows:    g.cfg.Rows,
			cols:    g.cfg.Cols,
			numbers: nums,
			marked:  make([]bool, cells),
		}
	}
	return in
}

// streamSeed derives a stream seed as seed XOR fnv1a64(name).
func streamSeed(seed int64, name string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return seed ^ int64(h.Sum64())
}
