package bingo

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, in *Input) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := in.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestGenerator_SameSeed_IdenticalInput(t *testing.T) {
	g1, err := NewGenerator(GeneratorConfig{Seed: 42, Boards: 10})
	require.NoError(t, err)
	g2, err := NewGenerator(GeneratorConfig{Seed: 42, Boards: 10})
	require.NoError(t, err)

	assert.Equal(t, render(t, g1.Generate()), render(t, g2.Generate()))
}

func TestGenerator_DifferentSeeds_DifferentInput(t *testing.T) {
	g1, err := NewGenerator(GeneratorConfig{Seed: 100, Boards: 10})
	require.NoError(t, err)
	g2, err := NewGenerator(GeneratorConfig{Seed: 200, Boards: 10})
	require.NoError(t, err)

	assert.NotEqual(t, render(t, g1.Generate()), render(t, g2.Generate()))
}

func TestGenerator_BoardCountDoesNotChangeDraws(t *testing.T) {
	small, err := NewGenerator(GeneratorConfig{Seed: 9, Boards: 1})
	require.NoError(t, err)
	large, err := NewGenerator(GeneratorConfig{Seed: 9, Boards: 500})
	require.NoError(t, err)

	assert.Equal(t, small.Generate().Draws, large.Generate().Draws)
}

func TestGenerator_Defaults(t *testing.T) {
	g, err := NewGenerator(GeneratorConfig{Boards: 3})
	require.NoError(t, err)

	cfg := g.Config()
	assert.Equal(t, DefaultRows, cfg.Rows)
	assert.Equal(t, DefaultCols, cfg.Cols)
	assert.Equal(t, 99, cfg.MaxNumber)
	assert.Equal(t, 100, cfg.Draws)

	in := g.Generate()
	assert.Len(t, in.Draws, 100)
	assert.Len(t, in.Boards, 3)
}

func TestGenerator_BoardsHaveUniqueNumbersInRange(t *testing.T) {
	g, err := NewGenerator(GeneratorConfig{Seed: 3, Boards: 50, MaxNumber: 30})
	require.NoError(t, err)

	for i, b := range g.Generate().Boards {
		seen := make(map[int]bool)
		for _, n := range b.numbers {
			assert.False(t, seen[n], "board %d repeats %d", i, n)
			assert.True(t, n >= 0 && n <= 30, "board %d has out-of-range %d", i, n)
			seen[n] = true
		}
	}
}

func TestGenerator_OutputParses(t *testing.T) {
	g, err := NewGenerator(GeneratorConfig{Seed: 5, Boards: 20})
	require.NoError(t, err)
	want := g.Generate()

	got, err := ParseInput(context.Background(), bytes.NewBufferString(render(t, want)))
	require.NoError(t, err)
	assert.Equal(t, want.Draws, got.Draws)
	require.Len(t, got.Boards, len(want.Boards))
	for i := range want.Boards {
		assert.Equal(t, want.Boards[i].numbers, got.Boards[i].numbers, "board %d", i)
	}
}

func TestNewGenerator_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  GeneratorConfig
	}{
		{"no boards", GeneratorConfig{Boards: 0}},
		{"negative rows", GeneratorConfig{Boards: 1, Rows: -1}},
		{"too few numbers", GeneratorConfig{Boards: 1, MaxNumber: 10}},
		{"too many draws", GeneratorConfig{Boards: 1, Draws: 101}},
		{"negative draws", GeneratorConfig{Boards: 1, Draws: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGenerator(tt.cfg)
			assert.Error(t, err)
		})
	}
}
