package bingo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudstek/aoc2021/puzzle"
	"github.com/cloudstek/aoc2021/puzzle/internal/testutil"
)

func TestSolver_Golden(t *testing.T) {
	tc := testutil.GoldenCase(t, Day)

	for _, p := range []puzzle.Puzzle{New(), NewWithWorkers(1), NewWithWorkers(4)} {
		answers, _, err := puzzle.Solve(context.Background(), p, testutil.ExampleInput(t, tc))
		require.NoError(t, err)
		assert.Equal(t, puzzle.Answers(tc.Answers), answers)
	}
}

func TestSolver_Registered(t *testing.T) {
	e, ok := puzzle.Lookup(Day)
	require.True(t, ok)
	assert.Equal(t, "Giant Squid", e.Title)
}

func TestSolver_SolveBeforeParse(t *testing.T) {
	_, err := New().Solve(context.Background())
	assert.ErrorIs(t, err, puzzle.ErrNotParsed)
}
