package crabs

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudstek/aoc2021/puzzle"
	"github.com/cloudstek/aoc2021/puzzle/internal/testutil"
)

var example = []int64{16, 1, 2, 0, 4, 2, 7, 1, 2, 14}

func TestSolver_Golden(t *testing.T) {
	tc := testutil.GoldenCase(t, Day)
	answers, _, err := puzzle.Solve(context.Background(), New(), testutil.ExampleInput(t, tc))
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answers(tc.Answers), answers)
}

func TestFuelTo(t *testing.T) {
	tests := []struct {
		target int64
		cost   Cost
		want   int64
	}{
		{2, Linear, 37},
		{1, Linear, 41},
		{10, Linear, 71},
		{5, Increasing, 168},
		{2, Increasing, 206},
	}
	for _, tt := range tests {
		got, err := FuelTo(example, tt.target, tt.cost)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "target %d", tt.target)
	}
}

func TestFuelTo_Overflow_IsInvalid(t *testing.T) {
	// Each crab costs about 2^61 at the far end, so a handful overflow.
	positions := make([]int64, 8)
	_, err := FuelTo(positions, maxPosition, Increasing)
	assert.ErrorIs(t, err, puzzle.ErrInvalidInput)
}

func TestAlign_MatchesBruteForce(t *testing.T) {
	cases := [][]int64{
		example,
		{0},
		{0, 100},
		{3, 3, 3, 9},
		{1, 2, 50, 51, 52, 1000},
	}
	for _, positions := range cases {
		hi := int64(0)
		for _, p := range positions {
			hi = max(hi, p)
		}
		for _, linear := range []bool{true, false} {
			cost := Increasing
			if linear {
				cost = Linear
			}
			best, err := FuelTo(positions, 0, cost)
			require.NoError(t, err)
			for x := int64(1); x <= hi; x++ {
				f, err := FuelTo(positions, x, cost)
				require.NoError(t, err)
				best = min(best, f)
			}
			_, fuel, err := Align(context.Background(), positions, cost, linear)
			require.NoError(t, err)
			assert.Equal(t, best, fuel, "positions=%v linear=%v", positions, linear)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	for name, input := range map[string]string{
		"empty":      "",
		"negative":   "1,-2,3",
		"two lines":  "1,2\n3\n",
		"not number": "1,x",
		"max int":    "9223372036854775807,9223372036854775807,0",
		"too far":    "0,2147483649",
	} {
		t.Run(name, func(t *testing.T) {
			err := New().Parse(context.Background(), strings.NewReader(input))
			assert.ErrorIs(t, err, puzzle.ErrInvalidInput)
		})
	}
}

func TestSolve_LargestPositions(t *testing.T) {
	p := New()
	require.NoError(t, p.Parse(context.Background(), strings.NewReader("2147483648,2147483648,0\n")))
	answers, err := p.Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answers{1 << 31, 1537228674240785067}, answers)
}
