package bingo

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudstek/aoc2021/puzzle"
	"github.com/cloudstek/aoc2021/puzzle/internal/testutil"
)

const validBoard = `22 13 17 11  0
 8  2 23  4 24
21  9 14 16  7
 6 10  3 18  5
 1 12 20 15 19
`

func TestParseInput_Example(t *testing.T) {
	in := loadExample(t)
	assert.Len(t, in.Draws, 27)
	assert.Equal(t, []int{7, 4, 9, 5, 11}, in.Draws[:5])
	assert.Len(t, in.Boards, 3)
}

func TestParseInput_CRLFAndExtraBlankLines(t *testing.T) {
	raw := "1,2,3\r\n\r\n\r\n" + strings.ReplaceAll(validBoard, "\n", "\r\n") + "\r\n\r\n"
	in, err := ParseInput(context.Background(), strings.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, in.Draws)
	require.Len(t, in.Boards, 1)
	assert.Equal(t, 300, in.Boards[0].SumUnmarked())
}

func TestParseInput_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{"empty", "", 0},
		{"empty draw line", "\n\n" + validBoard, 1},
		{"non-numeric draw", "1,two,3\n\n" + validBoard, 1},
		{"no boards", "1,2,3\n\n", 0},
		{"short board", "1,2,3\n\n22 13 17 11  0\n 8  2 23  4 24\n", 3},
		{"wide row", "1,2,3\n\n" + strings.Replace(validBoard, "22 13", "22 13 99", 1), 3},
		{"bad token", "1,2,3\n\n" + validBoard + "\n" + strings.Replace(validBoard, "14", "1x", 1), 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseInput(context.Background(), strings.NewReader(tt.input))
			require.ErrorIs(t, err, puzzle.ErrInvalidInput)

			var inErr *puzzle.InputError
			require.ErrorAs(t, err, &inErr)
			assert.Equal(t, tt.wantLine, inErr.Line)
		})
	}
}

func TestParseInput_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ParseInput(ctx, strings.NewReader("1,2\n\n"+validBoard))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInput_WriteTo_RoundTrip(t *testing.T) {
	tc := testutil.GoldenCase(t, Day)
	orig := loadExample(t)

	var buf bytes.Buffer
	_, err := orig.WriteTo(&buf)
	require.NoError(t, err)

	again, err := ParseInput(context.Background(), &buf)
	require.NoError(t, err)

	// Same game, same answers.
	ctx := context.Background()
	first, err := NewSimulator(again.Draws, again.Boards).FirstWinner(ctx)
	require.NoError(t, err)
	last, err := NewSimulator(again.Draws, again.Boards).LastWinner(ctx)
	require.NoError(t, err)
	assert.Equal(t, tc.Answers, []int64{int64(first.Score), int64(last.Score)})
}
