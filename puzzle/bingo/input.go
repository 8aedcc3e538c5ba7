package bingo

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloudstek/aoc2021/puzzle"
)

// Input is a parsed bingo puzzle: the draw sequence and the boards.
type Input struct {
	Draws  []int
	Boards []*Board
}

// ParseInput reads the draw line followed by blank-line separated 5×5 boards.
func ParseInput(ctx context.Context, r io.Reader) (*Input, error) {
	return ParseInputSize(ctx, r, DefaultRows, DefaultCols)
}

// ParseInputSize is ParseInput for boards of rows×cols.
func ParseInputSize(ctx context.Context, r io.Reader, rows, cols int) (*Input, error) {
	lines, err := puzzle.ReadLines(ctx, r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, puzzle.Invalidf(0, "empty input")
	}

	draws, err := puzzle.ParseIntList(1, lines[0], ",")
	if err != nil {
		return nil, err
	}

	in := &Input{Draws: draws}
	var block []string
	blockStart := 0
	flush := func() error {
		if len(block) == 0 {
			return nil
		}
		b, err := ParseBoard(block, blockStart, rows, cols)
		if err != nil {
			return err
		}
		in.Boards = append(in.Boards, b)
		block = nil
		return nil
	}

	for i := 1; i < len(lines); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if strings.TrimSpace(lines[i]) == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		if len(block) == 0 {
			blockStart = i + 1
		}
		block = append(block, lines[i])
	}
	if err := flush(); err != nil {
		return nil, err
	}

	if len(in.Boards) == 0 {
		return nil, puzzle.Invalidf(0, "no boards")
	}
	return in, nil
}

// WriteTo writes the input in puzzle format.
func (in *Input) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	for i, d := range in.Draws {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", d)
	}
	sb.WriteByte('\n')
	for _, b := range in.Boards {
		sb.WriteByte('\n')
		for r := 0; r < b.rows; r++ {
			for c := 0; c < b.cols; c++ {
				if c > 0 {
					sb.WriteByte(' ')
				}
				fmt.Fprintf(&sb, "%2d", b.numbers[r*b.cols+c])
			}
			sb.WriteByte('\n')
		}
	}
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}
