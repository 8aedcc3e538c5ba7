package bingo

import (
	"fmt"
	"strings"

	"github.com/cloudstek/aoc2021/puzzle"
)

// Standard board dimensions.
const (
	DefaultRows = 5
	DefaultCols = 5
)

// Board is a rows×cols grid of numbers with a mark flag per cell.
// Cells are stored row-major. A Board is not safe for concurrent use; the
// simulator gives each board to at most one goroutine per draw.
type Board struct {
	rows, cols int
	numbers    []int
	marked     []bool
	bingo      bool // cached; win state never reverts
}

// NewBoard builds a board from a rows×cols grid.
func NewBoard(grid [][]int) (*Board, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, puzzle.Invalidf(0, "empty board")
	}
	rows, cols := len(grid), len(grid[0])
	b := &Board{
		rows:    rows,
		cols:    cols,
		numbers: make([]int, 0, rows*cols),
		marked:  make([]bool, rows*cols),
	}
	for i, row := range grid {
		if len(row) != cols {
			return nil, puzzle.Invalidf(0, "board row %d has %d numbers, want %d", i+1, len(row), cols)
		}
		b.numbers = append(b.numbers, row...)
	}
	return b, nil
}

// ParseBoard parses rows of whitespace-separated numbers. firstLine is the
// 1-based input line of lines[0], used for error positions.
func ParseBoard(lines []string, firstLine, rows, cols int) (*Board, error) {
	if len(lines) != rows {
		return nil, puzzle.Invalidf(firstLine, "board has %d rows, want %d", len(lines), rows)
	}
	grid := make([][]int, rows)
	for i, l := range lines {
		vals, err := puzzle.ParseFields(firstLine+i, l)
		if err != nil {
			return nil, err
		}
		if len(vals) != cols {
			return nil, puzzle.Invalidf(firstLine+i, "board row has %d numbers, want %d", len(vals), cols)
		}
		grid[i] = vals
	}
	return NewBoard(grid)
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Mark marks number on the board and reports whether it was present.
// Only the first occurrence is marked.
func (b *Board) Mark(number int) bool {
	for i, n := range b.numbers {
		if n == number {
			b.marked[i] = true
			return true
		}
	}
	return false
}

// SumUnmarked returns the sum of all unmarked numbers.
func (b *Board) SumUnmarked() int {
	sum := 0
	for i, n := range b.numbers {
		if !b.marked[i] {
			sum += n
		}
	}
	return sum
}

// HasBingo reports whether any full row or full column is marked.
func (b *Board) HasBingo() bool {
	if b.bingo {
		return true
	}

	colsWon := make([]bool, b.cols)
	for c := range colsWon {
		colsWon[c] = true
	}
	for r := 0; r < b.rows; r++ {
		rowWon := true
		for c := 0; c < b.cols; c++ {
			if !b.marked[r*b.cols+c] {
				rowWon = false
				colsWon[c] = false
			}
		}
		if rowWon {
			b.bingo = true
			return true
		}
	}
	for _, won := range colsWon {
		if won {
			b.bingo = true
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the board, marks included.
func (b *Board) Clone() *Board {
	return &Board{
		rows:    b.rows,
		cols:    b.cols,
		numbers: append([]int(nil), b.numbers...),
		marked:  append([]bool(nil), b.marked...),
		bingo:   b.bingo,
	}
}

// String renders the board with marked numbers in brackets.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			i := r*b.cols + c
			if c > 0 {
				sb.WriteByte(' ')
			}
			if b.marked[i] {
				fmt.Fprintf(&sb, "[%2d]", b.numbers[i])
			} else {
				fmt.Fprintf(&sb, " %2d ", b.numbers[i])
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
