package puzzle

import (
	"context"
	"io"
	"strconv"
	"strings"
)

// Puzzle is a single day's solver.
//
// Parse is called exactly once with the raw input before Solve. Solve computes
// the answers for every part of the day and must not depend on being called
// only once: each call starts from the parsed input, not from state left over
// by a previous call.
type Puzzle interface {
	Parse(ctx context.Context, r io.Reader) error
	Solve(ctx context.Context) (Answers, error)
}

// Factory creates a fresh, unparsed Puzzle.
type Factory func() Puzzle

// Answers holds one answer per puzzle part, in part order.
type Answers []int64

// String renders the answers the way they are printed, e.g. "4512, 1924".
func (a Answers) String() string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ", ")
}
