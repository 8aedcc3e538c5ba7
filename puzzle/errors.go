package puzzle

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the single error kind for malformed puzzle input.
// Every input validation failure wraps it.
var ErrInvalidInput = errors.New("invalid puzzle input")

// ErrNotParsed is returned by Solve when Parse has not succeeded yet.
var ErrNotParsed = errors.New("puzzle input not parsed")

// InputError locates an input validation failure.
// Line is 1-based; zero means the failure is not tied to a single line.
type InputError struct {
	Line   int
	Reason string
}

func (e *InputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%v: line %d: %s", ErrInvalidInput, e.Line, e.Reason)
	}
	return fmt.Sprintf("%v: %s", ErrInvalidInput, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidInput) hold for every InputError.
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// Invalidf returns an *InputError for the given line with a formatted reason.
func Invalidf(line int, format string, args ...any) error {
	return &InputError{Line: line, Reason: fmt.Sprintf(format, args...)}
}
