package puzzle

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single input line. Puzzle inputs are far below this.
const maxLineBytes = 1 << 20

// ReadLines reads all lines from r with trailing carriage returns removed.
// The context is checked between lines.
func ReadLines(ctx context.Context, r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}

// NonEmpty returns lines with blank (whitespace-only) lines dropped, keeping
// the original 1-based line number for each kept line.
func NonEmpty(lines []string) []NumberedLine {
	out := make([]NumberedLine, 0, len(lines))
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, NumberedLine{No: i + 1, Text: l})
	}
	return out
}

// NumberedLine is an input line with its 1-based position in the file.
type NumberedLine struct {
	No   int
	Text string
}

// ParseInt parses a single decimal integer, surrounded whitespace allowed.
func ParseInt(line int, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, Invalidf(line, "not an integer: %q", s)
	}
	return v, nil
}

// ParseIntList parses a sep-separated list of integers, e.g. "7,4,9".
// Empty lists are rejected.
func ParseIntList(line int, s, sep string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, Invalidf(line, "empty number list")
	}
	fields := strings.Split(s, sep)
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := ParseInt(line, f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ParseFields parses whitespace-separated integers, e.g. "22 13 17 11  0".
func ParseFields(line int, s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := ParseInt(line, f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
