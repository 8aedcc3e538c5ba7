package puzzle

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLines_TrimsCarriageReturns(t *testing.T) {
	lines, err := ReadLines(context.Background(), strings.NewReader("a\r\nb\n\r\nc"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "", "c"}, lines)
}

func TestReadLines_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ReadLines(ctx, strings.NewReader("a\nb\n"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNonEmpty_KeepsLineNumbers(t *testing.T) {
	got := NonEmpty([]string{"", "x", "  ", "y"})
	assert.Equal(t, []NumberedLine{{No: 2, Text: "x"}, {No: 4, Text: "y"}}, got)
}

func TestParseIntList(t *testing.T) {
	v, err := ParseIntList(1, " 7,4, 9 ", ",")
	require.NoError(t, err)
	assert.Equal(t, []int{7, 4, 9}, v)

	for _, bad := range []string{"", "1,,2", "1,a", "   "} {
		_, err := ParseIntList(5, bad, ",")
		var inErr *InputError
		require.ErrorAs(t, err, &inErr, "%q", bad)
		assert.Equal(t, 5, inErr.Line)
	}
}

func TestParseFields(t *testing.T) {
	v, err := ParseFields(1, " 22 13  17 ")
	require.NoError(t, err)
	assert.Equal(t, []int{22, 13, 17}, v)

	_, err = ParseFields(1, "1 x")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestInputError(t *testing.T) {
	err := Invalidf(3, "bad %s", "row")
	assert.EqualError(t, err, "invalid puzzle input: line 3: bad row")
	assert.True(t, errors.Is(err, ErrInvalidInput))

	assert.EqualError(t, Invalidf(0, "no boards"), "invalid puzzle input: no boards")
	assert.False(t, errors.Is(ErrNotParsed, ErrInvalidInput))
}
