package mathx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	assert.Equal(t, 3, Abs(-3))
	assert.Equal(t, 3, Abs(3))
	assert.Equal(t, int64(0), Abs(int64(0)))
}

func TestSign(t *testing.T) {
	assert.Equal(t, -1, Sign(-7))
	assert.Equal(t, 0, Sign(0))
	assert.Equal(t, 1, Sign(42))
}

func TestSum_MixedTypes(t *testing.T) {
	assert.Equal(t, 10, Sum(1, 2, 3, 4))
	assert.Equal(t, int64(0), Sum[int64]())
	assert.InDelta(t, 1.5, Sum(0.5, 1.0), 1e-9)
}

func TestMedian_DoesNotModifyInput(t *testing.T) {
	in := []int{16, 1, 2, 0, 4, 2, 7, 1, 2, 14}
	orig := append([]int(nil), in...)

	assert.Equal(t, 2, Median(in))
	assert.Equal(t, orig, in, "Median must not sort its argument in place")
}

func TestMedian_OddLength(t *testing.T) {
	assert.Equal(t, 5, Median([]int{9, 1, 5}))
}

func TestMedian_EmptyPanics(t *testing.T) {
	assert.Panics(t, func() { Median([]int{}) })
}

func TestTriangle(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 0},
		{1, 1},
		{4, 10},
		{11, 66},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Triangle(tt.n), "Triangle(%d)", tt.n)
	}
}

func TestAddOK(t *testing.T) {
	tests := []struct {
		a, b int64
		ok   bool
	}{
		{1, 2, true},
		{-5, 3, true},
		{math.MaxInt64, 0, true},
		{math.MaxInt64, 1, false},
		{math.MinInt64, -1, false},
		{math.MinInt64, math.MaxInt64, true},
	}
	for _, tt := range tests {
		sum, ok := AddOK(tt.a, tt.b)
		assert.Equal(t, tt.ok, ok, "%d + %d", tt.a, tt.b)
		if ok {
			assert.Equal(t, tt.a+tt.b, sum)
		}
	}
}

func TestMulOK(t *testing.T) {
	tests := []struct {
		a, b int64
		ok   bool
	}{
		{0, math.MaxInt64, true},
		{-3, 7, true},
		{-1, -5, true},
		{1 << 31, 1 << 31, true},
		{1 << 32, 1 << 31, false},
		{math.MaxInt64, 2, false},
		{-1, math.MinInt64, false},
		{math.MinInt64, -1, false},
	}
	for _, tt := range tests {
		_, ok := MulOK(tt.a, tt.b)
		assert.Equal(t, tt.ok, ok, "%d * %d", tt.a, tt.b)
	}
}
