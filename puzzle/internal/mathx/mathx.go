// Package mathx holds the small generic numeric helpers shared by the solvers.
package mathx

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Abs returns the absolute value of v.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns -1, 0 or 1.
func Sign[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Sum adds up vs.
func Sum[T Number](vs ...T) T {
	var sum T
	for _, v := range vs {
		sum += v
	}
	return sum
}

// Median returns the upper median of vs without modifying it.
// It panics on an empty slice.
func Median[T constraints.Integer](vs []T) T {
	if len(vs) == 0 {
		panic("mathx: median of empty slice")
	}
	sorted := slices.Clone(vs)
	slices.Sort(sorted)
	return sorted[len(sorted)/2]
}

// Triangle returns 1 + 2 + ... + n.
func Triangle[T constraints.Integer](n T) T {
	return n * (n + 1) / 2
}

// AddOK returns a + b and whether the sum did not overflow.
func AddOK[T constraints.Signed](a, b T) (T, bool) {
	s := a + b
	return s, (s > a) == (b > 0)
}

// MulOK returns a * b and whether the product did not overflow.
func MulOK[T constraints.Signed](a, b T) (T, bool) {
	p := a * b
	if a != 0 && (p/a != b || (a == -1 && b < 0 && p < 0)) {
		return p, false
	}
	return p, true
}
