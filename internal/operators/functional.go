package operators

import "golang.org/x/exp/constraints"

// Map applies fn to every element of xs, preserving order and length.
func Map[T constraints.Float](fn func(T) T, xs []T) []T {
	out := make([]T, len(xs))
	for i, x := range xs {
		out[i] = fn(x)
	}
	return out
}

// ZipWith combines xs and ys pairwise with fn.
// If the lengths differ the result has the length of the shorter input.
func ZipWith[T constraints.Float](fn func(T, T) T, xs, ys []T) []T {
	n := min(len(xs), len(ys))
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = fn(xs[i], ys[i])
	}
	return out
}

// Reduce folds xs from the left starting at initial.
// An empty xs returns initial.
func Reduce[T constraints.Float](fn func(T, T) T, xs []T, initial T) T {
	acc := initial
	for _, x := range xs {
		acc = fn(acc, x)
	}
	return acc
}

// NegList negates every element of xs.
func NegList(xs []float64) []float64 {
	return Map(Neg, xs)
}

// AddLists adds xs and ys element-wise.
func AddLists(xs, ys []float64) []float64 {
	return ZipWith(Add, xs, ys)
}

// Sum returns the sum of xs, 0 for an empty slice.
func Sum(xs []float64) float64 {
	return Reduce(Add, xs, 0.0)
}

// Prod returns the product of xs, 1 for an empty slice.
func Prod(xs []float64) float64 {
	return Reduce(Mul, xs, 1.0)
}
