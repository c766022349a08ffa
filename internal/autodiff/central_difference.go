package autodiff

import (
	"slices"

	"github.com/gomlx/exceptions"
	"golang.org/x/exp/constraints"
)

// DefaultEpsilon is the perturbation used by gradient checks.
const DefaultEpsilon = 1e-6

// CentralDifference approximates the derivative of f with respect to its
// argument number arg:
//
//	(f(.., x_arg+ε, ..) - f(.., x_arg-ε, ..)) / 2ε
//
// Only vals[arg] is perturbed; vals itself is not modified.
// It panics if arg is out of range.
func CentralDifference[T constraints.Float](f func(vals ...T) T, vals []T, arg int, epsilon T) T {
	if arg < 0 || arg >= len(vals) {
		exceptions.Panicf("CentralDifference: arg %d out of range for %d values", arg, len(vals))
	}

	up := slices.Clone(vals)
	down := slices.Clone(vals)
	up[arg] += epsilon
	down[arg] -= epsilon

	return (f(up...) - f(down...)) / (2 * epsilon)
}
