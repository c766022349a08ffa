// Package operators is the numeric function library used by graph nodes.
//
// Every function is pure and operates on float64. Backward companions
// (the *Back functions) return d * ∂f/∂x, the local contribution to the
// chain rule given the upstream derivative d.
//
// Domain faults are not trapped: Inv(0) is +Inf, Log(0) is -Inf and
// Log of a negative number is NaN, following IEEE-754.
package operators

import "math"

// EPS is a small constant available to numerically stabilized operations.
const EPS = 1e-6

// DefaultTolerance is the tolerance used by IsClose.
const DefaultTolerance = 1e-2

// Mul returns x * y.
func Mul(x, y float64) float64 {
	return x * y
}

// ID returns x unchanged.
func ID(x float64) float64 {
	return x
}

// Add returns x + y.
func Add(x, y float64) float64 {
	return x + y
}

// Neg returns -x.
func Neg(x float64) float64 {
	return -x
}

// Less reports whether x < y.
func Less(x, y float64) bool {
	return x < y
}

// Equal reports whether x == y.
func Equal(x, y float64) bool {
	return x == y
}

// LT returns 1 if x < y, else 0.
func LT(x, y float64) float64 {
	return boolToFloat(x < y)
}

// EQ returns 1 if x == y, else 0.
func EQ(x, y float64) float64 {
	return boolToFloat(x == y)
}

// Max returns the larger of x and y. Ties return x.
func Max(x, y float64) float64 {
	if x >= y {
		return x
	}
	return y
}

// IsClose reports whether |x - y| < DefaultTolerance.
func IsClose(x, y float64) bool {
	return IsCloseTol(x, y, DefaultTolerance)
}

// IsCloseTol reports whether |x - y| < tol.
func IsCloseTol(x, y, tol float64) bool {
	return math.Abs(x-y) < tol
}

// Sigmoid computes 1 / (1 + e^-x).
//
// For negative x the equivalent form e^x / (1 + e^x) is used so that
// e^-x never overflows.
func Sigmoid(x float64) float64 {
	if x >= 0 {
		return 1.0 / (1.0 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1.0 + e)
}

// ReLU returns x if x > 0, else 0.
func ReLU(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// Log returns the natural logarithm of x.
func Log(x float64) float64 {
	return math.Log(x)
}

// Exp returns e^x.
func Exp(x float64) float64 {
	return math.Exp(x)
}

// Inv returns 1 / x.
func Inv(x float64) float64 {
	return 1.0 / x
}

// LogBack returns d * ∂log(x)/∂x = d / x.
func LogBack(x, d float64) float64 {
	return d / x
}

// InvBack returns d * ∂(1/x)/∂x = -d / x².
func InvBack(x, d float64) float64 {
	return -d / (x * x)
}

// ReLUBack returns d if x > 0, else 0.
func ReLUBack(x, d float64) float64 {
	if x > 0 {
		return d
	}
	return 0
}

// ExpBack returns d * e^x.
func ExpBack(x, d float64) float64 {
	return d * math.Exp(x)
}

// SigmoidBack returns d * σ(x) * (1 - σ(x)).
func SigmoidBack(x, d float64) float64 {
	s := Sigmoid(x)
	return d * s * (1 - s)
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
