package scalar

import (
	"github.com/born-ml/gradcore/internal/autodiff"
	"github.com/born-ml/gradcore/internal/operators"
)

// Log is the natural logarithm.
//
// Forward:
//
//	output = log(a)
//
// Backward:
//
//	grad_a = d / a
//
// Input values must be positive; 0 gives -Inf and negative values NaN.
type Log struct{}

// Name returns "log".
func (Log) Name() string { return "log" }

// Forward saves a and returns log(a).
func (Log) Forward(ctx *autodiff.Context, vals ...float64) float64 {
	ctx.SaveForBackward(vals[0])
	return operators.Log(vals[0])
}

// Backward returns [d / a].
func (Log) Backward(ctx *autodiff.Context, d float64) []float64 {
	return []float64{operators.LogBack(ctx.SavedFloat(0), d)}
}

// Log returns log(s).
func (s *Scalar) Log() *Scalar {
	return Apply(Log{}, s)
}
