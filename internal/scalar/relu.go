package scalar

import (
	"github.com/born-ml/gradcore/internal/autodiff"
	"github.com/born-ml/gradcore/internal/operators"
)

// ReLU is the rectified linear unit: max(0, a).
//
// Backward pass:
//   - d(ReLU(a))/da = 1 if a > 0, else 0
type ReLU struct{}

// Name returns "relu".
func (ReLU) Name() string { return "relu" }

// Forward saves a and returns ReLU(a).
func (ReLU) Forward(ctx *autodiff.Context, vals ...float64) float64 {
	ctx.SaveForBackward(vals[0])
	return operators.ReLU(vals[0])
}

// Backward returns [d] for positive inputs, [0] otherwise.
func (ReLU) Backward(ctx *autodiff.Context, d float64) []float64 {
	return []float64{operators.ReLUBack(ctx.SavedFloat(0), d)}
}

// ReLU returns max(0, s).
func (s *Scalar) ReLU() *Scalar {
	return Apply(ReLU{}, s)
}
