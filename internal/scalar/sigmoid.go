package scalar

import (
	"github.com/born-ml/gradcore/internal/autodiff"
	"github.com/born-ml/gradcore/internal/operators"
)

// Sigmoid is the logistic function σ(a) = 1 / (1 + e^-a).
//
// Backward: grad_a = d * σ(a) * (1 - σ(a)), computed from the saved output.
type Sigmoid struct{}

// Name returns "sigmoid".
func (Sigmoid) Name() string { return "sigmoid" }

// Forward saves and returns σ(a).
func (Sigmoid) Forward(ctx *autodiff.Context, vals ...float64) float64 {
	out := operators.Sigmoid(vals[0])
	ctx.SaveForBackward(out)
	return out
}

// Backward returns [d * σ(a) * (1 - σ(a))].
func (Sigmoid) Backward(ctx *autodiff.Context, d float64) []float64 {
	s := ctx.SavedFloat(0)
	return []float64{d * s * (1 - s)}
}

// Sigmoid returns σ(s).
func (s *Scalar) Sigmoid() *Scalar {
	return Apply(Sigmoid{}, s)
}
