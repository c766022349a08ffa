package scalar

import (
	"github.com/born-ml/gradcore/internal/autodiff"
	"github.com/born-ml/gradcore/internal/operators"
)

// Exp is the function e^a.
//
// Backward: grad_a = d * e^a = d * output, so the output is saved instead
// of the input.
type Exp struct{}

// Name returns "exp".
func (Exp) Name() string { return "exp" }

// Forward saves and returns e^a.
func (Exp) Forward(ctx *autodiff.Context, vals ...float64) float64 {
	out := operators.Exp(vals[0])
	ctx.SaveForBackward(out)
	return out
}

// Backward returns [d * e^a].
func (Exp) Backward(ctx *autodiff.Context, d float64) []float64 {
	return []float64{operators.Mul(d, ctx.SavedFloat(0))}
}

// Exp returns e^s.
func (s *Scalar) Exp() *Scalar {
	return Apply(Exp{}, s)
}
