package scalar

import (
	"github.com/born-ml/gradcore/internal/autodiff"
	"github.com/born-ml/gradcore/internal/operators"
)

// Inv is the function 1 / a.
//
// Backward pass:
//   - d(1/a)/da = -1/a², so grad_a = -d / a²
//
// a = 0 yields ±Inf in both passes.
type Inv struct{}

// Name returns "inv".
func (Inv) Name() string { return "inv" }

// Forward saves a and returns 1 / a.
func (Inv) Forward(ctx *autodiff.Context, vals ...float64) float64 {
	ctx.SaveForBackward(vals[0])
	return operators.Inv(vals[0])
}

// Backward returns [-d / a²].
func (Inv) Backward(ctx *autodiff.Context, d float64) []float64 {
	return []float64{operators.InvBack(ctx.SavedFloat(0), d)}
}

// Inv returns 1 / s.
func (s *Scalar) Inv() *Scalar {
	return Apply(Inv{}, s)
}
