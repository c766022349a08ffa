package scalar

import (
	"github.com/born-ml/gradcore/internal/autodiff"
	"github.com/born-ml/gradcore/internal/operators"
)

// Mul is the function a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = d * b
//   - d(a*b)/db = a, so grad_b = d * a
type Mul struct{}

// Name returns "mul".
func (Mul) Name() string { return "mul" }

// Forward saves both inputs and returns a * b.
func (Mul) Forward(ctx *autodiff.Context, vals ...float64) float64 {
	a, b := vals[0], vals[1]
	ctx.SaveForBackward(a, b)
	return operators.Mul(a, b)
}

// Backward returns [d * b, d * a].
func (Mul) Backward(ctx *autodiff.Context, d float64) []float64 {
	a, b := ctx.SavedFloat(0), ctx.SavedFloat(1)
	return []float64{operators.Mul(d, b), operators.Mul(d, a)}
}

// Mul returns s * o.
func (s *Scalar) Mul(o *Scalar) *Scalar {
	return Apply(Mul{}, s, o)
}

// MulConst returns s * c, with c a constant.
func (s *Scalar) MulConst(c float64) *Scalar {
	return Apply(Mul{}, s, s.tape.Constant(c))
}

// Div returns s / o, computed as s * (1/o).
func (s *Scalar) Div(o *Scalar) *Scalar {
	return Apply(Mul{}, s, o.Inv())
}
