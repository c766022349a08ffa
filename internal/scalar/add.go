package scalar

import (
	"github.com/born-ml/gradcore/internal/autodiff"
	"github.com/born-ml/gradcore/internal/operators"
)

// Add is the function a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, d(a+b)/db = 1: the derivative flows unchanged to both inputs
type Add struct{}

// Name returns "add".
func (Add) Name() string { return "add" }

// Forward returns a + b.
func (Add) Forward(_ *autodiff.Context, vals ...float64) float64 {
	return operators.Add(vals[0], vals[1])
}

// Backward returns [d, d].
func (Add) Backward(_ *autodiff.Context, d float64) []float64 {
	return []float64{d, d}
}

// Add returns s + o.
func (s *Scalar) Add(o *Scalar) *Scalar {
	return Apply(Add{}, s, o)
}

// AddConst returns s + c, with c a constant.
func (s *Scalar) AddConst(c float64) *Scalar {
	return Apply(Add{}, s, s.tape.Constant(c))
}

// Sub returns s - o.
func (s *Scalar) Sub(o *Scalar) *Scalar {
	return Apply(Add{}, s, o.Neg())
}
