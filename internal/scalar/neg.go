package scalar

import (
	"github.com/born-ml/gradcore/internal/autodiff"
	"github.com/born-ml/gradcore/internal/operators"
)

// Neg is the function -a.
type Neg struct{}

// Name returns "neg".
func (Neg) Name() string { return "neg" }

// Forward returns -a.
func (Neg) Forward(_ *autodiff.Context, vals ...float64) float64 {
	return operators.Neg(vals[0])
}

// Backward returns [-d].
func (Neg) Backward(_ *autodiff.Context, d float64) []float64 {
	return []float64{operators.Neg(d)}
}

// Neg returns -s.
func (s *Scalar) Neg() *Scalar {
	return Apply(Neg{}, s)
}
