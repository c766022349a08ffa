package scalar

import (
	"github.com/born-ml/gradcore/internal/autodiff"
	"github.com/born-ml/gradcore/internal/operators"
)

// LT is the comparison a < b, valued 1 or 0.
// Comparisons are piecewise constant, their derivatives are 0.
type LT struct{}

// Name returns "lt".
func (LT) Name() string { return "lt" }

// Forward returns 1 if a < b, else 0.
func (LT) Forward(_ *autodiff.Context, vals ...float64) float64 {
	return operators.LT(vals[0], vals[1])
}

// Backward returns [0, 0].
func (LT) Backward(_ *autodiff.Context, _ float64) []float64 {
	return []float64{0, 0}
}

// EQ is the comparison a == b, valued 1 or 0.
type EQ struct{}

// Name returns "eq".
func (EQ) Name() string { return "eq" }

// Forward returns 1 if a == b, else 0.
func (EQ) Forward(_ *autodiff.Context, vals ...float64) float64 {
	return operators.EQ(vals[0], vals[1])
}

// Backward returns [0, 0].
func (EQ) Backward(_ *autodiff.Context, _ float64) []float64 {
	return []float64{0, 0}
}

// LT returns 1 if s < o, else 0.
func (s *Scalar) LT(o *Scalar) *Scalar {
	return Apply(LT{}, s, o)
}

// GT returns 1 if s > o, else 0.
func (s *Scalar) GT(o *Scalar) *Scalar {
	return Apply(LT{}, o, s)
}

// EQ returns 1 if s == o, else 0.
func (s *Scalar) EQ(o *Scalar) *Scalar {
	return Apply(EQ{}, s, o)
}
