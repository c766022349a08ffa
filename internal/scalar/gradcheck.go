package scalar

import (
	"math"

	"github.com/born-ml/gradcore/internal/autodiff"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ErrGradientMismatch is returned by CheckGradients when a backpropagated
// derivative disagrees with its numerical approximation.
var ErrGradientMismatch = errors.New("gradient mismatch")

// GradCheckConfig controls CheckGradients.
type GradCheckConfig struct {
	Epsilon   float64 // Perturbation used by the central difference.
	Tolerance float64 // Absolute and relative tolerance of the comparison.
}

// DefaultGradCheckConfig returns the configuration used by the test suites.
func DefaultGradCheckConfig() GradCheckConfig {
	return GradCheckConfig{
		Epsilon:   autodiff.DefaultEpsilon,
		Tolerance: 1e-2,
	}
}

// CheckGradients compares the derivatives computed by Backward with
// CentralDifference for every argument of f at vals.
//
// f must build its result only from its arguments and constants created on
// their tape. It is called once on leaves to backpropagate, and then on
// constants with recording disabled for each numerical evaluation.
//
// The derivative for argument i passes when
//
//	|analytic - numeric| <= Tolerance * (1 + |numeric|)
func CheckGradients(f func(xs ...*Scalar) *Scalar, vals []float64, cfg GradCheckConfig) error {
	tape := NewTape()
	leaves := make([]*Scalar, len(vals))
	for i, v := range vals {
		leaves[i] = tape.New(v)
	}

	out := f(leaves...)
	if err := autodiff.TryBackpropagate[float64](out, 1.0); err != nil {
		return errors.WithMessagef(err, "gradient check at %v", vals)
	}

	numericF := func(xs ...float64) float64 {
		var result float64
		tape.NoGrad(func() {
			args := make([]*Scalar, len(xs))
			for i, x := range xs {
				args[i] = tape.Constant(x)
			}
			result = f(args...).Data()
		})
		return result
	}

	for i, leaf := range leaves {
		if !leaf.HasDerivative() {
			return errors.Errorf("gradient check at %v: argument %d received no derivative", vals, i)
		}
		analytic := leaf.Derivative()
		numeric := autodiff.CentralDifference(numericF, vals, i, cfg.Epsilon)
		klog.V(2).Infof("gradient check: arg %d at %v: backpropagated=%g numeric=%g", i, vals, analytic, numeric)

		if math.IsNaN(analytic) || math.IsNaN(numeric) ||
			math.Abs(analytic-numeric) > cfg.Tolerance*(1+math.Abs(numeric)) {
			return errors.Wrapf(ErrGradientMismatch,
				"argument %d at %v: backpropagated %g, central difference %g", i, vals, analytic, numeric)
		}
	}
	return nil
}
