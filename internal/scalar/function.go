package scalar

import (
	"slices"

	"github.com/born-ml/gradcore/internal/autodiff"
	"github.com/gomlx/exceptions"
)

// Function is a differentiable operation on Scalars.
//
// Forward computes the result from the input values and may store what the
// backward pass needs with ctx.SaveForBackward. Backward receives the same
// ctx and the derivative of the output, and returns one contribution per
// input, in input order.
//
// Example for Mul:
//
//	Forward(ctx, a, b):  ctx.SaveForBackward(a, b); return a * b
//	Backward(ctx, d):    return [d * b, d * a]
type Function interface {
	Name() string
	Forward(ctx *autodiff.Context, vals ...float64) float64
	Backward(ctx *autodiff.Context, d float64) []float64
}

// Apply evaluates fn on inputs and returns the result.
//
// The result records a History only when the tape is recording and at
// least one input is not constant; otherwise fn runs with a no-grad Context
// and the result is a constant. All inputs must come from the same tape.
func Apply(fn Function, inputs ...*Scalar) *Scalar {
	if len(inputs) == 0 {
		exceptions.Panicf("scalar.Apply(%s): no inputs", fn.Name())
	}

	tape := inputs[0].tape
	vals := make([]float64, len(inputs))
	needGrad := false
	for i, in := range inputs {
		if in.tape != tape {
			exceptions.Panicf("scalar.Apply(%s): input #%d belongs to a different tape", fn.Name(), i)
		}
		vals[i] = in.data
		if !in.IsConstant() {
			needGrad = true
		}
	}
	needGrad = needGrad && tape.IsRecording()

	ctx := autodiff.NewContext(!needGrad)
	out := tape.newScalar(fn.Forward(ctx, vals...))
	tape.numOps++

	if needGrad {
		out.history = autodiff.NewHistory(fn, ctx, slices.Clone(inputs))
	}
	return out
}
