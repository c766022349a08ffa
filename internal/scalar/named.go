package scalar

import (
	"github.com/born-ml/gradcore/internal/autodiff"
	"github.com/born-ml/gradcore/internal/operators"
	"github.com/pkg/errors"
)

// operatorFunction adapts a registered operators.Operator to Function.
// The forward arguments are saved so Backward can pass them to the
// operator's backward companion.
type operatorFunction struct {
	op operators.Operator
}

func (f operatorFunction) Name() string { return f.op.Name }

func (f operatorFunction) Forward(ctx *autodiff.Context, vals ...float64) float64 {
	saved := make([]any, len(vals))
	for i, v := range vals {
		saved[i] = v
	}
	ctx.SaveForBackward(saved...)
	return f.op.Forward(vals...)
}

func (f operatorFunction) Backward(ctx *autodiff.Context, d float64) []float64 {
	args := make([]float64, f.op.Arity)
	for i := range args {
		args[i] = ctx.SavedFloat(i)
	}
	return f.op.Backward(d, args...)
}

// ApplyNamed applies the operator registered under name (see
// operators.Names) to inputs.
func ApplyNamed(name string, inputs ...*Scalar) (*Scalar, error) {
	op, err := operators.Lookup(name)
	if err != nil {
		return nil, err
	}
	if len(inputs) != op.Arity {
		return nil, errors.Errorf("operator %q takes %d inputs, got %d", name, op.Arity, len(inputs))
	}
	return Apply(operatorFunction{op: op}, inputs...), nil
}
