package scalar_test

import (
	"testing"

	"github.com/born-ml/gradcore/internal/operators"
	"github.com/born-ml/gradcore/internal/scalar"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyNamed(t *testing.T) {
	tape := scalar.NewTape()
	x := tape.New(3)
	y := tape.New(4)

	z := must.M1(scalar.ApplyNamed("mul", x, y))
	assert.Equal(t, 12.0, z.Data())
	z.Backward()
	assert.Equal(t, 4.0, x.Derivative())
	assert.Equal(t, 3.0, y.Derivative())
}

func TestApplyNamed_Errors(t *testing.T) {
	tape := scalar.NewTape()
	x := tape.New(3)

	_, err := scalar.ApplyNamed("nope", x)
	assert.ErrorIs(t, err, operators.ErrUnknownOperator)

	_, err = scalar.ApplyNamed("mul", x)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "takes 2 inputs")
}

// TestApplyNamed_GradCheck checks that every registered operator
// agrees with the central difference when driven through the registry.
func TestApplyNamed_GradCheck(t *testing.T) {
	cfg := scalar.DefaultGradCheckConfig()
	for _, name := range operators.Names() {
		op := must.M1(operators.Lookup(name))
		t.Run(name, func(t *testing.T) {
			vals := []float64{1.3, 0.6}[:op.Arity]
			f := func(xs ...*scalar.Scalar) *scalar.Scalar {
				return must.M1(scalar.ApplyNamed(name, xs...))
			}
			require.NoError(t, scalar.CheckGradients(f, vals, cfg))
		})
	}
}
