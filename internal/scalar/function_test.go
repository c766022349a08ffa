package scalar_test

import (
	"math"
	"testing"

	"github.com/born-ml/gradcore/internal/autodiff"
	"github.com/born-ml/gradcore/internal/scalar"
	"github.com/stretchr/testify/assert"
)

func TestFunctions_Forward(t *testing.T) {
	tape := scalar.NewTape()
	x := tape.New(2)
	y := tape.New(-3)

	assert.Equal(t, -1.0, x.Add(y).Data())
	assert.Equal(t, 5.0, x.Sub(y).Data())
	assert.Equal(t, -6.0, x.Mul(y).Data())
	assert.InDelta(t, -2.0/3.0, x.Div(y).Data(), 1e-12)
	assert.Equal(t, 3.0, y.Neg().Data())
	assert.Equal(t, 0.5, x.Inv().Data())
	assert.InDelta(t, math.Log(2), x.Log().Data(), 1e-12)
	assert.InDelta(t, math.Exp(2), x.Exp().Data(), 1e-12)
	assert.Equal(t, 0.5, tape.New(0).Sigmoid().Data())
	assert.Equal(t, 2.0, x.ReLU().Data())
	assert.Equal(t, 0.0, y.ReLU().Data())

	assert.Equal(t, 1.0, y.LT(x).Data())
	assert.Equal(t, 0.0, x.LT(y).Data())
	assert.Equal(t, 1.0, x.GT(y).Data())
	assert.Equal(t, 1.0, x.EQ(tape.Constant(2)).Data())
	assert.Equal(t, 0.0, x.EQ(y).Data())
}

func TestFunctions_Backward(t *testing.T) {
	cases := []struct {
		name string
		fn   func(x *scalar.Scalar) *scalar.Scalar
		x    float64
		want float64
	}{
		{"neg", (*scalar.Scalar).Neg, 2, -1},
		{"inv", (*scalar.Scalar).Inv, 2, -0.25},
		{"log", (*scalar.Scalar).Log, 4, 0.25},
		{"exp", (*scalar.Scalar).Exp, 0, 1},
		{"sigmoid", (*scalar.Scalar).Sigmoid, 0, 0.25},
		{"relu_pos", (*scalar.Scalar).ReLU, 1, 1},
		{"relu_neg", (*scalar.Scalar).ReLU, -1, 0},
		{"square", func(x *scalar.Scalar) *scalar.Scalar { return x.Mul(x) }, 3, 6},
		{"add_const", func(x *scalar.Scalar) *scalar.Scalar { return x.AddConst(10) }, 3, 1},
		{"lt", func(x *scalar.Scalar) *scalar.Scalar { return x.LT(x.Tape().Constant(5)) }, 3, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tape := scalar.NewTape()
			x := tape.New(tc.x)
			tc.fn(x).Backward()
			assert.InDelta(t, tc.want, x.Derivative(), 1e-12)
		})
	}
}

func TestFunctions_SaveNothingUnderNoGrad(t *testing.T) {
	ctx := autodiff.NewContext(true)
	out := scalar.Mul{}.Forward(ctx, 3, 4)
	assert.Equal(t, 12.0, out)
	assert.Empty(t, ctx.SavedValues())
	assert.Panics(t, func() { scalar.Mul{}.Backward(ctx, 1) })
}

func TestFunctions_Names(t *testing.T) {
	fns := []scalar.Function{
		scalar.Add{}, scalar.Mul{}, scalar.Neg{}, scalar.Inv{}, scalar.Log{},
		scalar.Exp{}, scalar.Sigmoid{}, scalar.ReLU{}, scalar.LT{}, scalar.EQ{},
	}
	want := []string{"add", "mul", "neg", "inv", "log", "exp", "sigmoid", "relu", "lt", "eq"}
	for i, fn := range fns {
		assert.Equal(t, want[i], fn.Name())
	}
}
