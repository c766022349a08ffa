// Package scalar implements a float64 Variable for the autodiff engine.
//
// A Scalar is created by a Tape, either as a differentiable leaf (Tape.New)
// or as a constant (Tape.Constant). Applying a Function to Scalars produces a
// new Scalar whose History records the function, its inputs and the Context
// filled during the forward pass. Backward then delivers derivatives to every
// leaf the result depends on.
package scalar

import (
	"fmt"

	"github.com/born-ml/gradcore/internal/autodiff"
	"github.com/gomlx/exceptions"
)

// History is the history of a Scalar.
type History = autodiff.History[Function, *Scalar]

// Scalar is a float64 node of the computation graph.
type Scalar struct {
	data          float64
	derivative    float64
	hasDerivative bool
	name          string
	id            autodiff.ID
	history       *History // nil for constants
	tape          *Tape
}

// Verify interface compliance.
var _ autodiff.Variable[float64] = (*Scalar)(nil)

// Data returns the value of s.
func (s *Scalar) Data() float64 {
	return s.data
}

// Name returns the name of s, by default empty.
func (s *Scalar) Name() string {
	return s.name
}

// SetName names s and returns it, for chaining.
func (s *Scalar) SetName(name string) *Scalar {
	s.name = name
	return s
}

// UniqueID returns the identifier assigned by the tape.
func (s *Scalar) UniqueID() autodiff.ID {
	return s.id
}

// History returns how s was produced, nil for constants.
func (s *Scalar) History() *History {
	return s.history
}

// Tape returns the tape that created s.
func (s *Scalar) Tape() *Tape {
	return s.tape
}

// IsConstant reports whether s has no History.
func (s *Scalar) IsConstant() bool {
	return s.history == nil
}

// IsLeaf reports whether s was not produced by a function.
func (s *Scalar) IsLeaf() bool {
	_, hasFn := s.history.LastFn()
	return !hasFn
}

// Parents returns the inputs of the function that produced s.
func (s *Scalar) Parents() []autodiff.Variable[float64] {
	inputs := s.history.Inputs()
	if len(inputs) == 0 {
		return nil
	}
	parents := make([]autodiff.Variable[float64], len(inputs))
	for i, in := range inputs {
		parents[i] = in
	}
	return parents
}

// Derivative returns the derivative delivered to s, 0 if none was.
func (s *Scalar) Derivative() float64 {
	return s.derivative
}

// HasDerivative reports whether a derivative was delivered to s since it was
// created or last reset with ZeroGrad.
func (s *Scalar) HasDerivative() bool {
	return s.hasDerivative
}

// AccumulateDerivative adds d to the derivative of s.
// It panics if s is constant.
func (s *Scalar) AccumulateDerivative(d float64) {
	if s.IsConstant() {
		exceptions.Panicf("Scalar #%d: cannot accumulate a derivative into a constant", s.id)
	}
	s.derivative += d
	s.hasDerivative = true
}

// SetDerivative overwrites the derivative of s.
func (s *Scalar) SetDerivative(d float64) {
	s.derivative = d
	s.hasDerivative = true
}

// ZeroGrad clears the derivative of s.
func (s *Scalar) ZeroGrad() {
	s.derivative = 0
	s.hasDerivative = false
}

// ChainRule returns the contribution of dOutput to each non-constant input
// of the function that produced s. Leaves return nil.
func (s *Scalar) ChainRule(dOutput float64) []autodiff.Gradient[float64] {
	fn, ok := s.history.LastFn()
	if !ok {
		return nil
	}

	inputs := s.history.Inputs()
	localGrads := fn.Backward(s.history.Context(), dOutput)
	if len(localGrads) != len(inputs) {
		exceptions.Panicf("%s.Backward returned %d derivatives for %d inputs", fn.Name(), len(localGrads), len(inputs))
	}

	grads := make([]autodiff.Gradient[float64], 0, len(inputs))
	for i, in := range inputs {
		if in.IsConstant() {
			continue
		}
		grads = append(grads, autodiff.Gradient[float64]{Variable: in, Value: localGrads[i]})
	}
	return grads
}

// Backward computes the derivative of s with respect to every leaf it
// depends on, seeding s with 1.
func (s *Scalar) Backward() {
	s.BackwardWith(1.0)
}

// BackwardWith is like Backward with an explicit seed derivative.
func (s *Scalar) BackwardWith(deriv float64) {
	autodiff.Backpropagate[float64](s, deriv)
}

// String implements fmt.Stringer.
func (s *Scalar) String() string {
	if s.name != "" {
		return fmt.Sprintf("Scalar(%s=%g)", s.name, s.data)
	}
	return fmt.Sprintf("Scalar(%g)", s.data)
}
