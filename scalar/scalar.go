// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar provides float64 values that record the operations applied
// to them, so their derivatives can be computed with autodiff.
//
// Example:
//
//	tape := scalar.NewTape()
//	x := tape.New(3.0)
//	y := x.Mul(x).Sigmoid()
//	y.Backward()
//	fmt.Println(x.Derivative()) // 2x * σ(x²) * (1 - σ(x²))
//
// Gradients can be verified numerically:
//
//	err := scalar.CheckGradients(func(xs ...*scalar.Scalar) *scalar.Scalar {
//	    return xs[0].Mul(xs[1]).Log()
//	}, []float64{1.5, 2}, scalar.DefaultGradCheckConfig())
package scalar

import (
	"github.com/born-ml/gradcore/internal/scalar"
)

// Scalar is a float64 node of the computation graph.
type Scalar = scalar.Scalar

// Tape creates Scalars and controls History recording.
type Tape = scalar.Tape

// Function is a differentiable operation on Scalars.
type Function = scalar.Function

// History is the history of a Scalar.
type History = scalar.History

// GradCheckConfig controls CheckGradients.
type GradCheckConfig = scalar.GradCheckConfig

// Built-in functions.
type (
	Add     = scalar.Add
	Mul     = scalar.Mul
	Neg     = scalar.Neg
	Inv     = scalar.Inv
	Log     = scalar.Log
	Exp     = scalar.Exp
	Sigmoid = scalar.Sigmoid
	ReLU    = scalar.ReLU
	LT      = scalar.LT
	EQ      = scalar.EQ
)

// ErrGradientMismatch is returned by CheckGradients on disagreement.
var ErrGradientMismatch = scalar.ErrGradientMismatch

// NewTape creates a recording tape.
func NewTape() *Tape {
	return scalar.NewTape()
}

// Apply evaluates fn on inputs.
func Apply(fn Function, inputs ...*Scalar) *Scalar {
	return scalar.Apply(fn, inputs...)
}

// ApplyNamed applies a registered operator by name.
func ApplyNamed(name string, inputs ...*Scalar) (*Scalar, error) {
	return scalar.ApplyNamed(name, inputs...)
}

// DefaultGradCheckConfig returns the default gradient check configuration.
func DefaultGradCheckConfig() GradCheckConfig {
	return scalar.DefaultGradCheckConfig()
}

// CheckGradients compares backpropagated derivatives of f at vals with
// central differences.
func CheckGradients(f func(xs ...*Scalar) *Scalar, vals []float64, cfg GradCheckConfig) error {
	return scalar.CheckGradients(f, vals, cfg)
}
