// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package operators provides the pure numeric functions used to build
// differentiable operations, their backward companions, and small
// higher-order helpers (Map, ZipWith, Reduce).
package operators

import (
	"github.com/born-ml/gradcore/internal/operators"
	"golang.org/x/exp/constraints"
)

// EPS is a small constant for numerically stabilized operations.
const EPS = operators.EPS

// Operator pairs a forward function with its backward companion.
type Operator = operators.Operator

// ErrUnknownOperator is returned by Lookup for unregistered names.
var ErrUnknownOperator = operators.ErrUnknownOperator

// Elementary functions.
var (
	Mul        = operators.Mul
	ID         = operators.ID
	Add        = operators.Add
	Neg        = operators.Neg
	Less       = operators.Less
	Equal      = operators.Equal
	LT         = operators.LT
	EQ         = operators.EQ
	Max        = operators.Max
	IsClose    = operators.IsClose
	IsCloseTol = operators.IsCloseTol
	Sigmoid    = operators.Sigmoid
	ReLU       = operators.ReLU
	Log        = operators.Log
	Exp        = operators.Exp
	Inv        = operators.Inv
)

// Backward companions.
var (
	LogBack     = operators.LogBack
	InvBack     = operators.InvBack
	ReLUBack    = operators.ReLUBack
	ExpBack     = operators.ExpBack
	SigmoidBack = operators.SigmoidBack
)

// List helpers.
var (
	NegList  = operators.NegList
	AddLists = operators.AddLists
	Sum      = operators.Sum
	Prod     = operators.Prod
)

// Lookup returns the operator registered under name.
func Lookup(name string) (Operator, error) {
	return operators.Lookup(name)
}

// Names returns the registered operator names, sorted.
func Names() []string {
	return operators.Names()
}

// Map applies fn to every element of xs.
func Map[T constraints.Float](fn func(T) T, xs []T) []T {
	return operators.Map(fn, xs)
}

// ZipWith combines xs and ys pairwise, truncating to the shorter input.
func ZipWith[T constraints.Float](fn func(T, T) T, xs, ys []T) []T {
	return operators.ZipWith(fn, xs, ys)
}

// Reduce folds xs from the left starting at initial.
func Reduce[T constraints.Float](fn func(T, T) T, xs []T, initial T) T {
	return operators.Reduce(fn, xs, initial)
}
