// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// Any node type implementing Variable can be differentiated: Backpropagate
// orders the graph with TopologicalSort and applies each node's chain rule,
// accumulating derivatives into the leaves.
//
// Example:
//
//	import (
//	    "github.com/born-ml/gradcore/autodiff"
//	    "github.com/born-ml/gradcore/scalar"
//	)
//
//	func main() {
//	    tape := scalar.NewTape()
//	    x := tape.New(2.0)
//	    y := x.Mul(x).Log() // y = log(x²)
//
//	    autodiff.Backpropagate[float64](y, 1.0)
//	    fmt.Println(x.Derivative()) // 2/x = 1
//	}
package autodiff

import (
	"github.com/born-ml/gradcore/internal/autodiff"
	"golang.org/x/exp/constraints"
)

// ID identifies a Variable within its graph.
type ID = autodiff.ID

// IDAllocator hands out strictly increasing IDs.
type IDAllocator = autodiff.IDAllocator

// Variable is a node in the computation graph.
type Variable[D any] = autodiff.Variable[D]

// Gradient is a chain rule contribution for one Variable.
type Gradient[D any] = autodiff.Gradient[D]

// Context stores values saved by a forward computation for its backward pass.
type Context = autodiff.Context

// History records how a Variable was produced.
type History[F any, V any] = autodiff.History[F, V]

// DefaultEpsilon is the perturbation used by gradient checks.
const DefaultEpsilon = autodiff.DefaultEpsilon

// NewContext creates a context; with noGrad set nothing is saved.
func NewContext(noGrad bool) *Context {
	return autodiff.NewContext(noGrad)
}

// NewHistory creates the history of a node produced by lastFn from inputs.
func NewHistory[F any, V any](lastFn F, ctx *Context, inputs []V) *History[F, V] {
	return autodiff.NewHistory(lastFn, ctx, inputs)
}

// NewLeafHistory creates the history of a differentiable leaf.
func NewLeafHistory[F any, V any]() *History[F, V] {
	return autodiff.NewLeafHistory[F, V]()
}

// TopologicalSort returns every Variable reachable from root, consumers first.
func TopologicalSort[D any](root Variable[D]) []Variable[D] {
	return autodiff.TopologicalSort(root)
}

// Backpropagate runs the reverse pass from root seeded with deriv.
func Backpropagate[D any](root Variable[D], deriv D) {
	autodiff.Backpropagate(root, deriv)
}

// TryBackpropagate is like Backpropagate but returns panics as errors.
func TryBackpropagate[D any](root Variable[D], deriv D) error {
	return autodiff.TryBackpropagate(root, deriv)
}

// CentralDifference approximates the derivative of f with respect to
// argument arg.
func CentralDifference[T constraints.Float](f func(vals ...T) T, vals []T, arg int, epsilon T) T {
	return autodiff.CentralDifference(f, vals, arg, epsilon)
}
