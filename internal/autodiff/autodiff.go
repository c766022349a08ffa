// Package autodiff implements the core of reverse-mode automatic differentiation.
//
// The package does not own any numeric kernel. Concrete node types (scalars,
// tensors, ...) implement the Variable interface and the package provides the
// machinery that connects them:
//   - Context: per-operation storage for values needed by the backward pass
//   - History: how a node was produced (function, inputs, context)
//   - TopologicalSort: consumers-first ordering of every reachable node
//   - Backpropagate: seeds the output derivative and applies the chain rule
//   - CentralDifference: numerical derivative used to check gradients
//
// Usage:
//
//	tape := scalar.NewTape()
//	x := tape.New(2.0)
//	y := x.Mul(x) // y = x²
//
//	autodiff.Backpropagate[float64](y, 1.0)
//	fmt.Println(x.Derivative()) // dy/dx = 2x = 4.0
//
// The engine is single-threaded: graph construction and the backward pass
// are sequential phases and no Variable may be shared across goroutines
// while either is running.
package autodiff

// Variable is a node in the computation graph.
//
// Type parameter D is the type of the derivative carried by the node
// (float64 for scalars).
type Variable[D any] interface {
	// UniqueID returns the identifier assigned at creation time.
	// Identity, not value, is used to deduplicate nodes during traversal.
	UniqueID() ID

	// IsLeaf reports whether the node has no producing operation.
	// Gradients accumulate on leaves.
	IsLeaf() bool

	// IsConstant reports whether the node is excluded from gradient flow.
	IsConstant() bool

	// Parents returns the inputs of the operation that produced this node,
	// in order. Leaves return nil.
	Parents() []Variable[D]

	// ChainRule maps the derivative of the output with respect to this node
	// to the local contributions for each of its parents.
	//
	// Example for z = x * y:
	//   dOutput: dL/dz
	//   returns: [(x, dL/dz * y), (y, dL/dz * x)]
	ChainRule(dOutput D) []Gradient[D]

	// AccumulateDerivative adds d to the derivative accumulator of a leaf.
	AccumulateDerivative(d D)

	// Derivative returns the current derivative of the node.
	Derivative() D

	// SetDerivative overwrites the derivative of a non-leaf node.
	SetDerivative(d D)
}

// Gradient is a contribution produced by a chain rule: the derivative of the
// output with respect to Variable.
type Gradient[D any] struct {
	Variable Variable[D]
	Value    D
}
