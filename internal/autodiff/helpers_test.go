package autodiff_test

import (
	"github.com/born-ml/gradcore/internal/autodiff"
)

// node is a minimal Variable used to exercise the engine without any
// concrete numeric type. Each parent edge carries a fixed local derivative.
type node struct {
	id       autodiff.ID
	parents  []*node
	local    []float64 // d(node)/d(parent[i])
	constant bool

	deriv      float64
	chainCalls int
	panicMsg   string
}

type graph struct {
	ids autodiff.IDAllocator
}

func (g *graph) leaf() *node {
	return &node{id: g.ids.Next()}
}

func (g *graph) constant() *node {
	return &node{id: g.ids.Next(), constant: true}
}

// op creates a node consuming parents, with local derivatives local.
func (g *graph) op(parents []*node, local []float64) *node {
	return &node{id: g.ids.Next(), parents: parents, local: local}
}

func (n *node) UniqueID() autodiff.ID { return n.id }

func (n *node) IsLeaf() bool { return len(n.parents) == 0 }

func (n *node) IsConstant() bool { return n.constant }

func (n *node) Parents() []autodiff.Variable[float64] {
	if len(n.parents) == 0 {
		return nil
	}
	out := make([]autodiff.Variable[float64], len(n.parents))
	for i, p := range n.parents {
		out[i] = p
	}
	return out
}

func (n *node) ChainRule(d float64) []autodiff.Gradient[float64] {
	n.chainCalls++
	if n.panicMsg != "" {
		panic(n.panicMsg)
	}
	grads := make([]autodiff.Gradient[float64], len(n.parents))
	for i, p := range n.parents {
		grads[i] = autodiff.Gradient[float64]{Variable: p, Value: d * n.local[i]}
	}
	return grads
}

func (n *node) AccumulateDerivative(d float64) { n.deriv += d }

func (n *node) Derivative() float64 { return n.deriv }

func (n *node) SetDerivative(d float64) { n.deriv = d }

// positions maps each node id to its index in order.
func positions(order []autodiff.Variable[float64]) map[autodiff.ID]int {
	pos := make(map[autodiff.ID]int, len(order))
	for i, v := range order {
		pos[v.UniqueID()] = i
	}
	return pos
}

// recursiveSort is the straightforward recursive formulation of the
// traversal, used as a reference for the explicit-stack implementation.
func recursiveSort(root *node) []autodiff.ID {
	var post []autodiff.ID
	visited := map[autodiff.ID]bool{}
	var visit func(n *node)
	visit = func(n *node) {
		if visited[n.id] {
			return
		}
		visited[n.id] = true
		for _, p := range n.parents {
			visit(p)
		}
		post = append(post, n.id)
	}
	visit(root)
	for i, j := 0, len(post)-1; i < j; i, j = i+1, j-1 {
		post[i], post[j] = post[j], post[i]
	}
	return post
}
