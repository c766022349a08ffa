package autodiff

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Backpropagate runs the reverse pass from root, seeding it with deriv
// (conventionally 1 for a scalar loss).
//
// Algorithm:
//  1. Seed: a leaf root accumulates deriv; any other root has its
//     derivative overwritten with deriv, discarding a stale value.
//  2. Walk TopologicalSort(root), consumers before producers.
//  3. For every non-leaf node, call ChainRule with its current derivative
//     and deliver each contribution to the corresponding parent:
//     - constant parents are skipped;
//     - leaves accumulate every contribution;
//     - a non-leaf parent is overwritten by the first contribution it
//     receives in this pass and accumulates the following ones.
//
// Rule 3 means a non-leaf is overwritten at most once per pass: stale values
// left by an earlier pass are discarded, while contributions from several
// consumers in the same pass are summed. The topological order guarantees
// that all consumers of a node are processed before the node itself reads
// its derivative.
//
// Panics raised by chain rules propagate to the caller; see
// TryBackpropagate.
func Backpropagate[D any](root Variable[D], deriv D) {
	if root == nil {
		return
	}
	if root.IsConstant() {
		klog.V(1).Infof("backpropagate: root #%d is constant, no gradients to compute", root.UniqueID())
		return
	}

	if root.IsLeaf() {
		root.AccumulateDerivative(deriv)
	} else {
		root.SetDerivative(deriv)
	}

	order := TopologicalSort(root)

	// Non-leaf nodes that already received a contribution in this pass.
	assigned := map[ID]struct{}{root.UniqueID(): {}}
	numApplied := 0

	for _, v := range order {
		if v.IsLeaf() {
			continue
		}
		numApplied++
		for _, g := range v.ChainRule(v.Derivative()) {
			input := g.Variable
			if input == nil || input.IsConstant() {
				continue
			}
			if input.IsLeaf() {
				input.AccumulateDerivative(g.Value)
				continue
			}
			if _, ok := assigned[input.UniqueID()]; ok {
				input.AccumulateDerivative(g.Value)
				continue
			}
			assigned[input.UniqueID()] = struct{}{}
			input.SetDerivative(g.Value)
		}
	}

	if klog.V(2).Enabled() {
		klog.Infof("backpropagate: root #%d, %d nodes visited, %d chain rules applied",
			root.UniqueID(), len(order), numApplied)
	}
}

// TryBackpropagate is like Backpropagate, but a panic raised during the pass
// (for instance by a chain rule reading values that were never saved) is
// returned as an error.
//
// Derivatives already delivered before the failure are left in place.
func TryBackpropagate[D any](root Variable[D], deriv D) error {
	exception := exceptions.Try(func() { Backpropagate(root, deriv) })
	if exception == nil {
		return nil
	}
	if err, ok := exception.(error); ok {
		return errors.Wrapf(err, "backpropagate from #%d failed", root.UniqueID())
	}
	return errors.Errorf("backpropagate from #%d failed: %v", root.UniqueID(), exception)
}
