package autodiff

import "slices"

// TopologicalSort returns every Variable reachable from root through the
// parents relation, ordered so that each node comes before all the nodes it
// depends on (consumers first, root first).
//
// Nodes are deduplicated by UniqueID, so a node reachable through several
// paths appears once. The traversal is a depth-first post-order using an
// explicit stack: parents are visited in order before their consumer is
// appended, and the post-order is then reversed. Deep graphs therefore do not
// grow the goroutine stack.
//
// The graph must be acyclic.
func TopologicalSort[D any](root Variable[D]) []Variable[D] {
	if root == nil {
		return nil
	}

	type frame struct {
		v       Variable[D]
		parents []Variable[D]
		next    int // Index of the next parent to visit.
	}

	visited := map[ID]struct{}{root.UniqueID(): {}}
	order := make([]Variable[D], 0, 16)
	stack := []frame{{v: root, parents: root.Parents()}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.parents) {
			parent := top.parents[top.next]
			top.next++
			if _, seen := visited[parent.UniqueID()]; seen {
				continue
			}
			visited[parent.UniqueID()] = struct{}{}
			stack = append(stack, frame{v: parent, parents: parent.Parents()})
			continue
		}

		// All parents done: post-order append.
		order = append(order, top.v)
		stack = stack[:len(stack)-1]
	}

	slices.Reverse(order)
	return order
}
