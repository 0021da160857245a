// Package dfs classifies CFG edges against the depth-first spanning tree.
// An edge u→v is a back edge exactly when v is an ancestor of u (or u
// itself), which is what closes a loop; BackEdges therefore reports every
// loop of the graph reachable from the root, one retreating edge per
// entry.
//
// Complexity:
//
//   - Classify:  O(1) per edge using pre/post numbers.
//   - BackEdges: O(V + E).
package dfs

import (
	"fmt"

	"github.com/bboissin/thesis-bboissin/cfg"
)

// IsAncestor reports whether a is an ancestor of b in the spanning tree.
// Every discovered node is its own ancestor.
func (v *VisitOrder) IsAncestor(a, b cfg.Node) bool {
	preA, okA := v.Pre[a]
	preB, okB := v.Pre[b]
	if !okA || !okB {
		return false
	}

	// a was discovered no later than b and finished no earlier.
	return preA <= preB && v.Post[a] >= v.Post[b]
}

// Classify labels the edge from→to. A parallel copy of a tree edge is
// reported as a tree edge as well.
func (v *VisitOrder) Classify(from, to cfg.Node) EdgeKind {
	if !v.Visited(from) || !v.Visited(to) {
		return Unreached
	}
	if p, ok := v.Parent[to]; ok && p == from {
		return TreeEdge
	}
	switch {
	case v.IsAncestor(to, from):
		return BackEdge
	case v.IsAncestor(from, to):
		return ForwardEdge
	default:
		return CrossEdge
	}
}

// BackEdges returns the back edges of g with respect to v, ordered by the
// pre-order number of their source and then by adjacency order. v must
// come from a search over g.
func (v *VisitOrder) BackEdges(g *cfg.Graph) ([]Edge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var back []Edge
	for _, from := range v.Preorder {
		succs, err := g.Successors(from)
		if err != nil {
			return nil, fmt.Errorf("dfs: BackEdges: %w", err)
		}
		for _, to := range succs {
			if v.Classify(from, to) == BackEdge {
				back = append(back, Edge{From: from, To: to})
			}
		}
	}

	return back, nil
}

// LoopHeaders returns the distinct targets of back edges in pre-order.
func (v *VisitOrder) LoopHeaders(g *cfg.Graph) ([]cfg.Node, error) {
	back, err := v.BackEdges(g)
	if err != nil {
		return nil, err
	}
	seen := make(map[cfg.Node]struct{}, len(back))
	for _, e := range back {
		seen[e.To] = struct{}{}
	}
	headers := make([]cfg.Node, 0, len(seen))
	for _, n := range v.Preorder {
		if _, ok := seen[n]; ok {
			headers = append(headers, n)
		}
	}

	return headers, nil
}
