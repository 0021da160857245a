// Package dfs provides orderings derived from a depth-first search,
// including reverse post-order and topological sort.
//
// For an acyclic CFG, reverse post-order is a topological order: every
// edge u→v has u before v. With loops it is still the preferred order for
// forward dataflow, since only back edges point backwards.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs

import (
	"fmt"

	"github.com/bboissin/thesis-bboissin/cfg"
)

// ReversePostorder returns the discovered nodes, last finished first.
func (v *VisitOrder) ReversePostorder() []cfg.Node {
	return reversed(v.Order)
}

// TopologicalSort orders the nodes reachable from g's root so that every
// edge points forward. If the reachable part of g has a loop it returns
// ErrCycleDetected naming the first back edge.
// Options are passed on to Search.
func TopologicalSort(g *cfg.Graph, opts ...Option) ([]cfg.Node, error) {
	// 1. Search
	res, err := Search(g, opts...)
	if err != nil {
		return nil, err
	}

	// 2. Any back edge rules out a topological order
	back, err := res.BackEdges(g)
	if err != nil {
		return nil, err
	}
	if len(back) > 0 {
		return nil, fmt.Errorf("%w: %s->%s", ErrCycleDetected, back[0].From, back[0].To)
	}

	// 3. Reverse post-order
	return res.ReversePostorder(), nil
}
