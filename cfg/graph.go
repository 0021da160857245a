// File: graph.go
// Role: node and edge mutation plus read-only queries.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
//   - Returned slices are copies; callers may keep or modify them.

package cfg

import (
	"fmt"
	"slices"
)

// AddNode adds n to the graph. Adding an existing node is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n Node) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(n)
}

func (g *Graph) addNodeLocked(n Node) {
	if _, ok := g.index[n]; ok {
		return
	}
	g.index[n] = struct{}{}
	g.nodes = append(g.nodes, n)
}

// AddEdge adds the edge from→to. Self-loops are allowed.
//
// Steps:
//  1. Check both endpoints exist, or add them under WithAutoNodes.
//  2. Reject a repeated edge unless WithMultiEdges.
//  3. Append to successor and predecessor lists.
//
// Complexity: O(out-degree(from)) for the duplicate check.
func (g *Graph) AddEdge(from, to Node) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Endpoints
	for _, n := range [2]Node{from, to} {
		if _, ok := g.index[n]; ok {
			continue
		}
		if !g.autoNodes {
			return fmt.Errorf("%w: %s", ErrNodeNotFound, n)
		}
		g.addNodeLocked(n)
	}

	// 2) Multi-edge constraint
	if !g.allowMulti && slices.Contains(g.succ[from], to) {
		return fmt.Errorf("%w: %s->%s", ErrDuplicateEdge, from, to)
	}

	// 3) Adjacency
	g.succ[from] = append(g.succ[from], to)
	g.pred[to] = append(g.pred[to], from)
	g.edges++

	return nil
}

// Root returns the entry node.
func (g *Graph) Root() Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.root
}

// Nodes returns every node in insertion order, root first.
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.nodes)
}

// HasNode reports whether n was added to the graph.
func (g *Graph) HasNode(n Node) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.index[n]

	return ok
}

// Successors returns the targets of n's outgoing edges in insertion order.
func (g *Graph) Successors(n Node) ([]Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.index[n]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, n)
	}

	return slices.Clone(g.succ[n]), nil
}

// Predecessors returns the sources of n's incoming edges in insertion order.
func (g *Graph) Predecessors(n Node) ([]Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.index[n]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, n)
	}

	return slices.Clone(g.pred[n]), nil
}

// NodeCount returns the number of nodes, root included.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of edges, parallel edges included.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}
