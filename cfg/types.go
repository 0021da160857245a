// File: types.go
// Role: Node, Graph, GraphOption, sentinel errors and the NewGraph constructor.
// Determinism:
//   - Nodes() lists nodes in insertion order, root first.
//   - Successors() lists targets in edge insertion order.

package cfg

import (
	"errors"
	"strconv"
	"sync"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrGraphNil indicates that a nil *Graph was passed to an algorithm.
	ErrGraphNil = errors.New("cfg: graph is nil")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("cfg: node not found")

	// ErrDuplicateEdge indicates a parallel edge when multi-edges are disabled.
	ErrDuplicateEdge = errors.New("cfg: duplicate edge")
)

// Node identifies a basic block.
type Node int

// String renders the node as b<N>.
func (n Node) String() string {
	return "b" + strconv.Itoa(int(n))
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithAutoNodes lets AddEdge add missing endpoints instead of failing with
// ErrNodeNotFound.
func WithAutoNodes() GraphOption {
	return func(g *Graph) { g.autoNodes = true }
}

// WithMultiEdges permits the same edge to be added more than once, as a
// switch with two cases jumping to one block would.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is a rooted directed graph of basic blocks.
//
// mu guards every field below it.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	autoNodes  bool
	allowMulti bool

	root  Node
	nodes []Node            // insertion order, root first
	index map[Node]struct{} // membership
	succ  map[Node][]Node   // node → successors in insertion order
	pred  map[Node][]Node   // node → predecessors in insertion order
	edges int               // total edge count, parallel edges included
}

// NewGraph creates a graph containing only root.
// Complexity: O(1)
func NewGraph(root Node, opts ...GraphOption) *Graph {
	g := &Graph{
		root:  root,
		nodes: []Node{root},
		index: map[Node]struct{}{root: {}},
		succ:  make(map[Node][]Node),
		pred:  make(map[Node][]Node),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
