// Package cfg defines a rooted, directed control-flow graph: a root node,
// the list of nodes, and for each node the ordered list of successors.
//
// It is the input of package dfs and deliberately small: nodes are plain
// integers (basic block numbers), edges carry no payload, and successor
// order is insertion order because traversal numbering depends on it.
//
// Concurrency:
//
//	All methods are safe for concurrent use; reads share a sync.RWMutex,
//	mutations take it exclusively.
//
// Errors:
//
//	ErrGraphNil       graph pointer is nil
//	ErrNodeNotFound   an operation referenced a node that was never added
//	ErrDuplicateEdge  an edge was added twice without WithMultiEdges
package cfg
