// Package dfs defines types and options for depth-first numbering,
// including cancellation and pre-/post-order hooks.
package dfs

import (
	"context"
	"errors"

	"github.com/bboissin/thesis-bboissin/cfg"
)

var (
	// ErrGraphNil is returned when a nil *cfg.Graph is passed to Search or
	// TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that TopologicalSort met a back edge.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// EdgeKind classifies an edge against a depth-first spanning tree.
type EdgeKind int

const (
	// Unreached: one endpoint was not discovered by the search.
	Unreached EdgeKind = iota
	// TreeEdge: the edge by which the target was discovered.
	TreeEdge
	// BackEdge: the target is an ancestor of the source, or the source itself.
	BackEdge
	// ForwardEdge: the target is a proper descendant reached by another path.
	ForwardEdge
	// CrossEdge: neither endpoint is an ancestor of the other.
	CrossEdge
)

var edgeKindNames = [...]string{"unreached", "tree", "back", "forward", "cross"}

func (k EdgeKind) String() string {
	if k < 0 || int(k) >= len(edgeKindNames) {
		return "EdgeKind(?)"
	}

	return edgeKindNames[k]
}

// Edge is a directed CFG edge.
type Edge struct {
	From cfg.Node
	To   cfg.Node
}

// Option configures optional behavior of Search.
type Option func(*Options)

// Options holds configurable parameters for a search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked each time a node is discovered.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is discovered (pre-order).
	// Returning an error aborts the search with that error.
	OnVisit func(n cfg.Node) error

	// OnExit, if non-nil, is invoked once all successors of a node have been
	// explored (post-order). Returning an error aborts the search.
	OnExit func(n cfg.Node) error
}

// DefaultOptions returns Options with a background context and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: nil,
		OnExit:  nil,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(n cfg.Node) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(n cfg.Node) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// VisitOrder captures the outcome of a depth-first search. Nodes not
// reachable from the root appear in none of the maps.
type VisitOrder struct {
	// Root is the node the search started from.
	Root cfg.Node

	// Pre maps each discovered node to its 0-based discovery number.
	Pre map[cfg.Node]int

	// Post maps each discovered node to its 0-based finishing number.
	Post map[cfg.Node]int

	// Parent holds the spanning-tree edges keyed by child: Parent[n] is the
	// node from which n was discovered. The root has no entry.
	Parent map[cfg.Node]cfg.Node

	// Depth maps each discovered node to its tree distance from the root.
	Depth map[cfg.Node]int

	// Preorder lists nodes in discovery order.
	Preorder []cfg.Node

	// Order lists nodes in finishing order (post-order).
	Order []cfg.Node
}

// Visited reports whether n was reached by the search.
func (v *VisitOrder) Visited(n cfg.Node) bool {
	_, ok := v.Pre[n]

	return ok
}
