// Package dfs implements depth-first search on cfg.Graph with an explicit
// work stack. Successors are explored in adjacency order and the resulting
// numbering is the one a recursive search would produce.
//
// Complexity:
//
//   - Time:   O(V + E), plus the cost of hooks.
//   - Memory: O(V) for the work stack and result maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/bboissin/thesis-bboissin/cfg"
)

// frame is one node on the work stack together with how far its successor
// list has been explored.
type frame struct {
	node  cfg.Node
	succs []cfg.Node
	next  int
}

// walker encapsulates state during a search.
type walker struct {
	graph *cfg.Graph
	opts  Options
	res   *VisitOrder
	stack []frame
}

// Search performs depth-first search on g from g.Root().
// On cancellation or hook failure it returns the partial result with
// Order cleared, together with the error.
func Search(g *cfg.Graph, opts ...Option) (*VisitOrder, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Initialize result with capacity hint
	n := g.NodeCount()
	res := &VisitOrder{
		Root:     g.Root(),
		Pre:      make(map[cfg.Node]int, n),
		Post:     make(map[cfg.Node]int, n),
		Parent:   make(map[cfg.Node]cfg.Node, n),
		Depth:    make(map[cfg.Node]int, n),
		Preorder: make([]cfg.Node, 0, n),
		Order:    make([]cfg.Node, 0, n),
	}

	w := &walker{graph: g, opts: o, res: res}
	if err := w.run(res.Root); err != nil {
		res.Order = nil

		return res, err
	}

	return res, nil
}

// run drives the work stack until every node reachable from root finished.
func (w *walker) run(root cfg.Node) error {
	if err := w.discover(root, 0); err != nil {
		return err
	}
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]

		// Next unexplored successor, if any.
		if top.next < len(top.succs) {
			succ := top.succs[top.next]
			top.next++
			if w.res.Visited(succ) {
				continue
			}
			parent := top.node
			w.res.Parent[succ] = parent
			if err := w.discover(succ, w.res.Depth[parent]+1); err != nil {
				return err
			}
			continue
		}

		// All successors done: finish the node.
		w.stack = w.stack[:len(w.stack)-1]
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(top.node); err != nil {
				return fmt.Errorf("dfs: OnExit hook for %s: %w", top.node, err)
			}
		}
		w.res.Post[top.node] = len(w.res.Order)
		w.res.Order = append(w.res.Order, top.node)
	}

	return nil
}

// discover numbers id, runs the pre-order hook and pushes its frame.
func (w *walker) discover(id cfg.Node, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Number and record depth
	w.res.Pre[id] = len(w.res.Preorder)
	w.res.Preorder = append(w.res.Preorder, id)
	w.res.Depth[id] = depth

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %s: %w", id, err)
		}
	}

	// 4. Fetch successors once
	succs, err := w.graph.Successors(id)
	if err != nil {
		return fmt.Errorf("dfs: Successors(%s): %w", id, err)
	}
	w.stack = append(w.stack, frame{node: id, succs: succs})

	return nil
}
