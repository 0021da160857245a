// Package dfs numbers the nodes of a rooted control-flow graph (cfg.Graph)
// by depth-first search and classifies its edges.
//
// What:
//
//   - Search: explores from the root as far as possible along each branch
//     before backtracking, visiting successors in adjacency order. Records
//     pre-order and post-order numbers, the spanning tree (parent of each
//     discovered node), depths, and both visit sequences.
//   - Classify: labels an edge tree, back, forward or cross from the
//     numbering alone.
//   - BackEdges: lists the retreating edges, i.e. the loops of the CFG.
//   - TopologicalSort: reverse post-order of an acyclic CFG, or
//     ErrCycleDetected.
//
// Why:
//
//   - Reverse post-order is the usual iteration order for forward dataflow
//   - Back edges identify loop headers
//   - Pre/post numbers give O(1) ancestor queries on the spanning tree
//
// The traversal keeps its own stack instead of recursing, so graphs with
// very long chains of blocks do not grow the goroutine stack.
//
// Complexity:
//
//   - Search:          Time O(V+E), Memory O(V)
//   - Classify:        Time O(1)
//   - BackEdges:       Time O(V+E)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil       graph pointer is nil
//   - ErrCycleDetected  TopologicalSort found a back edge
//   - context.Canceled  Search canceled via context
//   - hook errors       propagated from OnVisit or OnExit
package dfs
