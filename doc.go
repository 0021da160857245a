// Package thesis collects the building blocks for resolving parallel
// register copies in a compiler back end, together with the control-flow
// graph tooling used to find where those copies live.
//
// What is in here?
//
//	parcopy/     parallel copy batches, their sequentialization with one
//	             spare register, cycle listing and a small checker
//	cfg/         thread-safe control-flow graph with an entry block
//	dfs/         depth-first numbering, edge classification, back edges,
//	             loop headers and topological order
//	cmd/parcopy  command-line front end reading YAML files
//
// Quick example, a three-register rotation with spare r4:
//
//	  r1 ──▶ r2
//	  ▲       │
//	  └── r3 ◀┘
//
//	seq, _ := parcopy.Sequentialize([]parcopy.RegisterCopy{
//		{Source: 1, Destination: 2},
//		{Source: 2, Destination: 3},
//		{Source: 3, Destination: 1},
//	}, 4)
//	// seq: r1->r4 r3->r1 r2->r3 r4->r2
//
// See each subpackage's doc.go for options, complexity and errors.
package thesis
