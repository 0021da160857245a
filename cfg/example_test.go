package cfg_test

import (
	"fmt"

	"github.com/bboissin/thesis-bboissin/cfg"
)

// ExampleNewGraph builds the CFG of a while loop:
//
//	b0 → b1 ⇄ b2
//	     ↓
//	     b3
func ExampleNewGraph() {
	g := cfg.NewGraph(0, cfg.WithAutoNodes())
	for _, e := range [][2]cfg.Node{{0, 1}, {1, 2}, {2, 1}, {1, 3}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	succ, _ := g.Successors(1)
	fmt.Println(g.Nodes(), succ)

	// Output:
	// [b0 b1 b2 b3] [b2 b3]
}
