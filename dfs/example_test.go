package dfs_test

import (
	"fmt"

	"github.com/bboissin/thesis-bboissin/cfg"
	"github.com/bboissin/thesis-bboissin/dfs"
)

// ExampleSearch numbers the CFG of a while loop followed by an exit block:
//
//	b0 → b1 ⇄ b2
//	     ↓
//	     b3
func ExampleSearch() {
	g := cfg.NewGraph(0, cfg.WithAutoNodes())
	for _, e := range [][2]cfg.Node{{0, 1}, {1, 2}, {2, 1}, {1, 3}} {
		_ = g.AddEdge(e[0], e[1])
	}

	res, err := dfs.Search(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, n := range res.Preorder {
		fmt.Printf("%s pre=%d post=%d\n", n, res.Pre[n], res.Post[n])
	}
	fmt.Println("rpo:", res.ReversePostorder())
	fmt.Println("b2->b1:", res.Classify(2, 1))

	// Output:
	// b0 pre=0 post=3
	// b1 pre=1 post=2
	// b2 pre=2 post=0
	// b3 pre=3 post=1
	// rpo: [b0 b1 b3 b2]
	// b2->b1: back
}
