package yamlfile

import (
	"fmt"
	"io"

	"github.com/bboissin/thesis-bboissin/cfg"
	"github.com/bboissin/thesis-bboissin/dfs"
)

// GraphFile is the document describing a control-flow graph. Nodes lists
// blocks without edges; blocks named by an edge are added implicitly.
type GraphFile struct {
	Root  int     `yaml:"root"`
	Nodes []int   `yaml:"nodes,omitempty,flow"`
	Edges [][]int `yaml:"edges,flow"`
}

// DecodeGraph reads a GraphFile from r and builds the graph. Repeated
// edges are kept, as a switch may branch twice to one block.
func DecodeGraph(r io.Reader) (*cfg.Graph, error) {
	var f GraphFile
	if err := decode(r, &f); err != nil {
		return nil, err
	}

	g := cfg.NewGraph(cfg.Node(f.Root), cfg.WithAutoNodes(), cfg.WithMultiEdges())
	for _, n := range f.Nodes {
		g.AddNode(cfg.Node(n))
	}
	for i, e := range f.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("%w: edge %d has %d elements", ErrBadPair, i, len(e))
		}
		if err := g.AddEdge(cfg.Node(e[0]), cfg.Node(e[1])); err != nil {
			return nil, fmt.Errorf("yamlfile: edge %d: %w", i, err)
		}
	}

	return g, nil
}

// NumberingFile is the document written for a depth-first search.
type NumberingFile struct {
	Root      int          `yaml:"root"`
	Nodes     []NodeNumber `yaml:"nodes"`
	BackEdges [][]int      `yaml:"back_edges,flow"`
}

// NodeNumber holds the numbering of one reached node. Parent is omitted
// for the root.
type NodeNumber struct {
	Node   int  `yaml:"node"`
	Pre    int  `yaml:"pre"`
	Post   int  `yaml:"post"`
	Depth  int  `yaml:"depth"`
	Parent *int `yaml:"parent,omitempty"`
}

// EncodeNumbering writes the numbering of res, in pre-order, and the back
// edges of g to w.
func EncodeNumbering(w io.Writer, g *cfg.Graph, res *dfs.VisitOrder) error {
	back, err := res.BackEdges(g)
	if err != nil {
		return err
	}

	f := NumberingFile{
		Root:      int(res.Root),
		Nodes:     make([]NodeNumber, 0, len(res.Preorder)),
		BackEdges: make([][]int, 0, len(back)),
	}
	for _, n := range res.Preorder {
		num := NodeNumber{Node: int(n), Pre: res.Pre[n], Post: res.Post[n], Depth: res.Depth[n]}
		if p, ok := res.Parent[n]; ok {
			parent := int(p)
			num.Parent = &parent
		}
		f.Nodes = append(f.Nodes, num)
	}
	for _, e := range back {
		f.BackEdges = append(f.BackEdges, []int{int(e.From), int(e.To)})
	}

	return encode(w, f)
}
