package yamlfile_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bboissin/thesis-bboissin/cfg"
	"github.com/bboissin/thesis-bboissin/dfs"
	"github.com/bboissin/thesis-bboissin/internal/yamlfile"
)

const loopGraph = `
root: 0
nodes: [5]
edges: [[0, 1], [1, 2], [2, 1], [1, 3], [1, 3]]
`

func TestDecodeGraph(t *testing.T) {
	g, err := yamlfile.DecodeGraph(strings.NewReader(loopGraph))
	require.NoError(t, err)

	assert.Equal(t, cfg.Node(0), g.Root())
	assert.Equal(t, []cfg.Node{0, 5, 1, 2, 3}, g.Nodes())
	assert.Equal(t, 5, g.EdgeCount(), "repeated edges are kept")

	succ, err := g.Successors(1)
	require.NoError(t, err)
	assert.Equal(t, []cfg.Node{2, 3, 3}, succ)
}

func TestDecodeGraph_BadEdge(t *testing.T) {
	_, err := yamlfile.DecodeGraph(strings.NewReader("root: 0\nedges: [[0, 1, 2]]\n"))
	assert.ErrorIs(t, err, yamlfile.ErrBadPair)
}

func TestEncodeNumbering(t *testing.T) {
	g, err := yamlfile.DecodeGraph(strings.NewReader(loopGraph))
	require.NoError(t, err)
	res, err := dfs.Search(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, yamlfile.EncodeNumbering(&buf, g, res))

	var back yamlfile.NumberingFile
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))

	parent := func(n int) *int { return &n }
	want := yamlfile.NumberingFile{
		Root: 0,
		Nodes: []yamlfile.NodeNumber{
			{Node: 0, Pre: 0, Post: 3, Depth: 0},
			{Node: 1, Pre: 1, Post: 2, Depth: 1, Parent: parent(0)},
			{Node: 2, Pre: 2, Post: 0, Depth: 2, Parent: parent(1)},
			{Node: 3, Pre: 3, Post: 1, Depth: 2, Parent: parent(1)},
		},
		BackEdges: [][]int{{2, 1}},
	}
	if diff := cmp.Diff(want, back, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("numbering mismatch (-want +got):\n%s", diff)
	}
}
