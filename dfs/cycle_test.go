package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bboissin/thesis-bboissin/cfg"
	"github.com/bboissin/thesis-bboissin/dfs"
)

func TestClassify(t *testing.T) {
	// 0→1→2→1 (loop), 1→3, 0→3 (forward), 0→4, 4→3 (cross), 5 unreachable.
	g := buildGraph(t, 0,
		[2]cfg.Node{0, 1}, [2]cfg.Node{1, 2}, [2]cfg.Node{2, 1}, [2]cfg.Node{1, 3},
		[2]cfg.Node{0, 3}, [2]cfg.Node{0, 4}, [2]cfg.Node{4, 3}, [2]cfg.Node{5, 0},
	)
	res, err := dfs.Search(g)
	require.NoError(t, err)

	tests := []struct {
		from, to cfg.Node
		want     dfs.EdgeKind
	}{
		{0, 1, dfs.TreeEdge},
		{1, 2, dfs.TreeEdge},
		{2, 1, dfs.BackEdge},
		{1, 3, dfs.TreeEdge},
		{0, 3, dfs.ForwardEdge},
		{0, 4, dfs.TreeEdge},
		{4, 3, dfs.CrossEdge},
		{5, 0, dfs.Unreached},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, res.Classify(tt.from, tt.to), "%s->%s", tt.from, tt.to)
	}
}

func TestClassify_SelfLoopIsBackEdge(t *testing.T) {
	g := buildGraph(t, 0, [2]cfg.Node{0, 0})
	res, err := dfs.Search(g)
	require.NoError(t, err)

	assert.Equal(t, dfs.BackEdge, res.Classify(0, 0))
	assert.True(t, res.IsAncestor(0, 0))
}

func TestBackEdgesAndLoopHeaders(t *testing.T) {
	// Nested loops: outer 1..4 with latch 4→1, inner 2⇄3.
	g := buildGraph(t, 0,
		[2]cfg.Node{0, 1}, [2]cfg.Node{1, 2}, [2]cfg.Node{2, 3}, [2]cfg.Node{3, 2},
		[2]cfg.Node{3, 4}, [2]cfg.Node{4, 1}, [2]cfg.Node{4, 5},
	)
	res, err := dfs.Search(g)
	require.NoError(t, err)

	back, err := res.BackEdges(g)
	require.NoError(t, err)
	assert.Equal(t, []dfs.Edge{{From: 3, To: 2}, {From: 4, To: 1}}, back)

	headers, err := res.LoopHeaders(g)
	require.NoError(t, err)
	assert.Equal(t, []cfg.Node{1, 2}, headers)
}

func TestBackEdges_Acyclic(t *testing.T) {
	g := buildGraph(t, 0, [2]cfg.Node{0, 1}, [2]cfg.Node{0, 2}, [2]cfg.Node{1, 2})
	res, err := dfs.Search(g)
	require.NoError(t, err)

	back, err := res.BackEdges(g)
	require.NoError(t, err)
	assert.Empty(t, back)

	_, err = res.BackEdges(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestEdgeKind_String(t *testing.T) {
	assert.Equal(t, "back", dfs.BackEdge.String())
	assert.Equal(t, "cross", dfs.CrossEdge.String())
	assert.Equal(t, "EdgeKind(?)", dfs.EdgeKind(42).String())
}
