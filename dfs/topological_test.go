package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bboissin/thesis-bboissin/cfg"
	"github.com/bboissin/thesis-bboissin/dfs"
)

func TestTopologicalSort_NilGraph(t *testing.T) {
	order, err := dfs.TopologicalSort(nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestTopologicalSort_Diamond(t *testing.T) {
	g := buildGraph(t, 0, [2]cfg.Node{0, 1}, [2]cfg.Node{0, 2}, [2]cfg.Node{1, 3}, [2]cfg.Node{2, 3})

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []cfg.Node{0, 2, 1, 3}, order)
}

func TestTopologicalSort_EdgesPointForward(t *testing.T) {
	edges := [][2]cfg.Node{{0, 1}, {0, 4}, {1, 2}, {4, 2}, {2, 3}, {4, 5}, {5, 3}, {1, 5}}
	g := buildGraph(t, 0, edges...)

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, 6)

	pos := make(map[cfg.Node]int, len(order))
	for i, n := range order {
		pos[n] = i
	}
	for _, e := range edges {
		assert.Less(t, pos[e[0]], pos[e[1]], "edge %s->%s points backwards", e[0], e[1])
	}
}

func TestTopologicalSort_Loop(t *testing.T) {
	g := buildGraph(t, 0, [2]cfg.Node{0, 1}, [2]cfg.Node{1, 2}, [2]cfg.Node{2, 1})

	order, err := dfs.TopologicalSort(g)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	assert.ErrorContains(t, err, "b2->b1")
}

func TestTopologicalSort_IgnoresUnreachableLoop(t *testing.T) {
	g := buildGraph(t, 0, [2]cfg.Node{0, 1}, [2]cfg.Node{7, 8}, [2]cfg.Node{8, 7})

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []cfg.Node{0, 1}, order)
}

func TestTopologicalSort_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.TopologicalSort(buildChain(t, 10), dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReversePostorder(t *testing.T) {
	g := buildGraph(t, 0, [2]cfg.Node{0, 1}, [2]cfg.Node{1, 2}, [2]cfg.Node{2, 1}, [2]cfg.Node{1, 3})
	res, err := dfs.Search(g)
	require.NoError(t, err)

	assert.Equal(t, []cfg.Node{0, 1, 3, 2}, res.ReversePostorder())
	assert.Equal(t, []cfg.Node{2, 3, 1, 0}, res.Order, "Order itself is untouched")
}
