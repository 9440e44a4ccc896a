package bfs_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csslab/bfs"
	"github.com/katalvlaran/csslab/graph"
)

// path builds 0–1–…–n.
func path(n int) *graph.Graph[int] {
	g := graph.NewOrdered[int]()
	g.AddVertex(0)
	for i := 0; i < n; i++ {
		_ = g.AddEdge(i, i+1)
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS[int](nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := graph.NewOrdered[int]()
	_, err = bfs.BFS(g, 7)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	g.AddVertex(0)
	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_CycleAndDepths covers a 4-cycle 0–1–2–3–0.
func TestBFS_CycleAndDepths(t *testing.T) {
	g := graph.NewOrdered[int]()
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Start)
	assert.Equal(t, []int{0, 1, 3, 2}, res.Order)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 3: 1, 2: 2}, res.Depth)
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := graph.NewOrdered[string]()
	require.NoError(t, g.AddEdge("X", "Y"))
	require.NoError(t, g.AddEdge("P", "Q"))

	res, err := bfs.BFS(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, res.Order)
}

// TestBFS_MaxDepth: the bound is inclusive and 0 keeps only the start.
func TestBFS_MaxDepth(t *testing.T) {
	g := path(3)
	for _, tc := range []struct {
		depth int
		want  []int
	}{
		{0, []int{0}},
		{1, []int{0, 1}},
		{2, []int{0, 1, 2}},
		{10, []int{0, 1, 2, 3}},
	} {
		res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(tc.depth))
		require.NoError(t, err)
		assert.Equal(t, tc.want, res.Order, "MaxDepth=%d", tc.depth)
		assert.Len(t, res.Depth, len(tc.want))
	}

	// the last option wins
	res, err := bfs.BFS(g, 1, bfs.WithMaxDepth(0), bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2}, res.Order)
}

func TestComponents(t *testing.T) {
	g := graph.NewOrdered[int]()
	require.NoError(t, g.AddEdge(4, 1))
	require.NoError(t, g.AddEdge(1, 6))
	require.NoError(t, g.AddEdge(2, 3))
	g.AddVertex(5)
	g.AddVertex(0)

	assert.Equal(t, [][]int{{0}, {1, 4, 6}, {2, 3}, {5}}, bfs.Components(g))
	assert.Nil(t, bfs.Components[int](nil))
	assert.Empty(t, bfs.Components(graph.NewOrdered[int]()))
}

func ExampleComponents() {
	g := graph.NewOrdered[string]()
	_ = g.AddEdge("x0", "z1")
	_ = g.AddEdge("x2", "z3")
	_ = g.AddEdge("z1", "x1")

	fmt.Println(bfs.Components(g))
	// Output:
	// [[x0 x1 z1] [x2 z3]]
}
