package graph_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/csslab/graph"
)

type GraphSuite struct {
	suite.Suite
	g *graph.Graph[int]
}

func (s *GraphSuite) SetupTest() {
	s.g = graph.NewOrdered[int]()
}

func (s *GraphSuite) TestAddVertexAndHasVertex() {
	require := require.New(s.T())
	require.False(s.g.HasVertex(1))

	s.g.AddVertex(1)
	require.True(s.g.HasVertex(1))

	// idempotent
	s.g.AddVertex(1)
	require.Equal(1, s.g.VertexCount())
}

func (s *GraphSuite) TestAddEdgeMirrorsAndAutoAdds() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(3, 1))
	require.True(s.g.HasVertex(1) && s.g.HasVertex(3))
	require.True(s.g.HasEdge(1, 3))
	require.True(s.g.HasEdge(3, 1))
	require.Equal(1, s.g.EdgeCount())
}

func (s *GraphSuite) TestRejectsLoopsAndDuplicates() {
	require := require.New(s.T())
	require.ErrorIs(s.g.AddEdge(2, 2), graph.ErrLoopNotAllowed)
	require.NoError(s.g.AddEdge(1, 2))
	require.ErrorIs(s.g.AddEdge(2, 1), graph.ErrDuplicateEdge)
	require.Equal(1, s.g.EdgeCount())

	looped := graph.NewOrdered[int](graph.WithLoops())
	require.True(looped.Looped())
	require.NoError(looped.AddEdge(2, 2))
	require.True(looped.HasEdge(2, 2))
	require.Equal([]graph.Edge[int]{{From: 2, To: 2}}, looped.Edges())
}

func (s *GraphSuite) TestRemoveEdge() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(1, 2))
	require.NoError(s.g.RemoveEdge(2, 1))
	require.False(s.g.HasEdge(1, 2))
	require.True(s.g.HasVertex(1), "vertices survive edge removal")
	require.Equal(0, s.g.EdgeCount())
	require.ErrorIs(s.g.RemoveEdge(1, 2), graph.ErrEdgeNotFound)
}

func (s *GraphSuite) TestDeterministicEnumeration() {
	require := require.New(s.T())
	for _, e := range [][2]int{{5, 1}, {3, 1}, {5, 3}, {2, 4}} {
		require.NoError(s.g.AddEdge(e[0], e[1]))
	}
	s.g.AddVertex(0)

	require.Equal([]int{0, 1, 2, 3, 4, 5}, s.g.Vertices())
	nbrs, err := s.g.Neighbors(5)
	require.NoError(err)
	require.Equal([]int{1, 3}, nbrs)
	require.Equal([]graph.Edge[int]{{1, 3}, {1, 5}, {2, 4}, {3, 5}}, s.g.Edges())

	d, err := s.g.Degree(1)
	require.NoError(err)
	require.Equal(2, d)
	d, err = s.g.Degree(0)
	require.NoError(err)
	require.Equal(0, d)
}

func (s *GraphSuite) TestMissingVertex() {
	require := require.New(s.T())
	_, err := s.g.Neighbors(7)
	require.ErrorIs(err, graph.ErrVertexNotFound)
	_, err = s.g.Degree(7)
	require.ErrorIs(err, graph.ErrVertexNotFound)
}

func (s *GraphSuite) TestCloneIsIndependent() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(1, 2))
	c := s.g.Clone()
	require.NoError(c.AddEdge(2, 3))
	require.False(s.g.HasVertex(3))
	require.Equal(1, s.g.EdgeCount())
	require.Equal(2, c.EdgeCount())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

type node struct {
	kind  string
	label int
}

func TestCustomOrder(t *testing.T) {
	less := func(a, b node) bool {
		if a.kind != b.kind {
			return a.kind < b.kind
		}
		return a.label < b.label
	}
	g := graph.NewGraph(less)
	require.NoError(t, g.AddEdge(node{"z", 0}, node{"x", 1}))
	require.NoError(t, g.AddEdge(node{"x", 0}, node{"z", 0}))

	require.Equal(t, []node{{"x", 0}, {"x", 1}, {"z", 0}}, g.Vertices())
	require.Equal(t, []graph.Edge[node]{
		{From: node{"x", 0}, To: node{"z", 0}},
		{From: node{"x", 1}, To: node{"z", 0}},
	}, g.Edges())
}

func TestConcurrentAddEdge(t *testing.T) {
	g := graph.NewOrdered[int]()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_ = g.AddEdge(w*100+i, w*100+i+1)
			}
		}(w)
	}
	wg.Wait()
	require.Equal(t, 8*50, g.EdgeCount())
	require.Equal(t, 8*51, g.VertexCount())
}

func ExampleGraph() {
	g := graph.NewOrdered[string]()
	_ = g.AddEdge("B", "A")
	_ = g.AddEdge("B", "C")

	fmt.Println(g.Vertices())
	fmt.Println(g.HasEdge("A", "B"), g.HasEdge("A", "C"))
	nbrs, _ := g.Neighbors("B")
	fmt.Println(nbrs)
	// Output:
	// [A B C]
	// true false
	// [A C]
}
