// File: graphs.go
// Role: graph views of a code.
// Edges:
//   - Two generators are adjacent iff their supports intersect at all. The
//     overlap is NOT filtered by parity: commuting X/Z generators sharing an
//     even number of qubits are still adjacent.
//   - Pairs are discovered through the qubit incidence, so the cost is
//     Σ_q deg_X(q)·deg_Z(q) rather than |Sx|·|Sz| set intersections.

package csscode

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/katalvlaran/csslab/bfs"
	"github.com/katalvlaran/csslab/graph"
)

// CheckNode identifies a generator by sector and label.
type CheckNode struct {
	Sector Sector
	Label  int
}

// Less orders nodes by sector (X first), then label.
func (n CheckNode) Less(m CheckNode) bool {
	if n.Sector != m.Sector {
		return n.Sector < m.Sector
	}
	return n.Label < m.Label
}

// ChainGraph returns the bipartite X–Z check graph: one node per labelled
// generator of either sector, one edge per X/Z pair with intersecting support.
func (c *Code) ChainGraph() *graph.Graph[CheckNode] {
	g := graph.NewGraph(CheckNode.Less)
	for _, s := range Sectors {
		for _, label := range c.checks[s].Labels() {
			g.AddVertex(CheckNode{Sector: s, Label: label})
		}
	}
	for _, q := range c.qubits {
		for _, lx := range c.incidence[X][q] {
			for _, lz := range c.incidence[Z][q] {
				u, v := CheckNode{X, lx}, CheckNode{Z, lz}
				if !g.HasEdge(u, v) {
					_ = g.AddEdge(u, v)
				}
			}
		}
	}

	return g
}

// ConnectivityGraph returns the same-sector check graph of s: nodes are all
// labels of s, edges join labels whose supports intersect.
func (c *Code) ConnectivityGraph(s Sector) *graph.Graph[int] {
	g := graph.NewOrdered[int]()
	for _, label := range c.checks[s].Labels() {
		g.AddVertex(label)
	}
	for _, q := range c.qubits {
		ls := c.incidence[s][q]
		for i := 0; i < len(ls); i++ {
			for j := i + 1; j < len(ls); j++ {
				if !g.HasEdge(ls[i], ls[j]) {
					_ = g.AddEdge(ls[i], ls[j])
				}
			}
		}
	}

	return g
}

// ConnectivityGraphs returns ConnectivityGraph for both sectors, built
// concurrently.
func (c *Code) ConnectivityGraphs() map[Sector]*graph.Graph[int] {
	var (
		built [2]*graph.Graph[int]
		wg    sync.WaitGroup
	)
	for _, s := range Sectors {
		wg.Add(1)
		go func(s Sector) {
			defer wg.Done()
			built[s] = c.ConnectivityGraph(s)
		}(s)
	}
	wg.Wait()

	return map[Sector]*graph.Graph[int]{X: built[X], Z: built[Z]}
}

// CheckClusters partitions the labels of s into groups connected through
// shared qubits. Clusters are ordered by their smallest label.
func (c *Code) CheckClusters(s Sector) [][]int {
	return bfs.Components(c.ConnectivityGraph(s))
}

// CheckNeighbourhood returns the checks of sector s within radius hops of
// check label in the connectivity graph, each mapped to its hop distance.
// Radius 0 yields the check alone.
//
// Errors: bfs.ErrStartVertexNotFound for an unknown label and
// bfs.ErrOptionViolation for a negative radius, both wrapped.
func (c *Code) CheckNeighbourhood(s Sector, label, radius int) (map[int]int, error) {
	res, err := bfs.BFS(c.ConnectivityGraph(s), label, bfs.WithMaxDepth(radius))
	if err != nil {
		return nil, errors.Wrapf(err, "%s: neighbourhood of %s check %d", c.cfg.name, s, label)
	}

	return res.Depth, nil
}
