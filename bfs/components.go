package bfs

import (
	"sort"

	"github.com/katalvlaran/csslab/graph"
)

// Components partitions the vertices of g into connected components.
//
// Components are listed in ascending order of their smallest vertex, and
// each component lists its vertices in the graph's order. A nil graph has
// no components.
//
// Complexity: O(V log V + E).
func Components[N comparable](g *graph.Graph[N]) [][]N {
	if g == nil {
		return nil
	}

	vertices := g.Vertices()
	rank := make(map[N]int, len(vertices))
	for i, v := range vertices {
		rank[v] = i
	}

	seen := make(map[N]bool, len(vertices))
	out := make([][]N, 0)
	for _, v := range vertices {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			// only reachable if v vanished concurrently
			continue
		}
		comp := append([]N(nil), res.Order...)
		for _, u := range comp {
			seen[u] = true
		}
		sort.Slice(comp, func(i, j int) bool { return rank[comp[i]] < rank[comp[j]] })
		out = append(out, comp)
	}

	return out
}
