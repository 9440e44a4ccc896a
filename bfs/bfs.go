package bfs

import (
	"fmt"

	"github.com/katalvlaran/csslab/graph"
)

// frontierItem pairs a vertex with its BFS depth.
type frontierItem[N comparable] struct {
	v     N
	depth int
}

// walker holds the mutable state of one run.
type walker[N comparable] struct {
	graph    *graph.Graph[N]
	maxDepth int
	queue    []frontierItem[N]
	res      *Result[N]
}

// BFS runs breadth-first search on g from start.
//
// Neighbours are expanded in the graph's vertex order, so Order is
// reproducible. Returns ErrGraphNil, ErrStartVertexNotFound or
// ErrOptionViolation for bad input.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS[N comparable](g *graph.Graph[N], start N, opts ...Option) (*Result[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker[N]{
		graph:    g,
		maxDepth: cfg.maxDepth,
		queue:    make([]frontierItem[N], 0, n),
		res: &Result[N]{
			Start: start,
			Order: make([]N, 0, n),
			Depth: make(map[N]int, n),
		},
	}
	w.push(start, 0)

	return w.res, w.run()
}

// push records v at depth d and queues it.
func (w *walker[N]) push(v N, d int) {
	w.res.Depth[v] = d
	w.queue = append(w.queue, frontierItem[N]{v: v, depth: d})
}

// run drains the queue.
func (w *walker[N]) run() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.v)

		if w.maxDepth != unlimited && item.depth >= w.maxDepth {
			continue
		}
		neighbors, err := w.graph.Neighbors(item.v)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %v: %w", item.v, err)
		}
		for _, nbr := range neighbors {
			if _, seen := w.res.Depth[nbr]; !seen {
				w.push(nbr, item.depth+1)
			}
		}
	}

	return nil
}
