// File: methods.go
// Role: Vertex and edge lifecycle plus queries.
// Determinism:
//   - Vertices() and Neighbors() are sorted by the graph's less function.
//   - Edges() is sorted by (From, To) under the same order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package graph

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
// Complexity: O(1) amortized.
func (g *Graph[N]) AddVertex(v N) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensure(v)
}

// ensure creates the adjacency bucket for v; caller holds the write lock.
func (g *Graph[N]) ensure(v N) {
	if _, ok := g.adjacency[v]; !ok {
		g.adjacency[v] = make(map[N]struct{})
	}
}

// HasVertex reports whether v is present.
// Complexity: O(1).
func (g *Graph[N]) HasVertex(v N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[v]

	return ok
}

// AddEdge inserts the undirected edge {u,v}, creating missing endpoints.
//
// Steps:
//  1. Reject u == v unless loops are enabled (ErrLoopNotAllowed).
//  2. Reject an existing {u,v} (ErrDuplicateEdge).
//  3. Ensure both endpoints, then link u→v and the mirror v→u.
//
// Complexity: O(1) amortized.
func (g *Graph[N]) AddEdge(u, v N) error {
	if u == v && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[u][v]; ok {
		return ErrDuplicateEdge
	}
	g.ensure(u)
	g.ensure(v)
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether {u,v} is an edge. Symmetric in u and v.
// Complexity: O(1).
func (g *Graph[N]) HasEdge(u, v N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[u][v]

	return ok
}

// RemoveEdge deletes {u,v}; ErrEdgeNotFound if absent. Vertices stay.
// Complexity: O(1).
func (g *Graph[N]) RemoveEdge(u, v N) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[u][v]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)
	g.edgeCount--

	return nil
}

// Vertices returns all vertices in ascending order.
// Complexity: O(V log V).
func (g *Graph[N]) Vertices() []N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]N, 0, len(g.adjacency))
	for v := range g.adjacency {
		out = append(out, v)
	}
	g.sortVertices(out)

	return out
}

// Neighbors returns the vertices adjacent to v in ascending order.
// A loop lists v among its own neighbours once.
// Complexity: O(d log d).
func (g *Graph[N]) Neighbors(v N) ([]N, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[v]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]N, 0, len(bucket))
	for u := range bucket {
		out = append(out, u)
	}
	g.sortVertices(out)

	return out, nil
}

// Degree returns the number of distinct neighbours of v.
// Complexity: O(1).
func (g *Graph[N]) Degree(v N) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[v]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(bucket), nil
}

// Edges returns every edge once, normalised with From ≤ To and sorted by
// (From, To).
// Complexity: O(E log E).
func (g *Graph[N]) Edges() []Edge[N] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[N], 0, g.edgeCount)
	for u, bucket := range g.adjacency {
		for v := range bucket {
			if g.less(v, u) {
				continue // mirror of an edge emitted from v
			}
			out = append(out, Edge[N]{From: u, To: v})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return g.less(out[i].From, out[j].From)
		}
		return g.less(out[i].To, out[j].To)
	})

	return out
}

// VertexCount returns |V|.
func (g *Graph[N]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns |E|.
func (g *Graph[N]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Clone returns a deep copy sharing no state with g.
// Complexity: O(V + E).
func (g *Graph[N]) Clone() *Graph[N] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph[N]{
		less:       g.less,
		allowLoops: g.allowLoops,
		adjacency:  make(map[N]map[N]struct{}, len(g.adjacency)),
		edgeCount:  g.edgeCount,
	}
	for u, bucket := range g.adjacency {
		nb := make(map[N]struct{}, len(bucket))
		for v := range bucket {
			nb[v] = struct{}{}
		}
		c.adjacency[u] = nb
	}

	return c
}

func (g *Graph[N]) sortVertices(vs []N) {
	sort.Slice(vs, func(i, j int) bool { return g.less(vs[i], vs[j]) })
}
