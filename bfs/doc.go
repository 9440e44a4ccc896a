// Package bfs provides breadth-first search over a graph.Graph and the
// connected-component partition built on it.
//
// BFS returns the visit order and the hop distance of every reached vertex.
// WithMaxDepth bounds the search, which is how check neighbourhoods of a
// code are computed; Components partitions a graph, which is how check
// clusters are computed.
//
// Determinism
//
//	graph.Graph enumerates neighbours in its vertex order and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
//	clusters := bfs.Components(g)
//
// Errors
//
//   - ErrGraphNil             nil graph.
//   - ErrStartVertexNotFound  start vertex not in the graph.
//   - ErrOptionViolation      negative depth.
package bfs
