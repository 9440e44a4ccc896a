// Package graph provides a small, thread-safe, undirected graph with
// deterministic enumeration, used for every graph a CSS code exports
// (check chain graphs, per-sector connectivity graphs).
//
// The graph G = (V,E) is generic over a comparable vertex type N. Because Go
// maps iterate in random order, the caller supplies a strict total order
// (less) and every enumeration (Vertices, Neighbors, Edges) is sorted by it;
// NewOrdered uses the natural order of integer and string vertex types.
//
// Behavior:
//
//   - Undirected: AddEdge(u,v) links both directions; HasEdge is symmetric.
//   - Simple: a second AddEdge(u,v) returns ErrDuplicateEdge.
//   - Loops only with WithLoops(); otherwise ErrLoopNotAllowed.
//   - Edges carry no attributes beyond connectivity.
//
// Core Methods:
//
//	AddVertex(v)            // O(1), idempotent
//	HasVertex(v) bool       // O(1)
//	AddEdge(u, v) error     // O(1), auto-adds endpoints
//	HasEdge(u, v) bool      // O(1)
//	RemoveEdge(u, v) error  // O(1)
//	Neighbors(v) ([]N, err) // O(d log d)
//	Degree(v) (int, err)    // O(1)
//	Vertices() []N          // O(V log V)
//	Edges() []Edge[N]       // O(E log E)
//	Clone() *Graph[N]       // O(V + E)
//
// Errors:
//
//	ErrVertexNotFound – missing vertex
//	ErrEdgeNotFound   – missing edge
//	ErrLoopNotAllowed – self-loop when loops disabled
//	ErrDuplicateEdge  – parallel edge
package graph
