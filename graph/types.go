// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, options, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - A single sync.RWMutex guards the adjacency map; every exported method
//     takes the read or write lock itself.
// Determinism:
//   - Enumeration order comes from the caller-supplied less function, never
//     from map iteration.

package graph

import (
	"cmp"
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrDuplicateEdge indicates the edge {u,v} is already present.
	ErrDuplicateEdge = errors.New("graph: edge already present")
)

// Edge is an undirected edge, normalised so that From sorts before To
// (or equals it for a loop).
type Edge[N comparable] struct {
	From N
	To   N
}

// Option configures a Graph before creation.
type Option func(*options)

type options struct {
	allowLoops bool // permit u–u edges
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() Option {
	return func(o *options) { o.allowLoops = true }
}

// Graph is an undirected simple graph over vertices of type N.
//
// Parallel edges are never stored; loops only with WithLoops. Vertices,
// Neighbors and Edges are returned in the order defined by less, which must
// be a strict total order on N.
type Graph[N comparable] struct {
	mu sync.RWMutex

	less       func(a, b N) bool
	allowLoops bool

	// adjacency[u][v] exists iff {u,v} is an edge; every vertex has a
	// (possibly empty) bucket.
	adjacency map[N]map[N]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph ordered by less.
// Complexity: O(1).
func NewGraph[N comparable](less func(a, b N) bool, opts ...Option) *Graph[N] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[N]{
		less:       less,
		allowLoops: o.allowLoops,
		adjacency:  make(map[N]map[N]struct{}),
	}
}

// NewOrdered creates an empty Graph over an ordered vertex type, using the
// natural < order for enumeration.
func NewOrdered[N cmp.Ordered](opts ...Option) *Graph[N] {
	return NewGraph[N](cmp.Less[N], opts...)
}

// Looped reports whether self-loops are permitted.
func (g *Graph[N]) Looped() bool { return g.allowLoops }
