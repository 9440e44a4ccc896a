package bfs

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an Option carries a meaningless value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// unlimited marks a search without a depth bound.
const unlimited = -1

// Option tunes a single BFS run. A bad value is recorded and reported by
// BFS as ErrOptionViolation rather than panicking, because depths usually
// come from caller input.
type Option func(*config)

type config struct {
	maxDepth int
	err      error
}

func newConfig(opts ...Option) config {
	cfg := config{maxDepth: unlimited}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMaxDepth stops the search d edges away from the start: vertices at
// depth d are visited but not expanded. d == 0 visits the start only;
// d < 0 is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(c *config) {
		if d < 0 {
			c.err = fmt.Errorf("%w: max depth %d", ErrOptionViolation, d)
			return
		}
		c.maxDepth = d
	}
}

// Result is the outcome of one BFS run.
type Result[N comparable] struct {
	Start N
	// Order lists reached vertices in visit order.
	Order []N
	// Depth maps every reached vertex to its distance, in edges, from Start.
	Depth map[N]int
}
