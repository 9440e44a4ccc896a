// Package lattice defines core types, options, and sentinel errors
// for coordinate lattices of qubit and check sites.
package lattice

import (
	"errors"
	"fmt"
)

// Sentinel errors for lattice construction.
var (
	// ErrEmptyLattice indicates a lattice without qubit sites.
	ErrEmptyLattice = errors.New("lattice: at least one qubit site is required")
	// ErrDuplicateSite indicates a coordinate used twice (as qubit or check).
	ErrDuplicateSite = errors.New("lattice: duplicate site")
	// ErrBadPeriod indicates a negative period or a site outside [0, period).
	ErrBadPeriod = errors.New("lattice: invalid period")
)

// Neighborhood selects which qubit sites a check acts on.
type Neighborhood int

const (
	// Plus uses the four orthogonal sites: N, E, S, W.
	Plus Neighborhood = iota
	// Diagonal uses the four diagonal sites: NE, SE, SW, NW.
	Diagonal
)

// String returns "plus" or "diagonal".
func (n Neighborhood) String() string {
	if n == Diagonal {
		return "diagonal"
	}
	return "plus"
}

func (n Neighborhood) offsets() [][2]int {
	if n == Diagonal {
		return [][2]int{{1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
	}
	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// Coord is a lattice site. Coordinates may be negative on open lattices.
type Coord struct {
	X, Y int
}

// Less orders coordinates by X, then Y.
func (c Coord) Less(d Coord) bool {
	if c.X != d.X {
		return c.X < d.X
	}
	return c.Y < d.Y
}

// String renders "(x,y)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Options contains tunable parameters for a lattice.
type Options struct {
	// Neighborhood chooses Plus or Diagonal adjacency.
	Neighborhood Neighborhood
	// PeriodX and PeriodY, when > 0, wrap the X and Y axes (torus).
	// Zero leaves the axis open.
	PeriodX, PeriodY int
}

// DefaultOptions returns Options with Plus adjacency and open boundaries.
func DefaultOptions() Options {
	return Options{Neighborhood: Plus}
}

// Lattice holds qubit and check sites. It is immutable once built.
// Qubits are labelled 0..n-1 in ascending Coord order.
type Lattice struct {
	qubits  []Coord
	label   map[Coord]int
	xChecks []Coord
	zChecks []Coord
	opts    Options
}
