// Package lattice places qubits and parity checks on a 2D coordinate
// lattice and turns the geometry into CSS generator families. It supports:
//
//   - Plus (orthogonal) or Diagonal neighbourhoods
//   - Open or periodic axes
//   - Qubit labelling by ascending (x,y)
//   - Conversion to a Tanner graph (*graph.Graph[Coord])
//
// A check acts on every qubit site at one of its neighbourhood offsets.
package lattice

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/csslab/graph"
	"github.com/katalvlaran/csslab/setalg"
)

// New builds a Lattice from qubit sites and X/Z check sites.
// It copies the inputs and sorts every site list.
// Returns ErrEmptyLattice if there are no qubits, ErrBadPeriod for a
// negative period or a site outside a periodic axis, ErrDuplicateSite if a
// coordinate appears twice anywhere.
// Complexity: O(S log S) for S sites.
func New(qubits, xChecks, zChecks []Coord, opts Options) (*Lattice, error) {
	if len(qubits) == 0 {
		return nil, ErrEmptyLattice
	}
	if opts.PeriodX < 0 || opts.PeriodY < 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrBadPeriod, opts.PeriodX, opts.PeriodY)
	}

	l := &Lattice{
		qubits:  sortedCopy(qubits),
		xChecks: sortedCopy(xChecks),
		zChecks: sortedCopy(zChecks),
		label:   make(map[Coord]int, len(qubits)),
		opts:    opts,
	}

	seen := make(map[Coord]struct{}, len(qubits)+len(xChecks)+len(zChecks))
	for _, sites := range [][]Coord{l.qubits, l.xChecks, l.zChecks} {
		for _, c := range sites {
			if !l.inPeriod(c) {
				return nil, fmt.Errorf("%w: site %s outside %d×%d", ErrBadPeriod, c, opts.PeriodX, opts.PeriodY)
			}
			if _, dup := seen[c]; dup {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateSite, c)
			}
			seen[c] = struct{}{}
		}
	}
	for i, c := range l.qubits {
		l.label[c] = i
	}

	return l, nil
}

func sortedCopy(cs []Coord) []Coord {
	out := append([]Coord(nil), cs...)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

func (l *Lattice) inPeriod(c Coord) bool {
	if l.opts.PeriodX > 0 && (c.X < 0 || c.X >= l.opts.PeriodX) {
		return false
	}
	if l.opts.PeriodY > 0 && (c.Y < 0 || c.Y >= l.opts.PeriodY) {
		return false
	}
	return true
}

// wrap maps c into the periodic box on wrapped axes.
func (l *Lattice) wrap(c Coord) Coord {
	if p := l.opts.PeriodX; p > 0 {
		c.X = ((c.X % p) + p) % p
	}
	if p := l.opts.PeriodY; p > 0 {
		c.Y = ((c.Y % p) + p) % p
	}
	return c
}

// QubitCount returns the number of qubit sites.
func (l *Lattice) QubitCount() int { return len(l.qubits) }

// Qubits returns the qubit sites in label order.
func (l *Lattice) Qubits() []Coord { return append([]Coord(nil), l.qubits...) }

// XChecks returns the X check sites in ascending order.
func (l *Lattice) XChecks() []Coord { return append([]Coord(nil), l.xChecks...) }

// ZChecks returns the Z check sites in ascending order.
func (l *Lattice) ZChecks() []Coord { return append([]Coord(nil), l.zChecks...) }

// Label returns the qubit label of site c.
func (l *Lattice) Label(c Coord) (int, bool) {
	i, ok := l.label[l.wrap(c)]
	return i, ok
}

// Coord returns the site of qubit label i.
func (l *Lattice) Coord(i int) (Coord, bool) {
	if i < 0 || i >= len(l.qubits) {
		return Coord{}, false
	}
	return l.qubits[i], true
}

// Support returns the sorted labels of the qubits adjacent to site c.
// Complexity: O(1) (four offsets).
func (l *Lattice) Support(c Coord) []int {
	out := make([]int, 0, 4)
	for _, d := range l.opts.Neighborhood.offsets() {
		if q, ok := l.Label(Coord{X: c.X + d[0], Y: c.Y + d[1]}); ok {
			out = append(out, q)
		}
	}
	sort.Ints(out)

	return out
}

// Stabilizers returns the X and Z generator families, one generator per
// check site in ascending site order. Checks with no adjacent qubit are
// skipped.
// Complexity: O(C) for C check sites.
func (l *Lattice) Stabilizers() (sx, sz setalg.Family) {
	return l.family(l.xChecks), l.family(l.zChecks)
}

func (l *Lattice) family(sites []Coord) setalg.Family {
	out := make(setalg.Family, 0, len(sites))
	for _, c := range sites {
		if support := l.Support(c); len(support) > 0 {
			out = append(out, setalg.New(support...))
		}
	}

	return out
}

// TannerGraph returns the site graph: every qubit and check site is a
// vertex, and each check is joined to the qubits it acts on.
// Complexity: O(S + C).
func (l *Lattice) TannerGraph() *graph.Graph[Coord] {
	g := graph.NewGraph(Coord.Less)
	for _, q := range l.qubits {
		g.AddVertex(q)
	}
	for _, sites := range [][]Coord{l.xChecks, l.zChecks} {
		for _, c := range sites {
			g.AddVertex(c)
			for _, q := range l.Support(c) {
				_ = g.AddEdge(c, l.qubits[q])
			}
		}
	}

	return g
}
