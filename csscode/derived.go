package csscode

import (
	"sort"

	"github.com/katalvlaran/csslab/setalg"
)

// BoundaryQubits returns, per sector, the qubits covered by exactly one
// labelled generator of that sector, ascending.
func (c *Code) BoundaryQubits() map[Sector][]int {
	out := make(map[Sector][]int, 2)
	for _, s := range Sectors {
		out[s] = c.qubitsWhere(s, func(deg int) bool { return deg == 1 })
	}

	return out
}

// detectingSector is the sector whose checks can flag errors that matter
// to observable s. ClassicalBits keys its result by s but inspects the
// other family: a qubit no Z check touches is a classical X bit.
func detectingSector(s Sector) Sector { return s.Opposite() }

// ClassicalBits returns, per sector s, the qubits lying in no generator of
// the opposite sector, ascending.
func (c *Code) ClassicalBits() map[Sector][]int {
	out := make(map[Sector][]int, 2)
	for _, s := range Sectors {
		out[s] = c.qubitsWhere(detectingSector(s), func(deg int) bool { return deg == 0 })
	}

	return out
}

// qubitsWhere filters the universe by the incidence degree in sector s.
func (c *Code) qubitsWhere(s Sector, keep func(deg int) bool) []int {
	out := make([]int, 0)
	for _, q := range c.qubits {
		if keep(len(c.incidence[s][q])) {
			out = append(out, q)
		}
	}

	return out
}

// Rank returns the GF(2) rank of the family of sector s.
func (c *Code) Rank(s Sector) int { return setalg.Rank(c.families[s]) }

// K returns the number of logical qubits, n − rank(Sx) − rank(Sz).
func (c *Code) K() int { return c.N() - c.Rank(X) - c.Rank(Z) }

// Reduced returns a new Code whose families are the pivot-reduced forms of
// this one. The receiver is unchanged.
func (c *Code) Reduced() (*Code, error) {
	opts := []Option{WithName(c.cfg.name)}
	if c.cfg.sequential {
		opts = append(opts, WithSequential())
	}

	return New(setalg.ReducePivots(c.families[X]), setalg.ReducePivots(c.families[Z]), opts...)
}

// Syndrome returns the labels of the sector-s checks that overlap errs on
// an odd number of qubits, ascending. Z checks detect X errors and vice
// versa, so pass the sector of the checks, not of the error.
func (c *Code) Syndrome(s Sector, errs setalg.Generator) []int {
	flips := make(map[int]int)
	for _, q := range errs.Elements() {
		for _, label := range c.incidence[s][q] {
			flips[label]++
		}
	}
	out := make([]int, 0, len(flips))
	for label, n := range flips {
		if n%2 == 1 {
			out = append(out, label)
		}
	}
	sort.Ints(out)

	return out
}

// Stats summarises one sector: check weights and qubit degrees.
type Stats struct {
	Checks    int
	MinWeight int
	MaxWeight int
	// Weights maps a check weight to the number of checks with that weight.
	Weights map[int]int
	// Degrees maps a qubit degree (checks touching it) to the number of qubits.
	Degrees map[int]int
}

// Stats computes the weight and degree histograms of sector s.
func (c *Code) Stats(s Sector) Stats {
	st := Stats{
		Checks:  c.checks[s].Len(),
		Weights: make(map[int]int),
		Degrees: make(map[int]int),
	}
	for i, g := range c.checks[s].Family() {
		w := g.Weight()
		st.Weights[w]++
		if i == 0 || w < st.MinWeight {
			st.MinWeight = w
		}
		if w > st.MaxWeight {
			st.MaxWeight = w
		}
	}
	for _, q := range c.qubits {
		st.Degrees[len(c.incidence[s][q])]++
	}

	return st
}
