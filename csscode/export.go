package csscode

import (
	"github.com/katalvlaran/csslab/gf2"
)

// CheckMatrices returns, per sector, the sparse parity-check matrix as
// (row, col, 1) triples: row = check label, col = qubit index. Entries are
// in row-major order.
// Complexity: O(Σ weight).
func (c *Code) CheckMatrices() map[Sector][]gf2.Triple {
	out := make(map[Sector][]gf2.Triple, 2)
	for _, s := range Sectors {
		out[s] = c.triples(s)
	}

	return out
}

func (c *Code) triples(s Sector) []gf2.Triple {
	ix := c.checks[s]
	out := make([]gf2.Triple, 0)
	for _, label := range ix.Labels() {
		g, _ := ix.Generator(label)
		for _, q := range g.Elements() {
			out = append(out, gf2.Triple{Row: label, Col: q, Value: 1})
		}
	}

	return out
}

// Width returns the column count of the dense check matrices: one past the
// largest qubit index, so non-contiguous universes keep their indices.
func (c *Code) Width() int { return c.qubits[len(c.qubits)-1] + 1 }

// CheckMatrix materialises the dense check matrix of sector s with
// Checks(s).Len() rows and Width() columns. Width grows with the largest
// qubit index; use CompactCheckMatrix for sparse universes.
func (c *Code) CheckMatrix(s Sector) *gf2.Matrix {
	m, err := gf2.FromTriples(c.checks[s].Len(), c.Width(), c.triples(s))
	if err != nil {
		// every triple lies inside the shape by construction
		panic(err)
	}

	return m
}

// CompactCheckMatrix is CheckMatrix with columns renumbered to positions in
// Qubits(): column j holds qubit Qubits()[j]. It has N() columns whatever
// the magnitude of the qubit indices.
// Complexity: O(n + Σ weight) plus the dense allocation.
func (c *Code) CompactCheckMatrix(s Sector) *gf2.Matrix {
	col := make(map[int]int, len(c.qubits))
	for j, q := range c.qubits {
		col[q] = j
	}
	ts := c.triples(s)
	for i := range ts {
		ts[i].Col = col[ts[i].Col]
	}
	m, err := gf2.FromTriples(c.checks[s].Len(), len(c.qubits), ts)
	if err != nil {
		panic(err)
	}

	return m
}
