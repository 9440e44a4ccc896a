package gf2

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Triple is one non-zero entry of a sparse 0/1 matrix.
type Triple struct {
	Row   int
	Col   int
	Value int
}

// FromRows builds a matrix from a rectangular slice of 0/1 rows.
// An empty input yields a 0×0 matrix; a ragged input is ErrBadShape.
func FromRows(rows [][]int) (*Matrix, error) {
	if len(rows) == 0 {
		return zeros(0, 0), nil
	}
	c := len(rows[0])
	m := zeros(len(rows), c)
	for i, row := range rows {
		if len(row) != c {
			return nil, gf2Errorf(opFromRows, fmt.Errorf("%w: row %d has %d entries, want %d", ErrBadShape, i, len(row), c))
		}
		for j, v := range row {
			switch v {
			case 0:
			case 1:
				m.rows[i].Set(uint(j))
			default:
				return nil, gf2Errorf(opFromRows, fmt.Errorf("%w: (%d,%d)=%d", ErrNotBinary, i, j, v))
			}
		}
	}

	return m, nil
}

// FromTriples builds an r×c matrix from sparse entries. Repeated
// coordinates are allowed; the last value written wins.
func FromTriples(r, c int, triples []Triple) (*Matrix, error) {
	m, err := NewMatrix(r, c)
	if err != nil {
		return nil, err
	}
	for _, t := range triples {
		if err = m.Set(t.Row, t.Col, t.Value); err != nil {
			return nil, gf2Errorf(opTriples, err)
		}
	}

	return m, nil
}

// Triples lists the non-zero entries in row-major order.
func (m *Matrix) Triples() []Triple {
	out := make([]Triple, 0)
	for i, row := range m.rows {
		for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
			out = append(out, Triple{Row: i, Col: int(j), Value: 1})
		}
	}

	return out
}

// ToRows returns the matrix as a dense slice of 0/1 rows.
func (m *Matrix) ToRows() [][]int {
	out := make([][]int, m.r)
	for i, row := range m.rows {
		out[i] = make([]int, m.c)
		for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
			out[i][j] = 1
		}
	}

	return out
}

// RowBits returns a copy of row i as a bitset; nil when i is out of range.
func (m *Matrix) RowBits(i int) *bitset.BitSet {
	if i < 0 || i >= m.r {
		return nil
	}

	return m.rows[i].Clone()
}
