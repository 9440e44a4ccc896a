// SPDX-License-Identifier: MIT
//
// File: matrix.go
// Role: Matrix type, constructors and element access.
// Storage:
//   - One bitset.BitSet per row, each of length Cols(); bit j of row i is
//     entry (i,j).
//   - Zero rows or zero columns are legal (empty check families).

package gf2

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Matrix is a dense r×c matrix over GF(2).
type Matrix struct {
	r, c int
	rows []*bitset.BitSet
}

// NewMatrix creates an r×c zero matrix.
// Stage 1 (Validate): r, c ≥ 0.
// Stage 2 (Prepare): allocate one bitset per row.
// Complexity: O(r·c/64).
func NewMatrix(r, c int) (*Matrix, error) {
	if r < 0 || c < 0 {
		return nil, gf2Errorf(opNewMatrix, fmt.Errorf("%w: %d×%d", ErrBadShape, r, c))
	}

	return zeros(r, c), nil
}

// zeros allocates without validation; callers guarantee r, c ≥ 0.
func zeros(r, c int) *Matrix {
	m := &Matrix{r: r, c: c, rows: make([]*bitset.BitSet, r)}
	for i := range m.rows {
		m.rows[i] = bitset.New(uint(c))
	}

	return m
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	m, err := NewMatrix(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.rows[i].Set(uint(i))
	}

	return m, nil
}

// Shift returns the n×n cyclic shift matrix S with S[i][(i+1) mod n] = 1,
// i.e. the identity rolled one column to the right.
func Shift(n int) (*Matrix, error) {
	m, err := NewMatrix(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.rows[i].Set(uint((i + 1) % n))
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.c }

func (m *Matrix) inRange(i, j int) bool {
	return i >= 0 && i < m.r && j >= 0 && j < m.c
}

// At returns entry (i,j) as 0 or 1.
// Complexity: O(1).
func (m *Matrix) At(i, j int) (int, error) {
	if m == nil {
		return 0, gf2Errorf(opAt, ErrNilMatrix)
	}
	if !m.inRange(i, j) {
		return 0, gf2Errorf(opAt, fmt.Errorf("%w: (%d,%d) in %d×%d", ErrOutOfRange, i, j, m.r, m.c))
	}
	if m.rows[i].Test(uint(j)) {
		return 1, nil
	}

	return 0, nil
}

// Set assigns entry (i,j); v must be 0 or 1.
// Complexity: O(1).
func (m *Matrix) Set(i, j, v int) error {
	if m == nil {
		return gf2Errorf(opSet, ErrNilMatrix)
	}
	if !m.inRange(i, j) {
		return gf2Errorf(opSet, fmt.Errorf("%w: (%d,%d) in %d×%d", ErrOutOfRange, i, j, m.r, m.c))
	}
	if v != 0 && v != 1 {
		return gf2Errorf(opSet, fmt.Errorf("%w: %d", ErrNotBinary, v))
	}
	m.rows[i].SetTo(uint(j), v == 1)

	return nil
}

// Row returns the column indices of the non-zero entries of row i, ascending.
// Complexity: O(c/64 + weight).
func (m *Matrix) Row(i int) ([]int, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("%w: row %d of %d", ErrOutOfRange, i, m.r)
	}
	out := make([]int, 0, m.rows[i].Count())
	for j, ok := m.rows[i].NextSet(0); ok; j, ok = m.rows[i].NextSet(j + 1) {
		out = append(out, int(j))
	}

	return out, nil
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{r: m.r, c: m.c, rows: make([]*bitset.BitSet, m.r)}
	for i, row := range m.rows {
		out.rows[i] = row.Clone()
	}

	return out
}

// String renders one line of 0/1 characters per row.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i, row := range m.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j := 0; j < m.c; j++ {
			if row.Test(uint(j)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}

	return sb.String()
}
