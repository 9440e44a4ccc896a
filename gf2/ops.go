// SPDX-License-Identifier: MIT
//
// File: ops.go
// Role: GF(2) algebra kernels. Addition is XOR, multiplication is AND, so
// every kernel works on whole rows with bitset word operations.
// Contract:
//   - Operands are never mutated; every kernel returns a fresh Matrix.
//   - Shape errors are ErrDimensionMismatch / ErrNonSquare wrapped with the
//     operation tag.

package gf2

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

func sameShape(a, b *Matrix) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.r != b.r || a.c != b.c {
		return fmt.Errorf("%w: %d×%d vs %d×%d", ErrDimensionMismatch, a.r, a.c, b.r, b.c)
	}

	return nil
}

// Add returns a + b (entry-wise XOR).
// Complexity: O(r·c/64).
func Add(a, b *Matrix) (*Matrix, error) {
	if err := sameShape(a, b); err != nil {
		return nil, gf2Errorf(opAdd, err)
	}
	out := a.Clone()
	for i := range out.rows {
		out.rows[i].InPlaceSymmetricDifference(b.rows[i])
	}

	return out, nil
}

// Mul returns the product a·b over GF(2).
// Row i of the product is the XOR of the rows of b selected by row i of a.
// Complexity: O(a.r · a.c · b.c/64).
func Mul(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, gf2Errorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, gf2Errorf(opMul, fmt.Errorf("%w: %d×%d · %d×%d", ErrDimensionMismatch, a.r, a.c, b.r, b.c))
	}
	out := zeros(a.r, b.c)
	for i, row := range a.rows {
		for k, ok := row.NextSet(0); ok; k, ok = row.NextSet(k + 1) {
			out.rows[i].InPlaceSymmetricDifference(b.rows[k])
		}
	}

	return out, nil
}

// Pow returns m^e for a square m and e ≥ 0 (m^0 is the identity).
// Complexity: O(log e) multiplications.
func Pow(m *Matrix, e int) (*Matrix, error) {
	if m == nil {
		return nil, gf2Errorf(opPow, ErrNilMatrix)
	}
	if m.r != m.c {
		return nil, gf2Errorf(opPow, fmt.Errorf("%w: %d×%d", ErrNonSquare, m.r, m.c))
	}
	if e < 0 {
		return nil, gf2Errorf(opPow, fmt.Errorf("%w: negative exponent %d", ErrBadShape, e))
	}

	result, _ := Identity(m.r)
	base := m.Clone()
	var err error
	for e > 0 {
		if e&1 == 1 {
			if result, err = Mul(result, base); err != nil {
				return nil, err
			}
		}
		e >>= 1
		if e > 0 {
			if base, err = Mul(base, base); err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}

// Transpose returns mᵀ.
// Complexity: O(r·c).
func (m *Matrix) Transpose() *Matrix {
	out := zeros(m.c, m.r)
	for i, row := range m.rows {
		for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
			out.rows[j].Set(uint(i))
		}
	}

	return out
}

// Kron returns the Kronecker product a ⊗ b of shape (a.r·b.r)×(a.c·b.c).
func Kron(a, b *Matrix) *Matrix {
	out := zeros(a.r*b.r, a.c*b.c)
	for i, arow := range a.rows {
		for j, ok := arow.NextSet(0); ok; j, ok = arow.NextSet(j + 1) {
			for k, brow := range b.rows {
				dst := out.rows[i*b.r+k]
				off := uint(int(j) * b.c)
				for l, ok2 := brow.NextSet(0); ok2; l, ok2 = brow.NextSet(l + 1) {
					dst.Set(off + l)
				}
			}
		}
	}

	return out
}

// HStack returns [a | b]; both operands must have the same row count.
func HStack(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, gf2Errorf(opHStack, ErrNilMatrix)
	}
	if a.r != b.r {
		return nil, gf2Errorf(opHStack, fmt.Errorf("%w: %d rows vs %d rows", ErrDimensionMismatch, a.r, b.r))
	}
	out := zeros(a.r, a.c+b.c)
	for i := range out.rows {
		out.rows[i].InPlaceUnion(a.rows[i])
		for j, ok := b.rows[i].NextSet(0); ok; j, ok = b.rows[i].NextSet(j + 1) {
			out.rows[i].Set(uint(a.c) + j)
		}
	}

	return out, nil
}

// Rank returns the GF(2) rank via Gaussian elimination on a copy.
// Complexity: O(r² · c/64).
func (m *Matrix) Rank() int {
	rows := make([]*bitset.BitSet, len(m.rows))
	for i, row := range m.rows {
		rows[i] = row.Clone()
	}

	rank := 0
	for col := 0; col < m.c && rank < len(rows); col++ {
		pivot := -1
		for i := rank; i < len(rows); i++ {
			if rows[i].Test(uint(col)) {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		rows[rank], rows[pivot] = rows[pivot], rows[rank]
		for i := rank + 1; i < len(rows); i++ {
			if rows[i].Test(uint(col)) {
				rows[i].InPlaceSymmetricDifference(rows[rank])
			}
		}
		rank++
	}

	return rank
}

// IsZero reports whether every entry is 0.
func (m *Matrix) IsZero() bool {
	for _, row := range m.rows {
		if row.Any() {
			return false
		}
	}

	return true
}

// Equal reports whether a and b have the same shape and entries.
func Equal(a, b *Matrix) bool {
	if sameShape(a, b) != nil {
		return false
	}
	for i := range a.rows {
		if a.rows[i].SymmetricDifferenceCardinality(b.rows[i]) != 0 {
			return false
		}
	}

	return true
}
