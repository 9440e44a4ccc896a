// Package gf2 implements dense binary matrices over GF(2).
//
// Each row is a bitset (github.com/bits-and-blooms/bitset), so addition is a
// word-wise XOR and the product a·b XORs together the rows of b selected by
// each row of a. The package serves three consumers:
//
//   - check-matrix materialisation of a CSS code (rows = check labels,
//     columns = qubit indices) and the orthogonality test Hx·Hzᵀ = 0;
//   - algebraic code construction (cyclic shifts, Kronecker products,
//     powers and horizontal stacking for bivariate bicycle codes);
//   - rank computations used to count logical qubits.
//
// Errors:
//
//	ErrBadShape          – negative dimension, ragged rows, negative power
//	ErrOutOfRange        – index outside the matrix
//	ErrDimensionMismatch – incompatible operand shapes
//	ErrNonSquare         – square matrix required
//	ErrNilMatrix         – nil operand
//	ErrNotBinary         – entry other than 0 or 1
//
// All operations are pure: operands are never modified.
package gf2
