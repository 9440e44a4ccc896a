// Package setalg implements the set algebra behind CSS stabilizer codes.
//
// A stabilizer generator is represented only by its support: the set of qubit
// indices on which it acts non-trivially. Read as a binary vector, a support
// is an element of GF(2)^n and two supports add by symmetric difference.
// Generator stores the support in a compressed roaring bitmap, so addition is
// a container-wise XOR, "smallest qubit" is a constant-time minimum, and
// qubit indices may be arbitrarily large and sparse (2^40 is fine).
//
// What
//
//   - Generator: an immutable qubit-index set (New, Add, Overlap, Min, ...).
//   - Family: an ordered sequence of generators of one Pauli type.
//   - Commutes / FirstAnticommuting: symplectic orthogonality of two families.
//   - RemoveEmpties / Dedup / Normalize: discard trivial and redundant rows.
//   - Compare / Less / CanonicalOrder: the minimal-unique-element ordering,
//     computed by a top-down merge sort.
//   - ReducePivots / Rank / InSpan: echelon reduction over GF(2).
//
// Ordering
//
//	For distinct a and b, a precedes b iff min(a \ b) < min(b \ a).
//	When one set contains the other the difference on one side is empty; the
//	strict superset precedes its subset (as if min(∅) were +∞). With this
//	tie-break the relation is a strict total order: a precedes b exactly when
//	min(a △ b) lies in a. Compare reports the containment cases separately so
//	callers can tell them apart.
//
// Immutability
//
//	No function in this package mutates its arguments. Every transformation
//	returns a freshly allocated Family; Generators are values that never
//	change after construction.
//
// Complexity (k = generators, w = generator weight)
//
//   - Commutes:       O(|Sx|·|Sz|·w)
//   - CanonicalOrder: O(k log k · w) after O(k²·w) de-duplication
//   - ReducePivots:   O(k² log k · w)
package setalg
