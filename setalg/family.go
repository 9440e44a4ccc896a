package setalg

import (
	"strings"

	"github.com/RoaringBitmap/roaring/roaring64"
)

// Family is an ordered sequence of generators of one Pauli type.
type Family []Generator

// Of builds a Family from plain index slices, one generator per slice.
//
//	setalg.Of([]int{0, 1}, []int{1, 2})
func Of(supports ...[]int) Family {
	out := make(Family, len(supports))
	for i, s := range supports {
		out[i] = New(s...)
	}

	return out
}

// Supports returns the family as sorted index slices (the inverse of Of).
func (f Family) Supports() [][]int {
	out := make([][]int, len(f))
	for i, g := range f {
		out[i] = g.Elements()
	}

	return out
}

// Clone returns a copy of the family slice. Generators are immutable, so a
// shallow copy is a full copy.
func (f Family) Clone() Family {
	if f == nil {
		return nil
	}
	out := make(Family, len(f))
	copy(out, f)

	return out
}

// Shift applies Generator.Shift to every member.
func (f Family) Shift(offset int) Family {
	out := make(Family, len(f))
	for i, g := range f {
		out[i] = g.Shift(offset)
	}

	return out
}

// String renders the family as "[{0,1} {1,2}]".
func (f Family) String() string {
	parts := make([]string, len(f))
	for i, g := range f {
		parts[i] = g.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// Commutes reports whether every X-type generator in sx commutes with every
// Z-type generator in sz: |x ∩ z| is even for all pairs.
// Complexity: O(|sx|·|sz|·w) using the bitmap intersection cardinality.
func Commutes(sx, sz Family) bool {
	_, _, _, bad := FirstAnticommuting(sx, sz)

	return !bad
}

// FirstAnticommuting returns the first pair (i, j), in row-major order, for
// which sx[i] and sz[j] overlap on an odd number of qubits, together with
// that overlap. found is false when the families commute.
func FirstAnticommuting(sx, sz Family) (i, j, overlap int, found bool) {
	for i = range sx {
		for j = range sz {
			if overlap = sx[i].Overlap(sz[j]); overlap%2 != 0 {
				return i, j, overlap, true
			}
		}
	}

	return 0, 0, 0, false
}

// RemoveEmpties returns the non-empty members of f in their original order.
func RemoveEmpties(f Family) Family {
	out := make(Family, 0, len(f))
	for _, g := range f {
		if !g.IsEmpty() {
			out = append(out, g)
		}
	}

	return out
}

// Dedup returns f with repeated sets removed; the first occurrence wins.
// Complexity: O(k²·w).
func Dedup(f Family) Family {
	out := make(Family, 0, len(f))
next:
	for _, g := range f {
		for _, kept := range out {
			if kept.Equal(g) {
				continue next
			}
		}
		out = append(out, g)
	}

	return out
}

// Normalize drops empty and duplicate generators. Neither changes the
// generated subgroup.
func Normalize(f Family) Family {
	return Dedup(RemoveEmpties(f))
}

// Universe returns the sorted union of all supports across the families.
func Universe(families ...Family) []int {
	acc := roaring64.New()
	for _, f := range families {
		for _, g := range f {
			acc.Or(g.set())
		}
	}

	return Generator{bits: acc}.Elements()
}

// MinQubit returns the smallest qubit index used by f; ok is false when f
// has an empty universe.
func MinQubit(f Family) (q int, ok bool) {
	u := Universe(f)
	if len(u) == 0 {
		return 0, false
	}

	return u[0], true
}

// MaxQubit returns the largest qubit index used by f; ok is false when f
// has an empty universe.
func MaxQubit(f Family) (q int, ok bool) {
	u := Universe(f)
	if len(u) == 0 {
		return 0, false
	}

	return u[len(u)-1], true
}
