package setalg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/roaring64"
)

// Generator is the support of one stabilizer generator: a finite set of
// non-negative qubit indices. The zero value is the empty set.
//
// Generators are immutable. Every operation returns a new value and the
// underlying bitmap is never shared with a caller.
//
// The support lives in a compressed 64-bit roaring bitmap, so memory follows
// the weight of the generator and not the magnitude of its indices: {0, 2^40}
// costs a few dozen bytes.
type Generator struct {
	bits *roaring64.Bitmap
}

// emptyBits backs the zero Generator. It is never written to.
var emptyBits = roaring64.New()

// New returns the generator supported on the given qubits.
// Repeated indices collapse to a single element.
//
// New panics on a negative index: qubit labels are non-negative by contract
// and a negative one is a programmer error upstream.
// Complexity: O(len(qubits) · log len(qubits)).
func New(qubits ...int) Generator {
	b := roaring64.New()
	for _, q := range qubits {
		if q < 0 {
			panic(fmt.Sprintf("setalg: negative qubit index %d", q))
		}
		b.Add(uint64(q))
	}

	return Generator{bits: b}
}

// set returns the backing bitmap, substituting the shared empty set for the
// zero value. Callers must not mutate the result.
func (g Generator) set() *roaring64.Bitmap {
	if g.bits == nil {
		return emptyBits
	}

	return g.bits
}

// Contains reports whether qubit q lies in the support.
func (g Generator) Contains(q int) bool {
	if q < 0 {
		return false
	}

	return g.set().Contains(uint64(q))
}

// Weight returns the number of qubits in the support.
func (g Generator) Weight() int {
	return int(g.set().GetCardinality())
}

// IsEmpty reports whether g is the identity (empty support).
func (g Generator) IsEmpty() bool {
	return g.set().IsEmpty()
}

// Min returns the smallest qubit index in g; ok is false for the empty set.
func (g Generator) Min() (q int, ok bool) {
	b := g.set()
	if b.IsEmpty() {
		return 0, false
	}

	return int(b.Minimum()), true
}

// Max returns the largest qubit index in g; ok is false for the empty set.
func (g Generator) Max() (q int, ok bool) {
	b := g.set()
	if b.IsEmpty() {
		return 0, false
	}

	return int(b.Maximum()), true
}

// Elements returns the support in ascending order.
func (g Generator) Elements() []int {
	raw := g.set().ToArray()
	out := make([]int, len(raw))
	for i, q := range raw {
		out[i] = int(q)
	}

	return out
}

// Add returns g ⊕ h, the GF(2) sum of two generators (symmetric difference).
func (g Generator) Add(h Generator) Generator {
	return Generator{bits: roaring64.Xor(g.set(), h.set())}
}

// Minus returns g \ h.
func (g Generator) Minus(h Generator) Generator {
	return Generator{bits: roaring64.AndNot(g.set(), h.set())}
}

// Overlap returns |g ∩ h| without materialising the intersection.
func (g Generator) Overlap(h Generator) int {
	return int(g.set().AndCardinality(h.set()))
}

// Intersects reports whether g and h share at least one qubit.
func (g Generator) Intersects(h Generator) bool {
	return g.Overlap(h) > 0
}

// CommutesWith reports whether the X-type operator on g and the Z-type
// operator on h commute, i.e. |g ∩ h| is even.
func (g Generator) CommutesWith(h Generator) bool {
	return g.Overlap(h)%2 == 0
}

// Equal reports set equality.
func (g Generator) Equal(h Generator) bool {
	a, b := g.set(), h.set()
	n := a.GetCardinality()

	return n == b.GetCardinality() && a.AndCardinality(b) == n
}

// SubsetOf reports whether g ⊆ h.
func (g Generator) SubsetOf(h Generator) bool {
	a := g.set()

	return a.AndCardinality(h.set()) == a.GetCardinality()
}

// Shift returns g with every qubit index increased by offset.
// A shift that would produce a negative index panics, like New.
func (g Generator) Shift(offset int) Generator {
	elems := g.Elements()
	for i := range elems {
		elems[i] += offset
	}

	return New(elems...)
}

// Key returns the canonical hashable key of g: its sorted elements joined by
// commas ("0,1,2,3"). Two generators are Equal iff their keys match.
func (g Generator) Key() string {
	elems := g.Elements()
	var sb strings.Builder
	for i, q := range elems {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(q))
	}

	return sb.String()
}

// String renders g as "{0,1,2,3}".
func (g Generator) String() string {
	return "{" + g.Key() + "}"
}
