// Package labels assigns stable integer labels to a generator family and
// builds the lookup structures derived from them: label→generator,
// generator→label and qubit→labels.
//
// Labels follow the canonical order of setalg: the family is normalised
// (empties and duplicates dropped), sorted with setalg.CanonicalOrder, and
// the generator at position i receives label i. The labelling therefore
// depends only on the set of distinct generators, never on the order the
// caller listed them in.
//
// An Index is immutable after New and safe for concurrent readers.
package labels

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/csslab/setalg"
)

// Index is the labelling of one generator family.
type Index struct {
	checks  setalg.Family      // canonical order; label == position
	inverse *redblacktree.Tree // setalg.Generator -> int, ordered by setalg.Less
}

// compareGenerators adapts the canonical total order to the gods comparator
// contract (negative, zero, positive).
func compareGenerators(a, b interface{}) int {
	ga, gb := a.(setalg.Generator), b.(setalg.Generator)
	switch setalg.Compare(ga, gb) {
	case setalg.Identical:
		return 0
	case setalg.Precedes, setalg.Supersets:
		return -1
	default:
		return 1
	}
}

// New labels the family. The input is not retained or modified.
// Complexity: O(CanonicalOrder) + O(k log k · w) for the inverse tree.
func New(family setalg.Family) *Index {
	ordered := setalg.CanonicalOrder(family)
	inv := redblacktree.NewWith(compareGenerators)
	for label, g := range ordered {
		inv.Put(g, label)
	}

	return &Index{checks: ordered, inverse: inv}
}

// Len returns the number of labelled generators.
func (ix *Index) Len() int { return len(ix.checks) }

// Labels returns 0..Len()-1.
func (ix *Index) Labels() []int {
	out := make([]int, len(ix.checks))
	for i := range out {
		out[i] = i
	}

	return out
}

// Generator returns the generator carrying label; ok is false when the label
// is out of range.
func (ix *Index) Generator(label int) (g setalg.Generator, ok bool) {
	if label < 0 || label >= len(ix.checks) {
		return setalg.Generator{}, false
	}

	return ix.checks[label], true
}

// Family returns the labelled generators in label order.
func (ix *Index) Family() setalg.Family {
	return ix.checks.Clone()
}

// Checks returns the label→generator map.
func (ix *Index) Checks() map[int]setalg.Generator {
	out := make(map[int]setalg.Generator, len(ix.checks))
	for label, g := range ix.checks {
		out[label] = g
	}

	return out
}

// Label is the inverse lookup: the label of a generator equal (as a set) to
// g. ok is false when g is not a member of the labelled family.
// Complexity: O(log k · w).
func (ix *Index) Label(g setalg.Generator) (label int, ok bool) {
	v, found := ix.inverse.Get(g)
	if !found {
		return -1, false
	}

	return v.(int), true
}

// Inverse returns the generator-key→label map, keyed by setalg.Generator.Key.
func (ix *Index) Inverse() map[string]int {
	out := make(map[string]int, len(ix.checks))
	it := ix.inverse.Iterator()
	for it.Next() {
		out[it.Key().(setalg.Generator).Key()] = it.Value().(int)
	}

	return out
}

// Incidence maps every qubit to the ascending labels of the generators that
// contain it.
//
// Every qubit of universe is present in the result, with an empty (non-nil)
// slice when no generator touches it; qubits used by the family but missing
// from universe are included as well. Pass nil to cover just the family's
// own qubits.
// Complexity: O(|universe| + Σ weight).
func (ix *Index) Incidence(universe []int) map[int][]int {
	out := make(map[int][]int, len(universe))
	for _, q := range universe {
		out[q] = []int{}
	}
	for label, g := range ix.checks {
		for _, q := range g.Elements() {
			out[q] = append(out[q], label)
		}
	}

	return out
}

// Support returns the ascending labels of generators containing qubit q.
func (ix *Index) Support(q int) []int {
	out := []int{}
	for label, g := range ix.checks {
		if g.Contains(q) {
			out = append(out, label)
		}
	}

	return out
}
