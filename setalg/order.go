package setalg

// Relation is the tagged outcome of Compare.
type Relation int

const (
	// Precedes: min(a \ b) < min(b \ a), both differences non-empty.
	Precedes Relation = iota
	// Follows: min(a \ b) > min(b \ a), both differences non-empty.
	Follows
	// Supersets: b ⊊ a, so b \ a is empty.
	Supersets
	// Subsets: a ⊊ b, so a \ b is empty.
	Subsets
	// Identical: a and b are the same set.
	Identical
)

// String returns the relation name.
func (r Relation) String() string {
	switch r {
	case Precedes:
		return "Precedes"
	case Follows:
		return "Follows"
	case Supersets:
		return "Supersets"
	case Subsets:
		return "Subsets"
	case Identical:
		return "Identical"
	default:
		return "Relation(?)"
	}
}

// Compare relates a to b under the minimal-unique-element rule.
//
// The general rule min(a\b) vs min(b\a) is only defined when neither set
// contains the other; the containment cases are reported as Supersets or
// Subsets instead of being guessed.
// Complexity: O(w).
func Compare(a, b Generator) Relation {
	ma, okA := a.Minus(b).Min()
	mb, okB := b.Minus(a).Min()
	switch {
	case !okA && !okB:
		return Identical
	case !okA:
		return Subsets
	case !okB:
		return Supersets
	case ma < mb:
		return Precedes
	default:
		return Follows
	}
}

// Less is the strict total order used for canonical ordering.
// a precedes b under the general rule, and a strict superset precedes its
// subset.
func Less(a, b Generator) bool {
	switch Compare(a, b) {
	case Precedes, Supersets:
		return true
	default:
		return false
	}
}

// CanonicalOrder returns the normalised family (no empties, no duplicates)
// sorted by Less. The input is not modified.
//
// The result depends only on the set of distinct non-empty generators, not
// on their original sequence order.
// Complexity: O(k²·w) normalisation + O(k log k · w) merge sort.
func CanonicalOrder(f Family) Family {
	return mergeSort(Normalize(f))
}

// mergeSort sorts a fresh slice top-down: split in half, sort each half,
// merge by repeatedly taking the smaller head.
func mergeSort(f Family) Family {
	if len(f) < 2 {
		return f
	}
	if len(f) == 2 {
		if Less(f[1], f[0]) {
			return Family{f[1], f[0]}
		}
		return f
	}

	mid := len(f) / 2
	left := mergeSort(f[:mid])
	right := mergeSort(f[mid:])

	out := make(Family, 0, len(f))
	for len(left) > 0 && len(right) > 0 {
		if Less(left[0], right[0]) {
			out = append(out, left[0])
			left = left[1:]
		} else {
			out = append(out, right[0])
			right = right[1:]
		}
	}
	out = append(out, left...)

	return append(out, right...)
}
