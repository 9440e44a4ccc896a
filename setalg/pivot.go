package setalg

import "github.com/plan-systems/klog"

// ReducePivots returns a generating set for the same GF(2) span as f in
// which every generator has a distinct minimal element.
//
// Implementation:
//   - Stage 1: Normalize the working set (drop empties and duplicates).
//   - Stage 2: If nothing is left, return the accumulated pivots.
//   - Stage 3: Canonically order the working set; its head P is the pivot
//     and q = min(P).
//   - Stage 4: Replace every other member S that contains q by S ⊕ P.
//   - Stage 5: Append P to the pivots and repeat from Stage 1.
//
// Behavior highlights:
//   - The head of the canonical order always contains the smallest qubit of
//     the working set, so pivots come out in strictly ascending min order.
//   - No later pivot contains the minimum of an earlier one.
//   - Applying ReducePivots to its own output returns the same family.
//   - An empty (or all-empty) input yields an empty, non-nil family.
//
// Complexity: O(k) rounds of CanonicalOrder, O(k² log k · w) overall.
func ReducePivots(f Family) Family {
	rest := Normalize(f)
	pivots := make(Family, 0, len(rest))

	for len(rest) > 0 {
		ordered := CanonicalOrder(rest)
		p := ordered[0]
		q, _ := p.Min()

		next := make(Family, 0, len(ordered)-1)
		for _, g := range ordered[1:] {
			if g.Contains(q) {
				g = g.Add(p)
			}
			next = append(next, g)
		}

		pivots = append(pivots, p)
		klog.V(4).Infof("setalg: pivot %d on qubit %d, %d rows remain", len(pivots)-1, q, len(next))
		rest = Normalize(next)
	}

	return pivots
}

// Rank returns the GF(2) dimension of the span of f.
func Rank(f Family) int {
	return len(ReducePivots(f))
}

// InSpan reports whether g is a GF(2) combination of members of f.
// The empty generator is always in the span.
func InSpan(f Family, g Generator) bool {
	return residue(ReducePivots(f), g).IsEmpty()
}

// residue eliminates the pivot minima of an echelon family from g, walking
// pivots in ascending min order.
func residue(echelon Family, g Generator) Generator {
	for _, p := range echelon {
		q, _ := p.Min()
		if g.Contains(q) {
			g = g.Add(p)
		}
	}

	return g
}
