// SPDX-License-Identifier: MIT
//
// impl_algebraic.go - codes given by parity-check matrices.
//
// Contract:
//   • BivariateBicycle(l,m,a,b): x = S_l⊗I_m, y = I_l⊗S_m (S = cyclic
//     shift), A = x^a0 + y^a1 + y^a2, B = y^b0 + x^b1 + x^b2 over GF(2),
//     Hx = [A|B], Hz = [Bᵀ|Aᵀ]. A and B commute, so Hx·Hzᵀ = AB + BA = 0.
//   • FromCheckMatrices(hx,hz): row i of each matrix becomes generator i
//     of that sector, holding the column indices of its 1-entries.

package codes

import (
	"fmt"

	"github.com/katalvlaran/csslab/gf2"
	"github.com/katalvlaran/csslab/setalg"
)

// BivariateBicycle returns the bivariate bicycle code on 2lm qubits with
// A-exponents a = (x, y, y) and B-exponents b = (y, x, x).
// Requires l, m ≥ 1 and non-negative exponents.
func BivariateBicycle(l, m int, a, b [3]int) Provider {
	return func(providerConfig) (Pair, error) {
		if err := validateMin(MethodBivariateBicycle, "l", l, minCyclicOrder); err != nil {
			return Pair{}, err
		}
		if err := validateMin(MethodBivariateBicycle, "m", m, minCyclicOrder); err != nil {
			return Pair{}, err
		}
		if err := validateExponents(MethodBivariateBicycle, a[0], a[1], a[2], b[0], b[1], b[2]); err != nil {
			return Pair{}, err
		}

		hx, hz, err := bicycleMatrices(l, m, a, b)
		if err != nil {
			return Pair{}, fmt.Errorf("%s: %w", MethodBivariateBicycle, err)
		}

		return Pair{
			Name: fmt.Sprintf("%s(%d,%d,%v,%v)", MethodBivariateBicycle, l, m, a, b),
			X:    familyFromMatrix(hx),
			Z:    familyFromMatrix(hz),
		}, nil
	}
}

// bicycleMatrices computes Hx and Hz.
//
// Stage 1: x = S_l ⊗ I_m, y = I_l ⊗ S_m.
// Stage 2: A and B as sums of three monomials.
// Stage 3: stack.
func bicycleMatrices(l, m int, a, b [3]int) (hx, hz *gf2.Matrix, err error) {
	sl, err := gf2.Shift(l)
	if err != nil {
		return nil, nil, err
	}
	sm, err := gf2.Shift(m)
	if err != nil {
		return nil, nil, err
	}
	il, _ := gf2.Identity(l)
	im, _ := gf2.Identity(m)
	x := gf2.Kron(sl, im)
	y := gf2.Kron(il, sm)

	A, err := monomialSum(x, a[0], y, a[1], y, a[2])
	if err != nil {
		return nil, nil, err
	}
	B, err := monomialSum(y, b[0], x, b[1], x, b[2])
	if err != nil {
		return nil, nil, err
	}

	if hx, err = gf2.HStack(A, B); err != nil {
		return nil, nil, err
	}
	if hz, err = gf2.HStack(B.Transpose(), A.Transpose()); err != nil {
		return nil, nil, err
	}

	return hx, hz, nil
}

// monomialSum returns p^i + q^j + r^k.
func monomialSum(p *gf2.Matrix, i int, q *gf2.Matrix, j int, r *gf2.Matrix, k int) (*gf2.Matrix, error) {
	t1, err := gf2.Pow(p, i)
	if err != nil {
		return nil, err
	}
	t2, err := gf2.Pow(q, j)
	if err != nil {
		return nil, err
	}
	t3, err := gf2.Pow(r, k)
	if err != nil {
		return nil, err
	}
	sum, err := gf2.Add(t1, t2)
	if err != nil {
		return nil, err
	}

	return gf2.Add(sum, t3)
}

// familyFromMatrix turns each row into the generator of its 1-columns.
func familyFromMatrix(h *gf2.Matrix) setalg.Family {
	out := make(setalg.Family, h.Rows())
	for i := range out {
		cols, _ := h.Row(i)
		out[i] = setalg.New(cols...)
	}

	return out
}

// FromCheckMatrices converts dense 0/1 check matrices into generator
// families. Either matrix may be empty; the widths need not agree.
func FromCheckMatrices(hx, hz [][]int) Provider {
	return func(providerConfig) (Pair, error) {
		mx, err := gf2.FromRows(hx)
		if err != nil {
			return Pair{}, codesErrorf(MethodFromCheckMatrices, ErrRaggedMatrix, "hx: %v", err)
		}
		mz, err := gf2.FromRows(hz)
		if err != nil {
			return Pair{}, codesErrorf(MethodFromCheckMatrices, ErrRaggedMatrix, "hz: %v", err)
		}

		return Pair{
			Name: MethodFromCheckMatrices,
			X:    familyFromMatrix(mx),
			Z:    familyFromMatrix(mz),
		}, nil
	}
}
