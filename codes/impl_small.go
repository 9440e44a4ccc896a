// SPDX-License-Identifier: MIT
//
// impl_small.go - fixed and one-dimensional codes: Steane, repetition, QPC.
//
// Contract:
//   • Steane: the three weight-4 generators with the central qubit 2 shared
//     by all, used for both sectors.
//   • BitFlipRepetition(n): n Z checks {i,i+1} on n+1 qubits, no X checks.
//     PhaseFlipRepetition(n) is the same with the sectors swapped.
//   • QPC(m,n): n blocks of m consecutive qubits. Z checks join neighbours
//     inside a block; X check i covers blocks i and i+1 (2m qubits).

package codes

import (
	"fmt"

	"github.com/katalvlaran/csslab/setalg"
)

// steaneSupports is the high-weight central-qubit presentation.
var steaneSupports = [][]int{{0, 1, 2, 3}, {1, 2, 4, 5}, {2, 3, 5, 6}}

// Steane returns the [[7,1,3]] Steane code provider.
func Steane() Provider {
	return func(providerConfig) (Pair, error) {
		return Pair{
			Name: MethodSteane,
			X:    setalg.Of(steaneSupports...),
			Z:    setalg.Of(steaneSupports...),
		}, nil
	}
}

// chain returns the n pair generators {i,i+1}, i < n.
func chain(n int) setalg.Family {
	out := make(setalg.Family, n)
	for i := 0; i < n; i++ {
		out[i] = setalg.New(i, i+1)
	}

	return out
}

// BitFlipRepetition returns the bit-flip repetition code with n Z checks
// on n+1 qubits. Requires n ≥ 1.
func BitFlipRepetition(n int) Provider {
	return func(providerConfig) (Pair, error) {
		if err := validateMin(MethodBitFlipRepetition, "n", n, minRepetitionChecks); err != nil {
			return Pair{}, err
		}
		return Pair{
			Name: fmt.Sprintf("%s(%d)", MethodBitFlipRepetition, n),
			X:    setalg.Family{},
			Z:    chain(n),
		}, nil
	}
}

// PhaseFlipRepetition returns the phase-flip repetition code with n X
// checks on n+1 qubits. Requires n ≥ 1.
func PhaseFlipRepetition(n int) Provider {
	return func(providerConfig) (Pair, error) {
		if err := validateMin(MethodPhaseFlipRepetition, "n", n, minRepetitionChecks); err != nil {
			return Pair{}, err
		}
		return Pair{
			Name: fmt.Sprintf("%s(%d)", MethodPhaseFlipRepetition, n),
			X:    chain(n),
			Z:    setalg.Family{},
		}, nil
	}
}

// QPC returns the quantum parity check code (rotated Shor family) with n
// blocks of m qubits: n(m-1) Z checks and n-1 X checks on mn qubits.
// Requires m, n ≥ 1 and m·n ≥ 2.
func QPC(m, n int) Provider {
	return func(providerConfig) (Pair, error) {
		if err := validateMin(MethodQPC, "m", m, minQPCBlock); err != nil {
			return Pair{}, err
		}
		if err := validateMin(MethodQPC, "n", n, minQPCBlocks); err != nil {
			return Pair{}, err
		}
		if err := validateArea(MethodQPC, "m", "n", m, n); err != nil {
			return Pair{}, err
		}

		sx := make(setalg.Family, 0, n-1)
		sz := make(setalg.Family, 0, n*(m-1))
		for b := 0; b < n; b++ {
			base := b * m
			for j := 0; j < m-1; j++ {
				sz = append(sz, setalg.New(base+j, base+j+1))
			}
			if b == n-1 {
				continue
			}
			block := make([]int, 2*m)
			for k := range block {
				block[k] = base + k
			}
			sx = append(sx, setalg.New(block...))
		}

		return Pair{Name: fmt.Sprintf("%s(%d,%d)", MethodQPC, m, n), X: sx, Z: sz}, nil
	}
}
