// SPDX-License-Identifier: MIT
//
// impl_lattice.go - geometric codes built on lattice.Lattice.
//
// Coordinates (doubled lattice, qubits labelled by ascending (x,y)):
//   • Surface(L1,L2): qubits at (even,even) with x ≤ 2L1-2, y ≤ 2L2-2 and at
//     (odd,odd) inside that box; X checks at (even,odd), Z checks at
//     (odd,even); plus neighbourhood. One logical qubit.
//   • RotatedSurface(L1,L2): qubits at (2i,2j), i<L1, j<L2; a check sits at
//     the centre (2i+1,2j+1) of every plaquette i∈[-1,L1-1], j∈[-1,L2-1]
//     and is X when i+j is even. Interior plaquettes are always kept; the
//     weight-2 plaquettes beyond the top/bottom rows are kept only if X,
//     those beyond the left/right columns only if Z; corners are dropped.
//     Diagonal neighbourhood. One logical qubit.
//   • Toric(Lx,Ly): a 2Lx×2Ly torus; X checks at (even,even), Z checks at
//     (odd,odd), qubits at mixed parity; periodic plus neighbourhood. Two
//     logical qubits.

package codes

import (
	"fmt"

	"github.com/katalvlaran/csslab/lattice"
)

func fromLattice(method string, qubits, xs, zs []lattice.Coord, opts lattice.Options) (Pair, error) {
	l, err := lattice.New(qubits, xs, zs, opts)
	if err != nil {
		return Pair{}, fmt.Errorf("%s: %w", method, err)
	}
	sx, sz := l.Stabilizers()

	return Pair{X: sx, Z: sz}, nil
}

// Surface returns the planar surface code with distances L1 and L2.
// Requires L1, L2 ≥ 1 and L1·L2 ≥ 2.
func Surface(L1, L2 int) Provider {
	return func(providerConfig) (Pair, error) {
		if err := validateMin(MethodSurface, "L1", L1, minSurfaceSide); err != nil {
			return Pair{}, err
		}
		if err := validateMin(MethodSurface, "L2", L2, minSurfaceSide); err != nil {
			return Pair{}, err
		}
		if err := validateArea(MethodSurface, "L1", "L2", L1, L2); err != nil {
			return Pair{}, err
		}

		var qubits, xs, zs []lattice.Coord
		maxX, maxY := 2*L1-2, 2*L2-2
		for x := 0; x <= maxX; x++ {
			for y := 0; y <= maxY; y++ {
				c := lattice.Coord{X: x, Y: y}
				switch {
				case x%2 == 0 && y%2 == 0, x%2 == 1 && y%2 == 1:
					qubits = append(qubits, c)
				case x%2 == 0:
					xs = append(xs, c)
				default:
					zs = append(zs, c)
				}
			}
		}

		pair, err := fromLattice(MethodSurface, qubits, xs, zs, lattice.DefaultOptions())
		pair.Name = fmt.Sprintf("%s(%d,%d)", MethodSurface, L1, L2)

		return pair, err
	}
}

// RotatedSurface returns the rotated surface code on an L1×L2 grid of
// qubits. Requires L1, L2 ≥ 2.
func RotatedSurface(L1, L2 int) Provider {
	return func(providerConfig) (Pair, error) {
		if err := validateMin(MethodRotatedSurface, "L1", L1, minRotatedSide); err != nil {
			return Pair{}, err
		}
		if err := validateMin(MethodRotatedSurface, "L2", L2, minRotatedSide); err != nil {
			return Pair{}, err
		}

		qubits := make([]lattice.Coord, 0, L1*L2)
		for i := 0; i < L1; i++ {
			for j := 0; j < L2; j++ {
				qubits = append(qubits, lattice.Coord{X: 2 * i, Y: 2 * j})
			}
		}

		var xs, zs []lattice.Coord
		for i := -1; i < L1; i++ {
			for j := -1; j < L2; j++ {
				rowEdge := i == -1 || i == L1-1
				colEdge := j == -1 || j == L2-1
				isX := (i+j)%2 == 0
				switch {
				case rowEdge && colEdge:
					continue
				case rowEdge && !isX, colEdge && isX:
					continue
				}
				c := lattice.Coord{X: 2*i + 1, Y: 2*j + 1}
				if isX {
					xs = append(xs, c)
				} else {
					zs = append(zs, c)
				}
			}
		}

		pair, err := fromLattice(MethodRotatedSurface, qubits, xs, zs, lattice.Options{Neighborhood: lattice.Diagonal})
		pair.Name = fmt.Sprintf("%s(%d,%d)", MethodRotatedSurface, L1, L2)

		return pair, err
	}
}

// Toric returns the toric code on an Lx×Ly torus. Requires Lx, Ly ≥ 2.
func Toric(Lx, Ly int) Provider {
	return func(providerConfig) (Pair, error) {
		if err := validateMin(MethodToric, "Lx", Lx, minToricSide); err != nil {
			return Pair{}, err
		}
		if err := validateMin(MethodToric, "Ly", Ly, minToricSide); err != nil {
			return Pair{}, err
		}

		var qubits, xs, zs []lattice.Coord
		for x := 0; x < 2*Lx; x++ {
			for y := 0; y < 2*Ly; y++ {
				c := lattice.Coord{X: x, Y: y}
				switch {
				case x%2 == 1 && y%2 == 1:
					zs = append(zs, c)
				case x%2 == 0 && y%2 == 0:
					xs = append(xs, c)
				default:
					qubits = append(qubits, c)
				}
			}
		}

		opts := lattice.Options{Neighborhood: lattice.Plus, PeriodX: 2 * Lx, PeriodY: 2 * Ly}
		pair, err := fromLattice(MethodToric, qubits, xs, zs, opts)
		pair.Name = fmt.Sprintf("%s(%d,%d)", MethodToric, Lx, Ly)

		return pair, err
	}
}
