// Package codes provides deterministic providers of CSS generator pairs.
//
// What:
//
//   - Steane, BitFlipRepetition, PhaseFlipRepetition, QPC: small fixed and
//     one-dimensional codes.
//   - Surface, RotatedSurface, Toric: lattice codes built on package lattice.
//   - BivariateBicycle, FromCheckMatrices: codes given by GF(2) matrices,
//     built with package gf2.
//
// Every factory returns a Provider closure; nothing runs until Generate or
// Build is called:
//
//	pair, err := codes.Generate(codes.Toric(3, 3))
//	code, err := codes.Build(codes.Surface(3, 3), codes.WithOffset(100))
//
// Lookup resolves a provider by name for table-driven callers.
//
// Options:
//
//   - WithOffset(k): shift every qubit label by k (panics on k < 0).
//   - WithCodeOptions(...): forwarded to csscode.New by Build.
//
// Errors:
//
//   - ErrTooSmall:     a size parameter below the provider minimum, or a
//     1×1 Surface/QPC grid that would carry no check.
//   - ErrBadExponent:  negative bicycle exponent.
//   - ErrRaggedMatrix: malformed check matrix.
//   - ErrNilProvider:  nil Provider.
//   - ErrUnknownCode:  Lookup name or arity mismatch.
//   - csscode.ErrInvalidCode / ErrEmptyCode from Build.
package codes
