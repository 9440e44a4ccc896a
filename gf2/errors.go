// SPDX-License-Identifier: MIT
// Package gf2: sentinel error set.
// Every algorithm returns these sentinels (optionally wrapped with an
// operation tag via gf2Errorf) and tests check them via errors.Is.
// Nothing in this package panics on user-triggered conditions.

package gf2

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned for a negative dimension or a ragged row set.
	ErrBadShape = errors.New("gf2: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("gf2: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes
	// (Add with different shapes, Mul with a.Cols != b.Rows, HStack rows).
	ErrDimensionMismatch = errors.New("gf2: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("gf2: matrix is not square")

	// ErrNilMatrix indicates that a nil *Matrix was used.
	ErrNilMatrix = errors.New("gf2: nil matrix")

	// ErrNotBinary is returned when an entry other than 0 or 1 is supplied.
	ErrNotBinary = errors.New("gf2: entry is not 0 or 1")
)

// Operation tags for error wrapping.
const (
	opAt        = "At"
	opSet       = "Set"
	opAdd       = "Add"
	opMul       = "Mul"
	opPow       = "Pow"
	opHStack    = "HStack"
	opFromRows  = "FromRows"
	opTriples   = "FromTriples"
	opNewMatrix = "NewMatrix"
)

// gf2Errorf wraps err with an operation tag, preserving it for errors.Is.
func gf2Errorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
