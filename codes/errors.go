// SPDX-License-Identifier: MIT
//
// errors.go - sentinel errors for the codes package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Providers attach the method name and offending parameters with %w.
//   • Providers never panic; validation panics are confined to option
//     constructors (WithOffset, WithCodeOptions).

package codes

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates a size parameter (block length, lattice side,
// cyclic order) below the provider's minimum.
var ErrTooSmall = errors.New("codes: parameter too small")

// ErrBadExponent indicates a negative monomial exponent for a bivariate
// bicycle code.
var ErrBadExponent = errors.New("codes: invalid exponent")

// ErrRaggedMatrix indicates a check matrix with rows of differing length
// or entries other than 0 and 1.
var ErrRaggedMatrix = errors.New("codes: malformed check matrix")

// ErrNilProvider indicates Generate or Build was called with a nil Provider.
var ErrNilProvider = errors.New("codes: nil provider")

// ErrUnknownCode indicates Lookup was asked for a name it does not know.
var ErrUnknownCode = errors.New("codes: unknown code")

// codesErrorf prefixes a sentinel with method context, keeping it for errors.Is.
func codesErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
