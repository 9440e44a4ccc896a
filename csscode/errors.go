package csscode

import "errors"

// Sentinel errors returned by New. They are wrapped with github.com/pkg/errors
// to carry the offending detail, so match them with errors.Is.
var (
	// ErrInvalidCode reports an X and a Z generator with odd overlap.
	ErrInvalidCode = errors.New("csscode: generators do not commute")

	// ErrEmptyCode reports that neither family touches any qubit.
	ErrEmptyCode = errors.New("csscode: empty qubit universe")
)
