// validators.go - parameter contract helpers for Provider factories.
// Each returns a sentinel wrapped with the method name via codesErrorf.

package codes

// validateMin ensures that got ≥ min, reporting the parameter name.
// Complexity: O(1).
func validateMin(method, param string, got, min int) error {
	if got < min {
		return codesErrorf(method, ErrTooSmall, "%s=%d < min=%d", param, got, min)
	}

	return nil
}

// validateExponents ensures every exponent is non-negative.
func validateExponents(method string, exps ...int) error {
	for i, e := range exps {
		if e < 0 {
			return codesErrorf(method, ErrBadExponent, "exponent[%d]=%d", i, e)
		}
	}

	return nil
}

// validateArea ensures a·b ≥ minGridArea once each side has passed
// validateMin, so the construction has at least one check.
func validateArea(method, pa, pb string, a, b int) error {
	if a*b < minGridArea {
		return codesErrorf(method, ErrTooSmall, "%s·%s=%d·%d has no checks", pa, pb, a, b)
	}

	return nil
}
