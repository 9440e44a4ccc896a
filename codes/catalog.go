package codes

import (
	"sort"
	"strings"
)

// catalogEntry binds a provider name to its integer arity and factory.
type catalogEntry struct {
	arity int
	make  func(p []int) Provider
}

var catalog = map[string]catalogEntry{
	strings.ToLower(MethodSteane): {0, func([]int) Provider { return Steane() }},
	strings.ToLower(MethodBitFlipRepetition): {1, func(p []int) Provider {
		return BitFlipRepetition(p[0])
	}},
	strings.ToLower(MethodPhaseFlipRepetition): {1, func(p []int) Provider {
		return PhaseFlipRepetition(p[0])
	}},
	strings.ToLower(MethodQPC):            {2, func(p []int) Provider { return QPC(p[0], p[1]) }},
	strings.ToLower(MethodSurface):        {2, func(p []int) Provider { return Surface(p[0], p[1]) }},
	strings.ToLower(MethodRotatedSurface): {2, func(p []int) Provider { return RotatedSurface(p[0], p[1]) }},
	strings.ToLower(MethodToric):          {2, func(p []int) Provider { return Toric(p[0], p[1]) }},
	strings.ToLower(MethodBivariateBicycle): {8, func(p []int) Provider {
		return BivariateBicycle(p[0], p[1], [3]int{p[2], p[3], p[4]}, [3]int{p[5], p[6], p[7]})
	}},
}

// Names lists the providers known to Lookup, sorted.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for name := range catalog {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Lookup returns the provider registered under name (case-insensitive)
// applied to params. BivariateBicycle takes eight parameters:
// l, m, a0, a1, a2, b0, b1, b2.
func Lookup(name string, params ...int) (Provider, error) {
	e, ok := catalog[strings.ToLower(name)]
	if !ok {
		return nil, codesErrorf("Lookup", ErrUnknownCode, "%q", name)
	}
	if len(params) != e.arity {
		return nil, codesErrorf("Lookup", ErrUnknownCode, "%s takes %d parameters, got %d", name, e.arity, len(params))
	}

	return e.make(params), nil
}
