// SPDX-License-Identifier: MIT
//
// api.go - public entry points for the codes package.
//
// Design contract:
//   • A Provider is a pure, deterministic function of its captured integer
//     parameters; it returns a named Pair of generator families.
//   • Generate resolves options, runs the provider, applies the offset.
//   • Build additionally validates the pair as a csscode.Code.
//   • Factories are declared here and implemented in impl_*.go.

package codes

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/csslab/csscode"
	"github.com/katalvlaran/csslab/setalg"
)

// Pair is the output of a Provider: an X family, a Z family and the name of
// the construction (e.g. "Surface(3,3)").
type Pair struct {
	Name string
	X    setalg.Family
	Z    setalg.Family
}

// Provider produces a generator pair from the resolved configuration.
// Providers validate their parameters and return sentinel errors; they
// never panic.
type Provider func(cfg providerConfig) (Pair, error)

// Generate runs p with the given options and returns its families, shifted
// by WithOffset when set.
func Generate(p Provider, opts ...Option) (Pair, error) {
	if p == nil {
		return Pair{}, ErrNilProvider
	}
	cfg := newProviderConfig(opts...)

	pair, err := p(cfg)
	if err != nil {
		return Pair{}, errors.Wrap(err, "codes: generate")
	}
	if cfg.offset > 0 {
		pair.X = pair.X.Shift(cfg.offset)
		pair.Z = pair.Z.Shift(cfg.offset)
	}

	return pair, nil
}

// Build generates the pair and validates it as a CSS code named after the
// construction. Options given through WithCodeOptions are applied after
// the name, so csscode.WithName there overrides it.
func Build(p Provider, opts ...Option) (*csscode.Code, error) {
	pair, err := Generate(p, opts...)
	if err != nil {
		return nil, err
	}
	cfg := newProviderConfig(opts...)

	name := pair.Name
	if name == "" {
		name = defaultCodeName
	}
	codeOpts := append([]csscode.Option{csscode.WithName(name)}, cfg.codeOpts...)
	code, err := csscode.New(pair.X, pair.Z, codeOpts...)
	if err != nil {
		return nil, errors.Wrapf(err, "codes: build %s", name)
	}

	return code, nil
}
