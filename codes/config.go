// SPDX-License-Identifier: MIT
//
// config.go - functional options and the resolved provider configuration.
//
// Contract:
//   • providerConfig is the single source of truth for provider knobs and
//     is passed by VALUE to providers.
//   • Option constructors validate and PANIC on meaningless inputs.
//   • Defaults: offset 0, no extra csscode options.

package codes

import (
	"fmt"

	"github.com/katalvlaran/csslab/csscode"
)

// providerConfig aggregates the knobs shared by all providers.
type providerConfig struct {
	// offset is added to every qubit label after generation.
	offset int
	// codeOpts are forwarded to csscode.New by Build.
	codeOpts []csscode.Option
}

// Option customizes Generate and Build.
type Option func(*providerConfig)

// newProviderConfig applies options in order; later options override earlier ones.
func newProviderConfig(opts ...Option) providerConfig {
	var cfg providerConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithOffset shifts every qubit label by k, producing a non-zero-based
// universe (e.g. to place two codes side by side). Panics on k < 0.
func WithOffset(k int) Option {
	if k < 0 {
		panic(fmt.Sprintf("codes: WithOffset(%d)", k))
	}
	return func(c *providerConfig) { c.offset = k }
}

// WithCodeOptions forwards options to csscode.New in Build.
// Panics on a nil option.
func WithCodeOptions(opts ...csscode.Option) Option {
	for i, o := range opts {
		if o == nil {
			panic(fmt.Sprintf("codes: WithCodeOptions: nil option at %d", i))
		}
	}
	return func(c *providerConfig) { c.codeOpts = append(c.codeOpts, opts...) }
}
