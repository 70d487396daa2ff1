// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a constructor by mutating a builderConfig before
// the matrix is generated. Applying N options costs O(N).
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed seeds a fresh RNG; seed 0 maps to defaultRNGSeed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithWeightFn overrides the per-cell weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithRowIDs sets the row label scheme. Panics on nil.
func WithRowIDs(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithRowIDs(nil)")
	}

	return func(c *builderConfig) {
		c.rowIDFn = fn
	}
}

// WithColIDs sets the column label scheme. Panics on nil.
func WithColIDs(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithColIDs(nil)")
	}

	return func(c *builderConfig) {
		c.colIDFn = fn
	}
}
