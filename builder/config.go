// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go: internal configuration, deterministic defaults and the RNG factory.
//
// Deterministic defaults (no surprises):
//   • rng      = rngFromSeed(0)   (seeded stream, never time-based)
//   • weightFn = UniformWeightFn(0, 100)
//   • rowIDFn  = PrefixIDFn("r")  ("r0","r1",...)
//   • colIDFn  = PrefixIDFn("c")  ("c0","c1",...)
//
// Concurrency:
//   • math/rand.Rand is NOT goroutine-safe; one config per constructor call.

package builder

import "math/rand"

// Deterministic defaults (named, no magic numbers).
const (
	defaultRNGSeed   int64 = 1   // used when callers pass seed==0
	defaultMinWeight       = 0.0 // default uniform lower bound
	defaultMaxWeight       = 100 // default uniform upper bound
	defaultRowPrefix       = "r" // row label prefix
	defaultColPrefix       = "c" // column label prefix
)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	rng      *rand.Rand
	weightFn WeightFn
	rowIDFn  IDFn
	colIDFn  IDFn
}

// newBuilderConfig applies opts in order over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      rngFromSeed(0),
		weightFn: UniformWeightFn(defaultMinWeight, defaultMaxWeight),
		rowIDFn:  PrefixIDFn(defaultRowPrefix),
		colIDFn:  PrefixIDFn(defaultColPrefix),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// permRange returns a permutation of 0..n-1 drawn from rng (Fisher–Yates).
// Complexity: O(n) time and space.
func permRange(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p
}
