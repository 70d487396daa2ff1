// SPDX-License-Identifier: MIT

// Package matrix: numeric policy for Dense construction.
//
// Design goals:
//   - Deterministic behavior: no global mutable state.
//   - Safe by construction: panic only on nonsensical option values
//     (programmer error), never on data.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the non-negative tolerance shared by numeric comparisons
	// (ApproxEqual, and the solver's tightness test built on top of this package).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation in Set and
	// in the row-slice constructors.
	DefaultValidateNaNInf = true
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the numeric policy of a Dense matrix and of ApproxEqual.
type Options struct {
	eps            float64
	validateNaNInf bool
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{eps: DefaultEpsilon, validateNaNInf: DefaultValidateNaNInf}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithEpsilon sets the comparison tolerance. Panics on NaN, Inf or eps<0.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithNoValidateNaNInf disables NaN/Inf rejection in Set and constructors.
// Solvers still validate their input independently.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}
