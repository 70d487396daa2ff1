// Package builder provides the cell-weight distributions used by the
// instance constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultWeight is the value of every cell when no WeightFn is configured.
const DefaultWeight float64 = 1

// WeightFn produces one cell weight from an optional *rand.Rand source.
// It must be deterministic for a given RNG state; panics in constructors
// indicate programmer error in configuration.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultWeight.
// Complexity: O(1). Never panics.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value is NaN or ±Inf.
func ConstantWeightFn(value float64) WeightFn {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [min, max). Negative bounds are fine:
// assignment weights are revenues and may be losses.
// Panics if a bound is not finite or max < min.
// If rng is nil, yields min to keep a deterministic fallback.
func UniformWeightFn(min, max float64) WeightFn {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require finite min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntegerWeightFn samples integers uniformly in [lo, hi] (inclusive), returned
// as float64 so the same instance can feed the float and int64 solvers.
// Panics if hi < lo. If rng is nil, yields lo.
func IntegerWeightFn(lo, hi int64) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("IntegerWeightFn: require lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return float64(lo)
		}

		return float64(lo + rng.Int63n(hi-lo+1))
	}
}

// NormalWeightFn samples N(mean, stddev) rounded to the nearest integer.
// Panics if stddev < 0. If rng is nil, yields round(mean).
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 || math.IsNaN(stddev) {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %f", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return math.Round(mean)
		}

		return math.Round(rng.NormFloat64()*stddev + mean)
	}
}

// WithConstantWeight sets a fixed cell weight via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithIntegerWeight sets integer weights in [lo,hi] via IntegerWeightFn.
func WithIntegerWeight(lo, hi int64) BuilderOption {
	return WithWeightFn(IntegerWeightFn(lo, hi))
}

// WithNormalWeight sets weights ∼ N(mean,stddev) via NormalWeightFn.
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}
