// Package builder generates deterministic assignment instances: square weight
// matrices plus row/column labels, for tests, benchmarks, examples and the
// `gen` CLI subcommand.
//
// The package offers the following key components:
//
//   - Constructors:
//     – Random:    every cell drawn from the configured WeightFn.
//     – Constant:  every cell equal (maximal ties; every permutation is optimal).
//     – Planted:   random base plus a dominant bonus on a hidden permutation,
//     so the optimum is known in advance (Instance.Planted).
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, weight function and label schemes.
//   - Weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant DefaultWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max).
//     – IntegerWeightFn:   uniform integers in [lo,hi].
//     – NormalWeightFn:    Gaussian ∼N(mean,stddev), rounded.
//   - Label schemes (IDFn implementations):
//     – DefaultIDFn, ExcelColumnIDFn, PrefixIDFn.
//
// Guarantees:
//
//   - Same options and seed ⇒ identical instance on every platform.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors themselves return sentinel errors (ErrTooSmall).
//   - Constructors cost O(n²) time and space.
package builder
