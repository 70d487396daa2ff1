// Package builder - instance constructors.
//
// Design principles:
//   - Cells are generated in row-major order, so the RNG stream maps to
//     cells identically on every run.
//   - A WeightFn that produces NaN/Inf is reported (ErrNonFiniteWeight),
//     never stored.
package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/hungarian/matrix"
)

// Instance is a generated assignment problem.
type Instance struct {
	// W is the n×n weight matrix.
	W *matrix.Dense
	// RowIDs and ColIDs label rows and columns (for SolveLabeled and output).
	RowIDs []string
	ColIDs []string
	// Planted is the known optimal assignment row → column, set by Planted
	// only; nil otherwise.
	Planted []int
}

// N returns the order of the instance.
func (in *Instance) N() int { return in.W.Rows() }

// Rows copies W out as [][]float64.
func (in *Instance) Rows() [][]float64 {
	rows, _ := matrix.ToRows(in.W) // *Dense reads cannot fail

	return rows
}

// Random builds an n×n instance with every cell drawn from the WeightFn.
//
// Errors: ErrTooSmall, ErrNonFiniteWeight.
// Complexity: O(n²).
func Random(n int, opts ...BuilderOption) (*Instance, error) {
	if err := validateOrder(MethodRandom, n); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)

	return fill(MethodRandom, n, cfg, cfg.weightFn)
}

// Constant builds an n×n instance whose cells all equal value: every
// permutation is optimal with total n·value.
//
// Errors: ErrTooSmall, ErrNonFiniteWeight.
func Constant(n int, value float64, opts ...BuilderOption) (*Instance, error) {
	if err := validateOrder(MethodConstant, n); err != nil {
		return nil, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, builderErrorf(MethodConstant, ErrNonFiniteWeight, "value %v", value)
	}
	cfg := newBuilderConfig(opts...)

	return fill(MethodConstant, n, cfg, func(_ *rand.Rand) float64 { return value })
}

// Planted builds a Random instance, then adds a bonus of n·span+1 (span =
// max−min of the base cells) to the cells of a random permutation p. Any
// assignment that disagrees with p on at least one row loses at least the
// bonus and gains at most n·span, so p is the unique optimum; it is stored
// in Instance.Planted.
//
// Errors: ErrTooSmall, ErrNonFiniteWeight.
func Planted(n int, opts ...BuilderOption) (*Instance, error) {
	if err := validateOrder(MethodPlanted, n); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	in, err := fill(MethodPlanted, n, cfg, cfg.weightFn)
	if err != nil {
		return nil, err
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	_ = in.W.Do(func(_, _ int, v float64) error {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
		return nil
	})
	bonus := float64(n)*(hi-lo) + 1

	in.Planted = permRange(n, cfg.rng)
	for i, j := range in.Planted {
		v, _ := in.W.At(i, j)
		if err = in.W.Set(i, j, v+bonus); err != nil {
			return nil, builderErrorf(MethodPlanted, ErrNonFiniteWeight, "cell (%d,%d)", i, j)
		}
	}

	return in, nil
}

// fill allocates the matrix and labels and draws every cell from wfn.
func fill(method string, n int, cfg builderConfig, wfn WeightFn) (*Instance, error) {
	w, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, builderErrorf(method, ErrTooSmall, "order %d", n)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = wfn(cfg.rng)
			if err = w.Set(i, j, v); err != nil {
				return nil, builderErrorf(method, ErrNonFiniteWeight, "cell (%d,%d)=%v", i, j, v)
			}
		}
	}

	return &Instance{
		W:      w,
		RowIDs: labels(cfg.rowIDFn, n),
		ColIDs: labels(cfg.colIDFn, n),
	}, nil
}
