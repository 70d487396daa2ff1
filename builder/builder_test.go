// Package builder_test covers weight functions, label schemes and the
// instance constructors of the builder package.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/hungarian/builder"
	"github.com/katalvlaran/hungarian/hungarian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_NaN", func() builder.WeightFn { return builder.ConstantWeightFn(math.NaN()) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"UniformWeightFn_infinite", func() builder.WeightFn { return builder.UniformWeightFn(0, math.Inf(1)) }},
		{"IntegerWeightFn_hiLessThanLo", func() builder.WeightFn { return builder.IntegerWeightFn(3, 2) }},
		{"NormalWeightFn_stddevNegative", func() builder.WeightFn { return builder.NormalWeightFn(0, -0.1) }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() }, tc.name)
		})
	}
}

// TestWeightFnBehavior covers nil-RNG fallbacks and ranges.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, builder.DefaultWeight, builder.DefaultWeightFn(rng))
	assert.Equal(t, -2.5, builder.ConstantWeightFn(-2.5)(rng))

	u := builder.UniformWeightFn(-10, 10)
	assert.Equal(t, -10.0, u(nil))
	for i := 0; i < 200; i++ {
		v := u(rng)
		assert.GreaterOrEqual(t, v, -10.0)
		assert.Less(t, v, 10.0)
	}

	in := builder.IntegerWeightFn(-3, 3)
	assert.Equal(t, -3.0, in(nil))
	for i := 0; i < 200; i++ {
		v := in(rng)
		assert.Equal(t, math.Trunc(v), v)
		assert.GreaterOrEqual(t, v, -3.0)
		assert.LessOrEqual(t, v, 3.0)
	}

	norm := builder.NormalWeightFn(10.4, 0)
	assert.Equal(t, 10.0, norm(nil))
	assert.Equal(t, 10.0, norm(rng))
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "7", builder.DefaultIDFn(7))
	assert.Equal(t, "A", builder.ExcelColumnIDFn(0))
	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "BA", builder.ExcelColumnIDFn(52))
	assert.Equal(t, "job3", builder.PrefixIDFn("job")(3))
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithRowIDs(nil) })
	assert.Panics(t, func() { builder.WithColIDs(nil) })
}

func TestTooSmall(t *testing.T) {
	_, err := builder.Random(0)
	require.ErrorIs(t, err, builder.ErrTooSmall)
	_, err = builder.Constant(-1, 1)
	require.ErrorIs(t, err, builder.ErrTooSmall)
	_, err = builder.Planted(0)
	require.ErrorIs(t, err, builder.ErrTooSmall)
}

func TestNonFiniteWeight(t *testing.T) {
	_, err := builder.Random(2, builder.WithWeightFn(func(*rand.Rand) float64 { return math.Inf(1) }))
	require.ErrorIs(t, err, builder.ErrNonFiniteWeight)

	_, err = builder.Constant(2, math.NaN())
	require.ErrorIs(t, err, builder.ErrNonFiniteWeight)
}

// TestRandomDeterministic: same seed ⇒ same matrix; different seed ⇒ different.
func TestRandomDeterministic(t *testing.T) {
	a, err := builder.Random(5, builder.WithSeed(9))
	require.NoError(t, err)
	b, err := builder.Random(5, builder.WithSeed(9))
	require.NoError(t, err)
	c, err := builder.Random(5, builder.WithSeed(10))
	require.NoError(t, err)

	assert.Equal(t, a.Rows(), b.Rows())
	assert.NotEqual(t, a.Rows(), c.Rows())
	assert.Equal(t, []string{"r0", "r1", "r2", "r3", "r4"}, a.RowIDs)
	assert.Equal(t, []string{"c0", "c1", "c2", "c3", "c4"}, a.ColIDs)
	assert.Nil(t, a.Planted)
	assert.Equal(t, 5, a.N())
}

func TestLabelsOptions(t *testing.T) {
	in, err := builder.Random(3, builder.WithRowIDs(builder.PrefixIDFn("worker")), builder.WithColIDs(builder.ExcelColumnIDFn))
	require.NoError(t, err)
	assert.Equal(t, []string{"worker0", "worker1", "worker2"}, in.RowIDs)
	assert.Equal(t, []string{"A", "B", "C"}, in.ColIDs)
}

func TestConstantEveryPermutationOptimal(t *testing.T) {
	in, err := builder.Constant(4, 3)
	require.NoError(t, err)

	res, err := hungarian.Solve(in.W)
	require.NoError(t, err)
	assert.Equal(t, 12.0, res.Total)
}

// TestPlantedIsRecovered: the solver returns exactly the planted permutation.
func TestPlantedIsRecovered(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		in, err := builder.Planted(8, builder.WithSeed(seed), builder.WithIntegerWeight(-20, 20))
		require.NoError(t, err)
		require.Len(t, in.Planted, 8)

		res, err := hungarian.Solve(in.W)
		require.NoError(t, err)
		assert.Equal(t, in.Planted, res.Match, "seed %d", seed)
	}
}
