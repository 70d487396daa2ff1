package hungarian

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomRows(rng *rand.Rand, n int) [][]int64 {
	w := make([][]int64, n)
	for i := range w {
		w[i] = make([]int64, n)
		for j := range w[i] {
			w[i][j] = rng.Int63n(41) - 20
		}
	}

	return w
}

// checkPhaseBoundary asserts dual feasibility, tightness of matched edges,
// consistency of the two mate arrays and the matching size.
func checkPhaseBoundary(t *testing.T, e *engine[int64], matched int) {
	t.Helper()
	size := 0
	for x := 0; x < e.n; x++ {
		for y := 0; y < e.n; y++ {
			require.GreaterOrEqual(t, e.slack(x, y), int64(0), "phase %d: cell (%d,%d) infeasible", e.phase, x, y)
		}
		if y := e.rowMate[x]; y != none {
			size++
			require.Equal(t, x, e.colMate[y])
			require.Zero(t, e.slack(x, y), "phase %d: matched (%d,%d) not tight", e.phase, x, y)
		}
	}
	require.Equal(t, matched, size)
}

// TestEnginePhaseInvariants drives the engine one phase at a time.
func TestEnginePhaseInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(7)
		o := DefaultOptions()
		e := newEngine(randomRows(rng, n), arith[int64](int64Arith{}), &o)
		checkPhaseBoundary(t, e, 0)

		for e.phase = 1; e.phase <= e.n; e.phase++ {
			root := e.lowestUnmatchedRow()
			require.NotEqual(t, none, root)
			require.NoError(t, e.runPhase(root))
			checkPhaseBoundary(t, e, e.phase)
		}
		assert.Equal(t, none, e.lowestUnmatchedRow())
	}
}

func TestTreeResetAndAddCol(t *testing.T) {
	tr := newTree(4)
	tr.reset(2)
	assert.Equal(t, []int{2}, tr.rows)
	assert.Equal(t, []int{0, 1, 2, 3}, tr.free)
	assert.Equal(t, none, tr.rowParent[2])

	tr.addCol(1, 2)
	tr.addRow(0, 1)
	assert.Equal(t, []int{0, 2, 3}, tr.free)
	assert.Equal(t, []int{2, 0}, tr.rows)
	assert.Equal(t, 2, tr.colParent[1])
	assert.Equal(t, 1, tr.rowParent[0])
	assert.True(t, tr.colIn[1])

	tr.reset(3)
	assert.Equal(t, []int{3}, tr.rows)
	assert.Empty(t, tr.cols)
	assert.False(t, tr.rowIn[0])
	assert.False(t, tr.colIn[1])
	assert.Equal(t, []int{0, 1, 2, 3}, tr.free)
}

// TestUpdateWithoutFreeColumn exercises the guard that reports ErrInvariant.
func TestUpdateWithoutFreeColumn(t *testing.T) {
	o := DefaultOptions()
	e := newEngine([][]int64{{1}}, arith[int64](int64Arith{}), &o)
	e.t.reset(0)
	e.t.addCol(0, 0)

	_, _, err := e.updatePotentials()
	require.ErrorIs(t, err, ErrInvariant)
}

// TestUpdateMakesArgminTight: after one update the returned pair has zero
// slack and nothing went negative.
func TestUpdateMakesArgminTight(t *testing.T) {
	o := DefaultOptions()
	e := newEngine([][]int64{{5, 1}, {4, 2}}, arith[int64](int64Arith{}), &o)
	e.phase = 1
	e.t.reset(0)
	e.rowMate[1], e.colMate[0] = 0, 1
	e.t.addCol(0, 0)
	e.t.addRow(1, 0)

	x, y, err := e.updatePotentials()
	require.NoError(t, err)
	assert.Zero(t, e.slack(x, y))
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.GreaterOrEqual(t, e.slack(i, j), int64(0))
		}
	}
	assert.Equal(t, 1, e.stats.PotentialUpdates)
}

func TestFloatArithTolerance(t *testing.T) {
	ar := newFloatArith(1e-9, 1e6)
	assert.True(t, ar.tight(1e-4))
	assert.False(t, ar.tight(1e-2))
	assert.Equal(t, 0, ar.sign(-1e-4))
	assert.Equal(t, -1, ar.sign(-1))

	exact := newFloatArith(0, 1e6)
	assert.False(t, exact.tight(1e-300))

	tiny := newFloatArith(1e-9, 1e-10)
	assert.True(t, tiny.tight(1e-20))
	assert.False(t, tiny.tight(1e-12))
	assert.Equal(t, 1, tiny.sign(1e-12))

	zero := newFloatArith(1e-9, 0)
	assert.False(t, zero.tight(1e-300))
}
