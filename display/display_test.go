package display_test

import (
	"testing"

	"github.com/katalvlaran/hungarian/display"
	"github.com/katalvlaran/hungarian/hungarian"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridTwoByTwo(t *testing.T) {
	res, err := hungarian.SolveFloat64([][]float64{{3, 1}, {2, 4}})
	require.NoError(t, err)

	want := "Matching:\n" +
		"[3,  ]\n" +
		"[ , 4]\n" +
		"\n" +
		"Row Potentials: [3 4]\n" +
		"Column Potentials: [0 0]"
	assert.Equal(t, want, display.Grid(res))
}

// TestGridRightJustifies pads narrower weights to the widest one.
func TestGridRightJustifies(t *testing.T) {
	res, err := hungarian.SolveInt64([][]int64{{1, 5}, {60, 2}})
	require.NoError(t, err)

	want := "Matching:\n" +
		"[  ,  5]\n" +
		"[60,   ]\n" +
		"\n" +
		"Row Potentials: [5 60]\n" +
		"Column Potentials: [0 0]"
	assert.Equal(t, want, display.Grid(res))
}

func TestGridDecimal(t *testing.T) {
	res, err := hungarian.SolveDecimal([][]decimal.Decimal{{decimal.RequireFromString("1.25")}})
	require.NoError(t, err)

	assert.Equal(t, "Matching:\n[1.25]\n\nRow Potentials: [1.25]\nColumn Potentials: [0]", display.Grid(res))
}

func TestNilResult(t *testing.T) {
	var r *hungarian.Result[float64]
	assert.Empty(t, display.Grid(r))
	assert.Empty(t, display.Table(r, nil, nil))
	assert.Empty(t, display.Summary(r))
}

func TestTableContents(t *testing.T) {
	res, err := hungarian.SolveFloat64([][]float64{{1, 5}, {6, 2}})
	require.NoError(t, err)

	out := display.Table(res, []string{"alice", "bob"}, []string{"day", "night"})
	for _, s := range []string{"alice", "bob", "day", "night", "total 11", "5", "6", "u", "v"} {
		assert.Contains(t, out, s)
	}

	fallback := display.Table(res, []string{"only-one"}, nil)
	assert.NotContains(t, fallback, "only-one")
	assert.Contains(t, fallback, "total 11")
}

func TestSummary(t *testing.T) {
	res, err := hungarian.SolveFloat64([][]float64{{5}})
	require.NoError(t, err)
	assert.Equal(t, "n=1 total=5 phases=1 updates=0 growths=0", display.Summary(res))
}
