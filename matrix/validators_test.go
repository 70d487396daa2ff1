package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hungarian/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var typed *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typed), matrix.ErrNilMatrix)

	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateNotNil(m))
}

func TestValidateSquare(t *testing.T) {
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	err = matrix.ValidateSquare(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	assert.Contains(t, err.Error(), "2×3")
}

func TestValidateFiniteReportsFirstOffender(t *testing.T) {
	m, err := matrix.NewDense(2, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, math.Inf(1)))
	require.NoError(t, m.Set(1, 1, math.NaN()))

	err = matrix.ValidateFinite(m)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	assert.Contains(t, err.Error(), "(1,0)")
}

// TestValidateSquareFiniteOrder documents the error priority:
// nil -> empty -> non-square -> NaN/Inf.
func TestValidateSquareFiniteOrder(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateSquareFinite(nil), matrix.ErrNilMatrix)

	bad, err := matrix.NewDense(2, 3, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, bad.Set(0, 0, math.NaN()))
	require.ErrorIs(t, matrix.ValidateSquareFinite(bad), matrix.ErrNonSquare) // shape wins over NaN

	sq, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSquareFinite(sq))
}

func TestValidateSameShape(t *testing.T) {
	a, _ := matrix.NewDense(2, 2)
	b, _ := matrix.NewDense(2, 3)
	require.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateSameShape(a, a))
}
