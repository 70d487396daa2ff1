package hungarian

import (
	"fmt"

	"github.com/katalvlaran/hungarian/matrix"
	"github.com/shopspring/decimal"
)

// Verify checks that r is an optimality certificate for w:
//
//  1. shapes agree with w (ErrShape);
//  2. Match is a bijection and agrees with Pairs (ErrNotPerfect);
//  3. u[i]+v[j] >= W[i][j] for every cell (ErrInfeasible);
//  4. every matched edge is tight, Weights[i] == W[i][Match[i]] and
//     Total == sum(Weights) (ErrNotTight).
//
// Together these imply Total is the maximum. Comparisons use the tolerance
// Epsilon·max|W|·n; WithEpsilon(0) makes them exact.
func Verify(w matrix.Matrix, r *Result[float64], opts ...Option) error {
	o, err := gatherOptions(opts...)
	if err != nil {
		return err
	}
	n, err := validateMatrix(w)
	if err != nil {
		return err
	}
	rows, err := readMatrix(w, n)
	if err != nil {
		return err
	}
	maxAbs, err := finiteMaxAbs(rows)
	if err != nil {
		return err
	}

	return verify(rows, r, arith[float64](floatArith{tol: o.Epsilon * maxAbs * float64(n)}))
}

// VerifyInt64 is Verify with exact int64 comparisons.
func VerifyInt64(w [][]int64, r *Result[int64]) error {
	if _, err := validateRows(w); err != nil {
		return err
	}

	return verify(w, r, arith[int64](int64Arith{}))
}

// VerifyDecimal is Verify with exact decimal comparisons.
func VerifyDecimal(w [][]decimal.Decimal, r *Result[decimal.Decimal]) error {
	if _, err := validateRows(w); err != nil {
		return err
	}

	return verify(w, r, arith[decimal.Decimal](decimalArith{}))
}

func verify[T any](w [][]T, r *Result[T], ar arith[T]) error {
	n := len(w)
	if r == nil {
		return fmt.Errorf("nil result: %w", ErrNotPerfect)
	}
	if len(r.Match) != n || len(r.Pairs) != n || len(r.Weights) != n ||
		len(r.RowPotentials) != n || len(r.ColPotentials) != n {
		return fmt.Errorf("result sized for %d, matrix order %d: %w", len(r.Match), n, ErrShape)
	}

	// Stage 1: bijection.
	seen := make([]bool, n)
	for i, j := range r.Match {
		if j < 0 || j >= n {
			return fmt.Errorf("row %d matched to column %d: %w", i, j, ErrNotPerfect)
		}
		if seen[j] {
			return fmt.Errorf("column %d matched twice: %w", j, ErrNotPerfect)
		}
		seen[j] = true
		if r.Pairs[i] != (Pair{Row: i, Col: j}) {
			return fmt.Errorf("pair %d is %v, match says (%d,%d): %w", i, r.Pairs[i], i, j, ErrNotPerfect)
		}
	}

	// Stage 2: dual feasibility.
	var (
		u, v = r.RowPotentials, r.ColPotentials
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if ar.sign(ar.sub(ar.add(u[i], v[j]), w[i][j])) < 0 {
				return fmt.Errorf("u[%d]+v[%d] < W[%d][%d]: %w", i, j, i, j, ErrInfeasible)
			}
		}
	}

	// Stage 3: complementary slackness and reported values.
	total := ar.zero()
	for i, j = range r.Match {
		if ar.sign(ar.sub(ar.add(u[i], v[j]), w[i][j])) != 0 {
			return fmt.Errorf("edge (%d,%d) has positive slack: %w", i, j, ErrNotTight)
		}
		if ar.sign(ar.sub(r.Weights[i], w[i][j])) != 0 {
			return fmt.Errorf("weight of row %d differs from W[%d][%d]: %w", i, i, j, ErrNotTight)
		}
		total = ar.add(total, w[i][j])
	}
	if ar.sign(ar.sub(r.Total, total)) != 0 {
		return fmt.Errorf("total differs from the sum of matched weights: %w", ErrNotTight)
	}

	return nil
}
