// Package hungarian - public entry points.
//
//   - Solve: accept any matrix.Matrix, validate, copy, solve in float64.
//   - SolveFloat64 / SolveInt64 / SolveDecimal: the same on plain row slices,
//     the last two with exact tightness.
//   - SolveLabeled: SolveFloat64 plus a row-label → column-label mapping.
//
// Every entry point validates options and shape before any work, owns a
// private copy of the weights, and never returns a partial result.
package hungarian

import (
	"fmt"
	"time"

	"github.com/katalvlaran/hungarian/matrix"
	"github.com/shopspring/decimal"
)

// Solve finds a maximum-weight perfect matching of the square matrix w.
//
// Errors: ErrOptionViolation, ErrNilMatrix / ErrEmpty / ErrNonSquare
// (all ErrShape), ErrTooLarge, ErrNonFinite, ErrInvariant.
//
// Complexity: O(n⁴) worst case for this scan-based variant, O(n²) memory.
func Solve(w matrix.Matrix, opts ...Option) (*Result[float64], error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	n, err := validateMatrix(w)
	if err != nil {
		return nil, err
	}
	if err = validateSize(n, &o); err != nil {
		return nil, err
	}
	rows, err := readMatrix(w, n)
	if err != nil {
		return nil, err
	}

	return solveFloat(rows, &o)
}

// SolveFloat64 is Solve for a plain [][]float64 (rows must all have length n).
// The input is copied; the caller may reuse it afterwards.
func SolveFloat64(w [][]float64, opts ...Option) (*Result[float64], error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	n, err := validateRows(w)
	if err != nil {
		return nil, err
	}
	if err = validateSize(n, &o); err != nil {
		return nil, err
	}

	return solveFloat(copyRows(w), &o)
}

// SolveInt64 solves with exact integer arithmetic. Weights must satisfy
// |W[i][j]| <= MaxInt64/(4(n+1)), otherwise ErrOverflow.
// Options.Epsilon is ignored.
func SolveInt64(w [][]int64, opts ...Option) (*Result[int64], error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	n, err := validateRows(w)
	if err != nil {
		return nil, err
	}
	if err = validateSize(n, &o); err != nil {
		return nil, err
	}
	if err = int64Headroom(w); err != nil {
		return nil, err
	}

	return run(copyRows(w), arith[int64](int64Arith{}), &o)
}

// SolveDecimal solves with exact decimal arithmetic (shopspring/decimal).
// Options.Epsilon is ignored.
func SolveDecimal(w [][]decimal.Decimal, opts ...Option) (*Result[decimal.Decimal], error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	n, err := validateRows(w)
	if err != nil {
		return nil, err
	}
	if err = validateSize(n, &o); err != nil {
		return nil, err
	}

	return run(copyRows(w), arith[decimal.Decimal](decimalArith{}), &o)
}

// SolveLabeled solves w and maps each row label to its assigned column label.
// rows and cols must have length n, with unique non-empty entries (ErrLabels).
func SolveLabeled(rows, cols []string, w [][]float64, opts ...Option) (map[string]string, *Result[float64], error) {
	n, err := validateRows(w)
	if err != nil {
		return nil, nil, err
	}
	if err = validateLabels("rows", rows, n); err != nil {
		return nil, nil, err
	}
	if err = validateLabels("cols", cols, n); err != nil {
		return nil, nil, err
	}
	res, err := SolveFloat64(w, opts...)
	if err != nil {
		return nil, nil, err
	}
	out := make(map[string]string, n)
	for _, p := range res.Pairs {
		out[rows[p.Row]] = cols[p.Col]
	}

	return out, res, nil
}

// validateLabels enforces len(ids)==n, non-empty strings, and uniqueness.
//
// Complexity: O(n) time and O(n) extra space.
func validateLabels(kind string, ids []string, n int) error {
	if len(ids) != n {
		return fmt.Errorf("%s: %d labels for order %d: %w", kind, len(ids), n, ErrLabels)
	}
	seen := make(map[string]struct{}, n)
	for i, id := range ids {
		if id == "" {
			return fmt.Errorf("%s[%d] is empty: %w", kind, i, ErrLabels)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%s[%d]=%q is a duplicate: %w", kind, i, id, ErrLabels)
		}
		seen[id] = struct{}{}
	}

	return nil
}

func solveFloat(w [][]float64, o *Options) (*Result[float64], error) {
	maxAbs, err := finiteMaxAbs(w)
	if err != nil {
		return nil, err
	}

	return run(w, arith[float64](newFloatArith(o.Epsilon, maxAbs)), o)
}

// run drives the engine on an owned, validated copy.
func run[T any](w [][]T, ar arith[T], o *Options) (*Result[T], error) {
	start := time.Now()
	e := newEngine(w, ar, o)
	if err := e.run(); err != nil {
		return nil, err
	}
	res := e.result()
	if e.debug {
		o.Logger.Debug("hungarian: solved", "n", e.n, "total", res.Total,
			"phases", res.Stats.Phases, "potential_updates", res.Stats.PotentialUpdates)
	}
	o.OnSolved(e.n, time.Since(start))

	return res, nil
}
