// Package hungarian - input validation shared by every solver entry point.
//
// Checks run in a fixed order and before any algorithmic work:
//  1. Options (recorded violations).
//  2. Shape: nil → empty → square.
//  3. Size limit (Options.MaxSize).
//  4. Values: finiteness (float64) or overflow headroom (int64).
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go,
//     wrapped with the offending coordinates where that helps.
package hungarian

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hungarian/matrix"
)

// validateRows checks that w is a non-empty n×n slice of rows and returns n.
//
// Complexity: O(n).
func validateRows[T any](w [][]T) (int, error) {
	if w == nil {
		return 0, ErrNilMatrix
	}
	n := len(w)
	if n == 0 {
		return 0, ErrEmpty
	}
	for i := range w {
		if len(w[i]) != n {
			return 0, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(w[i]), n, ErrNonSquare)
		}
	}

	return n, nil
}

// validateMatrix maps matrix package shape sentinels onto this package's
// sentinels; both remain visible to errors.Is.
//
// Complexity: O(1).
func validateMatrix(m matrix.Matrix) (int, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNilMatrix, err)
	}
	if err := matrix.ValidateNonEmpty(m); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEmpty, err)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNonSquare, err)
	}

	return m.Rows(), nil
}

// validateSize enforces Options.MaxSize (0 = unlimited).
func validateSize(n int, o *Options) error {
	if o.MaxSize > 0 && n > o.MaxSize {
		return fmt.Errorf("n=%d, limit %d: %w", n, o.MaxSize, ErrTooLarge)
	}

	return nil
}

// finiteMaxAbs rejects NaN/±Inf (first offender in row-major order) and
// returns max|W| for the tolerance scale.
//
// Complexity: O(n²).
func finiteMaxAbs(w [][]float64) (float64, error) {
	var best float64
	for i, row := range w {
		for j, x := range row {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return 0, fmt.Errorf("W[%d][%d]=%v: %w", i, j, x, ErrNonFinite)
			}
			best = math.Max(best, math.Abs(x))
		}
	}

	return best, nil
}

// int64Headroom rejects weights whose magnitude could overflow the duals.
// Potentials stay within a small multiple of n·max|W|; requiring
// max|W| <= MaxInt64/(4(n+1)) keeps every intermediate sum representable.
//
// Complexity: O(n²).
func int64Headroom(w [][]int64) error {
	limit := int64(math.MaxInt64) / (4 * int64(len(w)+1))
	for i, row := range w {
		for j, x := range row {
			if x > limit || x < -limit {
				return fmt.Errorf("W[%d][%d]=%d exceeds ±%d: %w", i, j, x, limit, ErrOverflow)
			}
		}
	}

	return nil
}

// readMatrix copies m into fresh rows, translating read failures.
func readMatrix(m matrix.Matrix, n int) ([][]float64, error) {
	rows, err := matrix.ToRows(m)
	if err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return nil, fmt.Errorf("%w: %w", ErrNonFinite, err)
		}

		return nil, err
	}
	if len(rows) != n {
		return nil, fmt.Errorf("read %d rows, want %d: %w", len(rows), n, ErrNonSquare)
	}

	return rows, nil
}

// copyRows returns a deep copy so the caller's slices are never aliased.
func copyRows[T any](w [][]T) [][]T {
	out := make([][]T, len(w))
	for i := range w {
		out[i] = make([]T, len(w[i]))
		copy(out[i], w[i])
	}

	return out
}
