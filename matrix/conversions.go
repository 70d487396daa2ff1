// SPDX-License-Identifier: MIT

// Package matrix: conversions between Matrix values and plain slices.
package matrix

import "math"

// ToRows copies any Matrix into a fresh [][]float64 (row-major).
// Errors from At are returned as is; ErrNilMatrix if m is nil.
// Complexity: O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	var (
		r, c = m.Rows(), m.Cols()
		out  = make([][]float64, r)
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out[i][j] = v
		}
	}

	return out, nil
}

// Negated returns a new Dense holding -m[i][j].
// Maximizing over Negated(m) minimizes over m.
func Negated(m Matrix) (*Dense, error) {
	rows, err := ToRows(m)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		for j := range row {
			row[j] = -row[j]
		}
	}

	return NewFromRows(rows)
}

// MaxAbs returns max |m[i][j]|, or 0 for an empty matrix.
func MaxAbs(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, err
	}
	var (
		best float64
		i, j int
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return 0, err
			}
			best = math.Max(best, math.Abs(v))
		}
	}

	return best, nil
}

// ApproxEqual reports |a-b| <= eps·max(1, |a|, |b|), eps from WithEpsilon
// (DefaultEpsilon otherwise).
func ApproxEqual(a, b float64, opts ...Option) bool {
	o := gatherOptions(opts...)
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))

	return math.Abs(a-b) <= o.eps*scale
}
