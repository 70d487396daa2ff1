// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Row: O(c).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel is preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set.
type Dense struct {
	r, c           int       // row and column counts (>0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions if rows<=0 or cols<=0.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewFromRows builds a Dense matrix by copying a slice of rows.
// MAIN DESCRIPTION:
//   - The canonical ingestion path for literal matrices ([][]float64).
//
// Implementation:
//   - Stage 1: reject nil/zero-length input (ErrEmpty) and zero-width first row.
//   - Stage 2: reject ragged rows (ErrRagged), reporting the first offending row.
//   - Stage 3: copy values row by row, applying the NaN/Inf policy.
//
// Errors:
//   - ErrEmpty, ErrRagged, ErrNaNInf (wrapped with coordinates).
//
// Complexity: Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	var (
		r = len(rows)
		c = len(rows[0])
		i int
	)
	for i = 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d columns, want %d: %w", i, len(rows[i]), c, ErrRagged)
		}
	}

	d, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, err
	}
	for i = 0; i < r; i++ {
		for j, v := range rows[i] {
			if err = d.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat offset of (i, j) or reports ErrOutOfRange.
func (m *Dense) indexOf(i, j int) (int, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, ErrOutOfRange
	}

	return i*m.c + j, nil
}

// At returns the element at (i, j).
func (m *Dense) At(i, j int) (float64, error) {
	idx, err := m.indexOf(i, j)
	if err != nil {
		return 0, denseErrorf(ctxAt, i, j, err)
	}

	return m.data[idx], nil
}

// Set assigns v at (i, j). Under the default policy NaN and ±Inf are rejected
// with ErrNaNInf and the matrix is left unchanged.
func (m *Dense) Set(i, j int, v float64) error {
	idx, err := m.indexOf(i, j)
	if err != nil {
		return denseErrorf(ctxSet, i, j, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, i, j, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Do calls fn for every element in row-major order; a non-nil return from fn
// stops the walk and is returned as is.
func (m *Dense) Do(fn func(i, j int, v float64) error) error {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if err := fn(i, j, m.data[i*m.c+j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// Clone returns a deep copy with the same numeric policy.
func (m *Dense) Clone() Matrix {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf, validateNaNInf: m.validateNaNInf}
}

// String renders the matrix row by row as "[a, b, c]\n".
func (m *Dense) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', -1, 64))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
