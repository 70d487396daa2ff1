// Package matrix provides the weight-matrix input type used by the solvers.
//
// The matrix package provides:
//
//   - Matrix, a minimal read/write interface over a 2-D float64 grid.
//   - Dense, a row-major implementation with bounds-checked accessors and a
//     NaN/Inf guard on Set (on by default).
//   - NewFromRows / ToRows for moving between Matrix values and [][]float64.
//   - Validators (ValidateNotNil, ValidateNonEmpty, ValidateSquare,
//     ValidateFinite, ValidateSquareFinite) returning tagged sentinels that
//     callers match with errors.Is.
//   - Negated, for callers who want to minimize with a maximizing solver.
//
// All functions are deterministic and allocation is bounded by the matrix size.
package matrix
