// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors, accessors and validators return these sentinels
// (possibly wrapped with a method/validator tag) and tests MUST check them via
// errors.Is. No exported function panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so log lines can be grepped.
// Wrap with fmt.Errorf("ctx: %w", ErrX) at the outer boundary; callers still
// match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape (invalid / ragged / empty / non-square) -> index -> NaN/Inf.

var (
	// ErrInvalidDimensions is returned when a requested shape has r<=0 or c<=0.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrRagged signals that a row-slice input has rows of different lengths.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrEmpty signals that an input with no rows (or no columns) was given
	// where at least one element is required.
	ErrEmpty = errors.New("matrix: empty matrix")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
