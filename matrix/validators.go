// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep solvers minimal by delegating nil/shape/finiteness checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and callers can still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; only ValidateFinite reads elements.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → NonEmpty → Square → Finite).
//  - Each validator states what it assumes (e.g. no nil check).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense stored in the interface.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNonEmpty ensures the matrix has at least one row and one column.
// Assumes m is not nil.
func ValidateNonEmpty(m Matrix) error {
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return validatorErrorf("ValidateNonEmpty", ErrEmpty)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%d×%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}

	return nil
}

// ValidateFinite scans every element and rejects NaN or ±Inf, reporting the
// first offending coordinate in row-major order.
// Assumes m is not nil. Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite", fmt.Errorf("(%d,%d)=%v: %w", i, j, v, ErrNaNInf))
			}
		}
	}

	return nil
}

// ValidateSquareFinite is the composite NotNil → NonEmpty → Square → Finite.
func ValidateSquareFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateNonEmpty(m); err != nil {
		return err
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}

	return ValidateFinite(m)
}
