// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach context with builderErrorf (%w preserved).
//   • Validation panics are confined to option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates that the requested order n is below MinOrder.
var ErrTooSmall = errors.New("builder: order too small")

// ErrNonFiniteWeight indicates that a WeightFn produced NaN or ±Inf.
var ErrNonFiniteWeight = errors.New("builder: weight function produced a non-finite value")

// Method tokens used as error context.
const (
	MethodRandom   = "Random"
	MethodConstant = "Constant"
	MethodPlanted  = "Planted"
)

// MinOrder is the smallest n any constructor accepts.
const MinOrder = 1

// builderErrorf wraps err with the constructor name: "<Method>: <msg>: <err>".
func builderErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

// validateOrder ensures n ≥ MinOrder.
func validateOrder(method string, n int) error {
	if n < MinOrder {
		return builderErrorf(method, ErrTooSmall, "order must be ≥ %d, got %d", MinOrder, n)
	}

	return nil
}
