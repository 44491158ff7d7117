// SPDX-License-Identifier: MIT
// Package: primefun/guard
//
// errors.go — sentinel errors for bound validation.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Call sites attach the offending value with %w wrapping.

package guard

import (
	"errors"
	"fmt"
)

// ErrType indicates the value is not numeric.
var ErrType = errors.New("guard: expected a number")

// ErrNotInteger indicates a fractional, NaN or infinite value.
var ErrNotInteger = errors.New("guard: expected an integer")

// ErrOverflow indicates the value exceeds the exact-integer range
// (MaxBound for integer kinds, MaxSafeFloat for floating kinds).
var ErrOverflow = errors.New("guard: value exceeds the exact-integer range")

// ErrNegative indicates a value below zero.
var ErrNegative = errors.New("guard: expected a non-negative integer")

// rejectf wraps a sentinel with the offending value: "<sentinel>, got <value>".
func rejectf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w, got "+format, append([]interface{}{sentinel}, args...)...)
}
