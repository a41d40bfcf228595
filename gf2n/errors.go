// SPDX-License-Identifier: MIT
// Package gf2n: sentinel error set.
// Every message is prefixed with "gf2n: ..." and callers match with errors.Is.

package gf2n

import "errors"

var (
	// ErrInvalidPolynomial is returned by New when the reducing polynomial has
	// degree < 1 (0 or 1 as a bit pattern).
	ErrInvalidPolynomial = errors.New("gf2n: reducing polynomial must have degree >= 1")

	// ErrZeroDivisor is returned when dividing by (or inverting) the additive identity.
	ErrZeroDivisor = errors.New("gf2n: division by zero")

	// ErrNotInvertible is returned when the divisor is nonzero but has no
	// multiplicative inverse, which can only happen under a reducible polynomial.
	ErrNotInvertible = errors.New("gf2n: element is not invertible")

	// ErrElementOutOfRange signals a value with bits at or above the field degree.
	ErrElementOutOfRange = errors.New("gf2n: element out of range")
)
