// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels (possibly wrapped) and
// tests MUST check them via errors.Is. No algorithm panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & FAMILIES
// -------------------------
// Every message is prefixed with "matrix: ...". Errors come in two families
// rooted at ErrDimension and ErrInvalidArgument; each specific sentinel wraps
// its root, so errors.Is(err, ErrDimension) holds for every shape problem while
// errors.Is(err, ErrNonSquare) still pins the exact condition.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> empty matrix -> empty row -> shape mismatch -> argument policy (exponent,
// rank) -> ErrNotImplemented.

var (
	// ErrDimension is the root of every shape-related failure.
	ErrDimension = errors.New("matrix: dimension error")

	// ErrInvalidArgument is the root of every value-related failure
	// (bad exponent, unsolvable system).
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrNotImplemented marks an intentionally unsupported operation
	// (Inverse, Image, Kernel, Compare).
	ErrNotImplemented = errors.New("matrix: operation not implemented")

	// ErrNilField indicates that an Arithmetic was requested without a Field.
	ErrNilField = errors.New("matrix: nil field")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// Dimension family.
var (
	// ErrNilMatrix indicates that a nil Matrix argument was used.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrDimension)

	// ErrEmptyMatrix is returned when a matrix (or vector) has no rows.
	ErrEmptyMatrix = fmt.Errorf("%w: matrix is empty", ErrDimension)

	// ErrEmptyRow is returned when a matrix has rows of length zero.
	ErrEmptyRow = fmt.Errorf("%w: matrix has an empty row", ErrDimension)

	// ErrRaggedRows is returned when rows of one matrix have different lengths.
	ErrRaggedRows = fmt.Errorf("%w: rows have different lengths", ErrDimension)

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add with different shapes, Mul with a.Cols != b.Rows, or a vector of
	// the wrong length.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrDimension)

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrDimension)

	// ErrInvalidDimensions indicates that requested constructor dimensions are non-positive.
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrDimension)
)

// Invalid-argument family.
var (
	// ErrNonPositiveExponent is returned by Pow for k <= 0.
	ErrNonPositiveExponent = fmt.Errorf("%w: exponent must be positive", ErrInvalidArgument)

	// ErrRankDeficient is returned by Solve when rank(A) < n. Some dependent
	// systems do have solutions; Solve declines all of them.
	ErrRankDeficient = fmt.Errorf("%w: coefficient matrix is rank deficient", ErrInvalidArgument)

	// ErrUnsolvable is returned by Solve when back-substitution meets a pivot the
	// field cannot divide by. This is only reachable through rows deferred during
	// elimination (see RowEchelon).
	ErrUnsolvable = fmt.Errorf("%w: system cannot be solved by back-substitution", ErrInvalidArgument)
)
