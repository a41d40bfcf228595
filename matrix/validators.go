// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for shape validation.
//   - Keep kernels minimal by delegating nil/empty/shape checks here.
//   - Return sentinel errors wrapped with the validator name so call sites can
//     wrap again with an operation tag and callers still match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic, O(1) and allocate nothing on success.
//
// Note:
//   - Each composite validator follows a fixed sequence: NotNil → NonEmpty → Shape.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNonEmpty ensures m is non-nil, has at least one row and rows of
// length >= 1.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix (no rows), ErrEmptyRow (zero columns).
//
// Notes:
//   - *Dense can never be empty; the check matters for foreign Matrix implementations.
func ValidateNonEmpty(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateNonEmpty", err)
	}
	if m.Rows() <= 0 {
		return validatorErrorf("ValidateNonEmpty", ErrEmptyMatrix)
	}
	if m.Cols() <= 0 {
		return validatorErrorf("ValidateNonEmpty", ErrEmptyRow)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// The failing dimension is named in the message.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinary is the composite guard of element-wise binary operations:
// NonEmpty(a) → NonEmpty(b) → SameShape(a, b).
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrEmptyRow, ErrDimensionMismatch.
func ValidateBinary(a, b Matrix) error {
	if err := ValidateNonEmpty(a); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}
	if err := ValidateNonEmpty(b); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}

	return nil
}

// ValidateSquare ensures m is non-empty and Rows == Cols.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrEmptyRow, ErrNonSquare.
func ValidateSquare(m Matrix) error {
	if err := ValidateNonEmpty(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible ensures both operands are non-empty and a.Cols == b.Rows.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrEmptyRow, ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNonEmpty(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNonEmpty(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-empty and its length is exactly n.
//
// Errors:
//   - ErrEmptyMatrix for an empty vector, ErrDimensionMismatch for a wrong length.
func ValidateVecLen(x []Element, n int) error {
	if len(x) == 0 {
		return validatorErrorf("ValidateVecLen", ErrEmptyMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
