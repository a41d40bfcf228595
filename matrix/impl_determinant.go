// SPDX-License-Identifier: MIT
// Package matrix - determinant by Laplace (cofactor) expansion over GF(2^n).
//
// Purpose:
//   - Compute det(M) by expanding along the first row, recursively.
//   - Avoid allocating a copy per minor: a minor of the expansion is addressed
//     as (first active row, set of removed columns) over the original buffer.
//
// Notes:
//   - Characteristic 2: +1 == -1, so cofactors carry no alternating sign.
//   - Expansion is O(n!) and meant for small matrices. Deriving the determinant
//     from elimination is not offered here.

package matrix

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Determinant returns det(m) for a square matrix.
// Implementation:
//   - Stage 1: validate m non-empty and square.
//   - Stage 2: 1×1 → the sole entry; otherwise
//     det(M) = Σ_x M[0][x]·det(minor(0, x)), accumulated with field addition.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrEmptyRow, ErrNonSquare.
//
// Complexity:
//   - Time O(n!) field operations, Space O(n) (recursion depth + one bitset).
func (a *Arithmetic) Determinant(m Matrix) (Element, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	dm, err := denseOf(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	removed := bitset.New(uint(dm.c))

	return a.laplace(dm, 0, removed), nil
}

// laplace returns the determinant of the minor of d made of rows [row, n) and
// the columns not in removed. removed has exactly `row` bits set on entry and is
// restored before returning.
func (a *Arithmetic) laplace(d *Dense, row int, removed *bitset.BitSet) Element {
	n := d.c
	base := row * n

	// Base case: one row left, so exactly one active column remains.
	if row == d.r-1 {
		for col := 0; col < n; col++ {
			if !removed.Test(uint(col)) {
				return d.data[base+col]
			}
		}
	}

	f := a.field
	var det Element
	for col := 0; col < n; col++ {
		if removed.Test(uint(col)) {
			continue
		}
		removed.Set(uint(col))
		det = f.Add(det, f.Mul(d.data[base+col], a.laplace(d, row+1, removed)))
		removed.Clear(uint(col))
	}

	return det
}

// SubMatrix returns a copy of m without the given row and column, preserving
// the relative order of the remaining rows and columns.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrEmptyRow.
//   - ErrOutOfRange for a bad row or column index.
//   - ErrInvalidDimensions when m has a single row or a single column (the
//     result would be empty).
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
func SubMatrix(m Matrix, row, col int) (*Dense, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return nil, matrixErrorf(opSubMatrix, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	dm, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}
	res, err := NewDense(dm.r-1, dm.c-1)
	if err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}

	var x, y, dst int
	for x = 0; x < dm.r; x++ {
		if x == row {
			continue
		}
		for y = 0; y < dm.c; y++ {
			if y == col {
				continue
			}
			res.data[dst] = dm.data[x*dm.c+y]
			dst++
		}
	}

	return res, nil
}
