// SPDX-License-Identifier: MIT
// Package matrix - public constructors.
//
// Purpose:
//   - Provide intention-revealing entry points for building matrices from Go values.
//   - Enforce the rectangular, non-empty invariant at construction time so every
//     *Dense that reaches a kernel is well-formed.
//
// Determinism & Policy:
//   - Constructors copy their input; later mutation of the caller's slices never
//     leaks into the matrix.

package matrix

import "fmt"

// Constructor tags for error wrapping.
const (
	ctorFromRows = "NewFromRows"
	ctorIdentity = "NewIdentity"
	ctorColumn   = "NewColumn"
)

// NewFromRows builds a *Dense from a slice of rows.
// Implementation:
//   - Stage 1: reject no rows (ErrEmptyMatrix) and an empty first row (ErrEmptyRow).
//   - Stage 2: require every row to have the first row's length (ErrRaggedRows).
//   - Stage 3: copy the rows into a fresh row-major buffer.
//
// Errors:
//   - ErrEmptyMatrix, ErrEmptyRow, ErrRaggedRows (all in the ErrDimension family).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]Element) (*Dense, error) {
	if len(rows) == 0 {
		return nil, matrixErrorf(ctorFromRows, ErrEmptyMatrix)
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, matrixErrorf(ctorFromRows, ErrEmptyRow)
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf(ctorFromRows,
				fmt.Errorf("row %d has %d elements, want %d: %w", i, len(row), cols, ErrRaggedRows))
		}
	}

	m := newDenseUnchecked(len(rows), cols)
	for i, row := range rows {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// NewIdentity returns I_n: ones on the diagonal, zeros elsewhere.
// 1 is the multiplicative identity of every GF(2^n).
//
// Errors:
//   - ErrInvalidDimensions when n <= 0.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(ctorIdentity, err)
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id, nil
}

// NewColumn promotes a vector to a len(v)×1 matrix.
//
// Errors:
//   - ErrEmptyMatrix when v is empty.
func NewColumn(v []Element) (*Dense, error) {
	if len(v) == 0 {
		return nil, matrixErrorf(ctorColumn, ErrEmptyMatrix)
	}
	m := newDenseUnchecked(len(v), 1)
	copy(m.data, v)

	return m, nil
}

// MustFromRows is like NewFromRows but panics on error.
// Intended for literals in tests and examples.
func MustFromRows(rows [][]Element) *Dense {
	m, err := NewFromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}
