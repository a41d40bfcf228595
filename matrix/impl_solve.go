// SPDX-License-Identifier: MIT
// Package matrix - square linear systems A·x = b over GF(2^n).

package matrix

import "fmt"

// Solve returns x with A·x = b for a square, full-rank A.
// Implementation:
//   - Stage 1: validate, in order: A non-empty, A square, len(b) == n, Rank(A) == n.
//   - Stage 2: build the augmented n×(n+1) matrix [A | b] and run the same
//     elimination sweep as RowEchelon (pivot swap and deferral included).
//   - Stage 3: back-substitute from the last variable to the first:
//     for x = n-1..0 and y = n-1..x, fold the solved y into the right-hand side
//     (rhs -= aug[x][y]·result[y]) and, at y == x, set result[x] = rhs / aug[x][x].
//
// Behavior highlights:
//   - Full rank is required even though some dependent systems are solvable;
//     Solve declines them with ErrRankDeficient.
//   - Finite-field arithmetic is exact: no residual check is performed.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrEmptyRow (A), ErrNonSquare (A).
//   - ErrEmptyMatrix / ErrDimensionMismatch (b).
//   - ErrRankDeficient when Rank(A) < n.
//   - ErrUnsolvable when a diagonal entry of the eliminated system cannot be
//     divided by (possible only for rows deferred during elimination).
//
// Complexity:
//   - Time O(n³) field operations, Space O(n²).
func (a *Arithmetic) Solve(m Matrix, b []Element) ([]Element, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := m.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	rank, err := a.Rank(m)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if rank != n {
		return nil, matrixErrorf(opSolve, fmt.Errorf("rank %d of %d: %w", rank, n, ErrRankDeficient))
	}

	aug, err := augment(m, b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	a.sweep(aug)

	return a.backSubstitute(aug)
}

// augment builds the n×(n+1) matrix [m | b]. m must be n×n and len(b) == n.
func augment(m Matrix, b []Element) (*Dense, error) {
	dm, err := denseOf(m)
	if err != nil {
		return nil, err
	}
	n := dm.r
	cols := n + 1
	aug := newDenseUnchecked(n, cols)
	for i := 0; i < n; i++ {
		copy(aug.data[i*cols:i*cols+n], dm.data[i*n:(i+1)*n])
		aug.data[i*cols+n] = b[i]
	}

	return aug, nil
}

// backSubstitute solves the eliminated augmented system aug (n×(n+1)) in place.
// The right-hand-side column of aug is consumed.
func (a *Arithmetic) backSubstitute(aug *Dense) ([]Element, error) {
	f := a.field
	n, cols := aug.r, aug.c
	last := cols - 1
	result := make([]Element, n)

	var (
		x, y int
		q    Element
		ok   bool
	)
	for x = n - 1; x >= 0; x-- {
		rhs := x*cols + last
		for y = n - 1; y >= x; y-- {
			if y != x {
				aug.data[rhs] = f.Sub(aug.data[rhs], f.Mul(aug.data[x*cols+y], result[y]))
				continue
			}
			q, ok = f.Quo(aug.data[rhs], aug.data[x*cols+x])
			if !ok {
				return nil, matrixErrorf(opSolve, fmt.Errorf("pivot %d: %w", x, ErrUnsolvable))
			}
			result[x] = q
		}
	}

	return result, nil
}
