// SPDX-License-Identifier: MIT
// Package matrix - Gaussian elimination to row-echelon form over GF(2^n).
//
// Purpose:
//   - Reduce a matrix to row-echelon form (not normalized, not reduced) for Rank.
//   - Share the very same sweep with Solve, which runs it on [A | b].
//
// Zero-pivot policy:
//   - When the pivot (d-1, d-1) is zero, findPivot looks for a row whose leading
//     nonzero lies exactly on column d-1 and swaps it in.
//   - When no such row exists, or the field cannot divide by the pivot, the
//     current row is deferred: it is left unchanged for this diagonal position
//     and the sweep moves on. Pivot search is not retried for deferred rows and
//     no column pivoting is done, so on pivot-poor inputs the result can stop
//     short of a true echelon form. The behaviour is kept exactly as is; the
//     tests in impl_elimination_test.go pin it.

package matrix

// RowEchelon returns a row-echelon form of m computed over the field.
// Implementation:
//   - Stage 1: validate m non-empty and take a private working copy.
//   - Stage 2: run the column-major sweep (see sweep).
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrEmptyRow.
//
// Determinism:
//   - Fixed d→row→col loop order; top-to-bottom pivot search.
//
// Complexity:
//   - Time O(min(r,c)·r·c) field operations, plus O(r·c) per pivot search. Space O(r*c).
//
// Notes:
//   - The caller's matrix is never mutated.
func (a *Arithmetic) RowEchelon(m Matrix) (*Dense, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opRowEchelon, err)
	}
	w, err := workingCopy(m)
	if err != nil {
		return nil, matrixErrorf(opRowEchelon, err)
	}
	a.sweep(w)

	return w, nil
}

// Gauss is an alias of RowEchelon.
func (a *Arithmetic) Gauss(m Matrix) (*Dense, error) { return a.RowEchelon(m) }

// Rank returns the number of nonzero rows of RowEchelon(m), in [0, Rows(m)].
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrEmptyRow.
//
// Complexity:
//   - Dominated by RowEchelon; the count itself is O(r*c).
func (a *Arithmetic) Rank(m Matrix) (int, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	echelon, err := a.RowEchelon(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return countNonZeroRows(echelon), nil
}

// countNonZeroRows counts rows with at least one nonzero entry.
func countNonZeroRows(m *Dense) int {
	var rank, i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if m.data[i*m.c+j] != 0 {
				rank++
				break
			}
		}
	}

	return rank
}

// sweep runs the elimination over w in place; w must be a call-local buffer.
// Implementation (d is the 1-based diagonal position, p = d-1):
//   - for d = 1..min(rows, cols), for every row r in [d, rows):
//   - if w[p][p] == 0, findPivot tries to swap a suitable row into p;
//   - factor, ok := Quo(w[r][p], w[p][p]); !ok defers row r for this d;
//   - otherwise w[r][c] = w[p][c]·factor - w[r][c] for c = p..cols-1.
//
// Behavior highlights:
//   - Over GF(2^n), -w[r][c] == w[r][c], so the update cancels w[r][p] exactly.
//   - Rows already zero in column p get factor 0 and stay unchanged.
func (a *Arithmetic) sweep(w *Dense) {
	f := a.field
	rows, cols := w.r, w.c
	diag := rows
	if cols < diag {
		diag = cols
	}

	var (
		d, p, r, c       int
		pivotOff, rowOff int
		factor           Element
		ok               bool
	)
	for d = 1; d <= diag; d++ {
		p = d - 1
		for r = d; r < rows; r++ {
			pivotOff = p*cols + p
			if w.data[pivotOff] == 0 {
				findPivot(w, p, p)
			}

			rowOff = r * cols
			factor, ok = f.Quo(w.data[rowOff+p], w.data[pivotOff])
			if !ok {
				continue // zero pivot column in the active sub-problem: defer this row
			}
			for c = p; c < cols; c++ {
				w.data[rowOff+c] = f.Sub(f.Mul(w.data[p*cols+c], factor), w.data[rowOff+c])
			}
		}
	}
}

// findPivot swaps into row `row` the first row (scanning from the top) whose
// leading nonzero entry lies exactly on `column`.
// For every row the columns 0..column are scanned left to right; the first
// nonzero entry before `column` disqualifies the row. When no row qualifies w is
// left unchanged.
// Complexity: O(r·column).
func findPivot(w *Dense, column, row int) {
	var x, y int
	for x = 0; x < w.r; x++ {
		for y = 0; y <= column; y++ {
			if w.data[x*w.c+y] == 0 {
				continue
			}
			if y == column {
				swapRows(w, row, x)
				return
			}
			break // leading nonzero left of column: this row cannot supply the pivot
		}
	}
}

// swapRows exchanges rows i and j of w in place.
func swapRows(w *Dense, i, j int) {
	if i == j {
		return
	}
	ri := w.data[i*w.c : (i+1)*w.c]
	rj := w.data[j*w.c : (j+1)*w.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}
