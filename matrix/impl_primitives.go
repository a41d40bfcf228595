// SPDX-License-Identifier: MIT
// Package matrix provides the element-wise and product primitives over GF(2^n):
// addition, subtraction, transpose, scalar and matrix multiplication,
// matrix-vector multiplication and integer powers. Every function performs
// strict fail-fast validation and returns a freshly allocated *Dense.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 for element-wise kernels, x→y→z for products).
//   - Operands are read through denseOf: *Dense inputs are used without copying.

package matrix

// addSub computes the element-wise field sum out[i,j] = a[i,j] + b[i,j].
// Shared by Add and Sub: in characteristic 2 subtraction and addition coincide,
// so only the error tag differs.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrEmptyRow, ErrDimensionMismatch (ValidateBinary).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (a *Arithmetic) addSub(x, y Matrix, opTag string) (*Dense, error) {
	if err := ValidateBinary(x, y); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	dx, err := denseOf(x)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	dy, err := denseOf(y)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newDenseUnchecked(dx.r, dx.c)
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = a.field.Add(dx.data[idx], dy.data[idx])
	}

	return res, nil
}

// Add computes the element-wise field sum C = X + Y.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrEmptyRow, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (a *Arithmetic) Add(x, y Matrix) (*Dense, error) { return a.addSub(x, y, opAdd) }

// Sub computes C = X - Y, which over GF(2^n) is the same element-wise sum as Add.
// Validation and errors are identical to Add.
func (a *Arithmetic) Sub(x, y Matrix) (*Dense, error) { return a.addSub(x, y, opSub) }

// Transpose returns mᵀ with shape cols×rows and result[i][j] = m[j][i].
// No field arithmetic is involved, so it is also available as a package function.
func (a *Arithmetic) Transpose(m Matrix) (*Dense, error) { return Transpose(m) }

// Transpose returns mᵀ with shape cols×rows and result[i][j] = m[j][i].
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrEmptyRow.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := dm.r, dm.c
	res := newDenseUnchecked(cols, rows) // dims flipped
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = dm.data[baseSrc+j]
		}
	}

	return res, nil
}

// Mul performs matrix multiplication C = X × Y over the field.
// Implementation:
//   - Stage 1: validate both non-empty and X.Cols == Y.Rows.
//   - Stage 2: C[x][y] = Σ_z X[x][z]·Y[z][y], accumulated with field addition
//     starting from the additive identity.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrEmptyRow, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(rows(X)·cols(Y)·cols(X)), Space O(rows(X)·cols(Y)).
func (a *Arithmetic) Mul(x, y Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(x, y); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return a.mul(x, y, opMul)
}

// mul is the unchecked product kernel shared by Mul, MulVec and Pow.
func (a *Arithmetic) mul(x, y Matrix, opTag string) (*Dense, error) {
	dx, err := denseOf(x)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	dy, err := denseOf(y)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	f := a.field
	rows, inner, cols := dx.r, dx.c, dy.c
	res := newDenseUnchecked(rows, cols)
	var (
		i, j, k int
		acc     Element
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			acc = 0
			for k = 0; k < inner; k++ {
				acc = f.Add(acc, f.Mul(dx.data[i*inner+k], dy.data[k*cols+j]))
			}
			res.data[i*cols+j] = acc
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are m[i,j]·s.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrEmptyRow.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (a *Arithmetic) Scale(m Matrix, s Element) (*Dense, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	dm, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := newDenseUnchecked(dm.r, dm.c)
	for idx, v := range dm.data {
		res.data[idx] = a.field.Mul(v, s)
	}

	return res, nil
}

// MulVec multiplies m by the column vector v.
// v is promoted to a len(v)×1 matrix and the call delegates to the matrix
// product, so the result is the rows(m)×1 matrix m·v.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix (empty m or empty v), ErrEmptyRow,
//     ErrDimensionMismatch (m.Cols != len(v)).
//
// Complexity:
//   - Time O(r*c), Space O(r + c).
func (a *Arithmetic) MulVec(m Matrix, v []Element) (*Dense, error) {
	col, err := NewColumn(v)
	if err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err = ValidateMulCompatible(m, col); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	return a.mul(m, col, opMulVec)
}

// Pow returns m multiplied by itself k times.
// Implementation:
//   - Stage 1: validate m non-empty, then reject k <= 0.
//   - Stage 2: result = m; repeat k-1 times result = m × result.
//
// Behavior highlights:
//   - Naive repeated multiplication (k-1 products), not square-and-multiply.
//   - k == 1 returns a copy of m, never m itself.
//
// Errors (in this order):
//   - ErrNilMatrix, ErrEmptyMatrix, ErrEmptyRow.
//   - ErrNonPositiveExponent (k <= 0).
//   - ErrDimensionMismatch when m is not square and k >= 2.
//
// Complexity:
//   - Time O(k·n³) for an n×n matrix, Space O(n²).
func (a *Arithmetic) Pow(m Matrix, k int) (*Dense, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if k <= 0 {
		return nil, matrixErrorf(opPow, ErrNonPositiveExponent)
	}
	base, err := workingCopy(m)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if k > 1 {
		if err = ValidateMulCompatible(base, base); err != nil {
			return nil, matrixErrorf(opPow, err)
		}
	}

	result := base
	for i := 1; i < k; i++ {
		if result, err = a.mul(base, result, opPow); err != nil {
			return nil, err
		}
	}

	return result, nil
}
