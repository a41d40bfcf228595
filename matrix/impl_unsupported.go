// SPDX-License-Identifier: MIT
// Package matrix - operations declared on the surface but deliberately not provided.
//
// Inverse, Image (column space), Kernel (null space) and Compare (ordering) always
// fail with ErrNotImplemented, for every input. They never fall back to an
// approximation or a partial answer.

package matrix

// Inverse is not implemented; it always returns ErrNotImplemented.
func (a *Arithmetic) Inverse(Matrix) (*Dense, error) {
	return nil, matrixErrorf(opInverse, ErrNotImplemented)
}

// Image (column space) is not implemented; it always returns ErrNotImplemented.
func (a *Arithmetic) Image(Matrix) ([]Element, error) {
	return nil, matrixErrorf(opImage, ErrNotImplemented)
}

// Kernel (null space) is not implemented; it always returns ErrNotImplemented.
func (a *Arithmetic) Kernel(Matrix) ([]Element, error) {
	return nil, matrixErrorf(opKernel, ErrNotImplemented)
}

// Compare (matrix ordering) is not implemented; it always returns ErrNotImplemented.
func (a *Arithmetic) Compare(Matrix, Matrix) (int, error) {
	return 0, matrixErrorf(opCompare, ErrNotImplemented)
}
