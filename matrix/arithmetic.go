// SPDX-License-Identifier: MIT
// Package matrix - Arithmetic: matrix algorithms bound to one injected Field.
//
// Purpose:
//   - Carry the Field capability every kernel needs, so the algorithms never
//     name a concrete field implementation.
//   - Define operation tags and the shared error wrapper used by all kernels.
//
// Notes:
//   - Kernels live in dedicated files (impl_primitives.go, impl_elimination.go,
//     impl_determinant.go, impl_solve.go, impl_unsupported.go).
//   - An *Arithmetic holds no mutable state and may be shared across goroutines
//     as long as the injected Field is itself safe for concurrent use.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/gfmatrix/gf2n"
)

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opMulVec      = "MulVec"
	opScale       = "Scale"
	opTranspose   = "Transpose"
	opPow         = "Pow"
	opDeterminant = "Determinant"
	opSubMatrix   = "SubMatrix"
	opRank        = "Rank"
	opRowEchelon  = "RowEchelon"
	opSolve       = "Solve"
	opInverse     = "Inverse"
	opImage       = "Image"
	opKernel      = "Kernel"
	opCompare     = "Compare"
	opNew         = "NewArithmetic"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Arithmetic runs matrix algorithms over the elements of one Field.
type Arithmetic struct {
	field Field
}

// NewArithmetic binds the matrix algorithms to f.
//
// Errors:
//   - ErrNilField when f is nil.
func NewArithmetic(f Field) (*Arithmetic, error) {
	if f == nil {
		return nil, matrixErrorf(opNew, ErrNilField)
	}

	return &Arithmetic{field: f}, nil
}

// NewArithmeticForPolynomial builds the bundled GF(2^n) field for the given
// reducing polynomial and binds the algorithms to it.
//
// Errors:
//   - gf2n.ErrInvalidPolynomial when deg(poly) < 1.
func NewArithmeticForPolynomial(poly uint64) (*Arithmetic, error) {
	f, err := gf2n.New(poly)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return &Arithmetic{field: f}, nil
}

// Field returns the injected field.
func (a *Arithmetic) Field() Field { return a.field }
