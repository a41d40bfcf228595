// Package matrix implements matrix arithmetic over a binary extension field GF(2^n).
//
// Entries are field elements (polynomials over GF(2) reduced modulo a fixed
// reducing polynomial, stored as uint64), not real numbers. All arithmetic goes
// through an injected Field capability {Add, Sub, Mul, Quo}; package gf2n ships
// one implementation and NewArithmeticForPolynomial wires it up.
//
// The matrix package provides:
//
//   - Primitives: Add, Sub, Transpose, Mul, Scale, MulVec, Pow.
//   - Elimination: RowEchelon (alias Gauss) with row-swap pivot recovery and a
//     documented "defer" policy for unrecoverable zero pivots.
//   - Derived algorithms: Rank, Determinant (Laplace expansion), Solve.
//   - Unsupported on purpose: Inverse, Image, Kernel, Compare return
//     ErrNotImplemented.
//
// Every operation validates its input up front, never mutates it, and returns a
// fresh *Dense. Errors are sentinels in two families (ErrDimension,
// ErrInvalidArgument) matched with errors.Is.
//
// Over characteristic 2, subtraction equals addition and determinants carry no
// sign, which is why Sub and Add share a kernel and the cofactor expansion
// never alternates.
//
// See example_test.go for usage patterns.
package matrix
