// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage and algorithms.
// This file contains ONLY domain-facing types: the field element, the field
// capability consumed by every algorithm, and the public Matrix interface.
// Errors live in errors.go; operations live in the impl_*.go kernels.
package matrix

// Element is a field element of GF(2^n): a polynomial over GF(2) stored as the
// bit pattern of an unsigned integer (bit k = coefficient of x^k).
// Zero is the additive identity; equality is integer equality.
type Element = uint64

// Field is the arithmetic capability the matrix algorithms run on.
// Implementations must be pure and safe for concurrent use; *gf2n.Field is the
// bundled implementation, any other GF(2^n) engine can be injected instead.
//
// Contract:
//   - Add, Sub, Mul are total and return canonical elements.
//   - Quo returns (a/b, true), or (0, false) when b is zero or has no inverse.
//     Algorithms branch on ok; a false ok is an expected outcome (zero pivot),
//     not an error.
type Field interface {
	Add(a, b Element) Element
	Sub(a, b Element) Element
	Mul(a, b Element) Element
	Quo(a, b Element) (Element, bool)
}

// Matrix represents a two-dimensional array of field elements.
// Every algorithm accepts this interface and returns a fresh *Dense; inputs are
// never mutated.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (Element, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v Element) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
