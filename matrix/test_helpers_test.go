// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures over GF(16) shared by all kernel tests.
//   • Provide wrappers that hide *Dense (fallback path) or fake empty shapes.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gfmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// Reducing polynomials used across the tests.
const (
	polyGF16          uint64 = 0x13 // x^4 + x + 1, irreducible
	polyGF16Reducible uint64 = 0x11 // x^4 + 1
)

// Fixtures over GF(16) mod 0x13. Expected values in the tests below were
// computed independently for these exact inputs.
var (
	// fixtureA is a full-rank 3×3 matrix with det 9.
	fixtureA = [][]matrix.Element{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	// fixtureC is a full-rank 3×3 matrix with a zero leading pivot and det 3.
	fixtureC = [][]matrix.Element{
		{0, 1, 2},
		{3, 0, 4},
		{5, 6, 1},
	}
	// fixtureSingular has rank 2 and det 0.
	fixtureSingular = [][]matrix.Element{
		{0, 1, 2},
		{3, 0, 4},
		{5, 6, 0},
	}
	// fixtureZeroColumn has an all-zero first column; true rank 2.
	fixtureZeroColumn = [][]matrix.Element{
		{0, 1, 1},
		{0, 1, 0},
		{0, 0, 1},
	}
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the materialization (non-*Dense) path in kernels.
type hide struct{ matrix.Matrix }

// shapeOnly is a Matrix that reports an arbitrary (possibly empty) shape and
// holds no data. *Dense cannot be empty, so this is how empty inputs are tested.
type shapeOnly struct{ r, c int }

func (s shapeOnly) Rows() int { return s.r }
func (s shapeOnly) Cols() int { return s.c }
func (s shapeOnly) At(int, int) (matrix.Element, error) {
	return 0, matrix.ErrOutOfRange
}
func (s shapeOnly) Set(int, int, matrix.Element) error { return matrix.ErrOutOfRange }
func (s shapeOnly) Clone() matrix.Matrix { return s }

// gf2Field is GF(2) written by hand: proof that any Field implementation can
// be injected without touching the algorithms.
type gf2Field struct{}

func (gf2Field) Add(a, b matrix.Element) matrix.Element { return (a ^ b) & 1 }
func (gf2Field) Sub(a, b matrix.Element) matrix.Element { return (a ^ b) & 1 }
func (gf2Field) Mul(a, b matrix.Element) matrix.Element { return a & b & 1 }
func (gf2Field) Quo(a, b matrix.Element) (matrix.Element, bool) {
	if b&1 == 0 {
		return 0, false
	}
	return a & 1, true
}

// MustArith builds an Arithmetic over the bundled GF(2^n) field or fails the test.
func MustArith(t testing.TB, poly uint64) *matrix.Arithmetic {
	t.Helper()
	ar, err := matrix.NewArithmeticForPolynomial(poly)
	require.NoError(t, err)

	return ar
}

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows(t testing.TB, rows [][]matrix.Element) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// RequireRows asserts that got holds exactly the rows in want.
func RequireRows(t testing.TB, want [][]matrix.Element, got *matrix.Dense) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, want, got.ToRows())
}

// RequireErrorIs asserts err matches every target via errors.Is.
func RequireErrorIs(t testing.TB, err error, targets ...error) {
	t.Helper()
	require.Error(t, err)
	for _, target := range targets {
		require.Truef(t, errors.Is(err, target), "expected errors.Is(%v, %v)", err, target)
	}
}
