// SPDX-License-Identifier: MIT
// Package gf2n_test contains unit tests for GF(2^n) arithmetic.
package gf2n_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gfmatrix/gf2n"
	"github.com/stretchr/testify/require"
)

// Reducing polynomials used across the tests.
const (
	polyGF16Irreducible uint64 = 0x13 // x^4 + x + 1
	polyGF16Reducible   uint64 = 0x11 // x^4 + 1 = (x + 1)^4
)

func TestNew_RejectsDegreeZero(t *testing.T) {
	t.Parallel()

	for _, poly := range []uint64{0, 1} {
		_, err := gf2n.New(poly)
		require.Error(t, err)
		require.True(t, errors.Is(err, gf2n.ErrInvalidPolynomial), "poly %#x: %v", poly, err)
	}
}

func TestNew_Degree(t *testing.T) {
	t.Parallel()

	tests := []struct {
		poly   uint64
		degree uint
		max    uint64
	}{
		{0x3, 1, 0x1},
		{0x13, 4, 0xf},
		{gf2n.AESPolynomial, 8, 0xff},
		{1<<63 | 0x1b, gf2n.MaxDegree, 1<<63 - 1},
	}
	for _, tc := range tests {
		f, err := gf2n.New(tc.poly)
		require.NoError(t, err)
		require.Equal(t, tc.degree, f.Degree())
		require.Equal(t, tc.max, f.Max())
		require.Equal(t, tc.poly, f.Polynomial())
	}
}

func TestAddSub_Characteristic2(t *testing.T) {
	t.Parallel()

	f := gf2n.MustNew(polyGF16Irreducible)
	var a, b uint64
	for a = 0; a <= f.Max(); a++ {
		require.Zero(t, f.Add(a, a), "a+a must vanish for a=%#x", a)
		for b = 0; b <= f.Max(); b++ {
			require.Equal(t, f.Add(a, b), f.Sub(a, b))
			require.Equal(t, f.Add(a, b), f.Add(b, a))
		}
	}
}

func TestMul_AESVectors(t *testing.T) {
	t.Parallel()

	f := gf2n.MustNew(gf2n.AESPolynomial)
	require.Equal(t, uint64(0xc1), f.Mul(0x57, 0x83))
	require.Equal(t, uint64(0xfe), f.Mul(0x57, 0x13))
	require.Equal(t, uint64(0x01), f.Mul(0x53, 0xca))
}

func TestMul_FieldAxioms_GF16(t *testing.T) {
	t.Parallel()

	f := gf2n.MustNew(polyGF16Irreducible)
	var a, b, c uint64
	for a = 0; a <= f.Max(); a++ {
		require.Equal(t, a, f.Mul(a, 1))
		require.Zero(t, f.Mul(a, 0))
		for b = 0; b <= f.Max(); b++ {
			require.Equal(t, f.Mul(a, b), f.Mul(b, a))
			for c = 0; c <= f.Max(); c++ {
				// distributivity ties Add and Mul together
				require.Equal(t, f.Mul(a, f.Add(b, c)), f.Add(f.Mul(a, b), f.Mul(a, c)))
				require.Equal(t, f.Mul(f.Mul(a, b), c), f.Mul(a, f.Mul(b, c)))
			}
		}
	}
}

func TestReduce_NonCanonicalInputs(t *testing.T) {
	t.Parallel()

	f := gf2n.MustNew(polyGF16Irreducible)
	// x^4 ≡ x + 1 (mod x^4 + x + 1)
	require.Equal(t, uint64(0x3), f.Reduce(0x10))
	require.Equal(t, uint64(0x7), f.Reduce(0x7))
	require.Equal(t, f.Mul(0x3, 0x5), f.Mul(0x10, 0x5))
}

func TestInvDiv_GF16(t *testing.T) {
	t.Parallel()

	f := gf2n.MustNew(polyGF16Irreducible)
	var a, b uint64
	for a = 1; a <= f.Max(); a++ {
		inv, err := f.Inv(a)
		require.NoError(t, err)
		require.Equal(t, uint64(1), f.Mul(a, inv), "a=%#x inv=%#x", a, inv)
		for b = 0; b <= f.Max(); b++ {
			q, err := f.Div(b, a)
			require.NoError(t, err)
			require.Equal(t, b, f.Mul(q, a))
		}
	}
}

func TestDiv_ZeroDivisor(t *testing.T) {
	t.Parallel()

	f := gf2n.MustNew(polyGF16Irreducible)
	_, err := f.Div(5, 0)
	require.True(t, errors.Is(err, gf2n.ErrZeroDivisor))

	q, ok := f.Quo(5, 0)
	require.False(t, ok)
	require.Zero(t, q)

	q, ok = f.Quo(5, 1)
	require.True(t, ok)
	require.Equal(t, uint64(5), q)
}

func TestDiv_NotInvertibleUnderReduciblePolynomial(t *testing.T) {
	t.Parallel()

	f := gf2n.MustNew(polyGF16Reducible)
	// x + 1 divides x^4 + 1, so it has no inverse in the quotient ring.
	_, err := f.Div(1, 0x3)
	require.True(t, errors.Is(err, gf2n.ErrNotInvertible), "got %v", err)

	_, ok := f.Quo(1, 0x3)
	require.False(t, ok)

	// x is coprime to x^4 + 1 and stays invertible.
	inv, err := f.Inv(0x2)
	require.NoError(t, err)
	require.Equal(t, uint64(1), f.Mul(0x2, inv))
}

func TestExp(t *testing.T) {
	t.Parallel()

	f := gf2n.MustNew(polyGF16Irreducible)
	var a uint64
	for a = 1; a <= f.Max(); a++ {
		// multiplicative group has order 2^4 - 1
		require.Equal(t, uint64(1), f.Exp(a, 15))
		require.Equal(t, f.Mul(a, f.Mul(a, a)), f.Exp(a, 3))
	}
	require.Equal(t, uint64(1), f.Exp(0, 0))
	require.Zero(t, f.Exp(0, 7))
}

func TestIsIrreducible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		poly uint64
		want bool
	}{
		{0x2, true},               // x
		{0x3, true},               // x + 1
		{0x7, true},               // x^2 + x + 1
		{0x5, false},              // (x + 1)^2
		{0x6, false},              // x(x + 1)
		{polyGF16Irreducible, true},
		{polyGF16Reducible, false},
		{0x12, false},             // x^4 + x
		{gf2n.AESPolynomial, true},
		{0x11d, true},             // Reed-Solomon GF(2^8)
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, gf2n.MustNew(tc.poly).IsIrreducible(), "poly %#x", tc.poly)
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	f := gf2n.MustNew(polyGF16Irreducible)
	require.NoError(t, f.Check(0xf))
	require.True(t, f.Contains(0xf))
	require.False(t, f.Contains(0x10))
	require.True(t, errors.Is(f.Check(0x10), gf2n.ErrElementOutOfRange))
	require.Equal(t, "GF(2^4) mod 0x13", f.String())
}
