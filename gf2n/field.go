// SPDX-License-Identifier: MIT

// Package gf2n - Field engine bound to a single reducing polynomial.
//
// Purpose:
//   - Provide the four field operations (Add, Sub, Mul, Div) the matrix layer consumes.
//   - Keep every operation pure: no tables, no caches, no shared mutable state.
//
// Complexity quicksheet:
//   - New: O(1); Add/Sub: O(1); Mul: O(n); Inv/Div/Quo: O(n²); Exp: O(n·log k).

package gf2n

import (
	"fmt"
	"math/bits"
)

// MaxDegree is the largest supported polynomial degree; elements must fit in 63 bits
// so that one left shift during multiplication never overflows a uint64.
const MaxDegree = 63

// AESPolynomial is x^8 + x^4 + x^3 + x + 1, the reducing polynomial of GF(2^8) used by AES.
const AESPolynomial uint64 = 0x11b

// Field is GF(2^n) for a fixed reducing polynomial of degree n.
//   - poly holds the reducing polynomial, bit k = coefficient of x^k.
//   - degree is n = deg(poly); elements live in [0, 2^n).
//   - high is x^n (the single bit that must be folded back after a shift).
//   - mask is 2^n - 1 (the largest canonical element).
type Field struct {
	poly   uint64 // reducing polynomial
	degree uint   // n
	high   uint64 // 1 << n
	mask   uint64 // (1 << n) - 1
}

// New creates a Field for the given reducing polynomial.
// The polynomial is not required to be irreducible: reducible polynomials give a
// ring in which some nonzero elements have no inverse; Div reports those with
// ErrNotInvertible. Use IsIrreducible to check a polynomial up front.
//
// Errors:
//   - ErrInvalidPolynomial when deg(poly) < 1.
//
// Complexity:
//   - Time O(1), Space O(1).
func New(poly uint64) (*Field, error) {
	// deg(poly) = bit length - 1; poly < 2 means degree 0 or the zero polynomial.
	if poly < 2 {
		return nil, fmt.Errorf("New(%#x): %w", poly, ErrInvalidPolynomial)
	}
	degree := uint(bits.Len64(poly) - 1)
	high := uint64(1) << degree

	return &Field{
		poly:   poly,
		degree: degree,
		high:   high,
		mask:   high - 1,
	}, nil
}

// MustNew is like New but panics on an invalid polynomial.
// Intended for package-level variables and tests with constant polynomials.
func MustNew(poly uint64) *Field {
	f, err := New(poly)
	if err != nil {
		panic(err)
	}

	return f
}

// Polynomial returns the reducing polynomial.
func (f *Field) Polynomial() uint64 { return f.poly }

// Degree returns n, the degree of the reducing polynomial.
func (f *Field) Degree() uint { return f.degree }

// Max returns the largest canonical element, 2^n - 1.
func (f *Field) Max() uint64 { return f.mask }

// Contains reports whether a is a canonical element (a < 2^n).
func (f *Field) Contains(a uint64) bool { return a <= f.mask }

// Check returns ErrElementOutOfRange when a is not a canonical element.
func (f *Field) Check(a uint64) error {
	if a > f.mask {
		return fmt.Errorf("Check(%#x) with degree %d: %w", a, f.degree, ErrElementOutOfRange)
	}

	return nil
}

// Reduce returns a mod poly, the canonical representative of a.
// Canonical inputs are returned unchanged without any division work.
func (f *Field) Reduce(a uint64) uint64 {
	if a <= f.mask {
		return a // fast path: already canonical
	}
	_, r := polyDivMod(a, f.poly)

	return r
}

// Add returns a + b, which in characteristic 2 is a XOR b.
func (f *Field) Add(a, b uint64) uint64 {
	return f.Reduce(a ^ b)
}

// Sub returns a - b. Every element is its own additive inverse, so Sub == Add.
func (f *Field) Sub(a, b uint64) uint64 {
	return f.Reduce(a ^ b)
}

// Mul returns a·b mod poly.
// Implementation:
//   - Stage 1: reduce both operands to canonical form.
//   - Stage 2: shift-and-add over the bits of b; whenever the shifted a reaches
//     x^n, fold it back by XOR-ing the reducing polynomial.
//
// Complexity:
//   - Time O(n), Space O(1).
func (f *Field) Mul(a, b uint64) uint64 {
	a, b = f.Reduce(a), f.Reduce(b)

	var product uint64
	for b != 0 {
		if b&1 != 0 {
			product ^= a
		}
		b >>= 1
		a <<= 1
		if a&f.high != 0 {
			a ^= f.poly // a < 2^(n+1) here, so one fold is enough
		}
	}

	return product
}

// Inv returns the multiplicative inverse of a.
// Implementation:
//   - Stage 1: reject zero.
//   - Stage 2: extended Euclid on (poly, a) keeping only the Bezout coefficient of a,
//     reduced modulo poly after every step so it never exceeds n bits.
//   - Stage 3: the gcd must be 1, otherwise a shares a factor with a reducible poly.
//
// Errors:
//   - ErrZeroDivisor when a ≡ 0.
//   - ErrNotInvertible when gcd(a, poly) ≠ 1.
//
// Complexity:
//   - Time O(n²), Space O(1).
func (f *Field) Inv(a uint64) (uint64, error) {
	a = f.Reduce(a)
	if a == 0 {
		return 0, ErrZeroDivisor
	}

	// Invariant: s0·a ≡ r0 and s1·a ≡ r1 (mod poly).
	r0, r1 := f.poly, a
	s0, s1 := uint64(0), uint64(1)
	var q, r uint64
	for r1 != 0 {
		q, r = polyDivMod(r0, r1)
		r0, r1 = r1, r
		s0, s1 = s1, s0^f.Mul(q, s1)
	}
	if r0 != 1 {
		return 0, fmt.Errorf("Inv(%#x): %w", a, ErrNotInvertible)
	}

	return s0, nil
}

// Div returns a / b = a · b⁻¹.
//
// Errors:
//   - ErrZeroDivisor when b ≡ 0.
//   - ErrNotInvertible when b has no inverse under a reducible polynomial.
func (f *Field) Div(a, b uint64) (uint64, error) {
	inv, err := f.Inv(b)
	if err != nil {
		return 0, err
	}

	return f.Mul(a, inv), nil
}

// Quo is Div in (value, ok) form: ok is false exactly when Div would fail.
// Elimination code branches on ok instead of inspecting an error for what is an
// expected outcome (a zero pivot).
func (f *Field) Quo(a, b uint64) (uint64, bool) {
	q, err := f.Div(a, b)
	if err != nil {
		return 0, false
	}

	return q, true
}

// Exp returns a^k by square-and-multiply. Exp(a, 0) is 1 for every a, including 0.
// Complexity: O(n·log k).
func (f *Field) Exp(a, k uint64) uint64 {
	result := uint64(1)
	base := f.Reduce(a)
	for k != 0 {
		if k&1 != 0 {
			result = f.Mul(result, base)
		}
		base = f.Mul(base, base)
		k >>= 1
	}

	return result
}

// IsIrreducible reports whether the reducing polynomial is irreducible over GF(2),
// i.e. whether this Field is a field rather than just a ring.
// Implementation (Ben-Or):
//   - For i = 1..n/2 compute u = x^(2^i) mod poly by repeated squaring and
//     require gcd(poly, u - x) = 1.
//
// Complexity:
//   - Time O(n³), Space O(1).
func (f *Field) IsIrreducible() bool {
	if f.degree == 1 {
		return true // x and x+1 are irreducible
	}
	const x = uint64(2) // the polynomial x; canonical because n >= 2
	u := x
	for i := uint(1); i <= f.degree/2; i++ {
		u = f.Mul(u, u) // u = x^(2^i)
		if polyGCD(f.poly, u^x) != 1 {
			return false
		}
	}

	return true
}

// String describes the field, e.g. "GF(2^8) mod 0x11b".
func (f *Field) String() string {
	return fmt.Sprintf("GF(2^%d) mod %#x", f.degree, f.poly)
}

// polyDivMod divides a by b as polynomials over GF(2). b must be nonzero.
func polyDivMod(a, b uint64) (q, r uint64) {
	db := bits.Len64(b) - 1
	r = a
	for r != 0 {
		shift := bits.Len64(r) - 1 - db
		if shift < 0 {
			break
		}
		q |= uint64(1) << uint(shift)
		r ^= b << uint(shift)
	}

	return q, r
}

// polyGCD returns gcd(a, b) over GF(2)[x]; gcd(a, 0) = a.
func polyGCD(a, b uint64) uint64 {
	for b != 0 {
		_, r := polyDivMod(a, b)
		a, b = b, r
	}

	return a
}
