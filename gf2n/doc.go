// SPDX-License-Identifier: MIT

// Package gf2n implements arithmetic over the binary extension field GF(2^n).
//
// An element is a polynomial over GF(2) stored as the bit pattern of a uint64:
// bit k is the coefficient of x^k. Every Field is bound to one reducing
// polynomial fixed at construction; its degree n (1..63) fixes the element
// width, so valid elements lie in [0, 2^n).
//
// Operations:
//
//   - Add / Sub: bitwise XOR (characteristic 2, so they coincide).
//   - Mul: shift-and-add multiplication with on-the-fly reduction.
//   - Inv / Div: extended Euclid over GF(2)[x]; Div reports ErrZeroDivisor
//     for a zero divisor and ErrNotInvertible when the reducing polynomial is
//     reducible and the divisor shares a factor with it.
//   - Quo: the same division in (value, ok) form for callers that treat a
//     failed division as an expected branch rather than an error.
//   - Exp: square-and-multiply exponentiation.
//
// A Field is immutable after New returns and is safe for concurrent use.
//
// Complexity:
//
//	Add/Sub O(1); Mul O(n); Inv/Div O(n²); Exp O(n·log k); IsIrreducible O(n³).
package gf2n
