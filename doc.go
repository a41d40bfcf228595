// Package gfmatrix is matrix arithmetic over binary extension fields GF(2^n):
// elements are polynomials over GF(2) reduced modulo a fixed polynomial of
// degree n, stored as the bits of a uint64.
//
// What is inside?
//
//	A small, dependency-light library plus a command-line front end:
//		• Field engine: add, multiply, invert and exponentiate in GF(2^n) for
//		  any reducing polynomial up to degree 63, with an irreducibility test
//		• Matrix primitives: add, subtract, transpose, scale, multiply,
//		  matrix-vector product and integer powers
//		• Elimination: row-echelon form with row-swap pivot recovery, rank
//		• Determinant by cofactor expansion, square system solving
//
// Everything is organized under these packages:
//
//	gf2n/              the concrete field engine (*gf2n.Field)
//	matrix/            Dense storage, validators and all matrix algorithms;
//	                   the field is injected through the matrix.Field interface
//	internal/document/ YAML / TOML operand documents and result encoding
//	internal/cli/      the gfmatrix command tree (cobra + logrus)
//	cmd/gfmatrix/      the gfmatrix binary
//
// Quick example, GF(16) with x^4 + x + 1:
//
//	ar, _ := matrix.NewArithmeticForPolynomial(0x13)
//	a := matrix.MustFromRows([][]matrix.Element{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
//	det, _ := ar.Determinant(a) // 9
//	x, _ := ar.Solve(a, []matrix.Element{1, 2, 3}) // [11 15 12]
//
// Inverse, Image, Kernel and Compare are declared but report
// matrix.ErrNotImplemented.
//
//	go install github.com/katalvlaran/gfmatrix/cmd/gfmatrix@latest
package gfmatrix
