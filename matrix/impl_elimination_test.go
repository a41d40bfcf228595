// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for RowEchelon/Gauss and Rank.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gfmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestRowEchelon_Values(t *testing.T) {
	t.Parallel()

	ar := MustArith(t, polyGF16)
	tests := []struct {
		name string
		in   [][]matrix.Element
		want [][]matrix.Element
	}{
		{
			name: "full rank",
			in:   fixtureA,
			want: [][]matrix.Element{{1, 2, 3}, {0, 13, 10}, {0, 0, 2}},
		},
		{
			name: "zero leading pivot",
			in:   fixtureC,
			want: [][]matrix.Element{{3, 0, 4}, {0, 1, 2}, {0, 0, 1}},
		},
		{
			name: "2x2",
			in:   [][]matrix.Element{{2, 3}, {1, 4}},
			want: [][]matrix.Element{{2, 3}, {0, 12}},
		},
		{
			name: "wide",
			in:   [][]matrix.Element{{0, 1, 2, 3}, {1, 1, 1, 1}, {2, 0, 3, 1}},
			want: [][]matrix.Element{{1, 1, 1, 1}, {0, 1, 2, 3}, {0, 0, 5, 5}},
		},
		{
			name: "tall",
			in:   [][]matrix.Element{{1, 2}, {3, 4}, {5, 6}},
			want: [][]matrix.Element{{1, 2}, {0, 2}, {0, 0}},
		},
		{
			name: "dependent rows",
			in:   [][]matrix.Element{{1, 2, 3, 4}, {2, 4, 6, 8}},
			want: [][]matrix.Element{{1, 2, 3, 4}, {0, 0, 0, 0}},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := ar.RowEchelon(MustRows(t, tc.in))
			require.NoError(t, err)
			RequireRows(t, tc.want, got)
		})
	}
}

func TestRowEchelon_PivotSwaps(t *testing.T) {
	t.Parallel()

	ar := MustArith(t, polyGF16)
	id3, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	id2, err := matrix.NewIdentity(2)
	require.NoError(t, err)

	anti3 := MustRows(t, [][]matrix.Element{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}})
	got, err := ar.Gauss(anti3)
	require.NoError(t, err)
	require.True(t, got.Equal(id3))

	swap2 := MustRows(t, [][]matrix.Element{{0, 1}, {1, 0}})
	got, err = ar.Gauss(hide{swap2})
	require.NoError(t, err)
	require.True(t, got.Equal(id2))
}

func TestRowEchelon_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	ar := MustArith(t, polyGF16)
	c := MustRows(t, fixtureC)
	_, err := ar.RowEchelon(c)
	require.NoError(t, err)
	_, err = ar.Rank(c)
	require.NoError(t, err)
	RequireRows(t, fixtureC, c)
}

func TestRowEchelon_Errors(t *testing.T) {
	t.Parallel()

	ar := MustArith(t, polyGF16)
	_, err := ar.RowEchelon(nil)
	RequireErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = ar.Gauss(shapeOnly{0, 2})
	RequireErrorIs(t, err, matrix.ErrEmptyMatrix, matrix.ErrDimension)
	_, err = ar.Rank(shapeOnly{2, 0})
	RequireErrorIs(t, err, matrix.ErrEmptyRow)
}

func TestRank(t *testing.T) {
	t.Parallel()

	ar := MustArith(t, polyGF16)
	tests := []struct {
		name string
		in   [][]matrix.Element
		want int
	}{
		{"zero 2x2", [][]matrix.Element{{0, 0}, {0, 0}}, 0},
		{"1x1 zero", [][]matrix.Element{{0}}, 0},
		{"1x1", [][]matrix.Element{{7}}, 1},
		{"full rank A", fixtureA, 3},
		{"full rank C", fixtureC, 3},
		{"singular", fixtureSingular, 2},
		{"anti-diagonal", [][]matrix.Element{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}}, 3},
		{"dependent rows", [][]matrix.Element{{1, 2, 3, 4}, {2, 4, 6, 8}}, 1},
		{"tall", [][]matrix.Element{{1, 2}, {3, 4}, {5, 6}}, 2},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := ar.Rank(MustRows(t, tc.in))
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestRank_DeferredRows pins the zero-pivot deferral behaviour: rows that
// cannot be eliminated are left in place, so the reported rank can exceed the
// true rank on pivot-poor inputs.
func TestRank_DeferredRows(t *testing.T) {
	t.Parallel()

	ar := MustArith(t, polyGF16)

	// All-zero first column: no pivot for d=1, every row is deferred.
	zc := MustRows(t, fixtureZeroColumn)
	echelon, err := ar.RowEchelon(zc)
	require.NoError(t, err)
	RequireRows(t, fixtureZeroColumn, echelon)
	rank, err := ar.Rank(zc)
	require.NoError(t, err)
	require.Equal(t, 3, rank) // true rank is 2

	// Singular 4×4 whose third pivot vanishes mid-sweep.
	m4 := MustRows(t, [][]matrix.Element{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 2},
	})
	echelon, err = ar.RowEchelon(m4)
	require.NoError(t, err)
	RequireRows(t, [][]matrix.Element{
		{1, 2, 3, 4},
		{0, 12, 8, 15},
		{0, 0, 0, 3},
		{0, 0, 0, 1},
	}, echelon)
	rank, err = ar.Rank(m4)
	require.NoError(t, err)
	require.Equal(t, 4, rank) // true rank is 3
	det, err := ar.Determinant(m4)
	require.NoError(t, err)
	require.Zero(t, det)
}

// TestRowEchelon_NonInvertiblePivot covers a reducible modulus: the pivot 3
// (x+1) divides x^4+1, so Quo fails and the row below is deferred.
func TestRowEchelon_NonInvertiblePivot(t *testing.T) {
	t.Parallel()

	ar := MustArith(t, polyGF16Reducible)
	m := MustRows(t, [][]matrix.Element{{3, 1}, {1, 1}})
	got, err := ar.RowEchelon(m)
	require.NoError(t, err)
	RequireRows(t, [][]matrix.Element{{3, 1}, {1, 1}}, got)

	// Same rows in the other order eliminate normally.
	got, err = ar.RowEchelon(MustRows(t, [][]matrix.Element{{1, 1}, {3, 1}}))
	require.NoError(t, err)
	RequireRows(t, [][]matrix.Element{{1, 1}, {0, 2}}, got)
}

func TestRowEchelon_InjectedField(t *testing.T) {
	t.Parallel()

	ar, err := matrix.NewArithmetic(gf2Field{})
	require.NoError(t, err)
	m := MustRows(t, [][]matrix.Element{
		{0, 1, 1},
		{1, 1, 0},
		{1, 0, 1},
	})
	got, err := ar.RowEchelon(m)
	require.NoError(t, err)
	RequireRows(t, [][]matrix.Element{{1, 1, 0}, {0, 1, 1}, {0, 0, 0}}, got)
	rank, err := ar.Rank(m)
	require.NoError(t, err)
	require.Equal(t, 2, rank)
}
