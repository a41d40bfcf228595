// SPDX-License-Identifier: MIT

package document

import (
	"fmt"
	"io"
	"strconv"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gfmatrix/matrix"
)

// Result is the outcome of one operation. Exactly one of Matrix, Vector,
// Scalar or Rank is set.
type Result struct {
	Op     string             `yaml:"op" toml:"op"`
	Poly   string             `yaml:"poly" toml:"poly"`
	Matrix [][]matrix.Element `yaml:"matrix,omitempty" toml:"matrix,omitempty"`
	Vector []matrix.Element   `yaml:"vector,omitempty" toml:"vector,omitempty"`
	Scalar *matrix.Element    `yaml:"scalar,omitempty" toml:"scalar,omitempty"`
	Rank   *int               `yaml:"rank,omitempty" toml:"rank,omitempty"`
}

// NewResult starts a result for op computed modulo poly.
func NewResult(op string, poly uint64) *Result {
	return &Result{Op: op, Poly: fmt.Sprintf("%#x", poly)}
}

// WithMatrix sets a matrix outcome.
func (r *Result) WithMatrix(m *matrix.Dense) *Result {
	r.Matrix = m.ToRows()
	return r
}

// WithVector sets a vector outcome.
func (r *Result) WithVector(v []matrix.Element) *Result {
	r.Vector = append([]matrix.Element(nil), v...)
	return r
}

// WithScalar sets a scalar outcome.
func (r *Result) WithScalar(s matrix.Element) *Result {
	r.Scalar = &s
	return r
}

// WithRank sets a rank outcome.
func (r *Result) WithRank(rank int) *Result {
	r.Rank = &rank
	return r
}

// Encode writes r to w.
// Text output is the bare value: matrices in (*matrix.Dense).String form,
// vectors as a one-row matrix, scalars and ranks in decimal.
func Encode(w io.Writer, r *Result, format Format) error {
	switch format {
	case FormatText:
		text, err := r.text()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, text)
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("document: yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(r); err != nil {
			return fmt.Errorf("document: toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("output %q: %w", format, ErrUnknownFormat)
	}
}

// text renders matrices and vectors with (*matrix.Dense).String; a vector is
// a single row.
func (r *Result) text() (string, error) {
	var rows [][]matrix.Element
	switch {
	case r.Matrix != nil:
		rows = r.Matrix
	case r.Vector != nil:
		rows = [][]matrix.Element{r.Vector}
	case r.Scalar != nil:
		return strconv.FormatUint(*r.Scalar, 10) + "\n", nil
	case r.Rank != nil:
		return strconv.Itoa(*r.Rank) + "\n", nil
	default:
		return "", nil
	}
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return "", fmt.Errorf("document: result %s: %w", r.Op, err)
	}

	return m.String(), nil
}
