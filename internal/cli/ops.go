// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gfmatrix/internal/document"
	"github.com/katalvlaran/gfmatrix/matrix"
)

// operation is one document-driven subcommand.
type operation struct {
	name  string
	short string
	run   func(e *env) (*document.Result, error)
}

// operations lists the subcommands in help order.
var operations = []operation{
	{"add", "a + b", binary((*matrix.Arithmetic).Add)},
	{"sub", "a - b (identical to add in characteristic 2)", binary((*matrix.Arithmetic).Sub)},
	{"mul", "matrix product a × b", binary((*matrix.Arithmetic).Mul)},
	{"scale", "a · scalar", runScale},
	{"mulvec", "a · vector, as a column", runMulVec},
	{"pow", "a multiplied by itself exponent times", runPow},
	{"transpose", "transpose of a", unary((*matrix.Arithmetic).Transpose)},
	{"gauss", "row-echelon form of a", unary((*matrix.Arithmetic).Gauss)},
	{"rank", "rank of a", runRank},
	{"det", "determinant of square a", runDeterminant},
	{"solve", "x with a · x = vector", runSolve},
	{"inverse", "inverse of a (not implemented)", unary((*matrix.Arithmetic).Inverse)},
	{"image", "column space of a (not implemented)", runImage},
	{"kernel", "null space of a (not implemented)", runKernel},
	{"compare", "ordering of a and b (not implemented)", runCompare},
}

func newOperationCommand(opts *options, op operation) *cobra.Command {
	return &cobra.Command{
		Use:   op.name,
		Short: op.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
			format, err := document.ParseFormat(opts.format)
			if err != nil {
				return err
			}
			e, err := opts.load(cmd, op.name, logger)
			if err != nil {
				return err
			}

			start := time.Now()
			res, err := op.run(e)
			if err != nil {
				return fmt.Errorf("%s: %w", op.name, err)
			}
			logger.WithFields(log.Fields{
				"op":      op.name,
				"elapsed": time.Since(start),
			}).Debug("operation finished")

			return document.Encode(cmd.OutOrStdout(), res, format)
		},
	}
}

// operandA loads a and logs its shape.
func operandA(e *env) (*matrix.Dense, error) {
	a, err := e.doc.MatrixA()
	if err != nil {
		return nil, err
	}
	e.logger.Debugf("a: %d×%d", a.Rows(), a.Cols())

	return a, nil
}

func unary(fn func(*matrix.Arithmetic, matrix.Matrix) (*matrix.Dense, error)) func(*env) (*document.Result, error) {
	return func(e *env) (*document.Result, error) {
		a, err := operandA(e)
		if err != nil {
			return nil, err
		}
		m, err := fn(e.ar, a)
		if err != nil {
			return nil, err
		}

		return e.result.WithMatrix(m), nil
	}
}

func binary(fn func(*matrix.Arithmetic, matrix.Matrix, matrix.Matrix) (*matrix.Dense, error)) func(*env) (*document.Result, error) {
	return func(e *env) (*document.Result, error) {
		a, err := operandA(e)
		if err != nil {
			return nil, err
		}
		b, err := e.doc.MatrixB()
		if err != nil {
			return nil, err
		}
		m, err := fn(e.ar, a, b)
		if err != nil {
			return nil, err
		}

		return e.result.WithMatrix(m), nil
	}
}

func runScale(e *env) (*document.Result, error) {
	a, err := operandA(e)
	if err != nil {
		return nil, err
	}
	s, err := e.doc.RequireScalar()
	if err != nil {
		return nil, err
	}
	m, err := e.ar.Scale(a, s)
	if err != nil {
		return nil, err
	}

	return e.result.WithMatrix(m), nil
}

func runMulVec(e *env) (*document.Result, error) {
	a, err := operandA(e)
	if err != nil {
		return nil, err
	}
	v, err := e.doc.RequireVector()
	if err != nil {
		return nil, err
	}
	m, err := e.ar.MulVec(a, v)
	if err != nil {
		return nil, err
	}

	return e.result.WithMatrix(m), nil
}

func runPow(e *env) (*document.Result, error) {
	a, err := operandA(e)
	if err != nil {
		return nil, err
	}
	k, err := e.doc.RequireExponent()
	if err != nil {
		return nil, err
	}
	m, err := e.ar.Pow(a, k)
	if err != nil {
		return nil, err
	}

	return e.result.WithMatrix(m), nil
}

func runRank(e *env) (*document.Result, error) {
	a, err := operandA(e)
	if err != nil {
		return nil, err
	}
	r, err := e.ar.Rank(a)
	if err != nil {
		return nil, err
	}

	return e.result.WithRank(r), nil
}

func runDeterminant(e *env) (*document.Result, error) {
	a, err := operandA(e)
	if err != nil {
		return nil, err
	}
	if a.Rows() > 10 {
		e.logger.Warnf("determinant by cofactor expansion of a %d×%d matrix may take very long", a.Rows(), a.Cols())
	}
	d, err := e.ar.Determinant(a)
	if err != nil {
		return nil, err
	}

	return e.result.WithScalar(d), nil
}

func runSolve(e *env) (*document.Result, error) {
	a, err := operandA(e)
	if err != nil {
		return nil, err
	}
	v, err := e.doc.RequireVector()
	if err != nil {
		return nil, err
	}
	x, err := e.ar.Solve(a, v)
	if err != nil {
		return nil, err
	}

	return e.result.WithVector(x), nil
}

func runImage(e *env) (*document.Result, error) {
	a, err := operandA(e)
	if err != nil {
		return nil, err
	}
	v, err := e.ar.Image(a)
	if err != nil {
		return nil, err
	}

	return e.result.WithVector(v), nil
}

func runKernel(e *env) (*document.Result, error) {
	a, err := operandA(e)
	if err != nil {
		return nil, err
	}
	v, err := e.ar.Kernel(a)
	if err != nil {
		return nil, err
	}

	return e.result.WithVector(v), nil
}

func runCompare(e *env) (*document.Result, error) {
	a, err := operandA(e)
	if err != nil {
		return nil, err
	}
	b, err := e.doc.MatrixB()
	if err != nil {
		return nil, err
	}
	c, err := e.ar.Compare(a, b)
	if err != nil {
		return nil, err
	}

	return e.result.WithRank(c), nil
}
