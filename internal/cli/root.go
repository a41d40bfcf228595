// SPDX-License-Identifier: MIT

// Package cli implements the gfmatrix command tree.
//
// Every operation subcommand reads one operand document (see package
// document), runs a single matrix operation over the document's field and
// writes the result to stdout as text, YAML or TOML. Diagnostics go to stderr.
package cli

import (
	"fmt"
	"os"
	"runtime/debug"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gfmatrix/gf2n"
	"github.com/katalvlaran/gfmatrix/internal/document"
	"github.com/katalvlaran/gfmatrix/matrix"
)

// Version is filled at link time (-ldflags "-X ..."); empty otherwise.
var Version string

// options holds the persistent flags shared by all subcommands.
type options struct {
	poly    string
	input   string
	format  string
	verbose bool
}

// NewRootCommand builds a fresh gfmatrix command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "gfmatrix",
		Short: "Matrix arithmetic over GF(2^n).",
		Long: `Matrix arithmetic over a binary extension field GF(2^n).

Operands are read from a YAML or TOML document with the keys poly, a, b,
vector, scalar and exponent. The document's poly overrides --poly.`,
		Version:       version(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.poly, "poly", fmt.Sprintf("%#x", gf2n.AESPolynomial),
		"reducing polynomial, hex or decimal, used when the document sets none")
	pf.StringVarP(&opts.input, "input", "i", "-",
		"operand document (.yaml, .yml or .toml); - reads YAML from stdin")
	pf.StringVarP(&opts.format, "format", "f", string(document.FormatText),
		"output format: text, yaml or toml")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "increase logging verbosity")

	for _, op := range operations {
		root.AddCommand(newOperationCommand(opts, op))
	}
	root.AddCommand(newFieldCommand(opts))

	return root
}

// Execute runs the command tree on os.Args and returns the process exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		newLogger(os.Stderr, false).Error(err)
		return 1
	}

	return 0
}

func version() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}

	return "(unknown version)"
}

// parsePoly reads --poly; base prefixes (0x, 0b, 0o) are honoured.
func (o *options) parsePoly() (uint64, error) {
	poly, err := strconv.ParseUint(o.poly, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("--poly %q: %w", o.poly, err)
	}

	return poly, nil
}

// env is everything an operation needs: the loaded document, its field, the
// bound arithmetic and a result already tagged with the operation name.
type env struct {
	doc    *document.Document
	field  *gf2n.Field
	ar     *matrix.Arithmetic
	result *document.Result
	logger *log.Logger
}

// load resolves the flags and the input document into an env for op.
func (o *options) load(cmd *cobra.Command, op string, logger *log.Logger) (*env, error) {
	fallback, err := o.parsePoly()
	if err != nil {
		return nil, err
	}
	doc, err := document.Load(o.input, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	f, err := doc.Field(fallback)
	if err != nil {
		return nil, err
	}
	if !f.IsIrreducible() {
		logger.Warnf("%s: polynomial is reducible, some nonzero elements have no inverse", f)
	}
	if err = doc.Validate(f); err != nil {
		return nil, err
	}
	ar, err := matrix.NewArithmetic(f)
	if err != nil {
		return nil, err
	}
	logger.WithFields(log.Fields{
		"op":    op,
		"field": f.String(),
		"input": o.input,
	}).Debug("document loaded")

	return &env{
		doc:    doc,
		field:  f,
		ar:     ar,
		result: document.NewResult(op, f.Polynomial()),
		logger: logger,
	}, nil
}

// newFieldCommand reports the field selected by --poly.
func newFieldCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "field",
		Short: "describe the field selected by --poly",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			poly, err := opts.parsePoly()
			if err != nil {
				return err
			}
			f, err := gf2n.New(poly)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\nelements: %d\nirreducible: %t\n",
				f, f.Max()+1, f.IsIrreducible())

			return err
		},
	}
}
