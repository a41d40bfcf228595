// SPDX-License-Identifier: MIT

// Package document reads matrix operand documents and writes operation results.
//
// A document names the reducing polynomial and the operands of one operation:
//
//	poly: 0x13
//	a: [[1, 2, 3], [4, 5, 6], [7, 8, 9]]
//	b: [[0, 1, 2], [3, 0, 4], [5, 6, 1]]
//	vector: [1, 2, 3]
//	scalar: 3
//	exponent: 2
//
// The same keys are accepted in TOML. Every key except a is optional; which
// ones are required depends on the operation.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gfmatrix/gf2n"
	"github.com/katalvlaran/gfmatrix/matrix"
)

// Format is a document encoding.
type Format string

// Supported formats. FormatText is output-only.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Document keys, used in error messages.
const (
	KeyPoly     = "poly"
	KeyA        = "a"
	KeyB        = "b"
	KeyVector   = "vector"
	KeyScalar   = "scalar"
	KeyExponent = "exponent"
)

// ParseFormat maps a format name (case-insensitive) to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatText, FormatYAML, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%q: %w", name, ErrUnknownFormat)
}

// FormatOf picks the input format from a file extension.
// "-" (standard input) and extension-less paths are read as YAML.
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml", "":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%s: extension %q: %w", path, ext, ErrUnknownFormat)
	}
}

// Document holds the operands of one matrix operation.
// Poly is nil when the document does not set it; the caller's default applies.
type Document struct {
	Poly     *uint64            `yaml:"poly,omitempty" toml:"poly"`
	A        [][]matrix.Element `yaml:"a" toml:"a"`
	B        [][]matrix.Element `yaml:"b,omitempty" toml:"b"`
	Vector   []matrix.Element   `yaml:"vector,omitempty" toml:"vector"`
	Scalar   *matrix.Element    `yaml:"scalar,omitempty" toml:"scalar"`
	Exponent *int               `yaml:"exponent,omitempty" toml:"exponent"`
}

// knownKeys is the set of top-level keys a document may carry.
var knownKeys = map[string]bool{
	KeyPoly: true, KeyA: true, KeyB: true,
	KeyVector: true, KeyScalar: true, KeyExponent: true,
}

// Parse decodes a document. Unknown keys are rejected in both formats.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		var root yaml.Node
		if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&root); err != nil {
			if errors.Is(err, io.EOF) {
				return &doc, nil // empty document
			}
			return nil, fmt.Errorf("document: yaml: %w", err)
		}
		if err := checkYAMLKeys(&root); err != nil {
			return nil, err
		}
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("document: yaml: %w", err) // *yaml.TypeError for bad values
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, fmt.Errorf("document: toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%s: %w", undecoded[0], ErrUnknownKey)
		}
	default:
		return nil, fmt.Errorf("input %q: %w", format, ErrUnknownFormat)
	}

	return &doc, nil
}

// checkYAMLKeys rejects top-level mapping keys outside knownKeys.
// Non-mapping documents are left to the decoder to report.
func checkYAMLKeys(root *yaml.Node) error {
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil
	}
	m := root.Content[0]
	if m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		key := m.Content[i]
		if !knownKeys[key.Value] {
			return fmt.Errorf("line %d: %q: %w", key.Line, key.Value, ErrUnknownKey)
		}
	}

	return nil
}

// Load reads and decodes the document at path; "-" reads from stdin.
func Load(path string, stdin io.Reader) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	var data []byte
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("document: read %s: %w", path, err)
	}

	return Parse(data, format)
}

// Field builds the field for this document: its own poly when set (even to
// an invalid value such as 0), fallback otherwise.
func (d *Document) Field(fallback uint64) (*gf2n.Field, error) {
	if d.Poly == nil {
		return gf2n.New(fallback)
	}
	f, err := gf2n.New(*d.Poly)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KeyPoly, err)
	}

	return f, nil
}

// Validate checks that every element in the document is canonical for f.
func (d *Document) Validate(f *gf2n.Field) error {
	if err := checkRows(f, KeyA, d.A); err != nil {
		return err
	}
	if err := checkRows(f, KeyB, d.B); err != nil {
		return err
	}
	for i, v := range d.Vector {
		if err := f.Check(v); err != nil {
			return fmt.Errorf("%s[%d]: %w", KeyVector, i, err)
		}
	}
	if d.Scalar != nil {
		if err := f.Check(*d.Scalar); err != nil {
			return fmt.Errorf("%s: %w", KeyScalar, err)
		}
	}

	return nil
}

func checkRows(f *gf2n.Field, key string, rows [][]matrix.Element) error {
	for i, row := range rows {
		for j, v := range row {
			if err := f.Check(v); err != nil {
				return fmt.Errorf("%s[%d][%d]: %w", key, i, j, err)
			}
		}
	}

	return nil
}

// MatrixA returns operand a as a matrix.
func (d *Document) MatrixA() (*matrix.Dense, error) { return toMatrix(KeyA, d.A) }

// MatrixB returns operand b as a matrix.
func (d *Document) MatrixB() (*matrix.Dense, error) { return toMatrix(KeyB, d.B) }

func toMatrix(key string, rows [][]matrix.Element) (*matrix.Dense, error) {
	if rows == nil {
		return nil, fmt.Errorf("%s: %w", key, ErrMissingKey)
	}
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}

	return m, nil
}

// RequireVector returns the vector operand.
func (d *Document) RequireVector() ([]matrix.Element, error) {
	if d.Vector == nil {
		return nil, fmt.Errorf("%s: %w", KeyVector, ErrMissingKey)
	}

	return d.Vector, nil
}

// RequireScalar returns the scalar operand.
func (d *Document) RequireScalar() (matrix.Element, error) {
	if d.Scalar == nil {
		return 0, fmt.Errorf("%s: %w", KeyScalar, ErrMissingKey)
	}

	return *d.Scalar, nil
}

// RequireExponent returns the exponent operand. Its sign is checked by Pow.
func (d *Document) RequireExponent() (int, error) {
	if d.Exponent == nil {
		return 0, fmt.Errorf("%s: %w", KeyExponent, ErrMissingKey)
	}

	return *d.Exponent, nil
}
