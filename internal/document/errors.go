// SPDX-License-Identifier: MIT
// Package document: sentinel error set.

package document

import "errors"

var (
	// ErrUnknownFormat is returned for a format name or file extension that is
	// neither YAML nor TOML (nor text, for output).
	ErrUnknownFormat = errors.New("document: unknown format")

	// ErrUnknownKey is returned when a document carries a key that is not part
	// of the matrix document schema.
	ErrUnknownKey = errors.New("document: unknown key")

	// ErrMissingKey is returned when an operation needs an operand the document
	// does not provide.
	ErrMissingKey = errors.New("document: missing key")
)
