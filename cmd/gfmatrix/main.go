// SPDX-License-Identifier: MIT

// Command gfmatrix runs matrix operations over GF(2^n) on YAML or TOML
// operand documents.
//
//	gfmatrix det --input m.yaml
//	gfmatrix solve --poly 0x13 --format yaml < system.yaml
package main

import (
	"os"

	"github.com/katalvlaran/gfmatrix/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
