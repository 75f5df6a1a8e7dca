// Copyright 2026 go-bitexpand Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command tablegen generates the byte expansion lookup table used by package expand.
//
// Usage:
//
//	tablegen -output table_gen.go -pkg expand
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/tablegen -output table_gen.go -pkg expand
//
// The table is computed with a bit-by-bit reference loop rather than the
// multiply-and-mask chain, so the package tests can check one against the other.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"golang.org/x/tools/imports"
)

var (
	outputFile = flag.String("output", "table_gen.go", "Output file")
	packageOut = flag.String("pkg", "expand", "Output package name")
	varName    = flag.String("var", "expansionTable", "Name of the generated table variable")
)

func main() {
	flag.Parse()

	src, err := generate(*outputFile, *packageOut, *varName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputFile, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: write table: %v\n", err)
		os.Exit(1)
	}
}

// reference expands v one bit at a time.
func reference(v uint8) uint32 {
	var out uint32
	for i := range 8 {
		if v&(1<<i) != 0 {
			out |= 0b111 << (3 * i)
		}
	}
	return out
}

func generate(filename, pkg, name string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by tablegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "// %s maps every byte to its 3x bit expansion.\n", name)
	fmt.Fprintf(&buf, "var %s = [256]uint32{\n", name)
	for row := 0; row < 256; row += 8 {
		buf.WriteByte('\t')
		for v := row; v < row+8; v++ {
			if v > row {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(&buf, "0x%06x,", reference(uint8(v)))
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")

	formatted, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", filename, err)
	}
	return formatted, nil
}
