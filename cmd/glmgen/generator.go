// Copyright 2025 go-glm Authors
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

package main

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"golang.org/x/tools/imports"
)

// emitters maps each -kind value to the function writing its body.
var emitters = map[string]func(buf *bytes.Buffer){
	"matrix":  emitMatrices,
	"swizzle": emitSwizzles,
}

func availableKinds() []string {
	kinds := make([]string, 0, len(emitters))
	for k := range emitters {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Generator renders one generated file.
type Generator struct {
	Kind       string // "matrix" or "swizzle"
	OutputFile string // Destination path
	PackageOut string // Package clause of the output
}

// Generate returns the formatted source without writing it.
func (g *Generator) Generate() ([]byte, error) {
	emit, ok := emitters[g.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q (want one of %v)", g.Kind, availableKinds())
	}
	pkg := g.PackageOut
	if pkg == "" {
		pkg = "glm"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by glmgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	emit(&buf)

	// imports.Process gofmts the file and settles the import block.
	formatted, err := imports.Process(g.OutputFile, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", g.Kind, err)
	}
	return formatted, nil
}

// Run generates the file and writes it to OutputFile.
func (g *Generator) Run() error {
	src, err := g.Generate()
	if err != nil {
		return err
	}
	if err := os.WriteFile(g.OutputFile, src, 0644); err != nil {
		return fmt.Errorf("write %s: %w", g.OutputFile, err)
	}
	return nil
}
