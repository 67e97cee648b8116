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

// Command glmgen generates the fixed-arity boilerplate of package glm: the
// method sets of the nine matrix shapes, their multiply and transpose
// pairings, and vector swizzles.
//
// Usage:
//
//	glmgen -kind matrix -output matrix_gen.go
//	glmgen -kind swizzle -output swizzle_gen.go
//
// Or via go:generate in package glm:
//
//	//go:generate go run ../cmd/glmgen -kind matrix -output matrix_gen.go
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	kind       = flag.String("kind", "", "What to generate ("+strings.Join(availableKinds(), ",")+")")
	outputFile = flag.String("output", "", "Output file (required)")
	packageOut = flag.String("pkg", "glm", "Output package name")
)

func main() {
	flag.Parse()

	if *outputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -output flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		Kind:       *kind,
		OutputFile: *outputFile,
		PackageOut: *packageOut,
	}

	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %s code in %s\n", gen.Kind, gen.OutputFile)
}
