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
	"strings"
)

// emitSwizzles writes the two and three component swizzles of every
// vector type, such as v.ZY() or v.XXW().
func emitSwizzles(buf *bytes.Buffer) {
	for n := 2; n <= 4; n++ {
		emitSwizzleSet(buf, vecType(n), "Vector%d[T]", n)
	}
	for n := 2; n <= 4; n++ {
		emitSwizzleSet(buf, fmt.Sprintf("BVector%d", n), "BVector%d", n)
	}
}

func emitSwizzleSet(buf *bytes.Buffer, recv, resultFormat string, n int) {
	fmt.Fprintf(buf, "\n// Swizzles of %s.\n", recv)
	for _, size := range []int{2, 3} {
		result := fmt.Sprintf(resultFormat, size)
		for _, combo := range combos(fields[:n], size) {
			parts := make([]string, size)
			for i, f := range combo {
				parts[i] = "v." + f
			}
			fmt.Fprintf(buf, "\nfunc (v %s) %s() %s { return %s{%s} }\n",
				recv, strings.Join(combo, ""), result, result, strings.Join(parts, ", "))
		}
	}
}

// combos returns every sequence of length size drawn from set, repetition
// allowed, in lexicographic order of set.
func combos(set []string, size int) [][]string {
	if size == 0 {
		return [][]string{nil}
	}
	var out [][]string
	for _, head := range set {
		for _, tail := range combos(set, size-1) {
			out = append(out, append([]string{head}, tail...))
		}
	}
	return out
}
