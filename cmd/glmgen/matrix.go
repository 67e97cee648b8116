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
	"strconv"
	"strings"
)

var fields = []string{"X", "Y", "Z", "W"}

// shape is a matrix of Cols columns, each a vector of Rows components.
type shape struct {
	Cols, Rows int
}

// shapes lists every matrix type, ordered by columns and then rows.
var shapes = func() []shape {
	var s []shape
	for c := 2; c <= 4; c++ {
		for r := 2; r <= 4; r++ {
			s = append(s, shape{c, r})
		}
	}
	return s
}()

func (s shape) square() bool { return s.Cols == s.Rows }

// suffix is "3x2", or "3" for a square shape.
func (s shape) suffix() string {
	if s.square() {
		return fmt.Sprint(s.Cols)
	}
	return fmt.Sprintf("%dx%d", s.Cols, s.Rows)
}

func (s shape) name() string { return "Matrix" + s.suffix() }

func (s shape) typ() string { return s.name() + "[T]" }

func (s shape) colType() string { return vecType(s.Rows) }

func (s shape) transposed() shape { return shape{s.Rows, s.Cols} }

func vecType(n int) string { return fmt.Sprintf("Vector%d[T]", n) }

// colList expands format once per column, replacing every '#' with the
// column index.
func colList(n int, format string) []string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = strings.ReplaceAll(format, "#", strconv.Itoa(i))
	}
	return parts
}

// cols returns "m.C0, m.C1, ..." style lists.
func cols(n int, format string) string {
	return strings.Join(colList(n, format), ", ")
}

func emitMatrices(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "import (\n\t\"fmt\"\n\t\"math/rand\"\n\t\"reflect\"\n\t\"unsafe\"\n)\n")
	for _, s := range shapes {
		emitMatrix(buf, s)
	}
	for _, s := range shapes {
		emitOuterProduct(buf, s)
	}
}

func emitMatrix(buf *bytes.Buffer, s shape) {
	m, cv, n := s.typ(), s.colType(), s.Cols

	fmt.Fprintf(buf, "\n// New%s returns the matrix with the given columns.\n", s.name())
	fmt.Fprintf(buf, "func New%s[T BaseFloat](%s %s) %s {\n\treturn %s{%s}\n}\n",
		s.name(), cols(n, "c#"), cv, m, m, cols(n, "c#"))

	fmt.Fprintf(buf, "\n// %sFromArray copies the columns of a into a matrix.\n", s.name())
	fmt.Fprintf(buf, "func %sFromArray[T BaseFloat](a [%d]%s) %s {\n\treturn %s{%s}\n}\n",
		s.name(), n, cv, m, m, cols(n, "a[#]"))

	fmt.Fprintf(buf, "\n// AsArray returns the columns as an array.\n")
	fmt.Fprintf(buf, "func (m %s) AsArray() [%d]%s {\n\treturn [%d]%s{%s}\n}\n", m, n, cv, n, cv, cols(n, "m.C#"))

	fmt.Fprintf(buf, "\n// AsArrayPtr views m as an array of columns without copying.\n")
	fmt.Fprintf(buf, "func (m *%s) AsArrayPtr() *[%d]%s {\n\treturn (*[%d]%s)(unsafe.Pointer(m))\n}\n", m, n, cv, n, cv)

	fmt.Fprintf(buf, "\n// Col returns column i. It panics if i >= %d.\n", n)
	fmt.Fprintf(buf, "func (m %s) Col(i int) %s {\n\tswitch i {\n", m, cv)
	for i := 0; i < n; i++ {
		fmt.Fprintf(buf, "\tcase %d:\n\t\treturn m.C%d\n", i, i)
	}
	fmt.Fprintf(buf, "\t}\n\tpanic(indexError(\"column\", i, %d))\n}\n", n)

	fmt.Fprintf(buf, "\n// SetCol replaces column i. It panics if i >= %d.\n", n)
	fmt.Fprintf(buf, "func (m *%s) SetCol(i int, c %s) {\n\tswitch i {\n", m, cv)
	for i := 0; i < n; i++ {
		fmt.Fprintf(buf, "\tcase %d:\n\t\tm.C%d = c\n", i, i)
	}
	fmt.Fprintf(buf, "\tdefault:\n\t\tpanic(indexError(\"column\", i, %d))\n\t}\n}\n", n)

	for _, op := range []struct{ name, vec, doc string }{
		{"Add", "Add", "Add returns m + n element-wise."},
		{"Sub", "Sub", "Sub returns m - n element-wise."},
		{"MulC", "Mul", "MulC returns the element-wise product of m and n."},
		{"Div", "Div", "Div returns the element-wise quotient of m and n."},
		{"Rem", "Rem", "Rem returns the element-wise truncated remainder of m and n."},
	} {
		fmt.Fprintf(buf, "\n// %s\n", op.doc)
		fmt.Fprintf(buf, "func (m %s) %s(n %s) %s {\n\treturn %s{%s}\n}\n",
			m, op.name, m, m, m, cols(n, "m.C#."+op.vec+"(n.C#)"))
	}

	fmt.Fprintf(buf, "\nfunc (m %s) Neg() %s {\n\treturn %s{%s}\n}\n", m, m, m, cols(n, "m.C#.Neg()"))

	for _, op := range []string{"AddS", "SubS", "MulS", "DivS", "RemS"} {
		fmt.Fprintf(buf, "\nfunc (m %s) %s(s T) %s {\n\treturn %s{%s}\n}\n", m, op, m, m, cols(n, "m.C#."+op+"(s)"))
	}

	fmt.Fprintf(buf, "\n// Map applies f to every column.\n")
	fmt.Fprintf(buf, "func (m %s) Map(f func(%s) %s) %s {\n\treturn %s{%s}\n}\n", m, cv, cv, m, m, cols(n, "f(m.C#)"))

	fmt.Fprintf(buf, "\n// IsCloseTo reports whether every element of m is within maxDiff of n.\n")
	fmt.Fprintf(buf, "func (m %s) IsCloseTo(n %s, maxDiff T) bool {\n\treturn %s\n}\n",
		m, m, strings.Join(colList(n, "m.C#.IsCloseTo(n.C#, maxDiff)"), " &&\n\t\t"))

	fmt.Fprintf(buf, "\n// IsApproxEq is IsCloseTo with the machine epsilon of T.\n")
	fmt.Fprintf(buf, "func (m %s) IsApproxEq(n %s) bool {\n\treturn m.IsCloseTo(n, Epsilon[T]())\n}\n", m, m)

	t := s.transposed()
	fmt.Fprintf(buf, "\n// Transpose returns the %s whose columns are the rows of m.\n", t.name())
	fmt.Fprintf(buf, "func (m %s) Transpose() %s {\n\treturn %s{\n", m, t.typ(), t.typ())
	for r := 0; r < s.Rows; r++ {
		parts := make([]string, n)
		for c := range parts {
			parts[c] = fmt.Sprintf("m.C%d.%s", c, fields[r])
		}
		fmt.Fprintf(buf, "\t\t%s{%s},\n", t.colType(), strings.Join(parts, ", "))
	}
	fmt.Fprintf(buf, "\t}\n}\n")

	fmt.Fprintf(buf, "\n// MulV returns the matrix-vector product m * v.\n")
	fmt.Fprintf(buf, "func (m %s) MulV(v %s) %s {\n\treturn %s{\n", m, vecType(n), cv, cv)
	for r := 0; r < s.Rows; r++ {
		parts := make([]string, n)
		for c := range parts {
			parts[c] = fmt.Sprintf("m.C%d.%s*v.%s", c, fields[r], fields[c])
		}
		fmt.Fprintf(buf, "\t\t%s,\n", strings.Join(parts, " + "))
	}
	fmt.Fprintf(buf, "\t}\n}\n")

	fmt.Fprintf(buf, "\n// LeftMulV returns the row-vector product v * m.\n")
	fmt.Fprintf(buf, "func (m %s) LeftMulV(v %s) %s {\n\treturn %s{\n", m, cv, vecType(n), vecType(n))
	for c := 0; c < n; c++ {
		parts := make([]string, s.Rows)
		for r := range parts {
			parts[r] = fmt.Sprintf("v.%s*m.C%d.%s", fields[r], c, fields[r])
		}
		fmt.Fprintf(buf, "\t\t%s,\n", strings.Join(parts, " + "))
	}
	fmt.Fprintf(buf, "\t}\n}\n")

	// m is the left operand, so the right one needs s.Cols rows.
	for k := 2; k <= 4; k++ {
		rhs := shape{k, s.Cols}
		out := shape{k, s.Rows}
		fmt.Fprintf(buf, "\n// Mul%s returns the matrix product m * n.\n", rhs.name())
		fmt.Fprintf(buf, "func (m %s) Mul%s(n %s) %s {\n\treturn %s{%s}\n}\n",
			m, rhs.name(), rhs.typ(), out.typ(), out.typ(), cols(k, "m.MulV(n.C#)"))
	}

	fmt.Fprintf(buf, "\nfunc (m %s) String() string {\n", m)
	fmt.Fprintf(buf, "\treturn fmt.Sprintf(\"%%s%s(%s)\", matPrefix[T](), %s)\n}\n",
		s.suffix(), strings.TrimSuffix(strings.Repeat("%v, ", n), ", "), cols(n, "m.C#"))

	fmt.Fprintf(buf, "\n// Generate implements quick.Generator.\n")
	fmt.Fprintf(buf, "func (%s) Generate(r *rand.Rand, size int) reflect.Value {\n", m)
	fmt.Fprintf(buf, "\tcol := func() %s {\n\t\treturn %s{%s}\n\t}\n", cv, cv,
		strings.TrimSuffix(strings.Repeat("randOf[T](r, size), ", s.Rows), ", "))
	fmt.Fprintf(buf, "\treturn reflect.ValueOf(%s{%s})\n}\n", m, strings.TrimSuffix(strings.Repeat("col(), ", n), ", "))
}

// emitOuterProduct writes OuterProduct{C}x{R}, the product of a column
// vector c and a row vector r.
func emitOuterProduct(buf *bytes.Buffer, s shape) {
	m := s.typ()
	name := fmt.Sprintf("OuterProduct%dx%d", s.Cols, s.Rows)
	fmt.Fprintf(buf, "\n// %s treats c as a column and r as a row and returns c * r.\n", name)
	parts := make([]string, s.Cols)
	for i := range parts {
		parts[i] = fmt.Sprintf("c.MulS(r.%s)", fields[i])
	}
	fmt.Fprintf(buf, "func %s[T BaseFloat](c %s, r %s) %s {\n\treturn %s{%s}\n}\n",
		name, s.colType(), vecType(s.Cols), m, m, strings.Join(parts, ", "))
}
