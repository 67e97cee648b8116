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

package glm

import "fmt"

// MatrixCompMult returns the element-wise product of x and y.
func MatrixCompMult[M GenMat[M, T, C, N], T BaseFloat, C, N any](x, y M) M {
	return x.MulC(y)
}

// Transpose returns the transpose of m.
func Transpose[M GenMat[M, T, C, N], T BaseFloat, C, N any](m M) N {
	return m.Transpose()
}

// Determinant returns the determinant of a square matrix.
func Determinant[M GenSquareMat[M, T, C], T BaseFloat, C any](m M) T {
	return m.Determinant()
}

// InverseOf returns the inverse of m and true, or the zero matrix and false
// when m is singular.
func InverseOf[M GenSquareMat[M, T, C], T BaseFloat, C any](m M) (M, bool) {
	return m.Inverse()
}

// Inverse returns the inverse of m. It panics with an error wrapping
// ErrSingularMatrix when m is singular; use InverseOf to test instead.
func Inverse[M GenSquareMat[M, T, C], T BaseFloat, C any](m M) M {
	inv, ok := m.Inverse()
	if !ok {
		panic(fmt.Errorf("%w: determinant of %v is %v", ErrSingularMatrix, m, m.Determinant()))
	}
	return inv
}
