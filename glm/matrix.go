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

// Matrices are stored column major. Matrix{C}x{R} holds C columns, each a
// Vector{R}; the square shapes drop the repeated dimension. Element (c, r)
// is m.C{c} component r.

// Matrix2 is a square matrix of two columns of Vector2.
type Matrix2[T BaseFloat] struct {
	C0, C1 Vector2[T]
}

// Matrix2x3 has two columns of Vector3: three rows and two columns.
type Matrix2x3[T BaseFloat] struct {
	C0, C1 Vector3[T]
}

// Matrix2x4 has two columns of Vector4: four rows and two columns.
type Matrix2x4[T BaseFloat] struct {
	C0, C1 Vector4[T]
}

// Matrix3x2 has three columns of Vector2: two rows and three columns.
type Matrix3x2[T BaseFloat] struct {
	C0, C1, C2 Vector2[T]
}

// Matrix3 is a square matrix of three columns of Vector3.
type Matrix3[T BaseFloat] struct {
	C0, C1, C2 Vector3[T]
}

// Matrix3x4 has three columns of Vector4: four rows and three columns.
type Matrix3x4[T BaseFloat] struct {
	C0, C1, C2 Vector4[T]
}

// Matrix4x2 has four columns of Vector2: two rows and four columns.
type Matrix4x2[T BaseFloat] struct {
	C0, C1, C2, C3 Vector2[T]
}

// Matrix4x3 has four columns of Vector3: three rows and four columns.
type Matrix4x3[T BaseFloat] struct {
	C0, C1, C2, C3 Vector3[T]
}

// Matrix4 is a square matrix of four columns of Vector4.
type Matrix4[T BaseFloat] struct {
	C0, C1, C2, C3 Vector4[T]
}

// GLSL names for the matrix types.
type (
	Mat2   = Matrix2[Float]
	Mat2x3 = Matrix2x3[Float]
	Mat2x4 = Matrix2x4[Float]
	Mat3x2 = Matrix3x2[Float]
	Mat3   = Matrix3[Float]
	Mat3x4 = Matrix3x4[Float]
	Mat4x2 = Matrix4x2[Float]
	Mat4x3 = Matrix4x3[Float]
	Mat4   = Matrix4[Float]

	DMat2   = Matrix2[Double]
	DMat2x3 = Matrix2x3[Double]
	DMat2x4 = Matrix2x4[Double]
	DMat3x2 = Matrix3x2[Double]
	DMat3   = Matrix3[Double]
	DMat3x4 = Matrix3x4[Double]
	DMat4x2 = Matrix4x2[Double]
	DMat4x3 = Matrix4x3[Double]
	DMat4   = Matrix4[Double]
)

// GenMat is implemented by every matrix type. C is the column vector type
// and N the transposed matrix type.
type GenMat[M any, T BaseFloat, C any, N any] interface {
	Col(i int) C
	Transpose() N
	MulC(n M) M
	Add(n M) M
	Sub(n M) M
	Neg() M
	MulS(s T) M
	IsCloseTo(n M, maxDiff T) bool
}

// GenSquareMat is implemented by Matrix2, Matrix3 and Matrix4.
type GenSquareMat[M any, T BaseFloat, C any] interface {
	GenMat[M, T, C, M]
	Determinant() T
	Inverse() (M, bool)
	Identity() M
	Trace() T
}

func matPrefix[T BaseFloat]() string {
	if is32[T]() {
		return "mat"
	}
	return "dmat"
}
