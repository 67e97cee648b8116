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

package glm_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-glm/glm"
	"github.com/ajroetker/go-glm/glm/glmtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	tol32 glm.Float  = 1e-5
	tol64 glm.Double = 1e-9
)

func TestMatrixLayoutIsColumnMajor(t *testing.T) {
	m := glm.Mat3x2Of(1, 2, 3, 4, 5, 6)
	assert.Equal(t, glm.Vec2{1, 2}, m.Col(0))
	assert.Equal(t, glm.Vec2{5, 6}, m.C2)
	assert.Equal(t, glm.NewMatrix3x2(glm.Vec2{1, 2}, glm.Vec2{3, 4}, glm.Vec2{5, 6}), m)
	assert.Equal(t, [3]glm.Vec2{{1, 2}, {3, 4}, {5, 6}}, m.AsArray())

	m.SetCol(1, glm.Vec2{-1, -1})
	assert.Equal(t, glm.Vec2{-1, -1}, m.C1)
	m.AsArrayPtr()[0] = glm.Vec2{9, 9}
	assert.Equal(t, glm.Vec2{9, 9}, m.C0)

	assert.Panics(t, func() { m.Col(3) })
}

func TestMatrixMulV(t *testing.T) {
	m := glm.Mat3x2Of(1, 2, 3, 4, 5, 6)
	assert.Equal(t, glm.Vec2{8, 8}, m.MulV(glm.Vec3{-2, 0, 2}))
	assert.Equal(t, glm.Vec3{3, 7, 11}, m.LeftMulV(glm.Vec2{1, 1}))

	id := glm.Mat4{}.Identity()
	v := glm.Vec4{1, -2, 3, -4}
	assert.Equal(t, v, id.MulV(v))
	assert.Equal(t, v, id.LeftMulV(v))
}

func TestMatrixProduct(t *testing.T) {
	a := glm.Mat2Of(1, 2, 3, 4)
	b := glm.Mat2Of(5, 6, 7, 8)
	// Column j of a*b is a times column j of b.
	assert.Equal(t, glm.Mat2Of(23, 34, 31, 46), a.MulMatrix2(b))
	assert.Equal(t, glm.Mat2Of(5, 12, 21, 32), a.MulC(b))

	m32 := glm.Mat3x2Of(1, 2, 3, 4, 5, 6)
	m23 := glm.Mat2x3Of(1, 0, 1, 0, 1, 0)
	assert.Equal(t, glm.Mat2Of(6, 8, 3, 4), m32.MulMatrix2x3(m23))
}

func TestMatrixProductAssociative(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		a := glmtest.Rand[glm.DMat4](r, 4)
		b := glmtest.Rand[glm.DMat4](r, 4)
		v := glmtest.Rand[glm.DVec4](r, 4)
		glmtest.AssertCloseTo(t, a.MulV(b.MulV(v)), a.MulMatrix4(b).MulV(v), tol64)
	}
}

func TestTranspose(t *testing.T) {
	m := glm.Mat3x2Of(1, 2, 3, 4, 5, 6)
	assert.Equal(t, glm.Mat2x3Of(1, 3, 5, 2, 4, 6), m.Transpose())
	assert.Equal(t, m, glm.Transpose(glm.Transpose(m)))

	r := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		a := glmtest.Rand[glm.DMat3](r, 10)
		b := glmtest.Rand[glm.DMat3](r, 10)
		glmtest.AssertCloseTo(t, b.Transpose().MulMatrix3(a.Transpose()), a.MulMatrix3(b).Transpose(), tol64)
	}
}

func TestOuterProduct(t *testing.T) {
	assert.Equal(t, glm.Mat3x2Of(3, 6, 4, 8, 5, 10), glm.OuterProduct3x2(glm.Vec2{1, 2}, glm.Vec3{3, 4, 5}))
	assert.Equal(t, glm.Mat2Of(1, 0, 0, 0), glm.OuterProduct2x2(glm.Vec2{1, 0}, glm.Vec2{1, 0}))
}

func TestMatrixCompMult(t *testing.T) {
	a := glm.DMat2Of(1, 2, 3, 4)
	assert.Equal(t, glm.DMat2Of(1, 4, 9, 16), glm.MatrixCompMult(a, a))
}

func TestDeterminant(t *testing.T) {
	tests := []struct {
		name string
		got  glm.Double
		want glm.Double
	}{
		{"mat2", glm.Determinant(glm.DMat2Of(4, 5, 6, 7)), -2},
		{"mat3 identity", glm.Determinant(glm.DMat3{}.Identity()), 1},
		{"mat3", glm.Determinant(glm.DMat3Of(2, 0, 0, 1, 3, 0, 5, 7, 4)), 24},
		{"mat4 diagonal", glm.Determinant(glm.DMat4Of(1, 0, 0, 0, 0, 2, 0, 0, 0, 0, 3, 0, 0, 0, 0, 4)), 24},
		{"mat4 singular", glm.Determinant(glm.DMat4Of(1, 2, 3, 4, 2, 4, 6, 8, 0, 1, 0, 1, 1, 0, 0, 1)), 0},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
	assert.Equal(t, glm.Float(-2), glm.Mat2Of(4, 5, 6, 7).Determinant())
}

func TestIdentityAndTrace(t *testing.T) {
	id := glm.DMat3{}.Identity()
	assert.Equal(t, glm.DMat3Of(1, 0, 0, 0, 1, 0, 0, 0, 1), id)
	assert.Equal(t, glm.Double(3), id.Trace())
	assert.Equal(t, glm.Float(10), glm.Mat4Of(1, 0, 0, 0, 0, 2, 0, 0, 0, 0, 3, 0, 0, 0, 0, 4).Trace())
	assert.Equal(t, glm.Float(5), glm.Mat2Of(1, 9, 9, 4).Trace())
}

func TestInverse(t *testing.T) {
	inv, ok := glm.InverseOf(glm.Mat2Of(4, 5, 6, 7))
	require.True(t, ok)
	glmtest.AssertCloseTo(t, glm.Mat2Of(-3.5, 2.5, 3, -2), inv, tol32)

	_, ok = glm.Mat2Of(1, 2, 2, 4).Inverse()
	assert.False(t, ok)
	_, ok = glm.DMat3{}.Inverse()
	assert.False(t, ok)
}

func TestInverseRandom(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		m2 := glmtest.RandInvertible[glm.DMat2, glm.Double, glm.DVec2](r, 8)
		glmtest.AssertCloseTo(t, glm.DMat2{}.Identity(), m2.MulMatrix2(glm.Inverse(m2)), tol64)

		m3 := glmtest.RandInvertible[glm.DMat3, glm.Double, glm.DVec3](r, 8)
		glmtest.AssertCloseTo(t, glm.DMat3{}.Identity(), m3.MulMatrix3(glm.Inverse(m3)), tol64)

		m4 := glmtest.RandInvertible[glm.DMat4, glm.Double, glm.DVec4](r, 8)
		inv := glm.Inverse(m4)
		glmtest.AssertCloseTo(t, glm.DMat4{}.Identity(), m4.MulMatrix4(inv), tol64)
		glmtest.AssertCloseTo(t, glm.DMat4{}.Identity(), inv.MulMatrix4(m4), tol64)
	}
}

func TestInversePanicsWhenSingular(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok, "recovered %v", r)
		assert.True(t, errors.Is(err, glm.ErrSingularMatrix))
	}()
	glm.Inverse(glm.Mat2Of(1, 2, 2, 4))
}

func TestDecompose(t *testing.T) {
	m := glm.DMat4Of(
		0.177637, 0, 0.582154, 0,
		0, 0.608653, 0, 0,
		-0.582154, 0, 0.177637, 0,
		146.278, 0, -106.38, 1,
	)
	scale, orientation, translation, skew, perspective, ok := m.Decompose()
	require.True(t, ok)

	const tol glm.Double = 1e-5
	glmtest.AssertCloseTo(t, glm.DVec3{0.608653, 0.608653, 0.608653}, scale, tol)
	glmtest.AssertCloseTo(t, glm.DVec4{0, -0.595041, 0, 0.803695}, orientation, tol)
	glmtest.AssertCloseTo(t, glm.DVec3{146.278, 0, -106.38}, translation, tol)
	glmtest.AssertCloseTo(t, glm.DVec3{}, skew, tol)
	glmtest.AssertCloseTo(t, glm.DVec4{0, 0, 0, 1}, perspective, tol)
}

func TestDecomposeBranches(t *testing.T) {
	withW := glm.DMat4{}.Identity()
	withW.C0.W, withW.C1.W, withW.C2.W = 0.1, 0.2, 0.3

	tests := []struct {
		name        string
		m           glm.DMat4
		scale       glm.DVec3
		orientation glm.DVec4
		perspective glm.DVec4
	}{
		{"perspective", withW, glm.DVec3{1, 1, 1}, glm.DVec4{0, 0, 0, 1}, glm.DVec4{0.1, 0.2, 0.3, 1}},
		{"half turn x", glm.DMat4Of(1, 0, 0, 0, 0, -1, 0, 0, 0, 0, -1, 0, 0, 0, 0, 1),
			glm.DVec3{1, 1, 1}, glm.DVec4{1, 0, 0, 0}, glm.DVec4{0, 0, 0, 1}},
		{"half turn y", glm.DMat4Of(-1, 0, 0, 0, 0, 1, 0, 0, 0, 0, -1, 0, 0, 0, 0, 1),
			glm.DVec3{1, 1, 1}, glm.DVec4{0, 1, 0, 0}, glm.DVec4{0, 0, 0, 1}},
		{"half turn z", glm.DMat4Of(-1, 0, 0, 0, 0, -1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1),
			glm.DVec3{1, 1, 1}, glm.DVec4{0, 0, 1, 0}, glm.DVec4{0, 0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scale, orientation, translation, skew, perspective, ok := tt.m.Decompose()
			require.True(t, ok)
			glmtest.AssertCloseTo(t, tt.scale, scale, tol64)
			glmtest.AssertCloseTo(t, tt.orientation, orientation, tol64)
			glmtest.AssertCloseTo(t, tt.perspective, perspective, tol64)
			glmtest.AssertCloseTo(t, glm.DVec3{}, translation, tol64)
			glmtest.AssertCloseTo(t, glm.DVec3{}, skew, tol64)
		})
	}
}

func TestDecomposeMirrored(t *testing.T) {
	m := glm.DMat4Of(
		-2, 0, 0, 0,
		0, 3, 0, 0,
		0, 0, 4, 0,
		1, 2, 3, 1,
	)
	scale, orientation, translation, _, _, ok := m.Decompose()
	require.True(t, ok)
	glmtest.AssertCloseTo(t, glm.DVec3{-2, -3, -4}, scale, tol64)
	glmtest.AssertCloseTo(t, glm.DVec3{1, 2, 3}, translation, tol64)
	assert.InDelta(t, 1, float64(glm.Length(orientation)), 1e-12)
}

func TestDecomposeRejectsZeroW(t *testing.T) {
	m := glm.DMat4{}.Identity()
	m.C3.W = 0
	_, _, _, _, _, ok := m.Decompose()
	assert.False(t, ok)
}
