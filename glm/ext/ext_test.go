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

package ext_test

import (
	"math"
	"testing"

	"github.com/ajroetker/go-glm/glm"
	"github.com/ajroetker/go-glm/glm/ext"
	"github.com/ajroetker/go-glm/glm/glmtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"
)

func TestTranslate(t *testing.T) {
	v := glm.Vec3{1, 3, 2}
	m := ext.Translate(glm.Mat4{}.Identity(), v)
	assert.Equal(t, glm.Vec4{1, 0, 0, 0}, m.C0)
	assert.Equal(t, glm.Vec4{0, 1, 0, 0}, m.C1)
	assert.Equal(t, glm.Vec4{0, 0, 1, 0}, m.C2)
	assert.Equal(t, v.Extend(1), m.C3)

	p := m.MulV(glm.Vec4{1, 1, 1, 1})
	assert.Equal(t, glm.Vec4{2, 4, 3, 1}, p)
}

func TestPerspective(t *testing.T) {
	p := ext.Perspective[glm.Double](math.Pi/2, 2, 1, 10)
	glmtest.AssertCloseTo(t, 0.5, p.C0.X, 1e-12)
	glmtest.AssertCloseTo(t, 1, p.C1.Y, 1e-12)
	assert.Equal(t, glm.Double(-1), p.C2.W)

	near := p.MulV(glm.DVec4{0, 0, -1, 1})
	far := p.MulV(glm.DVec4{0, 0, -10, 1})
	glmtest.AssertCloseTo(t, -1, near.Z/near.W, 1e-12)
	glmtest.AssertCloseTo(t, 1, far.Z/far.W, 1e-12)

	f := ext.Perspective[glm.Float](math.Pi*2*45/360, 1920.0/1080.0, 0.1, 100)
	assert.False(t, glm.Any(glm.IsNaN(f.C0)))
	assert.InDelta(t, 1/math.Tan(math.Pi/8), float64(f.C1.Y), 1e-5)
}

func TestRotate(t *testing.T) {
	r := ext.Rotate(glm.DMat4{}.Identity(), math.Pi/2, glm.DVec3{0, 0, 1})
	glmtest.AssertCloseTo(t, glm.DVec4{0, 1, 0, 0}, r.MulV(glm.DVec4{1, 0, 0, 0}), 1e-12)
	glmtest.AssertCloseTo(t, glm.DVec4{-1, 0, 0, 0}, r.MulV(glm.DVec4{0, 1, 0, 0}), 1e-12)
	glmtest.AssertCloseTo(t, glm.DVec4{0, 0, 1, 1}, r.MulV(glm.DVec4{0, 0, 1, 1}), 1e-12)

	// The axis does not need to be normalized and translation is kept.
	m := ext.Translate(glm.DMat4{}.Identity(), glm.DVec3{5, 0, 0})
	r = ext.Rotate(m, math.Pi, glm.DVec3{0, 3, 0})
	glmtest.AssertCloseTo(t, glm.DVec4{4, 0, 0, 1}, r.MulV(glm.DVec4{1, 0, 0, 1}), 1e-12)
	glmtest.AssertCloseTo(t, 1, glm.Determinant(r), 1e-12)
}

func TestLookAt(t *testing.T) {
	eye := glm.DVec3{0, 0, 5}
	view := ext.LookAt(eye, glm.DVec3{}, glm.DVec3{0, 2, 0})
	glmtest.AssertCloseTo(t, glm.DVec4{0, 0, 0, 1}, view.MulV(eye.Extend(1)), 1e-12)
	glmtest.AssertCloseTo(t, glm.DVec4{0, 0, -5, 1}, view.MulV(glm.DVec4{0, 0, 0, 1}), 1e-12)
	glmtest.AssertCloseTo(t, glm.DVec4{1, 0, 0, 0}, view.MulV(glm.DVec4{1, 0, 0, 0}), 1e-12)
}

func TestGeometric(t *testing.T) {
	assert.Equal(t, glm.Float(9), ext.SqLength(glm.Vec3{1, 2, 2}))
	assert.InDelta(t, 1.0/3, float64(ext.RecipLength(glm.DVec3{1, 2, 2})), 1e-15)
	glmtest.AssertCloseTo(t, glm.DVec2{6, 8}, ext.NormalizeTo(glm.DVec2{3, 4}, 10), 1e-12)

	assert.Equal(t, glm.DVec2{2, 0}, ext.Projection(glm.DVec2{2, 3}, glm.DVec2{1, 0}))
	assert.Equal(t, glm.DVec2{}, ext.Projection(glm.DVec2{2, 3}, glm.DVec2{}))

	assert.True(t, ext.IsPerpendicular(glm.Vec2{1, 0}, glm.Vec2{0, 1}))
	assert.False(t, ext.IsPerpendicular(glm.Vec2{1, 0}, glm.Vec2{1, 1}))
}

func TestAngle(t *testing.T) {
	tests := []struct {
		name string
		x, y glm.DVec3
		want float64
	}{
		{"perpendicular", glm.DVec3{1, 0, 0}, glm.DVec3{0, 2, 0}, math.Pi / 2},
		{"parallel", glm.DVec3{1, 1, 0}, glm.DVec3{3, 3, 0}, 0},
		{"opposite", glm.DVec3{0, 0, 1}, glm.DVec3{0, 0, -4}, math.Pi},
		{"diagonal", glm.DVec3{1, 0, 0}, glm.DVec3{1, 1, 0}, math.Pi / 4},
		{"zero", glm.DVec3{}, glm.DVec3{1, 0, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, float64(ext.Angle(tt.x, tt.y)), 1e-7)
		})
	}
}

func TestPowers(t *testing.T) {
	assert.Equal(t, glm.IVec2{4, 9}, ext.Pow2(glm.IVec2{-2, 3}))
	assert.Equal(t, glm.Double(-8), ext.Pow3(glm.Double(-2)))
	assert.Equal(t, glm.DVec2{1024, 1.0 / 1024}, ext.Powi(glm.DVec2{2, 0.5}, 10))
	glmtest.AssertCloseTo(t, glm.DVec3{3, -2, 0.5}, ext.Cbrt(glm.DVec3{27, -8, 0.125}), 1e-12)
	assert.Equal(t, glm.Vec2{0.5, -4}, ext.Recip(glm.Vec2{2, -0.25}))
}

func TestSinCos(t *testing.T) {
	s, c := ext.SinCos(glm.DVec2{0, math.Pi / 2})
	glmtest.AssertCloseTo(t, glm.DVec2{0, 1}, s, 1e-15)
	glmtest.AssertCloseTo(t, glm.DVec2{1, 0}, c, 1e-15)

	sf, cf := ext.SinCos(glm.Float(math.Pi / 6))
	assert.InDelta(t, 0.5, float64(sf), 1e-6)
	assert.InDelta(t, math.Sqrt(3)/2, float64(cf), 1e-6)
}

func TestMatrixHelpers(t *testing.T) {
	assert.Equal(t, glm.Double(4), ext.Trace(glm.DMat4{}.Identity()))
	assert.True(t, ext.IsInvertible(glm.Mat2Of(4, 5, 6, 7)))
	assert.False(t, ext.IsInvertible(glm.Mat2Of(1, 2, 2, 4)))
}

func TestConstants(t *testing.T) {
	tests := []struct {
		name string
		got  glm.Double
		want float64
	}{
		{"Pi", ext.Pi[glm.Double, glm.Double](), math.Pi},
		{"Tau", ext.Tau[glm.Double, glm.Double](), 2 * math.Pi},
		{"HalfPi", ext.HalfPi[glm.Double, glm.Double](), math.Pi / 2},
		{"RootPi", ext.RootPi[glm.Double, glm.Double](), math.Sqrt(math.Pi)},
		{"RootHalfPi", ext.RootHalfPi[glm.Double, glm.Double](), math.Sqrt(math.Pi / 2)},
		{"RootTau", ext.RootTau[glm.Double, glm.Double](), math.Sqrt(2 * math.Pi)},
		{"RootLnFour", ext.RootLnFour[glm.Double, glm.Double](), math.Sqrt(math.Log(4))},
		{"E", ext.E[glm.Double, glm.Double](), math.E},
		{"Euler", ext.Euler[glm.Double, glm.Double](), 0.5772156649015329},
		{"RootThree", ext.RootThree[glm.Double, glm.Double](), math.Sqrt(3)},
		{"RootFive", ext.RootFive[glm.Double, glm.Double](), math.Sqrt(5)},
		{"LnLnTwo", ext.LnLnTwo[glm.Double, glm.Double](), math.Log(math.Ln2)},
		{"GoldenRatio", ext.GoldenRatio[glm.Double, glm.Double](), (1 + math.Sqrt(5)) / 2},
		{"OneThird", ext.OneThird[glm.Double, glm.Double](), 1.0 / 3},
		{"OneOverRootTwo", ext.OneOverRootTwo[glm.Double, glm.Double](), 1 / math.Sqrt2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, float64(tt.got), 1e-15)
		})
	}

	assert.Equal(t, glm.Vec3{math.Pi, math.Pi, math.Pi}, ext.Pi[glm.Vec3, glm.Float]())
	assert.Equal(t, glm.Epsilon[glm.Float](), ext.Epsilon[glm.Float, glm.Float]())
}

func TestInterop(t *testing.T) {
	v := glm.Vec3{1, 2, 3}
	assert.Equal(t, f32.Vec3{1, 2, 3}, ext.Vec3ToF32(v))
	assert.Equal(t, v, ext.Vec3FromF32(ext.Vec3ToF32(v)))
	assert.Equal(t, glm.Vec2{4, 5}, ext.Vec2FromF32(f32.Vec2{4, 5}))
	assert.Equal(t, f32.Vec4{1, 2, 3, 4}, ext.Vec4ToF32(glm.Vec4{1, 2, 3, 4}))

	// f32 matrices are row-major.
	m := glm.Mat3Of(1, 2, 3, 4, 5, 6, 7, 8, 9)
	a := ext.Mat3ToF32(m)
	require.Equal(t, f32.Mat3{1, 4, 7, 2, 5, 8, 3, 6, 9}, a)
	assert.Equal(t, m, ext.Mat3FromF32(a))

	m4 := ext.Translate(glm.Mat4{}.Identity(), glm.Vec3{7, 8, 9})
	a4 := ext.Mat4ToF32(m4)
	assert.Equal(t, float32(7), a4[3])
	assert.Equal(t, float32(9), a4[11])
	assert.Equal(t, m4, ext.Mat4FromF32(a4))
}
