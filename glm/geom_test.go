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

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
)

func TestDot(t *testing.T) {
	assert.Equal(t, Float(11), Dot(Vec2{1, 2}, Vec2{3, 4}))
	assert.Equal(t, Float(11), Dot(Vec3{1, 2, 3}, Vec3{2, 0, 3}))
	assert.Equal(t, Double(6), Dot(Double(2), 3))
	assert.Equal(t, Double(-2), Dot(DVec2{1, 1}, DVec2{-1, -1}))
}

func TestLengthDistance(t *testing.T) {
	assert.Equal(t, Float(5), Length(Vec2{3, 4}))
	assert.Equal(t, Double(3), Length(Double(-3)))
	assert.Equal(t, Double(13), Distance(DVec3{1, 2, 3}, DVec3{1, 14, 8}))
}

func TestCross(t *testing.T) {
	assert.Equal(t, Vec3{0, 0, 1}, Cross(Vec3{1, 0, 0}, Vec3{0, 1, 0}))
	assert.Equal(t, Vec3{0, 0, -1}, Cross(Vec3{0, 1, 0}, Vec3{1, 0, 0}))
	assert.Equal(t, DVec3{-3, 6, -3}, Cross(DVec3{1, 2, 3}, DVec3{4, 5, 6}))
}

func TestCrossIsPerpendicular(t *testing.T) {
	f := func(a, b [3]int8) bool {
		x := DVec3{Double(a[0]), Double(a[1]), Double(a[2])}
		y := DVec3{Double(b[0]), Double(b[1]), Double(b[2])}
		c := Cross(x, y)
		return Dot(c, x) == 0 && Dot(c, y) == 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestNormalize(t *testing.T) {
	n := Normalize(DVec2{3, 4})
	assert.InDelta(t, 0.6, float64(n.X), 1e-15)
	assert.InDelta(t, 0.8, float64(n.Y), 1e-15)
	assert.InDelta(t, -1, float64(Normalize(Double(-7))), 1e-15)

	f := func(a [4]int16) bool {
		v := DVec4{Double(a[0]), Double(a[1]), Double(a[2]), Double(a[3])}
		if v == (DVec4{}) {
			return true
		}
		return math.Abs(float64(Length(Normalize(v)))-1) < 1e-12
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestFaceForward(t *testing.T) {
	n := Vec3{0, 0, 1}
	assert.Equal(t, n, FaceForward(n, Vec3{0, 0, -1}, n))
	assert.Equal(t, Vec3{0, 0, -1}, FaceForward(n, Vec3{0, 0, 1}, n))
}

func TestReflect(t *testing.T) {
	assert.Equal(t, Vec2{1, 1}, Reflect(Vec2{1, -1}, Vec2{0, 1}))
	assert.Equal(t, DVec3{-1, 0, 0}, Reflect(DVec3{1, 0, 0}, DVec3{1, 0, 0}))
}

func TestRefract(t *testing.T) {
	i := Normalize(DVec2{1, -1})
	n := DVec2{0, 1}

	// eta of 1 passes straight through.
	got := Refract(i, n, 1)
	assert.InDelta(t, float64(i.X), float64(got.X), 1e-12)
	assert.InDelta(t, float64(i.Y), float64(got.Y), 1e-12)

	// Snell's law: eta * sin(theta_i) = sin(theta_t).
	got = Refract(i, n, 0.5)
	assert.InDelta(t, 0.5*math.Sqrt2/2, float64(got.X), 1e-12)
	assert.InDelta(t, 1, float64(Length(got)), 1e-12)
	assert.Less(t, float64(got.Y), 0.0)

	// Total internal reflection.
	assert.Equal(t, DVec2{}, Refract(i, n, 1.5))
}
