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

	"github.com/stretchr/testify/assert"
)

func TestMinMaxOfNaN(t *testing.T) {
	nan := Float(math.NaN())
	tests := []struct {
		name     string
		a, b     Float
		min, max Float
	}{
		{"ordered", 1, 2, 1, 2},
		{"reversed", 2, 1, 1, 2},
		{"nan first", nan, 3, 3, 3},
		{"nan second", 3, nan, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MinOf(tt.a, tt.b); got != tt.min {
				t.Errorf("MinOf(%v, %v): got %v, want %v", tt.a, tt.b, got, tt.min)
			}
			if got := MaxOf(tt.a, tt.b); got != tt.max {
				t.Errorf("MaxOf(%v, %v): got %v, want %v", tt.a, tt.b, got, tt.max)
			}
		})
	}
}

func TestSignOf(t *testing.T) {
	assert.Equal(t, Float(1), SignOf(Float(3.5)))
	assert.Equal(t, Float(-1), SignOf(Float(-0.1)))
	assert.Equal(t, Float(0), SignOf(Float(0)))
	assert.Equal(t, Float(0), SignOf(Float(math.Copysign(0, -1))))
	assert.True(t, math.IsNaN(float64(SignOf(Double(math.NaN())))))
	assert.Equal(t, Int(-1), SignOf(Int(-7)))
	assert.Equal(t, Uint(1), SignOf(Uint(7)))
}

func TestIsCloseToUnsigned(t *testing.T) {
	assert.True(t, IsCloseTo(Uint(3), Uint(5), 2))
	assert.True(t, IsCloseTo(Uint(5), Uint(3), 2))
	assert.False(t, IsCloseTo(Uint(3), Uint(6), 2))
}

var (
	_ ApproxEq[Float, Float]            = Float(0)
	_ ApproxEq[Double, Double]          = Double(0)
	_ ApproxEq[Int, Int]                = Int(0)
	_ ApproxEq[Uint, Uint]              = Uint(0)
	_ ApproxEq[Vec3, Float]             = Vec3{}
	_ ApproxEq[DMat4, Double]           = DMat4{}
	_ ApproxEq[Matrix3x2[Float], Float] = Matrix3x2[Float]{}
)

// closeCount uses the shared contract, so scalars and vectors go through the
// same code.
func closeCount[T ApproxEq[T, E], E BaseNum](want T, got []T, maxDiff E) int {
	n := 0
	for _, g := range got {
		if g.IsCloseTo(want, maxDiff) {
			n++
		}
	}
	return n
}

func TestScalarApproxEq(t *testing.T) {
	assert.True(t, Double(1).IsCloseTo(1+1e-12, 1e-9))
	assert.False(t, Double(1).IsCloseTo(1.1, 1e-9))
	assert.True(t, Uint(5).IsCloseTo(3, 2))
	assert.False(t, Uint(3).IsCloseTo(6, 2))
	assert.True(t, Int(-2).IsCloseTo(2, 4))
	assert.True(t, Float(1).IsApproxEq(1+Epsilon[Float]()))
	assert.False(t, Float(1).IsApproxEq(1+4*Epsilon[Float]()))
	assert.True(t, Int(7).IsApproxEq(7))
	assert.False(t, Int(7).IsApproxEq(8))

	assert.Equal(t, 2, closeCount(Float(1), []Float{1.01, 2, 0.995}, 0.02))
	assert.Equal(t, 1, closeCount(Vec2{1, 1}, []Vec2{{1.01, 0.99}, {1, 2}}, 0.02))
}

func TestEpsilon(t *testing.T) {
	assert.Equal(t, Float(math.Nextafter32(1, 2)-1), Epsilon[Float]())
	assert.Equal(t, Double(math.Nextafter(1, 2)-1), Epsilon[Double]())
	assert.Zero(t, Epsilon[Int]())
	assert.Zero(t, Epsilon[Uint]())
	assert.True(t, IsApproxEq(Float(1), 1+Epsilon[Float]()))
	assert.False(t, IsApproxEq(Float(1), 1+4*Epsilon[Float]()))
}

func TestAbsOf(t *testing.T) {
	assert.Equal(t, Float(2), AbsOf(Float(-2)))
	assert.Equal(t, Int(2), AbsOf(Int(-2)))
	assert.Equal(t, Uint(2), AbsOf(Uint(2)))
}

func TestFrexpLdexpOf(t *testing.T) {
	for _, x := range []Double{1, 8, 0.3, -1234.5, 1e-300} {
		frac, exp := FrexpOf(x)
		if a := math.Abs(float64(frac)); a < 0.5 || a >= 1 {
			t.Errorf("FrexpOf(%v): fraction %v not in [0.5, 1)", x, frac)
		}
		if got := LdexpOf(frac, exp); got != x {
			t.Errorf("LdexpOf(FrexpOf(%v)): got %v", x, got)
		}
	}
	frac, exp := FrexpOf(Float(8))
	assert.Equal(t, Float(0.5), frac)
	assert.Equal(t, Int(4), exp)
}

func TestRadiansDegreesOf(t *testing.T) {
	assert.InDelta(t, math.Pi, float64(ToRadians(Double(180))), 1e-15)
	assert.InDelta(t, 90, float64(ToDegrees(Double(math.Pi/2))), 1e-12)
}

func TestRemOf(t *testing.T) {
	assert.Equal(t, Int(-1), remOf(Int(-7), 3))
	assert.Equal(t, Uint(1), remOf(Uint(7), 3))
	assert.Equal(t, Float(-1), remOf(Float(-7), 3))
}
