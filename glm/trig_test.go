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

func TestRadiansDegrees(t *testing.T) {
	assert.InDelta(t, math.Pi, float64(Radians(Double(180))), 1e-15)
	got := Degrees(DVec2{math.Pi / 2, -math.Pi})
	assert.InDelta(t, 90, float64(got.X), 1e-12)
	assert.InDelta(t, -180, float64(got.Y), 1e-12)
}

func TestTrig(t *testing.T) {
	tests := []struct {
		name string
		f    func(Double) Double
		ref  func(float64) float64
		x    float64
	}{
		{"Sin", Sin[Double, Double], math.Sin, 0.5},
		{"Cos", Cos[Double, Double], math.Cos, 0.5},
		{"Tan", Tan[Double, Double], math.Tan, 0.5},
		{"Asin", Asin[Double, Double], math.Asin, 0.5},
		{"Acos", Acos[Double, Double], math.Acos, 0.5},
		{"Atan", Atan[Double, Double], math.Atan, 0.5},
		{"Sinh", Sinh[Double, Double], math.Sinh, 0.5},
		{"Cosh", Cosh[Double, Double], math.Cosh, 0.5},
		{"Tanh", Tanh[Double, Double], math.Tanh, 0.5},
		{"Asinh", Asinh[Double, Double], math.Asinh, 0.5},
		{"Acosh", Acosh[Double, Double], math.Acosh, 1.5},
		{"Atanh", Atanh[Double, Double], math.Atanh, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := float64(tt.f(Double(tt.x))), tt.ref(tt.x); got != want {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func TestTrigFloat(t *testing.T) {
	v := Sin(Vec4{0, math.Pi / 6, math.Pi / 2, math.Pi})
	assert.InDeltaSlice(t, []float64{0, 0.5, 1, 0}, vecToF64(v), 1e-6)

	v3 := Cos(Vec3{0, math.Pi / 3, math.Pi})
	assert.InDeltaSlice(t, []float64{1, 0.5, -1}, vecToF64(v3), 1e-6)
}

func TestAtan2(t *testing.T) {
	got := Atan2(DVec4{1, 1, -1, -1}, DVec4{1, -1, 1, -1})
	want := []float64{math.Pi / 4, 3 * math.Pi / 4, -math.Pi / 4, -3 * math.Pi / 4}
	assert.InDeltaSlice(t, want, vecToF64(got), 1e-15)
}

func TestExpLog(t *testing.T) {
	assert.Equal(t, Double(8), Pow(Double(2), 3))
	assert.Equal(t, DVec2{1, 9}, Pow(DVec2{1, 3}, DVec2{5, 2}))
	assert.Equal(t, Double(1), Exp(Double(0)))
	assert.InDelta(t, 1, float64(Log(Double(math.E))), 1e-15)
	assert.InDeltaSlice(t, []float64{1, 2, 0.5}, vecToF64(Exp2(Vec3{0, 1, -1})), 1e-6)
	assert.InDeltaSlice(t, []float64{0, 3, -2}, vecToF64(Log2(Vec3{1, 8, 0.25})), 1e-6)
	assert.Equal(t, Vec2{3, 0.5}, Sqrt(Vec2{9, 0.25}))
	assert.Equal(t, Vec2{0.5, 2}, InverseSqrt(Vec2{4, 0.25}))
	assert.True(t, math.IsNaN(float64(Sqrt(Double(-1)))))
}

func vecToF64[G GenFloat[G, E], E BaseFloat](v G) []float64 {
	var out []float64
	v.Fold(0, func(acc, e E) E {
		out = append(out, float64(e))
		return acc
	})
	return out
}
