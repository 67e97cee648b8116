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

package ext

import (
	"github.com/ajroetker/go-glm/glm"
	"golang.org/x/image/math/f32"
)

// Conversions to and from the fixed arrays of golang.org/x/image/math/f32.
// f32 matrices are row-major, so matrix conversions transpose.

func Vec2ToF32(v glm.Vec2) f32.Vec2 { return f32.Vec2{float32(v.X), float32(v.Y)} }
func Vec3ToF32(v glm.Vec3) f32.Vec3 { return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)} }
func Vec4ToF32(v glm.Vec4) f32.Vec4 { return f32.Vec4{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)} }

func Vec2FromF32(a f32.Vec2) glm.Vec2 { return glm.Vec2{glm.Float(a[0]), glm.Float(a[1])} }
func Vec3FromF32(a f32.Vec3) glm.Vec3 { return glm.Vec3{glm.Float(a[0]), glm.Float(a[1]), glm.Float(a[2])} }
func Vec4FromF32(a f32.Vec4) glm.Vec4 { return glm.Vec4{glm.Float(a[0]), glm.Float(a[1]), glm.Float(a[2]), glm.Float(a[3])} }

// Mat3ToF32 returns m in row-major order.
func Mat3ToF32(m glm.Mat3) f32.Mat3 {
	var a f32.Mat3
	for c := 0; c < 3; c++ {
		col := m.Col(c)
		for r := 0; r < 3; r++ {
			a[r*3+c] = float32(col.At(r))
		}
	}
	return a
}

// Mat3FromF32 reads a row-major f32.Mat3.
func Mat3FromF32(a f32.Mat3) glm.Mat3 {
	var m glm.Mat3
	for c := 0; c < 3; c++ {
		m.SetCol(c, glm.Vec3{glm.Float(a[c]), glm.Float(a[3+c]), glm.Float(a[6+c])})
	}
	return m
}

// Mat4ToF32 returns m in row-major order.
func Mat4ToF32(m glm.Mat4) f32.Mat4 {
	var a f32.Mat4
	for c := 0; c < 4; c++ {
		col := m.Col(c)
		for r := 0; r < 4; r++ {
			a[r*4+c] = float32(col.At(r))
		}
	}
	return a
}

// Mat4FromF32 reads a row-major f32.Mat4.
func Mat4FromF32(a f32.Mat4) glm.Mat4 {
	var m glm.Mat4
	for c := 0; c < 4; c++ {
		m.SetCol(c, glm.Vec4{glm.Float(a[c]), glm.Float(a[4+c]), glm.Float(a[8+c]), glm.Float(a[12+c])})
	}
	return m
}
