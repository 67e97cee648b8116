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
	"fmt"
	"math/rand"
)

// GLSL names for the vector types.
type (
	Vec2 = Vector2[Float]
	Vec3 = Vector3[Float]
	Vec4 = Vector4[Float]

	DVec2 = Vector2[Double]
	DVec3 = Vector3[Double]
	DVec4 = Vector4[Double]

	IVec2 = Vector2[Int]
	IVec3 = Vector3[Int]
	IVec4 = Vector4[Int]

	UVec2 = Vector2[Uint]
	UVec3 = Vector3[Uint]
	UVec4 = Vector4[Uint]

	BVec2 = BVector2
	BVec3 = BVector3
	BVec4 = BVector4
)

func indexError(what string, i, dim int) error {
	return fmt.Errorf("%w: %s %d, dimension %d", ErrIndexOutOfRange, what, i, dim)
}

// kindPrefix returns the GLSL type prefix used by String.
func kindPrefix[T BaseNum]() string {
	switch {
	case isFloat[T]() && is32[T]():
		return "vec"
	case isFloat[T]():
		return "dvec"
	case isSigned[T]():
		return "ivec"
	default:
		return "uvec"
	}
}

// randOf draws a component for quick.Generator. Values stay within
// [-size, size] so sums and products remain finite.
func randOf[T BaseNum](r *rand.Rand, size int) T {
	if size < 1 {
		size = 1
	}
	switch {
	case isFloat[T]():
		return T((r.Float64()*2 - 1) * float64(size))
	case isSigned[T]():
		return T(r.Intn(2*size+1) - size)
	default:
		return T(r.Intn(size + 1))
	}
}
