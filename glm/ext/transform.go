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
	"math"

	"github.com/ajroetker/go-glm/glm"
	"github.com/chewxy/math32"
)

// Transform builders. Matrices are column-major and act on column vectors,
// so Translate(m, v) is m * T(v).

// Translate returns m multiplied by the translation by v.
func Translate[T glm.BaseFloat](m glm.Matrix4[T], v glm.Vector3[T]) glm.Matrix4[T] {
	m.C3 = m.C0.MulS(v.X).Add(m.C1.MulS(v.Y)).Add(m.C2.MulS(v.Z)).Add(m.C3)
	return m
}

// Perspective returns a right-handed perspective projection mapping depth
// to the [-1, 1] clip range. fovY is in radians.
func Perspective[T glm.BaseFloat](fovY, aspect, zNear, zFar T) glm.Matrix4[T] {
	q := 1 / apply(fovY/2, math32.Tan, math.Tan)
	a := q / aspect
	b := (zNear + zFar) / (zNear - zFar)
	c := (2 * zNear * zFar) / (zNear - zFar)
	return glm.Matrix4[T]{
		C0: glm.Vector4[T]{a, 0, 0, 0},
		C1: glm.Vector4[T]{0, q, 0, 0},
		C2: glm.Vector4[T]{0, 0, b, -1},
		C3: glm.Vector4[T]{0, 0, c, 0},
	}
}

// Rotate returns m multiplied by the rotation of angle radians around axis.
// axis need not be normalized.
func Rotate[T glm.BaseFloat](m glm.Matrix4[T], angle T, axis glm.Vector3[T]) glm.Matrix4[T] {
	s, c := sinCosOf(angle)
	a := glm.Normalize(axis)
	t := a.MulS(1 - c)

	r := glm.Matrix3[T]{
		C0: glm.Vector3[T]{c + t.X*a.X, t.X*a.Y + s*a.Z, t.X*a.Z - s*a.Y},
		C1: glm.Vector3[T]{t.Y*a.X - s*a.Z, c + t.Y*a.Y, t.Y*a.Z + s*a.X},
		C2: glm.Vector3[T]{t.Z*a.X + s*a.Y, t.Z*a.Y - s*a.X, c + t.Z*a.Z},
	}

	col := func(rc glm.Vector3[T]) glm.Vector4[T] {
		return m.C0.MulS(rc.X).Add(m.C1.MulS(rc.Y)).Add(m.C2.MulS(rc.Z))
	}
	return glm.Matrix4[T]{C0: col(r.C0), C1: col(r.C1), C2: col(r.C2), C3: m.C3}
}

// LookAt returns a right-handed view matrix looking from eye toward center.
func LookAt[T glm.BaseFloat](eye, center, up glm.Vector3[T]) glm.Matrix4[T] {
	f := glm.Normalize(center.Sub(eye))
	s := glm.Cross(f, glm.Normalize(up))
	u := glm.Cross(s, f)
	return glm.Matrix4[T]{
		C0: glm.Vector4[T]{s.X, u.X, -f.X, 0},
		C1: glm.Vector4[T]{s.Y, u.Y, -f.Y, 0},
		C2: glm.Vector4[T]{s.Z, u.Z, -f.Z, 0},
		C3: glm.Vector4[T]{-glm.Dot(s, eye), -glm.Dot(u, eye), glm.Dot(f, eye), 1},
	}
}
