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

// Identity returns the identity matrix. The receiver only selects the type.
func (Matrix2[T]) Identity() Matrix2[T] {
	return Matrix2[T]{Vector2[T]{1, 0}, Vector2[T]{0, 1}}
}

func (Matrix3[T]) Identity() Matrix3[T] {
	return Matrix3[T]{
		Vector3[T]{1, 0, 0},
		Vector3[T]{0, 1, 0},
		Vector3[T]{0, 0, 1},
	}
}

func (Matrix4[T]) Identity() Matrix4[T] {
	return Matrix4[T]{
		Vector4[T]{1, 0, 0, 0},
		Vector4[T]{0, 1, 0, 0},
		Vector4[T]{0, 0, 1, 0},
		Vector4[T]{0, 0, 0, 1},
	}
}

// Trace returns the sum of the main diagonal.
func (m Matrix2[T]) Trace() T { return m.C0.X + m.C1.Y }

func (m Matrix3[T]) Trace() T { return m.C0.X + m.C1.Y + m.C2.Z }

func (m Matrix4[T]) Trace() T { return m.C0.X + m.C1.Y + m.C2.Z + m.C3.W }

// Extend appends c as a third column.
func (m Matrix2[T]) Extend(c Vector2[T]) Matrix3x2[T] {
	return Matrix3x2[T]{m.C0, m.C1, c}
}

// Extend appends c as a fourth column.
func (m Matrix3[T]) Extend(c Vector3[T]) Matrix4x3[T] {
	return Matrix4x3[T]{m.C0, m.C1, m.C2, c}
}

func (m Matrix2[T]) Determinant() T {
	return m.C0.X*m.C1.Y - m.C0.Y*m.C1.X
}

func (m Matrix3[T]) Determinant() T {
	return m.C0.X*(m.C1.Y*m.C2.Z-m.C2.Y*m.C1.Z) -
		m.C1.X*(m.C0.Y*m.C2.Z-m.C2.Y*m.C0.Z) +
		m.C2.X*(m.C0.Y*m.C1.Z-m.C1.Y*m.C0.Z)
}

// Determinant expands along the first column, reusing the 2x2 minors of
// the last two columns.
func (m Matrix4[T]) Determinant() T {
	s00 := m.C2.Z*m.C3.W - m.C3.Z*m.C2.W
	s01 := m.C2.Y*m.C3.W - m.C3.Y*m.C2.W
	s02 := m.C2.Y*m.C3.Z - m.C3.Y*m.C2.Z
	s03 := m.C2.X*m.C3.W - m.C3.X*m.C2.W
	s04 := m.C2.X*m.C3.Z - m.C3.X*m.C2.Z
	s05 := m.C2.X*m.C3.Y - m.C3.X*m.C2.Y

	c0 := m.C1.Y*s00 - m.C1.Z*s01 + m.C1.W*s02
	c1 := -(m.C1.X*s00 - m.C1.Z*s03 + m.C1.W*s04)
	c2 := m.C1.X*s01 - m.C1.Y*s03 + m.C1.W*s05
	c3 := -(m.C1.X*s02 - m.C1.Y*s04 + m.C1.Z*s05)

	return m.C0.X*c0 + m.C0.Y*c1 + m.C0.Z*c2 + m.C0.W*c3
}

// Inverse returns the inverse of m. The second result is false, and the
// matrix is zero, when the determinant is approximately 0.
func (m Matrix2[T]) Inverse() (Matrix2[T], bool) {
	det := m.Determinant()
	if IsApproxEq(det, 0) {
		return Matrix2[T]{}, false
	}
	inv := 1 / det
	return Matrix2[T]{
		Vector2[T]{m.C1.Y * inv, -m.C0.Y * inv},
		Vector2[T]{-m.C1.X * inv, m.C0.X * inv},
	}, true
}

func (m Matrix3[T]) Inverse() (Matrix3[T], bool) {
	det := m.Determinant()
	if IsApproxEq(det, 0) {
		return Matrix3[T]{}, false
	}
	a, b, c := m.C0, m.C1, m.C2

	r11 := b.Y*c.Z - c.Y*b.Z
	r12 := c.X*b.Z - b.X*c.Z
	r13 := b.X*c.Y - c.X*b.Y
	r21 := c.Y*a.Z - a.Y*c.Z
	r22 := a.X*c.Z - c.X*a.Z
	r23 := c.X*a.Y - a.X*c.Y
	r31 := a.Y*b.Z - b.Y*a.Z
	r32 := b.X*a.Z - a.X*b.Z
	r33 := a.X*b.Y - b.X*a.Y

	return Matrix3[T]{
		Vector3[T]{r11, r21, r31},
		Vector3[T]{r12, r22, r32},
		Vector3[T]{r13, r23, r33},
	}.MulS(1 / det), true
}

// Inverse builds the adjugate from the 3x3 minors of the transpose.
func (m Matrix4[T]) Inverse() (Matrix4[T], bool) {
	det := m.Determinant()
	if IsApproxEq(det, 0) {
		return Matrix4[T]{}, false
	}
	inv := 1 / det
	rows := m.Transpose().AsArray()

	cofactor := func(i, j int) T {
		var minor Matrix3[T]
		k := 0
		for r, row := range rows {
			if r == i {
				continue
			}
			minor.SetCol(k, row.Truncate(j))
			k++
		}
		d := minor.Determinant() * inv
		if (i+j)%2 == 1 {
			return -d
		}
		return d
	}

	var out Matrix4[T]
	for i := 0; i < 4; i++ {
		out.SetCol(i, Vector4[T]{cofactor(i, 0), cofactor(i, 1), cofactor(i, 2), cofactor(i, 3)})
	}
	return out, true
}
