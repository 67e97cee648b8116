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

// Decompose splits a transform into scale, rotation quaternion (X, Y, Z, W),
// translation, skew and perspective, following the unmatrix method of
// Graphics Gems II. ok is false when m.C3.W is approximately 0 or the
// perspective block is singular; the other results are then zero.
//
// As in GLM's decompose, perspective is extracted when any of C0.W, C1.W or
// C2.W is non-zero, and an axis counts as mirrored when
// dot(row0, cross(row1, row2)) is negative.
func (m Matrix4[T]) Decompose() (scale Vector3[T], orientation Vector4[T], translation Vector3[T],
	skew Vector3[T], perspective Vector4[T], ok bool) {
	if IsApproxEq(m.C3.W, 0) {
		return
	}
	local := m.DivS(m.C3.W)

	pm := local
	pm.C0.W, pm.C1.W, pm.C2.W, pm.C3.W = 0, 0, 0, 1
	if IsApproxEq(pm.Determinant(), 0) {
		return
	}

	if !IsApproxEq(local.C0.W, 0) || !IsApproxEq(local.C1.W, 0) || !IsApproxEq(local.C2.W, 0) {
		rhs := Vector4[T]{local.C0.W, local.C1.W, local.C2.W, local.C3.W}
		inv, _ := pm.Inverse()
		perspective = inv.Transpose().MulV(rhs)
		local.C0.W, local.C1.W, local.C2.W, local.C3.W = 0, 0, 0, 1
	} else {
		perspective = Vector4[T]{0, 0, 0, 1}
	}

	translation = local.C3.Truncate(3)
	local.C3 = Vector4[T]{0, 0, 0, local.C3.W}

	rows := [3]Vector3[T]{local.C0.Truncate(3), local.C1.Truncate(3), local.C2.Truncate(3)}

	scale.X = Length(rows[0])
	rows[0] = Normalize(rows[0])

	skew.Z = Dot(rows[0], rows[1])
	rows[1] = rows[1].Sub(rows[0].MulS(skew.Z))

	scale.Y = Length(rows[1])
	rows[1] = Normalize(rows[1])
	skew.Z /= scale.Y

	skew.Y = Dot(rows[0], rows[2])
	rows[2] = rows[2].Sub(rows[0].MulS(skew.Y))
	skew.X = Dot(rows[1], rows[2])
	rows[2] = rows[2].Sub(rows[1].MulS(skew.X))

	scale.Z = Length(rows[2])
	rows[2] = Normalize(rows[2])
	skew.Y /= scale.Z
	skew.X /= scale.Z

	// A negative determinant means one axis is mirrored.
	if Dot(rows[0], Cross(rows[1], rows[2])) < 0 {
		scale = scale.Neg()
		for i := range rows {
			rows[i] = rows[i].Neg()
		}
	}

	orientation = quatFromRows(rows)
	return scale, orientation, translation, skew, perspective, true
}

// quatFromRows converts an orthonormal rotation, given as rows, into a
// quaternion.
func quatFromRows[T BaseFloat](rows [3]Vector3[T]) Vector4[T] {
	var q Vector4[T]
	trace := rows[0].X + rows[1].Y + rows[2].Z
	if trace > 0 {
		root := sqrtOf(trace + 1)
		q.W = root / 2
		root = 0.5 / root
		q.X = root * (rows[1].Z - rows[2].Y)
		q.Y = root * (rows[2].X - rows[0].Z)
		q.Z = root * (rows[0].Y - rows[1].X)
		return q
	}

	next := [3]int{1, 2, 0}
	i := 0
	if rows[1].Y > rows[0].X {
		i = 1
	}
	if rows[2].Z > rows[i].At(i) {
		i = 2
	}
	j := next[i]
	k := next[j]

	root := sqrtOf(rows[i].At(i) - rows[j].At(j) - rows[k].At(k) + 1)
	q.Set(i, root/2)
	root = 0.5 / root
	q.Set(j, root*(rows[i].At(j)+rows[j].At(i)))
	q.Set(k, root*(rows[i].At(k)+rows[k].At(i)))
	q.W = root * (rows[j].At(k) - rows[k].At(j))
	return q
}
