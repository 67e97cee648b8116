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
	"reflect"
	"unsafe"
)

// Vector4 is a vector of four components of a numeric kind. It is also
// used for homogeneous coordinates and quaternions (X, Y, Z, W).
type Vector4[T BaseNum] struct {
	X, Y, Z, W T
}

// NewVector4 returns the vector (x, y, z, w).
func NewVector4[T BaseNum](x, y, z, w T) Vector4[T] {
	return Vector4[T]{x, y, z, w}
}

// Vector4FromArray copies a into a vector.
func Vector4FromArray[T BaseNum](a [4]T) Vector4[T] {
	return Vector4[T]{a[0], a[1], a[2], a[3]}
}

// Vector4FromArrayPtr views a as a vector without copying.
func Vector4FromArrayPtr[T BaseNum](a *[4]T) *Vector4[T] {
	return (*Vector4[T])(unsafe.Pointer(a))
}

// AsArray returns the components as an array.
func (v Vector4[T]) AsArray() [4]T {
	return [4]T{v.X, v.Y, v.Z, v.W}
}

// AsArrayPtr views v as an array without copying. Writes through the
// returned pointer modify v.
func (v *Vector4[T]) AsArrayPtr() *[4]T {
	return (*[4]T)(unsafe.Pointer(v))
}

// Dim returns 4.
func (Vector4[T]) Dim() int { return 4 }

// At returns component i. It panics if i >= 4.
func (v Vector4[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic(indexError("component", i, 4))
}

// Set assigns component i. It panics if i >= 4.
func (v *Vector4[T]) Set(i int, x T) {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	case 3:
		v.W = x
	default:
		panic(indexError("component", i, 4))
	}
}

// Truncate removes component i. It panics if i >= 4.
func (v Vector4[T]) Truncate(i int) Vector3[T] {
	switch i {
	case 0:
		return Vector3[T]{v.Y, v.Z, v.W}
	case 1:
		return Vector3[T]{v.X, v.Z, v.W}
	case 2:
		return Vector3[T]{v.X, v.Y, v.W}
	case 3:
		return Vector3[T]{v.X, v.Y, v.Z}
	}
	panic(indexError("component", i, 4))
}

// Add returns v + u component-wise.
func (v Vector4[T]) Add(u Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X + u.X, v.Y + u.Y, v.Z + u.Z, v.W + u.W}
}

// Sub returns v - u component-wise.
func (v Vector4[T]) Sub(u Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X - u.X, v.Y - u.Y, v.Z - u.Z, v.W - u.W}
}

// Mul returns the component-wise product.
func (v Vector4[T]) Mul(u Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X * u.X, v.Y * u.Y, v.Z * u.Z, v.W * u.W}
}

// Div returns the component-wise quotient. Integer division by zero panics.
func (v Vector4[T]) Div(u Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X / u.X, v.Y / u.Y, v.Z / u.Z, v.W / u.W}
}

// Rem returns the truncated remainder of v / u, component-wise.
func (v Vector4[T]) Rem(u Vector4[T]) Vector4[T] {
	return Vector4[T]{remOf(v.X, u.X), remOf(v.Y, u.Y), remOf(v.Z, u.Z), remOf(v.W, u.W)}
}

func (v Vector4[T]) Neg() Vector4[T] {
	return Vector4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

func (v Vector4[T]) AddS(s T) Vector4[T] {
	return Vector4[T]{v.X + s, v.Y + s, v.Z + s, v.W + s}
}

func (v Vector4[T]) SubS(s T) Vector4[T] {
	return Vector4[T]{v.X - s, v.Y - s, v.Z - s, v.W - s}
}

func (v Vector4[T]) MulS(s T) Vector4[T] {
	return Vector4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

func (v Vector4[T]) DivS(s T) Vector4[T] {
	return Vector4[T]{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

func (v Vector4[T]) RemS(s T) Vector4[T] {
	return Vector4[T]{remOf(v.X, s), remOf(v.Y, s), remOf(v.Z, s), remOf(v.W, s)}
}

// FromS returns the vector with every component set to x.
func (Vector4[T]) FromS(x T) Vector4[T] {
	return Vector4[T]{x, x, x, x}
}

func (v Vector4[T]) Map(f func(T) T) Vector4[T] {
	return Vector4[T]{f(v.X), f(v.Y), f(v.Z), f(v.W)}
}

func (v Vector4[T]) Zip(u Vector4[T], f func(T, T) T) Vector4[T] {
	return Vector4[T]{f(v.X, u.X), f(v.Y, u.Y), f(v.Z, u.Z), f(v.W, u.W)}
}

// Zip3 applies f to matching components of v, u and w.
func (v Vector4[T]) Zip3(u, w Vector4[T], f func(T, T, T) T) Vector4[T] {
	return Vector4[T]{f(v.X, u.X, w.X), f(v.Y, u.Y, w.Y), f(v.Z, u.Z, w.Z), f(v.W, u.W, w.W)}
}

func (v Vector4[T]) Split(f func(T) (T, T)) (Vector4[T], Vector4[T]) {
	x0, x1 := f(v.X)
	y0, y1 := f(v.Y)
	z0, z1 := f(v.Z)
	w0, w1 := f(v.W)
	return Vector4[T]{x0, y0, z0, w0}, Vector4[T]{x1, y1, z1, w1}
}

func (v Vector4[T]) Map2(u Vector4[T], f func(T, T) (T, T)) (Vector4[T], Vector4[T]) {
	x0, x1 := f(v.X, u.X)
	y0, y1 := f(v.Y, u.Y)
	z0, z1 := f(v.Z, u.Z)
	w0, w1 := f(v.W, u.W)
	return Vector4[T]{x0, y0, z0, w0}, Vector4[T]{x1, y1, z1, w1}
}

// Fold reduces the components in the order X, Y, Z, W.
func (v Vector4[T]) Fold(init T, f func(T, T) T) T {
	return f(f(f(f(init, v.X), v.Y), v.Z), v.W)
}

// Sum returns the sum of the components.
func (v Vector4[T]) Sum() T {
	return v.X + v.Y + v.Z + v.W
}

// Product returns the product of the components.
func (v Vector4[T]) Product() T {
	return v.X * v.Y * v.Z * v.W
}

func (v Vector4[T]) Min() T {
	return MinOf(MinOf(MinOf(v.X, v.Y), v.Z), v.W)
}

func (v Vector4[T]) Max() T {
	return MaxOf(MaxOf(MaxOf(v.X, v.Y), v.Z), v.W)
}

func (v Vector4[T]) MapBool(f func(T) bool) BVector4 {
	return BVector4{f(v.X), f(v.Y), f(v.Z), f(v.W)}
}

func (v Vector4[T]) ZipBool(b BVector4, f func(T, bool) T) Vector4[T] {
	return Vector4[T]{f(v.X, b.X), f(v.Y, b.Y), f(v.Z, b.Z), f(v.W, b.W)}
}

// Select returns u's component where b is true and v's elsewhere.
func (v Vector4[T]) Select(u Vector4[T], b BVector4) Vector4[T] {
	r := v
	if b.X {
		r.X = u.X
	}
	if b.Y {
		r.Y = u.Y
	}
	if b.Z {
		r.Z = u.Z
	}
	if b.W {
		r.W = u.W
	}
	return r
}

// Compare applies the predicate f to matching components.
func (v Vector4[T]) Compare(u Vector4[T], f func(T, T) bool) BVector4 {
	return BVector4{f(v.X, u.X), f(v.Y, u.Y), f(v.Z, u.Z), f(v.W, u.W)}
}

func (v Vector4[T]) MapInt(f func(T) Int) Vector4[Int] {
	return Vector4[Int]{f(v.X), f(v.Y), f(v.Z), f(v.W)}
}

func (v Vector4[T]) MapUint(f func(T) Uint) Vector4[Uint] {
	return Vector4[Uint]{f(v.X), f(v.Y), f(v.Z), f(v.W)}
}

func (v Vector4[T]) MapFloat(f func(T) Float) Vector4[Float] {
	return Vector4[Float]{f(v.X), f(v.Y), f(v.Z), f(v.W)}
}

func (v Vector4[T]) SplitInt(f func(T) (T, Int)) (Vector4[T], Vector4[Int]) {
	x0, x1 := f(v.X)
	y0, y1 := f(v.Y)
	z0, z1 := f(v.Z)
	w0, w1 := f(v.W)
	return Vector4[T]{x0, y0, z0, w0}, Vector4[Int]{x1, y1, z1, w1}
}

func (v Vector4[T]) ZipInt(u Vector4[Int], f func(T, Int) T) Vector4[T] {
	return Vector4[T]{f(v.X, u.X), f(v.Y, u.Y), f(v.Z, u.Z), f(v.W, u.W)}
}

// IsCloseTo reports whether every component of v is within maxDiff of u.
func (v Vector4[T]) IsCloseTo(u Vector4[T], maxDiff T) bool {
	return IsCloseTo(v.X, u.X, maxDiff) &&
		IsCloseTo(v.Y, u.Y, maxDiff) &&
		IsCloseTo(v.Z, u.Z, maxDiff) &&
		IsCloseTo(v.W, u.W, maxDiff)
}

// IsApproxEq is IsCloseTo with the machine epsilon of T.
func (v Vector4[T]) IsApproxEq(u Vector4[T]) bool {
	return v.IsCloseTo(u, Epsilon[T]())
}

func (v Vector4[T]) String() string {
	return fmt.Sprintf("%s4(%v, %v, %v, %v)", kindPrefix[T](), v.X, v.Y, v.Z, v.W)
}

// Generate implements quick.Generator.
func (Vector4[T]) Generate(r *rand.Rand, size int) reflect.Value {
	return reflect.ValueOf(Vector4[T]{randOf[T](r, size), randOf[T](r, size), randOf[T](r, size), randOf[T](r, size)})
}
