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

// Vector3 is a vector of three components of a numeric kind.
type Vector3[T BaseNum] struct {
	X, Y, Z T
}

// NewVector3 returns the vector (x, y, z).
func NewVector3[T BaseNum](x, y, z T) Vector3[T] {
	return Vector3[T]{x, y, z}
}

// Vector3FromArray copies a into a vector.
func Vector3FromArray[T BaseNum](a [3]T) Vector3[T] {
	return Vector3[T]{a[0], a[1], a[2]}
}

// Vector3FromArrayPtr views a as a vector without copying.
func Vector3FromArrayPtr[T BaseNum](a *[3]T) *Vector3[T] {
	return (*Vector3[T])(unsafe.Pointer(a))
}

// AsArray returns the components as an array.
func (v Vector3[T]) AsArray() [3]T {
	return [3]T{v.X, v.Y, v.Z}
}

// AsArrayPtr views v as an array without copying. Writes through the
// returned pointer modify v.
func (v *Vector3[T]) AsArrayPtr() *[3]T {
	return (*[3]T)(unsafe.Pointer(v))
}

// Dim returns 3.
func (Vector3[T]) Dim() int { return 3 }

// At returns component i. It panics if i >= 3.
func (v Vector3[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(indexError("component", i, 3))
}

// Set assigns component i. It panics if i >= 3.
func (v *Vector3[T]) Set(i int, x T) {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	default:
		panic(indexError("component", i, 3))
	}
}

// Extend appends w as a new last component.
func (v Vector3[T]) Extend(w T) Vector4[T] {
	return Vector4[T]{v.X, v.Y, v.Z, w}
}

// Truncate removes component i. It panics if i >= 3.
func (v Vector3[T]) Truncate(i int) Vector2[T] {
	switch i {
	case 0:
		return Vector2[T]{v.Y, v.Z}
	case 1:
		return Vector2[T]{v.X, v.Z}
	case 2:
		return Vector2[T]{v.X, v.Y}
	}
	panic(indexError("component", i, 3))
}

// Add returns v + u component-wise.
func (v Vector3[T]) Add(u Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

// Sub returns v - u component-wise.
func (v Vector3[T]) Sub(u Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X - u.X, v.Y - u.Y, v.Z - u.Z}
}

// Mul returns the component-wise product.
func (v Vector3[T]) Mul(u Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X * u.X, v.Y * u.Y, v.Z * u.Z}
}

// Div returns the component-wise quotient. Integer division by zero panics.
func (v Vector3[T]) Div(u Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X / u.X, v.Y / u.Y, v.Z / u.Z}
}

// Rem returns the truncated remainder of v / u, component-wise.
func (v Vector3[T]) Rem(u Vector3[T]) Vector3[T] {
	return Vector3[T]{remOf(v.X, u.X), remOf(v.Y, u.Y), remOf(v.Z, u.Z)}
}

func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{-v.X, -v.Y, -v.Z}
}

func (v Vector3[T]) AddS(s T) Vector3[T] {
	return Vector3[T]{v.X + s, v.Y + s, v.Z + s}
}

func (v Vector3[T]) SubS(s T) Vector3[T] {
	return Vector3[T]{v.X - s, v.Y - s, v.Z - s}
}

func (v Vector3[T]) MulS(s T) Vector3[T] {
	return Vector3[T]{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector3[T]) DivS(s T) Vector3[T] {
	return Vector3[T]{v.X / s, v.Y / s, v.Z / s}
}

func (v Vector3[T]) RemS(s T) Vector3[T] {
	return Vector3[T]{remOf(v.X, s), remOf(v.Y, s), remOf(v.Z, s)}
}

// FromS returns the vector with every component set to x.
func (Vector3[T]) FromS(x T) Vector3[T] {
	return Vector3[T]{x, x, x}
}

func (v Vector3[T]) Map(f func(T) T) Vector3[T] {
	return Vector3[T]{f(v.X), f(v.Y), f(v.Z)}
}

func (v Vector3[T]) Zip(u Vector3[T], f func(T, T) T) Vector3[T] {
	return Vector3[T]{f(v.X, u.X), f(v.Y, u.Y), f(v.Z, u.Z)}
}

// Zip3 applies f to matching components of v, u and w.
func (v Vector3[T]) Zip3(u, w Vector3[T], f func(T, T, T) T) Vector3[T] {
	return Vector3[T]{f(v.X, u.X, w.X), f(v.Y, u.Y, w.Y), f(v.Z, u.Z, w.Z)}
}

func (v Vector3[T]) Split(f func(T) (T, T)) (Vector3[T], Vector3[T]) {
	x0, x1 := f(v.X)
	y0, y1 := f(v.Y)
	z0, z1 := f(v.Z)
	return Vector3[T]{x0, y0, z0}, Vector3[T]{x1, y1, z1}
}

func (v Vector3[T]) Map2(u Vector3[T], f func(T, T) (T, T)) (Vector3[T], Vector3[T]) {
	x0, x1 := f(v.X, u.X)
	y0, y1 := f(v.Y, u.Y)
	z0, z1 := f(v.Z, u.Z)
	return Vector3[T]{x0, y0, z0}, Vector3[T]{x1, y1, z1}
}

// Fold reduces the components in the order X, Y, Z.
func (v Vector3[T]) Fold(init T, f func(T, T) T) T {
	return f(f(f(init, v.X), v.Y), v.Z)
}

// Sum returns the sum of the components.
func (v Vector3[T]) Sum() T {
	return v.X + v.Y + v.Z
}

// Product returns the product of the components.
func (v Vector3[T]) Product() T {
	return v.X * v.Y * v.Z
}

func (v Vector3[T]) Min() T {
	return MinOf(MinOf(v.X, v.Y), v.Z)
}

func (v Vector3[T]) Max() T {
	return MaxOf(MaxOf(v.X, v.Y), v.Z)
}

func (v Vector3[T]) MapBool(f func(T) bool) BVector3 {
	return BVector3{f(v.X), f(v.Y), f(v.Z)}
}

func (v Vector3[T]) ZipBool(b BVector3, f func(T, bool) T) Vector3[T] {
	return Vector3[T]{f(v.X, b.X), f(v.Y, b.Y), f(v.Z, b.Z)}
}

// Select returns u's component where b is true and v's elsewhere.
func (v Vector3[T]) Select(u Vector3[T], b BVector3) Vector3[T] {
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
	return r
}

// Compare applies the predicate f to matching components.
func (v Vector3[T]) Compare(u Vector3[T], f func(T, T) bool) BVector3 {
	return BVector3{f(v.X, u.X), f(v.Y, u.Y), f(v.Z, u.Z)}
}

func (v Vector3[T]) MapInt(f func(T) Int) Vector3[Int] {
	return Vector3[Int]{f(v.X), f(v.Y), f(v.Z)}
}

func (v Vector3[T]) MapUint(f func(T) Uint) Vector3[Uint] {
	return Vector3[Uint]{f(v.X), f(v.Y), f(v.Z)}
}

func (v Vector3[T]) MapFloat(f func(T) Float) Vector3[Float] {
	return Vector3[Float]{f(v.X), f(v.Y), f(v.Z)}
}

func (v Vector3[T]) SplitInt(f func(T) (T, Int)) (Vector3[T], Vector3[Int]) {
	x0, x1 := f(v.X)
	y0, y1 := f(v.Y)
	z0, z1 := f(v.Z)
	return Vector3[T]{x0, y0, z0}, Vector3[Int]{x1, y1, z1}
}

func (v Vector3[T]) ZipInt(u Vector3[Int], f func(T, Int) T) Vector3[T] {
	return Vector3[T]{f(v.X, u.X), f(v.Y, u.Y), f(v.Z, u.Z)}
}

// IsCloseTo reports whether every component of v is within maxDiff of u.
func (v Vector3[T]) IsCloseTo(u Vector3[T], maxDiff T) bool {
	return IsCloseTo(v.X, u.X, maxDiff) &&
		IsCloseTo(v.Y, u.Y, maxDiff) &&
		IsCloseTo(v.Z, u.Z, maxDiff)
}

// IsApproxEq is IsCloseTo with the machine epsilon of T.
func (v Vector3[T]) IsApproxEq(u Vector3[T]) bool {
	return v.IsCloseTo(u, Epsilon[T]())
}

func (v Vector3[T]) String() string {
	return fmt.Sprintf("%s3(%v, %v, %v)", kindPrefix[T](), v.X, v.Y, v.Z)
}

// Generate implements quick.Generator.
func (Vector3[T]) Generate(r *rand.Rand, size int) reflect.Value {
	return reflect.ValueOf(Vector3[T]{randOf[T](r, size), randOf[T](r, size), randOf[T](r, size)})
}
