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

// Vector2 is a vector of two components of a numeric kind.
type Vector2[T BaseNum] struct {
	X, Y T
}

// NewVector2 returns the vector (x, y).
func NewVector2[T BaseNum](x, y T) Vector2[T] {
	return Vector2[T]{x, y}
}

// Vector2FromArray copies a into a vector.
func Vector2FromArray[T BaseNum](a [2]T) Vector2[T] {
	return Vector2[T]{a[0], a[1]}
}

// Vector2FromArrayPtr views a as a vector without copying.
func Vector2FromArrayPtr[T BaseNum](a *[2]T) *Vector2[T] {
	return (*Vector2[T])(unsafe.Pointer(a))
}

// AsArray returns the components as an array.
func (v Vector2[T]) AsArray() [2]T {
	return [2]T{v.X, v.Y}
}

// AsArrayPtr views v as an array without copying. Writes through the
// returned pointer modify v.
func (v *Vector2[T]) AsArrayPtr() *[2]T {
	return (*[2]T)(unsafe.Pointer(v))
}

// Dim returns 2.
func (Vector2[T]) Dim() int { return 2 }

// At returns component i. It panics if i >= 2.
func (v Vector2[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(indexError("component", i, 2))
}

// Set assigns component i. It panics if i >= 2.
func (v *Vector2[T]) Set(i int, x T) {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	default:
		panic(indexError("component", i, 2))
	}
}

// Extend appends z as a new last component.
func (v Vector2[T]) Extend(z T) Vector3[T] {
	return Vector3[T]{v.X, v.Y, z}
}

// Add returns v + u component-wise.
func (v Vector2[T]) Add(u Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X + u.X, v.Y + u.Y}
}

// Sub returns v - u component-wise.
func (v Vector2[T]) Sub(u Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X - u.X, v.Y - u.Y}
}

// Mul returns the component-wise product.
func (v Vector2[T]) Mul(u Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X * u.X, v.Y * u.Y}
}

// Div returns the component-wise quotient. Integer division by zero panics.
func (v Vector2[T]) Div(u Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X / u.X, v.Y / u.Y}
}

// Rem returns the truncated remainder of v / u, component-wise.
func (v Vector2[T]) Rem(u Vector2[T]) Vector2[T] {
	return Vector2[T]{remOf(v.X, u.X), remOf(v.Y, u.Y)}
}

func (v Vector2[T]) Neg() Vector2[T] {
	return Vector2[T]{-v.X, -v.Y}
}

func (v Vector2[T]) AddS(s T) Vector2[T] {
	return Vector2[T]{v.X + s, v.Y + s}
}

func (v Vector2[T]) SubS(s T) Vector2[T] {
	return Vector2[T]{v.X - s, v.Y - s}
}

func (v Vector2[T]) MulS(s T) Vector2[T] {
	return Vector2[T]{v.X * s, v.Y * s}
}

func (v Vector2[T]) DivS(s T) Vector2[T] {
	return Vector2[T]{v.X / s, v.Y / s}
}

func (v Vector2[T]) RemS(s T) Vector2[T] {
	return Vector2[T]{remOf(v.X, s), remOf(v.Y, s)}
}

// FromS returns the vector with every component set to x.
func (Vector2[T]) FromS(x T) Vector2[T] {
	return Vector2[T]{x, x}
}

func (v Vector2[T]) Map(f func(T) T) Vector2[T] {
	return Vector2[T]{f(v.X), f(v.Y)}
}

func (v Vector2[T]) Zip(u Vector2[T], f func(T, T) T) Vector2[T] {
	return Vector2[T]{f(v.X, u.X), f(v.Y, u.Y)}
}

// Zip3 applies f to matching components of v, u and w.
func (v Vector2[T]) Zip3(u, w Vector2[T], f func(T, T, T) T) Vector2[T] {
	return Vector2[T]{f(v.X, u.X, w.X), f(v.Y, u.Y, w.Y)}
}

func (v Vector2[T]) Split(f func(T) (T, T)) (Vector2[T], Vector2[T]) {
	x0, x1 := f(v.X)
	y0, y1 := f(v.Y)
	return Vector2[T]{x0, y0}, Vector2[T]{x1, y1}
}

func (v Vector2[T]) Map2(u Vector2[T], f func(T, T) (T, T)) (Vector2[T], Vector2[T]) {
	x0, x1 := f(v.X, u.X)
	y0, y1 := f(v.Y, u.Y)
	return Vector2[T]{x0, y0}, Vector2[T]{x1, y1}
}

// Fold reduces the components in the order X, Y.
func (v Vector2[T]) Fold(init T, f func(T, T) T) T {
	return f(f(init, v.X), v.Y)
}

// Sum returns the sum of the components.
func (v Vector2[T]) Sum() T {
	return v.X + v.Y
}

// Product returns the product of the components.
func (v Vector2[T]) Product() T {
	return v.X * v.Y
}

func (v Vector2[T]) Min() T {
	return MinOf(v.X, v.Y)
}

func (v Vector2[T]) Max() T {
	return MaxOf(v.X, v.Y)
}

func (v Vector2[T]) MapBool(f func(T) bool) BVector2 {
	return BVector2{f(v.X), f(v.Y)}
}

func (v Vector2[T]) ZipBool(b BVector2, f func(T, bool) T) Vector2[T] {
	return Vector2[T]{f(v.X, b.X), f(v.Y, b.Y)}
}

// Select returns u's component where b is true and v's elsewhere.
func (v Vector2[T]) Select(u Vector2[T], b BVector2) Vector2[T] {
	r := v
	if b.X {
		r.X = u.X
	}
	if b.Y {
		r.Y = u.Y
	}
	return r
}

// Compare applies the predicate f to matching components.
func (v Vector2[T]) Compare(u Vector2[T], f func(T, T) bool) BVector2 {
	return BVector2{f(v.X, u.X), f(v.Y, u.Y)}
}

func (v Vector2[T]) MapInt(f func(T) Int) Vector2[Int] {
	return Vector2[Int]{f(v.X), f(v.Y)}
}

func (v Vector2[T]) MapUint(f func(T) Uint) Vector2[Uint] {
	return Vector2[Uint]{f(v.X), f(v.Y)}
}

func (v Vector2[T]) MapFloat(f func(T) Float) Vector2[Float] {
	return Vector2[Float]{f(v.X), f(v.Y)}
}

func (v Vector2[T]) SplitInt(f func(T) (T, Int)) (Vector2[T], Vector2[Int]) {
	x0, x1 := f(v.X)
	y0, y1 := f(v.Y)
	return Vector2[T]{x0, y0}, Vector2[Int]{x1, y1}
}

func (v Vector2[T]) ZipInt(u Vector2[Int], f func(T, Int) T) Vector2[T] {
	return Vector2[T]{f(v.X, u.X), f(v.Y, u.Y)}
}

// IsCloseTo reports whether every component of v is within maxDiff of u.
func (v Vector2[T]) IsCloseTo(u Vector2[T], maxDiff T) bool {
	return IsCloseTo(v.X, u.X, maxDiff) &&
		IsCloseTo(v.Y, u.Y, maxDiff)
}

// IsApproxEq is IsCloseTo with the machine epsilon of T.
func (v Vector2[T]) IsApproxEq(u Vector2[T]) bool {
	return v.IsCloseTo(u, Epsilon[T]())
}

func (v Vector2[T]) String() string {
	return fmt.Sprintf("%s2(%v, %v)", kindPrefix[T](), v.X, v.Y)
}

// Generate implements quick.Generator.
func (Vector2[T]) Generate(r *rand.Rand, size int) reflect.Value {
	return reflect.ValueOf(Vector2[T]{randOf[T](r, size), randOf[T](r, size)})
}
