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
)

// BVector2 is a vector of two booleans, the result of component-wise
// comparisons.
type BVector2 struct {
	X, Y bool
}

func NewBVector2(x, y bool) BVector2 {
	return BVector2{x, y}
}

func BVector2FromArray(a [2]bool) BVector2 {
	return BVector2{a[0], a[1]}
}

func (v BVector2) AsArray() [2]bool {
	return [2]bool{v.X, v.Y}
}

func (BVector2) Dim() int { return 2 }

func (v BVector2) At(i int) bool {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(indexError("component", i, 2))
}

func (v *BVector2) Set(i int, x bool) {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	default:
		panic(indexError("component", i, 2))
	}
}

func (v BVector2) Extend(z bool) BVector3 {
	return BVector3{v.X, v.Y, z}
}

// Any reports whether any component is true.
func (v BVector2) Any() bool {
	return v.X || v.Y
}

// All reports whether every component is true.
func (v BVector2) All() bool {
	return v.X && v.Y
}

// Not returns the component-wise complement.
func (v BVector2) Not() BVector2 {
	return BVector2{!v.X, !v.Y}
}

func (v BVector2) Map(f func(bool) bool) BVector2 {
	return BVector2{f(v.X), f(v.Y)}
}

func (v BVector2) Zip(u BVector2, f func(bool, bool) bool) BVector2 {
	return BVector2{f(v.X, u.X), f(v.Y, u.Y)}
}

func (v BVector2) Compare(u BVector2, f func(bool, bool) bool) BVector2 {
	return v.Zip(u, f)
}

func (v BVector2) String() string {
	return fmt.Sprintf("bvec2(%t, %t)", v.X, v.Y)
}

// Generate implements quick.Generator.
func (BVector2) Generate(r *rand.Rand, _ int) reflect.Value {
	return reflect.ValueOf(BVector2{r.Intn(2) == 1, r.Intn(2) == 1})
}

// BVector3 is a vector of three booleans, the result of component-wise
// comparisons.
type BVector3 struct {
	X, Y, Z bool
}

func NewBVector3(x, y, z bool) BVector3 {
	return BVector3{x, y, z}
}

func BVector3FromArray(a [3]bool) BVector3 {
	return BVector3{a[0], a[1], a[2]}
}

func (v BVector3) AsArray() [3]bool {
	return [3]bool{v.X, v.Y, v.Z}
}

func (BVector3) Dim() int { return 3 }

func (v BVector3) At(i int) bool {
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

func (v *BVector3) Set(i int, x bool) {
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

func (v BVector3) Extend(w bool) BVector4 {
	return BVector4{v.X, v.Y, v.Z, w}
}

func (v BVector3) Truncate(i int) BVector2 {
	switch i {
	case 0:
		return BVector2{v.Y, v.Z}
	case 1:
		return BVector2{v.X, v.Z}
	case 2:
		return BVector2{v.X, v.Y}
	}
	panic(indexError("component", i, 3))
}

// Any reports whether any component is true.
func (v BVector3) Any() bool {
	return v.X || v.Y || v.Z
}

// All reports whether every component is true.
func (v BVector3) All() bool {
	return v.X && v.Y && v.Z
}

// Not returns the component-wise complement.
func (v BVector3) Not() BVector3 {
	return BVector3{!v.X, !v.Y, !v.Z}
}

func (v BVector3) Map(f func(bool) bool) BVector3 {
	return BVector3{f(v.X), f(v.Y), f(v.Z)}
}

func (v BVector3) Zip(u BVector3, f func(bool, bool) bool) BVector3 {
	return BVector3{f(v.X, u.X), f(v.Y, u.Y), f(v.Z, u.Z)}
}

func (v BVector3) Compare(u BVector3, f func(bool, bool) bool) BVector3 {
	return v.Zip(u, f)
}

func (v BVector3) String() string {
	return fmt.Sprintf("bvec3(%t, %t, %t)", v.X, v.Y, v.Z)
}

// Generate implements quick.Generator.
func (BVector3) Generate(r *rand.Rand, _ int) reflect.Value {
	return reflect.ValueOf(BVector3{r.Intn(2) == 1, r.Intn(2) == 1, r.Intn(2) == 1})
}

// BVector4 is a vector of four booleans, the result of component-wise
// comparisons.
type BVector4 struct {
	X, Y, Z, W bool
}

func NewBVector4(x, y, z, w bool) BVector4 {
	return BVector4{x, y, z, w}
}

func BVector4FromArray(a [4]bool) BVector4 {
	return BVector4{a[0], a[1], a[2], a[3]}
}

func (v BVector4) AsArray() [4]bool {
	return [4]bool{v.X, v.Y, v.Z, v.W}
}

func (BVector4) Dim() int { return 4 }

func (v BVector4) At(i int) bool {
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

func (v *BVector4) Set(i int, x bool) {
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

func (v BVector4) Truncate(i int) BVector3 {
	switch i {
	case 0:
		return BVector3{v.Y, v.Z, v.W}
	case 1:
		return BVector3{v.X, v.Z, v.W}
	case 2:
		return BVector3{v.X, v.Y, v.W}
	case 3:
		return BVector3{v.X, v.Y, v.Z}
	}
	panic(indexError("component", i, 4))
}

// Any reports whether any component is true.
func (v BVector4) Any() bool {
	return v.X || v.Y || v.Z || v.W
}

// All reports whether every component is true.
func (v BVector4) All() bool {
	return v.X && v.Y && v.Z && v.W
}

// Not returns the component-wise complement.
func (v BVector4) Not() BVector4 {
	return BVector4{!v.X, !v.Y, !v.Z, !v.W}
}

func (v BVector4) Map(f func(bool) bool) BVector4 {
	return BVector4{f(v.X), f(v.Y), f(v.Z), f(v.W)}
}

func (v BVector4) Zip(u BVector4, f func(bool, bool) bool) BVector4 {
	return BVector4{f(v.X, u.X), f(v.Y, u.Y), f(v.Z, u.Z), f(v.W, u.W)}
}

func (v BVector4) Compare(u BVector4, f func(bool, bool) bool) BVector4 {
	return v.Zip(u, f)
}

func (v BVector4) String() string {
	return fmt.Sprintf("bvec4(%t, %t, %t, %t)", v.X, v.Y, v.Z, v.W)
}

// Generate implements quick.Generator.
func (BVector4) Generate(r *rand.Rand, _ int) reflect.Value {
	return reflect.ValueOf(BVector4{r.Intn(2) == 1, r.Intn(2) == 1, r.Intn(2) == 1, r.Intn(2) == 1})
}
