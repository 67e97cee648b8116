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
	"math"
	"reflect"
)

// Castable is any scalar kind or any vector.
type Castable interface {
	Primitive |
		Vec2 | Vec3 | Vec4 | DVec2 | DVec3 | DVec4 |
		IVec2 | IVec3 | IVec4 | UVec2 | UVec3 | UVec4 |
		BVec2 | BVec3 | BVec4
}

// Castable2 is any scalar kind or any two-component vector.
type Castable2 interface {
	Primitive | Vec2 | DVec2 | IVec2 | UVec2 | BVec2
}

// Castable3 is any scalar kind or any three-component vector.
type Castable3 interface {
	Primitive | Vec3 | DVec3 | IVec3 | UVec3 | BVec3
}

// Castable4 is any scalar kind or any four-component vector.
type Castable4 interface {
	Primitive | Vec4 | DVec4 | IVec4 | UVec4 | BVec4
}

// Cast converts x to the kind T, failing with an error wrapping
// ErrOutOfRange when the value is not representable.
//
// Floats are truncated toward zero when converted to an integer kind; NaN
// never converts to an integer. Infinities and NaN convert between float
// kinds unchanged, but a finite double too large for a float does not.
// Bools convert to 0 or 1, and a number converts to true when nonzero.
func Cast[T, S Primitive](x S) (T, error) {
	var t T
	err := castValue(reflect.ValueOf(&t).Elem(), reflect.ValueOf(x))
	return t, err
}

// The GLSL constructor-style casts. A vector argument contributes its first
// component. They panic with an error wrapping ErrOutOfRange when the value
// does not fit.
func ToInt[S Castable](x S) Int       { return castScalar[Int](x) }
func ToUint[S Castable](x S) Uint     { return castScalar[Uint](x) }
func ToFloat[S Castable](x S) Float   { return castScalar[Float](x) }
func ToDouble[S Castable](x S) Double { return castScalar[Double](x) }
func ToBool[S Castable](x S) bool     { return castScalar[bool](x) }

// Vector casts broadcast a scalar argument, or convert a vector of the
// same dimension component by component. Like ToInt, they panic when a
// component does not fit.
func ToVec2[S Castable2](x S) Vec2   { return castVector[Vec2](x) }
func ToDVec2[S Castable2](x S) DVec2 { return castVector[DVec2](x) }
func ToIVec2[S Castable2](x S) IVec2 { return castVector[IVec2](x) }
func ToUVec2[S Castable2](x S) UVec2 { return castVector[UVec2](x) }
func ToBVec2[S Castable2](x S) BVec2 { return castVector[BVec2](x) }
func ToVec3[S Castable3](x S) Vec3   { return castVector[Vec3](x) }
func ToDVec3[S Castable3](x S) DVec3 { return castVector[DVec3](x) }
func ToIVec3[S Castable3](x S) IVec3 { return castVector[IVec3](x) }
func ToUVec3[S Castable3](x S) UVec3 { return castVector[UVec3](x) }
func ToBVec3[S Castable3](x S) BVec3 { return castVector[BVec3](x) }
func ToVec4[S Castable4](x S) Vec4   { return castVector[Vec4](x) }
func ToDVec4[S Castable4](x S) DVec4 { return castVector[DVec4](x) }
func ToIVec4[S Castable4](x S) IVec4 { return castVector[IVec4](x) }
func ToUVec4[S Castable4](x S) UVec4 { return castVector[UVec4](x) }
func ToBVec4[S Castable4](x S) BVec4 { return castVector[BVec4](x) }

func castScalar[T Primitive](x any) T {
	var t T
	src := reflect.ValueOf(x)
	if src.Kind() == reflect.Struct {
		src = src.Field(0)
	}
	if err := castValue(reflect.ValueOf(&t).Elem(), src); err != nil {
		panic(err)
	}
	return t
}

func castVector[V any](x any) V {
	var v V
	dst := reflect.ValueOf(&v).Elem()
	src := reflect.ValueOf(x)
	for k := 0; k < dst.NumField(); k++ {
		s := src
		if src.Kind() == reflect.Struct {
			s = src.Field(k)
		}
		if err := castValue(dst.Field(k), s); err != nil {
			panic(fmt.Errorf("component %d: %w", k, err))
		}
	}
	return v
}

// castValue stores src into dst, which must be settable. Both hold one of
// the Primitive kinds.
func castValue(dst, src reflect.Value) error {
	switch src.Kind() {
	case reflect.Bool:
		if dst.Kind() == reflect.Bool {
			dst.SetBool(src.Bool())
			return nil
		}
		var n int64
		if src.Bool() {
			n = 1
		}
		return castInt(dst, n)
	case reflect.Float32, reflect.Float64:
		return castFloat(dst, src.Float())
	case reflect.Int32:
		return castInt(dst, src.Int())
	case reflect.Uint32:
		return castUint(dst, src.Uint())
	}
	return fmt.Errorf("glm: cannot cast from %s", src.Type())
}

func castFloat(dst reflect.Value, f float64) error {
	switch dst.Kind() {
	case reflect.Bool:
		dst.SetBool(f != 0)
	case reflect.Float32:
		if !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
			return rangeError(f, dst)
		}
		dst.SetFloat(f)
	case reflect.Float64:
		dst.SetFloat(f)
	case reflect.Int32:
		t := math.Trunc(f)
		if math.IsNaN(t) || t < math.MinInt32 || t > math.MaxInt32 {
			return rangeError(f, dst)
		}
		dst.SetInt(int64(t))
	case reflect.Uint32:
		t := math.Trunc(f)
		if math.IsNaN(t) || t < 0 || t > math.MaxUint32 {
			return rangeError(f, dst)
		}
		dst.SetUint(uint64(t))
	default:
		return fmt.Errorf("glm: cannot cast to %s", dst.Type())
	}
	return nil
}

func castInt(dst reflect.Value, i int64) error {
	switch dst.Kind() {
	case reflect.Bool:
		dst.SetBool(i != 0)
	case reflect.Float32, reflect.Float64:
		dst.SetFloat(float64(i))
	case reflect.Int32:
		if dst.OverflowInt(i) {
			return rangeError(i, dst)
		}
		dst.SetInt(i)
	case reflect.Uint32:
		if i < 0 || dst.OverflowUint(uint64(i)) {
			return rangeError(i, dst)
		}
		dst.SetUint(uint64(i))
	default:
		return fmt.Errorf("glm: cannot cast to %s", dst.Type())
	}
	return nil
}

func castUint(dst reflect.Value, u uint64) error {
	if dst.Kind() == reflect.Int32 && u > math.MaxInt32 {
		return rangeError(u, dst)
	}
	if dst.Kind() == reflect.Uint32 {
		dst.SetUint(u)
		return nil
	}
	return castInt(dst, int64(u))
}

func rangeError(v any, dst reflect.Value) error {
	return fmt.Errorf("%w: %v does not fit in %s", ErrOutOfRange, v, dst.Type())
}
