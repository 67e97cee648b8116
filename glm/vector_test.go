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
	"errors"
	"fmt"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expectIndexPanic runs f and checks that it panics with ErrIndexOutOfRange.
func expectIndexPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange), "got %v", err)
	}()
	f()
}

func TestVectorConstruct(t *testing.T) {
	v := NewVector3[Float](1, 2, 3)
	assert.Equal(t, Vec3{1, 2, 3}, v)
	assert.Equal(t, [3]Float{1, 2, 3}, v.AsArray())
	assert.Equal(t, v, Vector3FromArray([3]Float{1, 2, 3}))
	assert.Equal(t, 3, v.Dim())
	for i := 0; i < 3; i++ {
		assert.Equal(t, Float(i+1), v.At(i))
	}
	expectIndexPanic(t, func() { v.At(3) })
}

func TestVectorArrayPtrAliases(t *testing.T) {
	v := IVec4{1, 2, 3, 4}
	p := v.AsArrayPtr()
	p[2] = 30
	assert.Equal(t, Int(30), v.Z)

	a := [2]Uint{5, 6}
	w := Vector2FromArrayPtr(&a)
	w.Y = 60
	assert.Equal(t, Uint(60), a[1])
}

func TestVectorSet(t *testing.T) {
	v := Vec4{}
	v.Set(0, 1)
	v.Set(3, 4)
	assert.Equal(t, Vec4{1, 0, 0, 4}, v)
	expectIndexPanic(t, func() { v.Set(4, 1) })
}

func TestVectorExtendTruncate(t *testing.T) {
	v2 := Vec2{1, 2}
	assert.Equal(t, Vec3{1, 2, 3}, v2.Extend(3))
	assert.Equal(t, Vec4{1, 2, 3, 4}, v2.Extend(3).Extend(4))

	v4 := Vec4{1, 2, 3, 4}
	tests := []struct {
		i    int
		want Vec3
	}{
		{0, Vec3{2, 3, 4}},
		{1, Vec3{1, 3, 4}},
		{2, Vec3{1, 2, 4}},
		{3, Vec3{1, 2, 3}},
	}
	for _, tt := range tests {
		if got := v4.Truncate(tt.i); got != tt.want {
			t.Errorf("Truncate(%d): got %v, want %v", tt.i, got, tt.want)
		}
	}
	assert.Equal(t, Vec2{1, 3}, Vec3{1, 2, 3}.Truncate(1))
	expectIndexPanic(t, func() { v4.Truncate(4) })
	expectIndexPanic(t, func() { Vec3{}.Truncate(3) })
}

func TestVectorArithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	assert.Equal(t, Vec3{5, 7, 9}, a.Add(b))
	assert.Equal(t, Vec3{-3, -3, -3}, a.Sub(b))
	assert.Equal(t, Vec3{4, 10, 18}, a.Mul(b))
	assert.Equal(t, Vec3{4, 2.5, 2}, b.Div(a))
	assert.Equal(t, Vec3{0, 1, 0}, b.Rem(a))
	assert.Equal(t, Vec3{-1, -2, -3}, a.Neg())
	assert.Equal(t, Vec3{3, 4, 5}, a.AddS(2))
	assert.Equal(t, Vec3{2, 4, 6}, a.MulS(2))
	assert.Equal(t, IVec2{1, 0}, IVec2{7, 6}.RemS(3))
	assert.Equal(t, UVec2{3, 3}, UVec2{7, 6}.DivS(2))
	assert.Equal(t, UVec2{3, 2}, UVec2{7, 5}.DivS(2))
}

func TestVectorReductions(t *testing.T) {
	v := IVec4{3, -1, 4, 2}
	assert.Equal(t, Int(8), v.Sum())
	assert.Equal(t, Int(-24), v.Product())
	assert.Equal(t, Int(-1), v.Min())
	assert.Equal(t, Int(4), v.Max())
	assert.Equal(t, Int(8), v.Fold(0, addOf[Int]))
}

func TestVectorEqualityIsExact(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{1, 2 + 2*Epsilon[Float]()}
	assert.NotEqual(t, a, b)
	assert.True(t, a.IsCloseTo(b, 1e-5))
	assert.False(t, a.IsApproxEq(Vec2{1, 2.1}))
	assert.True(t, a.IsApproxEq(a))
}

func TestVectorString(t *testing.T) {
	tests := []struct {
		v    fmt.Stringer
		want string
	}{
		{Vec3{1, 2.5, -3}, "vec3(1, 2.5, -3)"},
		{DVec2{0.5, 1}, "dvec2(0.5, 1)"},
		{IVec4{1, -2, 3, -4}, "ivec4(1, -2, 3, -4)"},
		{UVec2{7, 8}, "uvec2(7, 8)"},
		{BVec3{true, false, true}, "bvec3(true, false, true)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.v.String())
	}
}

func TestVectorMapIdentity(t *testing.T) {
	id := func(x Float) Float { return x }
	f := func(v Vec4) bool { return v.Map(id) == v }
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
	g := func(v IVec3) bool { return v.Map(func(x Int) Int { return x }) == v }
	if err := quick.Check(g, nil); err != nil {
		t.Error(err)
	}
}

func TestVectorSplitMap2(t *testing.T) {
	lo, hi := Vec3{1.5, -2.25, 3}.Split(func(x Float) (Float, Float) { return x - 1, x + 1 })
	assert.Equal(t, Vec3{0.5, -3.25, 2}, lo)
	assert.Equal(t, Vec3{2.5, -1.25, 4}, hi)

	q, r := IVec2{7, 9}.Map2(IVec2{2, 4}, func(a, b Int) (Int, Int) { return a / b, a % b })
	assert.Equal(t, IVec2{3, 2}, q)
	assert.Equal(t, IVec2{1, 1}, r)
}

func TestSwizzle(t *testing.T) {
	v := Vec4{1, 2, 3, 4}
	assert.Equal(t, Vec2{4, 1}, v.WX())
	assert.Equal(t, Vec3{3, 2, 1}, v.ZYX())
	assert.Equal(t, Vec3{1, 1, 1}, v.XXX())
	assert.Equal(t, Vec2{2, 2}, Vec2{1, 2}.YY())
	assert.Equal(t, BVec2{false, true}, BVec3{true, false, true}.YZ())
}

func TestBVector(t *testing.T) {
	b := BVec4{true, false, true, false}
	assert.True(t, b.Any())
	assert.False(t, b.All())
	assert.Equal(t, BVec4{false, true, false, true}, b.Not())
	assert.Equal(t, BVec3{true, false, false}, b.Truncate(2))
	assert.False(t, BVec2{}.Any())
	assert.True(t, BVec2{true, true}.All())
	expectIndexPanic(t, func() { b.At(4) })
}

func TestGenerateRange(t *testing.T) {
	f := func(v UVec3) bool { return v.X <= 50 && v.Y <= 50 && v.Z <= 50 }
	require.NoError(t, quick.Check(f, &quick.Config{Values: nil, MaxCount: 200}))
}
