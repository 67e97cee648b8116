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
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
)

func TestPackUnorm(t *testing.T) {
	assert.Equal(t, Uint(0x0080FF00), PackUnorm4x8(Vec4{0, 1, 0.5, -1}))
	assert.Equal(t, Uint(0x0000FFFF), PackUnorm2x16(Vec2{1, 0}))
	assert.Equal(t, Uint(0xFFFF0000), PackUnorm2x16(Vec2{-3, 7}))
	assert.Equal(t, Vec4{1, 0, 0, 1}, UnpackUnorm4x8(0xFF0000FF))
	assert.Equal(t, Vec2{0, 1}, UnpackUnorm2x16(0xFFFF0000))
}

func TestPackSnorm(t *testing.T) {
	assert.Equal(t, Uint(0x40007F81), PackSnorm4x8(Vec4{-1, 1, 0, 0.5}))
	assert.Equal(t, Uint(0x7FFF8001), PackSnorm2x16(Vec2{-1, 1}))
	assert.Equal(t, Vec4{-1, -1, 1, 0}, UnpackSnorm4x8(0x007F8081))
	assert.Equal(t, Vec2{-1, 1}, UnpackSnorm2x16(0x7FFF8000))
}

func TestUnorm4x8RoundTrip(t *testing.T) {
	f := func(p uint32) bool {
		return PackUnorm4x8(UnpackUnorm4x8(Uint(p))) == Uint(p)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestUnorm2x16RoundTrip(t *testing.T) {
	f := func(p uint32) bool {
		return PackUnorm2x16(UnpackUnorm2x16(Uint(p))) == Uint(p)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestPackDouble2x32(t *testing.T) {
	assert.Equal(t, Double(1), PackDouble2x32(UVec2{0, 0x3FF00000}))
	assert.Equal(t, UVec2{0, 0xC0000000}, UnpackDouble2x32(-2))

	f := func(x, y uint32) bool {
		v := UVec2{Uint(x), Uint(y)}
		d := PackDouble2x32(v)
		return math.IsNaN(float64(d)) || UnpackDouble2x32(d) == v
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestFloatToHalf(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want uint16
	}{
		{"one", 1, 0x3C00},
		{"minus two", -2, 0xC000},
		{"zero", 0, 0},
		{"negative zero", float32(math.Copysign(0, -1)), 0x8000},
		{"max", 65504, 0x7BFF},
		{"rounds to inf", 65520, 0x7C00},
		{"overflow", 1e6, 0x7C00},
		{"negative overflow", -1e6, 0xFC00},
		{"inf", float32(math.Inf(1)), 0x7C00},
		{"smallest normal", 0x1p-14, 0x0400},
		{"smallest subnormal", 0x1p-24, 0x0001},
		{"half of smallest subnormal", 0x1p-25, 0},
		{"above half of smallest subnormal", 0x1.8p-25, 0x0001},
		{"underflow", 1e-10, 0},
		{"tie to even down", 1 + 0x1p-11, 0x3C00},
		{"tie to even up", 1 + 3*0x1p-11, 0x3C02},
		{"third", 1.0 / 3, 0x3555},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := floatToHalf(tt.in); got != tt.want {
				t.Errorf("floatToHalf(%v): got %#04x, want %#04x", tt.in, got, tt.want)
			}
		})
	}

	nan := floatToHalf(float32(math.NaN()))
	if nan&0x7C00 != 0x7C00 || nan&0x3FF == 0 {
		t.Errorf("NaN: got %#04x, want a NaN encoding", nan)
	}
}

func TestHalfRoundTrip(t *testing.T) {
	for h := 0; h <= 0xFFFF; h++ {
		f := halfToFloat(uint16(h))
		if f != f {
			continue
		}
		if got := floatToHalf(f); got != uint16(h) {
			t.Fatalf("%#04x: round trip gave %#04x via %v", h, got, f)
		}
	}
}

func TestPackHalf2x16(t *testing.T) {
	assert.Equal(t, Uint(0xC0003C00), PackHalf2x16(Vec2{1, -2}))
	assert.Equal(t, Vec2{1, -2}, UnpackHalf2x16(0xC0003C00))
	assert.Equal(t, Vec2{65504, 0x1p-24}, UnpackHalf2x16(0x00017BFF))
}
