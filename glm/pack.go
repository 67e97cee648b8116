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

import "math"

// Normalized integer packing. The first component always lands in the
// least significant bits. Values are clamped, scaled and rounded half away
// from zero, so 0.5/255 packs to 1.

// PackUnorm2x16 packs v, clamped to [0, 1], into two 16-bit unsigned
// normalized integers.
func PackUnorm2x16(v Vec2) Uint {
	u := Round(ClampS(v, 0, 1).MulS(65535))
	return Uint(uint32(u.X) | uint32(u.Y)<<16)
}

// UnpackUnorm2x16 is the inverse of PackUnorm2x16.
func UnpackUnorm2x16(p Uint) Vec2 {
	return Vec2{Float(uint16(p)), Float(uint16(p >> 16))}.DivS(65535)
}

// PackSnorm2x16 packs v, clamped to [-1, 1], into two 16-bit signed
// normalized integers.
func PackSnorm2x16(v Vec2) Uint {
	s := Round(ClampS(v, -1, 1).MulS(32767))
	return Uint(uint32(uint16(int16(s.X))) | uint32(uint16(int16(s.Y)))<<16)
}

// UnpackSnorm2x16 is the inverse of PackSnorm2x16. -32768 unpacks to -1.
func UnpackSnorm2x16(p Uint) Vec2 {
	v := Vec2{Float(int16(uint16(p))), Float(int16(uint16(p >> 16)))}
	return ClampS(v.DivS(32767), -1, 1)
}

// PackUnorm4x8 packs v, clamped to [0, 1], into four 8-bit unsigned
// normalized integers.
func PackUnorm4x8(v Vec4) Uint {
	u := Round(ClampS(v, 0, 1).MulS(255))
	return Uint(uint32(u.X) | uint32(u.Y)<<8 | uint32(u.Z)<<16 | uint32(u.W)<<24)
}

// UnpackUnorm4x8 is the inverse of PackUnorm4x8.
func UnpackUnorm4x8(p Uint) Vec4 {
	return Vec4{Float(uint8(p)), Float(uint8(p >> 8)), Float(uint8(p >> 16)), Float(uint8(p >> 24))}.DivS(255)
}

// PackSnorm4x8 packs v, clamped to [-1, 1], into four 8-bit signed
// normalized integers.
func PackSnorm4x8(v Vec4) Uint {
	s := Round(ClampS(v, -1, 1).MulS(127))
	b := func(f Float) uint32 { return uint32(uint8(int8(f))) }
	return Uint(b(s.X) | b(s.Y)<<8 | b(s.Z)<<16 | b(s.W)<<24)
}

// UnpackSnorm4x8 is the inverse of PackSnorm4x8. -128 unpacks to -1.
func UnpackSnorm4x8(p Uint) Vec4 {
	b := func(shift uint) Float { return Float(int8(uint8(p >> shift))) }
	v := Vec4{b(0), b(8), b(16), b(24)}
	return ClampS(v.DivS(127), -1, 1)
}

// PackDouble2x32 reinterprets the 64 bits of v as a Double, x in the low
// word.
func PackDouble2x32(v UVec2) Double {
	return Double(math.Float64frombits(uint64(v.X) | uint64(v.Y)<<32))
}

// UnpackDouble2x32 is the inverse of PackDouble2x32.
func UnpackDouble2x32(d Double) UVec2 {
	b := math.Float64bits(float64(d))
	return UVec2{Uint(b), Uint(b >> 32)}
}
