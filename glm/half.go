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

// IEEE 754 binary16 conversion used by PackHalf2x16 and UnpackHalf2x16.
//
// Format: Sign (1 bit) | Exponent (5 bits, bias 15) | Mantissa (10 bits)
//
//	S | EEEEE | MMMMMMMMMM
const (
	halfExpBias = 15
	halfInf     = 0x7C00
	halfQNaN    = 0x7E00
)

// floatToHalf narrows f to binary16 with round-to-nearest-even. Values
// that round past 65504 become infinity and values below half the
// smallest subnormal become a signed zero.
func floatToHalf(f float32) uint16 {
	b := math.Float32bits(f)
	sign := uint16(b>>16) & 0x8000
	exp := int(b>>23&0xFF) - 127 + halfExpBias
	mant := b & 0x7FFFFF

	switch {
	case b&0x7FFFFFFF > 0x7F800000:
		return sign | halfQNaN | uint16(mant>>13)
	case exp >= 0x1F:
		return sign | halfInf
	case exp <= 0:
		if exp < -10 {
			return sign
		}
		// Subnormal: the implicit 1 joins the mantissa and the whole
		// significand is shifted into place.
		return sign | uint16(roundShift(mant|0x800000, uint(14-exp)))
	}
	// A carry out of the mantissa bumps the exponent, up to infinity.
	return sign | uint16(uint32(exp)<<10+roundShift(mant, 13))
}

// roundShift returns x >> shift rounded to nearest, ties to even.
func roundShift(x uint32, shift uint) uint32 {
	q := x >> shift
	rem := x & (1<<shift - 1)
	half := uint32(1) << (shift - 1)
	if rem > half || rem == half && q&1 == 1 {
		q++
	}
	return q
}

// halfToFloat widens a binary16 value. Every binary16 value is exactly
// representable in float32.
func halfToFloat(h uint16) float32 {
	sign := uint32(h&0x8000) << 16
	exp := uint32(h>>10) & 0x1F
	mant := uint32(h) & 0x3FF

	switch {
	case exp == 0x1F:
		return math.Float32frombits(sign | 0x7F800000 | mant<<13)
	case exp != 0:
		return math.Float32frombits(sign | (exp+127-halfExpBias)<<23 | mant<<13)
	case mant == 0:
		return math.Float32frombits(sign)
	}
	f := float32(mant) * 0x1p-24
	return math.Float32frombits(sign | math.Float32bits(f))
}

// PackHalf2x16 converts both components to binary16 and packs them, x in
// the low 16 bits.
func PackHalf2x16(v Vec2) Uint {
	return Uint(uint32(floatToHalf(float32(v.X))) | uint32(floatToHalf(float32(v.Y)))<<16)
}

// UnpackHalf2x16 is the inverse of PackHalf2x16.
func UnpackHalf2x16(p Uint) Vec2 {
	return Vec2{Float(halfToFloat(uint16(p))), Float(halfToFloat(uint16(p >> 16)))}
}
