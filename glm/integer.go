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

import "math/bits"

// Integer builtins. Signed kinds are handled through their two's
// complement bit pattern.

// UAddCarry adds x and y modulo 2**32. carry is 1 where the sum overflowed.
func UAddCarry[G GenUType[G]](x, y G) (sum, carry G) {
	return x.Map2(y, func(a, b Uint) (Uint, Uint) {
		s, c := bits.Add32(uint32(a), uint32(b), 0)
		return Uint(s), Uint(c)
	})
}

// USubBorrow subtracts y from x modulo 2**32. borrow is 1 where y > x.
func USubBorrow[G GenUType[G]](x, y G) (diff, borrow G) {
	return x.Map2(y, func(a, b Uint) (Uint, Uint) {
		d, c := bits.Sub32(uint32(a), uint32(b), 0)
		return Uint(d), Uint(c)
	})
}

// UMulExtended returns the 64-bit product of x and y split into its high
// and low words.
func UMulExtended[G GenUType[G]](x, y G) (msb, lsb G) {
	return x.Map2(y, func(a, b Uint) (Uint, Uint) {
		hi, lo := bits.Mul32(uint32(a), uint32(b))
		return Uint(hi), Uint(lo)
	})
}

// IMulExtended is the signed form of UMulExtended.
func IMulExtended[G GenIType[G]](x, y G) (msb, lsb G) {
	return x.Map2(y, func(a, b Int) (Int, Int) {
		p := int64(a) * int64(b)
		return Int(p >> 32), Int(p)
	})
}

// BitfieldExtract returns bits [offset, offset+count) of every component in
// the low bits of the result. Signed kinds are sign extended from the top
// extracted bit. The result is zero when count is 0 or the range does not
// fit in 32 bits.
func BitfieldExtract[G GenInt[G, E], E BaseInt](value G, offset, count int) G {
	return value.Map(func(x E) E { return bitfieldExtractOf(x, offset, count) })
}

// BitfieldInsert replaces bits [offset, offset+count) of base with the low
// count bits of insert. base is returned unchanged when count is 0 or the
// range does not fit in 32 bits.
func BitfieldInsert[G GenInt[G, E], E BaseInt](base, insert G, offset, count int) G {
	if count <= 0 || offset < 0 || offset+count > 32 {
		return base
	}
	mask := fieldMask(count) << offset
	return base.Zip(insert, func(b, i E) E {
		return E(uint32(b)&^mask | uint32(i)<<offset&mask)
	})
}

// BitfieldReverse reverses the bits of every component.
func BitfieldReverse[G GenInt[G, E], E BaseInt](value G) G {
	return value.Map(func(x E) E { return E(bits.Reverse32(uint32(x))) })
}

// BitCount returns the number of set bits of every component.
func BitCount[G IntIntRel[G, E, GI], E BaseInt, GI any](value G) GI {
	return value.MapInt(func(x E) Int { return Int(bits.OnesCount32(uint32(x))) })
}

// FindLSB returns the index of the least significant set bit, or -1 for
// zero.
func FindLSB[G IntIntRel[G, E, GI], E BaseInt, GI any](value G) GI {
	return value.MapInt(func(x E) Int {
		if x == 0 {
			return -1
		}
		return Int(bits.TrailingZeros32(uint32(x)))
	})
}

// FindMSB returns the index of the most significant set bit. For a negative
// signed value it is the most significant clear bit. Zero and -1 give -1.
func FindMSB[G IntIntRel[G, E, GI], E BaseInt, GI any](value G) GI {
	return value.MapInt(func(x E) Int {
		u := uint32(x)
		if x < 0 {
			u = ^u
		}
		return Int(31 - bits.LeadingZeros32(u))
	})
}

// BitAnd returns x & y.
func BitAnd[G GenInt[G, E], E BaseInt](x, y G) G {
	return x.Zip(y, func(a, b E) E { return a & b })
}

// BitOr returns x | y.
func BitOr[G GenInt[G, E], E BaseInt](x, y G) G {
	return x.Zip(y, func(a, b E) E { return a | b })
}

// BitXor returns x ^ y.
func BitXor[G GenInt[G, E], E BaseInt](x, y G) G {
	return x.Zip(y, func(a, b E) E { return a ^ b })
}

// BitNot returns ^x.
func BitNot[G GenInt[G, E], E BaseInt](x G) G {
	return x.Map(func(a E) E { return ^a })
}

// Shl shifts each component of x left by the matching component of y.
func Shl[G GenInt[G, E], E BaseInt](x, y G) G {
	return x.Zip(y, func(a, b E) E { return a << uint32(b) })
}

// Shr shifts each component of x right by the matching component of y.
// Signed kinds shift arithmetically.
func Shr[G GenInt[G, E], E BaseInt](x, y G) G {
	return x.Zip(y, func(a, b E) E { return a >> uint32(b) })
}

// fieldMask returns count low bits set. A count of 32 sets every bit.
func fieldMask(count int) uint32 {
	return uint32(1)<<count - 1
}

func bitfieldExtractOf[E BaseInt](x E, offset, count int) E {
	if count <= 0 || offset < 0 || offset+count > 32 {
		return 0
	}
	mask := fieldMask(count)
	u := uint32(x) >> offset & mask
	if isSigned[E]() && count < 32 && u&(1<<(count-1)) != 0 {
		u |= ^mask
	}
	return E(u)
}
