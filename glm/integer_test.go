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

	"github.com/stretchr/testify/assert"
)

func TestUAddCarry(t *testing.T) {
	sum, carry := UAddCarry(UVec2{math.MaxUint32, 1}, UVec2{1, 2})
	assert.Equal(t, UVec2{0, 3}, sum)
	assert.Equal(t, UVec2{1, 0}, carry)
}

func TestUSubBorrow(t *testing.T) {
	diff, borrow := USubBorrow(UVec3{0, 5, 7}, UVec3{1, 3, 7})
	assert.Equal(t, UVec3{math.MaxUint32, 2, 0}, diff)
	assert.Equal(t, UVec3{1, 0, 0}, borrow)
}

func TestMulExtended(t *testing.T) {
	msb, lsb := UMulExtended(Uint(math.MaxUint32), Uint(2))
	assert.Equal(t, Uint(1), msb)
	assert.Equal(t, Uint(math.MaxUint32-1), lsb)

	imsb, ilsb := IMulExtended(IVec2{-1, 0x40000000}, IVec2{1, 4})
	assert.Equal(t, IVec2{-1, 1}, imsb)
	assert.Equal(t, IVec2{-1, 0}, ilsb)
}

func TestBitfieldExtract(t *testing.T) {
	tests := []struct {
		name          string
		value         Int
		offset, count int
		want          Int
	}{
		{"positive field", 0x70, 4, 4, 7},
		{"sign extended", 0xF0, 4, 4, -1},
		{"whole word", -5, 0, 32, -5},
		{"zero count", 0x70, 4, 0, 0},
		{"out of range", 0x70, 30, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BitfieldExtract(tt.value, tt.offset, tt.count); got != tt.want {
				t.Errorf("got %#x, want %#x", got, tt.want)
			}
		})
	}
	assert.Equal(t, UVec2{0xF, 0x3}, BitfieldExtract(UVec2{0xF0, 0x30}, 4, 4))
}

func TestBitfieldInsert(t *testing.T) {
	assert.Equal(t, Uint(0xFF3F), BitfieldInsert(Uint(0xFFFF), Uint(0x3), 4, 4))
	assert.Equal(t, Uint(0xFFFF), BitfieldInsert(Uint(0xFFFF), Uint(0x3), 4, 0))
	assert.Equal(t, IVec2{-1, 0}, BitfieldInsert(IVec2{0, -1}, IVec2{-1, 0}, 0, 32))
	assert.Equal(t, Int(-1), BitfieldInsert(Int(0), Int(-1), 0, 32))
	assert.Equal(t, Int(math.MaxInt32), BitfieldInsert(Int(-1), Int(0), 31, 1))
}

func TestBitfieldReverse(t *testing.T) {
	assert.Equal(t, Uint(0x80000000), BitfieldReverse(Uint(1)))
	assert.Equal(t, Int(math.MinInt32), BitfieldReverse(Int(1)))
	assert.Equal(t, UVec2{0xF0000000, 0x0000000F}, BitfieldReverse(UVec2{0xF, 0xF0000000}))
}

func TestBitCount(t *testing.T) {
	assert.Equal(t, IVec3{0, 3, 32}, BitCount(UVec3{0, 7, math.MaxUint32}))
	assert.Equal(t, Int(32), BitCount(Int(-1)))
}

func TestFindLSBMSB(t *testing.T) {
	assert.Equal(t, IVec4{-1, 0, 3, 3}, FindLSB(IVec4{0, 1, 8, -8}))
	assert.Equal(t, IVec4{-1, 0, 8, -1}, FindMSB(IVec4{0, 1, 0x100, -1}))
	assert.Equal(t, Int(0), FindMSB(Int(-2)))
	assert.Equal(t, Int(31), FindMSB(Uint(0x80000000)))
	assert.Equal(t, Int(-1), FindLSB(Uint(0)))
}

func TestBitwise(t *testing.T) {
	x, y := UVec2{0b1100, 0xFF}, UVec2{0b1010, 0x0F}
	assert.Equal(t, UVec2{0b1000, 0x0F}, BitAnd(x, y))
	assert.Equal(t, UVec2{0b1110, 0xFF}, BitOr(x, y))
	assert.Equal(t, UVec2{0b0110, 0xF0}, BitXor(x, y))
	assert.Equal(t, Uint(0xFFFFFFF0), BitNot(Uint(0xF)))
	assert.Equal(t, IVec2{-1, 0}, BitNot(IVec2{0, -1}))
}

func TestShifts(t *testing.T) {
	assert.Equal(t, IVec2{8, -8}, Shl(IVec2{1, -4}, IVec2{3, 1}))
	assert.Equal(t, IVec2{-4, 4}, Shr(IVec2{-8, 16}, IVec2{1, 2}))
	assert.Equal(t, UVec2{0x40000000, 1}, Shr(UVec2{0x80000000, 4}, UVec2{1, 2}))
}
