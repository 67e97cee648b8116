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

func TestVectorRelational(t *testing.T) {
	x, y := Vec3{1, 2, 3}, Vec3{2, 2, 2}
	assert.Equal(t, BVec3{true, false, false}, LessThan(x, y))
	assert.Equal(t, BVec3{true, true, false}, LessThanEqual(x, y))
	assert.Equal(t, BVec3{false, false, true}, GreaterThan(x, y))
	assert.Equal(t, BVec3{false, true, true}, GreaterThanEqual(x, y))
	assert.Equal(t, BVec3{false, true, false}, Equal(x, y))
	assert.Equal(t, BVec3{true, false, true}, NotEqual(x, y))

	assert.Equal(t, BVec2{true, false}, LessThan(UVec2{0, 7}, UVec2{1, 7}))
	assert.Equal(t, BVec4{false, true, false, true}, Equal(IVec4{1, 2, 3, 4}, IVec4{0, 2, 0, 4}))
	assert.Equal(t, BVec2{true, false}, Equal(BVec2{true, false}, BVec2{true, true}))
}

func TestRelationalNaN(t *testing.T) {
	nan := Float(math.NaN())
	v := Vec2{nan, 1}
	assert.Equal(t, BVec2{false, true}, Equal(v, v))
	assert.Equal(t, BVec2{true, false}, NotEqual(v, v))
	assert.False(t, Any(LessThan(v, Vec2{nan, 0})))
}

func TestAnyAllNot(t *testing.T) {
	tests := []struct {
		v        BVec4
		any, all bool
	}{
		{BVec4{}, false, false},
		{BVec4{false, false, true, false}, true, false},
		{BVec4{true, true, true, true}, true, true},
	}
	for _, tt := range tests {
		if got := Any(tt.v); got != tt.any {
			t.Errorf("Any(%v): got %v, want %v", tt.v, got, tt.any)
		}
		if got := All(tt.v); got != tt.all {
			t.Errorf("All(%v): got %v, want %v", tt.v, got, tt.all)
		}
	}
	assert.Equal(t, BVec2{false, true}, Not(BVec2{true, false}))
}

func TestLessThanComplement(t *testing.T) {
	f := func(x, y IVec4) bool {
		return Not(LessThan(x, y)) == GreaterThanEqual(x, y)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
