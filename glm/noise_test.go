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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoiseAtLatticeOrigin(t *testing.T) {
	assert.InDelta(t, 0, float64(Noise1(Float(0))), 1e-6)
	assert.InDelta(t, 0, float64(Noise1(Vec2{})), 1e-6)
}

func TestNoiseFloatMatchesVec2(t *testing.T) {
	for _, x := range []Float{0.3, -1.7, 12.25, 100.5} {
		assert.Equal(t, Noise1(Vec2{x, 0}), Noise1(x))
	}
}

func TestNoiseDeterministic(t *testing.T) {
	p := Vec3{1.5, -2.25, 7.125}
	assert.Equal(t, Noise1(p), Noise1(p))
	assert.Equal(t, Noise4(p), Noise4(p))
}

func TestNoiseComponents(t *testing.T) {
	p := Vec2{0.7, -3.1}
	assert.Equal(t, Vec2{Noise1(p), Noise1(p.Neg())}, Noise2(p))

	q := Vec3{0.25, 4.5, -1}
	n3 := Noise3(q)
	assert.Equal(t, Noise1(q), n3.Y)
	assert.Equal(t, Noise1(q.SubS(1)), n3.X)
	assert.Equal(t, Noise1(q.AddS(1)), n3.Z)

	n4 := Noise4(q)
	assert.Equal(t, n3, n4.XYZ())
	assert.Equal(t, Noise1(q.AddS(2)), n4.W)
}

func TestNoiseRange(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	coord := func() Float { return Float(r.Float64()*200 - 100) }
	for i := 0; i < 2000; i++ {
		values := []Float{
			Noise1(coord()),
			Noise1(Vec2{coord(), coord()}),
			Noise1(Vec3{coord(), coord(), coord()}),
			Noise1(Vec4{coord(), coord(), coord(), coord()}),
		}
		for dim, v := range values {
			if v < -1.05 || v > 1.05 || v != v {
				t.Fatalf("iteration %d, argument %d: noise %v out of range", i, dim, v)
			}
		}
	}
}

func TestNoiseVaries(t *testing.T) {
	seen := map[Float]bool{}
	for i := 0; i < 16; i++ {
		seen[Noise1(Vec3{Float(i) * 0.37, 0.5, 0.25})] = true
	}
	assert.Greater(t, len(seen), 8)
}
