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

// Package glmtest provides testify-style assertions and random generators
// for glm values.
package glmtest

import (
	"fmt"
	"math/rand"
	"testing/quick"

	"github.com/ajroetker/go-glm/glm"
	"github.com/stretchr/testify/assert"
)

// AssertCloseTo asserts that every component of got is within maxDiff of
// the matching component of want. It accepts scalars, vectors and matrices.
func AssertCloseTo[T glm.CloseTo[T, E], E glm.BaseNum](t assert.TestingT, want, got T, maxDiff E, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if got.IsCloseTo(want, maxDiff) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("Not close (max diff %v): \n"+
		"expected: %v\n"+
		"actual  : %v", maxDiff, want, got), msgAndArgs...)
}

// AssertApproxEq is AssertCloseTo with the machine epsilon of the element
// kind as the tolerance.
func AssertApproxEq[T glm.ApproxEq[T, E], E glm.BaseNum](t assert.TestingT, want, got T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if got.IsApproxEq(want) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("Not approximately equal: \n"+
		"expected: %v\n"+
		"actual  : %v", want, got), msgAndArgs...)
}

// Rand returns a random T using its quick.Generator. Components are drawn
// from [-size, size] (or [0, size] for unsigned kinds).
func Rand[T quick.Generator](r *rand.Rand, size int) T {
	var zero T
	return zero.Generate(r, size).Interface().(T)
}

type squareGen[M any, T glm.BaseFloat, C any] interface {
	glm.GenSquareMat[M, T, C]
	quick.Generator
}

// RandInvertible returns a random square matrix whose determinant is at
// least 1 in magnitude.
func RandInvertible[M squareGen[M, T, C], T glm.BaseFloat, C any](r *rand.Rand, size int) M {
	for {
		m := Rand[M](r, size)
		if d := m.Determinant(); d >= 1 || d <= -1 {
			return m
		}
	}
}
