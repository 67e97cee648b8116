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

// GenNum is the contract shared by scalars and vectors. G is the container
// type and E its element kind. Builtins are written against GenNum so they
// accept a bare scalar or a vector alike, and E is inferred from G's method
// set.
type GenNum[G any, E BaseNum] interface {
	// FromS broadcasts x into a G. The receiver only selects the type.
	FromS(x E) G

	// Map applies f to every component.
	Map(f func(E) E) G

	// Zip applies f to matching components of the receiver and y.
	Zip(y G, f func(E, E) E) G

	// Zip3 applies f to matching components of the receiver, y and z.
	Zip3(y, z G, f func(E, E, E) E) G

	// Split applies f to every component and collects both results.
	Split(f func(E) (E, E)) (G, G)

	// Map2 applies f to matching components and collects both results.
	Map2(y G, f func(E, E) (E, E)) (G, G)

	// Fold reduces the components left to right in declaration order.
	Fold(init E, f func(E, E) E) E
}

// CloseTo is implemented by every scalar kind, vector and matrix. E is the
// element kind of T.
type CloseTo[T any, E BaseNum] interface {
	// IsCloseTo reports whether every component is within maxDiff of y.
	IsCloseTo(y T, maxDiff E) bool
}

// ApproxEq is CloseTo with the machine epsilon of E as the default
// tolerance.
type ApproxEq[T any, E BaseNum] interface {
	CloseTo[T, E]
	IsApproxEq(y T) bool
}

// GenFloat is a GenNum of a floating point kind.
type GenFloat[G any, E BaseFloat] interface {
	GenNum[G, E]
}

// GenInt is a GenNum of an integer kind.
type GenInt[G any, E BaseInt] interface {
	GenNum[G, E]
}

// GenIType is a GenNum of Int.
type GenIType[G any] interface {
	GenNum[G, Int]
}

// GenUType is a GenNum of Uint.
type GenUType[G any] interface {
	GenNum[G, Uint]
}

// NumBoolRel relates a GenNum to its boolean counterpart B: bool for a
// scalar, BVector{n} for a vector of n components.
type NumBoolRel[G any, E BaseNum, B any] interface {
	GenNum[G, E]
	MapBool(f func(E) bool) B
	ZipBool(b B, f func(E, bool) E) G
	// Select takes y's component where b is true.
	Select(y G, b B) G
	Compare(y G, f func(E, E) bool) B
}

// FloatIntRel relates a float GenNum to the Int container GI of the same
// shape.
type FloatIntRel[G any, E BaseFloat, GI any] interface {
	GenFloat[G, E]
	MapInt(f func(E) Int) GI
	SplitInt(f func(E) (E, Int)) (G, GI)
	ZipInt(y GI, f func(E, Int) E) G
}

// FloatUintRel relates a float GenNum to the Uint container GU of the same
// shape.
type FloatUintRel[G any, E BaseFloat, GU any] interface {
	GenFloat[G, E]
	MapUint(f func(E) Uint) GU
}

// IntFloatRel relates an integer GenNum to the Float container GF of the
// same shape.
type IntFloatRel[G any, E BaseInt, GF any] interface {
	GenInt[G, E]
	MapFloat(f func(E) Float) GF
}

// IntIntRel relates an integer GenNum to the Int container GI of the same
// shape.
type IntIntRel[G any, E BaseInt, GI any] interface {
	GenInt[G, E]
	MapInt(f func(E) Int) GI
}

// GenVec is implemented by every vector type, numeric or boolean.
type GenVec[V any, E any] interface {
	// Dim returns the number of components.
	Dim() int
	// At returns component i. It panics if i >= Dim().
	At(i int) E
}

// GenNumVec is a numeric vector.
type GenNumVec[V any, E BaseNum] interface {
	GenNum[V, E]
	GenVec[V, E]
	Sum() E
	Product() E
	Min() E
	Max() E
}

// GenFloatVec is a vector of a floating point kind.
type GenFloatVec[V any, E BaseFloat] interface {
	GenNumVec[V, E]
}

// GenBVec is a boolean vector.
type GenBVec[B any] interface {
	GenVec[B, bool]
	Any() bool
	All() bool
	Not() B
}

// VecRel relates a numeric vector to the boolean vector B of the same
// dimension.
type VecRel[V any, E BaseNum, B any] interface {
	GenNumVec[V, E]
	Compare(y V, f func(E, E) bool) B
}

// Comparer is the component-wise comparison shared by numeric and boolean
// vectors.
type Comparer[V any, E comparable, B any] interface {
	Compare(y V, f func(E, E) bool) B
}
