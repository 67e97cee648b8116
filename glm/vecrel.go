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

// Component-wise comparisons. Each returns the boolean vector of the same
// dimension as its operands.

func LessThan[V VecRel[V, E, B], E BaseNum, B any](x, y V) B {
	return x.Compare(y, func(a, b E) bool { return a < b })
}

func LessThanEqual[V VecRel[V, E, B], E BaseNum, B any](x, y V) B {
	return x.Compare(y, func(a, b E) bool { return a <= b })
}

func GreaterThan[V VecRel[V, E, B], E BaseNum, B any](x, y V) B {
	return x.Compare(y, func(a, b E) bool { return a > b })
}

func GreaterThanEqual[V VecRel[V, E, B], E BaseNum, B any](x, y V) B {
	return x.Compare(y, func(a, b E) bool { return a >= b })
}

// Equal compares numeric or boolean vectors for exact equality.
func Equal[V Comparer[V, E, B], E comparable, B any](x, y V) B {
	return x.Compare(y, func(a, b E) bool { return a == b })
}

// NotEqual is the complement of Equal.
func NotEqual[V Comparer[V, E, B], E comparable, B any](x, y V) B {
	return x.Compare(y, func(a, b E) bool { return a != b })
}

// Any reports whether any component of x is true.
func Any[B GenBVec[B]](x B) bool {
	return x.Any()
}

// All reports whether every component of x is true.
func All[B GenBVec[B]](x B) bool {
	return x.All()
}

// Not returns the component-wise logical complement of x.
func Not[B GenBVec[B]](x B) B {
	return x.Not()
}
