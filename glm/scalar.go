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

// GenNum method sets of the scalar kinds. A scalar is a container of one
// component, so Map is a call and Fold a single step.

// FromS returns x.
func (Float) FromS(x Float) Float { return x }

// Map returns f(x).
func (x Float) Map(f func(Float) Float) Float { return f(x) }

func (x Float) Zip(y Float, f func(Float, Float) Float) Float { return f(x, y) }

func (x Float) Zip3(y, z Float, f func(Float, Float, Float) Float) Float { return f(x, y, z) }

func (x Float) Split(f func(Float) (Float, Float)) (Float, Float) { return f(x) }

func (x Float) Map2(y Float, f func(Float, Float) (Float, Float)) (Float, Float) { return f(x, y) }

func (x Float) Fold(init Float, f func(Float, Float) Float) Float { return f(init, x) }

func (x Float) MapBool(f func(Float) bool) bool { return f(x) }

func (x Float) ZipBool(b bool, f func(Float, bool) Float) Float { return f(x, b) }

func (x Float) Select(y Float, b bool) Float {
	if b {
		return y
	}
	return x
}

func (x Float) Compare(y Float, f func(Float, Float) bool) bool { return f(x, y) }

func (x Float) MapInt(f func(Float) Int) Int { return f(x) }

func (x Float) MapUint(f func(Float) Uint) Uint { return f(x) }

func (x Float) MapFloat(f func(Float) Float) Float { return f(x) }

func (x Float) SplitInt(f func(Float) (Float, Int)) (Float, Int) { return f(x) }

func (x Float) ZipInt(y Int, f func(Float, Int) Float) Float { return f(x, y) }

func (x Float) IsCloseTo(y, maxDiff Float) bool { return IsCloseTo(x, y, maxDiff) }

func (x Float) IsApproxEq(y Float) bool { return IsApproxEq(x, y) }

// FromS returns x.
func (Double) FromS(x Double) Double { return x }

// Map returns f(x).
func (x Double) Map(f func(Double) Double) Double { return f(x) }

func (x Double) Zip(y Double, f func(Double, Double) Double) Double { return f(x, y) }

func (x Double) Zip3(y, z Double, f func(Double, Double, Double) Double) Double { return f(x, y, z) }

func (x Double) Split(f func(Double) (Double, Double)) (Double, Double) { return f(x) }

func (x Double) Map2(y Double, f func(Double, Double) (Double, Double)) (Double, Double) { return f(x, y) }

func (x Double) Fold(init Double, f func(Double, Double) Double) Double { return f(init, x) }

func (x Double) MapBool(f func(Double) bool) bool { return f(x) }

func (x Double) ZipBool(b bool, f func(Double, bool) Double) Double { return f(x, b) }

func (x Double) Select(y Double, b bool) Double {
	if b {
		return y
	}
	return x
}

func (x Double) Compare(y Double, f func(Double, Double) bool) bool { return f(x, y) }

func (x Double) MapInt(f func(Double) Int) Int { return f(x) }

func (x Double) MapUint(f func(Double) Uint) Uint { return f(x) }

func (x Double) MapFloat(f func(Double) Float) Float { return f(x) }

func (x Double) SplitInt(f func(Double) (Double, Int)) (Double, Int) { return f(x) }

func (x Double) ZipInt(y Int, f func(Double, Int) Double) Double { return f(x, y) }

func (x Double) IsCloseTo(y, maxDiff Double) bool { return IsCloseTo(x, y, maxDiff) }

func (x Double) IsApproxEq(y Double) bool { return IsApproxEq(x, y) }

// FromS returns x.
func (Int) FromS(x Int) Int { return x }

// Map returns f(x).
func (x Int) Map(f func(Int) Int) Int { return f(x) }

func (x Int) Zip(y Int, f func(Int, Int) Int) Int { return f(x, y) }

func (x Int) Zip3(y, z Int, f func(Int, Int, Int) Int) Int { return f(x, y, z) }

func (x Int) Split(f func(Int) (Int, Int)) (Int, Int) { return f(x) }

func (x Int) Map2(y Int, f func(Int, Int) (Int, Int)) (Int, Int) { return f(x, y) }

func (x Int) Fold(init Int, f func(Int, Int) Int) Int { return f(init, x) }

func (x Int) MapBool(f func(Int) bool) bool { return f(x) }

func (x Int) ZipBool(b bool, f func(Int, bool) Int) Int { return f(x, b) }

func (x Int) Select(y Int, b bool) Int {
	if b {
		return y
	}
	return x
}

func (x Int) Compare(y Int, f func(Int, Int) bool) bool { return f(x, y) }

func (x Int) MapInt(f func(Int) Int) Int { return f(x) }

func (x Int) MapUint(f func(Int) Uint) Uint { return f(x) }

func (x Int) MapFloat(f func(Int) Float) Float { return f(x) }

func (x Int) SplitInt(f func(Int) (Int, Int)) (Int, Int) { return f(x) }

func (x Int) ZipInt(y Int, f func(Int, Int) Int) Int { return f(x, y) }

func (x Int) IsCloseTo(y, maxDiff Int) bool { return IsCloseTo(x, y, maxDiff) }

func (x Int) IsApproxEq(y Int) bool { return IsApproxEq(x, y) }

// FromS returns x.
func (Uint) FromS(x Uint) Uint { return x }

// Map returns f(x).
func (x Uint) Map(f func(Uint) Uint) Uint { return f(x) }

func (x Uint) Zip(y Uint, f func(Uint, Uint) Uint) Uint { return f(x, y) }

func (x Uint) Zip3(y, z Uint, f func(Uint, Uint, Uint) Uint) Uint { return f(x, y, z) }

func (x Uint) Split(f func(Uint) (Uint, Uint)) (Uint, Uint) { return f(x) }

func (x Uint) Map2(y Uint, f func(Uint, Uint) (Uint, Uint)) (Uint, Uint) { return f(x, y) }

func (x Uint) Fold(init Uint, f func(Uint, Uint) Uint) Uint { return f(init, x) }

func (x Uint) MapBool(f func(Uint) bool) bool { return f(x) }

func (x Uint) ZipBool(b bool, f func(Uint, bool) Uint) Uint { return f(x, b) }

func (x Uint) Select(y Uint, b bool) Uint {
	if b {
		return y
	}
	return x
}

func (x Uint) Compare(y Uint, f func(Uint, Uint) bool) bool { return f(x, y) }

func (x Uint) MapInt(f func(Uint) Int) Int { return f(x) }

func (x Uint) MapUint(f func(Uint) Uint) Uint { return f(x) }

func (x Uint) MapFloat(f func(Uint) Float) Float { return f(x) }

func (x Uint) SplitInt(f func(Uint) (Uint, Int)) (Uint, Int) { return f(x) }

func (x Uint) ZipInt(y Int, f func(Uint, Int) Uint) Uint { return f(x, y) }

func (x Uint) IsCloseTo(y, maxDiff Uint) bool { return IsCloseTo(x, y, maxDiff) }

func (x Uint) IsApproxEq(y Uint) bool { return IsApproxEq(x, y) }
