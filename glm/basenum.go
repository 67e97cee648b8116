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
	"unsafe"

	"github.com/chewxy/math32"
)

// Scalar kernels shared by every builtin. Float kernels route float32 kinds
// through math32 and float64 kinds through math.

const (
	epsilon32 = 1.1920929e-07
	epsilon64 = 2.220446049250313e-16
)

func is32[E BaseNum]() bool {
	var z E
	return unsafe.Sizeof(z) == 4
}

func isFloat[E BaseNum]() bool {
	h := 0.5
	return E(h) != 0
}

func isSigned[E BaseNum]() bool {
	var z E
	return z-1 < 0
}

// apply evaluates f32 or f64 on x depending on the width of E.
func apply[E BaseFloat](x E, f32 func(float32) float32, f64 func(float64) float64) E {
	if is32[E]() {
		return E(f32(float32(x)))
	}
	return E(f64(float64(x)))
}

func apply2[E BaseFloat](x, y E, f32 func(float32, float32) float32, f64 func(float64, float64) float64) E {
	if is32[E]() {
		return E(f32(float32(x), float32(y)))
	}
	return E(f64(float64(x), float64(y)))
}

// Zero returns the additive identity of E.
func Zero[E BaseNum]() E { return 0 }

// One returns the multiplicative identity of E.
func One[E BaseNum]() E { return 1 }

// Epsilon returns the machine epsilon of a float kind, and 0 for integers.
func Epsilon[E BaseNum]() E {
	switch {
	case !isFloat[E]():
		return 0
	case is32[E]():
		f := float32(epsilon32)
		return E(f)
	default:
		f := epsilon64
		return E(f)
	}
}

// MinOf returns the smaller of a and b. If exactly one operand is NaN, the
// other is returned.
func MinOf[E BaseNum](a, b E) E {
	switch {
	case a != a:
		return b
	case b != b:
		return a
	case b < a:
		return b
	}
	return a
}

// MaxOf returns the larger of a and b. If exactly one operand is NaN, the
// other is returned.
func MaxOf[E BaseNum](a, b E) E {
	switch {
	case a != a:
		return b
	case b != b:
		return a
	case b > a:
		return b
	}
	return a
}

// AbsOf returns |x|. Unsigned values are returned unchanged.
func AbsOf[E BaseNum](x E) E {
	if isFloat[E]() {
		if is32[E]() {
			return E(math32.Abs(float32(x)))
		}
		return E(math.Abs(float64(x)))
	}
	if x < 0 {
		return -x
	}
	return x
}

// SignOf returns 1 for positive x, -1 for negative x and 0 for either zero.
// NaN is returned unchanged.
func SignOf[E BaseNum](x E) E {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return 0 - One[E]()
	case x == 0:
		return 0
	}
	return x
}

// IsCloseTo reports whether |a-b| <= maxDiff.
func IsCloseTo[E BaseNum](a, b, maxDiff E) bool {
	if a > b {
		return a-b <= maxDiff
	}
	return b-a <= maxDiff
}

// IsApproxEq reports whether a and b differ by at most Epsilon.
func IsApproxEq[E BaseNum](a, b E) bool {
	return IsCloseTo(a, b, Epsilon[E]())
}

// ToRadians converts degrees to radians.
func ToRadians[E BaseFloat](deg E) E {
	return deg * E(math.Pi/180)
}

// ToDegrees converts radians to degrees.
func ToDegrees[E BaseFloat](rad E) E {
	return rad * E(180/math.Pi)
}

// FrexpOf splits x into a fraction in [0.5, 1) and a power of two. Zero,
// infinities and NaN are returned unchanged with exponent 0.
func FrexpOf[E BaseFloat](x E) (E, Int) {
	if is32[E]() {
		f, e := math32.Frexp(float32(x))
		return E(f), Int(e)
	}
	f, e := math.Frexp(float64(x))
	return E(f), Int(e)
}

// LdexpOf returns frac * 2**exp.
func LdexpOf[E BaseFloat](frac E, exp Int) E {
	if is32[E]() {
		return E(math32.Ldexp(float32(frac), int(exp)))
	}
	return E(math.Ldexp(float64(frac), int(exp)))
}

// remOf is the truncated remainder, matching Go's % for integers.
func remOf[E BaseNum](a, b E) E {
	if isFloat[E]() {
		if is32[E]() {
			return E(math32.Mod(float32(a), float32(b)))
		}
		return E(math.Mod(float64(a), float64(b)))
	}
	if isSigned[E]() {
		return E(int64(a) % int64(b))
	}
	return E(uint64(a) % uint64(b))
}

func isNaNOf[E BaseNum](x E) bool { return x != x }

func isInfOf[E BaseNum](x E) bool {
	if !isFloat[E]() {
		return false
	}
	return float64(x) > math.MaxFloat64 || float64(x) < -math.MaxFloat64
}

func addOf[E BaseNum](a, b E) E { return a + b }
func subOf[E BaseNum](a, b E) E { return a - b }
func mulOf[E BaseNum](a, b E) E { return a * b }
func divOf[E BaseNum](a, b E) E { return a / b }
func negOf[E BaseNum](a E) E    { return -a }
