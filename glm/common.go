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

	"github.com/chewxy/math32"
)

// Abs returns |x|.
func Abs[G GenNum[G, E], E SignedNum](x G) G {
	return x.Map(AbsOf[E])
}

// Sign returns 1 where x > 0, -1 where x < 0 and 0 where x is zero.
func Sign[G GenNum[G, E], E SignedNum](x G) G {
	return x.Map(SignOf[E])
}

// Floor returns the nearest integer less than or equal to x.
func Floor[G GenFloat[G, E], E BaseFloat](x G) G {
	return x.Map(floorOf[E])
}

// Trunc returns the nearest integer whose magnitude is not larger than x.
func Trunc[G GenFloat[G, E], E BaseFloat](x G) G {
	return x.Map(truncOf[E])
}

// Round returns the nearest integer, rounding half away from zero.
func Round[G GenFloat[G, E], E BaseFloat](x G) G {
	return x.Map(roundOf[E])
}

// RoundEven returns the nearest integer, rounding half to even.
func RoundEven[G GenFloat[G, E], E BaseFloat](x G) G {
	return x.Map(roundEvenOf[E])
}

// Ceil returns the nearest integer greater than or equal to x.
func Ceil[G GenFloat[G, E], E BaseFloat](x G) G {
	return x.Map(ceilOf[E])
}

// Fract returns x - Floor(x), which is always in [0, 1).
func Fract[G GenFloat[G, E], E BaseFloat](x G) G {
	return x.Map(func(e E) E { return e - floorOf(e) })
}

// Mod returns x - y*Floor(x/y). The result has the sign of y.
func Mod[G GenFloat[G, E], E BaseFloat](x, y G) G {
	return x.Zip(y, modOf[E])
}

// ModS is Mod with a scalar divisor.
func ModS[G GenFloat[G, E], E BaseFloat](x G, y E) G {
	return x.Map(func(e E) E { return modOf(e, y) })
}

// FMod returns the truncated remainder of x/y, with the sign of x, as C's
// fmod.
func FMod[G GenFloat[G, E], E BaseFloat](x, y G) G {
	return x.Zip(y, remOf[E])
}

// Modf splits x into its integer part and the fractional part, both with
// the sign of x.
func Modf[G GenFloat[G, E], E BaseFloat](x G) (whole, frac G) {
	return x.Split(func(e E) (E, E) {
		t := truncOf(e)
		return t, e - t
	})
}

// Min returns the component-wise minimum. A NaN component loses to a
// number.
func Min[G GenNum[G, E], E BaseNum](x, y G) G {
	return x.Zip(y, MinOf[E])
}

// MinS is Min against a scalar.
func MinS[G GenNum[G, E], E BaseNum](x G, y E) G {
	return x.Map(func(e E) E { return MinOf(e, y) })
}

// Max returns the component-wise maximum. A NaN component loses to a
// number.
func Max[G GenNum[G, E], E BaseNum](x, y G) G {
	return x.Zip(y, MaxOf[E])
}

// MaxS is Max against a scalar.
func MaxS[G GenNum[G, E], E BaseNum](x G, y E) G {
	return x.Map(func(e E) E { return MaxOf(e, y) })
}

// Clamp returns Min(Max(x, minVal), maxVal). The result is undefined in
// GLSL when minVal > maxVal; here it is maxVal.
func Clamp[G GenNum[G, E], E BaseNum](x, minVal, maxVal G) G {
	return Min(Max(x, minVal), maxVal)
}

// ClampS is Clamp with scalar bounds.
func ClampS[G GenNum[G, E], E BaseNum](x G, minVal, maxVal E) G {
	return MinS(MaxS(x, minVal), maxVal)
}

// Mix returns the linear blend x*(1-a) + y*a.
func Mix[G GenFloat[G, E], E BaseFloat](x, y, a G) G {
	return x.Zip3(y, a, mixOf[E])
}

// MixS is Mix with a scalar weight.
func MixS[G GenFloat[G, E], E BaseFloat](x, y G, a E) G {
	return x.Zip(y, func(xe, ye E) E { return mixOf(xe, ye, a) })
}

// MixBool takes y's component where a is true and x's elsewhere.
func MixBool[G NumBoolRel[G, E, B], E BaseNum, B any](x, y G, a B) G {
	return x.Select(y, a)
}

// Step returns 0 where x < edge and 1 elsewhere.
func Step[G GenFloat[G, E], E BaseFloat](edge, x G) G {
	return x.Zip(edge, stepOf[E])
}

// StepS is Step with a scalar edge.
func StepS[G GenFloat[G, E], E BaseFloat](edge E, x G) G {
	return x.Map(func(e E) E { return stepOf(e, edge) })
}

// Smoothstep performs Hermite interpolation between 0 and 1 as x moves
// from edge0 to edge1. It is undefined in GLSL for edge0 >= edge1.
func Smoothstep[G GenFloat[G, E], E BaseFloat](edge0, edge1, x G) G {
	return x.Zip3(edge0, edge1, func(xe, e0, e1 E) E { return smoothstepOf(e0, e1, xe) })
}

// SmoothstepS is Smoothstep with scalar edges.
func SmoothstepS[G GenFloat[G, E], E BaseFloat](edge0, edge1 E, x G) G {
	return x.Map(func(xe E) E { return smoothstepOf(edge0, edge1, xe) })
}

// IsNaN reports which components are NaN.
func IsNaN[G NumBoolRel[G, E, B], E BaseFloat, B any](x G) B {
	return x.MapBool(isNaNOf[E])
}

// IsInf reports which components are infinite.
func IsInf[G NumBoolRel[G, E, B], E BaseFloat, B any](x G) B {
	return x.MapBool(isInfOf[E])
}

// FloatBitsToInt reinterprets the bits of each Float as an Int.
func FloatBitsToInt[G FloatIntRel[G, Float, GI], GI any](x G) GI {
	return x.MapInt(func(f Float) Int { return Int(math.Float32bits(float32(f))) })
}

// FloatBitsToUint reinterprets the bits of each Float as a Uint.
func FloatBitsToUint[G FloatUintRel[G, Float, GU], GU any](x G) GU {
	return x.MapUint(func(f Float) Uint { return Uint(math.Float32bits(float32(f))) })
}

// IntBitsToFloat reinterprets the bits of each Int as a Float.
func IntBitsToFloat[G IntFloatRel[G, Int, GF], GF any](x G) GF {
	return x.MapFloat(func(i Int) Float { return Float(math.Float32frombits(uint32(i))) })
}

// UintBitsToFloat reinterprets the bits of each Uint as a Float.
func UintBitsToFloat[G IntFloatRel[G, Uint, GF], GF any](x G) GF {
	return x.MapFloat(func(u Uint) Float { return Float(math.Float32frombits(uint32(u))) })
}

// Fma returns a*b + c. It is fused, with a single rounding, when the CPU
// supports it and GLM_NO_FMA is unset.
func Fma[G GenFloat[G, E], E BaseFloat](a, b, c G) G {
	return a.Zip3(b, c, fmaOf[E])
}

// Frexp splits each component into a significand in [0.5, 1) and an
// exponent so that x = significand * 2**exponent.
func Frexp[G FloatIntRel[G, E, GI], E BaseFloat, GI any](x G) (G, GI) {
	return x.SplitInt(FrexpOf[E])
}

// Ldexp builds x * 2**exp component-wise.
func Ldexp[G FloatIntRel[G, E, GI], E BaseFloat, GI any](x G, exp GI) G {
	return x.ZipInt(exp, LdexpOf[E])
}

func floorOf[E BaseFloat](x E) E { return apply(x, math32.Floor, math.Floor) }
func truncOf[E BaseFloat](x E) E { return apply(x, math32.Trunc, math.Trunc) }
func roundOf[E BaseFloat](x E) E { return apply(x, math32.Round, math.Round) }
func ceilOf[E BaseFloat](x E) E  { return apply(x, math32.Ceil, math.Ceil) }

func roundEvenOf[E BaseFloat](x E) E {
	t := truncOf(x)
	switch {
	case AbsOf(x-t) != 0.5:
		return roundOf(x)
	case remOf(t, 2) == 0:
		return t
	case t < 0:
		return t - 1
	default:
		return t + 1
	}
}

func modOf[E BaseFloat](x, y E) E {
	return x - y*floorOf(x/y)
}

func mixOf[E BaseFloat](x, y, a E) E {
	return x*(1-a) + y*a
}

func stepOf[E BaseFloat](x, edge E) E {
	if x < edge {
		return 0
	}
	return 1
}

func smoothstepOf[E BaseFloat](edge0, edge1, x E) E {
	t := MinOf(MaxOf((x-edge0)/(edge1-edge0), 0), 1)
	return t * t * (3 - 2*t)
}

func fmaOf[E BaseFloat](a, b, c E) E {
	if currentLevel == DispatchScalar {
		return E(a*b) + c
	}
	return E(math.FMA(float64(a), float64(b), float64(c)))
}
