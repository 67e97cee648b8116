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

// Radians converts degrees to radians.
func Radians[G GenFloat[G, E], E BaseFloat](degrees G) G {
	return degrees.Map(ToRadians[E])
}

// Degrees converts radians to degrees.
func Degrees[G GenFloat[G, E], E BaseFloat](radians G) G {
	return radians.Map(ToDegrees[E])
}

// Sin returns the sine of x in radians.
func Sin[G GenFloat[G, E], E BaseFloat](x G) G {
	return x.Map(sinOf[E])
}

// Cos returns the cosine of x in radians.
func Cos[G GenFloat[G, E], E BaseFloat](x G) G {
	return x.Map(cosOf[E])
}

// Tan returns the tangent of x in radians.
func Tan[G GenFloat[G, E], E BaseFloat](x G) G {
	return x.Map(tanOf[E])
}

// Asin returns the angle whose sine is x, in [-π/2, π/2]. It is NaN for |x| > 1.
func Asin[G GenFloat[G, E], E BaseFloat](x G) G {
	return x.Map(asinOf[E])
}

// Acos returns the angle whose cosine is x, in [0, π]. It is NaN for |x| > 1.
func Acos[G GenFloat[G, E], E BaseFloat](x G) G {
	return x.Map(acosOf[E])
}

// Atan returns the angle whose tangent is x, in [-π/2, π/2].
func Atan[G GenFloat[G, E], E BaseFloat](x G) G {
	return x.Map(atanOf[E])
}

func Sinh[G GenFloat[G, E], E BaseFloat](x G) G {
	return x.Map(sinhOf[E])
}

func Cosh[G GenFloat[G, E], E BaseFloat](x G) G {
	return x.Map(coshOf[E])
}

func Tanh[G GenFloat[G, E], E BaseFloat](x G) G {
	return x.Map(tanhOf[E])
}

func Asinh[G GenFloat[G, E], E BaseFloat](x G) G {
	return x.Map(asinhOf[E])
}

// Acosh is NaN for x < 1.
func Acosh[G GenFloat[G, E], E BaseFloat](x G) G {
	return x.Map(acoshOf[E])
}

// Atanh is NaN for |x| > 1.
func Atanh[G GenFloat[G, E], E BaseFloat](x G) G {
	return x.Map(atanhOf[E])
}

// Atan2 returns the angle of the point (x, y), in [-π, π]. It is the two
// argument form of GLSL atan.
func Atan2[G GenFloat[G, E], E BaseFloat](y, x G) G {
	return y.Zip(x, atan2Of[E])
}

func sinOf[E BaseFloat](x E) E   { return apply(x, math32.Sin, math.Sin) }
func cosOf[E BaseFloat](x E) E   { return apply(x, math32.Cos, math.Cos) }
func tanOf[E BaseFloat](x E) E   { return apply(x, math32.Tan, math.Tan) }
func asinOf[E BaseFloat](x E) E  { return apply(x, math32.Asin, math.Asin) }
func acosOf[E BaseFloat](x E) E  { return apply(x, math32.Acos, math.Acos) }
func atanOf[E BaseFloat](x E) E  { return apply(x, math32.Atan, math.Atan) }
func sinhOf[E BaseFloat](x E) E  { return apply(x, math32.Sinh, math.Sinh) }
func coshOf[E BaseFloat](x E) E  { return apply(x, math32.Cosh, math.Cosh) }
func tanhOf[E BaseFloat](x E) E  { return apply(x, math32.Tanh, math.Tanh) }
func asinhOf[E BaseFloat](x E) E { return apply(x, math32.Asinh, math.Asinh) }
func acoshOf[E BaseFloat](x E) E { return apply(x, math32.Acosh, math.Acosh) }
func atanhOf[E BaseFloat](x E) E { return apply(x, math32.Atanh, math.Atanh) }

func atan2Of[E BaseFloat](y, x E) E { return apply2(y, x, math32.Atan2, math.Atan2) }
