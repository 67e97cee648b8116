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

// Pow returns x raised to y. It is NaN for x < 0, and for x == 0 with
// y <= 0 the result is undefined in GLSL and follows math.Pow here.
func Pow[G GenFloat[G, E], E BaseFloat](x, y G) G {
	return x.Zip(y, powOf[E])
}

// Exp returns e**x.
func Exp[G GenFloat[G, E], E BaseFloat](x G) G {
	return x.Map(expOf[E])
}

// Log returns the natural logarithm of x. It is NaN for x < 0.
func Log[G GenFloat[G, E], E BaseFloat](x G) G {
	return x.Map(logOf[E])
}

// Exp2 returns 2**x.
func Exp2[G GenFloat[G, E], E BaseFloat](x G) G {
	return x.Map(exp2Of[E])
}

// Log2 returns the base 2 logarithm of x.
func Log2[G GenFloat[G, E], E BaseFloat](x G) G {
	return x.Map(log2Of[E])
}

// Sqrt returns the square root of x. It is NaN for x < 0.
func Sqrt[G GenFloat[G, E], E BaseFloat](x G) G {
	return x.Map(sqrtOf[E])
}

// InverseSqrt returns 1/Sqrt(x).
func InverseSqrt[G GenFloat[G, E], E BaseFloat](x G) G {
	return x.Map(inverseSqrtOf[E])
}

func powOf[E BaseFloat](x, y E) E { return apply2(x, y, math32.Pow, math.Pow) }
func expOf[E BaseFloat](x E) E    { return apply(x, math32.Exp, math.Exp) }
func logOf[E BaseFloat](x E) E    { return apply(x, math32.Log, math.Log) }
func exp2Of[E BaseFloat](x E) E   { return apply(x, math32.Exp2, math.Exp2) }
func log2Of[E BaseFloat](x E) E   { return apply(x, math32.Log2, math.Log2) }
func sqrtOf[E BaseFloat](x E) E   { return apply(x, math32.Sqrt, math.Sqrt) }

func inverseSqrtOf[E BaseFloat](x E) E { return 1 / sqrtOf(x) }
