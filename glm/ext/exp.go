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

package ext

import (
	"math"

	"github.com/ajroetker/go-glm/glm"
	"github.com/chewxy/math32"
)

// Cbrt returns the cube root of x.
func Cbrt[G glm.GenFloat[G, E], E glm.BaseFloat](x G) G {
	return x.Map(func(e E) E { return apply(e, math32.Cbrt, math.Cbrt) })
}

// Pow2 returns x*x. It accepts integer containers too.
func Pow2[G glm.GenNum[G, E], E glm.BaseNum](x G) G {
	return x.Map(func(e E) E { return e * e })
}

// Pow3 returns x*x*x.
func Pow3[G glm.GenNum[G, E], E glm.BaseNum](x G) G {
	return x.Map(func(e E) E { return e * e * e })
}

// Powi raises x to the integer power y.
func Powi[G glm.GenFloat[G, E], E glm.BaseFloat](x G, y int) G {
	f32 := func(f float32) float32 { return math32.Pow(f, float32(y)) }
	f64 := func(f float64) float64 { return math.Pow(f, float64(y)) }
	return x.Map(func(e E) E { return apply(e, f32, f64) })
}
