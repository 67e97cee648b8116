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
	"unsafe"

	"github.com/ajroetker/go-glm/glm"
)

// Recip returns 1/x component-wise.
func Recip[G glm.GenFloat[G, E], E glm.BaseFloat](x G) G {
	return x.Map(func(e E) E { return 1 / e })
}

// apply evaluates f32 or f64 on x depending on the width of E.
func apply[E glm.BaseFloat](x E, f32 func(float32) float32, f64 func(float64) float64) E {
	if unsafe.Sizeof(x) == 4 {
		return E(f32(float32(x)))
	}
	return E(f64(float64(x)))
}
