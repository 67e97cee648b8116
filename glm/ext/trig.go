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
	"unsafe"

	"github.com/ajroetker/go-glm/glm"
	"github.com/chewxy/math32"
)

// SinCos returns sin(x) and cos(x) in one pass.
func SinCos[G glm.GenFloat[G, E], E glm.BaseFloat](x G) (sin, cos G) {
	return x.Split(sinCosOf[E])
}

func sinCosOf[E glm.BaseFloat](x E) (E, E) {
	if unsafe.Sizeof(x) == 4 {
		s, c := math32.Sincos(float32(x))
		return E(s), E(c)
	}
	s, c := math.Sincos(float64(x))
	return E(s), E(c)
}
