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

// SqLength returns the squared length of x.
func SqLength[V glm.GenFloatVec[V, E], E glm.BaseFloat](x V) E {
	return glm.Dot(x, x)
}

// RecipLength returns 1/length(x).
func RecipLength[V glm.GenFloatVec[V, E], E glm.BaseFloat](x V) E {
	return 1 / apply(SqLength(x), math32.Sqrt, math.Sqrt)
}

// NormalizeTo returns x scaled to the given length.
func NormalizeTo[V glm.GenFloatVec[V, E], E glm.BaseFloat](x V, length E) V {
	return glm.Normalize(x).Map(func(e E) E { return e * length })
}

// Projection returns the projection of x onto y, or the zero vector when y
// is approximately zero.
func Projection[V glm.GenFloatVec[V, E], E glm.BaseFloat](x, y V) V {
	sq := SqLength(y)
	if glm.IsApproxEq(sq, 0) {
		return y.FromS(0)
	}
	s := glm.Dot(x, y) / sq
	return y.Map(func(e E) E { return e * s })
}

// IsPerpendicular reports whether dot(x, y) is approximately zero.
func IsPerpendicular[V glm.GenFloatVec[V, E], E glm.BaseFloat](x, y V) bool {
	return glm.IsApproxEq(glm.Dot(x, y), 0)
}

// Angle returns the angle between x and y in radians. It is 0 when either
// vector is approximately zero.
func Angle[V glm.GenFloatVec[V, E], E glm.BaseFloat](x, y V) E {
	sq := glm.Dot(x, x) * glm.Dot(y, y)
	if glm.IsApproxEq(sq, 0) {
		return 0
	}
	c := glm.Dot(x, y) / apply(sq, math32.Sqrt, math.Sqrt)
	return apply(max(-1, min(c, 1)), math32.Acos, math.Acos)
}
