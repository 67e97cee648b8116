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

// Dot returns the dot product of x and y. For scalars it is x*y.
func Dot[G GenFloat[G, E], E BaseFloat](x, y G) E {
	return x.Zip(y, mulOf[E]).Fold(0, addOf[E])
}

// Length returns the Euclidean length of x.
func Length[G GenFloat[G, E], E BaseFloat](x G) E {
	return sqrtOf(Dot(x, x))
}

// Distance returns the distance between p0 and p1.
func Distance[G GenFloat[G, E], E BaseFloat](p0, p1 G) E {
	return Length(p0.Zip(p1, subOf[E]))
}

// Normalize returns x scaled to length 1. The zero vector gives NaN or Inf
// components.
func Normalize[G GenFloat[G, E], E BaseFloat](x G) G {
	s := inverseSqrtOf(Dot(x, x))
	return x.Map(func(e E) E { return e * s })
}

// FaceForward returns n if Dot(nref, i) < 0, and -n otherwise.
func FaceForward[G GenFloat[G, E], E BaseFloat](n, i, nref G) G {
	if Dot(nref, i) < 0 {
		return n
	}
	return n.Map(negOf[E])
}

// Reflect returns the reflection of the incident vector i about the surface
// normal n, i - 2*Dot(n, i)*n. n should be normalized.
func Reflect[G GenFloat[G, E], E BaseFloat](i, n G) G {
	d := 2 * Dot(n, i)
	return i.Zip(n, func(ie, ne E) E { return ie - d*ne })
}

// Refract returns the refraction of the incident vector i through a
// surface with normal n and ratio of indices of refraction eta. It returns
// zero on total internal reflection. i and n should be normalized.
func Refract[G GenFloat[G, E], E BaseFloat](i, n G, eta E) G {
	d := Dot(n, i)
	k := 1 - eta*eta*(1-d*d)
	if k < 0 {
		return i.FromS(0)
	}
	s := eta*d + sqrtOf(k)
	return i.Zip(n, func(ie, ne E) E { return eta*ie - s*ne })
}

// Cross returns the cross product of x and y.
func Cross[E BaseFloat](x, y Vector3[E]) Vector3[E] {
	return Vector3[E]{
		x.Y*y.Z - y.Y*x.Z,
		x.Z*y.X - y.Z*x.X,
		x.X*y.Y - y.X*x.Y,
	}
}
