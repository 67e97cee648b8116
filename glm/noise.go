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

// Simplex noise after Gustavson and McEwan's "webgl-noise", as shipped by
// GLM. All kernels work in single precision.

// NoiseArg is the set of arguments accepted by the noise functions.
type NoiseArg interface {
	Float | Vec2 | Vec3 | Vec4
}

// Noise1 returns a noise value in about [-1, 1] for x.
func Noise1[T NoiseArg](x T) Float {
	v, dim := liftNoise(x)
	return noiseAt(v, dim)
}

// Noise2 returns two uncorrelated noise values for x.
func Noise2[T NoiseArg](x T) Vec2 {
	v, dim := liftNoise(x)
	return Vec2{noiseAt(v, dim), noiseAt(v.Neg(), dim)}
}

// Noise3 returns three uncorrelated noise values for x.
func Noise3[T NoiseArg](x T) Vec3 {
	v, dim := liftNoise(x)
	return Vec3{noiseAt(v.SubS(1), dim), noiseAt(v, dim), noiseAt(v.AddS(1), dim)}
}

// Noise4 returns four uncorrelated noise values for x.
func Noise4[T NoiseArg](x T) Vec4 {
	v, dim := liftNoise(x)
	return Vec4{noiseAt(v.SubS(1), dim), noiseAt(v, dim), noiseAt(v.AddS(1), dim), noiseAt(v.AddS(2), dim)}
}

// liftNoise widens x to a Vec4. Only the first dim components are
// meaningful.
func liftNoise[T NoiseArg](x T) (Vec4, int) {
	switch v := any(x).(type) {
	case Float:
		return Vec4{X: v}, 1
	case Vec2:
		return Vec4{v.X, v.Y, 0, 0}, 2
	case Vec3:
		return v.Extend(0), 3
	case Vec4:
		return v, 4
	}
	panic("glm: unsupported noise argument")
}

func noiseAt(v Vec4, dim int) Float {
	switch dim {
	case 1:
		return simplex2(Vec2{v.X, 0})
	case 2:
		return simplex2(v.XY())
	case 3:
		return simplex3(v.XYZ())
	default:
		return simplex4(v)
	}
}

func mod289Of(x Float) Float        { return x - floorOf(x*(1.0/289))*289 }
func permuteOf(x Float) Float       { return mod289Of((x*34 + 1) * x) }
func taylorInvSqrtOf(r Float) Float { return 1.79284291400159 - 0.85373472095314*r }

// permuteChain hashes a lattice coordinate one axis at a time, starting
// from the last offset.
func permuteChain[G GenFloat[G, Float]](offsets []G, coords []Float) G {
	var p G
	for k, c := range coords {
		p = offsets[k].Zip(p, addOf[Float]).Map(func(e Float) Float { return permuteOf(e + c) })
	}
	return p
}

func simplex2(v Vec2) Float {
	const (
		cx = 0.211324865405187  // (3 - sqrt(3)) / 6
		cy = 0.366025403784439  // (sqrt(3) - 1) / 2
		cz = -0.577350269189626 // 2*cx - 1
		cw = 0.024390243902439  // 1 / 41
	)

	// First corner.
	i := Floor(v.AddS((v.X + v.Y) * cy))
	x0 := v.Sub(i).AddS((i.X + i.Y) * cx)

	// Other corners.
	i1 := Vec2{0, 1}
	if x0.X > x0.Y {
		i1 = Vec2{1, 0}
	}
	x1 := x0.Sub(i1).AddS(cx)
	x2 := x0.AddS(cz)

	i = ModS(i, 289)
	p := permuteChain(
		[]Vec3{{0, i1.Y, 1}, {0, i1.X, 1}},
		[]Float{i.Y, i.X},
	)

	m := MaxS(Vec3{0.5, 0.5, 0.5}.Sub(Vec3{Dot(x0, x0), Dot(x1, x1), Dot(x2, x2)}), 0)
	m = m.Mul(m)
	m = m.Mul(m)

	// Gradients: 41 points on a line mapped onto a diamond.
	x := Fract(p.MulS(cw)).MulS(2).SubS(1)
	h := Abs(x).SubS(0.5)
	a0 := x.Sub(Floor(x.AddS(0.5)))

	m = m.Mul(a0.Mul(a0).Add(h.Mul(h)).Map(taylorInvSqrtOf))
	g := Vec3{
		a0.X*x0.X + h.X*x0.Y,
		a0.Y*x1.X + h.Y*x1.Y,
		a0.Z*x2.X + h.Z*x2.Y,
	}
	return 130 * Dot(m, g)
}

func simplex3(v Vec3) Float {
	const (
		cx = 1.0 / 6
		cy = 1.0 / 3
		n  = 1.0 / 7
	)

	// First corner.
	i := Floor(v.AddS((v.X + v.Y + v.Z) * cy))
	x0 := v.Sub(i).AddS((i.X + i.Y + i.Z) * cx)

	// Other corners.
	g := Step(x0.YZX(), x0)
	l := Vec3{1, 1, 1}.Sub(g)
	i1 := Min(g, l.ZXY())
	i2 := Max(g, l.ZXY())

	x1 := x0.Sub(i1).AddS(cx)
	x2 := x0.Sub(i2).AddS(cy)
	x3 := x0.SubS(0.5)

	i = i.Map(mod289Of)
	p := permuteChain(
		[]Vec4{{0, i1.Z, i2.Z, 1}, {0, i1.Y, i2.Y, 1}, {0, i1.X, i2.X, 1}},
		[]Float{i.Z, i.Y, i.X},
	)

	// Gradients: 7x7 points over a square mapped onto an octahedron.
	ns := Vec3{2 * n, 0.5*n - 1, n}
	j := p.Sub(Floor(p.MulS(ns.Z * ns.Z)).MulS(49))

	xs := Floor(j.MulS(ns.Z))
	ys := Floor(j.Sub(xs.MulS(7)))

	x := xs.MulS(ns.X).AddS(ns.Y)
	y := ys.MulS(ns.X).AddS(ns.Y)
	h := Vec4{1, 1, 1, 1}.Sub(Abs(x)).Sub(Abs(y))

	b0 := Vec4{x.X, x.Y, y.X, y.Y}
	b1 := Vec4{x.Z, x.W, y.Z, y.W}
	s0 := Floor(b0).MulS(2).AddS(1)
	s1 := Floor(b1).MulS(2).AddS(1)
	sh := Step(h, Vec4{}).Neg()

	a0 := Vec4{b0.X, b0.Z, b0.Y, b0.W}.Add(Vec4{s0.X, s0.Z, s0.Y, s0.W}.Mul(Vec4{sh.X, sh.X, sh.Y, sh.Y}))
	a1 := Vec4{b1.X, b1.Z, b1.Y, b1.W}.Add(Vec4{s1.X, s1.Z, s1.Y, s1.W}.Mul(Vec4{sh.Z, sh.Z, sh.W, sh.W}))

	p0 := Vec3{a0.X, a0.Y, h.X}
	p1 := Vec3{a0.Z, a0.W, h.Y}
	p2 := Vec3{a1.X, a1.Y, h.Z}
	p3 := Vec3{a1.Z, a1.W, h.W}

	norm := Vec4{Dot(p0, p0), Dot(p1, p1), Dot(p2, p2), Dot(p3, p3)}.Map(taylorInvSqrtOf)
	p0 = p0.MulS(norm.X)
	p1 = p1.MulS(norm.Y)
	p2 = p2.MulS(norm.Z)
	p3 = p3.MulS(norm.W)

	m := MaxS(Vec4{0.6, 0.6, 0.6, 0.6}.Sub(Vec4{Dot(x0, x0), Dot(x1, x1), Dot(x2, x2), Dot(x3, x3)}), 0)
	m = m.Mul(m)
	return 42 * Dot(m.Mul(m), Vec4{Dot(p0, x0), Dot(p1, x1), Dot(p2, x2), Dot(p3, x3)})
}

func simplex4(v Vec4) Float {
	const (
		cx = 0.138196601125011    // (5 - sqrt(5)) / 20
		cy = 0.276393202250021    // 2 * cx
		cz = 0.414589803375032    // 3 * cx
		cw = -0.447213595499958   // 4*cx - 1
		f4 = 0.309016994374947451 // (sqrt(5) - 1) / 4
	)

	// First corner.
	i := Floor(v.AddS((v.X + v.Y + v.Z + v.W) * f4))
	x0 := v.Sub(i).AddS((i.X + i.Y + i.Z + i.W) * cx)

	// Rank sorting by Bill Licea-Kane. i0 ends up holding 0, 1, 2 and 3
	// in some order.
	isX := Step(x0.YZW(), Vec3{x0.X, x0.X, x0.X})
	isYZ := Step(Vec3{x0.Z, x0.W, x0.W}, Vec3{x0.Y, x0.Y, x0.Z})
	i0 := Vec4{isX.X + isX.Y + isX.Z, 1 - isX.X, 1 - isX.Y, 1 - isX.Z}
	i0.Y += isYZ.X + isYZ.Y
	i0.Z += 1 - isYZ.X + isYZ.Z
	i0.W += 2 - isYZ.Y - isYZ.Z

	i3 := ClampS(i0, 0, 1)
	i2 := ClampS(i0.SubS(1), 0, 1)
	i1 := ClampS(i0.SubS(2), 0, 1)

	x1 := x0.Sub(i1).AddS(cx)
	x2 := x0.Sub(i2).AddS(cy)
	x3 := x0.Sub(i3).AddS(cz)
	x4 := x0.AddS(cw)

	i = ModS(i, 289)
	j0 := permuteOf(i.W)
	j0 = permuteOf(j0 + i.Z)
	j0 = permuteOf(j0 + i.Y)
	j0 = permuteOf(j0 + i.X)
	j1 := permuteChain(
		[]Vec4{
			{i1.W, i2.W, i3.W, 1},
			{i1.Z, i2.Z, i3.Z, 1},
			{i1.Y, i2.Y, i3.Y, 1},
			{i1.X, i2.X, i3.X, 1},
		},
		[]Float{i.W, i.Z, i.Y, i.X},
	)

	// Gradients: 7x7x6 points over a cube mapped onto a 4-cross polytope.
	ip := Vec4{1.0 / 294, 1.0 / 49, 1.0 / 7, 0}
	p0 := grad4(j0, ip)
	p1 := grad4(j1.X, ip)
	p2 := grad4(j1.Y, ip)
	p3 := grad4(j1.Z, ip)
	p4 := grad4(j1.W, ip)

	norm := Vec4{Dot(p0, p0), Dot(p1, p1), Dot(p2, p2), Dot(p3, p3)}.Map(taylorInvSqrtOf)
	p0 = p0.MulS(norm.X)
	p1 = p1.MulS(norm.Y)
	p2 = p2.MulS(norm.Z)
	p3 = p3.MulS(norm.W)
	p4 = p4.MulS(taylorInvSqrtOf(Dot(p4, p4)))

	m0 := MaxS(Vec3{0.6, 0.6, 0.6}.Sub(Vec3{Dot(x0, x0), Dot(x1, x1), Dot(x2, x2)}), 0)
	m1 := MaxS(Vec2{0.6, 0.6}.Sub(Vec2{Dot(x3, x3), Dot(x4, x4)}), 0)
	m0 = m0.Mul(m0)
	m1 = m1.Mul(m1)

	return 49 * (Dot(m0.Mul(m0), Vec3{Dot(p0, x0), Dot(p1, x1), Dot(p2, x2)}) +
		Dot(m1.Mul(m1), Vec2{Dot(p3, x3), Dot(p4, x4)}))
}

func grad4(j Float, ip Vec4) Vec4 {
	pxyz := Floor(Fract(ip.XYZ().MulS(j)).MulS(7)).MulS(ip.Z).SubS(1)
	p := pxyz.Extend(1.5 - Dot(Abs(pxyz), Vec3{1, 1, 1}))
	s := Vec4{}.Select(Vec4{1, 1, 1, 1}, LessThan(p, Vec4{}))
	return pxyz.Add(s.XYZ().MulS(2).SubS(1).MulS(s.W)).Extend(p.W)
}
