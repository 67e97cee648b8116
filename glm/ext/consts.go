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

// Package ext holds the GLM extensions that are not part of GLSL: generic
// constants, extra exponential and geometric helpers, and the classic
// transform builders (Translate, Rotate, Perspective, LookAt).
//
// Every helper is generic over the glm containers, so ext.Pi[glm.Vec3]()
// broadcasts pi into a vector and ext.Recip(glm.Double(4)) works on a bare
// scalar.
package ext

import (
	"math"

	"github.com/ajroetker/go-glm/glm"
)

const (
	rootHalfPi  = 1.253314137315500251207882642405522627
	rootTau     = 2.506628274631000502415765284811045253
	rootLnFour  = 1.17741002251547469101156932645969963
	euler       = 0.577215664901532860606512090082402431
	rootThree   = 1.73205080756887729352744634150587236
	rootFive    = 2.23606797749978969640917366873127623
	lnLnTwo     = -0.3665129205816643
	goldenRatio = math.Phi
)

func splat[G glm.GenFloat[G, E], E glm.BaseFloat](c float64) G {
	var g G
	return g.FromS(E(c))
}

// Pi returns π broadcast into G.
func Pi[G glm.GenFloat[G, E], E glm.BaseFloat]() G { return splat[G, E](math.Pi) }

// Tau returns 2π.
func Tau[G glm.GenFloat[G, E], E glm.BaseFloat]() G { return splat[G, E](2 * math.Pi) }

func RootPi[G glm.GenFloat[G, E], E glm.BaseFloat]() G         { return splat[G, E](math.SqrtPi) }
func HalfPi[G glm.GenFloat[G, E], E glm.BaseFloat]() G         { return splat[G, E](math.Pi / 2) }
func OneThirdPi[G glm.GenFloat[G, E], E glm.BaseFloat]() G     { return splat[G, E](math.Pi / 3) }
func QuarterPi[G glm.GenFloat[G, E], E glm.BaseFloat]() G      { return splat[G, E](math.Pi / 4) }
func OneOverPi[G glm.GenFloat[G, E], E glm.BaseFloat]() G      { return splat[G, E](1 / math.Pi) }
func OneOverTau[G glm.GenFloat[G, E], E glm.BaseFloat]() G     { return splat[G, E](1 / (2 * math.Pi)) }
func TwoOverPi[G glm.GenFloat[G, E], E glm.BaseFloat]() G      { return splat[G, E](2 / math.Pi) }
func FourOverPi[G glm.GenFloat[G, E], E glm.BaseFloat]() G     { return splat[G, E](4 / math.Pi) }
func TwoOverRootPi[G glm.GenFloat[G, E], E glm.BaseFloat]() G  { return splat[G, E](2 / math.SqrtPi) }
func OneOverRootTwo[G glm.GenFloat[G, E], E glm.BaseFloat]() G { return splat[G, E](1 / math.Sqrt2) }
func RootHalfPi[G glm.GenFloat[G, E], E glm.BaseFloat]() G     { return splat[G, E](rootHalfPi) }
func RootTau[G glm.GenFloat[G, E], E glm.BaseFloat]() G        { return splat[G, E](rootTau) }
func RootLnFour[G glm.GenFloat[G, E], E glm.BaseFloat]() G     { return splat[G, E](rootLnFour) }

// E returns Euler's number e.
func E[G glm.GenFloat[G, F], F glm.BaseFloat]() G { return splat[G, F](math.E) }

// Euler returns the Euler–Mascheroni constant γ.
func Euler[G glm.GenFloat[G, E], E glm.BaseFloat]() G { return splat[G, E](euler) }

func RootTwo[G glm.GenFloat[G, E], E glm.BaseFloat]() G     { return splat[G, E](math.Sqrt2) }
func RootThree[G glm.GenFloat[G, E], E glm.BaseFloat]() G   { return splat[G, E](rootThree) }
func RootFive[G glm.GenFloat[G, E], E glm.BaseFloat]() G    { return splat[G, E](rootFive) }
func LnTwo[G glm.GenFloat[G, E], E glm.BaseFloat]() G       { return splat[G, E](math.Ln2) }
func LnTen[G glm.GenFloat[G, E], E glm.BaseFloat]() G       { return splat[G, E](math.Ln10) }
func LnLnTwo[G glm.GenFloat[G, E], E glm.BaseFloat]() G     { return splat[G, E](lnLnTwo) }
func OneThird[G glm.GenFloat[G, E], E glm.BaseFloat]() G    { return splat[G, E](1.0 / 3) }
func TwoThirds[G glm.GenFloat[G, E], E glm.BaseFloat]() G   { return splat[G, E](2.0 / 3) }
func GoldenRatio[G glm.GenFloat[G, E], E glm.BaseFloat]() G { return splat[G, E](goldenRatio) }

// Epsilon returns the machine epsilon of E broadcast into G.
func Epsilon[G glm.GenFloat[G, E], E glm.BaseFloat]() G {
	var g G
	return g.FromS(glm.Epsilon[E]())
}
