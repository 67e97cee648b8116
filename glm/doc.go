// Package glm implements GLSL-compatible mathematics for Go: scalar kinds,
// fixed-size vectors and matrices, and the builtin function library of the
// OpenGL Shading Language.
//
// Every builtin is written once over the GenNum family. A bare scalar and a
// vector of 2, 3 or 4 components both satisfy GenNum, so the same function
// accepts either:
//
//	import "github.com/ajroetker/go-glm/glm"
//
//	a := glm.Sin(glm.Float(0.5))        // Float
//	b := glm.Sin(glm.Vec3{0.5, 1, 1.5}) // Vec3
//	c := glm.Clamp(glm.IVec2{-3, 9}, glm.IVec2{0, 0}, glm.IVec2{5, 5})
//
// Element types are inferred from the argument, so dispatch is resolved at
// compile time.
//
// The GLSL type names (Vec3, IVec2, Mat4, ...) are aliases of the generic
// types, so vectors are built with composite literals. Matrices are column
// major: Matrix{C}x{R} holds C columns of Vector{R}, and Mat3x2Of and its
// siblings take their elements one column at a time.
// Fixed-arity method sets for matrices and vector swizzles are produced by
// cmd/glmgen.
package glm

//go:generate go run ../cmd/glmgen -kind matrix -output matrix_gen.go
//go:generate go run ../cmd/glmgen -kind swizzle -output swizzle_gen.go
