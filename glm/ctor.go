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

// Element-wise constructors. Arguments are taken one column at a time, so
// m21 is row 2 of column 1.

func Mat2Of(
	m11, m21,
	m12, m22 Float,
) Mat2 {
	return Mat2{
		Vec2{m11, m21},
		Vec2{m12, m22},
	}
}

func Mat2x3Of(
	m11, m21, m31,
	m12, m22, m32 Float,
) Mat2x3 {
	return Mat2x3{
		Vec3{m11, m21, m31},
		Vec3{m12, m22, m32},
	}
}

func Mat2x4Of(
	m11, m21, m31, m41,
	m12, m22, m32, m42 Float,
) Mat2x4 {
	return Mat2x4{
		Vec4{m11, m21, m31, m41},
		Vec4{m12, m22, m32, m42},
	}
}

func Mat3x2Of(
	m11, m21,
	m12, m22,
	m13, m23 Float,
) Mat3x2 {
	return Mat3x2{
		Vec2{m11, m21},
		Vec2{m12, m22},
		Vec2{m13, m23},
	}
}

func Mat3Of(
	m11, m21, m31,
	m12, m22, m32,
	m13, m23, m33 Float,
) Mat3 {
	return Mat3{
		Vec3{m11, m21, m31},
		Vec3{m12, m22, m32},
		Vec3{m13, m23, m33},
	}
}

func Mat3x4Of(
	m11, m21, m31, m41,
	m12, m22, m32, m42,
	m13, m23, m33, m43 Float,
) Mat3x4 {
	return Mat3x4{
		Vec4{m11, m21, m31, m41},
		Vec4{m12, m22, m32, m42},
		Vec4{m13, m23, m33, m43},
	}
}

func Mat4x2Of(
	m11, m21,
	m12, m22,
	m13, m23,
	m14, m24 Float,
) Mat4x2 {
	return Mat4x2{
		Vec2{m11, m21},
		Vec2{m12, m22},
		Vec2{m13, m23},
		Vec2{m14, m24},
	}
}

func Mat4x3Of(
	m11, m21, m31,
	m12, m22, m32,
	m13, m23, m33,
	m14, m24, m34 Float,
) Mat4x3 {
	return Mat4x3{
		Vec3{m11, m21, m31},
		Vec3{m12, m22, m32},
		Vec3{m13, m23, m33},
		Vec3{m14, m24, m34},
	}
}

func Mat4Of(
	m11, m21, m31, m41,
	m12, m22, m32, m42,
	m13, m23, m33, m43,
	m14, m24, m34, m44 Float,
) Mat4 {
	return Mat4{
		Vec4{m11, m21, m31, m41},
		Vec4{m12, m22, m32, m42},
		Vec4{m13, m23, m33, m43},
		Vec4{m14, m24, m34, m44},
	}
}

func DMat2Of(
	m11, m21,
	m12, m22 Double,
) DMat2 {
	return DMat2{
		DVec2{m11, m21},
		DVec2{m12, m22},
	}
}

func DMat2x3Of(
	m11, m21, m31,
	m12, m22, m32 Double,
) DMat2x3 {
	return DMat2x3{
		DVec3{m11, m21, m31},
		DVec3{m12, m22, m32},
	}
}

func DMat2x4Of(
	m11, m21, m31, m41,
	m12, m22, m32, m42 Double,
) DMat2x4 {
	return DMat2x4{
		DVec4{m11, m21, m31, m41},
		DVec4{m12, m22, m32, m42},
	}
}

func DMat3x2Of(
	m11, m21,
	m12, m22,
	m13, m23 Double,
) DMat3x2 {
	return DMat3x2{
		DVec2{m11, m21},
		DVec2{m12, m22},
		DVec2{m13, m23},
	}
}

func DMat3Of(
	m11, m21, m31,
	m12, m22, m32,
	m13, m23, m33 Double,
) DMat3 {
	return DMat3{
		DVec3{m11, m21, m31},
		DVec3{m12, m22, m32},
		DVec3{m13, m23, m33},
	}
}

func DMat3x4Of(
	m11, m21, m31, m41,
	m12, m22, m32, m42,
	m13, m23, m33, m43 Double,
) DMat3x4 {
	return DMat3x4{
		DVec4{m11, m21, m31, m41},
		DVec4{m12, m22, m32, m42},
		DVec4{m13, m23, m33, m43},
	}
}

func DMat4x2Of(
	m11, m21,
	m12, m22,
	m13, m23,
	m14, m24 Double,
) DMat4x2 {
	return DMat4x2{
		DVec2{m11, m21},
		DVec2{m12, m22},
		DVec2{m13, m23},
		DVec2{m14, m24},
	}
}

func DMat4x3Of(
	m11, m21, m31,
	m12, m22, m32,
	m13, m23, m33,
	m14, m24, m34 Double,
) DMat4x3 {
	return DMat4x3{
		DVec3{m11, m21, m31},
		DVec3{m12, m22, m32},
		DVec3{m13, m23, m33},
		DVec3{m14, m24, m34},
	}
}

func DMat4Of(
	m11, m21, m31, m41,
	m12, m22, m32, m42,
	m13, m23, m33, m43,
	m14, m24, m34, m44 Double,
) DMat4 {
	return DMat4{
		DVec4{m11, m21, m31, m41},
		DVec4{m12, m22, m32, m42},
		DVec4{m13, m23, m33, m43},
		DVec4{m14, m24, m34, m44},
	}
}
