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

import "golang.org/x/exp/constraints"

// Float is the GLSL float kind.
type Float float32

// Double is the GLSL double kind.
type Double float64

// Int is the GLSL int kind.
type Int int32

// Uint is the GLSL uint kind.
type Uint uint32

// Primitive is a constraint for every scalar kind, including bool.
type Primitive interface {
	~float32 | ~float64 | ~int32 | ~uint32 | ~bool
}

// BaseNum is a constraint for the numeric scalar kinds.
type BaseNum interface {
	~float32 | ~float64 | ~int32 | ~uint32
}

// BaseInt is a constraint for the integer scalar kinds.
type BaseInt interface {
	~int32 | ~uint32
}

// SignedNum is a constraint for the numeric kinds that have a sign.
type SignedNum interface {
	~int32 | constraints.Float
}

// BaseFloat is a constraint for the floating point kinds.
type BaseFloat interface {
	constraints.Float
}
