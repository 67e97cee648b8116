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

import "errors"

// Sentinel errors. Hard failures panic with an error wrapping one of these,
// so a recovered value can be tested with errors.Is.
var (
	// ErrIndexOutOfRange is used when a component, column or truncation
	// index is not smaller than the dimension.
	ErrIndexOutOfRange = errors.New("glm: index out of range")

	// ErrSingularMatrix is used by Inverse when the determinant is
	// approximately zero.
	ErrSingularMatrix = errors.New("glm: singular matrix")

	// ErrOutOfRange is returned by Cast when the value cannot be
	// represented in the target kind.
	ErrOutOfRange = errors.New("glm: value out of range")
)
