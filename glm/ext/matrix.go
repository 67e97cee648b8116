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

import "github.com/ajroetker/go-glm/glm"

// Trace returns the sum of the main diagonal.
func Trace[M glm.GenSquareMat[M, T, C], T glm.BaseFloat, C any](m M) T {
	return m.Trace()
}

// IsInvertible reports whether the determinant of m is not approximately
// zero.
func IsInvertible[M glm.GenSquareMat[M, T, C], T glm.BaseFloat, C any](m M) bool {
	return !glm.IsApproxEq(m.Determinant(), 0)
}
