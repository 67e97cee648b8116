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

import (
	"os"
	"strconv"
)

// DispatchLevel identifies how Fma evaluates a*b+c on this machine.
type DispatchLevel int

const (
	// DispatchScalar rounds the product before the addition.
	DispatchScalar DispatchLevel = iota

	// DispatchFMA uses a fused multiply-add with a single rounding.
	DispatchFMA
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchFMA:
		return "fma"
	default:
		return "unknown"
	}
}

// currentLevel is set by init() in dispatch_*.go files and never written
// afterwards.
var currentLevel DispatchLevel

// CurrentLevel returns the multiply-add strategy in use.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// NoFMAEnv checks if the GLM_NO_FMA environment variable is set.
// When set, Fma rounds the product separately regardless of CPU support,
// which makes results reproducible across machines.
func NoFMAEnv() bool {
	val := os.Getenv("GLM_NO_FMA")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
