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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchFMA, "fma"},
		{DispatchLevel(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String(): got %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestCurrentLevelFollowsEnv(t *testing.T) {
	if NoFMAEnv() {
		assert.Equal(t, DispatchScalar, CurrentLevel())
	}
	withDispatchLevel(t, DispatchScalar)
	assert.Equal(t, DispatchScalar, CurrentLevel())
}

func TestNoFMAEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv("GLM_NO_FMA", tt.val)
			assert.Equal(t, tt.want, NoFMAEnv())
		})
	}
}
