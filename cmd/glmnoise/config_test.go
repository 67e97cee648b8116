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

package main

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noise.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"width": 64, "dim": 3, "z": 0.5, "out": "a.webp"}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 3, cfg.Dim)
	assert.Equal(t, 0.5, cfg.Z)
	assert.Equal(t, "a.webp", cfg.Out)
	assert.Zero(t, cfg.Octaves)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"width": "wide"}`), 0o644))
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})
	assert.Equal(t, "noise.png", cfg.Out)
	assert.Equal(t, 256, cfg.Width)
	assert.Equal(t, 256, cfg.Height)
	assert.Equal(t, 4.0, cfg.Scale)
	assert.Equal(t, 4, cfg.Octaves)
	assert.Equal(t, 2, cfg.Dim)
	assert.Equal(t, 1, cfg.Supersample)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	cfg := Config{Width: 64, Height: 32, Dim: 3, Out: "file.png"}
	cfg.Resolve(Flags{Width: 128, Out: "flag.webp", Quiet: true})
	assert.Equal(t, 128, cfg.Width)
	assert.Equal(t, 32, cfg.Height)
	assert.Equal(t, 3, cfg.Dim)
	assert.Equal(t, "flag.webp", cfg.Out)
	assert.True(t, cfg.Quiet)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"png", Config{Dim: 2, Out: "a.png"}, false},
		{"webp upper case", Config{Dim: 4, Out: "A.WEBP"}, false},
		{"raw", Config{Dim: 3, Out: "field.f32.zst"}, false},
		{"bad dim", Config{Dim: 5, Out: "a.png"}, true},
		{"bad ext", Config{Dim: 2, Out: "a.jpg"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"debug", "INFO", "warn", "error", ""} {
		_, err := parseLevel(s)
		assert.NoError(t, err, s)
	}
	_, err := parseLevel("loud")
	assert.Error(t, err)
}
