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
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Config holds the render settings. Zero fields are filled in by Resolve.
type Config struct {
	// Output
	Out string `json:"out"`

	// Field
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Scale       float64 `json:"scale"`
	Octaves     int     `json:"octaves"`
	Dim         int     `json:"dim"`
	Z           float64 `json:"z"`
	W           float64 `json:"w"`
	SeedOffset  float64 `json:"seed_offset"`
	Supersample int     `json:"supersample"`
	Tint        string  `json:"tint"`

	// Runtime
	Workers  int    `json:"workers"`
	LogLevel string `json:"log_level"`
	LogJSON  bool   `json:"log_json"`
	Quiet    bool   `json:"quiet"`
}

// Load reads a JSON config file. Fields not set in the file keep their
// zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("glmnoise: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("glmnoise: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Out         string
	Width       int
	Height      int
	Scale       float64
	Octaves     int
	Dim         int
	Z           float64
	W           float64
	SeedOffset  float64
	Supersample int
	Tint        string
	Workers     int
	LogLevel    string
	LogJSON     bool
	Quiet       bool
}

// Resolve applies non-zero flags over the file values, then defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Out != "" {
		c.Out = flags.Out
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Scale != 0 {
		c.Scale = flags.Scale
	}
	if flags.Octaves > 0 {
		c.Octaves = flags.Octaves
	}
	if flags.Dim > 0 {
		c.Dim = flags.Dim
	}
	if flags.Z != 0 {
		c.Z = flags.Z
	}
	if flags.W != 0 {
		c.W = flags.W
	}
	if flags.SeedOffset != 0 {
		c.SeedOffset = flags.SeedOffset
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Tint != "" {
		c.Tint = flags.Tint
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	c.LogJSON = c.LogJSON || flags.LogJSON
	c.Quiet = c.Quiet || flags.Quiet

	// Defaults
	if c.Out == "" {
		c.Out = "noise.png"
	}
	if c.Width <= 0 {
		c.Width = 256
	}
	if c.Height <= 0 {
		c.Height = c.Width
	}
	if c.Scale == 0 {
		c.Scale = 4
	}
	if c.Octaves <= 0 {
		c.Octaves = 4
	}
	if c.Dim <= 0 {
		c.Dim = 2
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate reports settings Resolve cannot repair.
func (c *Config) Validate() error {
	if c.Dim < 2 || c.Dim > 4 {
		return fmt.Errorf("glmnoise: dim must be 2, 3 or 4, got %d", c.Dim)
	}
	if _, err := outputFormat(c.Out); err != nil {
		return err
	}
	return nil
}

// outputFormat maps an output path to one of "webp", "png" or "f32.zst".
func outputFormat(path string) (string, error) {
	lower := strings.ToLower(path)
	for _, ext := range []string{"f32.zst", "webp", "png"} {
		if strings.HasSuffix(lower, "."+ext) {
			return ext, nil
		}
	}
	return "", fmt.Errorf("glmnoise: unsupported output %q (want .webp, .png or .f32.zst)", path)
}
