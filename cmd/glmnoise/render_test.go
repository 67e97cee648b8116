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
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(dim int) *Config {
	cfg := &Config{Width: 16, Height: 12, Dim: dim, Octaves: 3, Workers: 3}
	cfg.Resolve(Flags{Quiet: true})
	return cfg
}

func TestRender(t *testing.T) {
	for _, dim := range []int{2, 3, 4} {
		cfg := testConfig(dim)
		f, err := Render(context.Background(), cfg)
		require.NoError(t, err)
		require.Equal(t, 16, f.Width)
		require.Equal(t, 12, f.Height)
		require.Len(t, f.Data, 16*12)

		nonZero := 0
		for i, v := range f.Data {
			if math.IsNaN(float64(v)) || v < -2 || v > 2 {
				t.Fatalf("dim %d: sample %d out of range: %v", dim, i, v)
			}
			if v != 0 {
				nonZero++
			}
		}
		assert.NotZero(t, nonZero, "dim %d", dim)

		again, err := Render(context.Background(), cfg)
		require.NoError(t, err)
		assert.Equal(t, f.Data, again.Data, "dim %d: render is deterministic", dim)
	}
}

func TestRenderSupersample(t *testing.T) {
	cfg := testConfig(2)
	cfg.Supersample = 2
	f, err := Render(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 32, f.Width)
	assert.Equal(t, 24, f.Height)

	img := Downsample(Image(f, nil), cfg.Width, cfg.Height)
	assert.Equal(t, image.Rect(0, 0, 16, 12), img.Bounds())
}

func TestRenderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Render(ctx, testConfig(2))
	require.ErrorIs(t, err, context.Canceled)
}

func TestImage(t *testing.T) {
	f := &Field{Width: 3, Height: 1, Data: []float32{-1, 0, 1}}
	img := Image(f, nil)
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{128, 128, 128, 255}, img.NRGBAAt(1, 0))
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, img.NRGBAAt(2, 0))

	tint := image.NewUniform(color.NRGBA{255, 0, 0, 255})
	img = Image(f, tint)
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, img.NRGBAAt(2, 0))
	assert.Equal(t, color.NRGBA{128, 0, 0, 255}, img.NRGBAAt(1, 0))
}

func TestWriteOutputRaw(t *testing.T) {
	f, err := Render(context.Background(), testConfig(3))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "field.f32.zst")
	require.NoError(t, WriteOutput(path, f, Image(f, nil)))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	got, err := ReadRaw(file)
	require.NoError(t, err)
	assert.Equal(t, f.Width, got.Width)
	assert.Equal(t, f.Height, got.Height)
	assert.Equal(t, f.Data, got.Data)
}

func TestWriteOutputImages(t *testing.T) {
	f, err := Render(context.Background(), testConfig(2))
	require.NoError(t, err)
	img := Image(f, nil)
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "noise.png")
	require.NoError(t, WriteOutput(pngPath, f, img))
	data, err := os.ReadFile(pngPath)
	require.NoError(t, err)
	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())

	webpPath := filepath.Join(dir, "noise.webp")
	require.NoError(t, WriteOutput(webpPath, f, img))
	data, err = os.ReadFile(webpPath)
	require.NoError(t, err)
	require.Greater(t, len(data), 12)
	assert.Equal(t, "RIFF", string(data[:4]))
	assert.Equal(t, "WEBP", string(data[8:12]))

	assert.Error(t, WriteOutput(filepath.Join(dir, "noise.bmp"), f, img))
}
