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
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // tint images
	"os"

	_ "github.com/ftrvxmtrx/tga" // tint images
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-glm/glm"
)

// Field is a row-major grid of fractal noise values in about [-1, 1].
type Field struct {
	Width, Height int
	Data          []float32
}

// At returns the value at column x, row y.
func (f *Field) At(x, y int) float32 { return f.Data[y*f.Width+x] }

// Render evaluates the noise field at Supersample times the configured
// size. Rows are rendered concurrently by up to cfg.Workers goroutines.
func Render(ctx context.Context, cfg *Config) (*Field, error) {
	w, h := cfg.Width*cfg.Supersample, cfg.Height*cfg.Supersample
	f := &Field{Width: w, Height: h, Data: make([]float32, w*h)}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for y := 0; y < h; y++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row := f.Data[y*w : (y+1)*w]
			v := glm.Float(y) / glm.Float(h)
			for x := range row {
				row[x] = float32(fractal(cfg, glm.Float(x)/glm.Float(w), v))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("glmnoise: render: %w", err)
	}
	return f, nil
}

// fractal sums cfg.Octaves octaves of simplex noise at the normalized
// image position (u, v). Octave k samples at frequency Scale*2^k with
// amplitude 0.5^k. The sum is normalized back to about [-1, 1].
func fractal(cfg *Config, u, v glm.Float) glm.Float {
	off := glm.Float(cfg.SeedOffset)
	p := glm.Vec4{u, v, glm.Float(cfg.Z), glm.Float(cfg.W)}

	var sum, norm glm.Float
	amp, freq := glm.Float(1), glm.Float(cfg.Scale)
	for k := 0; k < cfg.Octaves; k++ {
		q := p.MulS(freq).AddS(off)
		var n glm.Float
		switch cfg.Dim {
		case 2:
			n = glm.Noise1(q.XY())
		case 3:
			n = glm.Noise1(q.XYZ())
		default:
			n = glm.Noise1(q)
		}
		sum += amp * n
		norm += amp
		amp *= 0.5
		freq *= 2
	}
	return sum / norm
}

// Image maps the field to colour. Values are remapped to [0, 1] and used
// to blend from black to the tint colour sampled at the same relative
// position, or to white without a tint.
func Image(f *Field, tint image.Image) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	white := glm.Vec3{1, 1, 1}
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			t := glm.ClampS(glm.Float(f.At(x, y))*0.5+0.5, 0, 1)
			hi := white
			if tint != nil {
				hi = tintAt(tint, x, y, f.Width, f.Height)
			}
			c := glm.Round(glm.MixS(glm.Vec3{}, hi, t).MulS(255))
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(c.X), G: uint8(c.Y), B: uint8(c.Z), A: 255})
		}
	}
	return img
}

// tintAt samples tint at the position of pixel (x, y) in a w by h image.
func tintAt(tint image.Image, x, y, w, h int) glm.Vec3 {
	b := tint.Bounds()
	tx := b.Min.X + x*b.Dx()/w
	ty := b.Min.Y + y*b.Dy()/h
	r, g, bl, _ := tint.At(tx, ty).RGBA()
	return glm.Vec3{glm.Float(r), glm.Float(g), glm.Float(bl)}.DivS(0xffff)
}

// Downsample scales img to width by height with a Catmull-Rom filter.
// It returns img unchanged when it already has that size.
func Downsample(img *image.NRGBA, width, height int) *image.NRGBA {
	if img.Bounds().Dx() == width && img.Bounds().Dy() == height {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// loadTint decodes a PNG or TGA image.
func loadTint(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("glmnoise: open tint: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("glmnoise: decode tint %s: %w", path, err)
	}
	return img, nil
}
