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

// Command glmnoise renders fractal simplex noise from the glm noise
// builtins to a WebP, PNG or zstd-compressed raw float field.
//
// Usage:
//
//	glmnoise -out clouds.webp -width 512 -octaves 6 -dim 3 -z 0.25
//	glmnoise -config noise.json -out field.f32.zst
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"time"

	"github.com/ajroetker/go-glm/glm"
)

func main() {
	configFile := flag.String("config", "", "Path to a JSON config file")
	var flags Flags
	flag.StringVar(&flags.Out, "out", "", "Output file: .webp, .png or .f32.zst (default: noise.png)")
	flag.IntVar(&flags.Width, "width", 0, "Image width in pixels (default: 256)")
	flag.IntVar(&flags.Height, "height", 0, "Image height in pixels (default: width)")
	flag.Float64Var(&flags.Scale, "scale", 0, "Base noise frequency over the image (default: 4)")
	flag.IntVar(&flags.Octaves, "octaves", 0, "Number of octaves (default: 4)")
	flag.IntVar(&flags.Dim, "dim", 0, "Noise dimension: 2, 3 or 4 (default: 2)")
	flag.Float64Var(&flags.Z, "z", 0, "Third coordinate for -dim 3 and 4")
	flag.Float64Var(&flags.W, "w", 0, "Fourth coordinate for -dim 4")
	flag.IntVar(&flags.Supersample, "supersample", 0, "Render at N times the size and downscale (default: 1)")
	flag.StringVar(&flags.Tint, "tint", "", "PNG or TGA image to tint the output with")
	flag.Float64Var(&flags.SeedOffset, "seed-offset", 0, "Offset added to every sample coordinate")
	flag.StringVar(&flags.LogLevel, "log-level", "", "Log level: debug, info, warn or error (default: info)")
	flag.BoolVar(&flags.LogJSON, "log-json", false, "Log JSON records")
	flag.BoolVar(&flags.Quiet, "quiet", false, "Disable logging")
	flag.IntVar(&flags.Workers, "workers", 0, "Number of render goroutines (default: NumCPU)")
	flag.Parse()

	var cfg Config
	if *configFile != "" {
		var err error
		cfg, err = Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(flags)

	if err := run(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	log = log.WithField(cfg.Width, cfg.Height, cfg.Dim)
	log.Debug("dispatch", "level", glm.CurrentLevel().String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	field, err := Render(ctx, cfg)
	if err != nil {
		return err
	}
	log.Info("rendered", "octaves", cfg.Octaves, "supersample", cfg.Supersample,
		"elapsed", time.Since(start))

	var tint image.Image
	if cfg.Tint != "" {
		if tint, err = loadTint(cfg.Tint); err != nil {
			return err
		}
	}
	img := Downsample(Image(field, tint), cfg.Width, cfg.Height)

	if err := WriteOutput(cfg.Out, field, img); err != nil {
		return err
	}
	log.Info("wrote", "path", cfg.Out)
	return nil
}
