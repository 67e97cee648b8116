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
	"bufio"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/HugoSmits86/nativewebp"
	"github.com/klauspost/compress/zstd"
)

// WriteOutput writes the render to path in the format chosen by its
// extension.
func WriteOutput(path string, f *Field, img image.Image) error {
	format, err := outputFormat(path)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("glmnoise: create %s: %w", path, err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	switch format {
	case "webp":
		err = nativewebp.Encode(w, img, nil)
	case "png":
		err = png.Encode(w, img)
	case "f32.zst":
		err = writeRaw(w, f)
	}
	if err != nil {
		return fmt.Errorf("glmnoise: encode %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("glmnoise: write %s: %w", path, err)
	}
	return out.Close()
}

// writeRaw writes a zstd stream holding the width and height as uint32
// followed by the field values, all little-endian.
func writeRaw(w io.Writer, f *Field) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return err
	}
	header := [2]uint32{uint32(f.Width), uint32(f.Height)}
	if err := binary.Write(enc, binary.LittleEndian, header); err != nil {
		enc.Close()
		return err
	}
	if err := binary.Write(enc, binary.LittleEndian, f.Data); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// ReadRaw reads a field written by writeRaw.
func ReadRaw(r io.Reader) (*Field, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var header [2]uint32
	if err := binary.Read(dec, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("glmnoise: read header: %w", err)
	}
	f := &Field{Width: int(header[0]), Height: int(header[1])}
	f.Data = make([]float32, f.Width*f.Height)
	if err := binary.Read(dec, binary.LittleEndian, f.Data); err != nil {
		return nil, fmt.Errorf("glmnoise: read field: %w", err)
	}
	return f, nil
}
