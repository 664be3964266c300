// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clgpu

import (
	"fmt"
	"image"

	"github.com/gpukit/gpukit/base/imagex"
)

// ImageFloats packs a host image into a []float32 with comps (1-4)
// components per pixel, normalized to [0,1], in row-major order. A
// comps below 4 drops the trailing channels.
func ImageFloats(img image.Image, comps int) ([]float32, error) {
	const op = "clgpu.ImageFloats"
	if img == nil {
		return nil, &PreconditionError{Op: op, Reason: "image is nil"}
	}
	if comps < 1 || comps > 4 {
		return nil, &PreconditionError{Op: op, Reason: fmt.Sprintf("components %d out of range 1..4", comps)}
	}
	rgba := imagex.AsRGBA(img)
	sz := rgba.Bounds().Size()
	vals := make([]float32, comps*sz.X*sz.Y)
	i := 0
	for y := 0; y < sz.Y; y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+4*sz.X]
		for x := 0; x < sz.X; x++ {
			px := row[4*x : 4*x+4]
			for c := 0; c < comps; c++ {
				vals[i] = float32(px[c]) / 255
				i++
			}
		}
	}
	return vals, nil
}

// FloatsImage unpacks a []float32 with comps (1-4) components per
// pixel into a width by height image, clamping values to [0,1].
// Channels absent from the source fill with 0, except alpha which
// fills opaque.
func FloatsImage(vals []float32, comps, width, height int) (*image.RGBA, error) {
	const op = "clgpu.FloatsImage"
	if comps < 1 || comps > 4 {
		return nil, &PreconditionError{Op: op, Reason: fmt.Sprintf("components %d out of range 1..4", comps)}
	}
	if width <= 0 || height <= 0 {
		return nil, &PreconditionError{Op: op, Reason: fmt.Sprintf("dimensions %d x %d must be positive", width, height)}
	}
	if len(vals) < comps*width*height {
		return nil, &PreconditionError{Op: op, Reason: fmt.Sprintf("%d values is fewer than %d x %d x %d", len(vals), width, height, comps)}
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	i := 0
	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+4*width]
		for x := 0; x < width; x++ {
			px := row[4*x : 4*x+4]
			px[3] = 255
			for c := 0; c < comps; c++ {
				v := vals[i]
				i++
				if v < 0 {
					v = 0
				} else if v > 1 {
					v = 1
				}
				px[c] = uint8(v*255 + 0.5)
			}
		}
	}
	return img, nil
}
