// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/transform"
)

// AsRGBA returns the image as an *image.RGBA, converting
// (and copying) only if it is not one already.
func AsRGBA(img image.Image) *image.RGBA {
	if rimg, ok := img.(*image.RGBA); ok {
		return rimg
	}
	rimg := image.NewRGBA(img.Bounds())
	draw.Draw(rimg, rimg.Bounds(), img, img.Bounds().Min, draw.Src)
	return rimg
}

// Unflipped returns the image flipped about its horizontal axis,
// converting to *image.RGBA. Texture uploads address rows bottom-up
// while Go images are stored top-down, so uploads and framebuffer
// readbacks pass through this.
func Unflipped(img image.Image) *image.RGBA {
	return transform.FlipV(img)
}

// ToUpload returns the raw RGBA pixels of the image in bottom-up row
// order, along with its width and height, ready to hand to a 2D
// texture upload.
func ToUpload(img image.Image) (pix []byte, width, height int) {
	rimg := Unflipped(img)
	sz := rimg.Bounds().Size()
	return rimg.Pix, sz.X, sz.Y
}
