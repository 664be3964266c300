// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clgpu

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPattern() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{G: 51, A: 255})
	img.SetRGBA(0, 1, color.RGBA{B: 255})
	img.SetRGBA(1, 1, color.RGBA{R: 102, G: 102, B: 102, A: 255})
	return img
}

func TestImageFloats(t *testing.T) {
	img := testPattern()

	vals, err := ImageFloats(img, 4)
	require.NoError(t, err)
	require.Len(t, vals, 16)
	assert.Equal(t, float32(1), vals[0])  // (0,0) red
	assert.Equal(t, float32(0), vals[1])  // (0,0) green
	assert.Equal(t, float32(1), vals[3])  // (0,0) alpha
	assert.Equal(t, float32(0.2), vals[5]) // (1,0) green = 51/255
	assert.Equal(t, float32(0), vals[11]) // (0,1) alpha
	assert.Equal(t, float32(0.4), vals[12]) // (1,1) red = 102/255

	vals, err = ImageFloats(img, 1)
	require.NoError(t, err)
	require.Len(t, vals, 4)
	assert.Equal(t, []float32{1, 0, 0, 0.4}, vals)

	vals, err = ImageFloats(img, 3)
	require.NoError(t, err)
	require.Len(t, vals, 12)
	assert.Equal(t, float32(1), vals[8]) // (0,1) blue

	_, err = ImageFloats(nil, 4)
	assert.Error(t, err)
	_, err = ImageFloats(img, 0)
	assert.Error(t, err)
	_, err = ImageFloats(img, 5)
	assert.Error(t, err)
}

func TestFloatsImage(t *testing.T) {
	img, err := FloatsImage([]float32{1, 0, 0, 0, 0.2, 0}, 3, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{G: 51, A: 255}, img.RGBAAt(1, 0))

	// single component fills only red, opaque alpha
	img, err = FloatsImage([]float32{0.4}, 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 102, A: 255}, img.RGBAAt(0, 0))

	// out-of-range values clamp
	img, err = FloatsImage([]float32{-0.5, 2, 0.5, 1}, 4, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0, G: 255, B: 128, A: 255}, img.RGBAAt(0, 0))

	_, err = FloatsImage([]float32{1}, 0, 1, 1)
	assert.Error(t, err)
	_, err = FloatsImage([]float32{1}, 1, 0, 1)
	assert.Error(t, err)
	_, err = FloatsImage([]float32{1, 2}, 3, 1, 1)
	assert.Error(t, err)
}

func TestImageFloatsRoundTrip(t *testing.T) {
	img := testPattern()
	vals, err := ImageFloats(img, 4)
	require.NoError(t, err)
	back, err := FloatsImage(vals, 4, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, img.Pix, back.Pix)
}
