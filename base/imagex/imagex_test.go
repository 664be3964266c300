// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testImage returns a small gradient with distinct corners.
func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 16), uint8(y * 16), uint8((x + y) * 8), 0xff})
		}
	}
	return img
}

func TestExtToFormat(t *testing.T) {
	f, err := ExtToFormat(".ppm")
	require.NoError(t, err)
	assert.Equal(t, PPM, f)
	f, err = ExtToFormat("jpeg")
	require.NoError(t, err)
	assert.Equal(t, JPEG, f)
	_, err = ExtToFormat(".xyz")
	assert.Error(t, err)
	assert.Equal(t, "PPM", PPM.String())
}

func TestPPMRoundTripBinary(t *testing.T) {
	src := testImage(13, 7)
	var buf bytes.Buffer
	require.NoError(t, EncodePPM(&buf, src, false))

	img, err := DecodePPM(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, src.Bounds(), img.Bounds())
	for y := 0; y < 7; y++ {
		for x := 0; x < 13; x++ {
			assert.Equal(t, src.At(x, y), img.At(x, y))
		}
	}
}

func TestPPMRoundTripASCII(t *testing.T) {
	src := testImage(5, 4)
	var buf bytes.Buffer
	require.NoError(t, EncodePPM(&buf, src, true))

	img, err := DecodePPM(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			assert.Equal(t, src.At(x, y), img.At(x, y))
		}
	}
}

func TestPPMComments(t *testing.T) {
	data := "P3 # the magic\n# a comment line\n 2 1 # dims\n255\n1 2 3  4 5 6\n"
	img, err := DecodePPM(bytes.NewReader([]byte(data)))
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, img.At(0, 0))
	assert.Equal(t, color.RGBA{4, 5, 6, 255}, img.At(1, 0))
}

func TestPPMConfig(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodePPM(&buf, testImage(9, 3), false))
	cfg, err := DecodePPMConfig(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Width)
	assert.Equal(t, 3, cfg.Height)
}

func TestPPMErrors(t *testing.T) {
	_, err := DecodePPM(bytes.NewReader([]byte("P9\n1 1\n255\n")))
	assert.Error(t, err)
	_, err = DecodePPM(bytes.NewReader([]byte("P6\n0 1\n255\n")))
	assert.Error(t, err)
	_, err = DecodePPM(bytes.NewReader([]byte("P6\n2 2\n65535\n")))
	assert.Error(t, err)
	// truncated raster
	_, err = DecodePPM(bytes.NewReader([]byte("P6\n2 2\n255\nxx")))
	assert.Error(t, err)
}

// the registered decoder makes PPM visible through the generic Read path
func TestReadDetectsPPM(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodePPM(&buf, testImage(4, 4), false))
	img, f, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, PPM, f)
	assert.Equal(t, 4, img.Bounds().Dx())
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	src := testImage(8, 8)

	for _, fn := range []string{"im.ppm", "im.png", "im.bmp"} {
		path := filepath.Join(dir, fn)
		require.NoError(t, Save(src, path))
		img, _, err := Open(path)
		require.NoError(t, err, fn)
		assert.Equal(t, src.Bounds().Size(), img.Bounds().Size(), fn)
	}
	_, err := os.Stat(filepath.Join(dir, "im.ppm"))
	assert.NoError(t, err)
}

func TestUnflipped(t *testing.T) {
	src := testImage(4, 2)
	fl := Unflipped(src)
	assert.Equal(t, src.At(0, 0), fl.At(0, 1))
	assert.Equal(t, src.At(3, 1), fl.At(3, 0))

	pix, w, h := ToUpload(src)
	assert.Equal(t, 4, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, 4*2*4, len(pix))
}

func TestAsRGBA(t *testing.T) {
	src := testImage(3, 3)
	assert.Same(t, src, AsRGBA(src))

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.SetGray(1, 1, color.Gray{Y: 100})
	rimg := AsRGBA(gray)
	assert.Equal(t, color.RGBA{100, 100, 100, 255}, rimg.RGBAAt(1, 1))
}
