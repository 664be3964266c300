// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
)

// netpbm PPM codec: P6 (binary raster) and P3 (ASCII raster),
// 8-bit samples. Comments are allowed between any header tokens.

func init() {
	image.RegisterFormat("ppm", "P6", DecodePPM, DecodePPMConfig)
	image.RegisterFormat("ppm", "P3", DecodePPM, DecodePPMConfig)
}

// ppmHeader holds the parsed preamble of a PPM stream.
type ppmHeader struct {
	ascii         bool
	width, height int
	maxVal        int
}

// nextToken returns the next whitespace-delimited token, skipping
// # comments, which run to end of line.
func nextToken(r *bufio.Reader) (string, error) {
	tok := make([]byte, 0, 16)
	inComment := false
	for {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			return "", err
		}
		if inComment {
			if b == '\n' {
				inComment = false
			}
			continue
		}
		switch b {
		case '#':
			inComment = true
		case ' ', '\t', '\r', '\n':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

func atoiToken(r *bufio.Reader, what string) (int, error) {
	tok, err := nextToken(r)
	if err != nil {
		return 0, fmt.Errorf("imagex.DecodePPM: reading %s: %w", what, err)
	}
	v := 0
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("imagex.DecodePPM: %s: %q is not a number", what, tok)
		}
		v = v*10 + int(c-'0')
		if v > 1<<30 {
			return 0, fmt.Errorf("imagex.DecodePPM: %s out of range", what)
		}
	}
	return v, nil
}

func decodeHeader(r *bufio.Reader) (*ppmHeader, error) {
	magic, err := nextToken(r)
	if err != nil {
		return nil, fmt.Errorf("imagex.DecodePPM: reading magic: %w", err)
	}
	hdr := &ppmHeader{}
	switch magic {
	case "P6":
	case "P3":
		hdr.ascii = true
	default:
		return nil, fmt.Errorf("imagex.DecodePPM: bad magic %q", magic)
	}
	if hdr.width, err = atoiToken(r, "width"); err != nil {
		return nil, err
	}
	if hdr.height, err = atoiToken(r, "height"); err != nil {
		return nil, err
	}
	if hdr.maxVal, err = atoiToken(r, "max value"); err != nil {
		return nil, err
	}
	if hdr.width <= 0 || hdr.height <= 0 {
		return nil, fmt.Errorf("imagex.DecodePPM: bad dimensions %dx%d", hdr.width, hdr.height)
	}
	if hdr.maxVal <= 0 || hdr.maxVal > 255 {
		return nil, fmt.Errorf("imagex.DecodePPM: max value %d not supported (8-bit samples only)", hdr.maxVal)
	}
	return hdr, nil
}

// DecodePPMConfig returns the color model and dimensions of a PPM
// image without decoding the raster.
func DecodePPMConfig(r io.Reader) (image.Config, error) {
	hdr, err := decodeHeader(bufio.NewReader(r))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.RGBAModel,
		Width:      hdr.width,
		Height:     hdr.height,
	}, nil
}

// DecodePPM reads a PPM image from r. Both the P6 binary and P3 ASCII
// forms are understood, with 8-bit samples.
func DecodePPM(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)
	hdr, err := decodeHeader(br)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, hdr.width, hdr.height))
	scale := 255 / hdr.maxVal
	if hdr.ascii {
		for y := 0; y < hdr.height; y++ {
			for x := 0; x < hdr.width; x++ {
				var s [3]int
				for c := 0; c < 3; c++ {
					if s[c], err = atoiToken(br, "sample"); err != nil {
						return nil, err
					}
					if s[c] > hdr.maxVal {
						return nil, fmt.Errorf("imagex.DecodePPM: sample %d exceeds max value %d", s[c], hdr.maxVal)
					}
				}
				i := img.PixOffset(x, y)
				img.Pix[i] = uint8(s[0] * scale)
				img.Pix[i+1] = uint8(s[1] * scale)
				img.Pix[i+2] = uint8(s[2] * scale)
				img.Pix[i+3] = 0xff
			}
		}
		return img, nil
	}
	row := make([]byte, hdr.width*3)
	for y := 0; y < hdr.height; y++ {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, fmt.Errorf("imagex.DecodePPM: raster row %d: %w", y, err)
		}
		for x := 0; x < hdr.width; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i] = uint8(int(row[x*3]) * scale)
			img.Pix[i+1] = uint8(int(row[x*3+1]) * scale)
			img.Pix[i+2] = uint8(int(row[x*3+2]) * scale)
			img.Pix[i+3] = 0xff
		}
	}
	return img, nil
}

// EncodePPM writes the image to w as PPM: the P6 binary raster by
// default, or the P3 ASCII raster if ascii is true. Alpha is dropped;
// PPM has no alpha channel.
func EncodePPM(w io.Writer, im image.Image, ascii bool) error {
	b := im.Bounds()
	bw := bufio.NewWriter(w)
	magic := "P6"
	if ascii {
		magic = "P3"
	}
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n255\n", magic, b.Dx(), b.Dy()); err != nil {
		return err
	}
	if ascii {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.RGBAModel.Convert(im.At(x, y)).(color.RGBA)
				if _, err := fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B); err != nil {
					return err
				}
			}
		}
		return bw.Flush()
	}
	row := make([]byte, b.Dx()*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(im.At(x, y)).(color.RGBA)
			i := (x - b.Min.X) * 3
			row[i] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}
