// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clgpu

import (
	"fmt"

	"github.com/jgillich/go-opencl/cl"
)

// ImageKind is the dimensionality class of a device image.
type ImageKind int32

const (
	// Image1D is a single row of pixels.
	Image1D ImageKind = iota

	// Image1DBuffer is a single row backed by an existing buffer.
	Image1DBuffer

	// Image1DArray is a counted array of rows.
	Image1DArray

	// Image2D is a width by height image.
	Image2D

	// Image2DArray is a counted array of 2D slices.
	Image2DArray

	// Image3D is a width by height by depth volume.
	Image3D
)

var imageKindNames = map[ImageKind]string{
	Image1D:       "Image1D",
	Image1DBuffer: "Image1DBuffer",
	Image1DArray:  "Image1DArray",
	Image2D:       "Image2D",
	Image2DArray:  "Image2DArray",
	Image3D:       "Image3D",
}

func (k ImageKind) String() string {
	if nm, ok := imageKindNames[k]; ok {
		return nm
	}
	return fmt.Sprintf("ImageKind(%d)", int32(k))
}

func (k ImageKind) memObjectType() cl.MemObjectType {
	switch k {
	case Image1D:
		return cl.MemObjectTypeImage1D
	case Image1DBuffer:
		return cl.MemObjectTypeImage1DBuffer
	case Image1DArray:
		return cl.MemObjectTypeImage1DArray
	case Image2D:
		return cl.MemObjectTypeImage2D
	case Image2DArray:
		return cl.MemObjectTypeImage2DArray
	default:
		return cl.MemObjectTypeImage3D
	}
}

// FormatRGBA8 returns the 8-bit normalized RGBA image format.
func FormatRGBA8() cl.ImageFormat {
	return cl.ImageFormat{ChannelOrder: cl.ChannelOrderRGBA, ChannelDataType: cl.ChannelDataTypeUNormInt8}
}

// FormatRGBAFloat returns the float32 RGBA image format.
func FormatRGBAFloat() cl.ImageFormat {
	return cl.ImageFormat{ChannelOrder: cl.ChannelOrderRGBA, ChannelDataType: cl.ChannelDataTypeFloat}
}

// ImageCL is a 1, 2 or 3 dimensional device image. The access mode in
// flags and the channel format are fixed at creation.
type ImageCL struct {
	kind   ImageKind
	format cl.ImageFormat
	width  int
	height int
	depth  int
	count  int
	mem    *cl.MemObject
}

// newImage creates the descriptor-driven image kinds. If data is
// non-nil it is copied in; its layout must match the descriptor
// pitches, which the driver validates.
func (cx *Context) newImage(op string, kind ImageKind, flags cl.MemFlag, format cl.ImageFormat, desc cl.ImageDescription, data []byte) (*ImageCL, error) {
	if desc.Width <= 0 {
		return nil, &PreconditionError{Op: op, Reason: fmt.Sprintf("width %d must be positive", desc.Width)}
	}
	if data != nil {
		flags |= cl.MemCopyHostPtr
	}
	desc.Type = kind.memObjectType()
	mem, err := cx.ctx.CreateImage(flags, format, desc, data)
	if err != nil {
		return nil, wrap(op, err)
	}
	return &ImageCL{
		kind:   kind,
		format: format,
		width:  desc.Width,
		height: desc.Height,
		depth:  desc.Depth,
		count:  desc.ArraySize,
		mem:    mem,
	}, nil
}

// NewImage1D returns a one dimensional image of width pixels,
// initialized from data if non-nil.
func (cx *Context) NewImage1D(flags cl.MemFlag, format cl.ImageFormat, width int, data []byte) (*ImageCL, error) {
	return cx.newImage("clgpu.Context.NewImage1D", Image1D, flags, format,
		cl.ImageDescription{Width: width}, data)
}

// NewImage1DBuffer returns a one dimensional image view of width
// pixels over an existing buffer's storage.
func (cx *Context) NewImage1DBuffer(flags cl.MemFlag, format cl.ImageFormat, width int, bf *BufferCL) (*ImageCL, error) {
	const op = "clgpu.Context.NewImage1DBuffer"
	if bf == nil || bf.mem == nil {
		return nil, &PreconditionError{Op: op, Reason: "buffer is nil or released"}
	}
	return cx.newImage(op, Image1DBuffer, flags, format,
		cl.ImageDescription{Width: width, Buffer: bf.mem}, nil)
}

// NewImage1DArray returns an array of count rows of width pixels.
// RowPitch is the byte stride between rows, 0 for tightly packed.
func (cx *Context) NewImage1DArray(flags cl.MemFlag, format cl.ImageFormat, width, count, rowPitch int, data []byte) (*ImageCL, error) {
	const op = "clgpu.Context.NewImage1DArray"
	if count <= 0 {
		return nil, &PreconditionError{Op: op, Reason: fmt.Sprintf("array size %d must be positive", count)}
	}
	return cx.newImage(op, Image1DArray, flags, format,
		cl.ImageDescription{Width: width, ArraySize: count, RowPitch: rowPitch}, data)
}

// NewImage2D returns a width by height image. RowPitch is the byte
// stride between rows, 0 for tightly packed.
func (cx *Context) NewImage2D(flags cl.MemFlag, format cl.ImageFormat, width, height, rowPitch int, data []byte) (*ImageCL, error) {
	const op = "clgpu.Context.NewImage2D"
	if height <= 0 {
		return nil, &PreconditionError{Op: op, Reason: fmt.Sprintf("height %d must be positive", height)}
	}
	return cx.newImage(op, Image2D, flags, format,
		cl.ImageDescription{Width: width, Height: height, RowPitch: rowPitch}, data)
}

// NewImage2DArray returns an array of count width by height slices.
// SlicePitch is the byte stride between slices, 0 for tightly packed.
func (cx *Context) NewImage2DArray(flags cl.MemFlag, format cl.ImageFormat, width, height, count, rowPitch, slicePitch int, data []byte) (*ImageCL, error) {
	const op = "clgpu.Context.NewImage2DArray"
	if height <= 0 {
		return nil, &PreconditionError{Op: op, Reason: fmt.Sprintf("height %d must be positive", height)}
	}
	if count <= 0 {
		return nil, &PreconditionError{Op: op, Reason: fmt.Sprintf("array size %d must be positive", count)}
	}
	return cx.newImage(op, Image2DArray, flags, format,
		cl.ImageDescription{Width: width, Height: height, ArraySize: count, RowPitch: rowPitch, SlicePitch: slicePitch}, data)
}

// NewImage3D returns a width by height by depth volume.
func (cx *Context) NewImage3D(flags cl.MemFlag, format cl.ImageFormat, width, height, depth, rowPitch, slicePitch int, data []byte) (*ImageCL, error) {
	const op = "clgpu.Context.NewImage3D"
	if height <= 0 || depth <= 0 {
		return nil, &PreconditionError{Op: op, Reason: fmt.Sprintf("dimensions %d x %d x %d must be positive", width, height, depth)}
	}
	return cx.newImage(op, Image3D, flags, format,
		cl.ImageDescription{Width: width, Height: height, Depth: depth, RowPitch: rowPitch, SlicePitch: slicePitch}, data)
}

// Kind returns the image dimensionality class.
func (im *ImageCL) Kind() ImageKind { return im.kind }

// Format returns the channel order and data type.
func (im *ImageCL) Format() cl.ImageFormat { return im.format }

// Width returns the image width in pixels.
func (im *ImageCL) Width() int { return im.width }

// Height returns the image height in pixels, 0 for 1D kinds.
func (im *ImageCL) Height() int { return im.height }

// Depth returns the volume depth in pixels, 0 except for Image3D.
func (im *ImageCL) Depth() int { return im.depth }

// Count returns the array size, 0 for non-array kinds.
func (im *ImageCL) Count() int { return im.count }

// CL returns the underlying binding memory object.
func (im *ImageCL) CL() *cl.MemObject { return im.mem }

// Release releases the image.
func (im *ImageCL) Release() {
	if im.mem == nil {
		return
	}
	im.mem.Release()
	im.mem = nil
}

// imageCheck validates an image transfer region.
func imageCheck(op string, im *ImageCL, region [3]int, data []byte) error {
	if im == nil || im.mem == nil {
		return &PreconditionError{Op: op, Reason: "image is nil or released"}
	}
	if region[0] <= 0 || region[1] <= 0 || region[2] <= 0 {
		return &PreconditionError{Op: op, Reason: fmt.Sprintf("region %v must be positive in all dimensions (use 1 for absent ones)", region)}
	}
	if len(data) == 0 {
		return &PreconditionError{Op: op, Reason: "data is empty"}
	}
	return nil
}

// EnqueueReadImage copies a region of the image into data. Origin and
// region are in pixels with 1 (not 0) in the dimensions the image
// kind lacks. Pitches are byte strides in data, 0 for tightly packed.
func (qu *Queue) EnqueueReadImage(im *ImageCL, blocking bool, origin, region [3]int, rowPitch, slicePitch int, data []byte, wait []*Event) (*Event, error) {
	const op = "clgpu.Queue.EnqueueReadImage"
	if err := imageCheck(op, im, region, data); err != nil {
		return nil, err
	}
	ev, err := qu.cq.EnqueueReadImage(im.mem, blocking, origin, region, rowPitch, slicePitch, data, clEvents(wait))
	if err != nil {
		return nil, wrap(op, err)
	}
	return &Event{ev: ev}, nil
}

// EnqueueWriteImage copies data into a region of the image, with the
// same origin, region, and pitch conventions as EnqueueReadImage.
func (qu *Queue) EnqueueWriteImage(im *ImageCL, blocking bool, origin, region [3]int, rowPitch, slicePitch int, data []byte, wait []*Event) (*Event, error) {
	const op = "clgpu.Queue.EnqueueWriteImage"
	if err := imageCheck(op, im, region, data); err != nil {
		return nil, err
	}
	ev, err := qu.cq.EnqueueWriteImage(im.mem, blocking, origin, region, rowPitch, slicePitch, data, clEvents(wait))
	if err != nil {
		return nil, wrap(op, err)
	}
	return &Event{ev: ev}, nil
}
