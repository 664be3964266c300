// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gpukit/gpukit/base/imagex"
)

// Texture is one GL texture object of target 1D, 2D, 3D, or buffer.
// Creation allocates immutable-size storage at mipmap level 0 and
// re-asserts the sampling defaults: nearest filtering, repeat
// wrapping, mipmaps off. The caller owns the texture and must call
// Release.
type Texture struct {
	// Name is an optional label for diagnostics.
	Name string

	handle uint32
	target uint32
	format Format
	width  int32
	height int32
	depth  int32
	mipmap bool
}

// NewTexture1D creates a 1D texture of the given sized internal
// format and width. pixels supplies the level 0 contents in the
// format's transfer layout; nil leaves the storage uninitialized.
func NewTexture1D(format Format, width int32, pixels []byte) (*Texture, error) {
	if err := textureCheck("glgpu.NewTexture1D", format, width, 1, 1, MaxTextureSize(), pixels); err != nil {
		return nil, err
	}
	tx := newTexture(gl.TEXTURE_1D, format, width, 1, 1)
	gl.TexImage1D(gl.TEXTURE_1D, 0, int32(format), width, 0, format.TransferFormat(), format.TransferType(), pixelPtr(pixels))
	return tx.finish("glgpu.NewTexture1D")
}

// NewTexture2D creates a 2D texture of the given sized internal
// format and dimensions. pixels supplies the level 0 contents row by
// row, tightly packed; nil leaves the storage uninitialized.
func NewTexture2D(format Format, width, height int32, pixels []byte) (*Texture, error) {
	if err := textureCheck("glgpu.NewTexture2D", format, width, height, 1, MaxTextureSize(), pixels); err != nil {
		return nil, err
	}
	tx := newTexture(gl.TEXTURE_2D, format, width, height, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(format), width, height, 0, format.TransferFormat(), format.TransferType(), pixelPtr(pixels))
	return tx.finish("glgpu.NewTexture2D")
}

// NewTexture3D creates a 3D texture of the given sized internal
// format and dimensions. pixels supplies the level 0 contents slice by
// slice, tightly packed; nil leaves the storage uninitialized.
func NewTexture3D(format Format, width, height, depth int32, pixels []byte) (*Texture, error) {
	if err := textureCheck("glgpu.NewTexture3D", format, width, height, depth, Max3DTextureSize(), pixels); err != nil {
		return nil, err
	}
	tx := newTexture(gl.TEXTURE_3D, format, width, height, depth)
	gl.TexImage3D(gl.TEXTURE_3D, 0, int32(format), width, height, depth, 0, format.TransferFormat(), format.TransferType(), pixelPtr(pixels))
	return tx.finish("glgpu.NewTexture3D")
}

// NewTextureBuffer creates a buffer texture whose storage is the given
// buffer, interpreted with the given texel format. The buffer remains
// owned by the caller and must outlive the texture. Sampling
// parameters and mipmaps do not apply to buffer textures.
func NewTextureBuffer(format Format, bf *Buffer) (*Texture, error) {
	if !IsTextureBufferFormat(format) {
		return nil, &PreconditionError{Op: "glgpu.NewTextureBuffer", Reason: fmt.Sprintf("format %v is not texture-buffer valid", format)}
	}
	if bf == nil || bf.Handle() == 0 {
		return nil, &PreconditionError{Op: "glgpu.NewTextureBuffer", Reason: "buffer is nil or released"}
	}
	ClearErrors()
	tx := &Texture{target: gl.TEXTURE_BUFFER, format: format, width: int32(bf.Size() / format.PixelBytes())}
	gl.GenTextures(1, &tx.handle)
	gl.BindTexture(gl.TEXTURE_BUFFER, tx.handle)
	gl.TexBuffer(gl.TEXTURE_BUFFER, uint32(format), bf.Handle())
	if err := CheckErr("glgpu.NewTextureBuffer"); err != nil {
		gl.DeleteTextures(1, &tx.handle)
		return nil, err
	}
	return tx, nil
}

// NewTextureImage creates an RGBA8 2D texture from a host image,
// flipped vertically so that the image's top row lands at texture
// coordinate t=1 as GL expects.
func NewTextureImage(img image.Image) (*Texture, error) {
	if img == nil {
		return nil, &PreconditionError{Op: "glgpu.NewTextureImage", Reason: "image is nil"}
	}
	pix, w, h := imagex.ToUpload(img)
	return NewTexture2D(gl.RGBA8, int32(w), int32(h), pix)
}

func newTexture(target uint32, format Format, width, height, depth int32) *Texture {
	ClearErrors()
	tx := &Texture{target: target, format: format, width: width, height: height, depth: depth}
	gl.GenTextures(1, &tx.handle)
	gl.BindTexture(target, tx.handle)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	return tx
}

// pixelPtr returns the upload pointer for pixel data, nil for absent
// data so the driver allocates uninitialized storage. gl.Ptr panics on
// empty slices, hence the guard.
func pixelPtr(pixels []byte) unsafe.Pointer {
	if len(pixels) == 0 {
		return nil
	}
	return gl.Ptr(pixels)
}

// finish re-asserts the creation defaults and checks the driver
// status, releasing the half-made texture on error.
func (tx *Texture) finish(op string) (*Texture, error) {
	gl.TexParameteri(tx.target, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(tx.target, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(tx.target, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(tx.target, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(tx.target, gl.TEXTURE_WRAP_R, gl.REPEAT)
	gl.TexParameteri(tx.target, gl.TEXTURE_BASE_LEVEL, 0)
	gl.TexParameteri(tx.target, gl.TEXTURE_MAX_LEVEL, 1000)
	if err := CheckErr(op); err != nil {
		gl.DeleteTextures(1, &tx.handle)
		return nil, err
	}
	return tx, nil
}

func textureCheck(op string, format Format, width, height, depth, max int32, pixels []byte) error {
	if !IsTextureFormat(format) {
		return &PreconditionError{Op: op, Reason: fmt.Sprintf("format %v is not texture valid", format)}
	}
	if width <= 0 || height <= 0 || depth <= 0 {
		return &PreconditionError{Op: op, Reason: fmt.Sprintf("dimensions %d x %d x %d must be positive", width, height, depth)}
	}
	if width > max || height > max || depth > max {
		return &PreconditionError{Op: op, Reason: fmt.Sprintf("dimensions %d x %d x %d exceed driver maximum %d", width, height, depth, max)}
	}
	if need := int(width) * int(height) * int(depth) * format.PixelBytes(); pixels != nil && len(pixels) < need {
		return &PreconditionError{Op: op, Reason: fmt.Sprintf("pixel data holds %d bytes, need %d", len(pixels), need)}
	}
	return nil
}

// Handle returns the GL name of the texture, 0 after Release.
func (tx *Texture) Handle() uint32 { return tx.handle }

// Target returns the texture target (gl.TEXTURE_1D, _2D, _3D, or
// gl.TEXTURE_BUFFER).
func (tx *Texture) Target() uint32 { return tx.target }

// InternalFormat returns the sized internal format of the storage.
func (tx *Texture) InternalFormat() Format { return tx.format }

// Width returns the level 0 width in texels.
func (tx *Texture) Width() int32 { return tx.width }

// Height returns the level 0 height in texels (1 for 1D and buffer
// textures).
func (tx *Texture) Height() int32 { return tx.height }

// Depth returns the level 0 depth in texels (1 except for 3D).
func (tx *Texture) Depth() int32 { return tx.depth }

// Bind binds the texture to its target on the active texture unit.
func (tx *Texture) Bind() {
	gl.BindTexture(tx.target, tx.handle)
}

// ActiveBind selects texture unit gl.TEXTURE0 + unit and binds the
// texture there, matching the unit index written to a sampler
// uniform.
func (tx *Texture) ActiveBind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(tx.target, tx.handle)
}

// Unbind resets the texture's target binding on the active unit.
func (tx *Texture) Unbind() {
	gl.BindTexture(tx.target, 0)
}

// SetMipmap turns mipmapped sampling on or off. Turning it on
// generates the full mip chain from level 0 and selects trilinear
// minification; turning it off clamps sampling to level 0. No effect
// on buffer textures, which have no mip chain.
func (tx *Texture) SetMipmap(on bool) {
	if tx.target == gl.TEXTURE_BUFFER {
		return
	}
	tx.Bind()
	tx.mipmap = on
	if on {
		gl.TexParameteri(tx.target, gl.TEXTURE_MAX_LEVEL, 1000)
		gl.GenerateMipmap(tx.target)
		gl.TexParameteri(tx.target, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	} else {
		gl.TexParameteri(tx.target, gl.TEXTURE_MAX_LEVEL, 0)
	}
}

// Mipmap reports whether mipmapped sampling is on.
func (tx *Texture) Mipmap() bool { return tx.mipmap }

// SetLevels sets the base and max mipmap levels used by sampling.
func (tx *Texture) SetLevels(base, max int32) {
	tx.Bind()
	gl.TexParameteri(tx.target, gl.TEXTURE_BASE_LEVEL, base)
	gl.TexParameteri(tx.target, gl.TEXTURE_MAX_LEVEL, max)
}

// SetFilter sets the minification and magnification filters (e.g.,
// gl.LINEAR, gl.NEAREST_MIPMAP_LINEAR).
func (tx *Texture) SetFilter(min, mag int32) {
	tx.Bind()
	gl.TexParameteri(tx.target, gl.TEXTURE_MIN_FILTER, min)
	gl.TexParameteri(tx.target, gl.TEXTURE_MAG_FILTER, mag)
}

// SetWrap sets the wrap modes for the s, t, and r coordinates (e.g.,
// gl.CLAMP_TO_EDGE, gl.REPEAT).
func (tx *Texture) SetWrap(s, t, r int32) {
	tx.Bind()
	gl.TexParameteri(tx.target, gl.TEXTURE_WRAP_S, s)
	gl.TexParameteri(tx.target, gl.TEXTURE_WRAP_T, t)
	gl.TexParameteri(tx.target, gl.TEXTURE_WRAP_R, r)
}

// Release deletes the texture object. A buffer texture's buffer is
// owned by the caller and is not released. Safe to call more than
// once.
func (tx *Texture) Release() {
	if tx.handle == 0 {
		return
	}
	gl.DeleteTextures(1, &tx.handle)
	tx.handle = 0
}

// MaxTextureSize returns the driver's maximum 1D/2D texture dimension.
func MaxTextureSize() int32 {
	var v int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &v)
	return v
}

// Max3DTextureSize returns the driver's maximum 3D texture dimension.
func Max3DTextureSize() int32 {
	var v int32
	gl.GetIntegerv(gl.MAX_3D_TEXTURE_SIZE, &v)
	return v
}

// MaxTextureBufferSize returns the driver's maximum buffer texture
// texel count.
func MaxTextureBufferSize() int32 {
	var v int32
	gl.GetIntegerv(gl.MAX_TEXTURE_BUFFER_SIZE, &v)
	return v
}

// MaxTextureUnits returns the number of texture units usable across
// all shader stages combined.
func MaxTextureUnits() int32 {
	var v int32
	gl.GetIntegerv(gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS, &v)
	return v
}
