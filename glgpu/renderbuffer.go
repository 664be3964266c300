// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderbuffer is one GL renderbuffer object: render-target storage
// that cannot be sampled. The caller owns it and must call Release.
type Renderbuffer struct {
	handle uint32
	format Format
	width  int32
	height int32
}

// NewRenderbuffer allocates renderbuffer storage of the given sized
// internal format and dimensions. The renderbuffer remains bound on
// return.
func NewRenderbuffer(format Format, width, height int32) (*Renderbuffer, error) {
	if !IsRenderbufferFormat(format) {
		return nil, &PreconditionError{Op: "glgpu.NewRenderbuffer", Reason: fmt.Sprintf("format %v is not renderbuffer valid", format)}
	}
	if width <= 0 || height <= 0 {
		return nil, &PreconditionError{Op: "glgpu.NewRenderbuffer", Reason: fmt.Sprintf("dimensions %d x %d must be positive", width, height)}
	}
	if max := MaxRenderbufferSize(); width > max || height > max {
		return nil, &PreconditionError{Op: "glgpu.NewRenderbuffer", Reason: fmt.Sprintf("dimensions %d x %d exceed driver maximum %d", width, height, max)}
	}
	ClearErrors()
	rb := &Renderbuffer{format: format, width: width, height: height}
	gl.GenRenderbuffers(1, &rb.handle)
	gl.BindRenderbuffer(gl.RENDERBUFFER, rb.handle)
	gl.RenderbufferStorage(gl.RENDERBUFFER, uint32(format), width, height)
	if err := CheckErr("glgpu.NewRenderbuffer"); err != nil {
		gl.DeleteRenderbuffers(1, &rb.handle)
		return nil, err
	}
	return rb, nil
}

// Handle returns the GL name of the renderbuffer, 0 after Release.
func (rb *Renderbuffer) Handle() uint32 { return rb.handle }

// InternalFormat returns the sized internal format of the storage.
func (rb *Renderbuffer) InternalFormat() Format { return rb.format }

// Width returns the storage width in pixels.
func (rb *Renderbuffer) Width() int32 { return rb.width }

// Height returns the storage height in pixels.
func (rb *Renderbuffer) Height() int32 { return rb.height }

// Bind binds the renderbuffer.
func (rb *Renderbuffer) Bind() {
	gl.BindRenderbuffer(gl.RENDERBUFFER, rb.handle)
}

// Unbind resets the renderbuffer binding to 0.
func (rb *Renderbuffer) Unbind() {
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
}

// Release deletes the renderbuffer object. Safe to call more than
// once.
func (rb *Renderbuffer) Release() {
	if rb.handle == 0 {
		return
	}
	gl.DeleteRenderbuffers(1, &rb.handle)
	rb.handle = 0
}

// MaxRenderbufferSize returns the driver's maximum renderbuffer
// dimension.
func MaxRenderbufferSize() int32 {
	var v int32
	gl.GetIntegerv(gl.MAX_RENDERBUFFER_SIZE, &v)
	return v
}
