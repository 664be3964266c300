// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// AttachmentKind selects how a framebuffer attachment is backed.
type AttachmentKind int32

const (
	// TextureAttachment backs the attachment with a sampleable texture.
	TextureAttachment AttachmentKind = iota

	// RenderbufferAttachment backs the attachment with a renderbuffer,
	// which cannot be sampled.
	RenderbufferAttachment
)

func (ak AttachmentKind) String() string {
	switch ak {
	case TextureAttachment:
		return "Texture"
	case RenderbufferAttachment:
		return "Renderbuffer"
	}
	return fmt.Sprintf("AttachmentKind(%d)", int32(ak))
}

// FramebufferConfig describes a framebuffer to compose: n color
// attachments of one format, optionally a depth (or depth+stencil)
// attachment, each backed by textures or renderbuffers.
type FramebufferConfig struct {
	// Width, Height are the attachment dimensions in pixels.
	Width, Height int32

	// NColors is the number of color attachments. 0 composes a
	// depth-only framebuffer, which requires a DepthFormat.
	NColors int

	// ColorFormat is the sized internal format of every color
	// attachment. Must be framebuffer-color valid when NColors > 0.
	ColorFormat Format

	// ColorKind backs the color attachments with textures or
	// renderbuffers.
	ColorKind AttachmentKind

	// DepthFormat is the sized internal format of the depth
	// attachment; 0 means no depth. Must be framebuffer-depth valid
	// when set. Depth-stencil formats attach to the combined
	// depth+stencil point.
	DepthFormat Format

	// DepthKind backs the depth attachment with a texture or a
	// renderbuffer.
	DepthKind AttachmentKind

	// FilterMin, FilterMag set the sampling filters on texture-backed
	// color attachments; 0 selects gl.NEAREST.
	FilterMin, FilterMag int32
}

// Framebuffer is a composed GL framebuffer object together with the
// attachments created for it. Attachments are accessible individually
// (e.g., to sample a color texture in a later pass) but are owned by
// the framebuffer: one Release tears down the whole composite.
type Framebuffer struct {
	// Colors holds the texture-backed color attachments, in attachment
	// order, when the config asked for TextureAttachment.
	Colors []*Texture

	// ColorRBs holds the renderbuffer-backed color attachments when
	// the config asked for RenderbufferAttachment.
	ColorRBs []*Renderbuffer

	// Depth is the texture-backed depth attachment, or nil.
	Depth *Texture

	// DepthRB is the renderbuffer-backed depth attachment, or nil.
	DepthRB *Renderbuffer

	handle uint32
	width  int32
	height int32
}

// NewFramebuffer composes a framebuffer per cfg: it creates and
// attaches the color and depth storage, declares the draw buffers,
// and verifies completeness. An incomplete status releases everything
// and returns a *FramebufferError carrying the status code. The
// default framebuffer is re-bound on return.
func NewFramebuffer(cfg *FramebufferConfig) (*Framebuffer, error) {
	if err := cfg.check(); err != nil {
		return nil, err
	}
	ClearErrors()
	fb := &Framebuffer{width: cfg.Width, height: cfg.Height}
	gl.GenFramebuffers(1, &fb.handle)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.handle)

	for i := 0; i < cfg.NColors; i++ {
		point := uint32(gl.COLOR_ATTACHMENT0 + i)
		switch cfg.ColorKind {
		case TextureAttachment:
			tx, err := NewFramebufferTexture(cfg.Width, cfg.Height, cfg.ColorFormat, cfg.filterMin(), cfg.filterMag())
			if err != nil {
				fb.Release()
				return nil, err
			}
			fb.Colors = append(fb.Colors, tx)
			gl.FramebufferTexture2D(gl.FRAMEBUFFER, point, gl.TEXTURE_2D, tx.Handle(), 0)
		case RenderbufferAttachment:
			rb, err := NewFramebufferRenderbuffer(cfg.Width, cfg.Height, cfg.ColorFormat)
			if err != nil {
				fb.Release()
				return nil, err
			}
			fb.ColorRBs = append(fb.ColorRBs, rb)
			gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, point, gl.RENDERBUFFER, rb.Handle())
		}
	}

	if cfg.DepthFormat != 0 {
		point := depthAttachmentPoint(cfg.DepthFormat)
		switch cfg.DepthKind {
		case TextureAttachment:
			tx, err := NewFramebufferDepth(cfg.Width, cfg.Height, cfg.DepthFormat)
			if err != nil {
				fb.Release()
				return nil, err
			}
			fb.Depth = tx
			gl.FramebufferTexture2D(gl.FRAMEBUFFER, point, gl.TEXTURE_2D, tx.Handle(), 0)
		case RenderbufferAttachment:
			rb, err := NewFramebufferRenderbuffer(cfg.Width, cfg.Height, cfg.DepthFormat)
			if err != nil {
				fb.Release()
				return nil, err
			}
			fb.DepthRB = rb
			gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, point, gl.RENDERBUFFER, rb.Handle())
		}
	}

	// Rebind: attachment creation disturbs the texture/renderbuffer
	// bindings, not the framebuffer, but be explicit before declaring
	// draw buffers and checking completeness.
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.handle)
	if cfg.NColors == 0 {
		gl.DrawBuffer(gl.NONE)
		gl.ReadBuffer(gl.NONE)
	} else {
		bufs := make([]uint32, cfg.NColors)
		for i := range bufs {
			bufs[i] = uint32(gl.COLOR_ATTACHMENT0 + i)
		}
		gl.DrawBuffers(int32(len(bufs)), &bufs[0])
	}

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		fb.Release()
		return nil, &FramebufferError{Status: status, Name: FramebufferStatusName(status)}
	}
	if err := CheckErr("glgpu.NewFramebuffer"); err != nil {
		fb.Release()
		return nil, err
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return fb, nil
}

// NewDepthFramebuffer composes a depth-only framebuffer with a
// sampleable depth texture, for shadow-map style passes.
func NewDepthFramebuffer(width, height int32, depthFormat Format) (*Framebuffer, error) {
	return NewFramebuffer(&FramebufferConfig{
		Width:       width,
		Height:      height,
		DepthFormat: depthFormat,
		DepthKind:   TextureAttachment,
	})
}

func (cfg *FramebufferConfig) check() error {
	const op = "glgpu.NewFramebuffer"
	if cfg == nil {
		return &PreconditionError{Op: op, Reason: "config is nil"}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return &PreconditionError{Op: op, Reason: fmt.Sprintf("dimensions %d x %d must be positive", cfg.Width, cfg.Height)}
	}
	if cfg.NColors < 0 {
		return &PreconditionError{Op: op, Reason: fmt.Sprintf("color attachment count %d is negative", cfg.NColors)}
	}
	if cfg.NColors == 0 && cfg.DepthFormat == 0 {
		return &PreconditionError{Op: op, Reason: "framebuffer needs at least one color or depth attachment"}
	}
	if cfg.NColors > 0 {
		if !IsFramebufferColorFormat(cfg.ColorFormat) {
			return &PreconditionError{Op: op, Reason: fmt.Sprintf("color format %v is not framebuffer-color valid", cfg.ColorFormat)}
		}
		if max := MaxColorAttachments(); cfg.NColors > int(max) {
			return &PreconditionError{Op: op, Reason: fmt.Sprintf("%d color attachments exceed driver maximum %d", cfg.NColors, max)}
		}
		if max := MaxDrawBuffers(); cfg.NColors > int(max) {
			return &PreconditionError{Op: op, Reason: fmt.Sprintf("%d draw buffers exceed driver maximum %d", cfg.NColors, max)}
		}
	}
	if cfg.DepthFormat != 0 && !IsFramebufferDepthFormat(cfg.DepthFormat) {
		return &PreconditionError{Op: op, Reason: fmt.Sprintf("depth format %v is not framebuffer-depth valid", cfg.DepthFormat)}
	}
	return nil
}

func (cfg *FramebufferConfig) filterMin() int32 {
	if cfg.FilterMin == 0 {
		return gl.NEAREST
	}
	return cfg.FilterMin
}

func (cfg *FramebufferConfig) filterMag() int32 {
	if cfg.FilterMag == 0 {
		return gl.NEAREST
	}
	return cfg.FilterMag
}

// depthAttachmentPoint returns the attachment point for a depth
// format: the combined point for depth+stencil formats, otherwise the
// depth point.
func depthAttachmentPoint(f Format) uint32 {
	if f.Base() == BaseDepthStencil {
		return gl.DEPTH_STENCIL_ATTACHMENT
	}
	return gl.DEPTH_ATTACHMENT
}

// NewFramebufferTexture creates a 2D texture suitable for color
// attachment: uninitialized storage, the given filters, and
// clamp-to-edge wrapping.
func NewFramebufferTexture(width, height int32, format Format, minf, magf int32) (*Texture, error) {
	if !IsFramebufferColorFormat(format) {
		return nil, &PreconditionError{Op: "glgpu.NewFramebufferTexture", Reason: fmt.Sprintf("format %v is not framebuffer-color valid", format)}
	}
	tx, err := NewTexture2D(format, width, height, nil)
	if err != nil {
		return nil, err
	}
	tx.SetFilter(minf, magf)
	tx.SetWrap(gl.CLAMP_TO_EDGE, gl.CLAMP_TO_EDGE, gl.CLAMP_TO_EDGE)
	return tx, nil
}

// NewFramebufferDepth creates a 2D texture suitable for depth
// attachment: uninitialized storage, nearest filtering, clamp-to-edge
// wrapping.
func NewFramebufferDepth(width, height int32, format Format) (*Texture, error) {
	if !IsFramebufferDepthFormat(format) {
		return nil, &PreconditionError{Op: "glgpu.NewFramebufferDepth", Reason: fmt.Sprintf("format %v is not framebuffer-depth valid", format)}
	}
	tx, err := NewTexture2D(format, width, height, nil)
	if err != nil {
		return nil, err
	}
	tx.SetFilter(gl.NEAREST, gl.NEAREST)
	tx.SetWrap(gl.CLAMP_TO_EDGE, gl.CLAMP_TO_EDGE, gl.CLAMP_TO_EDGE)
	return tx, nil
}

// NewFramebufferRenderbuffer creates renderbuffer storage suitable for
// color or depth attachment.
func NewFramebufferRenderbuffer(width, height int32, format Format) (*Renderbuffer, error) {
	return NewRenderbuffer(format, width, height)
}

// Handle returns the GL name of the framebuffer, 0 after Release.
func (fb *Framebuffer) Handle() uint32 { return fb.handle }

// Width returns the attachment width in pixels.
func (fb *Framebuffer) Width() int32 { return fb.width }

// Height returns the attachment height in pixels.
func (fb *Framebuffer) Height() int32 { return fb.height }

// Bind makes the framebuffer the render target and sets the viewport
// to its full extent.
func (fb *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.handle)
	gl.Viewport(0, 0, fb.width, fb.height)
}

// Unbind re-binds the default framebuffer. The caller restores the
// viewport.
func (fb *Framebuffer) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// Release deletes the framebuffer and every attachment composed for
// it. Safe to call more than once.
func (fb *Framebuffer) Release() {
	for _, tx := range fb.Colors {
		tx.Release()
	}
	fb.Colors = nil
	for _, rb := range fb.ColorRBs {
		rb.Release()
	}
	fb.ColorRBs = nil
	if fb.Depth != nil {
		fb.Depth.Release()
		fb.Depth = nil
	}
	if fb.DepthRB != nil {
		fb.DepthRB.Release()
		fb.DepthRB = nil
	}
	if fb.handle != 0 {
		gl.DeleteFramebuffers(1, &fb.handle)
		fb.handle = 0
	}
}

// MaxColorAttachments returns the driver's maximum color attachment
// count per framebuffer.
func MaxColorAttachments() int32 {
	var v int32
	gl.GetIntegerv(gl.MAX_COLOR_ATTACHMENTS, &v)
	return v
}

// MaxDrawBuffers returns the driver's maximum simultaneous draw
// buffer count.
func MaxDrawBuffers() int32 {
	var v int32
	gl.GetIntegerv(gl.MAX_DRAW_BUFFERS, &v)
	return v
}
