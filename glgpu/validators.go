// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Format validators: closed-set predicates gating resource creation.
// Each factory checks its formats here before touching the driver, so
// an ill-formed resource is caught as a precondition, not a driver error.

// colorRenderable is the set of sized formats the core profile requires
// to be color-renderable. Three-channel and snorm formats are absent:
// drivers need not support rendering to them.
var colorRenderable = map[Format]bool{
	gl.R8:             true,
	gl.R16:            true,
	gl.RG8:            true,
	gl.RG16:           true,
	gl.RGBA8:          true,
	gl.RGBA16:         true,
	gl.SRGB8_ALPHA8:   true,
	gl.R16F:           true,
	gl.R32F:           true,
	gl.RG16F:          true,
	gl.RG32F:          true,
	gl.RGBA16F:        true,
	gl.RGBA32F:        true,
	gl.R11F_G11F_B10F: true,
	gl.RGB10_A2:       true,
	gl.RGB10_A2UI:     true,
	gl.R8I:            true,
	gl.R16I:           true,
	gl.R32I:           true,
	gl.RG8I:           true,
	gl.RG16I:          true,
	gl.RG32I:          true,
	gl.RGBA8I:         true,
	gl.RGBA16I:        true,
	gl.RGBA32I:        true,
	gl.R8UI:           true,
	gl.R16UI:          true,
	gl.R32UI:          true,
	gl.RG8UI:          true,
	gl.RG16UI:         true,
	gl.RG32UI:         true,
	gl.RGBA8UI:        true,
	gl.RGBA16UI:       true,
	gl.RGBA32UI:       true,
}

// depthRenderable is the set of formats valid as depth attachments,
// for both texture and renderbuffer attachment paths.
var depthRenderable = map[Format]bool{
	gl.DEPTH_COMPONENT16:  true,
	gl.DEPTH_COMPONENT24:  true,
	gl.DEPTH_COMPONENT32F: true,
	gl.DEPTH24_STENCIL8:   true,
	gl.DEPTH32F_STENCIL8:  true,
}

// textureBuffer is the set of formats valid as texture buffer stores.
var textureBuffer = map[Format]bool{
	gl.R8:       true,
	gl.R16:      true,
	gl.R16F:     true,
	gl.R32F:     true,
	gl.R8I:      true,
	gl.R16I:     true,
	gl.R32I:     true,
	gl.R8UI:     true,
	gl.R16UI:    true,
	gl.R32UI:    true,
	gl.RG8:      true,
	gl.RG16:     true,
	gl.RG16F:    true,
	gl.RG32F:    true,
	gl.RG8I:     true,
	gl.RG16I:    true,
	gl.RG32I:    true,
	gl.RG8UI:    true,
	gl.RG16UI:   true,
	gl.RG32UI:   true,
	gl.RGB32F:   true,
	gl.RGB32I:   true,
	gl.RGB32UI:  true,
	gl.RGBA8:    true,
	gl.RGBA16:   true,
	gl.RGBA16F:  true,
	gl.RGBA32F:  true,
	gl.RGBA8I:   true,
	gl.RGBA16I:  true,
	gl.RGBA32I:  true,
	gl.RGBA8UI:  true,
	gl.RGBA16UI: true,
	gl.RGBA32UI: true,
}

// IsTextureFormat reports whether f may be used as a texture internal
// format. Every registry format, depth formats included, qualifies.
func IsTextureFormat(f Format) bool {
	return f.Valid()
}

// IsRenderbufferFormat reports whether f may back a renderbuffer:
// color-renderable or depth-renderable.
func IsRenderbufferFormat(f Format) bool {
	return colorRenderable[f] || depthRenderable[f]
}

// IsFramebufferColorFormat reports whether f may back a framebuffer
// color attachment.
func IsFramebufferColorFormat(f Format) bool {
	return colorRenderable[f]
}

// IsFramebufferDepthFormat reports whether f may back a framebuffer
// depth attachment.
func IsFramebufferDepthFormat(f Format) bool {
	return depthRenderable[f]
}

// IsTextureBufferFormat reports whether f may serve as the store
// format of a buffer texture.
func IsTextureBufferFormat(f Format) bool {
	return textureBuffer[f]
}
