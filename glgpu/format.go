// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Format is a sized internal image format token (e.g., gl.RGBA8).
// The registry describes each supported token; queries on unknown
// tokens return neutral values, never an error.
type Format uint32

// BaseLayout is the channel layout class of a sized format.
type BaseLayout int32

const (
	BaseNone BaseLayout = iota
	BaseR
	BaseRG
	BaseRGB
	BaseRGBA
	BaseDepth
	BaseDepthStencil
)

// Components returns the channel cardinality of the layout.
func (bl BaseLayout) Components() int {
	switch bl {
	case BaseR, BaseDepth:
		return 1
	case BaseRG, BaseDepthStencil:
		return 2
	case BaseRGB:
		return 3
	case BaseRGBA:
		return 4
	}
	return 0
}

func (bl BaseLayout) String() string {
	switch bl {
	case BaseR:
		return "R"
	case BaseRG:
		return "RG"
	case BaseRGB:
		return "RGB"
	case BaseRGBA:
		return "RGBA"
	case BaseDepth:
		return "Depth"
	case BaseDepthStencil:
		return "DepthStencil"
	}
	return "None"
}

// ElemType is the per-channel element type of a sized format.
type ElemType int32

const (
	ElemNone ElemType = iota
	ElemS8
	ElemU8
	ElemS16
	ElemU16
	ElemS32
	ElemU32
	ElemF16
	ElemF32
	ElemU24S8 // packed depth24 + stencil8, one 32-bit transfer element
	ElemF32S8 // packed depth32f + stencil8, one 64-bit transfer element
)

// Bytes returns the width of one element of this type, as transferred.
func (et ElemType) Bytes() int {
	switch et {
	case ElemS8, ElemU8:
		return 1
	case ElemS16, ElemU16, ElemF16:
		return 2
	case ElemS32, ElemU32, ElemF32, ElemU24S8:
		return 4
	case ElemF32S8:
		return 8
	}
	return 0
}

func (et ElemType) String() string {
	switch et {
	case ElemS8:
		return "S8"
	case ElemU8:
		return "U8"
	case ElemS16:
		return "S16"
	case ElemU16:
		return "U16"
	case ElemS32:
		return "S32"
	case ElemU32:
		return "U32"
	case ElemF16:
		return "F16"
	case ElemF32:
		return "F32"
	case ElemU24S8:
		return "U24S8"
	case ElemF32S8:
		return "F32S8"
	}
	return "None"
}

// integer reports whether the element type is a non-float integer.
func (et ElemType) integer() bool {
	switch et {
	case ElemS8, ElemU8, ElemS16, ElemU16, ElemS32, ElemU32:
		return true
	}
	return false
}

// FormatInfo describes one registry entry for a sized format.
type FormatInfo struct {
	// Name is the symbolic constant name of the token.
	Name string

	// Base is the channel layout class.
	Base BaseLayout

	// Elem is the per-channel element type.
	Elem ElemType

	// Norm is set for normalized fixed-point channels, distinguishing
	// e.g. RGBA8 from RGBA8UI; both carry U8 elements.
	Norm bool

	// Packed is set when all channels share one transfer element,
	// e.g. RGB10_A2. For packed formats the per-pixel transfer size
	// is Elem.Bytes() alone.
	Packed bool
}

// Formats is the sized internal format registry. Derived facts
// (element width, channel count) come from the Elem and Base methods,
// so each entry carries only its classification.
var Formats = map[Format]FormatInfo{
	// normalized unsigned
	gl.R8:     {Name: "R8", Base: BaseR, Elem: ElemU8, Norm: true},
	gl.R16:    {Name: "R16", Base: BaseR, Elem: ElemU16, Norm: true},
	gl.RG8:    {Name: "RG8", Base: BaseRG, Elem: ElemU8, Norm: true},
	gl.RG16:   {Name: "RG16", Base: BaseRG, Elem: ElemU16, Norm: true},
	gl.RGB8:   {Name: "RGB8", Base: BaseRGB, Elem: ElemU8, Norm: true},
	gl.RGB16:  {Name: "RGB16", Base: BaseRGB, Elem: ElemU16, Norm: true},
	gl.RGBA8:  {Name: "RGBA8", Base: BaseRGBA, Elem: ElemU8, Norm: true},
	gl.RGBA16: {Name: "RGBA16", Base: BaseRGBA, Elem: ElemU16, Norm: true},
	gl.SRGB8:  {Name: "SRGB8", Base: BaseRGB, Elem: ElemU8, Norm: true},

	gl.SRGB8_ALPHA8: {Name: "SRGB8_ALPHA8", Base: BaseRGBA, Elem: ElemU8, Norm: true},

	// normalized signed
	gl.R8_SNORM:     {Name: "R8_SNORM", Base: BaseR, Elem: ElemS8, Norm: true},
	gl.R16_SNORM:    {Name: "R16_SNORM", Base: BaseR, Elem: ElemS16, Norm: true},
	gl.RG8_SNORM:    {Name: "RG8_SNORM", Base: BaseRG, Elem: ElemS8, Norm: true},
	gl.RG16_SNORM:   {Name: "RG16_SNORM", Base: BaseRG, Elem: ElemS16, Norm: true},
	gl.RGB8_SNORM:   {Name: "RGB8_SNORM", Base: BaseRGB, Elem: ElemS8, Norm: true},
	gl.RGB16_SNORM:  {Name: "RGB16_SNORM", Base: BaseRGB, Elem: ElemS16, Norm: true},
	gl.RGBA8_SNORM:  {Name: "RGBA8_SNORM", Base: BaseRGBA, Elem: ElemS8, Norm: true},
	gl.RGBA16_SNORM: {Name: "RGBA16_SNORM", Base: BaseRGBA, Elem: ElemS16, Norm: true},

	// float
	gl.R16F:    {Name: "R16F", Base: BaseR, Elem: ElemF16},
	gl.R32F:    {Name: "R32F", Base: BaseR, Elem: ElemF32},
	gl.RG16F:   {Name: "RG16F", Base: BaseRG, Elem: ElemF16},
	gl.RG32F:   {Name: "RG32F", Base: BaseRG, Elem: ElemF32},
	gl.RGB16F:  {Name: "RGB16F", Base: BaseRGB, Elem: ElemF16},
	gl.RGB32F:  {Name: "RGB32F", Base: BaseRGB, Elem: ElemF32},
	gl.RGBA16F: {Name: "RGBA16F", Base: BaseRGBA, Elem: ElemF16},
	gl.RGBA32F: {Name: "RGBA32F", Base: BaseRGBA, Elem: ElemF32},

	// signed integer
	gl.R8I:     {Name: "R8I", Base: BaseR, Elem: ElemS8},
	gl.R16I:    {Name: "R16I", Base: BaseR, Elem: ElemS16},
	gl.R32I:    {Name: "R32I", Base: BaseR, Elem: ElemS32},
	gl.RG8I:    {Name: "RG8I", Base: BaseRG, Elem: ElemS8},
	gl.RG16I:   {Name: "RG16I", Base: BaseRG, Elem: ElemS16},
	gl.RG32I:   {Name: "RG32I", Base: BaseRG, Elem: ElemS32},
	gl.RGB8I:   {Name: "RGB8I", Base: BaseRGB, Elem: ElemS8},
	gl.RGB16I:  {Name: "RGB16I", Base: BaseRGB, Elem: ElemS16},
	gl.RGB32I:  {Name: "RGB32I", Base: BaseRGB, Elem: ElemS32},
	gl.RGBA8I:  {Name: "RGBA8I", Base: BaseRGBA, Elem: ElemS8},
	gl.RGBA16I: {Name: "RGBA16I", Base: BaseRGBA, Elem: ElemS16},
	gl.RGBA32I: {Name: "RGBA32I", Base: BaseRGBA, Elem: ElemS32},

	// unsigned integer
	gl.R8UI:     {Name: "R8UI", Base: BaseR, Elem: ElemU8},
	gl.R16UI:    {Name: "R16UI", Base: BaseR, Elem: ElemU16},
	gl.R32UI:    {Name: "R32UI", Base: BaseR, Elem: ElemU32},
	gl.RG8UI:    {Name: "RG8UI", Base: BaseRG, Elem: ElemU8},
	gl.RG16UI:   {Name: "RG16UI", Base: BaseRG, Elem: ElemU16},
	gl.RG32UI:   {Name: "RG32UI", Base: BaseRG, Elem: ElemU32},
	gl.RGB8UI:   {Name: "RGB8UI", Base: BaseRGB, Elem: ElemU8},
	gl.RGB16UI:  {Name: "RGB16UI", Base: BaseRGB, Elem: ElemU16},
	gl.RGB32UI:  {Name: "RGB32UI", Base: BaseRGB, Elem: ElemU32},
	gl.RGBA8UI:  {Name: "RGBA8UI", Base: BaseRGBA, Elem: ElemU8},
	gl.RGBA16UI: {Name: "RGBA16UI", Base: BaseRGBA, Elem: ElemU16},
	gl.RGBA32UI: {Name: "RGBA32UI", Base: BaseRGBA, Elem: ElemU32},

	// packed
	gl.RGB10_A2:       {Name: "RGB10_A2", Base: BaseRGBA, Elem: ElemU32, Norm: true, Packed: true},
	gl.RGB10_A2UI:     {Name: "RGB10_A2UI", Base: BaseRGBA, Elem: ElemU32, Packed: true},
	gl.R11F_G11F_B10F: {Name: "R11F_G11F_B10F", Base: BaseRGB, Elem: ElemF32, Packed: true},

	// depth and depth-stencil
	gl.DEPTH_COMPONENT16:  {Name: "DEPTH_COMPONENT16", Base: BaseDepth, Elem: ElemU16, Norm: true},
	gl.DEPTH_COMPONENT24:  {Name: "DEPTH_COMPONENT24", Base: BaseDepth, Elem: ElemU32, Norm: true},
	gl.DEPTH_COMPONENT32F: {Name: "DEPTH_COMPONENT32F", Base: BaseDepth, Elem: ElemF32},
	gl.DEPTH24_STENCIL8:   {Name: "DEPTH24_STENCIL8", Base: BaseDepthStencil, Elem: ElemU24S8, Norm: true, Packed: true},
	gl.DEPTH32F_STENCIL8:  {Name: "DEPTH32F_STENCIL8", Base: BaseDepthStencil, Elem: ElemF32S8, Packed: true},
}

// Valid reports whether the token is in the registry.
func (f Format) Valid() bool {
	_, ok := Formats[f]
	return ok
}

// Base returns the channel layout class, or BaseNone if unknown.
func (f Format) Base() BaseLayout {
	return Formats[f].Base
}

// Elem returns the per-channel element type, or ElemNone if unknown.
func (f Format) Elem() ElemType {
	return Formats[f].Elem
}

// ElemBytes returns the width of one element of the format's type,
// or 0 if unknown.
func (f Format) ElemBytes() int {
	return Formats[f].Elem.Bytes()
}

// Components returns the channel cardinality of the format's layout,
// or 0 if unknown.
func (f Format) Components() int {
	return Formats[f].Base.Components()
}

// PixelBytes returns the per-pixel transfer size: one element for
// packed formats, element width times channel count otherwise.
func (f Format) PixelBytes() int {
	fi, ok := Formats[f]
	if !ok {
		return 0
	}
	if fi.Packed {
		return fi.Elem.Bytes()
	}
	return fi.Elem.Bytes() * fi.Base.Components()
}

func (f Format) String() string {
	if fi, ok := Formats[f]; ok {
		return fi.Name
	}
	return fmt.Sprintf("Format(0x%04x)", uint32(f))
}

// TransferFormat returns the pixel transfer format enum matching this
// internal format, for upload and readback calls. Integer (non-
// normalized) formats map to the *_INTEGER transfer formats.
// Returns 0 for unknown tokens.
func (f Format) TransferFormat() uint32 {
	fi, ok := Formats[f]
	if !ok {
		return 0
	}
	ints := fi.Elem.integer() && !fi.Norm
	switch fi.Base {
	case BaseR:
		if ints {
			return gl.RED_INTEGER
		}
		return gl.RED
	case BaseRG:
		if ints {
			return gl.RG_INTEGER
		}
		return gl.RG
	case BaseRGB:
		if ints {
			return gl.RGB_INTEGER
		}
		return gl.RGB
	case BaseRGBA:
		if ints {
			return gl.RGBA_INTEGER
		}
		return gl.RGBA
	case BaseDepth:
		return gl.DEPTH_COMPONENT
	case BaseDepthStencil:
		return gl.DEPTH_STENCIL
	}
	return 0
}

// TransferType returns the pixel transfer element type enum matching
// this internal format. Packed formats return their packed transfer
// enum. Returns 0 for unknown tokens.
func (f Format) TransferType() uint32 {
	switch f {
	case gl.RGB10_A2, gl.RGB10_A2UI:
		return gl.UNSIGNED_INT_2_10_10_10_REV
	case gl.R11F_G11F_B10F:
		return gl.UNSIGNED_INT_10F_11F_11F_REV
	case gl.DEPTH24_STENCIL8:
		return gl.UNSIGNED_INT_24_8
	case gl.DEPTH32F_STENCIL8:
		return gl.FLOAT_32_UNSIGNED_INT_24_8_REV
	case gl.DEPTH_COMPONENT24:
		return gl.UNSIGNED_INT
	}
	switch Formats[f].Elem {
	case ElemS8:
		return gl.BYTE
	case ElemU8:
		return gl.UNSIGNED_BYTE
	case ElemS16:
		return gl.SHORT
	case ElemU16:
		return gl.UNSIGNED_SHORT
	case ElemS32:
		return gl.INT
	case ElemU32:
		return gl.UNSIGNED_INT
	case ElemF16:
		return gl.HALF_FLOAT
	case ElemF32:
		return gl.FLOAT
	}
	return 0
}
