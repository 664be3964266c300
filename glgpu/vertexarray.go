// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexArray is one GL vertex array object, recording attribute
// declarations and the element array binding. The caller owns the
// array and must call Release.
type VertexArray struct {
	handle uint32
	index  *Buffer
}

// NewVertexArray creates a new vertex array object and leaves it
// bound.
func NewVertexArray() (*VertexArray, error) {
	ClearErrors()
	va := &VertexArray{}
	gl.GenVertexArrays(1, &va.handle)
	gl.BindVertexArray(va.handle)
	if err := CheckErr("glgpu.NewVertexArray"); err != nil {
		gl.DeleteVertexArrays(1, &va.handle)
		return nil, err
	}
	return va, nil
}

// Handle returns the GL name of the vertex array, 0 after Release.
func (va *VertexArray) Handle() uint32 { return va.handle }

// Bind binds the vertex array.
func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.handle)
}

// Unbind resets the vertex array binding to 0.
func (va *VertexArray) Unbind() {
	gl.BindVertexArray(0)
}

// EnableAttrib enables the attribute at loc for array sourcing.
// A negative loc (an inactive or misspelled attribute name) is
// reported and ignored, returning false.
func (va *VertexArray) EnableAttrib(loc int32) bool {
	if loc < 0 {
		slog.Warn("glgpu.VertexArray.EnableAttrib: negative attribute location; name is not active")
		return false
	}
	gl.EnableVertexAttribArray(uint32(loc))
	return true
}

// DisableAttrib disables array sourcing for the attribute at loc.
func (va *VertexArray) DisableAttrib(loc int32) bool {
	if loc < 0 {
		slog.Warn("glgpu.VertexArray.DisableAttrib: negative attribute location; name is not active")
		return false
	}
	gl.DisableVertexAttribArray(uint32(loc))
	return true
}

// AttribPointer declares the attribute at loc to source float shader
// values from the buffer currently bound to gl.ARRAY_BUFFER, with the
// element count and source scalar taken from typ. Integer and double
// sources are converted to float, normalizing if requested. The
// buffer association is captured at declaration time, per GL
// semantics. stride and offset are in bytes.
//
// A negative loc returns false without error. Matrix and sampler
// types cannot be declared this way; matrix attributes are declared
// one column vector per location.
func (va *VertexArray) AttribPointer(loc int32, typ GLSLType, normalized bool, stride, offset int) (bool, error) {
	ti, ok := GLSLTypes[typ]
	if !ok || ti.Cols > 0 || ti.Sampler {
		return false, &PreconditionError{Op: "glgpu.VertexArray.AttribPointer", Reason: fmt.Sprintf("type %v cannot source a vertex attribute here", typ)}
	}
	if loc < 0 {
		slog.Warn("glgpu.VertexArray.AttribPointer: negative attribute location; name is not active")
		return false, nil
	}
	ClearErrors()
	gl.VertexAttribPointer(uint32(loc), int32(ti.Length), scalarEnum(ti.Scalar), normalized, int32(stride), gl.PtrOffset(offset))
	return true, CheckErr("glgpu.VertexArray.AttribPointer")
}

// AttribPointerI declares the attribute at loc to source int or uint
// shader values, without conversion. typ must have an integer scalar.
func (va *VertexArray) AttribPointerI(loc int32, typ GLSLType, stride, offset int) (bool, error) {
	ti, ok := GLSLTypes[typ]
	if !ok || ti.Cols > 0 || ti.Sampler || (ti.Scalar != KindInt && ti.Scalar != KindUint) {
		return false, &PreconditionError{Op: "glgpu.VertexArray.AttribPointerI", Reason: fmt.Sprintf("type %v is not an integer vertex attribute type", typ)}
	}
	if loc < 0 {
		slog.Warn("glgpu.VertexArray.AttribPointerI: negative attribute location; name is not active")
		return false, nil
	}
	ClearErrors()
	gl.VertexAttribIPointer(uint32(loc), int32(ti.Length), scalarEnum(ti.Scalar), int32(stride), gl.PtrOffset(offset))
	return true, CheckErr("glgpu.VertexArray.AttribPointerI")
}

// AttribPointerD declares the attribute at loc to source double shader
// values, without conversion. typ must have a double scalar.
func (va *VertexArray) AttribPointerD(loc int32, typ GLSLType, stride, offset int) (bool, error) {
	ti, ok := GLSLTypes[typ]
	if !ok || ti.Cols > 0 || ti.Scalar != KindDouble {
		return false, &PreconditionError{Op: "glgpu.VertexArray.AttribPointerD", Reason: fmt.Sprintf("type %v is not a double vertex attribute type", typ)}
	}
	if loc < 0 {
		slog.Warn("glgpu.VertexArray.AttribPointerD: negative attribute location; name is not active")
		return false, nil
	}
	ClearErrors()
	gl.VertexAttribLPointer(uint32(loc), int32(ti.Length), gl.DOUBLE, int32(stride), gl.PtrOffset(offset))
	return true, CheckErr("glgpu.VertexArray.AttribPointerD")
}

// AttribDivisor sets the instancing divisor for the attribute at loc:
// 0 advances per vertex, n > 0 advances once per n instances.
func (va *VertexArray) AttribDivisor(loc int32, divisor uint32) bool {
	if loc < 0 {
		slog.Warn("glgpu.VertexArray.AttribDivisor: negative attribute location; name is not active")
		return false
	}
	gl.VertexAttribDivisor(uint32(loc), divisor)
	return true
}

// SetIndexBuffer records bf as the element array for indexed draws.
// The vertex array is bound first so the binding is captured in its
// state.
func (va *VertexArray) SetIndexBuffer(bf *Buffer) {
	va.Bind()
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, bf.Handle())
	va.index = bf
}

// IndexBuffer returns the element array buffer recorded by
// SetIndexBuffer, or nil.
func (va *VertexArray) IndexBuffer() *Buffer { return va.index }

// Release deletes the vertex array object. Attribute buffers and the
// index buffer are owned by the caller and are not released. Safe to
// call more than once.
func (va *VertexArray) Release() {
	if va.handle == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &va.handle)
	va.handle = 0
}

// AttribValue sets the current (constant) value of the float
// attribute at loc, used when array sourcing is disabled. data must
// hold at least the element count of typ.
func AttribValue(loc int32, typ GLSLType, data []float32) (bool, error) {
	ti, ok := GLSLTypes[typ]
	if !ok || ti.Cols > 0 || ti.Sampler || ti.Scalar != KindFloat {
		return false, &PreconditionError{Op: "glgpu.AttribValue", Reason: fmt.Sprintf("type %v is not a float vertex attribute type", typ)}
	}
	if len(data) < ti.Length {
		return false, &PreconditionError{Op: "glgpu.AttribValue", Reason: fmt.Sprintf("%v needs %d values, got %d", typ, ti.Length, len(data))}
	}
	if loc < 0 {
		slog.Warn("glgpu.AttribValue: negative attribute location; name is not active")
		return false, nil
	}
	switch ti.Length {
	case 1:
		gl.VertexAttrib1fv(uint32(loc), &data[0])
	case 2:
		gl.VertexAttrib2fv(uint32(loc), &data[0])
	case 3:
		gl.VertexAttrib3fv(uint32(loc), &data[0])
	case 4:
		gl.VertexAttrib4fv(uint32(loc), &data[0])
	}
	return true, nil
}

// AttribValueI sets the current value of the int attribute at loc.
func AttribValueI(loc int32, typ GLSLType, data []int32) (bool, error) {
	ti, ok := GLSLTypes[typ]
	if !ok || ti.Cols > 0 || ti.Sampler || ti.Scalar != KindInt {
		return false, &PreconditionError{Op: "glgpu.AttribValueI", Reason: fmt.Sprintf("type %v is not an int vertex attribute type", typ)}
	}
	if len(data) < ti.Length {
		return false, &PreconditionError{Op: "glgpu.AttribValueI", Reason: fmt.Sprintf("%v needs %d values, got %d", typ, ti.Length, len(data))}
	}
	if loc < 0 {
		slog.Warn("glgpu.AttribValueI: negative attribute location; name is not active")
		return false, nil
	}
	switch ti.Length {
	case 1:
		gl.VertexAttribI1iv(uint32(loc), &data[0])
	case 2:
		gl.VertexAttribI2iv(uint32(loc), &data[0])
	case 3:
		gl.VertexAttribI3iv(uint32(loc), &data[0])
	case 4:
		gl.VertexAttribI4iv(uint32(loc), &data[0])
	}
	return true, nil
}

// AttribValueUI sets the current value of the uint attribute at loc.
func AttribValueUI(loc int32, typ GLSLType, data []uint32) (bool, error) {
	ti, ok := GLSLTypes[typ]
	if !ok || ti.Cols > 0 || ti.Sampler || ti.Scalar != KindUint {
		return false, &PreconditionError{Op: "glgpu.AttribValueUI", Reason: fmt.Sprintf("type %v is not a uint vertex attribute type", typ)}
	}
	if len(data) < ti.Length {
		return false, &PreconditionError{Op: "glgpu.AttribValueUI", Reason: fmt.Sprintf("%v needs %d values, got %d", typ, ti.Length, len(data))}
	}
	if loc < 0 {
		slog.Warn("glgpu.AttribValueUI: negative attribute location; name is not active")
		return false, nil
	}
	switch ti.Length {
	case 1:
		gl.VertexAttribI1uiv(uint32(loc), &data[0])
	case 2:
		gl.VertexAttribI2uiv(uint32(loc), &data[0])
	case 3:
		gl.VertexAttribI3uiv(uint32(loc), &data[0])
	case 4:
		gl.VertexAttribI4uiv(uint32(loc), &data[0])
	}
	return true, nil
}

// AttribValueD sets the current value of the double attribute at loc.
func AttribValueD(loc int32, typ GLSLType, data []float64) (bool, error) {
	ti, ok := GLSLTypes[typ]
	if !ok || ti.Cols > 0 || ti.Scalar != KindDouble {
		return false, &PreconditionError{Op: "glgpu.AttribValueD", Reason: fmt.Sprintf("type %v is not a double vertex attribute type", typ)}
	}
	if len(data) < ti.Length {
		return false, &PreconditionError{Op: "glgpu.AttribValueD", Reason: fmt.Sprintf("%v needs %d values, got %d", typ, ti.Length, len(data))}
	}
	if loc < 0 {
		slog.Warn("glgpu.AttribValueD: negative attribute location; name is not active")
		return false, nil
	}
	switch ti.Length {
	case 1:
		gl.VertexAttribL1dv(uint32(loc), &data[0])
	case 2:
		gl.VertexAttribL2dv(uint32(loc), &data[0])
	case 3:
		gl.VertexAttribL3dv(uint32(loc), &data[0])
	case 4:
		gl.VertexAttribL4dv(uint32(loc), &data[0])
	}
	return true, nil
}

// scalarEnum maps a registry scalar kind to its GL type token for
// attribute pointer declarations.
func scalarEnum(k ScalarKind) uint32 {
	switch k {
	case KindFloat:
		return gl.FLOAT
	case KindDouble:
		return gl.DOUBLE
	case KindInt:
		return gl.INT
	case KindUint:
		return gl.UNSIGNED_INT
	}
	return 0
}
