// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/gpukit/gpukit/base/errors"
)

// Debug enables additional logging around object creation and release.
var Debug = false

// PreconditionError reports arguments that cannot produce a valid
// driver object: an unknown format, a zero dimension, a wrong type
// kind. The call never reached the driver.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return e.Op + ": " + e.Reason
}

// DriverError reports a non-success status found on the driver error
// queue after a call, with the symbolic status name and the source
// location of the guarded call.
type DriverError struct {
	Op     string
	Code   uint32
	Name   string
	Source string
}

func (e *DriverError) Error() string {
	return fmt.Sprintf("%s: driver error %s (0x%04x) at %s", e.Op, e.Name, e.Code, e.Source)
}

// CompileError reports a failed shader compile, carrying the driver's
// full info log and the source text that produced it.
type CompileError struct {
	Stage ShaderStage
	Log   string
	Src   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("glgpu: %v shader compile failed:\n%s\nsource:\n%s", e.Stage, e.Log, e.Src)
}

// LinkError reports a failed program link, carrying the driver's
// full info log.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "glgpu: program link failed:\n" + e.Log
}

// FramebufferError reports an incomplete framebuffer, carrying the
// completeness status code and its symbolic name.
type FramebufferError struct {
	Status uint32
	Name   string
}

func (e *FramebufferError) Error() string {
	return fmt.Sprintf("glgpu: framebuffer incomplete: %s (0x%04x)", e.Name, e.Status)
}

// UniformTypeError reports a uniform or attribute write whose declared
// type cannot be dispatched: unknown to the type registry, or routed
// through the wrong entry point (e.g., a matrix through the vector path).
type UniformTypeError struct {
	Name string
	Type GLSLType
}

func (e *UniformTypeError) Error() string {
	return fmt.Sprintf("glgpu: variable %q: type %v cannot be dispatched here", e.Name, e.Type)
}

// ClearErrors drains the driver error queue, so that a following
// [CheckErr] reports only status raised after this point.
// A context must be current.
func ClearErrors() {
	for gl.GetError() != gl.NO_ERROR {
	}
}

// CheckErr inspects the driver error queue and returns a [DriverError]
// naming the given operation if a non-success status is found, draining
// any further queued status. It returns nil when the queue is clean.
// A context must be current.
func CheckErr(op string) error {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	for gl.GetError() != gl.NO_ERROR {
	}
	return &DriverError{Op: op, Code: code, Name: ErrorName(code), Source: errors.CallerInfo(2)}
}

// ErrorName returns the symbolic name of a driver error status code.
func ErrorName(code uint32) string {
	switch code {
	case gl.NO_ERROR:
		return "NO_ERROR"
	case gl.INVALID_ENUM:
		return "INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "OUT_OF_MEMORY"
	case gl.STACK_UNDERFLOW:
		return "STACK_UNDERFLOW"
	case gl.STACK_OVERFLOW:
		return "STACK_OVERFLOW"
	}
	return fmt.Sprintf("UNKNOWN(0x%04x)", code)
}

// FramebufferStatusName returns the symbolic name of a framebuffer
// completeness status code.
func FramebufferStatusName(status uint32) string {
	switch status {
	case gl.FRAMEBUFFER_COMPLETE:
		return "FRAMEBUFFER_COMPLETE"
	case gl.FRAMEBUFFER_UNDEFINED:
		return "FRAMEBUFFER_UNDEFINED"
	case gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT:
		return "FRAMEBUFFER_INCOMPLETE_ATTACHMENT"
	case gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT:
		return "FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT"
	case gl.FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER:
		return "FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER"
	case gl.FRAMEBUFFER_INCOMPLETE_READ_BUFFER:
		return "FRAMEBUFFER_INCOMPLETE_READ_BUFFER"
	case gl.FRAMEBUFFER_UNSUPPORTED:
		return "FRAMEBUFFER_UNSUPPORTED"
	case gl.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE:
		return "FRAMEBUFFER_INCOMPLETE_MULTISAMPLE"
	case gl.FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS:
		return "FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS"
	}
	return fmt.Sprintf("UNKNOWN(0x%04x)", status)
}
