// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"encoding/binary"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/mobile/exp/f32"
)

// Buffer is one GL buffer object. The target (e.g., gl.ARRAY_BUFFER,
// gl.ELEMENT_ARRAY_BUFFER, gl.TEXTURE_BUFFER) and usage hint are fixed
// at creation; storage is allocated once and updated in place with
// SetData. The caller owns the buffer and must call Release.
type Buffer struct {
	handle uint32
	target uint32
	usage  uint32
	size   int
}

// NewBuffer allocates size bytes of uninitialized storage for a new
// buffer bound to target with the given usage hint (e.g.,
// gl.STATIC_DRAW). The buffer remains bound to target on return.
// size must be positive.
func NewBuffer(target uint32, size int, usage uint32) (*Buffer, error) {
	if size <= 0 {
		return nil, &PreconditionError{Op: "glgpu.NewBuffer", Reason: fmt.Sprintf("size must be positive, got %d", size)}
	}
	ClearErrors()
	bf := &Buffer{target: target, usage: usage, size: size}
	gl.GenBuffers(1, &bf.handle)
	gl.BindBuffer(target, bf.handle)
	gl.BufferData(target, size, nil, usage)
	if err := CheckErr("glgpu.NewBuffer"); err != nil {
		gl.DeleteBuffers(1, &bf.handle)
		return nil, err
	}
	return bf, nil
}

// Handle returns the GL name of the buffer, 0 after Release.
func (bf *Buffer) Handle() uint32 { return bf.handle }

// Target returns the binding target the buffer was created for.
func (bf *Buffer) Target() uint32 { return bf.target }

// Usage returns the usage hint the storage was allocated with.
func (bf *Buffer) Usage() uint32 { return bf.usage }

// Size returns the byte size of the allocated storage.
func (bf *Buffer) Size() int { return bf.size }

// Bind binds the buffer to its target.
func (bf *Buffer) Bind() {
	gl.BindBuffer(bf.target, bf.handle)
}

// Unbind resets the buffer's target binding to 0.
func (bf *Buffer) Unbind() {
	gl.BindBuffer(bf.target, 0)
}

// SetData copies data into the buffer storage starting at the given
// byte offset, binding the buffer first. The write must fit within
// the storage allocated at creation.
func (bf *Buffer) SetData(data []byte, offset int) error {
	if bf.handle == 0 {
		return &PreconditionError{Op: "glgpu.Buffer.SetData", Reason: "buffer has been released"}
	}
	if offset < 0 || offset+len(data) > bf.size {
		return &PreconditionError{Op: "glgpu.Buffer.SetData", Reason: fmt.Sprintf("write of %d bytes at offset %d exceeds buffer size %d", len(data), offset, bf.size)}
	}
	if len(data) == 0 {
		return nil
	}
	ClearErrors()
	bf.Bind()
	gl.BufferSubData(bf.target, offset, len(data), gl.Ptr(data))
	return CheckErr("glgpu.Buffer.SetData")
}

// SetFloat32s copies vals into the buffer storage starting at the
// given byte offset, in little-endian byte order.
func (bf *Buffer) SetFloat32s(vals []float32, offset int) error {
	return bf.SetData(f32.Bytes(binary.LittleEndian, vals...), offset)
}

// ReadData copies len(data) bytes out of the buffer storage starting
// at the given byte offset, binding the buffer first.
func (bf *Buffer) ReadData(data []byte, offset int) error {
	if bf.handle == 0 {
		return &PreconditionError{Op: "glgpu.Buffer.ReadData", Reason: "buffer has been released"}
	}
	if offset < 0 || offset+len(data) > bf.size {
		return &PreconditionError{Op: "glgpu.Buffer.ReadData", Reason: fmt.Sprintf("read of %d bytes at offset %d exceeds buffer size %d", len(data), offset, bf.size)}
	}
	if len(data) == 0 {
		return nil
	}
	ClearErrors()
	bf.Bind()
	gl.GetBufferSubData(bf.target, offset, len(data), gl.Ptr(data))
	return CheckErr("glgpu.Buffer.ReadData")
}

// Release deletes the buffer object. Safe to call more than once.
func (bf *Buffer) Release() {
	if bf.handle == 0 {
		return
	}
	gl.DeleteBuffers(1, &bf.handle)
	bf.handle = 0
}

// BufferSize returns the byte size of the buffer currently bound to
// target, as reported by the driver.
func BufferSize(target uint32) int {
	var v int64
	gl.GetBufferParameteri64v(target, gl.BUFFER_SIZE, &v)
	return int(v)
}

// BufferUsage returns the usage hint of the buffer currently bound to
// target.
func BufferUsage(target uint32) uint32 {
	var v int32
	gl.GetBufferParameteriv(target, gl.BUFFER_USAGE, &v)
	return uint32(v)
}

// BufferAccess returns the access policy of the buffer currently bound
// to target.
func BufferAccess(target uint32) uint32 {
	var v int32
	gl.GetBufferParameteriv(target, gl.BUFFER_ACCESS, &v)
	return uint32(v)
}

// BufferMapped reports whether the buffer currently bound to target is
// mapped.
func BufferMapped(target uint32) bool {
	var v int32
	gl.GetBufferParameteriv(target, gl.BUFFER_MAPPED, &v)
	return v != 0
}
