// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clgpu

import (
	"fmt"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"
)

// BufferCL is a linear device memory object. The access mode in flags
// is fixed at creation.
type BufferCL struct {
	size int
	mem  *cl.MemObject
}

// NewBuffer returns a device buffer of size bytes. If host is
// non-nil, the buffer is created with a copy of it and size is
// ignored in favor of len(host).
func (cx *Context) NewBuffer(flags cl.MemFlag, size int, host []byte) (*BufferCL, error) {
	const op = "clgpu.Context.NewBuffer"
	var mem *cl.MemObject
	var err error
	if host != nil {
		if len(host) == 0 {
			return nil, &PreconditionError{Op: op, Reason: "host data is empty"}
		}
		mem, err = cx.ctx.CreateBuffer(flags|cl.MemCopyHostPtr, host)
		size = len(host)
	} else {
		if size <= 0 {
			return nil, &PreconditionError{Op: op, Reason: fmt.Sprintf("size %d must be positive", size)}
		}
		mem, err = cx.ctx.CreateEmptyBuffer(flags, size)
	}
	if err != nil {
		return nil, wrap(op, err)
	}
	return &BufferCL{size: size, mem: mem}, nil
}

// NewBufferFloat32s returns a device buffer initialized with a copy
// of vals.
func (cx *Context) NewBufferFloat32s(flags cl.MemFlag, vals []float32) (*BufferCL, error) {
	const op = "clgpu.Context.NewBufferFloat32s"
	if len(vals) == 0 {
		return nil, &PreconditionError{Op: op, Reason: "host data is empty"}
	}
	mem, err := cx.ctx.CreateBufferFloat32(flags|cl.MemCopyHostPtr, vals)
	if err != nil {
		return nil, wrap(op, err)
	}
	return &BufferCL{size: 4 * len(vals), mem: mem}, nil
}

// Size returns the buffer length in bytes.
func (bf *BufferCL) Size() int { return bf.size }

// CL returns the underlying binding memory object.
func (bf *BufferCL) CL() *cl.MemObject { return bf.mem }

// Release releases the buffer.
func (bf *BufferCL) Release() {
	if bf.mem == nil {
		return
	}
	bf.mem.Release()
	bf.mem = nil
	bf.size = 0
}

// bufferCheck validates a buffer transfer of n bytes at offset.
func bufferCheck(op string, bf *BufferCL, offset, n int) error {
	if bf == nil || bf.mem == nil {
		return &PreconditionError{Op: op, Reason: "buffer is nil or released"}
	}
	if offset < 0 {
		return &PreconditionError{Op: op, Reason: fmt.Sprintf("offset %d is negative", offset)}
	}
	if offset+n > bf.size {
		return &PreconditionError{Op: op, Reason: fmt.Sprintf("%d bytes at offset %d exceed buffer size %d", n, offset, bf.size)}
	}
	return nil
}

// EnqueueWriteBuffer copies data into the buffer at byte offset. With
// blocking set it returns after the copy; otherwise the returned
// event tracks it. Empty data is a no-op.
func (qu *Queue) EnqueueWriteBuffer(bf *BufferCL, blocking bool, offset int, data []byte, wait []*Event) (*Event, error) {
	const op = "clgpu.Queue.EnqueueWriteBuffer"
	if err := bufferCheck(op, bf, offset, len(data)); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	ev, err := qu.cq.EnqueueWriteBuffer(bf.mem, blocking, offset, len(data), unsafe.Pointer(&data[0]), clEvents(wait))
	if err != nil {
		return nil, wrap(op, err)
	}
	return &Event{ev: ev}, nil
}

// EnqueueReadBuffer copies from the buffer at byte offset into data.
// With blocking set, data holds the result on return; otherwise it
// must stay untouched until the returned event completes.
func (qu *Queue) EnqueueReadBuffer(bf *BufferCL, blocking bool, offset int, data []byte, wait []*Event) (*Event, error) {
	const op = "clgpu.Queue.EnqueueReadBuffer"
	if err := bufferCheck(op, bf, offset, len(data)); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	ev, err := qu.cq.EnqueueReadBuffer(bf.mem, blocking, offset, len(data), unsafe.Pointer(&data[0]), clEvents(wait))
	if err != nil {
		return nil, wrap(op, err)
	}
	return &Event{ev: ev}, nil
}

// EnqueueWriteFloat32s copies vals into the buffer at byte offset.
func (qu *Queue) EnqueueWriteFloat32s(bf *BufferCL, blocking bool, offset int, vals []float32, wait []*Event) (*Event, error) {
	const op = "clgpu.Queue.EnqueueWriteFloat32s"
	if err := bufferCheck(op, bf, offset, 4*len(vals)); err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, nil
	}
	ev, err := qu.cq.EnqueueWriteBufferFloat32(bf.mem, blocking, offset, vals, clEvents(wait))
	if err != nil {
		return nil, wrap(op, err)
	}
	return &Event{ev: ev}, nil
}

// EnqueueReadFloat32s copies from the buffer at byte offset into
// vals.
func (qu *Queue) EnqueueReadFloat32s(bf *BufferCL, blocking bool, offset int, vals []float32, wait []*Event) (*Event, error) {
	const op = "clgpu.Queue.EnqueueReadFloat32s"
	if err := bufferCheck(op, bf, offset, 4*len(vals)); err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, nil
	}
	ev, err := qu.cq.EnqueueReadBufferFloat32(bf.mem, blocking, offset, vals, clEvents(wait))
	if err != nil {
		return nil, wrap(op, err)
	}
	return &Event{ev: ev}, nil
}

// EnqueueWriteBufferPtr copies size bytes at ptr into the buffer at
// byte offset, for hosts that are not byte slices.
func (qu *Queue) EnqueueWriteBufferPtr(bf *BufferCL, blocking bool, offset, size int, ptr unsafe.Pointer, wait []*Event) (*Event, error) {
	const op = "clgpu.Queue.EnqueueWriteBufferPtr"
	if err := bufferCheck(op, bf, offset, size); err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, &PreconditionError{Op: op, Reason: fmt.Sprintf("size %d must be positive", size)}
	}
	ev, err := qu.cq.EnqueueWriteBuffer(bf.mem, blocking, offset, size, ptr, clEvents(wait))
	if err != nil {
		return nil, wrap(op, err)
	}
	return &Event{ev: ev}, nil
}

// EnqueueReadBufferPtr copies size bytes from the buffer at byte
// offset to ptr.
func (qu *Queue) EnqueueReadBufferPtr(bf *BufferCL, blocking bool, offset, size int, ptr unsafe.Pointer, wait []*Event) (*Event, error) {
	const op = "clgpu.Queue.EnqueueReadBufferPtr"
	if err := bufferCheck(op, bf, offset, size); err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, &PreconditionError{Op: op, Reason: fmt.Sprintf("size %d must be positive", size)}
	}
	ev, err := qu.cq.EnqueueReadBuffer(bf.mem, blocking, offset, size, ptr, clEvents(wait))
	if err != nil {
		return nil, wrap(op, err)
	}
	return &Event{ev: ev}, nil
}
