// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clgpu

import (
	"fmt"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"
)

// Kernel is one kernel function of a built program, with its argument
// bindings. Arguments persist across enqueues; only changed ones need
// to be set again.
type Kernel struct {
	// Name is the kernel function name.
	Name string

	kern *cl.Kernel
}

// NumArgs returns the kernel's declared argument count.
func (kn *Kernel) NumArgs() (int, error) {
	n, err := kn.kern.NumArgs()
	return n, wrap("clgpu.Kernel.NumArgs", err)
}

// SetArg sets argument index from size bytes at ptr.
func (kn *Kernel) SetArg(index, size int, ptr unsafe.Pointer) error {
	if index < 0 {
		return &PreconditionError{Op: "clgpu.Kernel.SetArg", Reason: fmt.Sprintf("argument index %d is negative", index)}
	}
	if size <= 0 {
		return &PreconditionError{Op: "clgpu.Kernel.SetArg", Reason: fmt.Sprintf("argument size %d must be positive", size)}
	}
	return wrap("clgpu.Kernel.SetArg", kn.kern.SetArgUnsafe(index, size, ptr))
}

// SetArgs sets all arguments in order from the given values, using
// the binding's type mapping (numeric types, *cl.MemObject, etc).
func (kn *Kernel) SetArgs(args ...interface{}) error {
	return wrap("clgpu.Kernel.SetArgs", kn.kern.SetArgs(args...))
}

// SetArgBuffer points argument index at a buffer.
func (kn *Kernel) SetArgBuffer(index int, bf *BufferCL) error {
	if bf == nil || bf.mem == nil {
		return &PreconditionError{Op: "clgpu.Kernel.SetArgBuffer", Reason: "buffer is nil or released"}
	}
	return wrap("clgpu.Kernel.SetArgBuffer", kn.kern.SetArgBuffer(index, bf.mem))
}

// SetArgImage points argument index at an image.
func (kn *Kernel) SetArgImage(index int, im *ImageCL) error {
	if im == nil || im.mem == nil {
		return &PreconditionError{Op: "clgpu.Kernel.SetArgImage", Reason: "image is nil or released"}
	}
	return wrap("clgpu.Kernel.SetArgImage", kn.kern.SetArgBuffer(index, im.mem))
}

// SetArgInt32 sets argument index to an int32 value.
func (kn *Kernel) SetArgInt32(index int, v int32) error {
	return wrap("clgpu.Kernel.SetArgInt32", kn.kern.SetArgInt32(index, v))
}

// SetArgUint32 sets argument index to a uint32 value.
func (kn *Kernel) SetArgUint32(index int, v uint32) error {
	return wrap("clgpu.Kernel.SetArgUint32", kn.kern.SetArgUint32(index, v))
}

// SetArgFloat32 sets argument index to a float32 value.
func (kn *Kernel) SetArgFloat32(index int, v float32) error {
	return wrap("clgpu.Kernel.SetArgFloat32", kn.kern.SetArgFloat32(index, v))
}

// SetArgLocal reserves size bytes of device local memory for argument
// index.
func (kn *Kernel) SetArgLocal(index, size int) error {
	if size <= 0 {
		return &PreconditionError{Op: "clgpu.Kernel.SetArgLocal", Reason: fmt.Sprintf("local size %d must be positive", size)}
	}
	return wrap("clgpu.Kernel.SetArgLocal", kn.kern.SetArgLocal(index, size))
}

// CL returns the underlying binding kernel.
func (kn *Kernel) CL() *cl.Kernel { return kn.kern }

// Release releases the kernel.
func (kn *Kernel) Release() {
	if kn.kern == nil {
		return
	}
	kn.kern.Release()
	kn.kern = nil
}
