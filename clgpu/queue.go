// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clgpu

import (
	"github.com/jgillich/go-opencl/cl"
)

// Queue is one in-order command queue on a single device. With
// profiling on, events from this queue carry device timestamps.
type Queue struct {
	// Device is the device the queue feeds.
	Device *cl.Device

	// Profiling records whether the queue was created with profiling
	// enabled.
	Profiling bool

	cq *cl.CommandQueue
}

// NewQueue creates an in-order command queue on dev, which must be
// one of the context's devices. profiling enables device timestamps
// on the queue's events.
func (cx *Context) NewQueue(dev *cl.Device, profiling bool) (*Queue, error) {
	if dev == nil {
		return nil, &PreconditionError{Op: "clgpu.Context.NewQueue", Reason: "device is nil"}
	}
	var props cl.CommandQueueProperty
	if profiling {
		props |= cl.CommandQueueProfilingEnable
	}
	cq, err := cx.ctx.CreateCommandQueue(dev, props)
	if err != nil {
		return nil, wrap("clgpu.Context.NewQueue", err)
	}
	return &Queue{Device: dev, Profiling: profiling, cq: cq}, nil
}

// Finish blocks until every command enqueued so far has completed.
func (qu *Queue) Finish() error {
	return wrap("clgpu.Queue.Finish", qu.cq.Finish())
}

// Flush submits all enqueued commands to the device without waiting.
func (qu *Queue) Flush() error {
	return wrap("clgpu.Queue.Flush", qu.cq.Flush())
}

// CL returns the underlying binding queue.
func (qu *Queue) CL() *cl.CommandQueue { return qu.cq }

// Release releases the queue.
func (qu *Queue) Release() {
	if qu.cq == nil {
		return
	}
	qu.cq.Release()
	qu.cq = nil
}
