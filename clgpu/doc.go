// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clgpu wraps the OpenCL 1.2 API with lifecycle-safe types
// for contexts, in-order command queues, programs, kernels, buffers,
// images, and events, plus work-size geometry helpers. It builds on
// the github.com/jgillich/go-opencl binding, re-exporting its
// platform and device handles directly; everything above that level
// goes through the types here.
//
// Every enqueue operation accepts an optional wait list and returns
// an event for the enqueued command, so dependency chains and
// profiling work uniformly across buffers, images, and kernels.
package clgpu
