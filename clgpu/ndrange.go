// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clgpu

import (
	"fmt"

	"github.com/gpukit/gpukit/base/alignx"
)

// NDRange describes a 1, 2 or 3 dimensional work geometry for kernel
// enqueues. The zero value is the null range: as an offset it means
// zero, as a local size it lets the driver choose.
type NDRange struct {
	sizes [3]int
	dims  int
}

// NullRange returns the null work geometry.
func NullRange() NDRange { return NDRange{} }

// Range1D returns a one dimensional range of x items.
func Range1D(x int) NDRange {
	return NDRange{sizes: [3]int{x, 0, 0}, dims: 1}
}

// Range2D returns a two dimensional range of x by y items.
func Range2D(x, y int) NDRange {
	return NDRange{sizes: [3]int{x, y, 0}, dims: 2}
}

// Range3D returns a three dimensional range of x by y by z items.
func Range3D(x, y, z int) NDRange {
	return NDRange{sizes: [3]int{x, y, z}, dims: 3}
}

// Dims returns the number of declared dimensions, 0 for the null
// range.
func (r NDRange) Dims() int { return r.dims }

// IsNull reports whether this is the null range.
func (r NDRange) IsNull() bool { return r.dims == 0 }

// Sizes returns the declared sizes as a slice, nil for the null
// range.
func (r NDRange) Sizes() []int {
	if r.dims == 0 {
		return nil
	}
	return r.sizes[:r.dims]
}

// Size returns the total number of items, the product over the
// declared dimensions, 0 for the null range.
func (r NDRange) Size() int {
	if r.dims == 0 {
		return 0
	}
	n := 1
	for _, sz := range r.sizes[:r.dims] {
		n *= sz
	}
	return n
}

func (r NDRange) String() string {
	if r.dims == 0 {
		return "NullRange"
	}
	return fmt.Sprint(r.sizes[:r.dims])
}

// RoundUp returns global rounded up to the next multiple of local,
// for padding a global work size to a fixed local work-group size.
// If local is not positive, global is returned unchanged.
func RoundUp(global, local int) int {
	if local <= 0 {
		return global
	}
	return alignx.AlignUp(global, local)
}

// EnqueueKernel submits kn over the given work geometry. The global
// range must declare 1-3 dimensions with positive sizes. The offset
// and local ranges may be null; a non-null one must match the global
// dimensionality, and a null local lets the driver pick the
// work-group size. The enqueue waits for the given events first, and
// the returned event tracks its completion.
func (qu *Queue) EnqueueKernel(kn *Kernel, offset, global, local NDRange, wait []*Event) (*Event, error) {
	const op = "clgpu.Queue.EnqueueKernel"
	if kn == nil || kn.kern == nil {
		return nil, &PreconditionError{Op: op, Reason: "kernel is nil or released"}
	}
	if global.IsNull() {
		return nil, &PreconditionError{Op: op, Reason: "global range must declare 1-3 dimensions"}
	}
	for _, sz := range global.Sizes() {
		if sz <= 0 {
			return nil, &PreconditionError{Op: op, Reason: fmt.Sprintf("global range %v has a non-positive size", global)}
		}
	}
	if !offset.IsNull() {
		if offset.Dims() != global.Dims() {
			return nil, &PreconditionError{Op: op, Reason: fmt.Sprintf("offset range %v does not match global dimensionality %d", offset, global.Dims())}
		}
		for _, sz := range offset.Sizes() {
			if sz < 0 {
				return nil, &PreconditionError{Op: op, Reason: fmt.Sprintf("offset range %v has a negative element", offset)}
			}
		}
	}
	if !local.IsNull() {
		if local.Dims() != global.Dims() {
			return nil, &PreconditionError{Op: op, Reason: fmt.Sprintf("local range %v does not match global dimensionality %d", local, global.Dims())}
		}
		for _, sz := range local.Sizes() {
			if sz <= 0 {
				return nil, &PreconditionError{Op: op, Reason: fmt.Sprintf("local range %v has a non-positive size; use NullRange to let the driver choose", local)}
			}
		}
	}
	ev, err := qu.cq.EnqueueNDRangeKernel(kn.kern, offset.Sizes(), global.Sizes(), local.Sizes(), clEvents(wait))
	if err != nil {
		return nil, wrap(op, err)
	}
	return &Event{ev: ev}, nil
}
