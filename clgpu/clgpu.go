// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clgpu

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jgillich/go-opencl/cl"
)

// Platforms returns all OpenCL platforms on this host.
func Platforms() ([]*cl.Platform, error) {
	ps, err := cl.GetPlatforms()
	if err != nil {
		return nil, wrap("clgpu.Platforms", err)
	}
	return ps, nil
}

// Devices returns the devices of the given type (cl.DeviceTypeGPU,
// cl.DeviceTypeCPU, cl.DeviceTypeAll) on the platform.
func Devices(p *cl.Platform, typ cl.DeviceType) ([]*cl.Device, error) {
	if p == nil {
		return nil, &PreconditionError{Op: "clgpu.Devices", Reason: "platform is nil"}
	}
	ds, err := p.GetDevices(typ)
	if err != nil {
		return nil, wrap("clgpu.Devices", err)
	}
	return ds, nil
}

// PlatformInfo returns a readable one-line summary of a platform.
func PlatformInfo(p *cl.Platform) string {
	if p == nil {
		return "<nil platform>"
	}
	return fmt.Sprintf("%s (%s) %s, profile %s", p.Name(), p.Vendor(), p.Version(), p.Profile())
}

// DeviceInfo returns a readable summary of a device's identity and
// core capabilities.
func DeviceInfo(d *cl.Device) string {
	if d == nil {
		return "<nil device>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s), type %s\n", d.Name(), d.Vendor(), deviceTypeName(d.Type()))
	fmt.Fprintf(&b, "\tcompute units %d, max workgroup %d, clock %d MHz\n", d.MaxComputeUnits(), d.MaxWorkGroupSize(), d.MaxClockFrequency())
	fmt.Fprintf(&b, "\tglobal mem %d, local mem %d\n", d.GlobalMemSize(), d.LocalMemSize())
	return b.String()
}

func deviceTypeName(t cl.DeviceType) string {
	switch t {
	case cl.DeviceTypeCPU:
		return "CPU"
	case cl.DeviceTypeGPU:
		return "GPU"
	case cl.DeviceTypeAccelerator:
		return "Accelerator"
	case cl.DeviceTypeDefault:
		return "Default"
	}
	return fmt.Sprintf("DeviceType(%d)", int(t))
}

// Context owns one OpenCL context over the devices it was created
// with. Queues, programs, buffers, images, and user events are all
// created from a Context. The caller must call Release last, after
// the objects created from it.
type Context struct {
	// Devices are the devices the context spans.
	Devices []*cl.Device

	ctx *cl.Context
}

// NewContext creates a context on the first platform's devices of the
// given type. If none match, it falls back to CPU devices, then to
// any device, so a GPU request still runs on CPU-only hosts.
func NewContext(typ cl.DeviceType) (*Context, error) {
	ps, err := Platforms()
	if err != nil {
		return nil, err
	}
	if len(ps) == 0 {
		return nil, &PreconditionError{Op: "clgpu.NewContext", Reason: "no OpenCL platforms on this host"}
	}
	p := ps[0]
	var devs []*cl.Device
	for _, try := range []cl.DeviceType{typ, cl.DeviceTypeCPU, cl.DeviceTypeAll} {
		devs, err = p.GetDevices(try)
		if err == nil && len(devs) > 0 {
			break
		}
	}
	if len(devs) == 0 {
		return nil, &PreconditionError{Op: "clgpu.NewContext", Reason: "no OpenCL devices on platform " + p.Name()}
	}
	return NewContextOn(devs)
}

// NewContextOn creates a context spanning exactly the given devices.
func NewContextOn(devs []*cl.Device) (*Context, error) {
	if len(devs) == 0 {
		return nil, &PreconditionError{Op: "clgpu.NewContextOn", Reason: "no devices given"}
	}
	ctx, err := cl.CreateContext(devs)
	if err != nil {
		return nil, wrap("clgpu.NewContextOn", err)
	}
	if Debug {
		for _, d := range devs {
			slog.Debug("clgpu: context device", "info", DeviceInfo(d))
		}
	}
	return &Context{Devices: devs, ctx: ctx}, nil
}

// CL returns the underlying binding context.
func (cx *Context) CL() *cl.Context { return cx.ctx }

// Release releases the context. Objects created from it must be
// released first.
func (cx *Context) Release() {
	if cx.ctx == nil {
		return
	}
	cx.ctx.Release()
	cx.ctx = nil
}
