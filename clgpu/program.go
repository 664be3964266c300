// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clgpu

import (
	"errors"
	"strings"

	"github.com/jgillich/go-opencl/cl"

	"github.com/gpukit/gpukit/base/fsx"
	"github.com/gpukit/gpukit/base/stringsx"
)

// Program is one OpenCL program created from source. Build compiles
// it for one or more of the context's devices before kernels can be
// created from it.
type Program struct {
	src  string
	path string
	devs []*cl.Device
	all  []*cl.Device
	prog *cl.Program
}

// NewProgram creates a program from OpenCL C source. Call Build
// before creating kernels.
func (cx *Context) NewProgram(src string) (*Program, error) {
	if src == "" {
		return nil, &PreconditionError{Op: "clgpu.Context.NewProgram", Reason: "source is empty"}
	}
	prog, err := cx.ctx.CreateProgramWithSource([]string{src})
	if err != nil {
		return nil, wrap("clgpu.Context.NewProgram", err)
	}
	return &Program{src: src, all: cx.Devices, prog: prog}, nil
}

// OpenProgram creates a program from an OpenCL C source file.
func (cx *Context) OpenProgram(filename string) (*Program, error) {
	src, err := fsx.FileString(filename)
	if err != nil {
		return nil, err
	}
	pg, err := cx.NewProgram(src)
	if err != nil {
		return nil, err
	}
	pg.path = filename
	return pg, nil
}

// Build compiles the program with the given options for the listed
// devices, or for all of the context's devices when none are given.
// A failed build returns a *BuildError carrying the device build log.
func (pg *Program) Build(options string, devs ...*cl.Device) error {
	if len(devs) == 0 {
		devs = pg.all
	}
	if err := pg.prog.BuildProgram(devs, options); err != nil {
		be := &BuildError{Options: options, Err: err}
		var blog cl.BuildError
		if errors.As(err, &blog) {
			be.Log = string(blog)
		}
		return be
	}
	pg.devs = devs
	return nil
}

// Source returns the source the program was created from.
func (pg *Program) Source() string { return pg.src }

// Path returns the source file for programs from OpenProgram, or "".
func (pg *Program) Path() string { return pg.path }

// Devices returns the devices the program was last built for, nil
// before a successful Build.
func (pg *Program) Devices() []*cl.Device { return pg.devs }

// KernelNames returns the kernel function names declared in the
// program source, in declaration order, parsed from the source text.
func (pg *Program) KernelNames() []string {
	var names []string
	src := pg.src
	for {
		i := strings.Index(src, "kernel")
		if i < 0 {
			break
		}
		// must be the start of a word: "kernel" or "__kernel"
		word := i == 0 || !identChar(src[i-1])
		if !word && i >= 2 && src[i-2:i] == "__" && (i == 2 || !identChar(src[i-3])) {
			word = true
		}
		src = src[i+len("kernel"):]
		if !word {
			continue
		}
		// the declaration reads: kernel void name(
		fields := stringsx.FieldsAny(before(src, "("), " \t\r\n")
		if len(fields) == 2 && fields[0] == "void" {
			names = append(names, fields[1])
		}
	}
	return names
}

// NumKernels returns the number of kernel functions declared in the
// program source.
func (pg *Program) NumKernels() int { return len(pg.KernelNames()) }

// before returns s up to the first occurrence of sep, or all of s.
func before(s, sep string) string {
	if i := strings.Index(s, sep); i >= 0 {
		return s[:i]
	}
	return s
}

func identChar(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// NewKernel creates the named kernel from the built program.
func (pg *Program) NewKernel(name string) (*Kernel, error) {
	if name == "" {
		return nil, &PreconditionError{Op: "clgpu.Program.NewKernel", Reason: "kernel name is empty"}
	}
	kern, err := pg.prog.CreateKernel(name)
	if err != nil {
		return nil, wrap("clgpu.Program.NewKernel "+name, err)
	}
	return &Kernel{Name: name, kern: kern}, nil
}

// CL returns the underlying binding program.
func (pg *Program) CL() *cl.Program { return pg.prog }

// Release releases the program. Kernels created from it must be
// released first.
func (pg *Program) Release() {
	if pg.prog == nil {
		return
	}
	pg.prog.Release()
	pg.prog = nil
}
