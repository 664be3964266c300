// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gpukit/gpukit/base/fsx"
)

// ShaderStage identifies one programmable pipeline stage.
type ShaderStage uint32

const (
	VertexShader         ShaderStage = gl.VERTEX_SHADER
	FragmentShader       ShaderStage = gl.FRAGMENT_SHADER
	GeometryShader       ShaderStage = gl.GEOMETRY_SHADER
	TessControlShader    ShaderStage = gl.TESS_CONTROL_SHADER
	TessEvaluationShader ShaderStage = gl.TESS_EVALUATION_SHADER
)

func (st ShaderStage) String() string {
	switch st {
	case VertexShader:
		return "Vertex"
	case FragmentShader:
		return "Fragment"
	case GeometryShader:
		return "Geometry"
	case TessControlShader:
		return "TessControl"
	case TessEvaluationShader:
		return "TessEvaluation"
	}
	return fmt.Sprintf("ShaderStage(0x%04x)", uint32(st))
}

func (st ShaderStage) valid() bool {
	switch st {
	case VertexShader, FragmentShader, GeometryShader, TessControlShader, TessEvaluationShader:
		return true
	}
	return false
}

// Shader is one compiled shader stage, ready to link into a Program.
// Linking consumes the stage object; Release is only needed for
// shaders that are never linked.
type Shader struct {
	// Stage is the pipeline stage the source was compiled for.
	Stage ShaderStage

	// Source is the GLSL source the shader was compiled from.
	Source string

	// Path is the source file for shaders from OpenShader, for
	// diagnostics.
	Path string

	handle uint32
}

// NewShader compiles GLSL source for the given stage. A compile
// failure returns a *CompileError carrying the full info log and the
// source.
func NewShader(stage ShaderStage, src string) (*Shader, error) {
	if !stage.valid() {
		return nil, &PreconditionError{Op: "glgpu.NewShader", Reason: fmt.Sprintf("unknown shader stage 0x%04x", uint32(stage))}
	}
	if src == "" {
		return nil, &PreconditionError{Op: "glgpu.NewShader", Reason: "source is empty"}
	}
	ClearErrors()
	sh := &Shader{Stage: stage, Source: src}
	sh.handle = gl.CreateShader(uint32(stage))
	if sh.handle == 0 {
		if err := CheckErr("glgpu.NewShader"); err != nil {
			return nil, err
		}
		return nil, &PreconditionError{Op: "glgpu.NewShader", Reason: "driver returned shader handle 0; is a GL context current?"}
	}
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(sh.handle, 1, csrc, nil)
	free()
	gl.CompileShader(sh.handle)
	var ok int32
	gl.GetShaderiv(sh.handle, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		clog := shaderLog(sh.handle)
		gl.DeleteShader(sh.handle)
		return nil, &CompileError{Stage: stage, Log: clog, Src: src}
	}
	if err := CheckErr("glgpu.NewShader"); err != nil {
		gl.DeleteShader(sh.handle)
		return nil, err
	}
	return sh, nil
}

// OpenShader compiles a shader stage from a source file.
func OpenShader(stage ShaderStage, filename string) (*Shader, error) {
	src, err := fsx.FileString(filename)
	if err != nil {
		return nil, err
	}
	sh, err := NewShader(stage, src)
	if err != nil {
		return nil, err
	}
	sh.Path = filename
	return sh, nil
}

// Handle returns the GL name of the shader, 0 after Release or after
// the shader has been linked into a program.
func (sh *Shader) Handle() uint32 { return sh.handle }

// Release deletes the shader object. Linking already consumes the
// stage, so this is only needed for shaders that never made it into a
// program. Safe to call more than once.
func (sh *Shader) Release() {
	if sh.handle == 0 {
		return
	}
	gl.DeleteShader(sh.handle)
	sh.handle = 0
}

// shaderLog fetches the info log for a shader handle.
func shaderLog(handle uint32) string {
	var size int32
	gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &size)
	if size <= 0 {
		return ""
	}
	str := make([]byte, size+1)
	var n int32
	gl.GetShaderInfoLog(handle, size, &n, &str[0])
	return string(str[:n])
}

// programLog fetches the info log for a program handle.
func programLog(handle uint32) string {
	var size int32
	gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &size)
	if size <= 0 {
		return ""
	}
	str := make([]byte, size+1)
	var n int32
	gl.GetProgramInfoLog(handle, size, &n, &str[0])
	return string(str[:n])
}
