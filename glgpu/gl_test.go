// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"encoding/binary"
	"os"
	"runtime"
	"testing"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/mobile/exp/f32"
)

// newTestContext makes a hidden window with a current 4.1 core
// context for the calling test, locking it to the OS thread. These
// tests are skipped where no display or GL driver is available.
func newTestContext(t *testing.T) func() {
	t.Helper()
	if os.Getenv("GPUKIT_TEST_GL") == "" {
		t.Skip("need display/GPU on CI; set GPUKIT_TEST_GL=1 to run")
	}
	runtime.LockOSThread()
	require.NoError(t, glfw.Init())
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	win, err := glfw.CreateWindow(64, 64, "glgpu test", nil, nil)
	require.NoError(t, err)
	win.MakeContextCurrent()
	require.NoError(t, gl.Init())
	return func() {
		win.Destroy()
		glfw.Terminate()
		runtime.UnlockOSThread()
	}
}

func TestBuffer(t *testing.T) {
	done := newTestContext(t)
	defer done()

	bf, err := NewBuffer(gl.ARRAY_BUFFER, 64, gl.STATIC_DRAW)
	require.NoError(t, err)
	assert.Equal(t, 64, bf.Size())
	assert.Equal(t, 64, BufferSize(gl.ARRAY_BUFFER))
	assert.Equal(t, uint32(gl.STATIC_DRAW), BufferUsage(gl.ARRAY_BUFFER))
	assert.False(t, BufferMapped(gl.ARRAY_BUFFER))

	vals := []float32{1, 2, 3, 4}
	require.NoError(t, bf.SetFloat32s(vals, 16))
	got := make([]byte, 16)
	require.NoError(t, bf.ReadData(got, 16))
	assert.Equal(t, f32.Bytes(binary.LittleEndian, vals...), got)

	var pe *PreconditionError
	require.ErrorAs(t, bf.SetData(make([]byte, 128), 0), &pe)
	require.ErrorAs(t, bf.SetData(make([]byte, 8), -1), &pe)
	require.ErrorAs(t, bf.ReadData(make([]byte, 8), 60), &pe)

	_, err = NewBuffer(gl.ARRAY_BUFFER, 0, gl.STATIC_DRAW)
	require.ErrorAs(t, err, &pe)

	bf.Release()
	assert.Zero(t, bf.Handle())
	bf.Release()
	require.ErrorAs(t, bf.SetData([]byte{0}, 0), &pe)
}

func TestVertexArray(t *testing.T) {
	done := newTestContext(t)
	defer done()

	va, err := NewVertexArray()
	require.NoError(t, err)
	defer va.Release()

	bf, err := NewBuffer(gl.ARRAY_BUFFER, 9*4, gl.STATIC_DRAW)
	require.NoError(t, err)
	defer bf.Release()
	require.NoError(t, bf.SetFloat32s([]float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, 0))

	ok, err := va.AttribPointer(0, gl.FLOAT_VEC3, false, 0, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, va.EnableAttrib(0))
	assert.True(t, va.DisableAttrib(0))

	// negative locations are non-fatal
	assert.False(t, va.EnableAttrib(-1))
	assert.False(t, va.DisableAttrib(-1))
	assert.False(t, va.AttribDivisor(-1, 1))
	ok, err = va.AttribPointer(-1, gl.FLOAT_VEC3, false, 0, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	// wrong-kind routing is fatal
	var pe *PreconditionError
	_, err = va.AttribPointer(0, gl.FLOAT_MAT4, false, 0, 0)
	require.ErrorAs(t, err, &pe)
	_, err = va.AttribPointer(0, gl.SAMPLER_2D, false, 0, 0)
	require.ErrorAs(t, err, &pe)
	_, err = va.AttribPointerI(0, gl.FLOAT_VEC3, 0, 0)
	require.ErrorAs(t, err, &pe)
	_, err = va.AttribPointerD(0, gl.INT_VEC2, 0, 0)
	require.ErrorAs(t, err, &pe)

	idx, err := NewBuffer(gl.ELEMENT_ARRAY_BUFFER, 6, gl.STATIC_DRAW)
	require.NoError(t, err)
	defer idx.Release()
	va.SetIndexBuffer(idx)
	assert.Equal(t, idx, va.IndexBuffer())

	ok, err = AttribValue(1, gl.FLOAT_VEC4, []float32{1, 0, 0, 1})
	require.NoError(t, err)
	assert.True(t, ok)
	_, err = AttribValue(1, gl.FLOAT_VEC4, []float32{1, 0})
	require.ErrorAs(t, err, &pe)
	_, err = AttribValueI(1, gl.FLOAT_VEC2, []int32{1, 0})
	require.ErrorAs(t, err, &pe)
}

func TestTexture(t *testing.T) {
	done := newTestContext(t)
	defer done()

	pix := make([]byte, 4*4*4)
	for i := range pix {
		pix[i] = byte(i)
	}
	tx, err := NewTexture2D(gl.RGBA8, 4, 4, pix)
	require.NoError(t, err)
	defer tx.Release()
	assert.Equal(t, Format(gl.RGBA8), tx.InternalFormat())
	assert.Equal(t, int32(4), tx.Width())
	assert.Equal(t, int32(4), tx.Height())
	assert.Equal(t, uint32(gl.TEXTURE_2D), tx.Target())

	tx.SetMipmap(true)
	assert.True(t, tx.Mipmap())
	tx.SetMipmap(false)
	tx.SetFilter(gl.LINEAR, gl.LINEAR)
	tx.SetWrap(gl.CLAMP_TO_EDGE, gl.CLAMP_TO_EDGE, gl.CLAMP_TO_EDGE)
	tx.SetLevels(0, 0)
	tx.ActiveBind(3)
	require.NoError(t, CheckErr("TestTexture"))

	var pe *PreconditionError
	_, err = NewTexture2D(gl.TEXTURE_2D, 4, 4, nil)
	require.ErrorAs(t, err, &pe)
	_, err = NewTexture2D(gl.RGBA8, 0, 4, nil)
	require.ErrorAs(t, err, &pe)
	_, err = NewTexture2D(gl.RGBA8, 4, 4, make([]byte, 3))
	require.ErrorAs(t, err, &pe)

	tx1, err := NewTexture1D(gl.R8, 16, nil)
	require.NoError(t, err)
	tx1.Release()
	tx3, err := NewTexture3D(gl.RGBA8, 4, 4, 4, nil)
	require.NoError(t, err)
	tx3.Release()

	bf, err := NewBuffer(gl.TEXTURE_BUFFER, 64, gl.STATIC_DRAW)
	require.NoError(t, err)
	defer bf.Release()
	tb, err := NewTextureBuffer(gl.RGBA32F, bf)
	require.NoError(t, err)
	defer tb.Release()
	assert.Equal(t, int32(4), tb.Width()) // 64 bytes / 16 per texel
	tb.SetMipmap(true)                    // no-op for buffer textures
	assert.False(t, tb.Mipmap())

	_, err = NewTextureBuffer(gl.DEPTH_COMPONENT24, bf)
	require.ErrorAs(t, err, &pe)
	_, err = NewTextureBuffer(gl.RGBA32F, nil)
	require.ErrorAs(t, err, &pe)
}

func TestRenderbuffer(t *testing.T) {
	done := newTestContext(t)
	defer done()

	rb, err := NewRenderbuffer(gl.DEPTH_COMPONENT24, 32, 32)
	require.NoError(t, err)
	assert.Equal(t, int32(32), rb.Width())
	assert.Equal(t, Format(gl.DEPTH_COMPONENT24), rb.InternalFormat())
	rb.Release()
	assert.Zero(t, rb.Handle())

	var pe *PreconditionError
	_, err = NewRenderbuffer(gl.RGB8, 32, 32) // not renderable in core
	require.ErrorAs(t, err, &pe)
	_, err = NewRenderbuffer(gl.RGBA8, 0, 32)
	require.ErrorAs(t, err, &pe)
}

func TestFramebuffer(t *testing.T) {
	done := newTestContext(t)
	defer done()

	fb, err := NewFramebuffer(&FramebufferConfig{
		Width: 64, Height: 64,
		NColors: 2, ColorFormat: gl.RGBA8, ColorKind: TextureAttachment,
		DepthFormat: gl.DEPTH_COMPONENT24, DepthKind: RenderbufferAttachment,
		FilterMin: gl.LINEAR, FilterMag: gl.LINEAR,
	})
	require.NoError(t, err)
	require.Len(t, fb.Colors, 2)
	require.NotNil(t, fb.DepthRB)
	assert.Nil(t, fb.Depth)

	fb.Bind()
	gl.ClearColor(1, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	var px [4]byte
	gl.ReadBuffer(gl.COLOR_ATTACHMENT0)
	gl.ReadPixels(32, 32, 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&px[0]))
	assert.Equal(t, byte(255), px[0])
	assert.Equal(t, byte(0), px[1])
	assert.Equal(t, byte(255), px[3])
	fb.Unbind()
	require.NoError(t, CheckErr("TestFramebuffer"))

	fb2, err := NewFramebuffer(&FramebufferConfig{
		Width: 16, Height: 16,
		NColors: 1, ColorFormat: gl.RGBA8, ColorKind: RenderbufferAttachment,
	})
	require.NoError(t, err)
	require.Len(t, fb2.ColorRBs, 1)
	fb2.Release()

	dfb, err := NewDepthFramebuffer(128, 128, gl.DEPTH_COMPONENT32F)
	require.NoError(t, err)
	require.NotNil(t, dfb.Depth)
	assert.Empty(t, dfb.Colors)
	dfb.Release()

	var pe *PreconditionError
	_, err = NewFramebuffer(nil)
	require.ErrorAs(t, err, &pe)
	_, err = NewFramebuffer(&FramebufferConfig{Width: 16, Height: 16})
	require.ErrorAs(t, err, &pe)
	_, err = NewFramebuffer(&FramebufferConfig{Width: 16, Height: 16, NColors: 1, ColorFormat: gl.DEPTH_COMPONENT24})
	require.ErrorAs(t, err, &pe)
	_, err = NewFramebuffer(&FramebufferConfig{Width: 16, Height: 16, NColors: 1, ColorFormat: gl.RGBA8, DepthFormat: gl.RGBA8})
	require.ErrorAs(t, err, &pe)

	fb.Release()
	assert.Nil(t, fb.Colors)
	assert.Nil(t, fb.DepthRB)
	assert.Zero(t, fb.Handle())
	fb.Release()
}

const testVert = `#version 410 core
in vec3 pos;
in vec3 color;
uniform mat4 mvp;
uniform float gain[4];
out vec3 vColor;
void main() {
	gl_Position = mvp * vec4(pos, 1.0);
	vColor = color * gain[0];
}
`

const testFrag = `#version 410 core
in vec3 vColor;
uniform vec4 tint;
uniform sampler2D tex;
out vec4 fragColor;
void main() {
	fragColor = vec4(vColor, 1.0) * tint + texture(tex, vec2(0.5));
}
`

func TestShaderProgram(t *testing.T) {
	done := newTestContext(t)
	defer done()

	vs, err := NewShader(VertexShader, testVert)
	require.NoError(t, err)
	fs, err := NewShader(FragmentShader, testFrag)
	require.NoError(t, err)
	pr, err := NewProgram(vs, fs)
	require.NoError(t, err)
	defer pr.Release()

	// linking consumed the stage objects
	assert.Zero(t, vs.Handle())
	assert.Zero(t, fs.Handle())

	mvp := pr.Uniforms["mvp"]
	require.NotNil(t, mvp)
	assert.Equal(t, GLSLType(gl.FLOAT_MAT4), mvp.Type)
	assert.Equal(t, int32(1), mvp.Size)

	gain := pr.Uniforms["gain"] // recorded without the [0] suffix
	require.NotNil(t, gain)
	assert.Equal(t, GLSLType(gl.FLOAT), gain.Type)
	assert.Equal(t, int32(4), gain.Size)

	tint := pr.Uniforms["tint"]
	require.NotNil(t, tint)
	assert.Equal(t, GLSLType(gl.FLOAT_VEC4), tint.Type)

	tex := pr.Uniforms["tex"]
	require.NotNil(t, tex)
	assert.True(t, tex.Type.IsSampler())

	pos := pr.Attributes["pos"]
	require.NotNil(t, pos)
	assert.Equal(t, GLSLType(gl.FLOAT_VEC3), pos.Type)

	assert.GreaterOrEqual(t, pr.AttribLocation("pos"), int32(0))
	assert.GreaterOrEqual(t, pr.UniformLocation("mvp"), int32(0))
	assert.Equal(t, int32(-1), pr.UniformLocation("nope"))
	assert.Equal(t, int32(-1), pr.AttribLocation("nope"))

	ok, err := pr.SetMat4("mvp", mgl32.Ident4())
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = pr.SetFloat32s("tint", gl.FLOAT_VEC4, []float32{1, 1, 1, 1})
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = pr.SetFloat32s("gain", gl.FLOAT, []float32{1, 2, 3, 4})
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = pr.SetSampler("tex", 0)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, CheckErr("TestShaderProgram"))

	// missing names are non-fatal
	ok, err = pr.SetFloat32s("missing", gl.FLOAT, []float32{1})
	require.NoError(t, err)
	assert.False(t, ok)

	// type mismatches are fatal
	var ute *UniformTypeError
	_, err = pr.SetFloat32s("tint", gl.FLOAT_VEC3, []float32{1, 1, 1})
	require.ErrorAs(t, err, &ute)
	_, err = pr.SetInt32s("tint", gl.INT, []int32{1})
	require.ErrorAs(t, err, &ute)

	// a matrix through the vector form is fatal
	m := mgl32.Ident4()
	_, err = pr.SetUniform("mvp", gl.FLOAT_MAT4, unsafe.Pointer(&m[0]))
	require.ErrorAs(t, err, &ute)

	// and a vector through the matrix form
	v4 := []float32{1, 1, 1, 1}
	_, err = pr.SetUniformMatrixLoc(tint.Location, gl.FLOAT_VEC4, 1, false, unsafe.Pointer(&v4[0]))
	require.ErrorAs(t, err, &ute)

	info := pr.Info()
	assert.Contains(t, info, "mvp")
	assert.Contains(t, info, "pos")

	pr.Release()
	assert.Zero(t, pr.Handle())
}

func TestShaderErrors(t *testing.T) {
	done := newTestContext(t)
	defer done()

	var pe *PreconditionError
	_, err := NewShader(VertexShader, "")
	require.ErrorAs(t, err, &pe)
	_, err = NewShader(ShaderStage(0), "void main() {}")
	require.ErrorAs(t, err, &pe)
	_, err = NewProgram()
	require.ErrorAs(t, err, &pe)

	var ce *CompileError
	_, err = NewShader(FragmentShader, "#version 410 core\nvoid main() { bogus }\n")
	require.ErrorAs(t, err, &ce)
	assert.NotEmpty(t, ce.Log)
	assert.Equal(t, FragmentShader, ce.Stage)

	// compiles but cannot link: foo is declared, never defined
	lv, err := NewShader(VertexShader, "#version 410 core\nvoid foo();\nvoid main() { foo(); gl_Position = vec4(0.0); }\n")
	require.NoError(t, err)
	lf, err := NewShader(FragmentShader, "#version 410 core\nout vec4 o;\nvoid main() { o = vec4(1.0); }\n")
	require.NoError(t, err)
	_, err = NewProgram(lv, lf)
	var le *LinkError
	require.ErrorAs(t, err, &le)

	// a failed link leaves the stages alive
	assert.NotZero(t, lv.Handle())
	lv.Release()
	lf.Release()
}

func TestDriverError(t *testing.T) {
	done := newTestContext(t)
	defer done()

	ClearErrors()
	gl.Enable(0) // not a capability
	err := CheckErr("glgpu.TestDriverError")
	var de *DriverError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "INVALID_ENUM", de.Name)
	assert.NotZero(t, de.Code)

	// the queue was drained
	assert.NoError(t, CheckErr("glgpu.TestDriverError"))
}

func TestRenderSmoke(t *testing.T) {
	done := newTestContext(t)
	defer done()

	fb, err := NewFramebuffer(&FramebufferConfig{
		Width: 64, Height: 64,
		NColors: 1, ColorFormat: gl.RGBA8, ColorKind: TextureAttachment,
	})
	require.NoError(t, err)
	defer fb.Release()

	vs, err := NewShader(VertexShader, "#version 410 core\nin vec2 pos;\nvoid main() { gl_Position = vec4(pos, 0.0, 1.0); }\n")
	require.NoError(t, err)
	fs, err := NewShader(FragmentShader, "#version 410 core\nout vec4 o;\nvoid main() { o = vec4(0.0, 1.0, 0.0, 1.0); }\n")
	require.NoError(t, err)
	pr, err := NewProgram(vs, fs)
	require.NoError(t, err)
	defer pr.Release()

	va, err := NewVertexArray()
	require.NoError(t, err)
	defer va.Release()

	// one triangle covering the whole viewport
	tri := []float32{-1, -1, 3, -1, -1, 3}
	bf, err := NewBuffer(gl.ARRAY_BUFFER, len(tri)*4, gl.STATIC_DRAW)
	require.NoError(t, err)
	defer bf.Release()
	require.NoError(t, bf.SetFloat32s(tri, 0))

	loc := pr.AttribLocation("pos")
	ok, err := va.AttribPointer(loc, gl.FLOAT_VEC2, false, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, va.EnableAttrib(loc))

	fb.Bind()
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	pr.Use()
	gl.DrawArrays(gl.TRIANGLES, 0, 3)

	var px [4]byte
	gl.ReadBuffer(gl.COLOR_ATTACHMENT0)
	gl.ReadPixels(32, 32, 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&px[0]))
	assert.Equal(t, byte(0), px[0])
	assert.Equal(t, byte(255), px[1])
	fb.Unbind()
	require.NoError(t, CheckErr("TestRenderSmoke"))
}
