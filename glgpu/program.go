// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Variable is one active uniform or attribute of a linked program, as
// enumerated at link time.
type Variable struct {
	// Name is the variable name. Array variables are recorded under
	// their base name, without the [0] suffix the driver reports.
	Name string

	// Location is the variable's location.
	Location int32

	// Size is the array length, 1 for non-arrays.
	Size int32

	// Type is the variable's shader type token.
	Type GLSLType
}

func (v *Variable) String() string {
	return fmt.Sprintf("%s: %v location %d size %d", v.Name, v.Type, v.Location, v.Size)
}

// Program is one linked shader program together with its active
// uniform and attribute tables. Uniform values are set by name
// against the tables, which dispatch to the type-correct driver call.
// The caller owns the program and must call Release.
type Program struct {
	// Name is an optional label for diagnostics.
	Name string

	// Uniforms is the active uniform table, keyed by name.
	Uniforms map[string]*Variable

	// Attributes is the active attribute table, keyed by name.
	Attributes map[string]*Variable

	handle uint32
}

// NewProgram links the given compiled stages into a program. On
// success the stage objects are detached and deleted (linking
// consumes them), the active variable tables are filled in, and the
// program is made current. A link failure returns a *LinkError
// carrying the full info log and leaves the stages alive.
func NewProgram(shaders ...*Shader) (*Program, error) {
	if len(shaders) == 0 {
		return nil, &PreconditionError{Op: "glgpu.NewProgram", Reason: "no shader stages given"}
	}
	for _, sh := range shaders {
		if sh == nil || sh.handle == 0 {
			return nil, &PreconditionError{Op: "glgpu.NewProgram", Reason: "nil or released shader stage"}
		}
	}
	ClearErrors()
	pr := &Program{
		Uniforms:   make(map[string]*Variable),
		Attributes: make(map[string]*Variable),
	}
	pr.handle = gl.CreateProgram()
	if pr.handle == 0 {
		if err := CheckErr("glgpu.NewProgram"); err != nil {
			return nil, err
		}
		return nil, &PreconditionError{Op: "glgpu.NewProgram", Reason: "driver returned program handle 0; is a GL context current?"}
	}
	for _, sh := range shaders {
		gl.AttachShader(pr.handle, sh.handle)
	}
	gl.LinkProgram(pr.handle)
	var ok int32
	gl.GetProgramiv(pr.handle, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		llog := programLog(pr.handle)
		for _, sh := range shaders {
			gl.DetachShader(pr.handle, sh.handle)
		}
		gl.DeleteProgram(pr.handle)
		return nil, &LinkError{Log: llog}
	}
	for _, sh := range shaders {
		gl.DetachShader(pr.handle, sh.handle)
		sh.Release()
	}
	pr.enumUniforms()
	pr.enumAttributes()
	gl.UseProgram(pr.handle)
	if err := CheckErr("glgpu.NewProgram"); err != nil {
		gl.DeleteProgram(pr.handle)
		return nil, err
	}
	return pr, nil
}

func (pr *Program) enumUniforms() {
	var n, maxLen int32
	gl.GetProgramiv(pr.handle, gl.ACTIVE_UNIFORMS, &n)
	gl.GetProgramiv(pr.handle, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)
	if n == 0 || maxLen == 0 {
		return
	}
	buf := make([]byte, maxLen+1)
	for i := int32(0); i < n; i++ {
		var length, size int32
		var xtype uint32
		gl.GetActiveUniform(pr.handle, uint32(i), maxLen, &length, &size, &xtype, &buf[0])
		name := strings.TrimSuffix(string(buf[:length]), "[0]")
		loc := gl.GetUniformLocation(pr.handle, gl.Str(name+"\x00"))
		pr.Uniforms[name] = &Variable{Name: name, Location: loc, Size: size, Type: GLSLType(xtype)}
	}
}

func (pr *Program) enumAttributes() {
	var n, maxLen int32
	gl.GetProgramiv(pr.handle, gl.ACTIVE_ATTRIBUTES, &n)
	gl.GetProgramiv(pr.handle, gl.ACTIVE_ATTRIBUTE_MAX_LENGTH, &maxLen)
	if n == 0 || maxLen == 0 {
		return
	}
	buf := make([]byte, maxLen+1)
	for i := int32(0); i < n; i++ {
		var length, size int32
		var xtype uint32
		gl.GetActiveAttrib(pr.handle, uint32(i), maxLen, &length, &size, &xtype, &buf[0])
		name := strings.TrimSuffix(string(buf[:length]), "[0]")
		loc := gl.GetAttribLocation(pr.handle, gl.Str(name+"\x00"))
		pr.Attributes[name] = &Variable{Name: name, Location: loc, Size: size, Type: GLSLType(xtype)}
	}
}

// Handle returns the GL name of the program, 0 after Release.
func (pr *Program) Handle() uint32 { return pr.handle }

// Use makes the program current.
func (pr *Program) Use() {
	gl.UseProgram(pr.handle)
}

// UniformLocation returns the location of the named uniform, or -1
// with a logged warning if the name is not active.
func (pr *Program) UniformLocation(name string) int32 {
	if v, ok := pr.Uniforms[name]; ok {
		return v.Location
	}
	loc := gl.GetUniformLocation(pr.handle, gl.Str(name+"\x00"))
	if loc < 0 {
		slog.Warn("glgpu.Program.UniformLocation: name is not an active uniform", "name", name)
	}
	return loc
}

// AttribLocation returns the location of the named attribute, or -1
// with a logged warning if the name is not active.
func (pr *Program) AttribLocation(name string) int32 {
	if v, ok := pr.Attributes[name]; ok {
		return v.Location
	}
	loc := gl.GetAttribLocation(pr.handle, gl.Str(name+"\x00"))
	if loc < 0 {
		slog.Warn("glgpu.Program.AttribLocation: name is not an active attribute", "name", name)
	}
	return loc
}

// SetUniform sets the named uniform from data, dispatching on typ to
// the matching driver call; array uniforms take their recorded length
// from the table. A missing name returns false without error; a typ
// that is a matrix, is unknown, or does not match the variable's
// recorded type returns a *UniformTypeError. The program is made
// current first.
func (pr *Program) SetUniform(name string, typ GLSLType, data unsafe.Pointer) (bool, error) {
	v, ok := pr.Uniforms[name]
	if !ok {
		slog.Warn("glgpu.Program.SetUniform: name is not an active uniform", "name", name)
		return false, nil
	}
	if typ != v.Type {
		return false, &UniformTypeError{Name: name, Type: typ}
	}
	count := v.Size
	if count < 1 {
		count = 1
	}
	return pr.SetUniformLoc(v.Location, typ, count, data)
}

// SetUniformMatrix sets the named matrix uniform from data in
// column-major order, or row-major with transpose set. Matrix types
// must go through this form; vector and scalar types through
// SetUniform.
func (pr *Program) SetUniformMatrix(name string, typ GLSLType, transpose bool, data unsafe.Pointer) (bool, error) {
	v, ok := pr.Uniforms[name]
	if !ok {
		slog.Warn("glgpu.Program.SetUniformMatrix: name is not an active uniform", "name", name)
		return false, nil
	}
	if typ != v.Type {
		return false, &UniformTypeError{Name: name, Type: typ}
	}
	count := v.Size
	if count < 1 {
		count = 1
	}
	return pr.SetUniformMatrixLoc(v.Location, typ, count, transpose, data)
}

// SetUniformLoc sets count elements of the uniform at loc from data,
// dispatching on typ. A negative loc is reported and ignored,
// returning false.
func (pr *Program) SetUniformLoc(loc int32, typ GLSLType, count int32, data unsafe.Pointer) (bool, error) {
	ti, ok := GLSLTypes[typ]
	if !ok || ti.Cols > 0 {
		return false, &UniformTypeError{Type: typ}
	}
	if loc < 0 {
		slog.Warn("glgpu.Program.SetUniformLoc: negative uniform location; name is not active")
		return false, nil
	}
	pr.Use()
	switch ti.Scalar {
	case KindFloat:
		switch ti.Length {
		case 1:
			gl.Uniform1fv(loc, count, (*float32)(data))
		case 2:
			gl.Uniform2fv(loc, count, (*float32)(data))
		case 3:
			gl.Uniform3fv(loc, count, (*float32)(data))
		case 4:
			gl.Uniform4fv(loc, count, (*float32)(data))
		}
	case KindDouble:
		switch ti.Length {
		case 1:
			gl.Uniform1dv(loc, count, (*float64)(data))
		case 2:
			gl.Uniform2dv(loc, count, (*float64)(data))
		case 3:
			gl.Uniform3dv(loc, count, (*float64)(data))
		case 4:
			gl.Uniform4dv(loc, count, (*float64)(data))
		}
	case KindInt:
		switch ti.Length {
		case 1:
			gl.Uniform1iv(loc, count, (*int32)(data))
		case 2:
			gl.Uniform2iv(loc, count, (*int32)(data))
		case 3:
			gl.Uniform3iv(loc, count, (*int32)(data))
		case 4:
			gl.Uniform4iv(loc, count, (*int32)(data))
		}
	case KindUint:
		switch ti.Length {
		case 1:
			gl.Uniform1uiv(loc, count, (*uint32)(data))
		case 2:
			gl.Uniform2uiv(loc, count, (*uint32)(data))
		case 3:
			gl.Uniform3uiv(loc, count, (*uint32)(data))
		case 4:
			gl.Uniform4uiv(loc, count, (*uint32)(data))
		}
	}
	return true, nil
}

// SetUniformMatrixLoc sets count matrices of the uniform at loc from
// data, dispatching on typ.
func (pr *Program) SetUniformMatrixLoc(loc int32, typ GLSLType, count int32, transpose bool, data unsafe.Pointer) (bool, error) {
	if ti, ok := GLSLTypes[typ]; !ok || ti.Cols == 0 {
		return false, &UniformTypeError{Type: typ}
	}
	if loc < 0 {
		slog.Warn("glgpu.Program.SetUniformMatrixLoc: negative uniform location; name is not active")
		return false, nil
	}
	pr.Use()
	switch uint32(typ) {
	case gl.FLOAT_MAT2:
		gl.UniformMatrix2fv(loc, count, transpose, (*float32)(data))
	case gl.FLOAT_MAT3:
		gl.UniformMatrix3fv(loc, count, transpose, (*float32)(data))
	case gl.FLOAT_MAT4:
		gl.UniformMatrix4fv(loc, count, transpose, (*float32)(data))
	case gl.FLOAT_MAT2x3:
		gl.UniformMatrix2x3fv(loc, count, transpose, (*float32)(data))
	case gl.FLOAT_MAT2x4:
		gl.UniformMatrix2x4fv(loc, count, transpose, (*float32)(data))
	case gl.FLOAT_MAT3x2:
		gl.UniformMatrix3x2fv(loc, count, transpose, (*float32)(data))
	case gl.FLOAT_MAT3x4:
		gl.UniformMatrix3x4fv(loc, count, transpose, (*float32)(data))
	case gl.FLOAT_MAT4x2:
		gl.UniformMatrix4x2fv(loc, count, transpose, (*float32)(data))
	case gl.FLOAT_MAT4x3:
		gl.UniformMatrix4x3fv(loc, count, transpose, (*float32)(data))
	case gl.DOUBLE_MAT2:
		gl.UniformMatrix2dv(loc, count, transpose, (*float64)(data))
	case gl.DOUBLE_MAT3:
		gl.UniformMatrix3dv(loc, count, transpose, (*float64)(data))
	case gl.DOUBLE_MAT4:
		gl.UniformMatrix4dv(loc, count, transpose, (*float64)(data))
	case gl.DOUBLE_MAT2x3:
		gl.UniformMatrix2x3dv(loc, count, transpose, (*float64)(data))
	case gl.DOUBLE_MAT2x4:
		gl.UniformMatrix2x4dv(loc, count, transpose, (*float64)(data))
	case gl.DOUBLE_MAT3x2:
		gl.UniformMatrix3x2dv(loc, count, transpose, (*float64)(data))
	case gl.DOUBLE_MAT3x4:
		gl.UniformMatrix3x4dv(loc, count, transpose, (*float64)(data))
	case gl.DOUBLE_MAT4x2:
		gl.UniformMatrix4x2dv(loc, count, transpose, (*float64)(data))
	case gl.DOUBLE_MAT4x3:
		gl.UniformMatrix4x3dv(loc, count, transpose, (*float64)(data))
	}
	return true, nil
}

// SetFloat32s sets the named float uniform from vals; len(vals) must
// be a whole multiple of the element count of typ, with the multiple
// as the array count.
func (pr *Program) SetFloat32s(name string, typ GLSLType, vals []float32) (bool, error) {
	ti, ok := GLSLTypes[typ]
	if !ok || ti.Scalar != KindFloat || ti.Cols > 0 {
		return false, &UniformTypeError{Name: name, Type: typ}
	}
	if len(vals) == 0 || len(vals)%ti.Length != 0 {
		return false, &PreconditionError{Op: "glgpu.Program.SetFloat32s", Reason: fmt.Sprintf("%d values do not fill a whole number of %v", len(vals), typ)}
	}
	v, ok := pr.Uniforms[name]
	if !ok {
		slog.Warn("glgpu.Program.SetFloat32s: name is not an active uniform", "name", name)
		return false, nil
	}
	if typ != v.Type {
		return false, &UniformTypeError{Name: name, Type: typ}
	}
	return pr.SetUniformLoc(v.Location, typ, int32(len(vals)/ti.Length), unsafe.Pointer(&vals[0]))
}

// SetInt32s sets the named int or bool uniform from vals.
func (pr *Program) SetInt32s(name string, typ GLSLType, vals []int32) (bool, error) {
	ti, ok := GLSLTypes[typ]
	if !ok || ti.Scalar != KindInt || ti.Cols > 0 {
		return false, &UniformTypeError{Name: name, Type: typ}
	}
	if len(vals) == 0 || len(vals)%ti.Length != 0 {
		return false, &PreconditionError{Op: "glgpu.Program.SetInt32s", Reason: fmt.Sprintf("%d values do not fill a whole number of %v", len(vals), typ)}
	}
	v, ok := pr.Uniforms[name]
	if !ok {
		slog.Warn("glgpu.Program.SetInt32s: name is not an active uniform", "name", name)
		return false, nil
	}
	if typ != v.Type {
		return false, &UniformTypeError{Name: name, Type: typ}
	}
	return pr.SetUniformLoc(v.Location, typ, int32(len(vals)/ti.Length), unsafe.Pointer(&vals[0]))
}

// SetUint32s sets the named uint uniform from vals.
func (pr *Program) SetUint32s(name string, typ GLSLType, vals []uint32) (bool, error) {
	ti, ok := GLSLTypes[typ]
	if !ok || ti.Scalar != KindUint || ti.Cols > 0 {
		return false, &UniformTypeError{Name: name, Type: typ}
	}
	if len(vals) == 0 || len(vals)%ti.Length != 0 {
		return false, &PreconditionError{Op: "glgpu.Program.SetUint32s", Reason: fmt.Sprintf("%d values do not fill a whole number of %v", len(vals), typ)}
	}
	v, ok := pr.Uniforms[name]
	if !ok {
		slog.Warn("glgpu.Program.SetUint32s: name is not an active uniform", "name", name)
		return false, nil
	}
	if typ != v.Type {
		return false, &UniformTypeError{Name: name, Type: typ}
	}
	return pr.SetUniformLoc(v.Location, typ, int32(len(vals)/ti.Length), unsafe.Pointer(&vals[0]))
}

// SetFloat64s sets the named double uniform from vals.
func (pr *Program) SetFloat64s(name string, typ GLSLType, vals []float64) (bool, error) {
	ti, ok := GLSLTypes[typ]
	if !ok || ti.Scalar != KindDouble || ti.Cols > 0 {
		return false, &UniformTypeError{Name: name, Type: typ}
	}
	if len(vals) == 0 || len(vals)%ti.Length != 0 {
		return false, &PreconditionError{Op: "glgpu.Program.SetFloat64s", Reason: fmt.Sprintf("%d values do not fill a whole number of %v", len(vals), typ)}
	}
	v, ok := pr.Uniforms[name]
	if !ok {
		slog.Warn("glgpu.Program.SetFloat64s: name is not an active uniform", "name", name)
		return false, nil
	}
	if typ != v.Type {
		return false, &UniformTypeError{Name: name, Type: typ}
	}
	return pr.SetUniformLoc(v.Location, typ, int32(len(vals)/ti.Length), unsafe.Pointer(&vals[0]))
}

// SetMat4 sets the named mat4 uniform from a column-major matrix.
func (pr *Program) SetMat4(name string, m mgl32.Mat4) (bool, error) {
	return pr.SetUniformMatrix(name, gl.FLOAT_MAT4, false, unsafe.Pointer(&m[0]))
}

// SetSampler points the named sampler uniform at a texture unit,
// matching a later Texture.ActiveBind on the same unit.
func (pr *Program) SetSampler(name string, unit int32) (bool, error) {
	v, ok := pr.Uniforms[name]
	if !ok {
		slog.Warn("glgpu.Program.SetSampler: name is not an active uniform", "name", name)
		return false, nil
	}
	if !v.Type.IsSampler() {
		return false, &UniformTypeError{Name: name, Type: v.Type}
	}
	return pr.SetUniformLoc(v.Location, v.Type, 1, unsafe.Pointer(&unit))
}

// Info returns a readable dump of the program's active variable
// tables.
func (pr *Program) Info() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Program %d %s: %d uniforms, %d attributes\n", pr.handle, pr.Name, len(pr.Uniforms), len(pr.Attributes))
	for _, nm := range slices.Sorted(maps.Keys(pr.Uniforms)) {
		fmt.Fprintf(&b, "\tuniform   %v\n", pr.Uniforms[nm])
	}
	for _, nm := range slices.Sorted(maps.Keys(pr.Attributes)) {
		fmt.Fprintf(&b, "\tattribute %v\n", pr.Attributes[nm])
	}
	return b.String()
}

// Release detaches and deletes any still-attached stages and deletes
// the program. Safe to call more than once.
func (pr *Program) Release() {
	if pr.handle == 0 {
		return
	}
	var n int32
	gl.GetProgramiv(pr.handle, gl.ATTACHED_SHADERS, &n)
	if n > 0 {
		hs := make([]uint32, n)
		var got int32
		gl.GetAttachedShaders(pr.handle, n, &got, &hs[0])
		for _, h := range hs[:got] {
			gl.DetachShader(pr.handle, h)
			gl.DeleteShader(h)
		}
	}
	gl.DeleteProgram(pr.handle)
	pr.handle = 0
}
