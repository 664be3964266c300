// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLSLType is a shader variable type token as reported by active
// variable enumeration (e.g., gl.FLOAT_VEC3). The registry describes
// each supported token; queries on unknown tokens return neutral
// values, never an error.
type GLSLType uint32

// ScalarKind classifies the scalar element of a shader type, selecting
// the uniform and attribute entry points that preserve its values.
type ScalarKind int32

const (
	KindNone ScalarKind = iota
	KindFloat
	KindDouble
	KindInt
	KindUint
)

// Bytes returns the width of one scalar of this kind.
func (sk ScalarKind) Bytes() int {
	switch sk {
	case KindFloat, KindInt, KindUint:
		return 4
	case KindDouble:
		return 8
	}
	return 0
}

func (sk ScalarKind) String() string {
	switch sk {
	case KindFloat:
		return "Float"
	case KindDouble:
		return "Double"
	case KindInt:
		return "Int"
	case KindUint:
		return "Uint"
	}
	return "None"
}

// TypeInfo describes one registry entry for a shader type.
type TypeInfo struct {
	// Name is the GLSL spelling of the type.
	Name string

	// Length is the element count: N for vectors, columns times rows
	// for matrices, 1 for scalars and samplers.
	Length int

	// Scalar is the element kind. Booleans and samplers are set through
	// the integer path and so carry KindInt.
	Scalar ScalarKind

	// Cols and Rows are nonzero only for matrix types; a matCxR has
	// C columns of R rows.
	Cols, Rows int

	// Sampler is set for all sampler types, which hold texture unit
	// indices and are excluded from vertex attribute use.
	Sampler bool
}

// GLSLTypes is the shader type registry.
var GLSLTypes = map[GLSLType]TypeInfo{
	gl.FLOAT:      {Name: "float", Length: 1, Scalar: KindFloat},
	gl.FLOAT_VEC2: {Name: "vec2", Length: 2, Scalar: KindFloat},
	gl.FLOAT_VEC3: {Name: "vec3", Length: 3, Scalar: KindFloat},
	gl.FLOAT_VEC4: {Name: "vec4", Length: 4, Scalar: KindFloat},

	gl.DOUBLE:      {Name: "double", Length: 1, Scalar: KindDouble},
	gl.DOUBLE_VEC2: {Name: "dvec2", Length: 2, Scalar: KindDouble},
	gl.DOUBLE_VEC3: {Name: "dvec3", Length: 3, Scalar: KindDouble},
	gl.DOUBLE_VEC4: {Name: "dvec4", Length: 4, Scalar: KindDouble},

	gl.INT:      {Name: "int", Length: 1, Scalar: KindInt},
	gl.INT_VEC2: {Name: "ivec2", Length: 2, Scalar: KindInt},
	gl.INT_VEC3: {Name: "ivec3", Length: 3, Scalar: KindInt},
	gl.INT_VEC4: {Name: "ivec4", Length: 4, Scalar: KindInt},

	gl.UNSIGNED_INT:      {Name: "uint", Length: 1, Scalar: KindUint},
	gl.UNSIGNED_INT_VEC2: {Name: "uvec2", Length: 2, Scalar: KindUint},
	gl.UNSIGNED_INT_VEC3: {Name: "uvec3", Length: 3, Scalar: KindUint},
	gl.UNSIGNED_INT_VEC4: {Name: "uvec4", Length: 4, Scalar: KindUint},

	gl.BOOL:      {Name: "bool", Length: 1, Scalar: KindInt},
	gl.BOOL_VEC2: {Name: "bvec2", Length: 2, Scalar: KindInt},
	gl.BOOL_VEC3: {Name: "bvec3", Length: 3, Scalar: KindInt},
	gl.BOOL_VEC4: {Name: "bvec4", Length: 4, Scalar: KindInt},

	gl.FLOAT_MAT2:   {Name: "mat2", Length: 4, Scalar: KindFloat, Cols: 2, Rows: 2},
	gl.FLOAT_MAT3:   {Name: "mat3", Length: 9, Scalar: KindFloat, Cols: 3, Rows: 3},
	gl.FLOAT_MAT4:   {Name: "mat4", Length: 16, Scalar: KindFloat, Cols: 4, Rows: 4},
	gl.FLOAT_MAT2x3: {Name: "mat2x3", Length: 6, Scalar: KindFloat, Cols: 2, Rows: 3},
	gl.FLOAT_MAT2x4: {Name: "mat2x4", Length: 8, Scalar: KindFloat, Cols: 2, Rows: 4},
	gl.FLOAT_MAT3x2: {Name: "mat3x2", Length: 6, Scalar: KindFloat, Cols: 3, Rows: 2},
	gl.FLOAT_MAT3x4: {Name: "mat3x4", Length: 12, Scalar: KindFloat, Cols: 3, Rows: 4},
	gl.FLOAT_MAT4x2: {Name: "mat4x2", Length: 8, Scalar: KindFloat, Cols: 4, Rows: 2},
	gl.FLOAT_MAT4x3: {Name: "mat4x3", Length: 12, Scalar: KindFloat, Cols: 4, Rows: 3},

	gl.DOUBLE_MAT2:   {Name: "dmat2", Length: 4, Scalar: KindDouble, Cols: 2, Rows: 2},
	gl.DOUBLE_MAT3:   {Name: "dmat3", Length: 9, Scalar: KindDouble, Cols: 3, Rows: 3},
	gl.DOUBLE_MAT4:   {Name: "dmat4", Length: 16, Scalar: KindDouble, Cols: 4, Rows: 4},
	gl.DOUBLE_MAT2x3: {Name: "dmat2x3", Length: 6, Scalar: KindDouble, Cols: 2, Rows: 3},
	gl.DOUBLE_MAT2x4: {Name: "dmat2x4", Length: 8, Scalar: KindDouble, Cols: 2, Rows: 4},
	gl.DOUBLE_MAT3x2: {Name: "dmat3x2", Length: 6, Scalar: KindDouble, Cols: 3, Rows: 2},
	gl.DOUBLE_MAT3x4: {Name: "dmat3x4", Length: 12, Scalar: KindDouble, Cols: 3, Rows: 4},
	gl.DOUBLE_MAT4x2: {Name: "dmat4x2", Length: 8, Scalar: KindDouble, Cols: 4, Rows: 2},
	gl.DOUBLE_MAT4x3: {Name: "dmat4x3", Length: 12, Scalar: KindDouble, Cols: 4, Rows: 3},

	gl.SAMPLER_1D:                   {Name: "sampler1D", Length: 1, Scalar: KindInt, Sampler: true},
	gl.SAMPLER_2D:                   {Name: "sampler2D", Length: 1, Scalar: KindInt, Sampler: true},
	gl.SAMPLER_3D:                   {Name: "sampler3D", Length: 1, Scalar: KindInt, Sampler: true},
	gl.SAMPLER_CUBE:                 {Name: "samplerCube", Length: 1, Scalar: KindInt, Sampler: true},
	gl.SAMPLER_1D_SHADOW:            {Name: "sampler1DShadow", Length: 1, Scalar: KindInt, Sampler: true},
	gl.SAMPLER_2D_SHADOW:            {Name: "sampler2DShadow", Length: 1, Scalar: KindInt, Sampler: true},
	gl.SAMPLER_1D_ARRAY:             {Name: "sampler1DArray", Length: 1, Scalar: KindInt, Sampler: true},
	gl.SAMPLER_2D_ARRAY:             {Name: "sampler2DArray", Length: 1, Scalar: KindInt, Sampler: true},
	gl.SAMPLER_1D_ARRAY_SHADOW:      {Name: "sampler1DArrayShadow", Length: 1, Scalar: KindInt, Sampler: true},
	gl.SAMPLER_2D_ARRAY_SHADOW:      {Name: "sampler2DArrayShadow", Length: 1, Scalar: KindInt, Sampler: true},
	gl.SAMPLER_2D_MULTISAMPLE:       {Name: "sampler2DMS", Length: 1, Scalar: KindInt, Sampler: true},
	gl.SAMPLER_2D_MULTISAMPLE_ARRAY: {Name: "sampler2DMSArray", Length: 1, Scalar: KindInt, Sampler: true},
	gl.SAMPLER_CUBE_SHADOW:          {Name: "samplerCubeShadow", Length: 1, Scalar: KindInt, Sampler: true},
	gl.SAMPLER_BUFFER:               {Name: "samplerBuffer", Length: 1, Scalar: KindInt, Sampler: true},
	gl.SAMPLER_2D_RECT:              {Name: "sampler2DRect", Length: 1, Scalar: KindInt, Sampler: true},
	gl.SAMPLER_2D_RECT_SHADOW:       {Name: "sampler2DRectShadow", Length: 1, Scalar: KindInt, Sampler: true},

	gl.INT_SAMPLER_1D:                   {Name: "isampler1D", Length: 1, Scalar: KindInt, Sampler: true},
	gl.INT_SAMPLER_2D:                   {Name: "isampler2D", Length: 1, Scalar: KindInt, Sampler: true},
	gl.INT_SAMPLER_3D:                   {Name: "isampler3D", Length: 1, Scalar: KindInt, Sampler: true},
	gl.INT_SAMPLER_CUBE:                 {Name: "isamplerCube", Length: 1, Scalar: KindInt, Sampler: true},
	gl.INT_SAMPLER_1D_ARRAY:             {Name: "isampler1DArray", Length: 1, Scalar: KindInt, Sampler: true},
	gl.INT_SAMPLER_2D_ARRAY:             {Name: "isampler2DArray", Length: 1, Scalar: KindInt, Sampler: true},
	gl.INT_SAMPLER_2D_MULTISAMPLE:       {Name: "isampler2DMS", Length: 1, Scalar: KindInt, Sampler: true},
	gl.INT_SAMPLER_2D_MULTISAMPLE_ARRAY: {Name: "isampler2DMSArray", Length: 1, Scalar: KindInt, Sampler: true},
	gl.INT_SAMPLER_BUFFER:               {Name: "isamplerBuffer", Length: 1, Scalar: KindInt, Sampler: true},
	gl.INT_SAMPLER_2D_RECT:              {Name: "isampler2DRect", Length: 1, Scalar: KindInt, Sampler: true},

	gl.UNSIGNED_INT_SAMPLER_1D:                   {Name: "usampler1D", Length: 1, Scalar: KindInt, Sampler: true},
	gl.UNSIGNED_INT_SAMPLER_2D:                   {Name: "usampler2D", Length: 1, Scalar: KindInt, Sampler: true},
	gl.UNSIGNED_INT_SAMPLER_3D:                   {Name: "usampler3D", Length: 1, Scalar: KindInt, Sampler: true},
	gl.UNSIGNED_INT_SAMPLER_CUBE:                 {Name: "usamplerCube", Length: 1, Scalar: KindInt, Sampler: true},
	gl.UNSIGNED_INT_SAMPLER_1D_ARRAY:             {Name: "usampler1DArray", Length: 1, Scalar: KindInt, Sampler: true},
	gl.UNSIGNED_INT_SAMPLER_2D_ARRAY:             {Name: "usampler2DArray", Length: 1, Scalar: KindInt, Sampler: true},
	gl.UNSIGNED_INT_SAMPLER_2D_MULTISAMPLE:       {Name: "usampler2DMS", Length: 1, Scalar: KindInt, Sampler: true},
	gl.UNSIGNED_INT_SAMPLER_2D_MULTISAMPLE_ARRAY: {Name: "usampler2DMSArray", Length: 1, Scalar: KindInt, Sampler: true},
	gl.UNSIGNED_INT_SAMPLER_BUFFER:               {Name: "usamplerBuffer", Length: 1, Scalar: KindInt, Sampler: true},
	gl.UNSIGNED_INT_SAMPLER_2D_RECT:              {Name: "usampler2DRect", Length: 1, Scalar: KindInt, Sampler: true},
}

// Valid reports whether the token is in the registry.
func (t GLSLType) Valid() bool {
	_, ok := GLSLTypes[t]
	return ok
}

// Length returns the element count of the type, or 0 if unknown.
func (t GLSLType) Length() int {
	return GLSLTypes[t].Length
}

// ScalarBytes returns the width of one scalar element, or 0 if unknown.
func (t GLSLType) ScalarBytes() int {
	return GLSLTypes[t].Scalar.Bytes()
}

// Bytes returns the total byte size of one value of the type:
// element count times scalar width. 0 if unknown.
func (t GLSLType) Bytes() int {
	ti, ok := GLSLTypes[t]
	if !ok {
		return 0
	}
	return ti.Length * ti.Scalar.Bytes()
}

// Kind returns the scalar element kind, or KindNone if unknown.
func (t GLSLType) Kind() ScalarKind {
	return GLSLTypes[t].Scalar
}

// IsFloat reports whether values are set through the float32 path.
func (t GLSLType) IsFloat() bool {
	return GLSLTypes[t].Scalar == KindFloat
}

// IsDouble reports whether values are set through the float64 path.
func (t GLSLType) IsDouble() bool {
	return GLSLTypes[t].Scalar == KindDouble
}

// IsInt reports whether values are set through the int32 path,
// which includes booleans and samplers.
func (t GLSLType) IsInt() bool {
	return GLSLTypes[t].Scalar == KindInt
}

// IsUint reports whether values are set through the uint32 path.
func (t GLSLType) IsUint() bool {
	return GLSLTypes[t].Scalar == KindUint
}

// IsMatrix reports whether the type is a matrix, which must be set
// through the matrix entry points with an explicit transpose flag.
func (t GLSLType) IsMatrix() bool {
	return GLSLTypes[t].Cols > 0
}

// IsSampler reports whether the type is a sampler. Samplers hold
// texture unit indices and cannot source vertex attributes.
func (t GLSLType) IsSampler() bool {
	return GLSLTypes[t].Sampler
}

func (t GLSLType) String() string {
	if ti, ok := GLSLTypes[t]; ok {
		return ti.Name
	}
	return fmt.Sprintf("GLSLType(0x%04x)", uint32(t))
}
