// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu wraps the OpenGL 4.1 core API with lifecycle-safe
// object types: buffers, vertex arrays, textures, renderbuffers, a
// framebuffer composer, and shader programs with active-variable
// tables driving type-checked uniform dispatch. Format and shader
// type registries centralize the facts about sized image formats and
// GLSL types that every layer validates against.
//
// All calls require a current GL context on the calling goroutine;
// the renderer package provides one. Factory preconditions and driver
// failures are returned as typed errors, while lookups of names that
// are simply not active report false and log a warning, so optional
// shader variables do not turn into failures.
package glgpu
