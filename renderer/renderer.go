// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package renderer is a minimal windowing front-end for glgpu: one
// window, one current OpenGL context, and one event queue for the
// whole process. [Init] opens the window and makes the context
// current; the package-level functions then drive it. Everything here
// must run on the main OS thread, which package main locks with
// runtime.LockOSThread in an init function.
package renderer

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gpukit/gpukit/glgpu"
)

// Drawable renders frames under [Run].
type Drawable interface {
	// Draw renders one frame with the GL context current.
	Draw() error
}

// state is the process-wide window, context, and queue.
type state struct {
	window  *glfw.Window
	queue   Queue
	enabled EventTypes
}

var (
	// the is the current state; nil before Init and after Terminate.
	the *state

	// terminated is latched by Terminate; initializing again is not
	// supported because callback and queue state would be stale.
	terminated bool
)

// cur returns the current state, warning and returning nil when the
// renderer is not initialized.
func cur(op string) *state {
	if the == nil {
		slog.Warn(op + ": renderer is not initialized")
		return nil
	}
	return the
}

// Init opens the singleton window with an OpenGL core-profile context
// of the given version and makes the context current on the calling
// goroutine, which must be locked to the main OS thread. Events are
// not delivered until enabled with [EnableEvents]. Initializing again
// after [Terminate] is an error.
func Init(width, height int, title string, major, minor int) error {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = width, height
	cfg.Title = title
	cfg.GLMajor, cfg.GLMinor = major, minor
	return InitConfig(cfg)
}

// InitConfig is [Init] with full window settings.
func InitConfig(cfg *Config) error {
	const op = "renderer.Init"
	if cfg == nil {
		return &glgpu.PreconditionError{Op: op, Reason: "config is nil"}
	}
	if the != nil {
		return &glgpu.PreconditionError{Op: op, Reason: "already initialized"}
	}
	if terminated {
		return &glgpu.PreconditionError{Op: op, Reason: "cannot initialize again after Terminate"}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return &glgpu.PreconditionError{Op: op, Reason: fmt.Sprintf("window size %d x %d must be positive", cfg.Width, cfg.Height)}
	}
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True) // macOS requires this
	if cfg.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}
	if cfg.Samples > 0 {
		glfw.WindowHint(glfw.Samples, cfg.Samples)
	}
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}
	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("%s: %w", op, err)
	}
	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return fmt.Errorf("%s: %w", op, err)
	}
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	st := &state{window: win}
	st.queue.Init()
	the = st
	slog.Debug("renderer.Init", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height,
		"gl", fmt.Sprintf("%d.%d", cfg.GLMajor, cfg.GLMinor))
	return nil
}

// Terminate closes the window and shuts the windowing system down.
// It is safe to call when not initialized.
func Terminate() {
	if the == nil {
		return
	}
	the.removeCallbacks(AllEvents)
	the.window.Destroy()
	glfw.Terminate()
	the = nil
	terminated = true
}

// IsOpen reports whether the window is open and has not been asked to
// close.
func IsOpen() bool {
	return the != nil && !the.window.ShouldClose()
}

// Close asks the window to close: [IsOpen] reports false afterwards
// and [Run] returns. The window stays usable until [Terminate].
func Close() {
	if st := cur("renderer.Close"); st != nil {
		st.window.SetShouldClose(true)
	}
}

// Display presents the rendered frame by swapping the window buffers.
func Display() {
	if st := cur("renderer.Display"); st != nil {
		st.window.SwapBuffers()
	}
}

// Clear clears the current draw framebuffer to the given color and
// depth.
func Clear(r, g, b, a, depth float32) {
	if cur("renderer.Clear") == nil {
		return
	}
	gl.ClearColor(r, g, b, a)
	gl.ClearDepthf(depth)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Viewport sets the GL viewport in pixels.
func Viewport(x, y, w, h int32) {
	if cur("renderer.Viewport") == nil {
		return
	}
	gl.Viewport(x, y, w, h)
}

// GetViewport returns the current GL viewport as x, y, width, height.
func GetViewport() [4]int32 {
	var vp [4]int32
	if cur("renderer.GetViewport") == nil {
		return vp
	}
	gl.GetIntegerv(gl.VIEWPORT, &vp[0])
	return vp
}

// FramebufferSize returns the default framebuffer size in pixels,
// which differs from the window size on high-DPI displays.
func FramebufferSize() (width, height int) {
	st := cur("renderer.FramebufferSize")
	if st == nil {
		return 0, 0
	}
	return st.window.GetFramebufferSize()
}

// EnableEvents starts delivering the event types in mask to the
// queue. Types already enabled are unaffected.
func EnableEvents(mask EventTypes) {
	st := cur("renderer.EnableEvents")
	if st == nil {
		return
	}
	st.enabled |= mask
	st.installCallbacks(mask)
}

// DisableEvents stops delivering the event types in mask. Events
// already queued stay queued.
func DisableEvents(mask EventTypes) {
	st := cur("renderer.DisableEvents")
	if st == nil {
		return
	}
	st.enabled &^= mask
	st.removeCallbacks(mask)
}

// EnabledEvents returns the mask of event types being delivered.
func EnabledEvents() EventTypes {
	if the == nil {
		return 0
	}
	return the.enabled
}

// HasEvent reports whether the queue holds at least one event.
func HasEvent() bool {
	return the != nil && the.queue.Len() > 0
}

// PollEvents pumps the native event loop, translating enabled events
// into the queue. With a positive timeout it waits up to that many
// seconds for at least one native event; otherwise it returns
// immediately after pumping.
func PollEvents(timeout float64) {
	if cur("renderer.PollEvents") == nil {
		return
	}
	if timeout > 0 {
		glfw.WaitEventsTimeout(timeout)
	} else {
		glfw.PollEvents()
	}
}

// PushEvent adds an event to the queue directly, bypassing the native
// event loop.
func PushEvent(ev Event) {
	if st := cur("renderer.PushEvent"); st != nil {
		st.queue.Send(ev)
	}
}

// PopEvent removes and returns the oldest queued event, reporting
// false when the queue is empty.
func PopEvent() (Event, bool) {
	if the == nil {
		return Event{}, false
	}
	return the.queue.NextEvent()
}

// Window returns the underlying window for calls this package does
// not wrap, or nil when not initialized.
func Window() *glfw.Window {
	if the == nil {
		return nil
	}
	return the.window
}

// Run drives dr once per frame, presenting and pumping events in
// between, until the window closes or dr fails.
func Run(dr Drawable) error {
	const op = "renderer.Run"
	if the == nil {
		return &glgpu.PreconditionError{Op: op, Reason: "renderer is not initialized"}
	}
	if dr == nil {
		return &glgpu.PreconditionError{Op: op, Reason: "drawable is nil"}
	}
	for IsOpen() {
		if err := dr.Draw(); err != nil {
			return err
		}
		Display()
		PollEvents(0)
	}
	return nil
}
