// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package renderer

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// installCallbacks sets the native callbacks for the event types in
// mask, each translating into a queued [Event]. Delivery is gated
// entirely by which callbacks are installed.
func (st *state) installCallbacks(mask EventTypes) {
	w := st.window
	if mask.Has(FramebufferResize) {
		w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
			st.queue.Send(Event{Type: FramebufferResize, Width: width, Height: height})
		})
	}
	if mask.Has(WindowPos) {
		w.SetPosCallback(func(_ *glfw.Window, x, y int) {
			st.queue.Send(Event{Type: WindowPos, X: float64(x), Y: float64(y)})
		})
	}
	if mask.Has(WindowSize) {
		w.SetSizeCallback(func(_ *glfw.Window, width, height int) {
			st.queue.Send(Event{Type: WindowSize, Width: width, Height: height})
		})
	}
	if mask.Has(WindowClose) {
		w.SetCloseCallback(func(_ *glfw.Window) {
			st.queue.Send(Event{Type: WindowClose})
		})
	}
	if mask.Has(WindowMaximize) {
		w.SetMaximizeCallback(func(_ *glfw.Window, maximized bool) {
			st.queue.Send(Event{Type: WindowMaximize, On: maximized})
		})
	}
	if mask.Has(Key) {
		w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
			st.queue.Send(Event{Type: Key, Key: key, Scancode: scancode, Action: action, Mods: mods})
		})
	}
	if mask.Has(CursorEnter) {
		w.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
			st.queue.Send(Event{Type: CursorEnter, On: entered})
		})
	}
	if mask.Has(CursorPos) {
		w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
			st.queue.Send(Event{Type: CursorPos, X: x, Y: y})
		})
	}
	if mask.Has(MouseButton) {
		w.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
			st.queue.Send(Event{Type: MouseButton, Button: button, Action: action, Mods: mods})
		})
	}
	if mask.Has(MouseScroll) {
		w.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
			st.queue.Send(Event{Type: MouseScroll, X: xoff, Y: yoff})
		})
	}
}

// removeCallbacks clears the native callbacks for the event types in
// mask.
func (st *state) removeCallbacks(mask EventTypes) {
	w := st.window
	if mask.Has(FramebufferResize) {
		w.SetFramebufferSizeCallback(nil)
	}
	if mask.Has(WindowPos) {
		w.SetPosCallback(nil)
	}
	if mask.Has(WindowSize) {
		w.SetSizeCallback(nil)
	}
	if mask.Has(WindowClose) {
		w.SetCloseCallback(nil)
	}
	if mask.Has(WindowMaximize) {
		w.SetMaximizeCallback(nil)
	}
	if mask.Has(Key) {
		w.SetKeyCallback(nil)
	}
	if mask.Has(CursorEnter) {
		w.SetCursorEnterCallback(nil)
	}
	if mask.Has(CursorPos) {
		w.SetCursorPosCallback(nil)
	}
	if mask.Has(MouseButton) {
		w.SetMouseButtonCallback(nil)
	}
	if mask.Has(MouseScroll) {
		w.SetScrollCallback(nil)
	}
}
