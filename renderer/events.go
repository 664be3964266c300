// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package renderer

import (
	"fmt"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// EventTypes is a bit set of window and input event types. A single
// bit identifies one event kind; unions of bits select which kinds
// [EnableEvents] delivers.
type EventTypes uint32

const (
	// FramebufferResize reports a new framebuffer size in pixels.
	FramebufferResize EventTypes = 1 << iota

	// WindowPos reports a new window position in screen coordinates.
	WindowPos

	// WindowSize reports a new window size in screen coordinates.
	WindowSize

	// WindowClose reports that the user requested the window close.
	WindowClose

	// WindowMaximize reports maximize and restore transitions.
	WindowMaximize

	// Key reports a key press, release, or repeat.
	Key

	// CursorEnter reports the cursor entering or leaving the window.
	CursorEnter

	// CursorPos reports cursor movement in screen coordinates.
	CursorPos

	// MouseButton reports a mouse button press or release.
	MouseButton

	// MouseScroll reports scroll wheel or trackpad offsets.
	MouseScroll
)

// AllEvents selects every event type.
const AllEvents = FramebufferResize | WindowPos | WindowSize | WindowClose |
	WindowMaximize | Key | CursorEnter | CursorPos | MouseButton | MouseScroll

var eventTypeNames = []struct {
	typ  EventTypes
	name string
}{
	{FramebufferResize, "FramebufferResize"},
	{WindowPos, "WindowPos"},
	{WindowSize, "WindowSize"},
	{WindowClose, "WindowClose"},
	{WindowMaximize, "WindowMaximize"},
	{Key, "Key"},
	{CursorEnter, "CursorEnter"},
	{CursorPos, "CursorPos"},
	{MouseButton, "MouseButton"},
	{MouseScroll, "MouseScroll"},
}

// Has reports whether any type in m is set.
func (t EventTypes) Has(m EventTypes) bool { return t&m != 0 }

func (t EventTypes) String() string {
	if t == 0 {
		return "None"
	}
	var names []string
	for _, tn := range eventTypeNames {
		if t.Has(tn.typ) {
			names = append(names, tn.name)
		}
	}
	if rest := t &^ AllEvents; rest != 0 {
		names = append(names, fmt.Sprintf("EventTypes(0x%x)", uint32(rest)))
	}
	return strings.Join(names, "|")
}

// Event is one window or input event. Type is a single event type
// bit and discriminates which payload fields are meaningful.
type Event struct {
	// Type is the event type bit.
	Type EventTypes

	// X, Y are the cursor position for CursorPos, the scroll offsets
	// for MouseScroll, and the window position for WindowPos.
	X, Y float64

	// Width, Height are the new extents for FramebufferResize and
	// WindowSize.
	Width, Height int

	// Key and Scancode identify the key for Key events.
	Key      glfw.Key
	Scancode int

	// Button is the button for MouseButton events.
	Button glfw.MouseButton

	// Action is the press/release/repeat state for Key and
	// MouseButton events.
	Action glfw.Action

	// Mods is the modifier-key state for Key and MouseButton events.
	Mods glfw.ModifierKey

	// On reports entered for CursorEnter and maximized for
	// WindowMaximize.
	On bool
}

func (ev Event) String() string {
	switch ev.Type {
	case FramebufferResize, WindowSize:
		return fmt.Sprintf("%v %dx%d", ev.Type, ev.Width, ev.Height)
	case WindowPos:
		return fmt.Sprintf("%v (%g, %g)", ev.Type, ev.X, ev.Y)
	case WindowMaximize, CursorEnter:
		return fmt.Sprintf("%v %v", ev.Type, ev.On)
	case Key:
		return fmt.Sprintf("%v key=%d scan=%d action=%d mods=%d", ev.Type, ev.Key, ev.Scancode, ev.Action, ev.Mods)
	case MouseButton:
		return fmt.Sprintf("%v button=%d action=%d mods=%d", ev.Type, ev.Button, ev.Action, ev.Mods)
	case CursorPos, MouseScroll:
		return fmt.Sprintf("%v (%g, %g)", ev.Type, ev.X, ev.Y)
	default:
		return ev.Type.String()
	}
}
