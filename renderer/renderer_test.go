// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package renderer

import (
	"errors"
	"os"
	"runtime"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpukit/gpukit/glgpu"
)

// TestRenderer walks the whole singleton lifecycle in order, because
// Terminate latches: once terminated, no test can initialize again.
func TestRenderer(t *testing.T) {
	if os.Getenv("GPUKIT_TEST_GL") == "" {
		t.Skip("need display/GPU on CI; set GPUKIT_TEST_GL=1 to run")
	}
	runtime.LockOSThread()

	// before Init everything reports empty
	assert.False(t, IsOpen())
	assert.False(t, HasEvent())
	assert.Nil(t, Window())
	assert.Equal(t, EventTypes(0), EnabledEvents())
	_, ok := PopEvent()
	assert.False(t, ok)

	cfg := DefaultConfig()
	cfg.Title = "renderer test"
	cfg.Width, cfg.Height = 320, 240
	cfg.VSync = false
	cfg.Hidden = true
	require.NoError(t, InitConfig(cfg))
	defer Terminate()

	var pe *glgpu.PreconditionError
	err := Init(100, 100, "again", 4, 1)
	require.Error(t, err)
	assert.True(t, errors.As(err, &pe))

	assert.True(t, IsOpen())
	assert.NotNil(t, Window())
	w, h := FramebufferSize()
	assert.NotZero(t, w)
	assert.NotZero(t, h)

	Viewport(0, 0, int32(w), int32(h))
	assert.Equal(t, [4]int32{0, 0, int32(w), int32(h)}, GetViewport())

	Clear(0.2, 0.3, 0.4, 1, 1)
	Display()
	PollEvents(0)

	// enable/disable mask bookkeeping
	EnableEvents(Key | CursorPos)
	assert.Equal(t, Key|CursorPos, EnabledEvents())
	DisableEvents(CursorPos)
	assert.Equal(t, Key, EnabledEvents())
	EnableEvents(AllEvents)
	assert.Equal(t, AllEvents, EnabledEvents())
	DisableEvents(AllEvents)
	assert.Equal(t, EventTypes(0), EnabledEvents())

	// user events flow through the queue in order
	assert.False(t, HasEvent())
	PushEvent(Event{Type: Key, Key: glfw.KeyA, Action: glfw.Press})
	PushEvent(Event{Type: WindowClose})
	assert.True(t, HasEvent())
	ev, ok := PopEvent()
	require.True(t, ok)
	assert.Equal(t, Key, ev.Type)
	assert.Equal(t, glfw.KeyA, ev.Key)
	ev, ok = PopEvent()
	require.True(t, ok)
	assert.Equal(t, WindowClose, ev.Type)
	_, ok = PopEvent()
	assert.False(t, ok)

	Close()
	assert.False(t, IsOpen())

	Terminate()
	assert.False(t, IsOpen())

	// initializing again after Terminate is refused
	err = Init(100, 100, "again", 4, 1)
	require.Error(t, err)
	assert.True(t, errors.As(err, &pe))

	// a second Terminate is a no-op
	Terminate()
}
