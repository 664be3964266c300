// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package renderer

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventTypes(t *testing.T) {
	m := Key | CursorPos
	assert.True(t, m.Has(Key))
	assert.True(t, m.Has(CursorPos))
	assert.False(t, m.Has(MouseButton))
	assert.True(t, m.Has(AllEvents))
	assert.True(t, AllEvents.Has(WindowMaximize))

	assert.Equal(t, "Key|CursorPos", m.String())
	assert.Equal(t, "None", EventTypes(0).String())
	assert.Equal(t, "MouseScroll", MouseScroll.String())
	assert.Equal(t, "Key|EventTypes(0x40000000)", (Key | 1<<30).String())

	m |= MouseButton
	m &^= Key
	assert.Equal(t, CursorPos|MouseButton, m)
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "FramebufferResize 640x480",
		Event{Type: FramebufferResize, Width: 640, Height: 480}.String())
	assert.Equal(t, "CursorPos (1.5, 2)",
		Event{Type: CursorPos, X: 1.5, Y: 2}.String())
	assert.Equal(t, "WindowClose", Event{Type: WindowClose}.String())
	assert.Equal(t, "CursorEnter true", Event{Type: CursorEnter, On: true}.String())
}

func TestQueue(t *testing.T) {
	var q Queue
	q.Init()

	_, ok := q.NextEvent()
	assert.False(t, ok)
	assert.Equal(t, uint64(0), q.Len())

	for i := 0; i < 100; i++ {
		q.Send(Event{Type: Key, Scancode: i})
	}
	assert.Equal(t, uint64(100), q.Len())

	for i := 0; i < 100; i++ {
		ev, ok := q.NextEvent()
		require.True(t, ok)
		assert.Equal(t, i, ev.Scancode)
	}
	_, ok = q.NextEvent()
	assert.False(t, ok)
	assert.Equal(t, uint64(0), q.Len())
}

func TestQueueConcurrent(t *testing.T) {
	var q Queue
	q.Init()

	const n = 10000
	done := make(chan struct{})
	go func() {
		for i := 0; i < n; i++ {
			q.Send(Event{Type: CursorPos, Scancode: i})
		}
		close(done)
	}()

	got := 0
	for got < n {
		ev, ok := q.NextEvent()
		if !ok {
			runtime.Gosched()
			continue
		}
		require.Equal(t, got, ev.Scancode)
		got++
	}
	<-done
	_, ok := q.NextEvent()
	assert.False(t, ok)
}
