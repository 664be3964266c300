// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clgpu

import (
	"time"

	"github.com/jgillich/go-opencl/cl"
)

// Event tracks completion of one enqueued command, or of a
// user-signaled condition for events from [Context.NewUserEvent].
// Enqueue methods return one and accept a wait list of them.
type Event struct {
	ev *cl.Event
}

// NewUserEvent returns an event that completes only when
// [Event.Complete] is called on it. Enqueues waiting on it hold until
// then.
func (cx *Context) NewUserEvent() (*Event, error) {
	ev, err := cx.ctx.CreateUserEvent()
	if err != nil {
		return nil, wrap("clgpu.Context.NewUserEvent", err)
	}
	return &Event{ev: ev}, nil
}

// Complete marks a user event complete, releasing any commands
// waiting on it.
func (ev *Event) Complete() error {
	return wrap("clgpu.Event.Complete", ev.ev.SetUserEventStatus(int(cl.CommmandExecStatusComplete)))
}

// CommandStart returns the device time counter in nanoseconds at
// which the event's command started executing. The queue must have
// been created with profiling enabled.
func (ev *Event) CommandStart() (int64, error) {
	t, err := ev.ev.GetEventProfilingInfo(cl.ProfilingInfoCommandStart)
	return t, wrap("clgpu.Event.CommandStart", err)
}

// CommandEnd returns the device time counter in nanoseconds at which
// the event's command finished executing. The queue must have been
// created with profiling enabled.
func (ev *Event) CommandEnd() (int64, error) {
	t, err := ev.ev.GetEventProfilingInfo(cl.ProfilingInfoCommandEnd)
	return t, wrap("clgpu.Event.CommandEnd", err)
}

// Duration returns the command's device execution time,
// CommandEnd - CommandStart.
func (ev *Event) Duration() (time.Duration, error) {
	start, err := ev.CommandStart()
	if err != nil {
		return 0, err
	}
	end, err := ev.CommandEnd()
	if err != nil {
		return 0, err
	}
	return time.Duration(end - start), nil
}

// CL returns the underlying binding event.
func (ev *Event) CL() *cl.Event { return ev.ev }

// Release releases the event.
func (ev *Event) Release() {
	if ev.ev == nil {
		return
	}
	ev.ev.Release()
	ev.ev = nil
}

// WaitForEvents blocks until all given events complete.
func WaitForEvents(evs ...*Event) error {
	ces := clEvents(evs)
	if ces == nil {
		return nil
	}
	return wrap("clgpu.WaitForEvents", cl.WaitForEvents(ces))
}

// clEvents converts a wait list for the binding, returning nil for an
// empty one.
func clEvents(evs []*Event) []*cl.Event {
	var ces []*cl.Event
	for _, ev := range evs {
		if ev == nil || ev.ev == nil {
			continue
		}
		ces = append(ces, ev.ev)
	}
	return ces
}
