// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clgpu

import "fmt"

// Debug enables extra logging of device and build details.
var Debug = false

// PreconditionError is a fatal error for arguments that violate an
// operation's preconditions, detected before any driver call.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return e.Op + ": " + e.Reason
}

// BuildError is a fatal error for a failed program build. The
// underlying binding error carries the device build log; Options
// records the build options used.
type BuildError struct {
	Options string
	Log     string
	Err     error
}

func (e *BuildError) Error() string {
	s := "clgpu.Program.Build: build failed"
	if e.Options != "" {
		s += " (options " + e.Options + ")"
	}
	if e.Log != "" {
		s += ":\n" + e.Log
	}
	return s
}

func (e *BuildError) Unwrap() error { return e.Err }

// wrap annotates a binding error with the failing operation.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
