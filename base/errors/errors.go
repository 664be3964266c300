// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error handling helpers,
// extending the standard library errors package with logging
// and test variants of the common if err != nil patterns.
package errors

import (
	"errors"
	"fmt"
	"runtime"
)

// New returns an error that formats as the given text.
// It is a re-export of [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Join returns an error that wraps the given errors.
// It is a re-export of [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Is reports whether any error in err's tree matches target.
// It is a re-export of [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// It is a re-export of [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err.
// It is a re-export of [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// CallerInfo returns string information about the caller at the
// given stack level: 1 = the caller of CallerInfo, 2 = its caller, etc.
// The string is of the form Func@File:Line, suitable for inclusion
// in error messages that need to identify their origin.
func CallerInfo(level int) string {
	pc, file, line, ok := runtime.Caller(level)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return fmt.Sprintf("%s:%d", file, line)
	}
	return fmt.Sprintf("%s@%s:%d", fn.Name(), file, line)
}
