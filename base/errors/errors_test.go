// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	err := New("test error")
	assert.Equal(t, err, Log(err))
	assert.NoError(t, Log(nil))

	v := Log1(42, nil)
	assert.Equal(t, 42, v)
	v = Log1(42, err)
	assert.Equal(t, 42, v)

	a, b := Log2("x", 3, nil)
	assert.Equal(t, "x", a)
	assert.Equal(t, 3, b)
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("boom")) })
	assert.Equal(t, 7, Must1(7, nil))
	assert.Panics(t, func() { Must1(7, New("boom")) })
}

func TestIfPanic(t *testing.T) {
	ran := false
	assert.NotPanics(t, func() { IfPanic(nil, func() { ran = true }) })
	assert.False(t, ran)
	assert.Panics(t, func() { IfPanic(New("boom"), func() { ran = true }) })
	assert.True(t, ran)
}

func TestJoinIs(t *testing.T) {
	e1 := New("first")
	e2 := New("second")
	j := Join(e1, e2)
	assert.True(t, Is(j, e1))
	assert.True(t, Is(j, e2))

	w := fmt.Errorf("wrap: %w", e1)
	assert.Equal(t, e1, Unwrap(w))
}

func TestCallerInfo(t *testing.T) {
	ci := CallerInfo(1)
	assert.True(t, strings.Contains(ci, "errors_test.go"))
}
