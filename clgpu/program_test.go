// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clgpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKernelNames(t *testing.T) {
	src := `
__kernel void vec_add(__global const float* a, __global const float* b, __global float* dst) {
	int i = get_global_id(0);
	dst[i] = a[i] + b[i];
}

kernel void scale (__global float* dst, const float gain) {
	int i = get_global_id(0);
	dst[i] *= gain;
}

void helper(float x);
float mykernel_total;
`
	pg := &Program{src: src}
	assert.Equal(t, []string{"vec_add", "scale"}, pg.KernelNames())
	assert.Equal(t, 2, pg.NumKernels())

	pg = &Program{src: "void nothing_here(int x);"}
	assert.Empty(t, pg.KernelNames())
	assert.Equal(t, 0, pg.NumKernels())
}
