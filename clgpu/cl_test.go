// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clgpu

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jgillich/go-opencl/cl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpukit/gpukit/base/randx"
)

// newTestContext makes a context on the preferred device type with a
// profiling-enabled queue. CL tests only run when requested, they
// need a working OpenCL driver.
func newTestContext(t *testing.T) (*Context, *Queue) {
	t.Helper()
	if os.Getenv("GPUKIT_TEST_CL") == "" {
		t.Skip("need OpenCL driver on CI; set GPUKIT_TEST_CL=1 to run")
	}
	cx, err := NewContext(cl.DeviceTypeGPU)
	require.NoError(t, err)
	qu, err := cx.NewQueue(cx.Devices[0], true)
	require.NoError(t, err)
	t.Cleanup(func() {
		qu.Release()
		cx.Release()
	})
	return cx, qu
}

const vecAddSrc = `
__kernel void vec_add(__global const float* a, __global const float* b, __global float* dst) {
	int i = get_global_id(0);
	dst[i] = a[i] + b[i];
}
`

func buildVecAdd(t *testing.T, cx *Context) *Kernel {
	t.Helper()
	pg, err := cx.NewProgram(vecAddSrc)
	require.NoError(t, err)
	require.NoError(t, pg.Build(""))
	kn, err := pg.NewKernel("vec_add")
	require.NoError(t, err)
	t.Cleanup(func() {
		kn.Release()
		pg.Release()
	})
	return kn
}

func TestPlatformsDevices(t *testing.T) {
	if os.Getenv("GPUKIT_TEST_CL") == "" {
		t.Skip("need OpenCL driver on CI; set GPUKIT_TEST_CL=1 to run")
	}
	ps, err := Platforms()
	require.NoError(t, err)
	require.NotEmpty(t, ps)
	for _, p := range ps {
		t.Log(PlatformInfo(p))
		devs, err := Devices(p, cl.DeviceTypeAll)
		require.NoError(t, err)
		require.NotEmpty(t, devs)
		for _, d := range devs {
			t.Log(DeviceInfo(d))
		}
	}
}

func TestContextQueue(t *testing.T) {
	cx, qu := newTestContext(t)
	require.NotEmpty(t, cx.Devices)
	assert.NotNil(t, cx.CL())
	assert.NotNil(t, qu.CL())
	assert.True(t, qu.Profiling)
	require.NoError(t, qu.Flush())
	require.NoError(t, qu.Finish())
}

func TestProgramKernel(t *testing.T) {
	cx, _ := newTestContext(t)
	pg, err := cx.NewProgram(vecAddSrc)
	require.NoError(t, err)
	defer pg.Release()
	require.NoError(t, pg.Build(""))

	assert.Equal(t, []string{"vec_add"}, pg.KernelNames())

	kn, err := pg.NewKernel("vec_add")
	require.NoError(t, err)
	defer kn.Release()
	n, err := kn.NumArgs()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = pg.NewKernel("no_such_kernel")
	assert.Error(t, err)
}

func TestBuildError(t *testing.T) {
	cx, _ := newTestContext(t)
	pg, err := cx.NewProgram("__kernel void broken(__global float* a) { this does not compile }")
	require.NoError(t, err)
	defer pg.Release()

	err = pg.Build("")
	require.Error(t, err)
	var be *BuildError
	require.ErrorAs(t, err, &be)
	assert.NotEmpty(t, be.Log)
}

func TestVecAdd(t *testing.T) {
	cx, qu := newTestContext(t)
	kn := buildVecAdd(t, cx)

	const n = 1024
	avals := make([]float32, n)
	bvals := make([]float32, n)
	rnd := randx.NewKISSRand(42)
	randx.UniformF32s(avals, -1, 1, rnd)
	randx.UniformF32s(bvals, -1, 1, rnd)

	abuf, err := cx.NewBufferFloat32s(cl.MemReadOnly, avals)
	require.NoError(t, err)
	defer abuf.Release()
	bbuf, err := cx.NewBufferFloat32s(cl.MemReadOnly, bvals)
	require.NoError(t, err)
	defer bbuf.Release()
	dst, err := cx.NewBuffer(cl.MemWriteOnly, 4*n, nil)
	require.NoError(t, err)
	defer dst.Release()
	assert.Equal(t, 4*n, abuf.Size())

	require.NoError(t, kn.SetArgBuffer(0, abuf))
	require.NoError(t, kn.SetArgBuffer(1, bbuf))
	require.NoError(t, kn.SetArgBuffer(2, dst))

	ev, err := qu.EnqueueKernel(kn, NullRange(), Range1D(n), NullRange(), nil)
	require.NoError(t, err)
	defer ev.Release()

	out := make([]float32, n)
	_, err = qu.EnqueueReadFloat32s(dst, true, 0, out, nil)
	require.NoError(t, err)
	for i := range out {
		require.InDelta(t, avals[i]+bvals[i], out[i], 1e-6, "index %d", i)
	}

	// reads past the end of the buffer are rejected up front
	var pe *PreconditionError
	_, err = qu.EnqueueReadFloat32s(dst, true, 0, make([]float32, n+1), nil)
	require.Error(t, err)
	assert.True(t, errors.As(err, &pe))
}

func TestEnqueueKernelPreconditions(t *testing.T) {
	cx, qu := newTestContext(t)
	kn := buildVecAdd(t, cx)

	var pe *PreconditionError
	_, err := qu.EnqueueKernel(nil, NullRange(), Range1D(16), NullRange(), nil)
	require.Error(t, err)
	assert.True(t, errors.As(err, &pe))

	_, err = qu.EnqueueKernel(kn, NullRange(), NullRange(), NullRange(), nil)
	require.Error(t, err)
	assert.True(t, errors.As(err, &pe))

	// local size zero in a declared dimension; NullRange is the way
	// to delegate to the driver
	_, err = qu.EnqueueKernel(kn, NullRange(), Range1D(16), Range1D(0), nil)
	require.Error(t, err)
	assert.True(t, errors.As(err, &pe))

	// dimensionality mismatches
	_, err = qu.EnqueueKernel(kn, NullRange(), Range1D(16), Range2D(4, 4), nil)
	require.Error(t, err)
	assert.True(t, errors.As(err, &pe))
	_, err = qu.EnqueueKernel(kn, Range2D(0, 0), Range1D(16), NullRange(), nil)
	require.Error(t, err)
	assert.True(t, errors.As(err, &pe))
}

func TestUserEvent(t *testing.T) {
	cx, qu := newTestContext(t)

	buf, err := cx.NewBuffer(cl.MemReadWrite, 16, nil)
	require.NoError(t, err)
	defer buf.Release()

	uev, err := cx.NewUserEvent()
	require.NoError(t, err)
	defer uev.Release()

	data := make([]byte, 16)
	for i := range data {
		data[i] = byte(i + 1)
	}
	wev, err := qu.EnqueueWriteBuffer(buf, false, 0, data, []*Event{uev})
	require.NoError(t, err)
	defer wev.Release()
	require.NoError(t, qu.Flush())

	// the write holds until the user event is signaled
	require.NoError(t, uev.Complete())
	require.NoError(t, WaitForEvents(wev))

	out := make([]byte, 16)
	_, err = qu.EnqueueReadBuffer(buf, true, 0, out, nil)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestEventProfiling(t *testing.T) {
	cx, qu := newTestContext(t)
	kn := buildVecAdd(t, cx)

	const n = 1 << 18
	abuf, err := cx.NewBuffer(cl.MemReadOnly, 4*n, nil)
	require.NoError(t, err)
	defer abuf.Release()
	bbuf, err := cx.NewBuffer(cl.MemReadOnly, 4*n, nil)
	require.NoError(t, err)
	defer bbuf.Release()
	dst, err := cx.NewBuffer(cl.MemWriteOnly, 4*n, nil)
	require.NoError(t, err)
	defer dst.Release()

	require.NoError(t, kn.SetArgBuffer(0, abuf))
	require.NoError(t, kn.SetArgBuffer(1, bbuf))
	require.NoError(t, kn.SetArgBuffer(2, dst))

	ev, err := qu.EnqueueKernel(kn, NullRange(), Range1D(n), NullRange(), nil)
	require.NoError(t, err)
	defer ev.Release()
	require.NoError(t, qu.Finish())

	start, err := ev.CommandStart()
	require.NoError(t, err)
	end, err := ev.CommandEnd()
	require.NoError(t, err)
	assert.Greater(t, end, start)

	d, err := ev.Duration()
	require.NoError(t, err)
	assert.Greater(t, d, time.Duration(0))
}

func TestImages(t *testing.T) {
	cx, qu := newTestContext(t)
	img := testPattern()

	im, err := cx.NewImage2D(cl.MemReadWrite, FormatRGBA8(), 2, 2, 0, img.Pix)
	require.NoError(t, err)
	defer im.Release()
	assert.Equal(t, Image2D, im.Kind())
	assert.Equal(t, 2, im.Width())
	assert.Equal(t, 2, im.Height())

	out := make([]byte, len(img.Pix))
	_, err = qu.EnqueueReadImage(im, true, [3]int{}, [3]int{2, 2, 1}, 0, 0, out, nil)
	require.NoError(t, err)
	assert.Equal(t, img.Pix, out)

	// overwrite one pixel and read it back
	sub := []byte{9, 9, 9, 255}
	_, err = qu.EnqueueWriteImage(im, true, [3]int{1, 1, 0}, [3]int{1, 1, 1}, 0, 0, sub, nil)
	require.NoError(t, err)
	_, err = qu.EnqueueReadImage(im, true, [3]int{1, 1, 0}, [3]int{1, 1, 1}, 0, 0, out[:4], nil)
	require.NoError(t, err)
	assert.Equal(t, sub, out[:4])

	im1, err := cx.NewImage1D(cl.MemReadOnly, FormatRGBA8(), 4, make([]byte, 16))
	require.NoError(t, err)
	im1.Release()

	bf, err := cx.NewBuffer(cl.MemReadWrite, 16, nil)
	require.NoError(t, err)
	defer bf.Release()
	imb, err := cx.NewImage1DBuffer(cl.MemReadWrite, FormatRGBA8(), 4, bf)
	require.NoError(t, err)
	imb.Release()

	var pe *PreconditionError
	_, err = cx.NewImage2D(cl.MemReadOnly, FormatRGBA8(), 0, 2, 0, nil)
	require.Error(t, err)
	assert.True(t, errors.As(err, &pe))
	_, err = cx.NewImage1DArray(cl.MemReadOnly, FormatRGBA8(), 4, 0, 0, nil)
	require.Error(t, err)
	assert.True(t, errors.As(err, &pe))
}
