// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKISSDeterministic(t *testing.T) {
	a := NewKISS(42)
	b := NewKISS(42)
	for i := 0; i < 1000; i++ {
		assert.Equal(t, a.Next32(), b.Next32())
	}
	c := NewKISS(43)
	a = NewKISS(42)
	same := 0
	for i := 0; i < 1000; i++ {
		if a.Next32() == c.Next32() {
			same++
		}
	}
	assert.Less(t, same, 5)
}

func TestCMWCDeterministic(t *testing.T) {
	a := NewCMWC(42)
	b := NewCMWC(42)
	for i := 0; i < 10000; i++ {
		assert.Equal(t, a.Next32(), b.Next32())
	}
	c := NewCMWC(43)
	a = NewCMWC(42)
	same := 0
	for i := 0; i < 10000; i++ {
		if a.Next32() == c.Next32() {
			same++
		}
	}
	assert.Less(t, same, 20)
}

func TestEngineReseed(t *testing.T) {
	k := NewKISS(7)
	first := make([]uint32, 16)
	for i := range first {
		first[i] = k.Next32()
	}
	k.InitSeed(7)
	for i := range first {
		assert.Equal(t, first[i], k.Next32())
	}
}

func TestEngineAsSource(t *testing.T) {
	// engines must satisfy rand.Source64
	var _ rand.Source64 = &KISS{}
	var _ rand.Source64 = &CMWC{}

	r := rand.New(NewKISS(1))
	for i := 0; i < 1000; i++ {
		v := r.Int63()
		assert.GreaterOrEqual(t, v, int64(0))
	}
}

func TestSysRandEngines(t *testing.T) {
	for _, r := range []*SysRand{NewKISSRand(99), NewCMWCRand(99)} {
		for i := 0; i < 1000; i++ {
			f := r.Float32()
			assert.GreaterOrEqual(t, f, float32(0))
			assert.Less(t, f, float32(1))
		}
		p := r.Perm(10)
		seen := make(map[int]bool, 10)
		for _, v := range p {
			seen[v] = true
		}
		assert.Equal(t, 10, len(seen))
	}
}

func TestUniformF32(t *testing.T) {
	rnd := NewKISSRand(3)
	for i := 0; i < 1000; i++ {
		v := UniformF32(-2, 5, rnd)
		assert.GreaterOrEqual(t, v, float32(-2))
		assert.Less(t, v, float32(5))
	}
	vals := make([]float32, 256)
	UniformF32s(vals, 0, 1, rnd)
	var sum float32
	for _, v := range vals {
		sum += v
	}
	mean := sum / 256
	assert.InDelta(t, 0.5, mean, 0.1)
}

func TestGaussianF32(t *testing.T) {
	rnd := NewCMWCRand(12)
	n := 10000
	var sum, sumsq float64
	for i := 0; i < n; i++ {
		v := float64(GaussianF32(2, 0.5, rnd))
		sum += v
		sumsq += v * v
	}
	mean := sum / float64(n)
	sd := sumsq/float64(n) - mean*mean
	assert.InDelta(t, 2.0, mean, 0.05)
	assert.InDelta(t, 0.25, sd, 0.05)
}

func TestExpF32(t *testing.T) {
	rnd := NewKISSRand(5)
	n := 10000
	var sum float64
	for i := 0; i < n; i++ {
		v := ExpF32(2, rnd)
		assert.Greater(t, v, float32(0))
		sum += float64(v)
	}
	assert.InDelta(t, 0.5, sum/float64(n), 0.05)
}
