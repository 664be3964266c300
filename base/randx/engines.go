// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import "math/rand"

// Engine is a raw pseudo-random generator core producing a stream of
// uniformly distributed words. Engines also implement [rand.Source64],
// so rand.New(engine) yields a full-featured generator on top of one.
type Engine interface {
	// InitSeed initializes the engine state deterministically from seed.
	// Any seed value is valid, including zero.
	InitSeed(seed uint64)

	// Next32 returns the next 32 bits from the stream.
	Next32() uint32

	// Next64 returns the next 64 bits from the stream.
	Next64() uint64
}

// splitmix64 advances x and returns a well-mixed 64-bit value.
// It is used to expand a single seed word into engine state.
func splitmix64(x *uint64) uint64 {
	*x += 0x9e3779b97f4a7c15
	z := *x
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// KISS is Marsaglia's KISS99 generator: a linear congruential step,
// a 3-shift xorshift, and a pair of 16-bit multiply-with-carry steps,
// combined into one 32-bit output per call. Period is about 2^123.
// The zero value is not usable; construct with [NewKISS].
type KISS struct {
	z, w, jsr, jcong uint32
}

// NewKISS returns a KISS engine initialized from the given seed.
func NewKISS(seed uint64) *KISS {
	k := &KISS{}
	k.InitSeed(seed)
	return k
}

func (k *KISS) InitSeed(seed uint64) {
	k.z = uint32(splitmix64(&seed))
	k.w = uint32(splitmix64(&seed))
	k.jsr = uint32(splitmix64(&seed))
	k.jcong = uint32(splitmix64(&seed))
	// the xorshift register must never be zero
	if k.jsr == 0 {
		k.jsr = 123456789
	}
	// a zero MWC word locks that half of the pair at zero
	if k.z == 0 {
		k.z = 362436069
	}
	if k.w == 0 {
		k.w = 521288629
	}
}

func (k *KISS) Next32() uint32 {
	k.z = 36969*(k.z&65535) + (k.z >> 16)
	k.w = 18000*(k.w&65535) + (k.w >> 16)
	mwc := (k.z << 16) + k.w
	k.jsr ^= k.jsr << 17
	k.jsr ^= k.jsr >> 13
	k.jsr ^= k.jsr << 5
	k.jcong = 69069*k.jcong + 1234567
	return (mwc ^ k.jcong) + k.jsr
}

func (k *KISS) Next64() uint64 {
	hi := uint64(k.Next32())
	lo := uint64(k.Next32())
	return hi<<32 | lo
}

// Seed implements [rand.Source].
func (k *KISS) Seed(seed int64) { k.InitSeed(uint64(seed)) }

// Uint64 implements [rand.Source64].
func (k *KISS) Uint64() uint64 { return k.Next64() }

// Int63 implements [rand.Source].
func (k *KISS) Int63() int64 { return int64(k.Next64() >> 1) }

// cmwcLag is the number of state words in the CMWC engine.
const cmwcLag = 4096

// cmwcA is the CMWC multiplier for lag 4096.
const cmwcA = 18782

// CMWC is Marsaglia's complementary multiply-with-carry generator
// with lag 4096 and multiplier 18782, period about 2^131086.
// It trades a 16 KiB state table for an extremely long period and
// strong equidistribution. The zero value is not usable; construct
// with [NewCMWC].
type CMWC struct {
	q [cmwcLag]uint32
	c uint32
	i int
}

// NewCMWC returns a CMWC engine initialized from the given seed.
func NewCMWC(seed uint64) *CMWC {
	cm := &CMWC{}
	cm.InitSeed(seed)
	return cm
}

func (cm *CMWC) InitSeed(seed uint64) {
	for i := range cm.q {
		cm.q[i] = uint32(splitmix64(&seed))
	}
	// the carry must start below the multiplier cap
	cm.c = uint32(splitmix64(&seed) % 809430660)
	cm.i = cmwcLag - 1
}

func (cm *CMWC) Next32() uint32 {
	cm.i = (cm.i + 1) & (cmwcLag - 1)
	t := uint64(cmwcA)*uint64(cm.q[cm.i]) + uint64(cm.c)
	cm.c = uint32(t >> 32)
	x := uint32(t) + cm.c
	if x < cm.c {
		x++
		cm.c++
	}
	cm.q[cm.i] = 0xfffffffe - x
	return cm.q[cm.i]
}

func (cm *CMWC) Next64() uint64 {
	hi := uint64(cm.Next32())
	lo := uint64(cm.Next32())
	return hi<<32 | lo
}

// Seed implements [rand.Source].
func (cm *CMWC) Seed(seed int64) { cm.InitSeed(uint64(seed)) }

// Uint64 implements [rand.Source64].
func (cm *CMWC) Uint64() uint64 { return cm.Next64() }

// Int63 implements [rand.Source].
func (cm *CMWC) Int63() int64 { return int64(cm.Next64() >> 1) }

// NewKISSRand returns a [SysRand] whose stream is driven by a
// KISS engine with the given seed.
func NewKISSRand(seed uint64) *SysRand {
	return &SysRand{Rand: rand.New(NewKISS(seed))}
}

// NewCMWCRand returns a [SysRand] whose stream is driven by a
// CMWC engine with the given seed.
func NewCMWCRand(seed uint64) *SysRand {
	return &SysRand{Rand: rand.New(NewCMWC(seed))}
}
