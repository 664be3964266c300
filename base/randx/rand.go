// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randx provides pseudo-random number generation built around
// small, fast engine cores (KISS, CMWC) that plug into the standard
// math/rand machinery, plus float32 distribution helpers for use in
// GPU-side data generation.
package randx

import "math/rand"

// Rand provides an interface with the standard rand.Rand methods used
// here, to support either the global rand generator or a separate
// seeded source such as [NewKISSRand] or [NewCMWCRand].
type Rand interface {
	// Seed uses the provided seed value to initialize the generator to
	// a deterministic state. Seed should not be called concurrently with
	// any other Rand method.
	Seed(seed int64)

	// Int63 returns a non-negative pseudo-random 63-bit integer as an int64.
	Int63() int64

	// Uint32 returns a pseudo-random 32-bit value as a uint32.
	Uint32() uint32

	// Uint64 returns a pseudo-random 64-bit value as a uint64.
	Uint64() uint64

	// Intn returns, as an int, a non-negative pseudo-random number in the
	// half-open interval [0,n). It panics if n <= 0.
	Intn(n int) int

	// Float64 returns, as a float64, a pseudo-random number in the
	// half-open interval [0.0,1.0).
	Float64() float64

	// Float32 returns, as a float32, a pseudo-random number in the
	// half-open interval [0.0,1.0).
	Float32() float32

	// NormFloat64 returns a normally distributed float64 with
	// mean = 0, stddev = 1.
	NormFloat64() float64

	// ExpFloat64 returns an exponentially distributed float64 with
	// rate parameter 1.
	ExpFloat64() float64

	// Perm returns, as a slice of n ints, a pseudo-random permutation
	// of the integers in the half-open interval [0,n).
	Perm(n int) []int

	// Shuffle pseudo-randomizes the order of n elements using the given
	// swap function. It panics if n < 0.
	Shuffle(n int, swap func(i, j int))
}

// SysRand implements [Rand] on either a separate rand.Rand source,
// or, if that is nil, the global rand stream.
type SysRand struct {
	// if non-nil, use this random number source instead of the global default one
	Rand *rand.Rand
}

// NewGlobalRand returns a new SysRand that implements the
// [Rand] interface, with the system global rand source.
func NewGlobalRand() *SysRand {
	return &SysRand{}
}

// NewSysRand returns a new SysRand with a new rand.Rand random source
// with given initial seed.
func NewSysRand(seed int64) *SysRand {
	r := &SysRand{}
	r.NewRand(seed)
	return r
}

// NewRand sets Rand to a new rand.Rand source using given seed.
func (r *SysRand) NewRand(seed int64) {
	r.Rand = rand.New(rand.NewSource(seed))
}

func (r *SysRand) Seed(seed int64) {
	if r.Rand == nil {
		rand.Seed(seed)
		return
	}
	r.Rand.Seed(seed)
}

func (r *SysRand) Int63() int64 {
	if r.Rand == nil {
		return rand.Int63()
	}
	return r.Rand.Int63()
}

func (r *SysRand) Uint32() uint32 {
	if r.Rand == nil {
		return rand.Uint32()
	}
	return r.Rand.Uint32()
}

func (r *SysRand) Uint64() uint64 {
	if r.Rand == nil {
		return rand.Uint64()
	}
	return r.Rand.Uint64()
}

func (r *SysRand) Intn(n int) int {
	if r.Rand == nil {
		return rand.Intn(n)
	}
	return r.Rand.Intn(n)
}

func (r *SysRand) Float64() float64 {
	if r.Rand == nil {
		return rand.Float64()
	}
	return r.Rand.Float64()
}

func (r *SysRand) Float32() float32 {
	if r.Rand == nil {
		return rand.Float32()
	}
	return r.Rand.Float32()
}

func (r *SysRand) NormFloat64() float64 {
	if r.Rand == nil {
		return rand.NormFloat64()
	}
	return r.Rand.NormFloat64()
}

func (r *SysRand) ExpFloat64() float64 {
	if r.Rand == nil {
		return rand.ExpFloat64()
	}
	return r.Rand.ExpFloat64()
}

func (r *SysRand) Perm(n int) []int {
	if r.Rand == nil {
		return rand.Perm(n)
	}
	return r.Rand.Perm(n)
}

func (r *SysRand) Shuffle(n int, swap func(i, j int)) {
	if r.Rand == nil {
		rand.Shuffle(n, swap)
		return
	}
	r.Rand.Shuffle(n, swap)
}
