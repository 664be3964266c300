// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"github.com/chewxy/math32"
)

// float32 distribution helpers, for filling device buffers and
// vertex data without a float64 round trip.

// UniformF32 returns a uniform random float32 in the half-open
// interval [lo, hi). Optionally can pass a single Rand interface
// to use; otherwise uses the system global Rand source.
func UniformF32(lo, hi float32, randOpt ...Rand) float32 {
	var rnd Rand
	if len(randOpt) == 0 {
		rnd = NewGlobalRand()
	} else {
		rnd = randOpt[0]
	}
	return lo + (hi-lo)*rnd.Float32()
}

// GaussianF32 returns a normally distributed random float32 with the
// given mean and sigma standard deviation, using the Box-Muller
// transform. Optionally can pass a single Rand interface to use;
// otherwise uses the system global Rand source.
func GaussianF32(mean, sigma float32, randOpt ...Rand) float32 {
	var rnd Rand
	if len(randOpt) == 0 {
		rnd = NewGlobalRand()
	} else {
		rnd = randOpt[0]
	}
	// 1-Float32 is in (0,1], keeping Log finite
	u := 1 - rnd.Float32()
	r := math32.Sqrt(-2 * math32.Log(u))
	th := 2 * math32.Pi * rnd.Float32()
	return mean + sigma*r*math32.Cos(th)
}

// ExpF32 returns an exponentially distributed random float32 with the
// given rate parameter lambda. Optionally can pass a single Rand
// interface to use; otherwise uses the system global Rand source.
func ExpF32(lambda float32, randOpt ...Rand) float32 {
	var rnd Rand
	if len(randOpt) == 0 {
		rnd = NewGlobalRand()
	} else {
		rnd = randOpt[0]
	}
	u := 1 - rnd.Float32()
	return -math32.Log(u) / lambda
}

// UniformF32s fills the given slice with uniform random float32 values
// in [lo, hi). Optionally can pass a single Rand interface to use;
// otherwise uses the system global Rand source.
func UniformF32s(vals []float32, lo, hi float32, randOpt ...Rand) {
	var rnd Rand
	if len(randOpt) == 0 {
		rnd = NewGlobalRand()
	} else {
		rnd = randOpt[0]
	}
	for i := range vals {
		vals[i] = lo + (hi-lo)*rnd.Float32()
	}
}
