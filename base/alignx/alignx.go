// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package alignx provides byte alignment arithmetic and aligned host
// allocations for staging data that device drivers transfer by DMA.
package alignx

import (
	"unsafe"
)

// AlignUp returns size aligned up to the next align byte increment,
// e.g., if align = 16 and size = 12, it returns 16.
func AlignUp(size, align int) int {
	if size%align == 0 {
		return size
	}
	nb := size / align
	return (nb + 1) * align
}

// Padding returns the number of bytes needed to bring size up to the
// next align byte increment.
func Padding(size, align int) int {
	return AlignUp(size, align) - size
}

// IsAligned reports whether the given pointer address is a multiple
// of align.
func IsAligned(ptr unsafe.Pointer, align int) bool {
	return uintptr(ptr)%uintptr(align) == 0
}

// Bytes returns a byte slice of the given size whose first element
// sits on an align byte boundary. align must be a power of two.
// The slice is carved out of a larger allocation, so cap may exceed size.
func Bytes(size, align int) []byte {
	buf := make([]byte, size+align)
	off := int(uintptr(unsafe.Pointer(&buf[0])) & uintptr(align-1))
	if off != 0 {
		off = align - off
	}
	return buf[off : off+size : off+size]
}

// Float32s returns a float32 slice of the given length whose backing
// array sits on an align byte boundary. align must be a power of two
// and a multiple of 4.
func Float32s(n, align int) []float32 {
	b := Bytes(n*4, align)
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&b[0])), n)
}
