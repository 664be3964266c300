// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stringsx provides small string helpers for driver-facing text:
// C strings with trailing NUL bytes, separator-joined name lists, and
// numeric formatting of byte values.
package stringsx

import (
	"strconv"
	"strings"
)

// TrimNull returns the string up to the first NUL byte, with any
// surrounding whitespace removed. Driver info logs and property strings
// are returned as fixed-size C buffers and often carry a trailing NUL
// and newline.
func TrimNull(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// SplitNonEmpty splits s on the given separator and returns the non-empty
// elements, with surrounding whitespace removed from each. Driver name
// lists (kernel names, extensions) are separator-joined and may carry
// empty or padded entries.
func SplitNonEmpty(s, sep string) []string {
	var out []string
	for _, f := range strings.Split(s, sep) {
		f = strings.TrimSpace(f)
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// FieldsAny splits s at every run of runes from cutset and returns
// the non-empty fields.
func FieldsAny(s, cutset string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(cutset, r)
	})
}

// ByteString formats the given byte as its numeric value.
// A byte is a small integer here, never a character: use
// string(rune(b)) explicitly when character conversion is wanted.
func ByteString(b byte) string {
	return strconv.Itoa(int(b))
}

// Int32String formats the given int32 as a decimal string.
func Int32String(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}
