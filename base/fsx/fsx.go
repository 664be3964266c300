// Copyright (c) 2026, GPUKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides convenience helpers for reading files and
// navigating filesystems, for both the local disk and [fs.FS] sources.
package fsx

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gpukit/gpukit/base/errors"
)

// DirFS returns the directory part of given file path as an os.DirFS
// and the filename as a string. These can then be used to access the file
// using the FS-based interface, consistent with embed and other use-cases.
func DirFS(fpath string) (fs.FS, string, error) {
	fabs, err := filepath.Abs(fpath)
	if err != nil {
		return nil, "", err
	}
	dir, fname := filepath.Split(fabs)
	return os.DirFS(dir), fname, nil
}

// FileString reads the file at the given path and returns its contents
// as a string, wrapping any error with the filename. It is for text
// sources such as shader and kernel files that are compiled from strings.
func FileString(filename string) (string, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("fsx.FileString: %w", err)
	}
	return string(b), nil
}

// FileStringFS is the [fs.FS] version of [FileString].
func FileStringFS(fsys fs.FS, filename string) (string, error) {
	b, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return "", fmt.Errorf("fsx.FileStringFS: %w", err)
	}
	return string(b), nil
}

// FileExists checks whether the given file exists, returning true if so,
// false if not, and an error if there is an error in accessing the file.
func FileExists(filePath string) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err == nil {
		return !fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FileExistsFS checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
func FileExistsFS(fsys fs.FS, filePath string) (bool, error) {
	if fsys, ok := fsys.(fs.StatFS); ok {
		fileInfo, err := fsys.Stat(filePath)
		if err == nil {
			return !fileInfo.IsDir(), nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	fp, err := fsys.Open(filePath)
	if err == nil {
		fp.Close()
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// LatestMod returns the most recent modification time of any file
// with the given extension(s) in the given directory, for cheap
// is-anything-newer checks on shader and kernel source directories.
func LatestMod(dir string, exts ...string) (time.Time, error) {
	fns, err := Filenames(dir, exts...)
	if err != nil {
		return time.Time{}, err
	}
	var latest time.Time
	for _, fn := range fns {
		st, err := os.Stat(filepath.Join(dir, fn))
		if err != nil {
			continue
		}
		if st.ModTime().After(latest) {
			latest = st.ModTime()
		}
	}
	return latest, nil
}

// Filenames returns all the file names with the given extension(s)
// in the given directory, in sorted order. Extensions include the
// leading dot; with no extensions, all files are returned.
func Filenames(dir string, exts ...string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var fns []string
	for _, en := range entries {
		if en.IsDir() {
			continue
		}
		if len(exts) == 0 {
			fns = append(fns, en.Name())
			continue
		}
		ext := strings.ToLower(filepath.Ext(en.Name()))
		for _, ex := range exts {
			if ext == strings.ToLower(ex) {
				fns = append(fns, en.Name())
				break
			}
		}
	}
	sort.Strings(fns)
	return fns, nil
}
