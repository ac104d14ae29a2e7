// Package ioutils provides file system utilities for imgur-downloader.
//
// This package contains functions for:
//   - Directory creation
//   - Opening destination files without truncating them
//   - Reading the current size of an open file
//
// Opening without truncation matters here: the downloader has to inspect
// the existing file's length to decide between skipping and re-downloading
// before any bytes are discarded.
package ioutils

import "os"

// EnsureDir creates a directory and all parent directories if they don't
// exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := ioutils.EnsureDir("vNOUshX")
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// OpenKeep opens the file at path for reading and writing, creating it if
// it does not exist. Unlike os.Create, an existing file is NOT truncated,
// so its current length is still observable by the caller.
//
// The file is created with mode 0644. The caller must close the returned
// file.
func OpenKeep(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
}

// Size returns the current length in bytes of an open file.
func Size(f *os.File) (int64, error) {
	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
