// Package fsutil provides the file system primitives the install path is
// built on: directory creation, atomic-enough moves and union-safe recursive
// copies.
package fsutil

import (
	"os"
	"path/filepath"
)

// EnsureDir creates a directory and all necessary parent directories with
// default permissions if they don't exist. An existing directory is not an
// error.
func EnsureDir(path string) error {
	return os.MkdirAll(path, DirModeDefault)
}

// EnsureFileDir creates the parent directory of a file path if it doesn't
// exist.
func EnsureFileDir(filePath string) error {
	return EnsureDir(filepath.Dir(filePath))
}
