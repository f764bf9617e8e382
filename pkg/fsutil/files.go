package fsutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// Move moves a file or directory from src to dst. It first attempts an
// atomic os.Rename and falls back to copy + delete when the rename crosses a
// filesystem boundary.
func Move(src, dst string) error {
	if src == "" || dst == "" {
		return fmt.Errorf("source and destination paths cannot be empty")
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat source %s: %w", src, err)
	}

	if err := EnsureFileDir(dst); err != nil {
		return fmt.Errorf("failed to create destination directory for %s: %w", dst, err)
	}

	err = os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !isCrossDeviceError(err) {
		return fmt.Errorf("failed to rename %s to %s: %w", src, dst, err)
	}

	// Cross-filesystem move: copy everything over, then drop the source.
	if srcInfo.IsDir() {
		if err := CopyDirInto(src, dst); err != nil {
			return err
		}
	} else {
		if err := Copy(src, dst); err != nil {
			return err
		}
	}
	if err := os.RemoveAll(src); err != nil {
		return fmt.Errorf("failed to remove source %s after copy: %w", src, err)
	}
	return nil
}

// isCrossDeviceError reports whether a rename failed because source and
// destination live on different filesystems.
func isCrossDeviceError(err error) bool {
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		if errno, ok := linkErr.Err.(syscall.Errno); ok {
			return errno == syscall.EXDEV
		}
	}
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		if errno, ok := pathErr.Err.(syscall.Errno); ok {
			return errno == syscall.EXDEV
		}
	}
	return false
}

// Copy copies the contents of srcFile to dstFile, preserving the source
// file's permission bits.
func Copy(srcFile, dstFile string) error {
	src, err := os.Open(srcFile)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcFile, err)
	}
	defer func() { _ = src.Close() }()

	srcInfo, err := src.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source file %s: %w", srcFile, err)
	}

	dst, err := os.OpenFile(dstFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstFile, err)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to copy from %s to %s: %w", srcFile, dstFile, err)
	}
	return nil
}

// CopyDirInto recursively copies the contents of the directory src into dst.
// Directories that already exist under dst are tolerated and descended into,
// which makes concurrent copies with overlapping directory structure safe:
// the result is the union of all sources, file by file.
func CopyDirInto(src, dst string) error {
	if err := EnsureDir(dst); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dst, err)
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		if relPath == "." {
			return nil
		}
		target := filepath.Join(dst, relPath)

		if d.IsDir() {
			return EnsureDir(target)
		}
		if d.Type()&os.ModeSymlink != 0 {
			linkTarget, err := os.Readlink(path)
			if err != nil {
				return fmt.Errorf("failed to read symlink %s: %w", path, err)
			}
			_ = os.Remove(target)
			return os.Symlink(linkTarget, target)
		}
		return Copy(path, target)
	})
}

// CreateFilePerm creates a new file with the specified permissions.
func CreateFilePerm(name string, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, perm)
}
