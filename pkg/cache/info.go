package cache

import (
	"os"
	"path/filepath"

	"github.com/glorpus-work/depcache/pkg/errors"
	"github.com/glorpus-work/depcache/pkg/fsutil"
)

// Info describes the cache contents.
type Info struct {
	Directory string
	TotalSize int64
	Files     int
	Packages  int // distinct cached package names
}

// GetInfo walks the cache and reports its size, file count and how many
// distinct package names it holds.
func (s *Store) GetInfo() (*Info, error) {
	info := &Info{Directory: s.root}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return info, nil
		}
		return nil, errors.Wrapf(errors.ErrCacheInfo, "could not read %s: %v", s.root, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			info.Packages++
		}
	}

	err = filepath.Walk(s.root, func(_ string, fi os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !fi.IsDir() {
			info.TotalSize += fi.Size()
			info.Files++
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCacheInfo, "error walking %s: %v", s.root, err)
	}
	return info, nil
}

// Clean removes every cache entry and recreates the empty root. Returns the
// number of bytes freed.
func (s *Store) Clean() (int64, error) {
	var freed int64

	if _, err := os.Stat(s.root); os.IsNotExist(err) {
		return 0, nil
	}

	err := filepath.Walk(s.root, func(_ string, fi os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !fi.IsDir() {
			freed += fi.Size()
		}
		return nil
	})
	if err != nil {
		return 0, errors.Wrapf(errors.ErrCacheClean, "error walking %s: %v", s.root, err)
	}

	if err := os.RemoveAll(s.root); err != nil {
		return 0, errors.Wrapf(errors.ErrCacheClean, "failed to remove %s: %v", s.root, err)
	}
	if err := fsutil.EnsureDir(s.root); err != nil {
		return freed, errors.Wrapf(errors.ErrCacheClean, "failed to recreate %s: %v", s.root, err)
	}
	return freed, nil
}
