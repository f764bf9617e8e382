package cache

import (
	"os"
	"path/filepath"

	"github.com/glorpus-work/depcache/pkg/errors"
	"github.com/glorpus-work/depcache/pkg/fsutil"
)

// MergeInto copies the package tree at src into the shared destination root.
// Only the top-level entries of src are enumerated; each one is copied
// recursively *into* its destination subpath, creating it when absent and
// tolerating it when another in-flight merge created it first. Copying the
// whole tree in one operation would clobber sibling packages concurrently
// populating a same-named subdirectory, so the per-entry granularity here is
// load-bearing. Entries are processed sequentially; ordering is immaterial.
func MergeInto(src, destRoot string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return errors.Wrapf(errors.ErrCopy, "could not read %s: %v", src, err)
	}
	if err := fsutil.EnsureDir(destRoot); err != nil {
		return errors.Wrapf(errors.ErrCopy, "could not create %s: %v", destRoot, err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(destRoot, entry.Name())

		if entry.IsDir() {
			if err := fsutil.CopyDirInto(srcPath, dstPath); err != nil {
				return errors.Wrapf(errors.ErrCopy, "could not merge %s: %v", entry.Name(), err)
			}
			continue
		}
		if err := fsutil.Copy(srcPath, dstPath); err != nil {
			return errors.Wrapf(errors.ErrCopy, "could not merge %s: %v", entry.Name(), err)
		}
	}
	return nil
}
