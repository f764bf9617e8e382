package cache

import (
	"os"
	"path/filepath"

	"github.com/glorpus-work/depcache/pkg/errors"
	"github.com/glorpus-work/depcache/pkg/fsutil"
)

// Store reads and writes cached package trees under a root directory. The
// filesystem is the only record of what is cached: existence of a key's
// directory IS the entry.
type Store struct {
	root string
}

// NewStore creates a store rooted at root, creating the directory if needed.
func NewStore(root string) (*Store, error) {
	if root == "" {
		return nil, errors.ErrCacheDirectory
	}
	if err := fsutil.EnsureDir(root); err != nil {
		return nil, errors.Wrapf(err, "failed to create cache directory %s", root)
	}
	return &Store{root: root}, nil
}

// NewDefaultStore creates a store in the per-user cache directory.
func NewDefaultStore() (*Store, error) {
	root, err := fsutil.CacheDir()
	if err != nil {
		return nil, err
	}
	return NewStore(root)
}

// Root returns the cache root directory.
func (s *Store) Root() string {
	return s.root
}

// Exists reports whether an entry for key is present.
func (s *Store) Exists(key Key) bool {
	info, err := os.Stat(key.Path(s.root))
	return err == nil && info.IsDir()
}

// Commit moves the staged contents at srcDir into the key's location. Two
// workers may race to commit the same key (e.g. two dependants landing on
// the same package); identical keys imply identical content, so a
// destination that already exists is an idempotent success, not an error.
func (s *Store) Commit(srcDir string, key Key) error {
	if s.Exists(key) {
		return nil
	}
	dst := key.Path(s.root)
	if err := fsutil.EnsureDir(filepath.Dir(dst)); err != nil {
		return errors.Wrapf(errors.ErrCacheWrite, "could not create parent for %s: %v", key, err)
	}
	if err := fsutil.Move(srcDir, dst); err != nil {
		if s.Exists(key) {
			// Lost a same-key race; the entry is already in place.
			return nil
		}
		return errors.Wrapf(errors.ErrCacheWrite, "could not commit %s: %v", key, err)
	}
	return nil
}

// ReadInto merges the entry for key into destRoot. This is the single merge
// path for cache hits and fresh installs alike, so the destination is always
// populated from the committed entry.
func (s *Store) ReadInto(key Key, destRoot string) error {
	return MergeInto(key.Path(s.root), destRoot)
}
