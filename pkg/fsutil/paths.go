package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// CacheDir returns the per-user cache directory for depcache, creating
// nothing. The caller decides when to create it.
func CacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine user cache directory: %w", err)
	}
	return filepath.Join(base, "depcache"), nil
}
