package registry

import (
	"context"
	"crypto/sha1" //nolint:gosec // registry shasums are SHA-1 by convention
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/mholt/archives"

	"github.com/glorpus-work/depcache/pkg/errors"
	"github.com/glorpus-work/depcache/pkg/fsutil"
	"github.com/glorpus-work/depcache/pkg/model"
)

// ModulesDir is the conventional subpath an install populates inside its
// target directory.
const ModulesDir = "node_modules"

// Install populates targetDir with the dependency's package tree under the
// conventional node_modules/<name> subpath. Registry dependencies come from
// the version's tarball; git dependencies are cloned and checked out at
// their pinned fragment.
func (c *Client) Install(ctx context.Context, targetDir string, dep model.ResolvedDependency) error {
	dest := filepath.Join(targetDir, ModulesDir, dep.Name)
	if dep.Kind == model.GitRef {
		return c.installGit(ctx, dest, dep)
	}
	return c.installTarball(ctx, dest, dep)
}

func (c *Client) installTarball(ctx context.Context, dest string, dep model.ResolvedDependency) error {
	doc, err := c.packument(ctx, dep.Name)
	if err != nil {
		return errors.Wrapf(errors.ErrFetch, "could not resolve %s: %v", dep.Name, err)
	}
	ver, ok := doc.Versions[dep.ResolvedVersion]
	if !ok {
		return errors.Wrapf(errors.ErrFetch, "version %s of %s not found in registry", dep.ResolvedVersion, dep.Name)
	}
	if ver.Dist.Tarball == "" {
		return errors.Wrapf(errors.ErrFetch, "no tarball published for %s@%s", dep.Name, dep.ResolvedVersion)
	}

	tmpPath, err := c.download(ctx, ver.Dist.Tarball, ver.Dist.Shasum)
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmpPath) }()

	if err := extractPackage(ctx, tmpPath, dest); err != nil {
		return errors.Wrapf(errors.ErrFetch, "could not extract %s@%s: %v", dep.Name, dep.ResolvedVersion, err)
	}
	return nil
}

// download fetches url into a temp file, verifying the SHA-1 shasum when the
// registry published one, and returns the temp file's path.
func (c *Client) download(ctx context.Context, url, shasum string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", errors.Wrapf(errors.ErrFetch, "failed to create request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.Wrapf(errors.ErrFetch, "download of %s failed: %v", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d for %s: %w", resp.StatusCode, url, errors.ErrFetch)
	}

	tmp, err := os.CreateTemp("", "depcache-*.tgz")
	if err != nil {
		return "", errors.Wrapf(errors.ErrFetch, "could not create temp file: %v", err)
	}
	tmpPath := tmp.Name()

	hash := sha1.New() //nolint:gosec
	if _, err := io.Copy(io.MultiWriter(tmp, hash), resp.Body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", errors.Wrapf(errors.ErrFetch, "could not write %s: %v", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", errors.Wrapf(errors.ErrFetch, "could not close %s: %v", tmpPath, err)
	}

	if shasum != "" {
		got := hex.EncodeToString(hash.Sum(nil))
		if !strings.EqualFold(got, strings.TrimSpace(shasum)) {
			_ = os.Remove(tmpPath)
			return "", errors.Wrapf(errors.ErrFetch, "shasum mismatch for %s: got %s want %s", url, got, shasum)
		}
	}
	return tmpPath, nil
}

// extractPackage unpacks a package tarball into dest. Registry tarballs root
// their contents under a single top directory (conventionally "package"),
// which is stripped.
func extractPackage(ctx context.Context, archivePath, dest string) error {
	fsys, err := archives.FileSystem(ctx, archivePath, nil)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	if closer, ok := fsys.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	if err := fsutil.EnsureDir(dest); err != nil {
		return err
	}

	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == "." {
			return nil
		}
		rel := stripRoot(path)
		if rel == "" {
			return nil
		}
		target := filepath.Join(dest, filepath.FromSlash(rel))

		if d.IsDir() {
			return fsutil.EnsureDir(target)
		}
		return writeEntry(fsys, path, target)
	})
}

// stripRoot drops the first path component of an archive path.
func stripRoot(path string) string {
	_, rest, ok := strings.Cut(path, "/")
	if !ok {
		return ""
	}
	return rest
}

func writeEntry(fsys fs.FS, path, target string) error {
	src, err := fsys.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open archive entry %s: %w", path, err)
	}
	defer func() { _ = src.Close() }()

	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat archive entry %s: %w", path, err)
	}

	if err := fsutil.EnsureFileDir(target); err != nil {
		return err
	}

	perm := info.Mode().Perm()
	if perm == 0 {
		perm = fsutil.FileModeDefault
	}
	dst, err := fsutil.CreateFilePerm(target, perm)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}
