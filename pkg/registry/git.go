package registry

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/glorpus-work/depcache/pkg/depspec"
	"github.com/glorpus-work/depcache/pkg/errors"
	"github.com/glorpus-work/depcache/pkg/fsutil"
	"github.com/glorpus-work/depcache/pkg/model"
)

// installGit clones the repository behind a git spec into dest and checks
// out the version pinned by the spec's fragment. The .git directory is
// dropped afterwards: cache entries hold package trees, not repositories.
func (c *Client) installGit(ctx context.Context, dest string, dep model.ResolvedDependency) error {
	if err := fsutil.EnsureDir(filepath.Dir(dest)); err != nil {
		return errors.Wrapf(errors.ErrFetch, "could not create %s: %v", filepath.Dir(dest), err)
	}

	cloneURL := depspec.CloneURL(dep.RawSpec)
	if out, err := exec.CommandContext(ctx, "git", "clone", "--quiet", cloneURL, dest).CombinedOutput(); err != nil {
		return errors.Wrapf(errors.ErrFetch, "git clone %s: %v: %s", cloneURL, err, out)
	}

	checkout := exec.CommandContext(ctx, "git", "checkout", "--quiet", dep.ResolvedVersion)
	checkout.Dir = dest
	if out, err := checkout.CombinedOutput(); err != nil {
		return errors.Wrapf(errors.ErrFetch, "git checkout %s of %s: %v: %s", dep.ResolvedVersion, cloneURL, err, out)
	}

	_ = os.RemoveAll(filepath.Join(dest, ".git"))
	return nil
}
