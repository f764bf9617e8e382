package hook

import (
	"os"
	"path/filepath"

	"github.com/glorpus-work/depcache/pkg/errors"
)

// HooksDir is the project subdirectory scanned for hook scripts.
const HooksDir = "depcache-hooks"

// scriptExt is the file extension hook scripts must carry.
const scriptExt = ".tengo"

// LoadFromProject builds an executor from the hook scripts found in the
// project's hooks directory. A project without a hooks directory yields an
// executor with no scripts.
func LoadFromProject(projectDir string) (*TengoExecutor, error) {
	executor := NewTengoExecutor()

	dir := filepath.Join(projectDir, HooksDir)
	for _, hookType := range []Type{PreInstall, PostInstall} {
		path := filepath.Join(dir, string(hookType)+scriptExt)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, "failed to load hook %s", path)
		}
		if err := executor.AddScript(hookType, string(data)); err != nil {
			return nil, err
		}
	}
	return executor, nil
}
