// Package hook runs project-provided lifecycle scripts around an install
// run. Scripts are Tengo programs loaded from the project's depcache-hooks
// directory; a project without hooks is a silent no-op.
package hook

// Type identifies when a hook runs.
type Type string

// Supported hook types.
const (
	PreInstall  Type = "pre-install"
	PostInstall Type = "post-install"
)

// Context carries the run facts exposed to hook scripts.
type Context struct {
	ProjectDir string
	CacheDir   string
	Modules    int
	Vars       map[string]interface{}
}
