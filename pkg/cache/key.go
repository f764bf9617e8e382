// Package cache stores installed package trees keyed by their identity and
// binary-compatibility context, and merges them into destination trees.
package cache

import "path/filepath"

// Key is the composite identity addressing one cache entry: package name,
// concrete version, CPU architecture and native-module ABI revision. Entries
// with the same key are assumed byte-interchangeable; the store trusts the
// key and never re-validates content.
type Key struct {
	Name    string
	Version string
	Arch    string
	ABI     string
}

// Path maps the key to its directory under root. Each field becomes one path
// segment, so distinct keys never collide.
func (k Key) Path(root string) string {
	return filepath.Join(root, k.Name, k.Version, k.Arch, k.ABI)
}

// String renders the key for log and error messages.
func (k Key) String() string {
	return k.Name + "@" + k.Version + " (" + k.Arch + "/abi" + k.ABI + ")"
}
