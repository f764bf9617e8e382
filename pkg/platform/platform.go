// Package platform reports the host runtime facts baked into every cache
// key: the CPU architecture and the native-module ABI revision of the
// runtime installed packages will be loaded by. Both are read once per run
// and passed down as constants.
package platform

import (
	"os"
	"os/exec"
	"runtime"
	"strings"
)

const (
	// ABIEnv overrides ABI detection, for hosts without a node binary.
	ABIEnv = "DEPCACHE_ABI"

	// DefaultABI is used when no runtime is found and no override is set,
	// keeping cache keys deterministic either way.
	DefaultABI = "0"
)

// Arch returns the normalized host architecture identifier.
func Arch() string {
	return NormalizeArch(runtime.GOARCH)
}

// NormalizeArch normalizes architecture names to a common format.
func NormalizeArch(arch string) string {
	arch = strings.ToLower(arch)
	switch arch {
	case "x86_64", "x64":
		return "amd64"
	case "x86", "i386", "i686":
		return "386"
	case "aarch64":
		return "arm64"
	default:
		return arch
	}
}

// ABIVersion resolves the native-module ABI revision of the host runtime.
// Packages with compiled components are only binary-compatible within one
// ABI revision, so this value partitions the cache.
func ABIVersion() string {
	if v := os.Getenv(ABIEnv); v != "" {
		return v
	}
	out, err := exec.Command("node", "-p", "process.versions.modules").Output()
	if err != nil {
		return DefaultABI
	}
	if v := strings.TrimSpace(string(out)); v != "" {
		return v
	}
	return DefaultABI
}

// RuntimeVersion reports the host runtime version, or "" when no runtime is
// installed. Purely informational; it never feeds cache keys.
func RuntimeVersion() string {
	out, err := exec.Command("node", "--version").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
