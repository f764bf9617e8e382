// Package errors defines the sentinel errors shared across the depcache
// install path and small helpers for wrapping them with context.
package errors

import "fmt"

// Common error types.
var (
	// Run-level errors. These abort an install run before any work starts.
	ErrInvalidDirectory = fmt.Errorf("target directory does not exist")
	ErrManifestMissing  = fmt.Errorf("no manifest file found")

	// Per-dependency errors. These fail a single dependency's unit of work
	// without aborting siblings.
	ErrMalformedGitSpec = fmt.Errorf("malformed git spec")
	ErrRegistry         = fmt.Errorf("registry lookup failed")
	ErrFetch            = fmt.Errorf("failed to fetch package")
	ErrCacheWrite       = fmt.Errorf("failed to write cache entry")
	ErrCopy             = fmt.Errorf("failed to copy package files")

	// Cache errors.
	ErrCacheDirectory = fmt.Errorf("cache directory cannot be empty")
	ErrCacheClean     = fmt.Errorf("failed to clean cache")
	ErrCacheInfo      = fmt.Errorf("failed to get cache info")

	// Config errors.
	ErrEmptyConfigPath = fmt.Errorf("config file path cannot be empty")
	ErrConfigParse     = fmt.Errorf("failed to parse config")
	ErrConfigEncode    = fmt.Errorf("failed to encode config")

	// Hook errors.
	ErrHookTypeEmpty = fmt.Errorf("hook type cannot be empty")
	ErrHookExecution = fmt.Errorf("error executing hook")
	ErrHookScript    = fmt.Errorf("hook script error")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
