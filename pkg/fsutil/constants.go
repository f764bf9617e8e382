package fsutil

// File and directory permission constants, used consistently throughout the
// application.
const (
	// Default file modes.
	FileModeDefault = 0o644 // -rw-r--r--: Default for regular files
	FileModeExec    = 0o755 // -rwxr-xr-x: For executable files

	// Directory modes.
	DirModeDefault = 0o755 // drwxr-xr-x: Default for directories
	DirModePrivate = 0o700 // drwx------: For private directories (owner only)
)
