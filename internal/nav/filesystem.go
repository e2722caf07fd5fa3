package nav

// FilesystemManager abstracts the filesystem checks used by pruning and
// selection so they can be exercised without touching the real filesystem.
type FilesystemManager interface {
	// Resolve makes rawPath absolute, stats it and returns a Path.
	// It fails if the path does not exist.
	Resolve(rawPath string) (*Path, error)

	// Exists reports whether path currently exists. Any stat error,
	// including permission errors, is reported as false.
	Exists(path string) bool

	// Canonicalize returns the absolute form of path with symlinks resolved.
	// It fails if the path does not exist.
	Canonicalize(path string) (string, error)

	// IsExcluded reports whether an absolute path matches a configured
	// exclude pattern and must not be offered to the picker.
	IsExcluded(absPath string) bool

	// HomeDir returns the current user's home directory.
	HomeDir() (string, error)
}
