package nav

import "io/fs"

// Path is an absolute filesystem path with the stat info captured when it was
// resolved. Paths are created by FilesystemManager.Resolve.
type Path struct {
	absPath string
	isDir   bool
	info    fs.FileInfo
}

// NewPath creates a Path from its components.
// This is primarily for use by FilesystemManager implementations.
func NewPath(absPath string, isDir bool, info fs.FileInfo) *Path {
	return &Path{
		absPath: absPath,
		isDir:   isDir,
		info:    info,
	}
}

// String returns the absolute path as a string.
func (p *Path) String() string {
	return p.absPath
}

// IsDir returns true if this path points to a directory.
func (p *Path) IsDir() bool {
	return p.isDir
}

// IsRegular returns true if this path points to a regular file.
func (p *Path) IsRegular() bool {
	return p.info != nil && p.info.Mode().IsRegular()
}
