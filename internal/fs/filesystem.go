package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"fzf-nav/internal/nav"
)

// OSFilesystemManager is the real filesystem implementation of FilesystemManager.
// It performs actual filesystem operations using the os package.
type OSFilesystemManager struct {
	exclude *ExcludeMatcher
}

// NewOSFilesystemManager creates a new filesystem manager that operates on the
// real filesystem. excludePatterns are the picker exclude patterns from config.
func NewOSFilesystemManager(excludePatterns []string) *OSFilesystemManager {
	return &OSFilesystemManager{
		exclude: NewExcludeMatcher(excludePatterns),
	}
}

// Resolve makes rawPath absolute and stats it, following symlinks.
func (m *OSFilesystemManager) Resolve(rawPath string) (*nav.Path, error) {
	absPath, err := filepath.Abs(rawPath)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("stat path: %w", err)
	}

	mode := info.Mode()
	if mode&os.ModeDevice != 0 {
		return nil, fmt.Errorf("device files not supported: %s", absPath)
	}
	if mode&os.ModeNamedPipe != 0 {
		return nil, fmt.Errorf("named pipes not supported: %s", absPath)
	}
	if mode&os.ModeSocket != 0 {
		return nil, fmt.Errorf("sockets not supported: %s", absPath)
	}

	return nav.NewPath(absPath, info.IsDir(), info), nil
}

// Exists reports whether path can be stat'ed. A relative path is taken
// relative to the working directory. Permission errors and unreachable
// mounts count as missing.
func (m *OSFilesystemManager) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Canonicalize returns the absolute, symlink-free form of path.
func (m *OSFilesystemManager) Canonicalize(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return "", fmt.Errorf("resolving symlinks: %w", err)
	}
	return resolved, nil
}

// IsExcluded reports whether absPath matches an exclude pattern.
func (m *OSFilesystemManager) IsExcluded(absPath string) bool {
	return m.exclude.Match(absPath)
}

// HomeDir returns the current user's home directory.
func (m *OSFilesystemManager) HomeDir() (string, error) {
	return homedir.Dir()
}

// Compile-time check that OSFilesystemManager implements nav.FilesystemManager interface
var _ nav.FilesystemManager = (*OSFilesystemManager)(nil)
