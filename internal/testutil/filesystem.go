package testutil

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"fzf-nav/internal/nav"
)

// MockEntry represents an entry in the mock filesystem.
type MockEntry struct {
	IsDirectory bool
	ModTime     time.Time
}

// MockFilesystemManager is an in-memory filesystem for testing.
// Relative paths are taken relative to Cwd.
type MockFilesystemManager struct {
	entries  map[string]*MockEntry
	links    map[string]string // symlink path -> target
	excluded map[string]bool

	Cwd     string
	Home    string
	HomeErr error
}

// NewMockFilesystemManager creates a new mock filesystem with cwd /work and
// home /home/user.
func NewMockFilesystemManager() *MockFilesystemManager {
	return &MockFilesystemManager{
		entries:  make(map[string]*MockEntry),
		links:    make(map[string]string),
		excluded: make(map[string]bool),
		Cwd:      "/work",
		Home:     "/home/user",
	}
}

// AddFile adds a regular file to the mock filesystem.
func (m *MockFilesystemManager) AddFile(path string) {
	m.entries[path] = &MockEntry{ModTime: time.Now()}
}

// AddDirectory adds a directory to the mock filesystem.
func (m *MockFilesystemManager) AddDirectory(path string) {
	m.entries[path] = &MockEntry{IsDirectory: true, ModTime: time.Now()}
}

// AddSymlink makes path resolve to target.
func (m *MockFilesystemManager) AddSymlink(path, target string) {
	m.links[path] = target
}

// Remove deletes an entry, as if it was removed on disk.
func (m *MockFilesystemManager) Remove(path string) {
	delete(m.entries, path)
}

// Exclude marks an absolute path as excluded from the picker.
func (m *MockFilesystemManager) Exclude(path string) {
	m.excluded[path] = true
}

func (m *MockFilesystemManager) abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(m.Cwd, path)
}

func (m *MockFilesystemManager) follow(path string) string {
	if target, ok := m.links[path]; ok {
		return target
	}
	return path
}

func (m *MockFilesystemManager) Resolve(rawPath string) (*nav.Path, error) {
	absPath := m.abs(rawPath)
	entry, ok := m.entries[m.follow(absPath)]
	if !ok {
		return nil, fmt.Errorf("stat path: %w", fs.ErrNotExist)
	}
	info := &mockFileInfo{
		name:    filepath.Base(absPath),
		isDir:   entry.IsDirectory,
		modTime: entry.ModTime,
	}
	return nav.NewPath(absPath, entry.IsDirectory, info), nil
}

func (m *MockFilesystemManager) Exists(path string) bool {
	_, ok := m.entries[m.follow(m.abs(path))]
	return ok
}

func (m *MockFilesystemManager) Canonicalize(path string) (string, error) {
	resolved := m.follow(m.abs(path))
	if _, ok := m.entries[resolved]; !ok {
		return "", fmt.Errorf("resolving symlinks: %w", fs.ErrNotExist)
	}
	return resolved, nil
}

func (m *MockFilesystemManager) IsExcluded(absPath string) bool {
	return m.excluded[absPath]
}

func (m *MockFilesystemManager) HomeDir() (string, error) {
	if m.HomeErr != nil {
		return "", m.HomeErr
	}
	if strings.TrimSpace(m.Home) == "" {
		return "", errors.New("home directory unknown")
	}
	return m.Home, nil
}

// mockFileInfo implements fs.FileInfo
type mockFileInfo struct {
	name    string
	isDir   bool
	modTime time.Time
}

func (i *mockFileInfo) Name() string       { return i.name }
func (i *mockFileInfo) Size() int64        { return 0 }
func (i *mockFileInfo) ModTime() time.Time { return i.modTime }
func (i *mockFileInfo) IsDir() bool        { return i.isDir }
func (i *mockFileInfo) Sys() any           { return nil }

func (i *mockFileInfo) Mode() fs.FileMode {
	if i.isDir {
		return fs.ModeDir | 0755
	}
	return 0644
}

// Compile-time check
var _ nav.FilesystemManager = (*MockFilesystemManager)(nil)
