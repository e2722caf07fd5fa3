package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOSFilesystemManager_Resolve(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	m := NewOSFilesystemManager(nil)

	t.Run("directory", func(t *testing.T) {
		p, err := m.Resolve(dir)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if !p.IsDir() || p.IsRegular() {
			t.Errorf("Resolve(%s) IsDir=%v IsRegular=%v, want directory", dir, p.IsDir(), p.IsRegular())
		}
	})

	t.Run("regular file", func(t *testing.T) {
		p, err := m.Resolve(file)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if p.IsDir() || !p.IsRegular() {
			t.Errorf("Resolve(%s) IsDir=%v IsRegular=%v, want regular file", file, p.IsDir(), p.IsRegular())
		}
		if p.String() != file {
			t.Errorf("String() = %q, want %q", p.String(), file)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		if _, err := m.Resolve(filepath.Join(dir, "gone")); err == nil {
			t.Error("Resolve() expected error for missing path")
		}
	})
}

func TestOSFilesystemManager_Exists(t *testing.T) {
	dir := t.TempDir()
	m := NewOSFilesystemManager(nil)

	if !m.Exists(dir) {
		t.Errorf("Exists(%s) = false, want true", dir)
	}
	if m.Exists(filepath.Join(dir, "missing")) {
		t.Error("Exists(missing) = true, want false")
	}

	link := filepath.Join(dir, "dangling")
	if err := os.Symlink(filepath.Join(dir, "nowhere"), link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	if m.Exists(link) {
		t.Error("Exists(dangling symlink) = true, want false")
	}
}

func TestOSFilesystemManager_Canonicalize(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "real")
	if err := os.Mkdir(target, 0755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	m := NewOSFilesystemManager(nil)

	got, err := m.Canonicalize(link)
	if err != nil {
		t.Fatalf("Canonicalize() error = %v", err)
	}
	if got != target {
		t.Errorf("Canonicalize(%s) = %q, want %q", link, got, target)
	}

	if _, err := m.Canonicalize(filepath.Join(dir, "missing")); err == nil {
		t.Error("Canonicalize() expected error for missing path")
	}
}

func TestOSFilesystemManager_IsExcluded(t *testing.T) {
	m := NewOSFilesystemManager([]string{".git"})

	if !m.IsExcluded("/src/project/.git") {
		t.Error("IsExcluded(.git) = false, want true")
	}
	if m.IsExcluded("/src/project") {
		t.Error("IsExcluded(/src/project) = true, want false")
	}
}
