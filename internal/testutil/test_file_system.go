package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"vien/internal/ports"
)

var _ ports.FileSystem = (*TestFileSystem)(nil)

// TestFileSystem provides real file system operations sandboxed within a temporary directory.
// All paths are automatically resolved relative to the sandbox directory.
// Use this in tests that need to actually create and remove environment directories.
// For unit tests that mock file system calls, use MockFileSystem instead.
type TestFileSystem struct {
	baseDir string
}

// NewTestFileSystem creates a sandboxed file system within a temporary directory.
// The directory is automatically cleaned up when the test completes.
func NewTestFileSystem(t *testing.T) *TestFileSystem {
	t.Helper()
	return &TestFileSystem{baseDir: t.TempDir()}
}

// BaseDir returns the sandbox base directory path.
func (f *TestFileSystem) BaseDir() string {
	return f.baseDir
}

// Path returns where path lives on the real disk.
func (f *TestFileSystem) Path(path string) string {
	return f.resolvePath(path)
}

// resolvePath converts a path to be relative to the sandbox directory.
// "~" maps to the sandbox root.
func (f *TestFileSystem) resolvePath(path string) string {
	if path == "~" || (len(path) > 1 && path[:2] == "~/") {
		path = path[1:]
	}
	cleanPath := filepath.Clean(path)
	if filepath.IsAbs(cleanPath) {
		cleanPath = cleanPath[1:]
	}
	return filepath.Join(f.baseDir, cleanPath)
}

func (f *TestFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(f.resolvePath(path))
}

func (f *TestFileSystem) EnsureDirExists(path string) error {
	return os.MkdirAll(filepath.Dir(f.resolvePath(path)), 0700)
}

func (f *TestFileSystem) FileExists(path string) (bool, error) {
	_, err := os.Stat(f.resolvePath(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (f *TestFileSystem) RemoveAll(path string) error {
	return os.RemoveAll(f.resolvePath(path))
}

// WriteFile creates a fixture file, including its parent directories.
func (f *TestFileSystem) WriteFile(t *testing.T, path string, content string) {
	t.Helper()
	resolved := f.resolvePath(path)
	if err := os.MkdirAll(filepath.Dir(resolved), 0700); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(resolved, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// MkdirAll creates a fixture directory.
func (f *TestFileSystem) MkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(f.resolvePath(path), 0700); err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
}
