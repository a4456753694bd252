package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vien/internal/core/domain"
	"vien/internal/ports"
)

var _ ports.FileSystem = (*OsFileSystem)(nil)

type OsFileSystem struct {
	homeDir string
}

func ProvideOsFileSystem(settings domain.Settings) *OsFileSystem {
	return &OsFileSystem{homeDir: settings.HomeDir}
}

func (f *OsFileSystem) ReadFile(path string) ([]byte, error) {
	path, err := f.expandHome(path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// EnsureDirExists creates the parent directory of path.
func (f *OsFileSystem) EnsureDirExists(path string) error {
	path, err := f.expandHome(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

func (f *OsFileSystem) FileExists(path string) (bool, error) {
	path, err := f.expandHome(path)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if file exists: %w", err)
}

func (f *OsFileSystem) RemoveAll(path string) error {
	path, err := f.expandHome(path)
	if err != nil {
		return err
	}
	if path == "" || path == string(filepath.Separator) {
		return fmt.Errorf("refusing to remove '%s'", path)
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to remove directory: %w", err)
	}
	return nil
}

func (f *OsFileSystem) expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	if f.homeDir == "" {
		return "", fmt.Errorf("failed to expand '%s': user home directory is unknown", path)
	}
	return filepath.Join(f.homeDir, path[1:]), nil
}
