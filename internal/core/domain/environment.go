package domain

import (
	"path/filepath"
	"strings"
)

// VenvSuffix is appended to the project name to form the environment directory name.
// Destructive operations refuse directories whose name lacks it.
const VenvSuffix = "_venv"

// EnvironmentRef locates the virtual environment belonging to a project directory.
type EnvironmentRef struct {
	ProjectDir string
	RootDir    string
	EnvDir     string
}

func NewEnvironmentRef(projectDir, rootDir string) EnvironmentRef {
	projectDir = filepath.Clean(projectDir)
	rootDir = filepath.Clean(rootDir)
	return EnvironmentRef{
		ProjectDir: projectDir,
		RootDir:    rootDir,
		EnvDir:     filepath.Join(rootDir, filepath.Base(projectDir)+VenvSuffix),
	}
}

// Name is the project directory basename, used as the prompt label.
func (e EnvironmentRef) Name() string {
	return filepath.Base(e.ProjectDir)
}

func (e EnvironmentRef) BinDir() string {
	return filepath.Join(e.EnvDir, "bin")
}

func (e EnvironmentRef) Python() string {
	return filepath.Join(e.BinDir(), "python")
}

func (e EnvironmentRef) ActivateScript() string {
	return filepath.Join(e.BinDir(), "activate")
}

// HasSafetySuffix reports whether the environment directory name carries VenvSuffix.
func (e EnvironmentRef) HasSafetySuffix() bool {
	return strings.Contains(filepath.Base(e.EnvDir), VenvSuffix)
}
