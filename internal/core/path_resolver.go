package core

import (
	"os"
	"path/filepath"
	"strings"

	"vien/internal/core/domain"
)

// DefaultRootDirName is the directory under the user's home holding all environments.
const DefaultRootDirName = ".vien"

// ProvideEnvironmentRef resolves the environment for the configured project directory.
func ProvideEnvironmentRef(settings domain.Settings) domain.EnvironmentRef {
	return ResolveEnvironment(settings.WorkingDir, settings.RootOverride, settings.HomeDir, settings.Env)
}

// ResolveEnvironment maps a project directory to its environment directory.
// It has no side effects: the environment variables are passed in, not read.
func ResolveEnvironment(cwd, rootOverride, home string, env map[string]string) domain.EnvironmentRef {
	return domain.NewEnvironmentRef(cwd, ResolveRoot(cwd, rootOverride, home, env))
}

// ResolveRoot returns the override with variables and a leading "~" expanded,
// or home/.vien when no override is set. Relative results are anchored at cwd.
func ResolveRoot(cwd, rootOverride, home string, env map[string]string) string {
	if strings.TrimSpace(rootOverride) == "" {
		return filepath.Join(home, DefaultRootDirName)
	}

	root := os.Expand(rootOverride, func(name string) string {
		if value, ok := env[name]; ok {
			return value
		}
		if name == "HOME" {
			return home
		}
		return ""
	})
	root = expandUserHome(root, home)

	if !filepath.IsAbs(root) {
		root = filepath.Join(cwd, root)
	}
	return filepath.Clean(root)
}

func expandUserHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
