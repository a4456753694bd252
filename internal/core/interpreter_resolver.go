package core

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"vien/internal/core/domain"
	"vien/internal/ports"
)

var versionPattern = regexp.MustCompile(`^\d+(\.\d+)*$`)

// InterpreterResolver turns the interpreter argument of create/recreate into an executable path.
type InterpreterResolver struct {
	commandRunner    ports.CommandRunner
	fileSystem       ports.FileSystem
	configRepository ConfigRepository
}

func ProvideInterpreterResolver(
	commandRunner ports.CommandRunner,
	fileSystem ports.FileSystem,
	configRepository ConfigRepository,
) InterpreterResolver {
	return InterpreterResolver{
		commandRunner:    commandRunner,
		fileSystem:       fileSystem,
		configRepository: configRepository,
	}
}

// Resolve accepts an empty name (configured default), a bare version such as "3.12"
// (python3.12), a path, or an executable name looked up in PATH.
func (r *InterpreterResolver) Resolve(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		config, err := r.configRepository.LoadConfig()
		if err != nil {
			return "", err
		}
		name = config.DefaultInterpreter()
	}

	if versionPattern.MatchString(name) {
		name = "python" + name
	}

	if strings.ContainsRune(name, filepath.Separator) {
		exists, err := r.fileSystem.FileExists(name)
		if err != nil {
			return "", domain.NewError(domain.KindInterpreterNotResolvable, name, err)
		}
		if !exists {
			return "", domain.NewError(domain.KindInterpreterNotResolvable, name, fmt.Errorf("file does not exist"))
		}
		return name, nil
	}

	path, err := r.commandRunner.LookPath(name)
	if err != nil {
		return "", domain.NewError(domain.KindInterpreterNotResolvable, name, fmt.Errorf("not found in PATH"))
	}
	return path, nil
}
