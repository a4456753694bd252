//go:build wireinject
// +build wireinject

package app

import (
	"vien/internal/adapters/command_runner"
	"vien/internal/adapters/filesystem"
	"vien/internal/adapters/terminal"
	"vien/internal/cli/logging"
	"vien/internal/core"
	"vien/internal/core/domain"
	"vien/internal/core/handler"
	"vien/internal/ports"

	"github.com/google/wire"
)

var Adapter = wire.NewSet(
	logging.ProvideLogger,
	command_runner.ProvideOsCommandRunner,
	wire.Bind(new(ports.CommandRunner), new(*command_runner.OsCommandRunner)),
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
	terminal.ProvideTerminalInput,
	wire.Bind(new(ports.TerminalInput), new(*terminal.TerminalInput)),
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	core.ProvideFileSystemConfigRepository,
	wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
	core.ProvideEnvironmentRef,
	core.ProvideInterpreterResolver,
	core.ProvideEnvironmentManager,
	core.ProvidePromptResolver,
)

// CommandHandlerSet combines all sets needed for command handlers
var CommandHandlerSet = wire.NewSet(
	Adapter,
	CoreSet,
)

func InjectCreateCommandHandler(settings domain.Settings) (handler.CreateCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideCreateCommandHandler,
	)
	return handler.CreateCommandHandler{}, nil
}

func InjectDeleteCommandHandler(settings domain.Settings) (handler.DeleteCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideDeleteCommandHandler,
	)
	return handler.DeleteCommandHandler{}, nil
}

func InjectRecreateCommandHandler(settings domain.Settings) (handler.RecreateCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideRecreateCommandHandler,
	)
	return handler.RecreateCommandHandler{}, nil
}

func InjectRunCommandHandler(settings domain.Settings) (handler.RunCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideRunCommandHandler,
	)
	return handler.RunCommandHandler{}, nil
}

func InjectShellCommandHandler(settings domain.Settings) (handler.ShellCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideShellCommandHandler,
	)
	return handler.ShellCommandHandler{}, nil
}

func InjectPathCommandHandler(settings domain.Settings) (handler.PathCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvidePathCommandHandler,
	)
	return handler.PathCommandHandler{}, nil
}
