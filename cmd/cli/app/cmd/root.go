package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"vien/internal/cli/output"
	"vien/internal/core/domain"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sys/unix"
)

const (
	rootKey    = "root"
	rootEnvVar = "VIENDIR"
	promptVar  = "PS1"

	timeoutExitCode = 124
)

var (
	verbose    bool
	projectDir string
	config     = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "vien",
	Short: "Python virtual environments stored outside the project directory",
	Long: `vien keeps one Python virtual environment per project in a shared root
directory. The environment of a project named "myproject" lives in
<root>/myproject_venv.

The root defaults to ~/.vien and can be changed with --root or the VIENDIR
environment variable. Defaults are read from ~/.vien.yaml.

Common workflows:
  vien create 3.12            Create the environment with python3.12
  vien shell                  Open a bash with the environment activated
  vien run pytest -x          Run a command inside the environment
  vien recreate               Throw the environment away and start over`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Print diagnostic logs")
	flags.StringVarP(&projectDir, "project-dir", "C", "", "Project directory (defaults to the working directory)")
	flags.String(rootKey, "", "Directory holding the environments (env: "+rootEnvVar+")")
	_ = config.BindPFlag(rootKey, flags.Lookup(rootKey))
	_ = config.BindEnv(rootKey, rootEnvVar)
}

func Execute() {
	ctx, stop := signalContext()
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(exitCodeFor(err))
	}
}

// signalContext is cancelled by SIGTERM and SIGHUP. SIGINT is swallowed: Ctrl-C
// reaches the child through the terminal's process group and the child decides.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), unix.SIGTERM, unix.SIGHUP)
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, unix.SIGINT)
	return ctx, func() {
		signal.Stop(interrupts)
		stop()
	}
}

// exitCodeFor prints err as a single line and picks the process exit code.
func exitCodeFor(err error) int {
	var notTerminated *domain.ProcessNotTerminatedError
	if errors.As(err, &notTerminated) {
		panic(err)
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			printError(exitErr.Err)
		}
		return exitErr.Code
	}

	printError(err)
	var timeoutErr *domain.ProcessTimeoutError
	if errors.As(err, &timeoutErr) {
		return timeoutExitCode
	}
	return 1
}

func printError(err error) {
	output.PrintError(strings.Join(strings.Fields(err.Error()), " "))
}

// loadSettings takes the one snapshot of the process environment the rest of vien works from.
func loadSettings() (domain.Settings, error) {
	workingDir, err := os.Getwd()
	if err != nil {
		return domain.Settings{}, fmt.Errorf("failed to determine working directory: %w", err)
	}
	if projectDir != "" {
		workingDir, err = filepath.Abs(projectDir)
		if err != nil {
			return domain.Settings{}, fmt.Errorf("invalid project directory %s: %w", projectDir, err)
		}
		info, err := os.Stat(workingDir)
		if err != nil {
			return domain.Settings{}, fmt.Errorf("project directory %s does not exist", workingDir)
		}
		if !info.IsDir() {
			return domain.Settings{}, fmt.Errorf("project directory %s is not a directory", workingDir)
		}
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return domain.Settings{}, fmt.Errorf("failed to determine home directory: %w", err)
	}

	return domain.Settings{
		WorkingDir:      workingDir,
		HomeDir:         homeDir,
		RootOverride:    config.GetString(rootKey),
		InheritedPrompt: os.Getenv(promptVar),
		Env:             environMap(os.Environ()),
		Verbose:         verbose,
	}, nil
}

func environMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, entry := range environ {
		if key, value, ok := strings.Cut(entry, "="); ok {
			env[key] = value
		}
	}
	return env
}
