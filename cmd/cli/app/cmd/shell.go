package cmd

import (
	"fmt"
	"strings"
	"time"

	"vien/cmd/cli/app"
	"vien/internal/core/handler"

	"github.com/spf13/cobra"
)

var (
	shellInput   string
	shellDelay   float64
	shellTimeout float64
)

var inputEscapes = strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\r`, "\r", `\t`, "\t")

func init() {
	flags := shellCmd.Flags()
	flags.StringVar(&shellInput, "input", "", "Text written to the shell's stdin, \\n escapes allowed")
	flags.Float64Var(&shellDelay, "delay", 0, "Seconds to wait before writing --input")
	flags.Float64Var(&shellTimeout, "timeout", 0, "Kill the shell after this many seconds")
	for _, name := range []string{"input", "delay", "timeout"} {
		_ = flags.MarkHidden(name)
	}
	rootCmd.AddCommand(shellCmd)
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Opens a bash with the virtual environment activated",
	Long: `Opens an interactive bash with the virtual environment activated. The
prompt is prefixed with the project name. ~/.bashrc is loaded when it exists.
Leave the shell with "exit" or Ctrl-D.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		options, err := shellOptions(cmd)
		if err != nil {
			return err
		}
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		handler, err := app.InjectShellCommandHandler(settings)
		if err != nil {
			return err
		}
		exitCode, err := handler.Handle(cmd.Context(), options)
		if err != nil {
			return err
		}
		return exitStatus(exitCode)
	},
}

func shellOptions(cmd *cobra.Command) (handler.ShellOptions, error) {
	delay, err := secondsFlag("delay", shellDelay)
	if err != nil {
		return handler.ShellOptions{}, err
	}
	timeout, err := secondsFlag("timeout", shellTimeout)
	if err != nil {
		return handler.ShellOptions{}, err
	}

	options := handler.ShellOptions{Delay: delay, Timeout: timeout}
	if cmd.Flags().Changed("input") {
		options.Input = []byte(inputEscapes.Replace(shellInput))
	}
	return options, nil
}

// secondsFlag converts a flag given in (fractional) seconds.
func secondsFlag(name string, seconds float64) (time.Duration, error) {
	if seconds < 0 {
		return 0, fmt.Errorf("--%s must not be negative", name)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}
