package cmd

import (
	"vien/cmd/cli/app"

	"github.com/spf13/cobra"
)

var runTimeout float64

func init() {
	runCmd.Flags().Float64Var(&runTimeout, "timeout", 0, "Kill the command after this many seconds")
	// everything after the command belongs to the command
	runCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [--timeout SECONDS] <command> [args...]",
	Short: "Runs a command inside the virtual environment",
	Long: `Runs a command with the virtual environment activated and exits with
the command's exit code. Arguments are passed on verbatim.`,
	Example: `  vien run python -m pytest -k "not slow"
  vien run --timeout 60 python train.py`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout, err := secondsFlag("timeout", runTimeout)
		if err != nil {
			return err
		}
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		handler, err := app.InjectRunCommandHandler(settings)
		if err != nil {
			return err
		}
		exitCode, err := handler.Handle(cmd.Context(), args, timeout)
		if err != nil {
			return err
		}
		return exitStatus(exitCode)
	},
}
