package cmd

import (
	"vien/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pathCmd)
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Prints the directory of the project's virtual environment",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		handler, err := app.InjectPathCommandHandler(settings)
		if err != nil {
			return err
		}
		return handler.Handle(cmd.OutOrStdout())
	},
}
