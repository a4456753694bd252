package cmd

import (
	"vien/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove"},
	Short:   "Deletes the virtual environment of the project",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		handler, err := app.InjectDeleteCommandHandler(settings)
		if err != nil {
			return err
		}
		return handler.Handle()
	},
}
