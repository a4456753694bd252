package cmd

import (
	"vien/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(recreateCmd)
}

var recreateCmd = &cobra.Command{
	Use:     "recreate [interpreter]",
	Aliases: []string{"reinit"},
	Short:   "Deletes the virtual environment if there is one and creates it again",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		handler, err := app.InjectRecreateCommandHandler(settings)
		if err != nil {
			return err
		}
		return handler.Handle(cmd.Context(), optionalArg(args))
	},
}
