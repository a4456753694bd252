package cmd

import (
	"vien/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:     "create [interpreter]",
	Aliases: []string{"init"},
	Short:   "Creates the virtual environment of the project",
	Long: `Creates the virtual environment of the project with "<interpreter> -m venv".

The interpreter can be a version ("3.12" means python3.12), an executable name
looked up in PATH or a path. Without one, the interpreter from ~/.vien.yaml
is used, python3 if none is configured.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		handler, err := app.InjectCreateCommandHandler(settings)
		if err != nil {
			return err
		}
		return handler.Handle(cmd.Context(), optionalArg(args))
	},
}

func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
