package cmd

import (
	"github.com/bnema/betterprompt-cli/internal/adapters/render/form"
	"github.com/spf13/cobra"
)

func newTUICmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive prompt form",
		Long:  "Open the interactive prompt form. Ctrl+Enter (or Ctrl+S) generates, Ctrl+C copies a shown result, Esc quits.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, app)
		},
	}
}

func runTUI(cmd *cobra.Command, app *app) error {
	controller := app.newController(app.terminalLogger())
	return form.Run(cmd.Context(), controller, form.Options{AltScreen: true})
}
