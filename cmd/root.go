package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	app, err := wireApp()
	return newRootCmdWithApp(app, err)
}

func newRootCmdWithApp(app *app, wireErr error) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bp",
		Short:         "BetterPrompt (bp): turn rough prompts into well-structured ones",
		Long:          "bp (BetterPrompt) sends a rough prompt to a fix-prompt service and shows the improved version, ready to copy. Without a subcommand it opens the interactive form.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.logger.Sync()
			}
		},
	}

	if wireErr != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return wireErr
		}
		rootCmd.AddCommand(newVersionCmd(), newConfigCmd(nil, wireErr))
		return rootCmd
	}

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runTUI(cmd, app)
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newTUICmd(app),
		newFixCmd(app),
		newServeCmd(app),
		newConfigCmd(app, nil),
	)

	return rootCmd
}
