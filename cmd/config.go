package cmd

import (
	"fmt"

	"github.com/bnema/betterprompt-cli/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *app, loadErr error) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage ~/.betterprompt/config.toml",
	}

	configCmd.AddCommand(
		newConfigInitCmd(),
		newConfigShowCmd(app, loadErr),
	)

	return configCmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.DefaultPath()
			if err != nil {
				return err
			}

			if err := config.Write(path, config.Default(), force); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return err
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return initCmd
}

func newConfigShowCmd(app *app, loadErr error) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration (secrets masked)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if loadErr != nil {
				return loadErr
			}

			data, err := config.Encode(config.Redacted(app.cfg))
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
