package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/betterprompt-cli/internal/adapters/httpserver"
	"github.com/bnema/betterprompt-cli/internal/adapters/upstream/azure"
	"github.com/bnema/betterprompt-cli/internal/application"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(app *app) *cobra.Command {
	var (
		addr  string
		debug bool
	)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the fix-prompt API backed by Azure OpenAI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, app, httpserver.Options{
				Addr:           addr,
				Debug:          debug,
				AllowedOrigins: app.cfg.Server.AllowedOrigins,
			})
		},
	}

	serveCmd.Flags().StringVar(&addr, "addr", app.cfg.Server.Addr(), "Listen address")
	serveCmd.Flags().BoolVar(&debug, "debug", app.cfg.Server.Debug, "Enable gin debug mode")

	return serveCmd
}

func runServe(ctx context.Context, app *app, opts httpserver.Options) error {
	upstream, err := azure.NewClient(app.cfg.Azure, nil)
	if err != nil {
		return fmt.Errorf("configure azure openai: %w", err)
	}

	optimizer, err := application.NewOptimizerService(upstream, app.logger)
	if err != nil {
		return err
	}

	server, err := httpserver.New(optimizer, opts, app.logger)
	if err != nil {
		return err
	}

	app.logger.Info("starting BetterPrompt server",
		zap.String("addr", opts.Addr),
		zap.String("model", app.cfg.Azure.Model),
		zap.Bool("debug", opts.Debug),
	)

	return server.ListenAndServe(ctx)
}
