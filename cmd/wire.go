package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/bnema/betterprompt-cli/internal/adapters/api"
	chainclipboard "github.com/bnema/betterprompt-cli/internal/adapters/clipboard/chain"
	systemclipboard "github.com/bnema/betterprompt-cli/internal/adapters/clipboard/system"
	"github.com/bnema/betterprompt-cli/internal/application"
	"github.com/bnema/betterprompt-cli/internal/config"
	"github.com/bnema/betterprompt-cli/internal/logging"
	"github.com/bnema/betterprompt-cli/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	cfg       config.Config
	logger    *zap.Logger
	fixer     ports.PromptFixer
	clipboard ports.Clipboard
	clock     ports.Clock
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	fixer, err := api.NewClient(cfg.Client.Endpoint, &http.Client{Timeout: cfg.Client.Timeout})
	if err != nil {
		return nil, fmt.Errorf("wire fix-prompt client: %w", err)
	}

	clipboard, err := newClipboard(cfg.Clipboard, controllingTerminal(os.OpenFile))
	if err != nil {
		return nil, fmt.Errorf("wire clipboard: %w", err)
	}

	return &app{
		cfg:       cfg,
		logger:    logger,
		fixer:     fixer,
		clipboard: clipboard,
		clock:     ports.SystemClock{},
	}, nil
}

func newClipboard(cfg config.ClipboardConfig, terminal io.Writer) (ports.Clipboard, error) {
	if !cfg.OSC52 {
		return systemclipboard.New(), nil
	}

	return chainclipboard.NewSystemFirstWithOSC52Fallback(terminal)
}

// controllingTerminal opens the process's tty for OSC52 sequences so they never
// interleave with the form renderer on stdout. Stderr is used when there is no
// controlling terminal.
func controllingTerminal(open func(name string, flag int, perm os.FileMode) (*os.File, error)) *os.File {
	tty, err := open("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return os.Stderr
	}

	return tty
}

func (a *app) newController(logger *zap.Logger) *application.Controller {
	return application.NewController(a.fixer, a.clipboard, a.clock, logger)
}

// terminalLogger keeps log lines off the terminal the form draws on.
func (a *app) terminalLogger() *zap.Logger {
	switch a.cfg.Log.Output {
	case "", "stderr", "stdout":
		return zap.NewNop()
	default:
		return a.logger
	}
}
