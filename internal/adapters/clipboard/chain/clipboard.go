package chain

import (
	"context"
	"errors"
	"fmt"
	"io"

	osc52clipboard "github.com/bnema/betterprompt-cli/internal/adapters/clipboard/osc52"
	systemclipboard "github.com/bnema/betterprompt-cli/internal/adapters/clipboard/system"
	"github.com/bnema/betterprompt-cli/internal/ports"
)

type Clipboard struct {
	primary  ports.Clipboard
	fallback ports.Clipboard
}

var _ ports.Clipboard = (*Clipboard)(nil)

var (
	errNilPrimaryClipboard  = errors.New("primary clipboard is nil")
	errNilFallbackClipboard = errors.New("fallback clipboard is nil")
)

func New(primary ports.Clipboard, fallback ports.Clipboard) *Clipboard {
	c, err := NewChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return c
}

func NewChecked(primary ports.Clipboard, fallback ports.Clipboard) (*Clipboard, error) {
	if primary == nil {
		return nil, errNilPrimaryClipboard
	}
	if fallback == nil {
		return nil, errNilFallbackClipboard
	}

	return &Clipboard{primary: primary, fallback: fallback}, nil
}

// NewSystemFirstWithOSC52Fallback tries the OS clipboard and falls back to an
// OSC 52 sequence written to terminal.
func NewSystemFirstWithOSC52Fallback(terminal io.Writer) (*Clipboard, error) {
	return NewChecked(systemclipboard.New(), osc52clipboard.New(terminal))
}

func (c *Clipboard) Copy(ctx context.Context, text string) error {
	err := c.primary.Copy(ctx, text)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := c.fallback.Copy(ctx, text)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary clipboard copy failed: %w; fallback clipboard copy failed: %w", err, fallbackErr)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
