package system

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/bnema/betterprompt-cli/internal/ports"
)

var ErrUnavailable = errors.New("system clipboard unavailable")

type writeFunc func(text string) error

// Clipboard writes to the OS clipboard (pbcopy, wl-copy, xclip, xsel or the
// Windows API, whichever atotto/clipboard finds).
type Clipboard struct {
	write     writeFunc
	available func() bool
}

var _ ports.Clipboard = (*Clipboard)(nil)

func New() *Clipboard {
	return &Clipboard{
		write:     clipboard.WriteAll,
		available: func() bool { return !clipboard.Unsupported },
	}
}

func (c *Clipboard) Copy(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !c.available() {
		return ErrUnavailable
	}

	if err := c.write(text); err != nil {
		return fmt.Errorf("write system clipboard: %w", err)
	}

	return nil
}
