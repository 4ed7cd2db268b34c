package osc52

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	osc52 "github.com/aymanbagabas/go-osc52/v2"
	"github.com/bnema/betterprompt-cli/internal/ports"
	"github.com/mattn/go-isatty"
)

var ErrNotTerminal = errors.New("osc52 output is not a terminal")

type multiplexer int

const (
	muxNone multiplexer = iota
	muxTmux
	muxScreen
)

// Clipboard asks the terminal emulator to set the clipboard with an OSC 52
// escape sequence. It works over SSH and inside tmux/screen where no OS
// clipboard tool is reachable.
type Clipboard struct {
	out io.Writer
	mux multiplexer
	mu  sync.Mutex
}

var _ ports.Clipboard = (*Clipboard)(nil)

func New(out io.Writer) *Clipboard {
	return &Clipboard{out: out, mux: detectMultiplexer(os.Getenv)}
}

func (c *Clipboard) Copy(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if f, ok := c.out.(*os.File); ok && !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return ErrNotTerminal
	}

	seq := osc52.New(text)
	switch c.mux {
	case muxTmux:
		seq = seq.Tmux()
	case muxScreen:
		seq = seq.Screen()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := seq.WriteTo(c.out); err != nil {
		return fmt.Errorf("write osc52 sequence: %w", err)
	}

	return nil
}

func detectMultiplexer(getenv func(string) string) multiplexer {
	if getenv("TMUX") != "" {
		return muxTmux
	}
	if strings.HasPrefix(getenv("TERM"), "screen") {
		return muxScreen
	}
	return muxNone
}
