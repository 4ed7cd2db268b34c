package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllingTerminalOpensTTY(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tty")
	var opened string
	terminal := controllingTerminal(func(name string, flag int, perm os.FileMode) (*os.File, error) {
		opened = name
		assert.Equal(t, os.O_WRONLY, flag)
		return os.Create(path)
	})
	t.Cleanup(func() { _ = terminal.Close() })

	assert.Equal(t, "/dev/tty", opened)
	assert.Equal(t, path, terminal.Name())
	assert.NotSame(t, os.Stdout, terminal)
}

func TestControllingTerminalFallsBackToStderr(t *testing.T) {
	t.Parallel()

	terminal := controllingTerminal(func(string, int, os.FileMode) (*os.File, error) {
		return nil, errors.New("no such device or address")
	})

	require.NotNil(t, terminal)
	assert.Same(t, os.Stderr, terminal)
}
