package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/bnema/betterprompt-cli/internal/adapters/api"
	"github.com/bnema/betterprompt-cli/internal/config"
	"github.com/bnema/betterprompt-cli/internal/domain"
	"github.com/bnema/betterprompt-cli/internal/ports"
	portmocks "github.com/bnema/betterprompt-cli/internal/ports/mocks"
	"github.com/bnema/betterprompt-cli/internal/version"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixServer struct {
	*httptest.Server
	calls   atomic.Int32
	prompts chan string
}

func newFixServer(t *testing.T, status int, body string) *fixServer {
	t.Helper()

	s := &fixServer{prompts: make(chan string, 8)}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls.Add(1)

		var request struct {
			Prompt string `json:"prompt"`
		}
		_ = json.NewDecoder(r.Body).Decode(&request)
		s.prompts <- request.Prompt

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(s.Close)

	t.Setenv("BP_CLIENT_ENDPOINT", s.URL+"/api/fix-prompt")

	return s
}

func TestVersionPrintsVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "bp "+version.Version+" ("))

	stdout, _, err = executeCLI(t, t.TempDir(), "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", stdout)
}

func TestFixPrintsImprovedPrompt(t *testing.T) {
	server := newFixServer(t, http.StatusOK, `{"improved_prompt":"Title\n\n1. First\n2. Second"}`)

	stdout, _, err := executeCLI(t, t.TempDir(), "fix", "write", "about", "dogs")
	require.NoError(t, err)
	assert.Equal(t, "Title\n\n1. First\n2. Second\n", stdout)
	assert.Equal(t, "write about dogs", <-server.prompts)
}

func TestFixReadsPromptFromStdin(t *testing.T) {
	server := newFixServer(t, http.StatusOK, `{"improved_prompt":"Better"}`)

	stdout, _, err := executeCLIWithInput(t, t.TempDir(), "  rough prompt\n", "fix")
	require.NoError(t, err)
	assert.Equal(t, "Better\n", stdout)
	assert.Equal(t, "rough prompt", <-server.prompts)
}

func TestFixEmptyPromptMakesNoRequest(t *testing.T) {
	server := newFixServer(t, http.StatusOK, `{"improved_prompt":"unused"}`)

	_, _, err := executeCLI(t, t.TempDir(), "fix", "   ")
	require.Error(t, err)
	assert.Equal(t, domain.MessageValidation, err.Error())
	assert.Zero(t, server.calls.Load())
}

func TestFixShowsServerErrorMessage(t *testing.T) {
	newFixServer(t, http.StatusInternalServerError, `{"error":"bad"}`)

	_, _, err := executeCLI(t, t.TempDir(), "fix", "prompt")
	require.Error(t, err)
	assert.Equal(t, "bad", err.Error())
}

func TestFixSynthesizesServerErrorWithoutBody(t *testing.T) {
	newFixServer(t, http.StatusInternalServerError, "")

	_, _, err := executeCLI(t, t.TempDir(), "fix", "prompt")
	require.Error(t, err)
	assert.Equal(t, "Server error: 500", err.Error())
}

func TestFixNetworkFailureShowsFixedMessage(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	t.Setenv("BP_CLIENT_ENDPOINT", server.URL)
	server.Close()

	_, _, err := executeCLI(t, t.TempDir(), "fix", "prompt")
	require.Error(t, err)
	assert.Equal(t, domain.MessageNetwork, err.Error())
}

func TestFixJSONOutput(t *testing.T) {
	newFixServer(t, http.StatusOK, `{"improved_prompt":"Better"}`)

	stdout, _, err := executeCLI(t, t.TempDir(), "fix", "--json", "prompt")
	require.NoError(t, err)
	assert.JSONEq(t, `{"improved_prompt":"Better"}`, stdout)
}

func TestFixRejectsJSONWithRender(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "fix", "--json", "--render", "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be combined")
}

func TestFixRenderOutputsMarkdown(t *testing.T) {
	newFixServer(t, http.StatusOK, `{"improved_prompt":"# Title\n\n- first item"}`)

	stdout, _, err := executeCLI(t, t.TempDir(), "fix", "--render", "prompt")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Title")
	assert.Contains(t, stdout, "first item")
}

func TestFixCopyWritesClipboard(t *testing.T) {
	server := newFixServer(t, http.StatusOK, `{"improved_prompt":"Better"}`)

	clipboard := portmocks.NewMockClipboard(t)
	clipboard.EXPECT().Copy(mock.Anything, "Better").Return(nil).Once()

	stdout, stderr, err := executeWithApp(t, newTestApp(t, server.URL, clipboard), nil, "fix", "--copy", "prompt")
	require.NoError(t, err)
	assert.Equal(t, "Better\n", stdout)
	assert.Contains(t, stderr, domain.LabelCopied)
}

func TestFixCopyFailureReportsMessage(t *testing.T) {
	server := newFixServer(t, http.StatusOK, `{"improved_prompt":"Better"}`)

	clipboard := portmocks.NewMockClipboard(t)
	clipboard.EXPECT().Copy(mock.Anything, "Better").Return(assert.AnError).Once()

	stdout, _, err := executeWithApp(t, newTestApp(t, server.URL, clipboard), nil, "fix", "--copy", "prompt")
	require.Error(t, err)
	assert.Equal(t, domain.MessageCopyFailed, err.Error())
	assert.Equal(t, "Better\n", stdout)
}

func TestConfigInitThenShow(t *testing.T) {
	home := t.TempDir()
	t.Setenv("AZURE_OPENAI_API_KEY", "super-secret")

	stdout, _, err := executeCLI(t, home, "config", "init")
	require.NoError(t, err)

	path := filepath.Join(home, ".betterprompt", "config.toml")
	assert.Contains(t, stdout, path)
	_, err = os.Stat(path)
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[azure]")
	assert.Contains(t, stdout, "********")
	assert.NotContains(t, stdout, "super-secret")
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "config", "init")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "config", "init")
	require.ErrorIs(t, err, config.ErrConfigExists)

	_, _, err = executeCLI(t, home, "config", "init", "--force")
	require.NoError(t, err)
}

func TestBrokenConfigIsReported(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".betterprompt"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".betterprompt", "config.toml"), []byte("version = 9\n"), 0o600))

	_, _, err := executeCLI(t, home, "config", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config schema version 9")

	_, _, err = executeCLI(t, home, "config", "init", "--force")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "config", "show")
	require.NoError(t, err)
}

func TestServeRequiresAzureSettings(t *testing.T) {
	t.Setenv("AZURE_OPENAI_ENDPOINT", "")
	t.Setenv("BP_AZURE_ENDPOINT", "")

	_, _, err := executeCLI(t, t.TempDir(), "serve", "--addr", "127.0.0.1:0")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingAzureEndpoint)
}

func newTestApp(t *testing.T, endpoint string, clipboard ports.Clipboard) *app {
	t.Helper()

	fixer, err := api.NewClient(endpoint, nil)
	require.NoError(t, err)

	return &app{
		cfg:       config.Default(),
		logger:    zap.NewNop(),
		fixer:     fixer,
		clipboard: clipboard,
		clock:     ports.SystemClock{},
	}
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	return executeCLIWithInput(t, home, "", args...)
}

func executeCLIWithInput(t *testing.T, home, input string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("BP_LOG_OUTPUT", filepath.Join(home, "bp.log"))

	return execute(t, newRootCmd(), strings.NewReader(input), args...)
}

func executeWithApp(t *testing.T, app *app, input io.Reader, args ...string) (string, string, error) {
	t.Helper()
	return execute(t, newRootCmdWithApp(app, nil), input, args...)
}

func execute(t *testing.T, root *cobra.Command, input io.Reader, args ...string) (string, string, error) {
	t.Helper()

	if input == nil {
		input = strings.NewReader("")
	}

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(input)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
