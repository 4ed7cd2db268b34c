package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:5000/api/fix-prompt", cfg.Client.Endpoint)
	assert.Equal(t, 30*time.Second, cfg.Client.Timeout)
	assert.True(t, cfg.Clipboard.OSC52)
	assert.Equal(t, "0.0.0.0:5000", cfg.Server.Addr())
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "o1-mini", cfg.Azure.Model)
	assert.Equal(t, 2048, cfg.Azure.MaxCompletionTokens)
	assert.Equal(t, 30*time.Second, cfg.Azure.RequestTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "stderr", cfg.Log.Output)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, ".betterprompt", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(`version = 1

[client]
endpoint = "https://prompts.example.com/api/fix-prompt"
timeout = "5s"

[clipboard]
osc52 = false

[azure]
endpoint = "https://example.openai.azure.com/openai/deployments/o1/chat/completions"
api_key = "file-key"
model = "gpt-4o"
`), 0o600))

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "https://prompts.example.com/api/fix-prompt", cfg.Client.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.Client.Timeout)
	assert.False(t, cfg.Clipboard.OSC52)
	assert.Equal(t, "file-key", cfg.Azure.APIKey)
	assert.Equal(t, "gpt-4o", cfg.Azure.Model)
	require.NoError(t, cfg.Azure.Validate())
}

func TestLoadHonorsUnprefixedEnvironmentNames(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("AZURE_OPENAI_ENDPOINT", "https://env.openai.azure.com")
	t.Setenv("AZURE_OPENAI_API_KEY", "env-key")
	t.Setenv("MODEL_NAME", "o3-mini")
	t.Setenv("MAX_COMPLETION_TOKENS", "4096")
	t.Setenv("REQUEST_TIMEOUT", "45")
	t.Setenv("PORT", "8080")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "https://env.openai.azure.com", cfg.Azure.Endpoint)
	assert.Equal(t, "env-key", cfg.Azure.APIKey)
	assert.Equal(t, "o3-mini", cfg.Azure.Model)
	assert.Equal(t, 4096, cfg.Azure.MaxCompletionTokens)
	assert.Equal(t, 45*time.Second, cfg.Azure.RequestTimeout)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadServerDebugIgnoresGenericDebugVariable(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DEBUG", "true")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.False(t, cfg.Server.Debug)

	t.Setenv("FLASK_DEBUG", "true")

	cfg, err = Load(viper.New())
	require.NoError(t, err)
	assert.True(t, cfg.Server.Debug)
}

func TestLoadPrefixedEnvironmentOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BP_CLIENT_ENDPOINT", "http://localhost:9999/api/fix-prompt")
	t.Setenv("BP_AZURE_MODEL", "gpt-4.1")
	t.Setenv("MODEL_NAME", "ignored")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/api/fix-prompt", cfg.Client.Endpoint)
	assert.Equal(t, "gpt-4.1", cfg.Azure.Model)
}

func TestLoadRejectsNewerSchemaVersion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, ".betterprompt", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("version = 2\n"), 0o600))

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config schema version 2")
}

func TestAzureValidateRequiresEndpointAndKey(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, AzureConfig{APIKey: "key"}.Validate(), ErrMissingAzureEndpoint)
	require.ErrorIs(t, AzureConfig{Endpoint: "https://x"}.Validate(), ErrMissingAzureAPIKey)
	require.NoError(t, AzureConfig{Endpoint: "https://x", APIKey: "key"}.Validate())
}

func TestWriteThenLoadRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := DefaultPath()
	require.NoError(t, err)

	cfg := Default()
	cfg.Client.Endpoint = "https://prompts.example.com/api/fix-prompt"
	cfg.Azure.Endpoint = "https://example.openai.azure.com"
	cfg.Azure.APIKey = "written-key"
	cfg.Server.Port = 7000

	require.NoError(t, Write(path, cfg, false))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestWriteRefusesToOverwriteWithoutFlag(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0o600))

	err := Write(path, Default(), false)
	require.ErrorIs(t, err, ErrConfigExists)

	require.NoError(t, Write(path, Default(), true))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestRedactedMasksAPIKey(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Azure.APIKey = "secret"

	assert.Equal(t, "********", Redacted(cfg).Azure.APIKey)
	assert.Equal(t, "secret", cfg.Azure.APIKey)
}
