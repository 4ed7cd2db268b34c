package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".betterprompt"
	configFile = "config.toml"
	envPrefix  = "BP"
)

const (
	keyClientEndpoint  = "client.endpoint"
	keyClientTimeout   = "client.timeout"
	keyClipboardOSC52  = "clipboard.osc52"
	keyServerHost      = "server.host"
	keyServerPort      = "server.port"
	keyServerDebug     = "server.debug"
	keyServerOrigins   = "server.allowed_origins"
	keyAzureEndpoint   = "azure.endpoint"
	keyAzureAPIKey     = "azure.api_key"
	keyAzureModel      = "azure.model"
	keyAzureMaxTokens  = "azure.max_completion_tokens"
	keyAzureTimeout    = "azure.request_timeout"
	keyLogLevel        = "log.level"
	keyLogOutput       = "log.output"
	defaultModel       = "o1-mini"
	defaultMaxTokens   = 2048
	defaultTimeout     = 30 * time.Second
	defaultServerHost  = "0.0.0.0"
	defaultServerPort  = 5000
	defaultLogLevel    = "info"
	defaultLogOutput   = "stderr"
	defaultFixEndpoint = "http://127.0.0.1:5000/api/fix-prompt"
)

var (
	ErrMissingAzureEndpoint = errors.New("azure endpoint is required (set AZURE_OPENAI_ENDPOINT or azure.endpoint)")
	ErrMissingAzureAPIKey   = errors.New("azure api key is required (set AZURE_OPENAI_API_KEY or azure.api_key)")
)

type Config struct {
	Client    ClientConfig
	Clipboard ClipboardConfig
	Server    ServerConfig
	Azure     AzureConfig
	Log       LogConfig
}

type ClientConfig struct {
	Endpoint string
	Timeout  time.Duration
}

type ClipboardConfig struct {
	// OSC52 enables the terminal escape-sequence fallback when the OS
	// clipboard cannot be written.
	OSC52 bool
}

type ServerConfig struct {
	Host           string
	Port           int
	Debug          bool
	AllowedOrigins []string
}

func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

type AzureConfig struct {
	Endpoint            string
	APIKey              string
	Model               string
	MaxCompletionTokens int
	RequestTimeout      time.Duration
}

func (c AzureConfig) Validate() error {
	if strings.TrimSpace(c.Endpoint) == "" {
		return ErrMissingAzureEndpoint
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAzureAPIKey
	}
	return nil
}

type LogConfig struct {
	Level string
	// Output is "stderr", "stdout" or a file path.
	Output string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Client:    ClientConfig{Endpoint: defaultFixEndpoint, Timeout: defaultTimeout},
		Clipboard: ClipboardConfig{OSC52: true},
		Server: ServerConfig{
			Host:           defaultServerHost,
			Port:           defaultServerPort,
			AllowedOrigins: []string{"*"},
		},
		Azure: AzureConfig{
			Model:               defaultModel,
			MaxCompletionTokens: defaultMaxTokens,
			RequestTimeout:      defaultTimeout,
		},
		Log: LogConfig{Level: defaultLogLevel, Output: defaultLogOutput},
	}
}

// DefaultPath is ~/.betterprompt/config.toml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, configDir, configFile), nil
}

// Load reads ~/.betterprompt/config.toml when present and layers BP_*
// environment variables on top. The unprefixed service variables
// (AZURE_OPENAI_ENDPOINT, MODEL_NAME, PORT, ...) are honored as well.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path, err := DefaultPath()
	if err != nil {
		return Config{}, err
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Dir(path))
	setDefaults(cfg)
	if err := bindEnv(cfg); err != nil {
		return Config{}, err
	}

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}
	if err := (fileSchema{Version: cfg.GetInt("version")}).validateVersion(); err != nil {
		return Config{}, err
	}

	loaded := Config{
		Client: ClientConfig{
			Endpoint: strings.TrimSpace(cfg.GetString(keyClientEndpoint)),
			Timeout:  cfg.GetDuration(keyClientTimeout),
		},
		Clipboard: ClipboardConfig{OSC52: cfg.GetBool(keyClipboardOSC52)},
		Server: ServerConfig{
			Host:           cfg.GetString(keyServerHost),
			Port:           cfg.GetInt(keyServerPort),
			Debug:          cfg.GetBool(keyServerDebug),
			AllowedOrigins: cfg.GetStringSlice(keyServerOrigins),
		},
		Azure: AzureConfig{
			Endpoint:            strings.TrimSpace(cfg.GetString(keyAzureEndpoint)),
			APIKey:              strings.TrimSpace(cfg.GetString(keyAzureAPIKey)),
			Model:               cfg.GetString(keyAzureModel),
			MaxCompletionTokens: cfg.GetInt(keyAzureMaxTokens),
			RequestTimeout:      secondsOrDuration(cfg, keyAzureTimeout),
		},
		Log: LogConfig{
			Level:  cfg.GetString(keyLogLevel),
			Output: cfg.GetString(keyLogOutput),
		},
	}

	if loaded.Client.Endpoint == "" {
		return Config{}, errors.New("client endpoint is empty")
	}
	if loaded.Client.Timeout <= 0 {
		return Config{}, fmt.Errorf("client timeout must be positive, got %s", loaded.Client.Timeout)
	}
	if loaded.Server.Port <= 0 || loaded.Server.Port > 65535 {
		return Config{}, fmt.Errorf("server port out of range: %d", loaded.Server.Port)
	}

	return loaded, nil
}

func setDefaults(cfg *viper.Viper) {
	defaults := Default()

	cfg.SetDefault(keyClientEndpoint, defaults.Client.Endpoint)
	cfg.SetDefault(keyClientTimeout, defaults.Client.Timeout.String())
	cfg.SetDefault(keyClipboardOSC52, defaults.Clipboard.OSC52)
	cfg.SetDefault(keyServerHost, defaults.Server.Host)
	cfg.SetDefault(keyServerPort, defaults.Server.Port)
	cfg.SetDefault(keyServerDebug, defaults.Server.Debug)
	cfg.SetDefault(keyServerOrigins, defaults.Server.AllowedOrigins)
	cfg.SetDefault(keyAzureModel, defaults.Azure.Model)
	cfg.SetDefault(keyAzureMaxTokens, defaults.Azure.MaxCompletionTokens)
	cfg.SetDefault(keyAzureTimeout, defaults.Azure.RequestTimeout.String())
	cfg.SetDefault(keyLogLevel, defaults.Log.Level)
	cfg.SetDefault(keyLogOutput, defaults.Log.Output)
}

func bindEnv(cfg *viper.Viper) error {
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	bindings := map[string][]string{
		keyAzureEndpoint:  {"BP_AZURE_ENDPOINT", "AZURE_OPENAI_ENDPOINT"},
		keyAzureAPIKey:    {"BP_AZURE_API_KEY", "AZURE_OPENAI_API_KEY"},
		keyAzureModel:     {"BP_AZURE_MODEL", "MODEL_NAME"},
		keyAzureMaxTokens: {"BP_AZURE_MAX_COMPLETION_TOKENS", "MAX_COMPLETION_TOKENS"},
		keyAzureTimeout:   {"BP_AZURE_REQUEST_TIMEOUT", "REQUEST_TIMEOUT"},
		keyServerPort:     {"BP_SERVER_PORT", "PORT"},
		keyServerDebug:    {"BP_SERVER_DEBUG", "FLASK_DEBUG"},
	}
	for key, names := range bindings {
		if err := cfg.BindEnv(append([]string{key}, names...)...); err != nil {
			return fmt.Errorf("bind env for %s: %w", key, err)
		}
	}

	return nil
}

// secondsOrDuration accepts both "45s" and a bare number of seconds, the
// form REQUEST_TIMEOUT uses.
func secondsOrDuration(cfg *viper.Viper, key string) time.Duration {
	raw := strings.TrimSpace(cfg.GetString(key))
	if seconds, err := strconv.Atoi(raw); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return cfg.GetDuration(key)
}
