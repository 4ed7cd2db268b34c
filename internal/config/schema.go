package config

import (
	"fmt"
	"time"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version   int             `toml:"version"`
	Client    clientSchema    `toml:"client"`
	Clipboard clipboardSchema `toml:"clipboard"`
	Server    serverSchema    `toml:"server"`
	Azure     azureSchema     `toml:"azure"`
	Log       logSchema       `toml:"log"`
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported config schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type clientSchema struct {
	Endpoint string `toml:"endpoint"`
	Timeout  string `toml:"timeout"`
}

type clipboardSchema struct {
	OSC52 bool `toml:"osc52"`
}

type serverSchema struct {
	Host           string   `toml:"host"`
	Port           int      `toml:"port"`
	Debug          bool     `toml:"debug"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

type azureSchema struct {
	Endpoint            string `toml:"endpoint"`
	APIKey              string `toml:"api_key,omitempty"`
	Model               string `toml:"model"`
	MaxCompletionTokens int    `toml:"max_completion_tokens"`
	RequestTimeout      string `toml:"request_timeout"`
}

type logSchema struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
}

func toSchema(cfg Config) fileSchema {
	return fileSchema{
		Version: currentSchemaVersion,
		Client: clientSchema{
			Endpoint: cfg.Client.Endpoint,
			Timeout:  formatDuration(cfg.Client.Timeout),
		},
		Clipboard: clipboardSchema{OSC52: cfg.Clipboard.OSC52},
		Server: serverSchema{
			Host:           cfg.Server.Host,
			Port:           cfg.Server.Port,
			Debug:          cfg.Server.Debug,
			AllowedOrigins: cfg.Server.AllowedOrigins,
		},
		Azure: azureSchema{
			Endpoint:            cfg.Azure.Endpoint,
			APIKey:              cfg.Azure.APIKey,
			Model:               cfg.Azure.Model,
			MaxCompletionTokens: cfg.Azure.MaxCompletionTokens,
			RequestTimeout:      formatDuration(cfg.Azure.RequestTimeout),
		},
		Log: logSchema{Level: cfg.Log.Level, Output: cfg.Log.Output},
	}
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return ""
	}
	return d.String()
}
