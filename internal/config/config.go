// Package config loads apikit settings from a TOML file and APIKIT_ env vars.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configDir  = "apikit"
	configName = "config"
	envPrefix  = "APIKIT"
)

// Config holds application configuration.
type Config struct {
	HTTP     HTTPConfig     `mapstructure:"http"`
	Response ResponseConfig `mapstructure:"response"`
	Log      LogConfig      `mapstructure:"log"`
}

// HTTPConfig controls the outgoing request.
type HTTPConfig struct {
	Timeout     time.Duration `mapstructure:"timeout"`
	ContentType string        `mapstructure:"content_type"`
}

// ResponseConfig controls how response bodies are displayed.
type ResponseConfig struct {
	AutoFormatJSON     bool   `mapstructure:"auto_format_json"`
	SyntaxHighlighting bool   `mapstructure:"syntax_highlighting"`
	Style              string `mapstructure:"style"`
}

// LogConfig controls the debug log. An empty File disables logging.
type LogConfig struct {
	File string `mapstructure:"file"`
}

// Default returns the configuration used when no file or env override is present.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Timeout:     30 * time.Second,
			ContentType: "application/json",
		},
		Response: ResponseConfig{
			AutoFormatJSON:     true,
			SyntaxHighlighting: true,
			Style:              "solarized-dark",
		},
	}
}

// DefaultPath is $APIKIT_CONFIG, or ~/.config/apikit/config.toml.
func DefaultPath() string {
	if p := os.Getenv(envPrefix + "_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", configDir, configName+".toml")
}

// Load reads configuration from path (if it exists) and the environment.
// Env var overrides use prefix APIKIT_, e.g. APIKIT_HTTP_TIMEOUT=5s.
func Load(path string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("http.timeout", def.HTTP.Timeout)
	v.SetDefault("http.content_type", def.HTTP.ContentType)
	v.SetDefault("response.auto_format_json", def.Response.AutoFormatJSON)
	v.SetDefault("response.syntax_highlighting", def.Response.SyntaxHighlighting)
	v.SetDefault("response.style", def.Response.Style)
	v.SetDefault("log.file", def.Log.File)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if filepath.Ext(path) == "" {
			v.SetConfigType("toml")
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.HTTP.Timeout < 0 {
		return Config{}, fmt.Errorf("http.timeout must not be negative, got %s", c.HTTP.Timeout)
	}
	return c, nil
}
