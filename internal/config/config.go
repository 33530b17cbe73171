// Package config centralizes all application configuration into typed structs.
//
// Go Learning Note — Defaults First, Environment Second:
// NewDefaultConfig returns a fully usable Config with no I/O, which is what
// tests want. Load starts from those defaults and lets INSURE_* environment
// variables override individual keys through "github.com/spf13/viper", which
// is what a deployed binary wants. Both paths return the same typed struct.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key: INSURE_SERVER_PORT.
const EnvPrefix = "INSURE"

// Config is the top-level configuration container.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Quote  QuoteConfig  `mapstructure:"quote"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// LogConfig selects the zap log level ("debug", "info", "warn", "error").
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// QuoteConfig controls how quotes pick their as-of year. AsOfYear 0 means
// "use the clock"; any other value pins every defaulted quote to that year.
type QuoteConfig struct {
	AsOfYear int `mapstructure:"as_of_year"`
}

// NewDefaultConfig returns a Config populated with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
		Quote: QuoteConfig{
			AsOfYear: 0,
		},
	}
}

// Load returns the defaults overridden by INSURE_* environment variables,
// e.g. INSURE_SERVER_PORT=:9090 or INSURE_QUOTE_AS_OF_YEAR=2025.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about, so every
	// key is registered through its default.
	def := NewDefaultConfig()
	v.SetDefault("server.port", def.Server.Port)
	v.SetDefault("server.read_timeout", def.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", def.Server.WriteTimeout)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("quote.as_of_year", def.Quote.AsOfYear)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("%s_SERVER_PORT must not be empty", EnvPrefix)
	}
	if c.Quote.AsOfYear < 0 {
		return fmt.Errorf("%s_QUOTE_AS_OF_YEAR must not be negative", EnvPrefix)
	}
	return nil
}
