// Package config loads CLI settings from an optional YAML file, STATSSTUDIO_*
// environment variables and command flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// AppName names the config file and the user config directory.
	AppName   = "statsstudio"
	envPrefix = "STATSSTUDIO"
)

// HTTP configures remote descriptor fetches.
type HTTP struct {
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// Log configures the process logger.
type Log struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Config holds every setting the CLI reads.
type Config struct {
	// StatsURL overrides the rendering service base URL of the descriptor.
	StatsURL string `mapstructure:"stats_url" yaml:"stats_url"`
	// Descriptor is a file path or http(s) URL. Empty selects the bundled one.
	Descriptor       string `mapstructure:"descriptor" yaml:"descriptor"`
	Template         string `mapstructure:"template" yaml:"template"`
	SuppressDefaults bool   `mapstructure:"suppress_defaults" yaml:"suppress_defaults"`
	HTTP             HTTP   `mapstructure:"http" yaml:"http"`
	Log              Log    `mapstructure:"log" yaml:"log"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		HTTP: HTTP{Timeout: 10 * time.Second},
		Log:  Log{Level: "warn", Format: "text"},
	}
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"stats-url":         "stats_url",
	"descriptor":        "descriptor",
	"template":          "template",
	"suppress-defaults": "suppress_defaults",
	"http-timeout":      "http.timeout",
	"log-level":         "log.level",
	"log-format":        "log.format",
}

// Load reads configuration. An explicit path must exist; without one the
// file is looked up in the working directory and the user config directory
// and may be absent. Flags present in flags are bound to their keys.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("stats_url", defaults.StatsURL)
	v.SetDefault("descriptor", defaults.Descriptor)
	v.SetDefault("template", defaults.Template)
	v.SetDefault("suppress_defaults", defaults.SuppressDefaults)
	v.SetDefault("http.timeout", defaults.HTTP.Timeout)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName(AppName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, AppName))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: %w", err)
			}
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.StatsURL = strings.TrimRight(strings.TrimSpace(cfg.StatsURL), "/")
	cfg.Descriptor = strings.TrimSpace(cfg.Descriptor)
	return cfg, nil
}
