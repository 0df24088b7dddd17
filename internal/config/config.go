// Package config loads settings for the countries command-line tools from
// environment variables (prefix COUNTRIES_) and an optional countries.yaml.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/andreiashu/countries"
)

// Config holds the tool settings.
type Config struct {
	// JSONPath, when set, replaces the embedded dataset (COUNTRIES_JSON_PATH).
	JSONPath      string        `mapstructure:"json_path"`
	LogLevel      string        `mapstructure:"log_level"`
	UpstreamURL   string        `mapstructure:"upstream_url"`
	FetchTimeout  time.Duration `mapstructure:"fetch_timeout"`
	OverridesFile string        `mapstructure:"overrides_file"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel:     "warn",
		UpstreamURL:  countries.DefaultUpstreamURL,
		FetchTimeout: 60 * time.Second,
	}
}

// Load reads configuration. An explicit file must exist; otherwise
// countries.yaml is looked up in the working directory and /etc/countries
// and silently skipped when absent. Environment variables win over the file.
func Load(file string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("json_path", def.JSONPath)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("upstream_url", def.UpstreamURL)
	v.SetDefault("fetch_timeout", def.FetchTimeout)
	v.SetDefault("overrides_file", def.OverridesFile)

	v.SetEnvPrefix("COUNTRIES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", file, err)
		}
	} else {
		v.SetConfigName("countries")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/countries")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.FetchTimeout <= 0 {
		return Config{}, fmt.Errorf("fetch_timeout must be positive, got %s", cfg.FetchTimeout)
	}
	return cfg, nil
}

// RepositoryOptions returns the countries options implied by cfg.
func (c Config) RepositoryOptions() []countries.Option {
	var opts []countries.Option
	if c.JSONPath != "" {
		opts = append(opts, countries.WithDataFile(c.JSONPath))
	}
	return opts
}
