// Package config loads the bot configuration. It is the only place reading the process environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TokenEnv is the environment variable holding the Telegram bot token.
const TokenEnv = "BOT_TOKEN"

// ErrMissingToken is returned when the bot token is not set.
var ErrMissingToken = errors.New(TokenEnv + " environment variable is required")

// Config holds the bot configuration.
type Config struct {
	// Token is never read from the file.
	Token string `yaml:"-"`

	Dialect       string          `yaml:"dialect"`        // american | british | canadian | australian
	MaxConcurrent int             `yaml:"max_concurrent"` // 0 = unbounded
	LogLevel      string          `yaml:"log_level"`      // debug | info | warn | error
	Filter        FilterConfig    `yaml:"filter"`
	Grammarly     GrammarlyConfig `yaml:"grammarly"`
}

// FilterConfig overrides the reporting rules. Omitted keys keep the defaults;
// an explicit empty list disables that rule.
type FilterConfig struct {
	IgnoredTitlePrefixes []string `yaml:"ignored_title_prefixes"`
	ReportedImpact       string   `yaml:"reported_impact"`
	ExcludedGroups       []string `yaml:"excluded_groups"`
}

// GrammarlyConfig overrides the grammar service endpoints.
type GrammarlyConfig struct {
	BaseURL   string `yaml:"base_url"`
	SocketURL string `yaml:"socket_url"`
}

// Load reads the YAML file at path, when it exists, then the bot token from the environment.
// A missing file yields defaults. A missing token is an error.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // operator supplied configuration path
		switch {
		case err == nil:
			if err = yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	applyDefaults(cfg)

	token, ok := os.LookupEnv(TokenEnv)
	if !ok || token == "" {
		return nil, ErrMissingToken
	}

	cfg.Token = token

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Dialect:  "american",
		LogLevel: "info",
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Dialect == "" {
		cfg.Dialect = "american"
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}
