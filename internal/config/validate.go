package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/farcloser/grammarify/internal/types"
)

var errInvalid = errors.New("invalid configuration")

// Validate checks a loaded configuration.
func Validate(cfg *Config) error {
	if _, err := types.ParseDialect(cfg.Dialect); err != nil {
		return fmt.Errorf("%w: dialect: %w", errInvalid, err)
	}

	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", errInvalid, err)
	}

	if cfg.MaxConcurrent < 0 {
		return fmt.Errorf("%w: max_concurrent must not be negative, got %d", errInvalid, cfg.MaxConcurrent)
	}

	for key, raw := range map[string]string{
		"grammarly.base_url":   cfg.Grammarly.BaseURL,
		"grammarly.socket_url": cfg.Grammarly.SocketURL,
	} {
		if raw == "" {
			continue
		}

		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: %s: %q is not an absolute URL", errInvalid, key, raw)
		}
	}

	return nil
}

// ParseLogLevel converts a level name to a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown level %q (valid: debug, info, warn, error)", s)
	}

	return level, nil
}
