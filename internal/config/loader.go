package config

import (
	"context"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New(ctx))
//  2. file (YAML) if SKILLSWAP_CONFIG is set
//  3. env (prefix SKILLSWAP_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New(ctx)

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("SKILLSWAP_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: SKILLSWAP_ADDR, SKILLSWAP_CURRENT_USER_ID, ...
	// Map env keys like SKILLSWAP_CURRENT_USER_ID -> current_user_id (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("SKILLSWAP_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "skillswap_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate performs basic sanity checks before the config is handed out.
func (c *Config) validate() error {
	if c.Addr == "" {
		return ErrEmptyAddr
	}
	if c.CurrentUserID == "" {
		return ErrEmptyCurrentUser
	}
	if c.ReadLatencyMinMS < 0 || c.ReadLatencyMaxMS < c.ReadLatencyMinMS {
		return ErrBadLatencyWindow
	}
	if c.WriteLatencyMinMS < 0 || c.WriteLatencyMaxMS < c.WriteLatencyMinMS {
		return ErrBadLatencyWindow
	}
	if c.MessageWriteLatencyMS < 0 {
		return ErrBadLatencyWindow
	}
	if c.MatchScore < 0 || c.MatchScore > 1 {
		return ErrBadMatchScore
	}
	return nil
}
