// Package config handles configuration for the development backend,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrEmptySecret     = errors.New("secret key must not be empty")
	ErrInvalidTokenTTL = errors.New("token ttl must be positive")
)

// Config holds runtime settings for the development backend.
//
// Fields:
//   - Addr: bind address for the HTTP listener.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the default outside development.
//   - TokenTTL: lifetime of issued tokens.
//   - OTPTTL: how long a signup code stays valid.
//   - SeedPosts: number of demo posts created at start-up.
//   - LogLevel: slog level name.
type Config struct {
	Addr      string
	SecretKey string
	TokenTTL  time.Duration
	OTPTTL    time.Duration
	SeedPosts int
	LogLevel  string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.SecretKey = "secretKey"
	c.TokenTTL = 24 * time.Hour
	c.OTPTTL = 10 * time.Minute
	c.SeedPosts = 8
	c.LogLevel = "info"
}

func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return ErrEmptySecret
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTokenTTL, c.TokenTTL)
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
