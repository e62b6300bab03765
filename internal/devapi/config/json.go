package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/scribe/internal/flagx"
	"github.com/dmitrijs2005/scribe/internal/timex"
)

// JSONConfig is the on-disk shape. Durations accept either a string such as
// "15m" or integer nanoseconds.
type JSONConfig struct {
	Addr      *string         `json:"addr"`
	SecretKey *string         `json:"secret_key"`
	TokenTTL  *timex.Duration `json:"token_ttl"`
	OTPTTL    *timex.Duration `json:"otp_ttl"`
	SeedPosts *int            `json:"seed_posts"`
	LogLevel  *string         `json:"log_level"`
}

func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.Addr != nil {
		cfg.Addr = *jc.Addr
	}
	if jc.SecretKey != nil {
		cfg.SecretKey = *jc.SecretKey
	}
	if jc.TokenTTL != nil {
		cfg.TokenTTL = jc.TokenTTL.Duration
	}
	if jc.OTPTTL != nil {
		cfg.OTPTTL = jc.OTPTTL.Duration
	}
	if jc.SeedPosts != nil {
		cfg.SeedPosts = *jc.SeedPosts
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
