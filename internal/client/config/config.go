package config

import (
	"errors"
	"fmt"
	"net/url"
)

var (
	ErrInvalidPageSize = errors.New("page size must be positive")
	ErrInvalidBaseURL  = errors.New("invalid api base url")
)

// Config holds runtime settings for the scribe CLI.
type Config struct {
	APIBaseURL   string
	DatabasePath string
	PageSize     int
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.DatabasePath = "scribe.db"
	c.PageSize = 6
	c.LogLevel = "warn"
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPageSize, c.PageSize)
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.APIBaseURL)
	}
	return nil
}

// LoadConfig constructs a Config from defaults, then the JSON file (if any),
// then flags found in args (usually os.Args[1:]).
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
