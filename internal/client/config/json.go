package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/scribe/internal/flagx"
)

// JSONConfig is the on-disk shape. Pointer fields distinguish "absent" from
// zero values so a partial file only overrides what it names.
type JSONConfig struct {
	APIBaseURL   *string `json:"api_base_url"`
	DatabasePath *string `json:"database_path"`
	PageSize     *int    `json:"page_size"`
	LogLevel     *string `json:"log_level"`
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

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.PageSize != nil {
		cfg.PageSize = *jc.PageSize
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
