// Package config loads runtime configuration for the scribe CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-d string   path to the local SQLite database
//	-p int      posts per feed page
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://127.0.0.1:8080",
//	  "database_path": "scribe.db",
//	  "page_size": 6,
//	  "log_level": "warn"
//	}
package config
