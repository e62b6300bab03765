package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/scribe/internal/flagx"
)

func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, []string{"-a", "-d", "-p", "-l"})

	fs := flag.NewFlagSet("scribe", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "posts per feed page")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	return fs.Parse(filtered)
}
