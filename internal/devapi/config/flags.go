package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/scribe/internal/flagx"
)

// parseFlags overlays flags found in args.
//
//	-a string   bind address (e.g. ":8080")
//	-k string   JWT HMAC secret key
//	-t int      token validity, minutes
//	-o int      OTP validity, minutes
//	-n int      number of seeded posts
//	-l string   log level
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, []string{"-a", "-k", "-t", "-o", "-n", "-l"})

	fs := flag.NewFlagSet("devapi", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to listen on")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "secret key")
	tokenTTL := fs.Int("t", int(cfg.TokenTTL.Minutes()), "token validity (in minutes)")
	otpTTL := fs.Int("o", int(cfg.OTPTTL.Minutes()), "otp validity (in minutes)")
	fs.IntVar(&cfg.SeedPosts, "n", cfg.SeedPosts, "number of seeded posts")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(filtered); err != nil {
		return err
	}

	cfg.TokenTTL = time.Duration(*tokenTTL) * time.Minute
	cfg.OTPTTL = time.Duration(*otpTTL) * time.Minute
	return nil
}
