package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests use a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	VerifyOTP(ctx context.Context) error
	Signin(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Profile(ctx context.Context) error
	Feed(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
}

// runREPL reads commands line by line and dispatches them to a. It returns
// on EOF, on "exit"/"quit", or when ctx is cancelled. Command errors are not
// fatal: handlers report them to the user and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprintf(w, "scribe%s> ", promptStatus(statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: feed [next|prev|N], delete N, profile, whoami, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: signup, otp, signin, feed [next|prev|N], exit")
			}
		case "signup":
			_ = a.Signup(ctx)
		case "otp", "verify":
			_ = a.VerifyOTP(ctx)
		case "signin", "login":
			_ = a.Signin(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.Whoami(ctx)
		case "profile":
			_ = a.Profile(ctx)
		case "feed", "posts":
			_ = a.Feed(ctx, args)
		case "delete":
			_ = a.Delete(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}

func promptStatus(s string) string {
	if s == "" {
		return " "
	}
	return " (" + s + ") "
}
