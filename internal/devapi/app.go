// Package devapi wires the development backend: an in-memory store behind
// the REST contract used by the scribe client.
package devapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/dmitrijs2005/scribe/internal/devapi/config"
	"github.com/dmitrijs2005/scribe/internal/devapi/httpapi"
	"github.com/dmitrijs2005/scribe/internal/devapi/service"
	"github.com/dmitrijs2005/scribe/internal/devapi/store"
	"github.com/dmitrijs2005/scribe/internal/logging"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	server *http.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, c.LogLevel)
	return newApp(ctx, c, logger)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	repo := store.NewMemory()
	if err := service.Seed(ctx, repo, c.SeedPosts); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	secret := []byte(c.SecretKey)
	users := service.NewUsers(repo, secret, c.TokenTTL, c.OTPTTL, logger)
	posts := service.NewPosts(repo, logger)

	srv := &http.Server{
		Addr:              c.Addr,
		Handler:           httpapi.NewRouter(users, posts, secret, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return &App{config: c, logger: logger, server: srv}, nil
}

// Run serves until ctx is cancelled, then shuts the listener down gracefully.
func (app *App) Run(ctx context.Context) error {
	app.logger.Info(ctx, "Starting devapi...", "addr", app.config.Addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	app.logger.Info(ctx, "Shutting down devapi...")
	if err := app.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
