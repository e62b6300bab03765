package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/scribe/internal/client/api"
	"github.com/dmitrijs2005/scribe/internal/client/config"
	"github.com/dmitrijs2005/scribe/internal/client/services"
	"github.com/dmitrijs2005/scribe/internal/client/session"
	"github.com/dmitrijs2005/scribe/internal/client/storage"
	"github.com/dmitrijs2005/scribe/internal/filex"
	"github.com/dmitrijs2005/scribe/internal/logging"
)

type App struct {
	config *config.Config
	client api.Client
	auth   *services.Auth
	store  services.TokenStore
	sess   *session.Session
	logger logging.Logger
	notify services.Notifier

	reader *bufio.Reader
	out    io.Writer
	db     *sql.DB

	signup *services.SignupFlow
	feed   *services.Feed
	cards  []cardRef
	user   *api.User
}

// cardRef maps a displayed card number back to its post.
type cardRef struct {
	postID    string
	deletable bool
}

// NewApp opens the local database and builds the client stack for c.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewText(os.Stderr, c.LogLevel)

	if err := filex.EnsureParentDir(c.DatabasePath); err != nil {
		return nil, err
	}
	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init local database: %w", err)
	}

	sess := session.New()
	apiClient, err := api.NewHTTPClient(c.APIBaseURL, nil, sess, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := newApp(c, apiClient, session.NewStore(db), sess, logger, os.Stdin, os.Stdout)
	a.db = db
	return a, nil
}

func newApp(c *config.Config, client api.Client, store services.TokenStore, sess *session.Session, logger logging.Logger, in io.Reader, out io.Writer) *App {
	n := newTermNotifier(out)
	feed := services.NewFeed(client, c.PageSize, n, logger)
	feed.OnLoading(func(loading bool) {
		if loading {
			fmt.Fprintln(out, "Loading posts...")
		}
	})
	return &App{
		config: c,
		client: client,
		auth:   services.NewAuth(client, store, sess, logger),
		store:  store,
		sess:   sess,
		logger: logger,
		notify: n,
		reader: bufio.NewReader(in),
		out:    out,
		feed:   feed,
	}
}

// Run restores a persisted session and serves the REPL until exit.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	if err := a.auth.Restore(ctx); err != nil {
		a.logger.Warn(ctx, "session not restored", "error", err)
	}

	a.println("Welcome to scribe (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader, a.out)
	return nil
}

func (a *App) close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.sess.Active()
}

func (a *App) status() string {
	if !a.sess.Active() {
		return ""
	}
	if id, ok := a.sess.Identity(); ok && id.Username != "" {
		return id.Username
	}
	return "signed in"
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
