package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/scribe/internal/client/api"
	"github.com/dmitrijs2005/scribe/internal/client/forms"
	"github.com/dmitrijs2005/scribe/internal/client/session"
	"github.com/dmitrijs2005/scribe/internal/logging"
)

// Auth handles sign-in, sign-out, restoring a persisted session and fetching
// the current user.
type Auth struct {
	client api.Client
	store  TokenStore
	sess   *session.Session
	logger logging.Logger
	now    func() time.Time
}

func NewAuth(c api.Client, store TokenStore, sess *session.Session, l logging.Logger) *Auth {
	if l == nil {
		l = logging.Nop{}
	}
	return &Auth{client: c, store: store, sess: sess, logger: l, now: time.Now}
}

// Restore installs a previously persisted token. An expired token is
// discarded.
func (a *Auth) Restore(ctx context.Context) error {
	token, err := a.store.Load(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	a.sess.Set(token)
	if a.sess.Expired(a.now()) {
		a.logger.Info(ctx, "persisted session expired")
		a.sess.Clear()
		return a.store.Clear(ctx)
	}
	return nil
}

// Signin exchanges credentials for a token and persists it.
func (a *Auth) Signin(ctx context.Context, email, password string) error {
	if email == "" {
		return &forms.FieldError{Field: forms.FieldEmail, Reason: "Email is required"}
	}
	if password == "" {
		return &forms.FieldError{Field: forms.FieldPassword, Reason: "Password is required"}
	}

	token, err := a.client.Signin(ctx, api.SigninRequest{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("signin: %w", err)
	}
	if err := a.store.Save(ctx, token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	a.sess.Set(token)
	return nil
}

func (a *Auth) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	a.sess.Clear()
	return nil
}

// CurrentUser fetches the signed-in user's profile.
func (a *Auth) CurrentUser(ctx context.Context) (*api.User, error) {
	if !a.sess.Active() {
		return nil, session.ErrNoSession
	}
	u, err := a.client.Me(ctx)
	if err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	return u, nil
}
