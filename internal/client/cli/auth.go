package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/scribe/internal/client/services"
	"github.com/dmitrijs2005/scribe/internal/client/session"
)

func (a *App) Signin(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	pw, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	if err := a.auth.Signin(ctx, email, pw); err != nil {
		a.logger.Warn(ctx, "signin failed", "error", err)
		a.notify.Error(services.Notice(err))
		return err
	}
	a.signup = nil
	a.notify.Success("Signed in")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.notify.Error(services.Notice(err))
		return err
	}
	a.user = nil
	a.notify.Success("Signed out")
	return nil
}

// Whoami fetches and prints the current user.
func (a *App) Whoami(ctx context.Context) error {
	return a.reloadUser(ctx)
}

// reloadUser re-fetches the signed-in user and shows it. It stands in for a
// full page reload after a profile change.
func (a *App) reloadUser(ctx context.Context) error {
	u, err := a.auth.CurrentUser(ctx)
	if errors.Is(err, session.ErrNoSession) {
		a.println("Sign in first.")
		return err
	}
	if err != nil {
		a.notify.Error(services.Notice(err))
		return err
	}
	a.user = u
	a.printUser()
	return nil
}
