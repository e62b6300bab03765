package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/scribe/internal/client/api"
	"github.com/dmitrijs2005/scribe/internal/client/forms"
	"github.com/dmitrijs2005/scribe/internal/logging"
)

// ReloadFunc refreshes whatever shows the user after a successful update.
type ReloadFunc func(ctx context.Context) error

// ProfileEditor submits the profile form. It never patches local state: a
// successful update closes the form and triggers a reload instead.
type ProfileEditor struct {
	Form *forms.Profile

	client api.Client
	notify Notifier
	reload ReloadFunc
	logger logging.Logger
}

func NewProfileEditor(c api.Client, u *api.User, n Notifier, reload ReloadFunc, l logging.Logger) *ProfileEditor {
	if n == nil {
		n = nopNotifier{}
	}
	if l == nil {
		l = logging.Nop{}
	}
	if reload == nil {
		reload = func(context.Context) error { return nil }
	}
	return &ProfileEditor{Form: forms.NewProfile(u), client: c, notify: n, reload: reload, logger: l}
}

// Cancel closes the form without sending anything.
func (p *ProfileEditor) Cancel() {
	p.Form.Open = false
}

// Submit validates and sends the update. On failure the form stays open with
// its values and the error state filled in; nothing is retried.
func (p *ProfileEditor) Submit(ctx context.Context) error {
	if !p.Form.Open {
		return ErrNotAllowed
	}
	p.Form.Errors.Reset()

	if err := p.Form.Validate(); err != nil {
		p.notify.Error(Notice(err))
		return err
	}

	msg, err := p.client.UpdateUser(ctx, p.Form.UserID, p.Form.Request())
	if err != nil {
		p.logger.Warn(ctx, "profile update failed", "user_id", p.Form.UserID, "error", err)
		p.notify.Error(p.Form.Errors.Apply(err))
		return fmt.Errorf("update profile: %w", err)
	}

	p.notify.Success(msg)
	p.Form.Open = false

	if err := p.reload(ctx); err != nil {
		p.logger.Warn(ctx, "reload after profile update failed", "error", err)
	}
	return nil
}
