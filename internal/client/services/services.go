// Package services contains the client's page logic: the signup and OTP
// flow, sign-in and session handling, the profile editor and the post feed.
// Each service talks to the backend through api.Client and reports outcomes
// to the user through a Notifier.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/scribe/internal/client/api"
	"github.com/dmitrijs2005/scribe/internal/client/forms"
)

// ErrNotAllowed is returned when an action is disabled in the current state,
// e.g. a second signup submit after a user id was issued.
var ErrNotAllowed = errors.New("action not allowed in current state")

// Notifier shows transient one-line notices.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// TokenStore persists the session token between runs.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Notice is the user-facing text for err: the server's message when it sent
// one, the field reason for local validation failures, the generic message
// otherwise.
func Notice(err error) string {
	var fe *forms.FieldError
	if errors.As(err, &fe) {
		return fe.Reason
	}
	if msg, ok := api.Message(err); ok {
		return msg
	}
	return forms.GenericMessage
}

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Error(string)   {}
