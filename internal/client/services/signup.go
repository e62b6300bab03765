package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/scribe/internal/client/api"
	"github.com/dmitrijs2005/scribe/internal/client/forms"
	"github.com/dmitrijs2005/scribe/internal/client/session"
	"github.com/dmitrijs2005/scribe/internal/logging"
	"github.com/dmitrijs2005/scribe/internal/password"
)

// RouteApp is where a verified user is sent.
const RouteApp = "/app"

type SignupState int

const (
	StateCredentials SignupState = iota
	StateAwaitingOTP
	StateVerified
)

func (s SignupState) String() string {
	switch s {
	case StateCredentials:
		return "entering-credentials"
	case StateAwaitingOTP:
		return "awaiting-otp"
	case StateVerified:
		return "verified"
	default:
		return "unknown"
	}
}

// SignupFlow drives the two-stage registration: credentials, then OTP.
// A flow instance is single use; abandoning it discards everything entered.
type SignupFlow struct {
	Form *forms.Signup

	client   api.Client
	sess     *session.Session
	store    TokenStore
	notify   Notifier
	logger   logging.Logger
	userID   string
	token    string
	strength *password.Strength
}

func NewSignupFlow(c api.Client, sess *session.Session, store TokenStore, n Notifier, l logging.Logger) *SignupFlow {
	if n == nil {
		n = nopNotifier{}
	}
	if l == nil {
		l = logging.Nop{}
	}
	return &SignupFlow{Form: forms.NewSignup(), client: c, sess: sess, store: store, notify: n, logger: l}
}

func (f *SignupFlow) State() SignupState {
	switch {
	case f.token != "":
		return StateVerified
	case f.userID != "":
		return StateAwaitingOTP
	default:
		return StateCredentials
	}
}

func (f *SignupFlow) UserID() string { return f.userID }

// CanSubmitCredentials is false for good once a user id has been issued.
func (f *SignupFlow) CanSubmitCredentials() bool { return f.userID == "" }

// CanSubmitOTP gates both OTP entry and its submit.
func (f *SignupFlow) CanSubmitOTP() bool { return f.userID != "" }

// SetPassword stores pw and recomputes its strength feedback.
func (f *SignupFlow) SetPassword(pw string) password.Strength {
	f.Form.Password = pw
	s := password.Evaluate(pw)
	f.strength = &s
	return s
}

// Strength is the feedback for the current password; false before any
// password was entered.
func (f *SignupFlow) Strength() (password.Strength, bool) {
	if f.strength == nil {
		return password.Strength{}, false
	}
	return *f.strength, true
}

// SetOTP records the entered code. It is refused while no user id exists.
func (f *SignupFlow) SetOTP(otp string) error {
	if !f.CanSubmitOTP() {
		return ErrNotAllowed
	}
	f.Form.OTP = otp
	return nil
}

func (f *SignupFlow) validateCredentials() error {
	switch {
	case f.Form.Username == "":
		return &forms.FieldError{Field: forms.FieldUsername, Reason: "Username is required"}
	case f.Form.Email == "":
		return &forms.FieldError{Field: forms.FieldEmail, Reason: "Email is required"}
	case f.Form.Password == "":
		return &forms.FieldError{Field: forms.FieldPassword, Reason: "Password is required"}
	}
	return nil
}

// SubmitCredentials requests an account and an OTP. On success the flow
// moves to awaiting-otp and credentials can no longer be submitted.
func (f *SignupFlow) SubmitCredentials(ctx context.Context) error {
	if !f.CanSubmitCredentials() {
		return ErrNotAllowed
	}
	f.Form.Errors.Reset()

	if err := f.validateCredentials(); err != nil {
		f.notify.Error(f.Form.Errors.Apply(err))
		return err
	}

	id, err := f.client.Signup(ctx, f.Form.Request())
	if err != nil {
		f.logger.Warn(ctx, "signup failed", "error", err)
		f.notify.Error(f.Form.Errors.Apply(err))
		return fmt.Errorf("signup: %w", err)
	}

	f.userID = id
	f.logger.Info(ctx, "signup accepted", "user_id", id)
	f.notify.Success("Check your email for the OTP")
	return nil
}

// SubmitOTP verifies the entered code. On success the token is persisted,
// installed into the session and the route to navigate to is returned.
func (f *SignupFlow) SubmitOTP(ctx context.Context) (string, error) {
	if !f.CanSubmitOTP() || f.State() == StateVerified {
		return "", ErrNotAllowed
	}
	f.Form.Errors.Reset()

	otp, err := f.Form.ParseOTP()
	if err != nil {
		f.notify.Error(f.Form.Errors.Apply(err))
		return "", err
	}

	token, err := f.client.Verify(ctx, api.VerifyRequest{UserID: f.userID, OTP: otp, Username: f.Form.Username})
	if err != nil {
		f.logger.Warn(ctx, "otp verification failed", "user_id", f.userID, "error", err)
		f.notify.Error(f.Form.Errors.Apply(err))
		return "", fmt.Errorf("verify: %w", err)
	}

	if err := f.store.Save(ctx, token); err != nil {
		f.logger.Error(ctx, "token not persisted", "error", err)
		f.notify.Error(f.Form.Errors.Apply(err))
		return "", fmt.Errorf("save token: %w", err)
	}

	f.token = token
	f.sess.Set(token)
	f.logger.Info(ctx, "signup verified", "user_id", f.userID)
	return RouteApp, nil
}
