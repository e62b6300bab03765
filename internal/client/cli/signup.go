package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/scribe/internal/client/services"
	"github.com/dmitrijs2005/scribe/internal/password"
)

// Signup runs the credentials stage of registration. Once the server has
// issued a user id for the current flow the stage stays disabled; the user
// continues with "otp".
func (a *App) Signup(ctx context.Context) error {
	if a.signup != nil && !a.signup.CanSubmitCredentials() {
		a.println("Signup already submitted. Enter the code with 'otp'.")
		return services.ErrNotAllowed
	}
	if a.signup == nil {
		a.signup = services.NewSignupFlow(a.client, a.sess, a.store, a.notify, a.logger)
	}
	f := a.signup

	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	f.Form.Username, f.Form.Email = username, email

	pw, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	a.printStrength(f.SetPassword(pw))

	if err := f.SubmitCredentials(ctx); err != nil {
		a.printFieldErrors(f.Form.Errors)
		return err
	}
	a.println("Enter the code you received with 'otp'.")
	return nil
}

// VerifyOTP runs the OTP stage. It is disabled until signup has produced a
// user id.
func (a *App) VerifyOTP(ctx context.Context) error {
	if a.signup == nil || !a.signup.CanSubmitOTP() {
		a.println("OTP entry is disabled until signup succeeds.")
		return services.ErrNotAllowed
	}
	f := a.signup

	otp, err := getSimpleText(a.reader, "Enter 6 digit OTP", a.out)
	if err != nil {
		return err
	}
	if err := f.SetOTP(otp); err != nil {
		return err
	}

	route, err := f.SubmitOTP(ctx)
	if err != nil {
		a.printFieldErrors(f.Form.Errors)
		return err
	}

	a.signup = nil
	a.printf("Verified. Welcome, %s! (%s)\n", f.Form.Username, route)
	return nil
}

func (a *App) printStrength(s password.Strength) {
	bar := strings.Repeat("#", s.MeterPercent()/10) + strings.Repeat(".", 10-s.MeterPercent()/10)
	a.printf("Strength: [%s] %s (%s)\n", bar, s.Label, s.Color)
	a.printf("  %s Lowercase & Uppercase\n", mark(s.Rules.MixedCase))
	a.printf("  %s Number (0-9)\n", mark(s.Rules.Digit))
	a.printf("  %s Special Character (!@#$%%^&*)\n", mark(s.Rules.Special))
	a.printf("  %s At least 8 Characters\n", mark(s.Rules.MinLength))
}

func mark(ok bool) string {
	if ok {
		return "[x]"
	}
	return "[ ]"
}
