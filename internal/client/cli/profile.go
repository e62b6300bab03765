package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/scribe/internal/client/forms"
	"github.com/dmitrijs2005/scribe/internal/client/services"
	"github.com/dmitrijs2005/scribe/internal/client/session"
)

var profileFields = []string{
	forms.FieldUsername, forms.FieldEmail, forms.FieldTwitter,
	forms.FieldGithub, forms.FieldLinkedin, forms.FieldPortfolio,
}

// Profile opens the profile form for the signed-in user. Lines of the form
// field=value edit a field; "save" submits, "cancel" closes.
func (a *App) Profile(ctx context.Context) error {
	u, err := a.auth.CurrentUser(ctx)
	if errors.Is(err, session.ErrNoSession) {
		a.println("Sign in first.")
		return err
	}
	if err != nil {
		a.notify.Error(services.Notice(err))
		return err
	}

	editor := services.NewProfileEditor(a.client, u, a.notify, a.reloadUser, a.logger)

	for editor.Form.Open {
		a.printProfileForm(editor.Form)

		line, err := getSimpleText(a.reader, "field=value, 'save' or 'cancel'", a.out)
		if err != nil {
			return err
		}

		switch line {
		case "save":
			if err := editor.Submit(ctx); err != nil {
				continue
			}
		case "cancel":
			editor.Cancel()
		case "":
		default:
			name, value, ok := strings.Cut(line, "=")
			if !ok || !editor.Form.Set(strings.TrimSpace(name), strings.TrimSpace(value)) {
				a.println("Unknown input. Use one of:", strings.Join(profileFields, ", "))
			}
		}
	}
	return nil
}

func (a *App) printProfileForm(p *forms.Profile) {
	a.println("Update Personal Information")
	for _, f := range profileFields {
		a.printf("  %-10s %s\n", f+":", p.Get(f))
		if r := p.Errors.Field(f); !r.IsOk() {
			a.printf("  %-10s ! %s\n", "", r.Reason())
		}
	}
}
