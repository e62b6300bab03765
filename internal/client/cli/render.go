package cli

import "github.com/dmitrijs2005/scribe/internal/client/forms"

func (a *App) printFieldErrors(e *forms.Errors) {
	for _, f := range e.Fields() {
		if r := e.Field(f); !r.IsOk() {
			a.printf("  %s: %s\n", f, r.Reason())
		}
	}
}

func (a *App) printUser() {
	u := a.user
	if u == nil {
		return
	}
	a.printf("%s <%s>\n", u.Username, u.Email)
	for _, link := range []struct{ name, url string }{
		{"twitter", u.Twitter},
		{"github", u.Github},
		{"linkedin", u.Linkedin},
		{"portfolio", u.Portfolio},
	} {
		if link.url != "" {
			a.printf("  %s: %s\n", link.name, link.url)
		}
	}
}
