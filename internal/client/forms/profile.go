package forms

import "github.com/dmitrijs2005/scribe/internal/client/api"

const (
	FieldUsername  = "username"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldOTP       = "otp"
	FieldTwitter   = "twitter"
	FieldGithub    = "github"
	FieldLinkedin  = "linkedin"
	FieldPortfolio = "portfolio"
)

// Profile is the profile edit form. Fields start as copies of the user they
// were built from; Open tracks whether the form is shown.
type Profile struct {
	UserID    string
	Email     string
	Username  string
	Twitter   string
	Github    string
	Linkedin  string
	Portfolio string

	Open   bool
	Errors *Errors
}

// NewProfile pre-populates a form from u. A nil user gives an empty form
// with no id.
func NewProfile(u *api.User) *Profile {
	p := &Profile{
		Open:   true,
		Errors: NewErrors(FieldUsername, FieldEmail, FieldTwitter, FieldGithub, FieldLinkedin, FieldPortfolio),
	}
	if u == nil {
		return p
	}
	p.UserID = u.ID
	p.Email = u.Email
	p.Username = u.Username
	p.Twitter = u.Twitter
	p.Github = u.Github
	p.Linkedin = u.Linkedin
	p.Portfolio = u.Portfolio
	return p
}

// Validate checks email, then username, for presence.
func (p *Profile) Validate() error {
	if p.Email == "" {
		return &FieldError{Field: FieldEmail, Reason: "Email cannot be empty"}
	}
	if p.Username == "" {
		return &FieldError{Field: FieldUsername, Reason: "Username cannot be empty"}
	}
	return nil
}

// Request is the full update body, untouched URL fields included.
func (p *Profile) Request() api.UpdateUserRequest {
	return api.UpdateUserRequest{
		Email:     p.Email,
		Username:  p.Username,
		Twitter:   p.Twitter,
		Github:    p.Github,
		Linkedin:  p.Linkedin,
		Portfolio: p.Portfolio,
	}
}

// Set assigns the named field. It returns false for unknown names.
func (p *Profile) Set(field, value string) bool {
	switch field {
	case FieldEmail:
		p.Email = value
	case FieldUsername:
		p.Username = value
	case FieldTwitter:
		p.Twitter = value
	case FieldGithub:
		p.Github = value
	case FieldLinkedin:
		p.Linkedin = value
	case FieldPortfolio:
		p.Portfolio = value
	default:
		return false
	}
	return true
}

// Get reads the named field.
func (p *Profile) Get(field string) string {
	switch field {
	case FieldEmail:
		return p.Email
	case FieldUsername:
		return p.Username
	case FieldTwitter:
		return p.Twitter
	case FieldGithub:
		return p.Github
	case FieldLinkedin:
		return p.Linkedin
	case FieldPortfolio:
		return p.Portfolio
	default:
		return ""
	}
}
