package forms

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/scribe/internal/client/api"
)

// Signup is the credential and OTP entry state of the signup page.
type Signup struct {
	Username string
	Email    string
	Password string
	OTP      string

	Errors *Errors
}

func NewSignup() *Signup {
	return &Signup{Errors: NewErrors(FieldUsername, FieldEmail, FieldPassword, FieldOTP)}
}

func (s *Signup) Request() api.SignupRequest {
	return api.SignupRequest{Username: s.Username, Email: s.Email, Password: s.Password}
}

// ParseOTP converts the entered code to the integer the API expects.
func (s *Signup) ParseOTP() (int, error) {
	otp, err := strconv.Atoi(strings.TrimSpace(s.OTP))
	if err != nil || otp < 0 {
		return 0, &FieldError{Field: FieldOTP, Reason: "OTP must be numeric"}
	}
	return otp, nil
}
