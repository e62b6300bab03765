package forms

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/scribe/internal/client/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	assert.True(t, Ok().IsOk())
	assert.Empty(t, Ok().Reason())

	r := Invalid("too short")
	assert.False(t, r.IsOk())
	assert.Equal(t, "too short", r.Reason())
}

func TestErrors_ResetAndField(t *testing.T) {
	e := NewErrors(FieldEmail, FieldUsername)
	assert.False(t, e.HasErrors())
	assert.Equal(t, []string{FieldEmail, FieldUsername}, e.Fields())

	e.Set(FieldEmail, Invalid("bad"))
	e.SetMessage("nope")
	assert.True(t, e.HasErrors())
	assert.Equal(t, "bad", e.Field(FieldEmail).Reason())

	e.Reset()
	assert.False(t, e.HasErrors())
	assert.True(t, e.Field(FieldEmail).IsOk())
	assert.Empty(t, e.Message())
	assert.True(t, e.Field("unknown").IsOk())
}

func TestErrors_Apply(t *testing.T) {
	t.Run("structured error with fields", func(t *testing.T) {
		e := NewErrors(FieldEmail, FieldUsername)
		msg := e.Apply(&api.Error{Status: 409, Message: "Email taken", Fields: map[string]string{"email": "Email taken"}})

		assert.Equal(t, "Email taken", msg)
		assert.Equal(t, "Email taken", e.Message())
		assert.Equal(t, Invalid("Email taken"), e.Field(FieldEmail))
		assert.True(t, e.Field(FieldUsername).IsOk())
	})

	t.Run("wrapped structured error", func(t *testing.T) {
		e := NewErrors(FieldEmail)
		msg := e.Apply(fmt.Errorf("update: %w", &api.Error{Status: 400, Message: "Invalid"}))
		assert.Equal(t, "Invalid", msg)
	})

	t.Run("structured error without message", func(t *testing.T) {
		e := NewErrors(FieldUsername)
		msg := e.Apply(&api.Error{Status: 400, Fields: map[string]string{"username": "Too short"}})
		assert.Equal(t, GenericMessage, msg)
		assert.Equal(t, "Too short", e.Field(FieldUsername).Reason())
	})

	t.Run("unexpected error", func(t *testing.T) {
		e := NewErrors(FieldEmail)
		msg := e.Apply(fmt.Errorf("%w: connection refused", api.ErrUnexpected))
		assert.Equal(t, GenericMessage, msg)
		assert.Equal(t, GenericMessage, e.Message())
		assert.True(t, e.Field(FieldEmail).IsOk())
	})

	t.Run("field error", func(t *testing.T) {
		e := NewErrors(FieldEmail)
		msg := e.Apply(&FieldError{Field: FieldEmail, Reason: "Email cannot be empty"})
		assert.Equal(t, "Email cannot be empty", msg)
		assert.Empty(t, e.Message())
		assert.False(t, e.Field(FieldEmail).IsOk())
	})
}

func TestNewProfile(t *testing.T) {
	u := &api.User{ID: "u1", Email: "e@x.io", Username: "eve", Github: "https://github.com/eve"}
	p := NewProfile(u)

	assert.True(t, p.Open)
	assert.Equal(t, "u1", p.UserID)
	assert.Equal(t, api.UpdateUserRequest{Email: "e@x.io", Username: "eve", Github: "https://github.com/eve"}, p.Request())

	empty := NewProfile(nil)
	assert.Empty(t, empty.UserID)
	assert.True(t, empty.Open)
}

func TestProfile_Validate(t *testing.T) {
	p := NewProfile(&api.User{ID: "1", Email: "", Username: ""})

	err := p.Validate()
	require.ErrorIs(t, err, ErrValidation)
	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, FieldEmail, fe.Field)
	assert.Equal(t, "Email cannot be empty", fe.Reason)

	p.Email = "a@b.c"
	err = p.Validate()
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, FieldUsername, fe.Field)
	assert.Equal(t, "Username cannot be empty", fe.Reason)

	p.Username = "ab"
	assert.NoError(t, p.Validate())
}

func TestProfile_SetGet(t *testing.T) {
	p := NewProfile(nil)
	for _, f := range []string{FieldEmail, FieldUsername, FieldTwitter, FieldGithub, FieldLinkedin, FieldPortfolio} {
		require.True(t, p.Set(f, "v-"+f))
		assert.Equal(t, "v-"+f, p.Get(f))
	}
	assert.False(t, p.Set("password", "x"))
	assert.Empty(t, p.Get("password"))
}

func TestSignup_ParseOTP(t *testing.T) {
	s := NewSignup()

	s.OTP = " 123456 "
	otp, err := s.ParseOTP()
	require.NoError(t, err)
	assert.Equal(t, 123456, otp)

	for _, bad := range []string{"", "12a4", "-5"} {
		s.OTP = bad
		_, err := s.ParseOTP()
		assert.ErrorIs(t, err, ErrValidation, bad)
	}
}

func TestSignup_Request(t *testing.T) {
	s := NewSignup()
	s.Username, s.Email, s.Password = "u", "e", "p"
	assert.Equal(t, api.SignupRequest{Username: "u", Email: "e", Password: "p"}, s.Request())
}
