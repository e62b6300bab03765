// Package service implements the development backend's account and post
// operations on top of a store.Repository.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrijs2005/scribe/internal/cryptox"
	"github.com/dmitrijs2005/scribe/internal/devapi/auth"
	"github.com/dmitrijs2005/scribe/internal/devapi/store"
	"github.com/dmitrijs2005/scribe/internal/logging"
	"github.com/google/uuid"
)

// Profile is the editable part of a user.
type Profile struct {
	Email     string
	Username  string
	Twitter   string
	Github    string
	Linkedin  string
	Portfolio string
}

// Users handles registration with a one-time code, sign-in and profile
// updates.
type Users struct {
	repo      store.Repository
	logger    logging.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
	otpTTL    time.Duration
	now       func() time.Time
	newOTP    func() (int, error)
}

func NewUsers(repo store.Repository, secret []byte, tokenTTL, otpTTL time.Duration, l logging.Logger) *Users {
	if l == nil {
		l = logging.Nop{}
	}
	return &Users{
		repo:      repo,
		logger:    l,
		jwtSecret: secret,
		tokenTTL:  tokenTTL,
		otpTTL:    otpTTL,
		now:       time.Now,
		newOTP:    cryptox.NewOTP,
	}
}

// Signup creates an unverified account and issues a code. The code is logged
// rather than mailed. Signing up again with the email of a pending account
// replaces it.
func (s *Users) Signup(ctx context.Context, username, email, password string) (string, error) {
	username, email = strings.TrimSpace(username), strings.TrimSpace(email)

	fields := map[string]string{}
	if username == "" {
		fields["username"] = "Username is required"
	}
	if email == "" {
		fields["email"] = "Email is required"
	} else if !validEmail(email) {
		fields["email"] = "Email is invalid"
	}
	if password == "" {
		fields["password"] = "Password is required"
	}
	if len(fields) > 0 {
		return "", invalid("Signup failed", fields)
	}

	if existing, err := s.repo.UserByEmail(ctx, email); err == nil {
		if existing.Verified {
			return "", conflict("Signup failed", map[string]string{"email": "Email is already registered"})
		}
		if err := s.repo.DeleteUser(ctx, existing.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return "", err
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return "", err
	}

	if existing, err := s.repo.UserByUsername(ctx, username); err == nil && existing.Verified {
		return "", conflict("Signup failed", map[string]string{"username": "Username is already taken"})
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	u := store.User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}
	if err := s.repo.AddUser(ctx, u); err != nil {
		return "", err
	}

	code, err := s.newOTP()
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	if err := s.repo.SaveOTP(ctx, u.ID, store.OTP{Code: code, ExpiresAt: s.now().Add(s.otpTTL)}); err != nil {
		return "", err
	}

	s.logger.Info(ctx, "otp issued", "user_id", u.ID, "email", email, "otp", code)
	return u.ID, nil
}

// Verify confirms a signup code and returns an access token. The username
// sent along with the code is informational; the stored one wins.
func (s *Users) Verify(ctx context.Context, userID string, code int) (string, error) {
	u, err := s.repo.UserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return "", invalid("Verification failed", map[string]string{"userId": "Unknown signup"})
	}
	if err != nil {
		return "", err
	}

	otp, err := s.repo.OTP(ctx, userID)
	if errors.Is(err, store.ErrNotFound) || (err == nil && s.now().After(otp.ExpiresAt)) {
		return "", invalid("Verification failed", map[string]string{"otp": "OTP has expired, sign up again"})
	}
	if err != nil {
		return "", err
	}
	if otp.Code != code {
		return "", invalid("Verification failed", map[string]string{"otp": "Invalid OTP"})
	}

	// Another signup may have claimed the email or username since this one
	// was created.
	if other, err := s.repo.UserByEmail(ctx, u.Email); err == nil && other.ID != u.ID && other.Verified {
		return "", conflict("Verification failed", map[string]string{"email": "Email is already registered"})
	}
	if other, err := s.repo.UserByUsername(ctx, u.Username); err == nil && other.ID != u.ID && other.Verified {
		return "", conflict("Verification failed", map[string]string{"username": "Username is already taken"})
	}

	if err := s.repo.DeleteOTP(ctx, userID); err != nil {
		return "", err
	}
	u.Verified = true
	if err := s.repo.UpdateUser(ctx, u); err != nil {
		return "", err
	}

	s.logger.Info(ctx, "user verified", "user_id", u.ID)
	return s.issue(u)
}

func (s *Users) Signin(ctx context.Context, email, password string) (string, error) {
	u, err := s.repo.UserByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if !u.Verified {
		return "", ErrInvalidCredentials
	}
	if err := cryptox.CheckPassword(u.PasswordHash, password); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	return s.issue(u)
}

func (s *Users) Get(ctx context.Context, userID string) (store.User, error) {
	return s.repo.UserByID(ctx, userID)
}

// Update replaces callerID's profile with p. Users may only update
// themselves.
func (s *Users) Update(ctx context.Context, callerID, userID string, p Profile) error {
	if callerID != userID {
		return ErrForbidden
	}

	p.Email, p.Username = strings.TrimSpace(p.Email), strings.TrimSpace(p.Username)
	fields := map[string]string{}
	if p.Email == "" {
		fields["email"] = "Email cannot be empty"
	} else if !validEmail(p.Email) {
		fields["email"] = "Email is invalid"
	}
	if p.Username == "" {
		fields["username"] = "Username cannot be empty"
	}
	if len(fields) > 0 {
		return invalid("Profile update failed", fields)
	}

	u, err := s.repo.UserByID(ctx, userID)
	if err != nil {
		return err
	}

	if other, err := s.repo.UserByEmail(ctx, p.Email); err == nil && other.ID != u.ID && other.Verified {
		return conflict("Profile update failed", map[string]string{"email": "Email is already registered"})
	}
	if other, err := s.repo.UserByUsername(ctx, p.Username); err == nil && other.ID != u.ID && other.Verified {
		return conflict("Profile update failed", map[string]string{"username": "Username is already taken"})
	}

	u.Email, u.Username = p.Email, p.Username
	u.Twitter, u.Github, u.Linkedin, u.Portfolio = p.Twitter, p.Github, p.Linkedin, p.Portfolio
	return s.repo.UpdateUser(ctx, u)
}

func (s *Users) issue(u store.User) (string, error) {
	token, err := auth.GenerateToken(u.ID, u.Username, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

func validEmail(s string) bool {
	a, err := mail.ParseAddress(s)
	return err == nil && a.Address == s
}
